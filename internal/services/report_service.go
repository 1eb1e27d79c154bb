package services

import (
	"context"
	"time"

	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetReport(ctx context.Context) (*dto.ReportDTO, error)
}

type ReportService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewReportService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) ReportServiceInterface {
	return &ReportService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// GetReport builds the per-team statistics plus a flat request register. The
// register joins equipment, team and user names in memory; the collections are
// small enough that three index maps beat a four-way SQL join here.
func (s *ReportService) GetReport(ctx context.Context) (*dto.ReportDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	equipment, _, err := s.equipmentRepo.GetEquipments(ctx, allEquipmentFilter())
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.GetUsers(ctx, "")
	if err != nil {
		return nil, err
	}

	equipmentNames := board.EquipmentNameIndex(equipment)
	teamNames := make(map[string]string, len(teams))
	for i := range teams {
		teamNames[teams[i].ID] = teams[i].Name
	}
	userNames := make(map[string]string, len(users))
	for i := range users {
		userNames[users[i].ID] = users[i].FullName
	}

	now := s.now()
	register := make([]dto.RequestRegisterRowDTO, 0, len(requests))
	for i := range requests {
		r := &requests[i]
		row := dto.RequestRegisterRowDTO{
			Subject:       r.Subject,
			Type:          r.Type,
			Stage:         r.Stage,
			EquipmentName: equipmentNames[r.EquipmentID],
			TeamName:      teamNames[r.MaintenanceTeamID],
			DurationHours: r.DurationHours,
			Overdue:       board.IsOverdue(r, now),
			CreatedAt:     r.CreatedAt.Format(constants.DateLayout),
		}
		if r.AssignedToID != nil {
			row.AssignedTo = userNames[*r.AssignedToID]
		}
		if r.ScheduledDate != nil {
			row.ScheduledDate = r.ScheduledDate.Format(constants.DateLayout)
		}
		register = append(register, row)
	}

	return &dto.ReportDTO{
		TeamStats: board.TeamStats(teams, requests),
		Register:  register,
	}, nil
}
