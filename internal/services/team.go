package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id string) error
}

type TeamService struct {
	teamRepo    repositories.TeamRepositoryInterface
	requestRepo repositories.RequestRepositoryInterface
	logger      *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, requestRepo: requestRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetTeams(ctx)
}

func (s *TeamService) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindTeam(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	team := &entities.MaintenanceTeam{
		ID:          uuid.New().String(),
		Name:        payload.Name,
		Description: payload.Description,
		MemberIDs:   payload.MemberIDs,
	}
	if team.MemberIDs == nil {
		team.MemberIDs = []string{}
	}

	if err := s.teamRepo.CreateTeam(ctx, team); err != nil {
		s.logger.Error("team create failed", zap.Error(err))
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, team.ID)
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error) {
	fields := map[string]interface{}{}
	if payload.Name.Valid {
		fields["name"] = payload.Name.String
	}
	if payload.Description.Valid {
		fields["description"] = payload.Description.String
	}
	if payload.MemberIDs != nil {
		fields["member_ids"] = payload.MemberIDs
	}

	if err := s.teamRepo.UpdateTeam(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.teamRepo.FindTeam(ctx, id)
}

// DeleteTeam refuses while requests still reference the team. The check is a
// local precondition: it runs before the delete is attempted.
func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	count, err := s.requestRepo.CountRequestsByTeam(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewInvalidInputError("cannot delete team: %d maintenance request(s) still reference it", count)
	}
	return s.teamRepo.DeleteTeam(ctx, id)
}
