package services

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	TransitionRequest(ctx context.Context, id string, payload dto.TransitionRequestDTO) (*entities.MaintenanceRequest, error)
	PickUpRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequests(ctx)
}

func (s *RequestService) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindRequest(ctx, id)
}

// CreateRequest creates the request in stage new, snapshotting the
// equipment's category and team. Preventive requests must carry a scheduled
// date; both rules run before anything is written.
func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	creatorID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if payload.Type == constants.RequestTypePreventive && (payload.ScheduledDate == nil || *payload.ScheduledDate == "") {
		return nil, apperrors.NewInvalidInputError("preventive requests require a scheduled date")
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("equipment %s does not exist", payload.EquipmentID)
	}

	scheduledDate, err := parseOptionalDay(payload.ScheduledDate)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("invalid scheduled_date")
	}

	req := &entities.MaintenanceRequest{
		ID:          uuid.New().String(),
		Type:        payload.Type,
		Subject:     payload.Subject,
		Description: payload.Description,
		EquipmentID: equipment.ID,
		// Snapshot at creation, by contract never recomputed afterwards.
		EquipmentCategory: equipment.Category,
		MaintenanceTeamID: equipment.MaintenanceTeamID,
		Stage:             constants.StageNew,
		ScheduledDate:     scheduledDate,
		AssignedToID:      payload.AssignedToID,
		CreatedByID:       creatorID,
	}

	if err := s.requestRepo.CreateRequest(ctx, req); err != nil {
		s.logger.Error("request create failed", zap.Error(err))
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, req.ID)
}

// UpdateRequest covers direct field edits. Stage and equipment pairing are
// immutable here: stage moves via TransitionRequest only.
func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	fields := map[string]interface{}{}
	if payload.Subject.Valid {
		fields["subject"] = payload.Subject.String
	}
	if payload.Description.Valid {
		fields["description"] = payload.Description.String
	}
	if payload.ScheduledDate.Valid {
		if payload.ScheduledDate.String == "" {
			fields["scheduled_date"] = nil
		} else {
			d, err := utils.ParseDay(payload.ScheduledDate.String)
			if err != nil {
				return nil, apperrors.NewInvalidInputError("invalid scheduled_date")
			}
			fields["scheduled_date"] = d
		}
	}
	if payload.DurationHours.Valid {
		if payload.DurationHours.Float64 <= 0 {
			return nil, lifecycle.ErrInvalidDuration
		}
		fields["duration_hours"] = payload.DurationHours.Float64
	}
	if payload.AssignedToID.Valid {
		if payload.AssignedToID.String == "" {
			fields["assigned_to_id"] = nil
		} else {
			fields["assigned_to_id"] = payload.AssignedToID.String
		}
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

// TransitionRequest is the only write path for the stage field. The lifecycle
// decision runs first; a refused transition never reaches the repository.
func (s *RequestService) TransitionRequest(ctx context.Context, id string, payload dto.TransitionRequestDTO) (*entities.MaintenanceRequest, error) {
	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	change, approved, err := lifecycle.Transition(req.Stage, payload.TargetStage, req.DurationHours, payload.DurationHours)
	if err != nil {
		return nil, err
	}
	if !approved {
		// Same-stage drop: nothing to persist.
		return req, nil
	}

	fields := map[string]interface{}{"stage": change.Stage}
	if change.DurationHours != nil {
		fields["duration_hours"] = *change.DurationHours
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, fields); err != nil {
		s.logger.Error("stage transition persist failed",
			zap.String("requestId", id),
			zap.String("targetStage", change.Stage),
			zap.Error(err),
		)
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

// PickUpRequest is the technician shortcut: assign to self and start work in
// a single update.
func (s *RequestService) PickUpRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	callerID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	callerRole, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	req, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepo.FindTeam(ctx, req.MaintenanceTeamID)
	if err != nil {
		return nil, err
	}

	if err := lifecycle.CanPickUp(req, callerID, callerRole, team); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"assigned_to_id": callerID,
		"stage":          constants.StageInProgress,
	}
	if err := s.requestRepo.UpdateRequest(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}
