package services

import (
	"context"
	"time"

	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

type BoardServiceInterface interface {
	GetBoard(ctx context.Context, filter board.Filter) (*dto.BoardDTO, error)
	GetList(ctx context.Context, filter board.Filter) ([]entities.MaintenanceRequest, error)
	GetCalendar(ctx context.Context) (*dto.CalendarDTO, error)
	GetNotifications(ctx context.Context) (*dto.NotificationsDTO, error)
}

// BoardService loads the request/equipment collections and runs the pure
// derivation functions over them.
type BoardService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
	now           func() time.Time
}

func NewBoardService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) *BoardService {
	return &BoardService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
		now:           time.Now,
	}
}

func (s *BoardService) loadCollections(ctx context.Context) ([]entities.MaintenanceRequest, []entities.Equipment, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, nil, err
	}
	equipment, _, err := s.equipmentRepo.GetEquipments(ctx, allEquipmentFilter())
	if err != nil {
		return nil, nil, err
	}
	return requests, equipment, nil
}

func (s *BoardService) GetBoard(ctx context.Context, filter board.Filter) (*dto.BoardDTO, error) {
	requests, equipment, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	filtered := board.FilterRequests(requests, equipment, filter, s.now())
	groups := board.GroupByStage(filtered)

	columns := make([]dto.BoardColumnDTO, 0, len(constants.OrderedStages))
	for _, stage := range constants.OrderedStages {
		columns = append(columns, dto.BoardColumnDTO{
			Stage:    stage,
			Requests: groups[stage],
			Count:    len(groups[stage]),
		})
	}

	return &dto.BoardDTO{Columns: columns, Total: len(filtered)}, nil
}

func (s *BoardService) GetList(ctx context.Context, filter board.Filter) ([]entities.MaintenanceRequest, error) {
	requests, equipment, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}
	return board.FilterRequests(requests, equipment, filter, s.now()), nil
}

func (s *BoardService) GetCalendar(ctx context.Context) (*dto.CalendarDTO, error) {
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CalendarDTO{Days: board.CalendarBuckets(requests)}, nil
}

func (s *BoardService) GetNotifications(ctx context.Context) (*dto.NotificationsDTO, error) {
	requests, equipment, err := s.loadCollections(ctx)
	if err != nil {
		return nil, err
	}

	var viewer *entities.User
	if userID, err := utils.GetUserIDFromCtx(ctx); err == nil {
		if u, err := s.userRepo.FindUserByID(ctx, userID); err == nil {
			viewer = u
		}
	}

	items := board.BuildNotifications(requests, equipment, viewer, s.now())
	return &dto.NotificationsDTO{Items: items}, nil
}
