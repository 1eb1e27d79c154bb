package services

import (
	"context"
	"encoding/json"
	"time"

	"gearguard/internal/board"
	"gearguard/internal/dto"
	"gearguard/internal/repositories"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

const dashboardCacheKey = "gearguard:dashboard"

type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type DashboardService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewDashboardService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		equipmentRepo: equipmentRepo,
		requestRepo:   requestRepo,
		teamRepo:      teamRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
		now:           time.Now,
	}
}

// GetDashboard serves a short-lived cached snapshot; the counters are cheap
// to recompute but hit three collections at once.
func (s *DashboardService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardCacheKey); err == nil && cached != "" {
		var snapshot dto.DashboardDTO
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return &snapshot, nil
		}
	}

	equipment, _, err := s.equipmentRepo.GetEquipments(ctx, allEquipmentFilter())
	if err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.GetRequests(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teamRepo.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &dto.DashboardDTO{
		Overview:     board.BuildOverview(equipment, requests, now),
		CountByStage: board.CountByStage(requests),
		TeamStats:    board.TeamStats(teams, requests),
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardCacheKey, encoded, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

// allEquipmentFilter asks the repository for the complete collection: a zero
// limit skips the LIMIT clause entirely.
func allEquipmentFilter() types.Filter {
	return types.Filter{}
}
