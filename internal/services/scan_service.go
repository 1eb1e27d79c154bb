package services

import (
	"context"
	"encoding/json"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/internal/scan"

	"go.uber.org/zap"
)

type ScanServiceInterface interface {
	Resolve(ctx context.Context, payload dto.ResolveScanDTO) (*dto.ScanResultDTO, error)
}

type ScanService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	cacheTTL      time.Duration
	logger        *zap.Logger
}

func NewScanService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	logger *zap.Logger,
) ScanServiceInterface {
	return &ScanService{
		equipmentRepo: equipmentRepo,
		cacheRepo:     cacheRepo,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// Resolve turns a scanned payload into an equipment record. Lookups are cached
// briefly: scan stations tend to hit the same handful of assets in bursts.
func (s *ScanService) Resolve(ctx context.Context, payload dto.ResolveScanDTO) (*dto.ScanResultDTO, error) {
	equipmentID, err := scan.ResolveEquipmentID(payload.Payload)
	if err != nil {
		return nil, err
	}

	cacheKey := "gearguard:scan:" + equipmentID
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		var e entities.Equipment
		if err := json.Unmarshal([]byte(cached), &e); err == nil {
			return &dto.ScanResultDTO{EquipmentID: equipmentID, Equipment: &e}, nil
		}
	}

	equipment, err := s.equipmentRepo.FindEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(equipment); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, encoded, s.cacheTTL); err != nil {
			s.logger.Warn("scan cache write failed", zap.String("equipmentId", equipmentID), zap.Error(err))
		}
	}

	return &dto.ScanResultDTO{EquipmentID: equipmentID, Equipment: equipment}, nil
}
