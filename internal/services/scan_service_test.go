package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCacheRepo is a map-backed stand-in for the redis cache.
type mockCacheRepo struct {
	store map[string]string
}

func newMockCacheRepo() *mockCacheRepo {
	return &mockCacheRepo{store: map[string]string{}}
}

func (m *mockCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	switch v := value.(type) {
	case string:
		m.store[key] = v
	case []byte:
		m.store[key] = string(v)
	}
	return nil
}

func (m *mockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	if v, ok := m.store[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (m *mockCacheRepo) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.store, k)
	}
	return nil
}

func TestScanResolveLooksUpEquipment(t *testing.T) {
	lookups := 0
	equipmentRepo := &mockEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id string) (*entities.Equipment, error) {
			lookups++
			return &entities.Equipment{ID: id, Name: "Hydraulic Press"}, nil
		},
	}
	svc := NewScanService(equipmentRepo, newMockCacheRepo(), time.Minute, zap.NewNop())

	res, err := svc.Resolve(context.Background(), dto.ResolveScanDTO{
		Payload: "https://gearguard.example.com/scan/eq-42abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "eq-42abc", res.EquipmentID)
	require.NotNil(t, res.Equipment)
	assert.Equal(t, "Hydraulic Press", res.Equipment.Name)

	// Second scan of the same asset is served from cache.
	_, err = svc.Resolve(context.Background(), dto.ResolveScanDTO{Payload: "eq-42abc"})
	require.NoError(t, err)
	assert.Equal(t, 1, lookups)
}

func TestScanResolveUnreadablePayload(t *testing.T) {
	svc := NewScanService(&mockEquipmentRepo{}, newMockCacheRepo(), time.Minute, zap.NewNop())

	_, err := svc.Resolve(context.Background(), dto.ResolveScanDTO{Payload: "x1"})
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestScanResolveUnknownEquipment(t *testing.T) {
	equipmentRepo := &mockEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id string) (*entities.Equipment, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	svc := NewScanService(equipmentRepo, newMockCacheRepo(), time.Minute, zap.NewNop())

	_, err := svc.Resolve(context.Background(), dto.ResolveScanDTO{Payload: "eq-missing-1"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
