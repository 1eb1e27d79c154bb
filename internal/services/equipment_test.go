package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockTxManager runs the callback inline with a nil transaction; the repo
// mocks ignore the tx handle anyway.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	m.calls++
	return fn(ctx, nil)
}

func TestDeleteEquipmentCascadesInOneTransaction(t *testing.T) {
	var deletedRequestsFor, deletedEquipment string
	requestRepo := &mockRequestRepo{
		DeleteRequestsByEquipmentInTxFn: func(ctx context.Context, tx pgx.Tx, equipmentID string) error {
			deletedRequestsFor = equipmentID
			return nil
		},
	}
	equipmentRepo := &mockEquipmentRepo{
		DeleteEquipmentInTxFn: func(ctx context.Context, tx pgx.Tx, id string) error {
			// Requests go first so the cascade cannot orphan them.
			require.Equal(t, "eq-1", deletedRequestsFor)
			deletedEquipment = id
			return nil
		},
	}
	txManager := &mockTxManager{}

	svc := NewEquipmentService(equipmentRepo, requestRepo, &mockTeamRepo{}, txManager, zap.NewNop())

	require.NoError(t, svc.DeleteEquipment(context.Background(), "eq-1"))
	assert.Equal(t, "eq-1", deletedEquipment)
	assert.Equal(t, 1, txManager.calls)
}

func TestCreateEquipmentRequiresExistingTeam(t *testing.T) {
	teamRepo := &mockTeamRepo{
		FindTeamFn: func(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
			return nil, apperrors.ErrNotFound
		},
	}
	equipmentRepo := &mockEquipmentRepo{
		CreateEquipmentFn: func(ctx context.Context, e *entities.Equipment) error {
			t.Fatal("create must not be reached")
			return nil
		},
	}

	svc := NewEquipmentService(equipmentRepo, &mockRequestRepo{}, teamRepo, &mockTxManager{}, zap.NewNop())

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:              "Press",
		MaintenanceTeamID: "missing-team",
	})

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestUpdateEquipmentScrapPairing(t *testing.T) {
	var gotFields map[string]interface{}
	equipmentRepo := &mockEquipmentRepo{
		UpdateEquipmentFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
		FindEquipmentFn: func(ctx context.Context, id string) (*entities.Equipment, error) {
			return &entities.Equipment{ID: id}, nil
		},
	}

	svc := NewEquipmentService(equipmentRepo, &mockRequestRepo{}, &mockTeamRepo{}, &mockTxManager{}, zap.NewNop())

	// Scrapping without a reason is refused.
	scrapNoReason := dto.UpdateEquipmentDTO{}
	scrapNoReason.IsScrapped.SetValid(true)
	_, err := svc.UpdateEquipment(context.Background(), "eq-1", scrapNoReason)
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)

	// Scrapping with a reason stamps the time.
	scrap := dto.UpdateEquipmentDTO{}
	scrap.IsScrapped.SetValid(true)
	scrap.ScrappedReason.SetValid("beyond repair")
	_, err = svc.UpdateEquipment(context.Background(), "eq-1", scrap)
	require.NoError(t, err)
	assert.Equal(t, true, gotFields["is_scrapped"])
	assert.Equal(t, "beyond repair", gotFields["scrapped_reason"])
	_, ok := gotFields["scrapped_at"].(time.Time)
	assert.True(t, ok)

	// Unscrapping clears the whole trio.
	unscrap := dto.UpdateEquipmentDTO{}
	unscrap.IsScrapped.SetValid(false)
	_, err = svc.UpdateEquipment(context.Background(), "eq-1", unscrap)
	require.NoError(t, err)
	assert.Equal(t, false, gotFields["is_scrapped"])
	assert.Nil(t, gotFields["scrapped_at"])
	assert.Nil(t, gotFields["scrapped_reason"])
}

func TestDeleteTeamRefusedWhileReferenced(t *testing.T) {
	requestRepo := &mockRequestRepo{
		CountRequestsByTeamFn: func(ctx context.Context, teamID string) (int64, error) {
			return 2, nil
		},
	}
	teamRepo := &mockTeamRepo{
		DeleteTeamFn: func(ctx context.Context, id string) error {
			t.Fatal("delete must not be reached")
			return nil
		},
	}

	svc := NewTeamService(teamRepo, requestRepo, zap.NewNop())

	err := svc.DeleteTeam(context.Background(), "team-1")
	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}
