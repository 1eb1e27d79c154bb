package services

import (
	"context"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/constants"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRequestRepo struct {
	GetRequestsFn                   func(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequestFn                   func(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequestFn                 func(ctx context.Context, r *entities.MaintenanceRequest) error
	UpdateRequestFn                 func(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteRequestFn                 func(ctx context.Context, id string) error
	DeleteRequestsByEquipmentInTxFn func(ctx context.Context, tx pgx.Tx, equipmentID string) error
	CountRequestsByTeamFn           func(ctx context.Context, teamID string) (int64, error)
}

func (m *mockRequestRepo) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return m.GetRequestsFn(ctx)
}
func (m *mockRequestRepo) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return m.FindRequestFn(ctx, id)
}
func (m *mockRequestRepo) CreateRequest(ctx context.Context, r *entities.MaintenanceRequest) error {
	return m.CreateRequestFn(ctx, r)
}
func (m *mockRequestRepo) UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.UpdateRequestFn(ctx, id, fields)
}
func (m *mockRequestRepo) DeleteRequest(ctx context.Context, id string) error {
	return m.DeleteRequestFn(ctx, id)
}
func (m *mockRequestRepo) DeleteRequestsByEquipmentInTx(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	return m.DeleteRequestsByEquipmentInTxFn(ctx, tx, equipmentID)
}
func (m *mockRequestRepo) CountRequestsByTeam(ctx context.Context, teamID string) (int64, error) {
	return m.CountRequestsByTeamFn(ctx, teamID)
}

type mockEquipmentRepo struct {
	GetEquipmentsFn       func(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipmentFn       func(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipmentFn     func(ctx context.Context, e *entities.Equipment) error
	UpdateEquipmentFn     func(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteEquipmentInTxFn func(ctx context.Context, tx pgx.Tx, id string) error
}

func (m *mockEquipmentRepo) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	return m.GetEquipmentsFn(ctx, filter)
}
func (m *mockEquipmentRepo) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	return m.FindEquipmentFn(ctx, id)
}
func (m *mockEquipmentRepo) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	return m.CreateEquipmentFn(ctx, e)
}
func (m *mockEquipmentRepo) UpdateEquipment(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.UpdateEquipmentFn(ctx, id, fields)
}
func (m *mockEquipmentRepo) DeleteEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) error {
	return m.DeleteEquipmentInTxFn(ctx, tx, id)
}

type mockTeamRepo struct {
	GetTeamsFn   func(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeamFn   func(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeamFn func(ctx context.Context, t *entities.MaintenanceTeam) error
	UpdateTeamFn func(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteTeamFn func(ctx context.Context, id string) error
}

func (m *mockTeamRepo) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return m.GetTeamsFn(ctx)
}
func (m *mockTeamRepo) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	return m.FindTeamFn(ctx, id)
}
func (m *mockTeamRepo) CreateTeam(ctx context.Context, t *entities.MaintenanceTeam) error {
	return m.CreateTeamFn(ctx, t)
}
func (m *mockTeamRepo) UpdateTeam(ctx context.Context, id string, fields map[string]interface{}) error {
	return m.UpdateTeamFn(ctx, id, fields)
}
func (m *mockTeamRepo) DeleteTeam(ctx context.Context, id string) error {
	return m.DeleteTeamFn(ctx, id)
}

func authedCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

func f64(v float64) *float64 { return &v }

func TestCreateRequestSnapshotsEquipment(t *testing.T) {
	var created *entities.MaintenanceRequest
	requestRepo := &mockRequestRepo{
		CreateRequestFn: func(ctx context.Context, r *entities.MaintenanceRequest) error {
			created = r
			return nil
		},
		FindRequestFn: func(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
			return created, nil
		},
	}
	equipmentRepo := &mockEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id string) (*entities.Equipment, error) {
			return &entities.Equipment{
				ID:                id,
				Category:          constants.CategoryMachinery,
				MaintenanceTeamID: "team-1",
			}, nil
		},
	}

	svc := NewRequestService(requestRepo, equipmentRepo, &mockTeamRepo{}, zap.NewNop())

	res, err := svc.CreateRequest(authedCtx("user-1", constants.RoleRequester), dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Press leaking oil",
		EquipmentID: "eq-1",
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StageNew, res.Stage)
	assert.Equal(t, constants.CategoryMachinery, res.EquipmentCategory)
	assert.Equal(t, "team-1", res.MaintenanceTeamID)
	assert.Equal(t, "user-1", res.CreatedByID)
	assert.NotEmpty(t, res.ID)
}

func TestCreateRequestPreventiveNeedsSchedule(t *testing.T) {
	requestRepo := &mockRequestRepo{
		CreateRequestFn: func(ctx context.Context, r *entities.MaintenanceRequest) error {
			t.Fatal("create must not be reached")
			return nil
		},
	}
	equipmentRepo := &mockEquipmentRepo{
		FindEquipmentFn: func(ctx context.Context, id string) (*entities.Equipment, error) {
			t.Fatal("equipment lookup must not be reached")
			return nil, nil
		},
	}

	svc := NewRequestService(requestRepo, equipmentRepo, &mockTeamRepo{}, zap.NewNop())

	_, err := svc.CreateRequest(authedCtx("user-1", constants.RoleRequester), dto.CreateRequestDTO{
		Type:        constants.RequestTypePreventive,
		Subject:     "Quarterly check",
		EquipmentID: "eq-1",
	})

	var inputErr *apperrors.InvalidInputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestTransitionToRepairedWithoutDurationNeverPersists(t *testing.T) {
	updateCalled := false
	requestRepo := &mockRequestRepo{
		FindRequestFn: func(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
			return &entities.MaintenanceRequest{ID: id, Stage: constants.StageInProgress}, nil
		},
		UpdateRequestFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			updateCalled = true
			return nil
		},
	}

	svc := NewRequestService(requestRepo, &mockEquipmentRepo{}, &mockTeamRepo{}, zap.NewNop())

	_, err := svc.TransitionRequest(context.Background(), "r1", dto.TransitionRequestDTO{
		TargetStage: constants.StageRepaired,
	})

	assert.ErrorIs(t, err, lifecycle.ErrDurationRequired)
	assert.False(t, updateCalled, "a refused transition must not reach the repository")
}

func TestTransitionPersistsStageAndDuration(t *testing.T) {
	var gotFields map[string]interface{}
	requestRepo := &mockRequestRepo{
		FindRequestFn: func(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
			return &entities.MaintenanceRequest{ID: id, Stage: constants.StageInProgress}, nil
		},
		UpdateRequestFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}

	svc := NewRequestService(requestRepo, &mockEquipmentRepo{}, &mockTeamRepo{}, zap.NewNop())

	_, err := svc.TransitionRequest(context.Background(), "r1", dto.TransitionRequestDTO{
		TargetStage:   constants.StageRepaired,
		DurationHours: f64(3.5),
	})
	require.NoError(t, err)

	assert.Equal(t, constants.StageRepaired, gotFields["stage"])
	assert.Equal(t, 3.5, gotFields["duration_hours"])
}

func TestTransitionSameStageSkipsUpdate(t *testing.T) {
	requestRepo := &mockRequestRepo{
		FindRequestFn: func(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
			return &entities.MaintenanceRequest{ID: id, Stage: constants.StageNew}, nil
		},
		UpdateRequestFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			t.Fatal("same-stage transition must not write")
			return nil
		},
	}

	svc := NewRequestService(requestRepo, &mockEquipmentRepo{}, &mockTeamRepo{}, zap.NewNop())

	res, err := svc.TransitionRequest(context.Background(), "r1", dto.TransitionRequestDTO{
		TargetStage: constants.StageNew,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StageNew, res.Stage)
}

func TestPickUpRequest(t *testing.T) {
	var gotFields map[string]interface{}
	requestRepo := &mockRequestRepo{
		FindRequestFn: func(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
			return &entities.MaintenanceRequest{
				ID: id, Stage: constants.StageNew, MaintenanceTeamID: "team-1",
			}, nil
		},
		UpdateRequestFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			gotFields = fields
			return nil
		},
	}
	teamRepo := &mockTeamRepo{
		FindTeamFn: func(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
			return &entities.MaintenanceTeam{ID: "team-1", MemberIDs: []string{"tech-1"}}, nil
		},
	}

	svc := NewRequestService(requestRepo, &mockEquipmentRepo{}, teamRepo, zap.NewNop())

	_, err := svc.PickUpRequest(authedCtx("tech-1", constants.RoleTechnician), "r1")
	require.NoError(t, err)
	assert.Equal(t, "tech-1", gotFields["assigned_to_id"])
	assert.Equal(t, constants.StageInProgress, gotFields["stage"])

	// A technician outside the team is refused before anything is written.
	gotFields = nil
	_, err = svc.PickUpRequest(authedCtx("tech-2", constants.RoleTechnician), "r1")
	assert.ErrorIs(t, err, lifecycle.ErrNotTeamMember)
	assert.Nil(t, gotFields)
}

func TestUpdateRequestRejectsNonPositiveDuration(t *testing.T) {
	requestRepo := &mockRequestRepo{
		UpdateRequestFn: func(ctx context.Context, id string, fields map[string]interface{}) error {
			t.Fatal("invalid duration must not reach the repository")
			return nil
		},
	}

	svc := NewRequestService(requestRepo, &mockEquipmentRepo{}, &mockTeamRepo{}, zap.NewNop())

	payload := dto.UpdateRequestDTO{}
	payload.DurationHours.SetValid(-2)

	_, err := svc.UpdateRequest(context.Background(), "r1", payload)
	assert.ErrorIs(t, err, lifecycle.ErrInvalidDuration)
}
