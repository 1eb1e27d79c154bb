package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const requestFields = `id, type, subject, description, equipment_id, equipment_category,
	maintenance_team_id, stage, scheduled_date, duration_hours, assigned_to_id,
	created_by_id, created_at, updated_at`

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, r *entities.MaintenanceRequest) error
	UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteRequest(ctx context.Context, id string) error
	DeleteRequestsByEquipmentInTx(ctx context.Context, tx pgx.Tx, equipmentID string) error
	CountRequestsByTeam(ctx context.Context, teamID string) (int64, error)
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var r entities.MaintenanceRequest
	err := row.Scan(
		&r.ID, &r.Type, &r.Subject, &r.Description, &r.EquipmentID, &r.EquipmentCategory,
		&r.MaintenanceTeamID, &r.Stage, &r.ScheduledDate, &r.DurationHours, &r.AssignedToID,
		&r.CreatedByID, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// GetRequests returns the full request collection, newest first. Board and
// list views are derived in memory from this snapshot.
func (r *RequestRepository) GetRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	rows, err := r.storage.Query(ctx, "SELECT "+requestFields+" FROM maintenance_requests ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var req entities.MaintenanceRequest
		if err := rows.Scan(
			&req.ID, &req.Type, &req.Subject, &req.Description, &req.EquipmentID, &req.EquipmentCategory,
			&req.MaintenanceTeamID, &req.Stage, &req.ScheduledDate, &req.DurationHours, &req.AssignedToID,
			&req.CreatedByID, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+requestFields+" FROM maintenance_requests WHERE id = $1", id)
	return scanRequest(row)
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req *entities.MaintenanceRequest) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO maintenance_requests (
			id, type, subject, description, equipment_id, equipment_category,
			maintenance_team_id, stage, scheduled_date, duration_hours,
			assigned_to_id, created_by_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		req.ID, req.Type, req.Subject, req.Description, req.EquipmentID, req.EquipmentCategory,
		req.MaintenanceTeamID, req.Stage, req.ScheduledDate, req.DurationHours,
		req.AssignedToID, req.CreatedByID,
	)
	return err
}

func (r *RequestRepository) UpdateRequest(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("maintenance_requests").
		SetMap(fields).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequestsByEquipmentInTx(ctx context.Context, tx pgx.Tx, equipmentID string) error {
	_, err := tx.Exec(ctx, "DELETE FROM maintenance_requests WHERE equipment_id = $1", equipmentID)
	return err
}

func (r *RequestRepository) CountRequestsByTeam(ctx context.Context, teamID string) (int64, error) {
	var count int64
	err := r.storage.QueryRow(ctx, "SELECT COUNT(*) FROM maintenance_requests WHERE maintenance_team_id = $1", teamID).Scan(&count)
	return count, err
}
