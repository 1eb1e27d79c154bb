package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const equipmentFields = `id, name, serial_number, category, department, owner_employee_name,
	purchase_date, warranty_expiry, location, maintenance_team_id, default_technician_id,
	is_scrapped, scrapped_at, scrapped_reason, created_at, updated_at`

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, e *entities.Equipment) error
	UpdateEquipment(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Department, &e.OwnerEmployeeName,
		&e.PurchaseDate, &e.WarrantyExpiry, &e.Location, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
		&e.IsScrapped, &e.ScrappedAt, &e.ScrappedReason, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	builder := sq.Select(equipmentFields).
		From("equipment").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	countBuilder := sq.Select("COUNT(*)").From("equipment").PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		cond := sq.Or{
			sq.ILike{"name": like},
			sq.ILike{"serial_number": like},
			sq.ILike{"location": like},
		}
		builder = builder.Where(cond)
		countBuilder = countBuilder.Where(cond)
	}
	if category, ok := filter.Filter["category"]; ok {
		builder = builder.Where(sq.Eq{"category": category})
		countBuilder = countBuilder.Where(sq.Eq{"category": category})
	}
	if teamID, ok := filter.Filter["maintenance_team_id"]; ok {
		builder = builder.Where(sq.Eq{"maintenance_team_id": teamID})
		countBuilder = countBuilder.Where(sq.Eq{"maintenance_team_id": teamID})
	}
	if scrapped, ok := filter.Filter["is_scrapped"]; ok {
		builder = builder.Where(sq.Eq{"is_scrapped": scrapped == "true"})
		countBuilder = countBuilder.Where(sq.Eq{"is_scrapped": scrapped == "true"})
	}

	// A zero limit loads the whole collection; the view derivations depend on
	// seeing every row.
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.SerialNumber, &e.Category, &e.Department, &e.OwnerEmployeeName,
			&e.PurchaseDate, &e.WarrantyExpiry, &e.Location, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
			&e.IsScrapped, &e.ScrappedAt, &e.ScrappedReason, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+equipmentFields+" FROM equipment WHERE id = $1", id)
	return scanEquipment(row)
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO equipment (
			id, name, serial_number, category, department, owner_employee_name,
			purchase_date, warranty_expiry, location, maintenance_team_id,
			default_technician_id, is_scrapped, scrapped_at, scrapped_reason
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`,
		e.ID, e.Name, e.SerialNumber, e.Category, e.Department, e.OwnerEmployeeName,
		e.PurchaseDate, e.WarrantyExpiry, e.Location, e.MaintenanceTeamID,
		e.DefaultTechnicianID, e.IsScrapped, e.ScrappedAt, e.ScrappedReason,
	)
	return err
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("equipment").
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

// DeleteEquipmentInTx removes the equipment row inside the caller's
// transaction; the service deletes the dependent requests in the same tx so
// the cascade is atomic.
func (r *EquipmentRepository) DeleteEquipmentInTx(ctx context.Context, tx pgx.Tx, id string) error {
	result, err := tx.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
