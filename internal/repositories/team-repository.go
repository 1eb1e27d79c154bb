package repositories

import (
	"context"
	"errors"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const teamFields = "id, name, description, member_ids, created_at, updated_at"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, team *entities.MaintenanceTeam) error
	UpdateTeam(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteTeam(ctx context.Context, id string) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func scanTeam(row pgx.Row) (*entities.MaintenanceTeam, error) {
	var t entities.MaintenanceTeam
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.MemberIDs, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if t.MemberIDs == nil {
		t.MemberIDs = []string{}
	}
	return &t, nil
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	rows, err := r.storage.Query(ctx, "SELECT "+teamFields+" FROM maintenance_teams ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		var t entities.MaintenanceTeam
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.MemberIDs, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		if t.MemberIDs == nil {
			t.MemberIDs = []string{}
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+teamFields+" FROM maintenance_teams WHERE id = $1", id)
	return scanTeam(row)
}

func (r *TeamRepository) CreateTeam(ctx context.Context, team *entities.MaintenanceTeam) error {
	_, err := r.storage.Exec(ctx, `
		INSERT INTO maintenance_teams (id, name, description, member_ids)
		VALUES ($1, $2, $3, $4)
	`, team.ID, team.Name, team.Description, team.MemberIDs)
	return err
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := sq.Update("maintenance_teams").
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

func (r *TeamRepository) DeleteTeam(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM maintenance_teams WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
