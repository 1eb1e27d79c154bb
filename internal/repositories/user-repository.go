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

const userFields = "id, email, full_name, role, password, team_id, avatar_url, created_at, updated_at"

type UserRepositoryInterface interface {
	GetUsers(ctx context.Context, role string) ([]entities.User, error)
	FindUserByID(ctx context.Context, id string) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Role,
		&u.Password,
		&u.TeamID,
		&u.AvatarURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, role string) ([]entities.User, error) {
	builder := sq.Select(userFields).
		From("users").
		OrderBy("full_name ASC").
		PlaceholderFormat(sq.Dollar)

	if role != "" {
		builder = builder.Where(sq.Eq{"role": role})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FullName, &u.Role, &u.Password,
			&u.TeamID, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+userFields+" FROM users WHERE id = $1", id)
	return scanUser(row)
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	row := r.storage.QueryRow(ctx, "SELECT "+userFields+" FROM users WHERE lower(email) = lower($1)", email)
	return scanUser(row)
}
