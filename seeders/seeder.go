// Package seeders loads a small demo dataset for local development. Every
// seeder is idempotent: it checks for its marker rows before inserting.
package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func Run(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	logger.Info("seeding demo data")

	steps := []struct {
		name string
		fn   func(context.Context, *pgxpool.Pool, *zap.Logger) error
	}{
		{"users", seedUsers},
		{"teams", seedTeams},
		{"equipment", seedEquipment},
		{"requests", seedRequests},
	}

	for _, step := range steps {
		if err := step.fn(ctx, db, logger); err != nil {
			logger.Error("seed step failed", zap.String("step", step.name), zap.Error(err))
			return err
		}
	}

	logger.Info("demo data seeded")
	return nil
}

func tableHasRows(ctx context.Context, db *pgxpool.Pool, table string) (bool, error) {
	var count int64
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
