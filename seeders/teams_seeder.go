package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func seedTeams(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	exists, err := tableHasRows(ctx, db, "maintenance_teams")
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("teams already present, skipping")
		return nil
	}

	teams := []struct {
		id, name, description string
		memberIDs             []string
	}{
		{seedMechanicsID, "Mechanics", "General mechanical maintenance", []string{seedTechMayaID}},
		{seedElectricsID, "Electrics", "Electrical systems and controls", []string{seedTechIgorID}},
	}

	for _, t := range teams {
		_, err := db.Exec(ctx,
			`INSERT INTO maintenance_teams (id, name, description, member_ids) VALUES ($1, $2, $3, $4)`,
			t.id, t.name, t.description, t.memberIDs,
		)
		if err != nil {
			return err
		}
	}

	logger.Info("seeded teams", zap.Int("count", len(teams)))
	return nil
}
