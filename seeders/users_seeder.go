package seeders

import (
	"context"

	"gearguard/pkg/constants"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func seedUsers(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	exists, err := tableHasRows(ctx, db, "users")
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("users already present, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedDemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct {
		id, email, fullName, role string
	}{
		{seedAdminID, "admin@gearguard.local", "Alex Admin", constants.RoleAdmin},
		{seedManagerID, "manager@gearguard.local", "Marta Manager", constants.RoleManager},
		{seedTechMayaID, "maya@gearguard.local", "Maya Volkova", constants.RoleTechnician},
		{seedTechIgorID, "igor@gearguard.local", "Igor Petrov", constants.RoleTechnician},
		{seedRequesterID, "operator@gearguard.local", "Omar Operator", constants.RoleRequester},
	}

	for _, u := range users {
		_, err := db.Exec(ctx,
			`INSERT INTO users (id, email, full_name, role, password) VALUES ($1, $2, $3, $4, $5)`,
			u.id, u.email, u.fullName, u.role, string(hash),
		)
		if err != nil {
			return err
		}
	}

	logger.Info("seeded users", zap.Int("count", len(users)))
	return nil
}
