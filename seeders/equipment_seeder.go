package seeders

import (
	"context"

	"gearguard/pkg/constants"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func seedEquipment(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	exists, err := tableHasRows(ctx, db, "equipment")
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("equipment already present, skipping")
		return nil
	}

	items := []struct {
		id, name, serial, category, department, owner, location, teamID string
		technicianID                                                    *string
	}{
		{seedPressID, "Hydraulic Press HP-200", "HP200-0017", constants.CategoryMachinery,
			"Stamping", "Pavel Orlov", "Hall A / Bay 3", seedMechanicsID, strPtr(seedTechMayaID)},
		{seedCNCID, "CNC Mill VX-5", "VX5-0442", constants.CategoryMachinery,
			"Machining", "Dana Kim", "Hall B / Bay 1", seedElectricsID, strPtr(seedTechIgorID)},
		{seedForkliftID, "Forklift FL-3", "FL3-1190", constants.CategoryVehicles,
			"Logistics", "Omar Aliyev", "Warehouse dock", seedMechanicsID, nil},
	}

	for _, e := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO equipment (id, name, serial_number, category, department,
				owner_employee_name, location, maintenance_team_id, default_technician_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			e.id, e.name, e.serial, e.category, e.department, e.owner, e.location, e.teamID, e.technicianID,
		)
		if err != nil {
			return err
		}
	}

	logger.Info("seeded equipment", zap.Int("count", len(items)))
	return nil
}

func strPtr(s string) *string { return &s }
