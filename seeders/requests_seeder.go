package seeders

import (
	"context"
	"time"

	"gearguard/pkg/constants"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func seedRequests(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) error {
	exists, err := tableHasRows(ctx, db, "maintenance_requests")
	if err != nil {
		return err
	}
	if exists {
		logger.Debug("requests already present, skipping")
		return nil
	}

	today := time.Now()
	lastWeek := today.AddDate(0, 0, -6)
	nextWeek := today.AddDate(0, 0, 7)

	requests := []struct {
		id, reqType, subject, description, equipmentID, category, teamID, stage string
		scheduledDate                                                           *time.Time
		assignedToID                                                            *string
	}{
		{seedReqPressID, constants.RequestTypeCorrective,
			"Press leaking hydraulic fluid", "Puddle forming under the main cylinder.",
			seedPressID, constants.CategoryMachinery, seedMechanicsID,
			constants.StageNew, &lastWeek, nil},
		{seedReqCNCID, constants.RequestTypeCorrective,
			"Spindle vibration above tolerance", "Vibration alarm trips at 8000 rpm.",
			seedCNCID, constants.CategoryMachinery, seedElectricsID,
			constants.StageInProgress, nil, strPtr(seedTechIgorID)},
		{seedReqForkPMID, constants.RequestTypePreventive,
			"Quarterly forklift inspection", "Brakes, forks, hydraulics checklist.",
			seedForkliftID, constants.CategoryVehicles, seedMechanicsID,
			constants.StageNew, &nextWeek, nil},
	}

	for _, r := range requests {
		_, err := db.Exec(ctx,
			`INSERT INTO maintenance_requests (id, type, subject, description, equipment_id,
				equipment_category, maintenance_team_id, stage, scheduled_date, assigned_to_id, created_by_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			r.id, r.reqType, r.subject, r.description, r.equipmentID,
			r.category, r.teamID, r.stage, r.scheduledDate, r.assignedToID, seedRequesterID,
		)
		if err != nil {
			return err
		}
	}

	logger.Info("seeded requests", zap.Int("count", len(requests)))
	return nil
}
