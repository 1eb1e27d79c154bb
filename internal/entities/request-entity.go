package entities

import (
	"time"

	"gearguard/pkg/types"
)

type MaintenanceRequest struct {
	ID          string `json:"id" db:"id"`
	Type        string `json:"type" db:"type"`
	Subject     string `json:"subject" db:"subject"`
	Description string `json:"description" db:"description"`

	// EquipmentID is immutable after creation. EquipmentCategory and
	// MaintenanceTeamID are snapshots of the equipment's values taken when the
	// request is created; they intentionally do not track later edits to the
	// equipment record.
	EquipmentID       string `json:"equipment_id" db:"equipment_id"`
	EquipmentCategory string `json:"equipment_category" db:"equipment_category"`
	MaintenanceTeamID string `json:"maintenance_team_id" db:"maintenance_team_id"`

	Stage         string     `json:"stage" db:"stage"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty" db:"scheduled_date"`
	DurationHours *float64   `json:"duration_hours,omitempty" db:"duration_hours"`
	AssignedToID  *string    `json:"assigned_to_id,omitempty" db:"assigned_to_id"`
	CreatedByID   string     `json:"created_by_id" db:"created_by_id"`

	types.BaseEntity
}
