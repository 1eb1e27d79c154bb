package entities

import (
	"time"

	"gearguard/pkg/types"
)

type Equipment struct {
	ID                  string     `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	SerialNumber        string     `json:"serial_number" db:"serial_number"`
	Category            string     `json:"category" db:"category"`
	Department          string     `json:"department" db:"department"`
	OwnerEmployeeName   string     `json:"owner_employee_name" db:"owner_employee_name"`
	PurchaseDate        *time.Time `json:"purchase_date,omitempty" db:"purchase_date"`
	WarrantyExpiry      *time.Time `json:"warranty_expiry,omitempty" db:"warranty_expiry"`
	Location            string     `json:"location" db:"location"`
	MaintenanceTeamID   string     `json:"maintenance_team_id" db:"maintenance_team_id"`
	DefaultTechnicianID *string    `json:"default_technician_id,omitempty" db:"default_technician_id"`

	// scrapped_at and scrapped_reason are set together and only while
	// is_scrapped is true.
	IsScrapped     bool       `json:"is_scrapped" db:"is_scrapped"`
	ScrappedAt     *time.Time `json:"scrapped_at,omitempty" db:"scrapped_at"`
	ScrappedReason *string    `json:"scrapped_reason,omitempty" db:"scrapped_reason"`

	types.BaseEntity
}
