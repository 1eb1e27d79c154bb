package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name                string  `json:"name" validate:"required,min=2,max=200"`
	SerialNumber        string  `json:"serial_number" validate:"required,max=120"`
	Category            string  `json:"category" validate:"required,equipment_category"`
	Department          string  `json:"department" validate:"required,max=120"`
	OwnerEmployeeName   string  `json:"owner_employee_name" validate:"required,max=200"`
	PurchaseDate        *string `json:"purchase_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry      *string `json:"warranty_expiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location            string  `json:"location" validate:"required,max=200"`
	MaintenanceTeamID   string  `json:"maintenance_team_id" validate:"required,uuid4"`
	DefaultTechnicianID *string `json:"default_technician_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateEquipmentDTO uses null fields so PATCH can distinguish "leave as is"
// from "clear". is_scrapped travels together with scrapped_reason; the service
// enforces the pairing.
type UpdateEquipmentDTO struct {
	Name                null.String `json:"name"`
	SerialNumber        null.String `json:"serial_number"`
	Category            null.String `json:"category" validate:"omitempty"`
	Department          null.String `json:"department"`
	OwnerEmployeeName   null.String `json:"owner_employee_name"`
	PurchaseDate        null.String `json:"purchase_date" validate:"omitempty"`
	WarrantyExpiry      null.String `json:"warranty_expiry" validate:"omitempty"`
	Location            null.String `json:"location"`
	MaintenanceTeamID   null.String `json:"maintenance_team_id"`
	DefaultTechnicianID null.String `json:"default_technician_id"`
	IsScrapped          null.Bool   `json:"is_scrapped"`
	ScrappedReason      null.String `json:"scrapped_reason"`
}

type ScrapEquipmentDTO struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}
