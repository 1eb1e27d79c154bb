package dto

import "gearguard/internal/entities"

type ResolveScanDTO struct {
	Payload string `json:"payload" validate:"required"`
}

type ScanResultDTO struct {
	EquipmentID string              `json:"equipment_id"`
	Equipment   *entities.Equipment `json:"equipment,omitempty"`
}
