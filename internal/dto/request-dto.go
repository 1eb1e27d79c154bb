package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	Type          string  `json:"type" validate:"required,request_type"`
	Subject       string  `json:"subject" validate:"required,min=3,max=200"`
	Description   string  `json:"description" validate:"omitempty,max=2000"`
	EquipmentID   string  `json:"equipment_id" validate:"required,uuid4"`
	ScheduledDate *string `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AssignedToID  *string `json:"assigned_to_id,omitempty" validate:"omitempty,uuid4"`
}

// UpdateRequestDTO covers direct field edits. Stage is deliberately absent:
// stage changes go through the transition endpoint only.
type UpdateRequestDTO struct {
	Subject       null.String  `json:"subject"`
	Description   null.String  `json:"description"`
	ScheduledDate null.String  `json:"scheduled_date" validate:"omitempty"`
	DurationHours null.Float64 `json:"duration_hours"`
	AssignedToID  null.String  `json:"assigned_to_id"`
}

type TransitionRequestDTO struct {
	TargetStage   string   `json:"target_stage" validate:"required,request_stage"`
	DurationHours *float64 `json:"duration_hours,omitempty" validate:"omitempty,gt=0"`
}
