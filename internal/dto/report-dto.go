package dto

import "gearguard/internal/board"

// RequestRegisterRowDTO is one line of the flat request register used by the
// XLSX export.
type RequestRegisterRowDTO struct {
	Subject       string   `json:"subject"`
	Type          string   `json:"type"`
	Stage         string   `json:"stage"`
	EquipmentName string   `json:"equipment_name"`
	TeamName      string   `json:"team_name"`
	AssignedTo    string   `json:"assigned_to"`
	ScheduledDate string   `json:"scheduled_date"`
	DurationHours *float64 `json:"duration_hours"`
	Overdue       bool     `json:"overdue"`
	CreatedAt     string   `json:"created_at"`
}

type ReportDTO struct {
	TeamStats []board.TeamStat        `json:"team_stats"`
	Register  []RequestRegisterRowDTO `json:"register"`
}
