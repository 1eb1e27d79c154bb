package dto

import (
	"gearguard/internal/board"
	"gearguard/internal/entities"
)

type BoardColumnDTO struct {
	Stage    string                        `json:"stage"`
	Requests []entities.MaintenanceRequest `json:"requests"`
	Count    int                           `json:"count"`
}

type BoardDTO struct {
	Columns []BoardColumnDTO `json:"columns"`
	Total   int              `json:"total"`
}

type CalendarDTO struct {
	// Days maps YYYY-MM-DD to the preventive requests scheduled on that day.
	Days map[string][]entities.MaintenanceRequest `json:"days"`
}

type NotificationsDTO struct {
	Items []board.Notification `json:"items"`
}
