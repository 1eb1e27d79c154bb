package board

import (
	"strings"
	"time"

	"gearguard/internal/entities"
)

// Filter holds the active board/list criteria. Zero values mean "not active";
// active criteria combine conjunctively.
type Filter struct {
	EquipmentID string
	Type        string
	TeamID      string
	OverdueOnly bool
	Search      string
}

// Matches reports whether a request passes every active criterion.
// equipmentNames maps equipment id to name for the free-text search, which
// looks at the request subject OR the linked equipment's name.
func (f Filter) Matches(r *entities.MaintenanceRequest, equipmentNames map[string]string, now time.Time) bool {
	if f.EquipmentID != "" && r.EquipmentID != f.EquipmentID {
		return false
	}
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.TeamID != "" && r.MaintenanceTeamID != f.TeamID {
		return false
	}
	if f.OverdueOnly && !IsOverdue(r, now) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(f.Search))
		subject := strings.ToLower(r.Subject)
		eqName := strings.ToLower(equipmentNames[r.EquipmentID])
		if !strings.Contains(subject, needle) && !strings.Contains(eqName, needle) {
			return false
		}
	}
	return true
}

// FilterRequests returns the requests passing the filter, preserving order.
func FilterRequests(requests []entities.MaintenanceRequest, equipment []entities.Equipment, f Filter, now time.Time) []entities.MaintenanceRequest {
	names := EquipmentNameIndex(equipment)
	out := make([]entities.MaintenanceRequest, 0, len(requests))
	for i := range requests {
		if f.Matches(&requests[i], names, now) {
			out = append(out, requests[i])
		}
	}
	return out
}

// EquipmentNameIndex builds the id→name lookup used by the search criterion.
func EquipmentNameIndex(equipment []entities.Equipment) map[string]string {
	names := make(map[string]string, len(equipment))
	for i := range equipment {
		names[equipment[i].ID] = equipment[i].Name
	}
	return names
}
