// Package board derives every read-model view of the request collections:
// kanban grouping, conjunctive filtering, calendar buckets, the notification
// feed and dashboard aggregates. All functions are pure; "now" is an argument,
// inputs are never mutated.
package board

import (
	"time"

	"gearguard/internal/entities"
	"gearguard/internal/lifecycle"
	"gearguard/pkg/utils"
)

// IsOverdue reports whether a request's scheduled day has passed. Terminal
// requests are never overdue, whatever their schedule says.
func IsOverdue(r *entities.MaintenanceRequest, now time.Time) bool {
	if lifecycle.IsTerminal(r.Stage) {
		return false
	}
	if r.ScheduledDate == nil {
		return false
	}
	return utils.StartOfDay(*r.ScheduledDate).Before(utils.StartOfDay(now))
}

// DaysOverdue counts whole days between the scheduled day and today. Never
// negative; 0 for anything not overdue.
func DaysOverdue(r *entities.MaintenanceRequest, now time.Time) int {
	if r.ScheduledDate == nil {
		return 0
	}
	diff := utils.StartOfDay(now).Sub(utils.StartOfDay(*r.ScheduledDate))
	days := int(diff.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
