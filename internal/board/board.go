package board

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// GroupByStage partitions requests into the four stage buckets, preserving
// each request's relative position. Every stage key is present even when its
// bucket is empty, so the board renders empty columns.
func GroupByStage(requests []entities.MaintenanceRequest) map[string][]entities.MaintenanceRequest {
	groups := make(map[string][]entities.MaintenanceRequest, len(constants.OrderedStages))
	for _, stage := range constants.OrderedStages {
		groups[stage] = []entities.MaintenanceRequest{}
	}
	for i := range requests {
		groups[requests[i].Stage] = append(groups[requests[i].Stage], requests[i])
	}
	return groups
}

// CalendarBuckets places preventive requests with a scheduled date into
// per-day cells keyed by the YYYY-MM-DD date string.
func CalendarBuckets(requests []entities.MaintenanceRequest) map[string][]entities.MaintenanceRequest {
	days := make(map[string][]entities.MaintenanceRequest)
	for i := range requests {
		r := requests[i]
		if r.Type != constants.RequestTypePreventive || r.ScheduledDate == nil {
			continue
		}
		key := r.ScheduledDate.Format(constants.DateLayout)
		days[key] = append(days[key], r)
	}
	return days
}
