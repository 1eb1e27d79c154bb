package board

import (
	"math"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

type Overview struct {
	TotalEquipment   int `json:"total_equipment"`
	ActiveEquipment  int `json:"active_equipment"`
	OpenRequests     int `json:"open_requests"`
	OverdueRequests  int `json:"overdue_requests"`
	RepairedLastWeek int `json:"repaired_last_week"`
}

// BuildOverview computes the dashboard headline counters. "Repaired last
// week" means stage repaired with updated_at inside the trailing 7 days.
func BuildOverview(equipment []entities.Equipment, requests []entities.MaintenanceRequest, now time.Time) Overview {
	o := Overview{TotalEquipment: len(equipment)}

	for i := range equipment {
		if !equipment[i].IsScrapped {
			o.ActiveEquipment++
		}
	}

	weekAgo := now.AddDate(0, 0, -7)
	for i := range requests {
		r := &requests[i]
		if r.Stage == constants.StageNew || r.Stage == constants.StageInProgress {
			o.OpenRequests++
		}
		if IsOverdue(r, now) {
			o.OverdueRequests++
		}
		if r.Stage == constants.StageRepaired && !r.UpdatedAt.Before(weekAgo) {
			o.RepairedLastWeek++
		}
	}
	return o
}

// CountByStage tallies requests per stage; all four stages are present.
func CountByStage(requests []entities.MaintenanceRequest) map[string]int {
	counts := make(map[string]int, len(constants.OrderedStages))
	for _, stage := range constants.OrderedStages {
		counts[stage] = 0
	}
	for i := range requests {
		counts[requests[i].Stage]++
	}
	return counts
}

type TeamStat struct {
	TeamID         string `json:"team_id"`
	TeamName       string `json:"team_name"`
	Total          int    `json:"total"`
	Open           int    `json:"open"`
	Repaired       int    `json:"repaired"`
	CompletionRate int    `json:"completion_rate"`
}

// TeamStats aggregates request counts per team. Completion rate is
// round(repaired/total*100); a team with no requests reports 0, not NaN.
func TeamStats(teams []entities.MaintenanceTeam, requests []entities.MaintenanceRequest) []TeamStat {
	stats := make([]TeamStat, 0, len(teams))
	for i := range teams {
		t := &teams[i]
		st := TeamStat{TeamID: t.ID, TeamName: t.Name}
		for j := range requests {
			r := &requests[j]
			if r.MaintenanceTeamID != t.ID {
				continue
			}
			st.Total++
			switch r.Stage {
			case constants.StageNew, constants.StageInProgress:
				st.Open++
			case constants.StageRepaired:
				st.Repaired++
			}
		}
		if st.Total > 0 {
			st.CompletionRate = int(math.Round(float64(st.Repaired) / float64(st.Total) * 100))
		}
		stats = append(stats, st)
	}
	return stats
}
