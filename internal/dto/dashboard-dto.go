package dto

import "gearguard/internal/board"

type DashboardDTO struct {
	Overview     board.Overview   `json:"overview"`
	CountByStage map[string]int   `json:"count_by_stage"`
	TeamStats    []board.TeamStat `json:"team_stats"`
}
