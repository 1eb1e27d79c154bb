package board

import (
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	"gearguard/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOverview(t *testing.T) {
	equipment := []entities.Equipment{
		{ID: "e1"},
		{ID: "e2", IsScrapped: true},
		{ID: "e3"},
	}
	requests := []entities.MaintenanceRequest{
		{Stage: constants.StageNew, ScheduledDate: day(testNow.AddDate(0, 0, -1))},
		{Stage: constants.StageInProgress},
		{Stage: constants.StageRepaired, BaseEntity: types.BaseEntity{UpdatedAt: testNow.AddDate(0, 0, -2)}},
		{Stage: constants.StageRepaired, BaseEntity: types.BaseEntity{UpdatedAt: testNow.AddDate(0, 0, -10)}},
		{Stage: constants.StageScrap},
	}

	o := BuildOverview(equipment, requests, testNow)

	assert.Equal(t, 3, o.TotalEquipment)
	assert.Equal(t, 2, o.ActiveEquipment)
	assert.Equal(t, 2, o.OpenRequests)
	assert.Equal(t, 1, o.OverdueRequests)
	assert.Equal(t, 1, o.RepairedLastWeek)
}

func TestCountByStageAlwaysHasFourKeys(t *testing.T) {
	counts := CountByStage([]entities.MaintenanceRequest{
		{Stage: constants.StageNew},
		{Stage: constants.StageNew},
		{Stage: constants.StageScrap},
	})

	require.Len(t, counts, 4)
	assert.Equal(t, 2, counts[constants.StageNew])
	assert.Equal(t, 0, counts[constants.StageInProgress])
	assert.Equal(t, 0, counts[constants.StageRepaired])
	assert.Equal(t, 1, counts[constants.StageScrap])
}

func TestTeamStatsCompletionRate(t *testing.T) {
	teams := []entities.MaintenanceTeam{
		{ID: "t1", Name: "Mechanics"},
		{ID: "t2", Name: "Electrics"},
	}
	requests := []entities.MaintenanceRequest{
		{MaintenanceTeamID: "t1", Stage: constants.StageRepaired},
		{MaintenanceTeamID: "t1", Stage: constants.StageRepaired},
		{MaintenanceTeamID: "t1", Stage: constants.StageInProgress},
	}

	stats := TeamStats(teams, requests)
	require.Len(t, stats, 2)

	mech := stats[0]
	assert.Equal(t, 3, mech.Total)
	assert.Equal(t, 1, mech.Open)
	assert.Equal(t, 2, mech.Repaired)
	// round(2/3*100) = 67
	assert.Equal(t, 67, mech.CompletionRate)

	// A team with no requests reports zero, not a division error.
	elec := stats[1]
	assert.Equal(t, 0, elec.Total)
	assert.Equal(t, 0, elec.CompletionRate)
}
