package board

import (
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByStageKeepsAllColumns(t *testing.T) {
	requests := []entities.MaintenanceRequest{
		{ID: "r1", Stage: constants.StageNew},
		{ID: "r2", Stage: constants.StageInProgress},
		{ID: "r3", Stage: constants.StageNew},
	}

	groups := GroupByStage(requests)

	require.Len(t, groups, 4)
	for _, stage := range constants.OrderedStages {
		require.Contains(t, groups, stage)
	}
	assert.Empty(t, groups[constants.StageRepaired])
	assert.Empty(t, groups[constants.StageScrap])

	// Relative order within a column follows the input order.
	require.Len(t, groups[constants.StageNew], 2)
	assert.Equal(t, "r1", groups[constants.StageNew][0].ID)
	assert.Equal(t, "r3", groups[constants.StageNew][1].ID)
}

func TestGroupByStageEmptyInput(t *testing.T) {
	groups := GroupByStage(nil)
	require.Len(t, groups, 4)
	for _, stage := range constants.OrderedStages {
		assert.Empty(t, groups[stage])
	}
}

func TestCalendarBuckets(t *testing.T) {
	d1 := testNow.AddDate(0, 0, 3)
	d2 := testNow.AddDate(0, 0, 5)

	requests := []entities.MaintenanceRequest{
		{ID: "p1", Type: constants.RequestTypePreventive, ScheduledDate: day(d1)},
		{ID: "p2", Type: constants.RequestTypePreventive, ScheduledDate: day(d1)},
		{ID: "p3", Type: constants.RequestTypePreventive, ScheduledDate: day(d2)},
		// Corrective and unscheduled requests never reach the calendar.
		{ID: "c1", Type: constants.RequestTypeCorrective, ScheduledDate: day(d1)},
		{ID: "p4", Type: constants.RequestTypePreventive},
	}

	days := CalendarBuckets(requests)

	require.Len(t, days, 2)
	key1 := d1.Format(constants.DateLayout)
	require.Len(t, days[key1], 2)
	assert.Equal(t, "p1", days[key1][0].ID)
	assert.Equal(t, "p2", days[key1][1].ID)
	assert.Len(t, days[d2.Format(constants.DateLayout)], 1)
}
