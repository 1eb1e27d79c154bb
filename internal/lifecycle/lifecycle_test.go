package lifecycle

import (
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestTransitionFreeMoves(t *testing.T) {
	cases := []struct{ from, to string }{
		{constants.StageNew, constants.StageInProgress},
		{constants.StageNew, constants.StageScrap},
		{constants.StageInProgress, constants.StageNew},
		{constants.StageRepaired, constants.StageInProgress},
		{constants.StageScrap, constants.StageNew},
	}
	for _, tc := range cases {
		change, approved, err := Transition(tc.from, tc.to, nil, nil)
		require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		assert.True(t, approved)
		assert.Equal(t, tc.to, change.Stage)
		assert.Nil(t, change.DurationHours)
	}
}

func TestTransitionSameStageIsNoOp(t *testing.T) {
	change, approved, err := Transition(constants.StageInProgress, constants.StageInProgress, nil, nil)
	require.NoError(t, err)
	assert.False(t, approved)
	assert.Empty(t, change.Stage)
}

func TestTransitionToRepairedRequiresDuration(t *testing.T) {
	_, _, err := Transition(constants.StageInProgress, constants.StageRepaired, nil, nil)
	assert.ErrorIs(t, err, ErrDurationRequired)

	// Duration already recorded on the request.
	change, approved, err := Transition(constants.StageInProgress, constants.StageRepaired, f64(2.5), nil)
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Nil(t, change.DurationHours)

	// Duration supplied with the call is carried on the change.
	change, approved, err = Transition(constants.StageInProgress, constants.StageRepaired, nil, f64(4))
	require.NoError(t, err)
	assert.True(t, approved)
	require.NotNil(t, change.DurationHours)
	assert.Equal(t, 4.0, *change.DurationHours)
}

func TestTransitionRejectsNonPositiveDuration(t *testing.T) {
	_, _, err := Transition(constants.StageInProgress, constants.StageRepaired, nil, f64(0))
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, _, err = Transition(constants.StageNew, constants.StageInProgress, nil, f64(-1))
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestTransitionRejectsUnknownStage(t *testing.T) {
	_, _, err := Transition(constants.StageNew, "archived", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestCanPickUp(t *testing.T) {
	team := &entities.MaintenanceTeam{ID: "team-1", MemberIDs: []string{"tech-1"}}
	req := &entities.MaintenanceRequest{Stage: constants.StageNew, MaintenanceTeamID: "team-1"}

	assert.NoError(t, CanPickUp(req, "tech-1", constants.RoleTechnician, team))

	assert.ErrorIs(t, CanPickUp(req, "tech-1", constants.RoleManager, team), ErrNotTechnician)
	assert.ErrorIs(t, CanPickUp(req, "tech-2", constants.RoleTechnician, team), ErrNotTeamMember)

	otherTeam := &entities.MaintenanceTeam{ID: "team-2", MemberIDs: []string{"tech-1"}}
	assert.ErrorIs(t, CanPickUp(req, "tech-1", constants.RoleTechnician, otherTeam), ErrNotTeamMember)

	started := &entities.MaintenanceRequest{Stage: constants.StageInProgress, MaintenanceTeamID: "team-1"}
	assert.ErrorIs(t, CanPickUp(started, "tech-1", constants.RoleTechnician, team), ErrNotNewStage)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(constants.StageNew))
	assert.False(t, IsTerminal(constants.StageInProgress))
	assert.True(t, IsTerminal(constants.StageRepaired))
	assert.True(t, IsTerminal(constants.StageScrap))
}
