// Package lifecycle holds the maintenance-request stage state machine. It is
// pure: decisions are made here, persistence happens in the service layer
// after a decision is approved, never before.
package lifecycle

import (
	"fmt"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

var (
	ErrUnknownStage     = apperrors.NewInvalidInputError("unknown target stage")
	ErrDurationRequired = apperrors.NewInvalidInputError("a duration is required before a request can be marked repaired")
	ErrInvalidDuration  = apperrors.NewInvalidInputError("duration must be a positive number of hours")
	ErrNotNewStage      = apperrors.NewInvalidInputError("only requests in the new stage can be picked up")
	ErrNotTechnician    = apperrors.NewInvalidInputError("only technicians can pick up requests")
	ErrNotTeamMember    = apperrors.NewInvalidInputError("only members of the request's maintenance team can pick it up")
)

// Change is an approved stage transition. DurationHours is non-nil only when a
// duration was supplied together with the transition and must be persisted
// atomically with the stage.
type Change struct {
	Stage         string
	DurationHours *float64
}

// Transition decides whether a request may move to targetStage.
//
// Any stage pair is allowed; the single gated edge is entering repaired, which
// requires a duration either already on the request or supplied with the call.
// A transition to the current stage is a no-op (approved=false, no error).
func Transition(current, targetStage string, existingDuration, suppliedDuration *float64) (Change, bool, error) {
	if !constants.IsValidStage(targetStage) {
		return Change{}, false, fmt.Errorf("%w: %q", ErrUnknownStage, targetStage)
	}

	if targetStage == current {
		return Change{}, false, nil
	}

	if suppliedDuration != nil && *suppliedDuration <= 0 {
		return Change{}, false, ErrInvalidDuration
	}

	if targetStage == constants.StageRepaired && existingDuration == nil && suppliedDuration == nil {
		return Change{}, false, ErrDurationRequired
	}

	return Change{Stage: targetStage, DurationHours: suppliedDuration}, true, nil
}

// CanPickUp checks the technician shortcut preconditions: request still new,
// caller is a technician and belongs to the request's maintenance team.
func CanPickUp(req *entities.MaintenanceRequest, callerID, callerRole string, team *entities.MaintenanceTeam) error {
	if req.Stage != constants.StageNew {
		return ErrNotNewStage
	}
	if callerRole != constants.RoleTechnician {
		return ErrNotTechnician
	}
	if team == nil || team.ID != req.MaintenanceTeamID || !team.HasMember(callerID) {
		return ErrNotTeamMember
	}
	return nil
}

// IsTerminal reports whether a stage admits no further work.
func IsTerminal(stage string) bool {
	return constants.IsFinalStage(stage)
}
