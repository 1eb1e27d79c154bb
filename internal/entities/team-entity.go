package entities

import (
	"gearguard/pkg/types"
)

type MaintenanceTeam struct {
	ID          string   `json:"id" db:"id"`
	Name        string   `json:"name" db:"name"`
	Description *string  `json:"description,omitempty" db:"description"`
	MemberIDs   []string `json:"member_ids" db:"member_ids"`

	types.BaseEntity
}

// HasMember reports whether the given user belongs to the team.
func (t *MaintenanceTeam) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
