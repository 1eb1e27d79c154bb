package entities

import (
	"gearguard/pkg/types"
)

type User struct {
	ID       string `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	FullName string `json:"full_name" db:"full_name"`
	Role     string `json:"role" db:"role"`

	Password string `json:"-" db:"password"`

	TeamID    *string `json:"team_id,omitempty" db:"team_id"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"avatar_url"`

	types.BaseEntity
}
