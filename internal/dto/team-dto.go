package dto

import "github.com/aarondl/null/v8"

type CreateTeamDTO struct {
	Name        string   `json:"name" validate:"required,min=2,max=120"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	MemberIDs   []string `json:"member_ids" validate:"omitempty,dive,uuid4"`
}

type UpdateTeamDTO struct {
	Name        null.String `json:"name" validate:"omitempty"`
	Description null.String `json:"description"`
	MemberIDs   []string    `json:"member_ids" validate:"omitempty,dive,uuid4"`
}
