package types

import (
	json "github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"
)

type CreateActivityRequest struct {
	Title        string          `json:"title" validate:"required,max=200"`
	ProjectID    null.Int        `json:"projectId,omitempty" swaggertype:"integer"`
	StartDate    string          `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationDays null.Int        `json:"durationDays,omitempty" swaggertype:"integer" validate:"omitempty,gte=0"`
	Progress     int             `json:"progress,omitempty" validate:"gte=0,lte=100"`
	Notes        json.RawMessage `json:"notes,omitempty"`
}

// UpdateActivityRequest is a partial patch: nil fields are left untouched.
// ProjectID and DurationDays distinguish "absent" (nil pointer) from
// "set to null" (valid=false) so an activity can be made private or
// open-ended explicitly.
type UpdateActivityRequest struct {
	Title        *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	ProjectID    *null.Int       `json:"projectId,omitempty" swaggertype:"integer"`
	StartDate    *string         `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationDays *null.Int       `json:"durationDays,omitempty" swaggertype:"integer"`
	Progress     *int            `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes        json.RawMessage `json:"notes,omitempty"`
}

type MoveActivityRequest struct {
	Status string `json:"status" validate:"required,boardstatus"`
}

type CreateProjectRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color,omitempty" validate:"omitempty,projectcolor"`
}
