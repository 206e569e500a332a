package types

import (
	json "github.com/goccy/go-json"
	"gopkg.in/guregu/null.v3"
)

// Assistant command verbs. The chat assistant manipulates board data through
// a tagged-variant command set dispatched by a single interpreter; it never
// reaches the repositories directly.
const (
	CommandCreate      = "create"
	CommandUpdate      = "update"
	CommandMove        = "move"
	CommandDelete      = "delete"
	CommandBatchCreate = "batch_create"
)

// CommandEnvelope is the raw tagged envelope. Type selects the payload
// variant; the remaining fields are decoded per-verb.
type CommandEnvelope struct {
	Type string          `json:"type" validate:"required,oneof=create update move delete batch_create"`
	Raw  json.RawMessage `json:"-"`
}

type CreateCommand struct {
	Title        string          `json:"title" validate:"required,max=200"`
	ProjectID    null.Int        `json:"projectId,omitempty" swaggertype:"integer"`
	StartDate    string          `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationDays null.Int        `json:"durationDays,omitempty" swaggertype:"integer" validate:"omitempty,gte=0"`
	Notes        json.RawMessage `json:"notes,omitempty"`
}

type UpdateCommand struct {
	ActivityID   int             `json:"activityId" validate:"required,gt=0"`
	Title        *string         `json:"title,omitempty" validate:"omitempty,max=200"`
	ProjectID    *null.Int       `json:"projectId,omitempty" swaggertype:"integer"`
	StartDate    *string         `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DurationDays *null.Int       `json:"durationDays,omitempty" swaggertype:"integer"`
	Progress     *int            `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	Notes        json.RawMessage `json:"notes,omitempty"`
}

type MoveCommand struct {
	ActivityID int    `json:"activityId" validate:"required,gt=0"`
	Status     string `json:"status" validate:"required,boardstatus"`
}

type DeleteCommand struct {
	ActivityID int `json:"activityId" validate:"required,gt=0"`
}

type BatchCreateCommand struct {
	Items []CreateCommand `json:"items" validate:"required,min=1,max=50,dive"`
}

// CommandResult reports the outcome of a single dispatched command.
type CommandResult struct {
	Type       string      `json:"type"`
	OK         bool        `json:"ok"`
	ActivityID int         `json:"activityId,omitempty"`
	Error      string      `json:"error,omitempty"`
	Detail     interface{} `json:"detail,omitempty"`
}
