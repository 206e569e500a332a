package model

import (
	"time"

	json "github.com/goccy/go-json"

	"github.com/uptrace/bun"
	"gopkg.in/guregu/null.v3"
)

type Activity struct {
	bun.BaseModel `bun:"activities,alias:act"`

	ActivityID int `bun:",pk,autoincrement" json:"id"`

	// ProjectID is null for private activities that belong to no project.
	ProjectID null.Int `json:"projectId" swaggertype:"integer"`

	// Status is one of constant.Statuses. Finished activities are deleted
	// outright by policy, so a persisted row is always todo or doing plus a
	// short-lived finished window inside the delete transaction.
	Status string `json:"status"`

	Title string `json:"title"`

	// StartDate carries day granularity; all scheduling math truncates it.
	StartDate time.Time `json:"startDate"`

	// DurationDays absent means open-ended: the activity visually grows to
	// the present day. A duration of 0 is a real zero-length plan.
	DurationDays null.Int `json:"durationDays,omitempty" swaggertype:"integer"`

	// Progress in percent, 0-100.
	Progress int `json:"progress"`

	Notes json.RawMessage `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
