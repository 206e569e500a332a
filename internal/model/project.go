package model

import (
	"time"

	"github.com/uptrace/bun"
)

type Project struct {
	bun.BaseModel `bun:"projects,alias:prj"`

	ProjectID int    `bun:",pk,autoincrement" json:"id"`
	Name      string `json:"name"`

	// Color comes from constant.ProjectPalette and is unique per owner;
	// the core uses it only to tint bars and badges.
	Color string `json:"color"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
