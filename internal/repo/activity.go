package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/repo/selector"
)

type Activity struct {
	db  *bun.DB
	sel selector.S[model.Activity]
}

func NewActivity(db *bun.DB) *Activity {
	return &Activity{db: db, sel: selector.New[model.Activity](db)}
}

func (r *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("activity_id ASC")
	})
}

func (r *Activity) GetActivitiesByStatus(ctx context.Context, status string) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("status = ?", status).Order("activity_id ASC")
	})
}

func (r *Activity) GetActivitiesByProjectId(ctx context.Context, projectId int) ([]*model.Activity, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("project_id = ?", projectId).Order("activity_id ASC")
	})
}

func (r *Activity) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("activity_id = ?", activityId)
	})
}

func (r *Activity) CreateActivity(ctx context.Context, activity *model.Activity) error {
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	_, err := r.db.NewInsert().
		Model(activity).
		Returning("activity_id").
		Exec(ctx)
	return err
}

func (r *Activity) UpdateActivity(ctx context.Context, activity *model.Activity) error {
	activity.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(activity).
		WherePK().
		Exec(ctx)
	return err
}

func (r *Activity) UpdateActivityStatus(ctx context.Context, activityId int, status string) error {
	_, err := r.db.NewUpdate().
		Model((*model.Activity)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	return err
}

func (r *Activity) DeleteActivity(ctx context.Context, activityId int) error {
	_, err := r.db.NewDelete().
		Model((*model.Activity)(nil)).
		Where("activity_id = ?", activityId).
		Exec(ctx)
	return err
}

// DeleteActivitiesByProjectId implements the cascade: no activity outlives
// its owning project.
func (r *Activity) DeleteActivitiesByProjectId(ctx context.Context, tx bun.IDB, projectId int) error {
	_, err := tx.NewDelete().
		Model((*model.Activity)(nil)).
		Where("project_id = ?", projectId).
		Exec(ctx)
	return err
}
