package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/repo/selector"
)

type Project struct {
	db  *bun.DB
	sel selector.S[model.Project]
}

func NewProject(db *bun.DB) *Project {
	return &Project{db: db, sel: selector.New[model.Project](db)}
}

func (r *Project) GetProjects(ctx context.Context) ([]*model.Project, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Order("project_id ASC")
	})
}

func (r *Project) GetProjectById(ctx context.Context, projectId int) (*model.Project, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("project_id = ?", projectId)
	})
}

func (r *Project) CreateProject(ctx context.Context, project *model.Project) error {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	_, err := r.db.NewInsert().
		Model(project).
		Returning("project_id").
		Exec(ctx)
	return err
}

// DeleteProjectCascading removes the project and every activity it owns in
// one transaction.
func (r *Project) DeleteProjectCascading(ctx context.Context, activityRepo *Activity, projectId int) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := activityRepo.DeleteActivitiesByProjectId(ctx, tx, projectId); err != nil {
			return err
		}
		_, err := tx.NewDelete().
			Model((*model.Project)(nil)).
			Where("project_id = ?", projectId).
			Exec(ctx)
		return err
	})
}
