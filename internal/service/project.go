package service

import (
	"context"
	"time"

	"github.com/samber/lo"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/model/cache"
	"canvasflow.dev/backend/internal/model/types"
	"canvasflow.dev/backend/internal/pkg/cferr"
	"canvasflow.dev/backend/internal/pkg/event"
	"canvasflow.dev/backend/internal/repo"
)

type Project struct {
	ProjectRepo  *repo.Project
	ActivityRepo *repo.Activity
	Publisher    *event.Publisher
}

func NewProject(projectRepo *repo.Project, activityRepo *repo.Activity, publisher *event.Publisher) *Project {
	return &Project{
		ProjectRepo:  projectRepo,
		ActivityRepo: activityRepo,
		Publisher:    publisher,
	}
}

// Cache: 5 minutes. Flushed on every project mutation.
func (s *Project) GetProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	err := cache.Projects.MutexGetSet(&projects, func() ([]*model.Project, error) {
		return s.ProjectRepo.GetProjects(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetColorMap returns project id → palette color for card and bar tinting.
func (s *Project) GetColorMap(ctx context.Context) (map[int]string, error) {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	return lo.SliceToMap(projects, func(p *model.Project) (int, string) {
		return p.ProjectID, p.Color
	}), nil
}

func (s *Project) CreateProject(ctx context.Context, req *types.CreateProjectRequest) (*model.Project, error) {
	projects, err := s.GetProjects(ctx)
	if err != nil {
		return nil, err
	}

	used := lo.SliceToMap(projects, func(p *model.Project) (string, struct{}) {
		return p.Color, struct{}{}
	})

	color := req.Color
	if color == "" {
		// auto-assign the first free palette color
		free, ok := lo.Find(constant.ProjectPalette, func(c string) bool {
			_, taken := used[c]
			return !taken
		})
		if !ok {
			return nil, cferr.ErrInvalidReq.Msg("color palette exhausted: all %d colors are in use", len(constant.ProjectPalette))
		}
		color = free
	} else if _, taken := used[color]; taken {
		return nil, cferr.ErrInvalidReq.Msg("color %s is already used by another project", color)
	}

	project := &model.Project{
		Name:  req.Name,
		Color: color,
	}
	if err := s.ProjectRepo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	s.flushProjectCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectProjects, "project.created", project)
	return project, nil
}

// DeleteProject cascades: the project's activities go with it.
func (s *Project) DeleteProject(ctx context.Context, projectId int) error {
	project, err := s.ProjectRepo.GetProjectById(ctx, projectId)
	if err != nil {
		return err
	}

	if err := s.ProjectRepo.DeleteProjectCascading(ctx, s.ActivityRepo, projectId); err != nil {
		return err
	}

	s.flushProjectCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectProjects, "project.deleted", project)
	return nil
}

func (s *Project) flushProjectCaches() {
	_ = cache.Projects.Flush()
	_ = cache.Activities.Flush()
	_ = cache.TimelineLayouts.Flush()
	_ = cache.LastModifiedTime.Set("[board]", time.Now(), 0)
}
