package service

import (
	"context"
	"time"

	"gopkg.in/guregu/null.v3"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/model/cache"
	"canvasflow.dev/backend/internal/model/types"
	"canvasflow.dev/backend/internal/pkg/cferr"
	"canvasflow.dev/backend/internal/pkg/event"
	"canvasflow.dev/backend/internal/repo"
	"canvasflow.dev/backend/internal/util/timeutil"
)

type Activity struct {
	ActivityRepo *repo.Activity
	ProjectRepo  *repo.Project
	Publisher    *event.Publisher
}

func NewActivity(activityRepo *repo.Activity, projectRepo *repo.Project, publisher *event.Publisher) *Activity {
	return &Activity{
		ActivityRepo: activityRepo,
		ProjectRepo:  projectRepo,
		Publisher:    publisher,
	}
}

// Cache: 5 minutes. The full list is small and every mutation flushes.
func (s *Activity) GetActivities(ctx context.Context) ([]*model.Activity, error) {
	var activities []*model.Activity
	err := cache.Activities.MutexGetSet(&activities, func() ([]*model.Activity, error) {
		return s.ActivityRepo.GetActivities(ctx)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetActivitiesFiltered bypasses the singular cache: filtered listings hit the
// repo directly instead of multiplying cache keys per filter combination.
func (s *Activity) GetActivitiesFiltered(ctx context.Context, status string, projectId null.Int) ([]*model.Activity, error) {
	if status == "" && !projectId.Valid {
		return s.GetActivities(ctx)
	}
	if projectId.Valid {
		activities, err := s.ActivityRepo.GetActivitiesByProjectId(ctx, int(projectId.Int64))
		if err != nil {
			return nil, err
		}
		if status == "" {
			return activities, nil
		}
		filtered := make([]*model.Activity, 0, len(activities))
		for _, a := range activities {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		return filtered, nil
	}
	return s.ActivityRepo.GetActivitiesByStatus(ctx, status)
}

func (s *Activity) GetActivityById(ctx context.Context, activityId int) (*model.Activity, error) {
	return s.ActivityRepo.GetActivityById(ctx, activityId)
}

func (s *Activity) CreateActivity(ctx context.Context, req *types.CreateActivityRequest) (*model.Activity, error) {
	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	if req.ProjectID.Valid {
		if _, err := s.ProjectRepo.GetProjectById(ctx, int(req.ProjectID.Int64)); err != nil {
			return nil, cferr.ErrNotFound.Msg("project %d does not exist", req.ProjectID.Int64)
		}
	}

	activity := &model.Activity{
		ProjectID:    req.ProjectID,
		Status:       constant.StatusTodo,
		Title:        req.Title,
		StartDate:    startDate,
		DurationDays: req.DurationDays,
		Progress:     req.Progress,
		Notes:        req.Notes,
	}
	if err := s.ActivityRepo.CreateActivity(ctx, activity); err != nil {
		return nil, err
	}

	s.flushBoardCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectActivities, "activity.created", activity)
	return activity, nil
}

func (s *Activity) UpdateActivity(ctx context.Context, activityId int, req *types.UpdateActivityRequest) (*model.Activity, error) {
	activity, err := s.ActivityRepo.GetActivityById(ctx, activityId)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.ProjectID != nil {
		if req.ProjectID.Valid {
			if _, err := s.ProjectRepo.GetProjectById(ctx, int(req.ProjectID.Int64)); err != nil {
				return nil, cferr.ErrNotFound.Msg("project %d does not exist", req.ProjectID.Int64)
			}
		}
		activity.ProjectID = *req.ProjectID
	}
	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		activity.StartDate = startDate
	}
	if req.DurationDays != nil {
		if req.DurationDays.Valid && req.DurationDays.Int64 < 0 {
			return nil, cferr.ErrInvalidReq.Msg("durationDays must not be negative")
		}
		activity.DurationDays = *req.DurationDays
	}
	if req.Progress != nil {
		activity.Progress = *req.Progress
	}
	if req.Notes != nil {
		activity.Notes = req.Notes
	}

	if err := s.ActivityRepo.UpdateActivity(ctx, activity); err != nil {
		return nil, err
	}

	s.flushBoardCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectActivities, "activity.updated", activity)
	return activity, nil
}

// MoveActivity changes the column an activity sits in. Moving to finished
// deletes the record: finished work is removed from the board, not archived.
func (s *Activity) MoveActivity(ctx context.Context, activityId int, status string) (*model.Activity, error) {
	activity, err := s.ActivityRepo.GetActivityById(ctx, activityId)
	if err != nil {
		return nil, err
	}

	if status == constant.StatusFinished {
		if err := s.ActivityRepo.DeleteActivity(ctx, activityId); err != nil {
			return nil, err
		}
		activity.Status = constant.StatusFinished
		s.flushBoardCaches()
		_ = s.Publisher.Publish(ctx, event.SubjectActivities, "activity.finished", activity)
		return activity, nil
	}

	if err := s.ActivityRepo.UpdateActivityStatus(ctx, activityId, status); err != nil {
		return nil, err
	}
	activity.Status = status

	s.flushBoardCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectActivities, "activity.moved", activity)
	return activity, nil
}

func (s *Activity) DeleteActivity(ctx context.Context, activityId int) error {
	activity, err := s.ActivityRepo.GetActivityById(ctx, activityId)
	if err != nil {
		return err
	}

	if err := s.ActivityRepo.DeleteActivity(ctx, activityId); err != nil {
		return err
	}

	s.flushBoardCaches()
	_ = s.Publisher.Publish(ctx, event.SubjectActivities, "activity.deleted", activity)
	return nil
}

func (s *Activity) flushBoardCaches() {
	_ = cache.Activities.Flush()
	_ = cache.TimelineLayouts.Flush()
	_ = cache.LastModifiedTime.Set("[board]", time.Now(), 0)
}

func parseStartDate(s string) (time.Time, error) {
	if s == "" {
		return timeutil.StartOfDay(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, cferr.ErrInvalidReq.Msg("invalid startDate %q: expecting YYYY-MM-DD", s)
	}
	return t, nil
}
