package service

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/timeline"
	"canvasflow.dev/backend/internal/model/cache"
	"canvasflow.dev/backend/internal/pkg/observability"
	"canvasflow.dev/backend/internal/repo"
	"canvasflow.dev/backend/internal/util/timeutil"
)

type Timeline struct {
	ActivityRepo   *repo.Activity
	ProjectService *Project
}

func NewTimeline(activityRepo *repo.Activity, projectService *Project) *Timeline {
	return &Timeline{
		ActivityRepo:   activityRepo,
		ProjectService: projectService,
	}
}

// TimelineLayoutResponse is the layout plus per-project bar tinting.
type TimelineLayoutResponse struct {
	*timeline.Layout

	ProjectColors map[int]string `json:"projectColors"`
}

// GetLayout returns the rendered layout as JSON bytes. The serialized form is
// what gets cached (keyed by mode and day, so entries invalidate themselves at
// midnight) and what the ETag is derived from.
func (s *Timeline) GetLayout(ctx context.Context, mode timeline.ViewMode, now time.Time) ([]byte, error) {
	key := string(mode) + ":" + timeutil.StartOfDay(now).Format("2006-01-02")

	var body []byte
	err := cache.TimelineLayouts.MutexGetSet(key, &body, func() ([]byte, error) {
		return s.computeLayout(ctx, mode, now)
	}, time.Minute*5)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (s *Timeline) computeLayout(ctx context.Context, mode timeline.ViewMode, now time.Time) ([]byte, error) {
	timer := prometheus.NewTimer(observability.TimelineComputeDuration.WithLabelValues(string(mode)))
	defer timer.ObserveDuration()

	activities, err := s.ActivityRepo.GetActivitiesByStatus(ctx, constant.StatusDoing)
	if err != nil {
		return nil, err
	}

	colors, err := s.ProjectService.GetColorMap(ctx)
	if err != nil {
		return nil, err
	}

	resp := TimelineLayoutResponse{
		Layout:        timeline.Compute(activities, mode, now),
		ProjectColors: colors,
	}
	return json.Marshal(resp)
}
