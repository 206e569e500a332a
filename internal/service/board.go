package service

import (
	"context"
	"time"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/model"
)

type Board struct {
	ActivityService *Activity
	ProjectService  *Project
}

func NewBoard(activityService *Activity, projectService *Project) *Board {
	return &Board{
		ActivityService: activityService,
		ProjectService:  projectService,
	}
}

// GetBoard assembles the three columns. Alarm state comes from the alarm
// engine per card; the finished column is structurally present but empty
// since finished activities are deleted on move.
func (s *Board) GetBoard(ctx context.Context, now time.Time) (*model.Board, error) {
	activities, err := s.ActivityService.GetActivities(ctx)
	if err != nil {
		return nil, err
	}

	colors, err := s.ProjectService.GetColorMap(ctx)
	if err != nil {
		return nil, err
	}

	board := &model.Board{
		Todo:  []*model.Card{},
		Doing: []*model.Card{},
		Done:  []*model.Card{},
	}

	for _, a := range activities {
		info := alarm.Compute(a, now)

		card := &model.Card{
			Activity:    a,
			AlarmState:  string(info.State),
			IsOverdue:   info.IsOverdue,
			DaysOverdue: info.DaysOverdue,
		}
		if a.ProjectID.Valid {
			card.Color = colors[int(a.ProjectID.Int64)]
		}

		switch a.Status {
		case constant.StatusTodo:
			board.Todo = append(board.Todo, card)
		case constant.StatusDoing:
			board.Doing = append(board.Doing, card)
		case constant.StatusFinished:
			board.Done = append(board.Done, card)
		}
	}

	return board, nil
}
