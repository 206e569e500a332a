package timeline

import (
	"time"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/util/timeutil"
)

func buildBar(a *model.Activity, mode ViewMode, rangeStart, today time.Time) Bar {
	info := alarm.Compute(a, today)

	start := timeutil.StartOfDay(a.StartDate)
	x := Position(mode, rangeStart, start)

	width := Position(mode, rangeStart, info.VisualEnd) - x
	if min := minBarWidth(mode); width < min {
		width = min
	}

	fill := width * float64(a.Progress) / 100
	inset := fill - 2*constant.ProgressInsetPx
	if inset < 0 {
		inset = 0
	}

	bar := Bar{
		ActivityID:  a.ActivityID,
		Title:       a.Title,
		Progress:    a.Progress,
		State:       info.State,
		IsOverdue:   info.IsOverdue,
		DaysOverdue: info.DaysOverdue,

		X:              x,
		Width:          width,
		FillWidth:      fill,
		InsetFillWidth: inset,
		LabelInside:    width >= constant.LabelInsideMinWidth,
	}
	if a.ProjectID.Valid {
		bar.ProjectID = a.ProjectID.Int64
	}
	return bar
}
