// Package timeline computes the shared coordinate system for rendering doing
// activities as Gantt bars: visible date range, time-axis columns and
// per-activity pixel geometry. Stateless; recomputed from the activity set,
// view mode and injected "now" on every invocation.
package timeline

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/util/timeutil"
)

type ViewMode string

const (
	ModeDay   ViewMode = "day"
	ModeWeek  ViewMode = "week"
	ModeMonth ViewMode = "month"
)

func (m ViewMode) Valid() bool {
	return m == ModeDay || m == ModeWeek || m == ModeMonth
}

// Column is one step of the time axis.
type Column struct {
	Start    time.Time `json:"start"`
	Label    string    `json:"label"`
	SubLabel string    `json:"subLabel"`
}

// Bar is the pixel geometry of one doing activity, alarm state included so
// the renderer never classifies on its own.
type Bar struct {
	ActivityID int    `json:"activityId"`
	ProjectID  int64  `json:"projectId,omitempty"`
	Title      string `json:"title"`
	Progress   int    `json:"progress"`

	State       alarm.State `json:"state"`
	IsOverdue   bool        `json:"isOverdue"`
	DaysOverdue int         `json:"daysOverdue,omitempty"`

	X     float64 `json:"x"`
	Width float64 `json:"width"`

	// FillWidth is the progress overlay; InsetFillWidth the darker inner
	// fill inset by constant.ProgressInsetPx on each side.
	FillWidth      float64 `json:"fillWidth"`
	InsetFillWidth float64 `json:"insetFillWidth"`

	// LabelInside is true when the bar is wide enough to carry the
	// progress percentage; otherwise the title renders to the right.
	LabelInside bool `json:"labelInside"`
}

type Layout struct {
	Mode       ViewMode  `json:"mode"`
	RangeStart time.Time `json:"rangeStart"`
	RangeEnd   time.Time `json:"rangeEnd"`

	Columns       []Column `json:"columns"`
	TodayPosition float64  `json:"todayPosition"`
	Bars          []Bar    `json:"bars"`
}

// Compute derives the full layout. Only doing activities are charted; any
// others in the input are filtered out. An empty doing set yields the default
// range around today rather than an error.
func Compute(activities []*model.Activity, mode ViewMode, now time.Time) *Layout {
	if !mode.Valid() {
		panic(fmt.Sprintf("timeline: unknown view mode %q", mode))
	}

	today := timeutil.StartOfDay(now)

	doing := lo.Filter(activities, func(a *model.Activity, _ int) bool {
		return a.Status == constant.StatusDoing
	})

	start, end := deriveRange(doing, mode, today)

	return &Layout{
		Mode:          mode,
		RangeStart:    start,
		RangeEnd:      end,
		Columns:       buildColumns(mode, start, end),
		TodayPosition: Position(mode, start, today),
		Bars: lo.Map(doing, func(a *model.Activity, _ int) Bar {
			return buildBar(a, mode, start, today)
		}),
	}
}

// Position maps a date to its pixel offset from the range start. Week and
// month modes divide the day delta by 7 and 30 respectively before scaling;
// the 30-day divisor is a deliberate linear approximation.
func Position(mode ViewMode, rangeStart, d time.Time) float64 {
	days := float64(timeutil.DaysBetween(rangeStart, d))
	switch mode {
	case ModeWeek:
		return days / constant.DaysPerWeek * constant.WeekColumnWidth
	case ModeMonth:
		return days / constant.DaysPerMonthApprox * constant.MonthColumnWidth
	default:
		return days * constant.DayColumnWidth
	}
}

func minBarWidth(mode ViewMode) float64 {
	switch mode {
	case ModeWeek:
		return constant.MinBarWidthWeek
	case ModeMonth:
		return constant.MinBarWidthMonth
	default:
		return constant.MinBarWidthDay
	}
}
