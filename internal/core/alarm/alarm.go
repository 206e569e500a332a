// Package alarm classifies the temporal urgency of a single activity. It is
// the single source of truth for overdue state: card rendering and timeline
// layout both consume Compute instead of reimplementing the classification.
package alarm

import (
	"fmt"
	"time"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/util/timeutil"
)

type State string

const (
	// StateCritical marks a doing activity whose planned end has passed.
	StateCritical State = "critical"

	// StateGhost marks a todo activity that should already be underway.
	StateGhost State = "ghost"

	StateNormal State = "normal"
)

// Info is the computed temporal state of one activity at a given day.
type Info struct {
	State State

	IsOverdue bool

	// DaysOverdue is meaningful only when IsOverdue; whole days, floor.
	DaysOverdue int

	// PlannedEnd is start + duration, present iff the activity carries a
	// duration. Absent means open-ended.
	PlannedEnd *time.Time

	// VisualEnd is the date the bar's right edge renders at: the planned
	// end when one exists, today otherwise, and today again for overdue
	// doing activities so the bar stretches to the present instead of
	// stopping at the missed deadline.
	VisualEnd time.Time
}

// Compute classifies a single activity against the given instant. Pure and
// deterministic: identical inputs yield identical output. The caller injects
// "now" rather than Compute reading the wall clock.
//
// Inputs are assumed validated upstream; detectable invariant violations
// panic rather than producing nonsensical geometry downstream.
func Compute(a *model.Activity, now time.Time) Info {
	if a.DurationDays.Valid && a.DurationDays.Int64 < 0 {
		panic(fmt.Sprintf("alarm: activity %d has negative duration %d", a.ActivityID, a.DurationDays.Int64))
	}
	if a.Progress < 0 || a.Progress > 100 {
		panic(fmt.Sprintf("alarm: activity %d has progress %d out of [0,100]", a.ActivityID, a.Progress))
	}

	start := timeutil.StartOfDay(a.StartDate)
	today := timeutil.StartOfDay(now)

	info := Info{
		State:     StateNormal,
		VisualEnd: today,
	}

	if a.DurationDays.Valid {
		end := timeutil.AddDays(start, int(a.DurationDays.Int64))
		info.PlannedEnd = &end
		info.VisualEnd = end
	}

	switch a.Status {
	case constant.StatusDoing:
		if info.PlannedEnd != nil && info.PlannedEnd.Before(today) {
			info.State = StateCritical
			info.IsOverdue = true
			info.DaysOverdue = timeutil.DaysBetween(*info.PlannedEnd, today)
			info.VisualEnd = today
		}
	case constant.StatusTodo:
		// strictly before: an activity starting today is not ghosted
		if start.Before(today) {
			info.State = StateGhost
		}
	}

	return info
}
