package timeline

import (
	"time"

	"github.com/samber/lo"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/model"
	"canvasflow.dev/backend/internal/util/timeutil"
)

// deriveRange aggregates the visible window for the given doing set. With no
// activities the window is the fixed default around today; otherwise the
// min/max over every start date and visual end date, with today and
// today+14d always included so the near future stays visible, expanded by
// mode-dependent padding and snapped to week/month boundaries.
func deriveRange(doing []*model.Activity, mode ViewMode, today time.Time) (time.Time, time.Time) {
	var start, end time.Time

	if len(doing) == 0 {
		start = timeutil.AddDays(today, -constant.DefaultRangePaddingDays)
		end = timeutil.AddDays(today, constant.DefaultRangePaddingDays)
	} else {
		points := lo.FlatMap(doing, func(a *model.Activity, _ int) []time.Time {
			info := alarm.Compute(a, today)
			return []time.Time{timeutil.StartOfDay(a.StartDate), info.VisualEnd}
		})
		points = append(points, today, timeutil.AddDays(today, constant.DefaultRangePaddingDays))

		start = lo.MinBy(points, func(a, b time.Time) bool { return a.Before(b) })
		end = lo.MaxBy(points, func(a, b time.Time) bool { return a.After(b) })

		switch mode {
		case ModeMonth:
			start = start.AddDate(0, -constant.MonthModePaddingMonths, 0)
			end = end.AddDate(0, constant.MonthModePaddingMonths, 0)
		case ModeWeek:
			start = timeutil.AddDays(start, -constant.WeekModePaddingDays)
			end = timeutil.AddDays(end, constant.WeekModePaddingDays)
		default:
			start = timeutil.AddDays(start, -constant.DayModePaddingDays)
			end = timeutil.AddDays(end, constant.DayModePaddingDays)
		}
	}

	switch mode {
	case ModeWeek:
		start = snapToWeekStart(start)
		end = snapToWeekEnd(end)
	case ModeMonth:
		start = snapToMonthStart(start)
		end = snapToMonthEnd(end)
	}

	return start, end
}

// snapToWeekStart floors to the Monday of the instant's ISO week.
func snapToWeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return timeutil.AddDays(timeutil.StartOfDay(t), -offset)
}

// snapToWeekEnd ceils to the Sunday ending the instant's ISO week.
func snapToWeekEnd(t time.Time) time.Time {
	return timeutil.AddDays(snapToWeekStart(t), 6)
}

func snapToMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func snapToMonthEnd(t time.Time) time.Time {
	return timeutil.AddDays(snapToMonthStart(t).AddDate(0, 1, 0), -1)
}
