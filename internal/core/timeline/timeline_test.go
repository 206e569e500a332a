package timeline

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/core/alarm"
	"canvasflow.dev/backend/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func doing(id int, start time.Time, duration null.Int, progress int) *model.Activity {
	return &model.Activity{
		ActivityID:   id,
		Status:       constant.StatusDoing,
		Title:        "activity",
		StartDate:    start,
		DurationDays: duration,
		Progress:     progress,
	}
}

func TestEmptySetDefaultRange(t *testing.T) {
	today := day(2024, time.January, 10)
	layout := Compute(nil, ModeDay, today)

	assert.Equal(t, day(2023, time.December, 27), layout.RangeStart)
	assert.Equal(t, day(2024, time.January, 24), layout.RangeEnd)
	assert.Empty(t, layout.Bars)
	assert.Len(t, layout.Columns, 29)
	assert.Equal(t, float64(14*constant.DayColumnWidth), layout.TodayPosition)
}

func TestRangeStartPositionIsZeroForEveryMode(t *testing.T) {
	today := day(2024, time.January, 10)
	acts := []*model.Activity{doing(1, day(2024, time.January, 1), null.IntFrom(5), 40)}

	for _, mode := range []ViewMode{ModeDay, ModeWeek, ModeMonth} {
		layout := Compute(acts, mode, today)
		assert.Zero(t, Position(mode, layout.RangeStart, layout.RangeStart), "mode %s", mode)
		assert.Equal(t, layout.RangeStart, layout.Columns[0].Start, "mode %s", mode)
	}
}

func TestNonDoingActivitiesAreNotCharted(t *testing.T) {
	today := day(2024, time.January, 10)
	acts := []*model.Activity{
		{ActivityID: 1, Status: constant.StatusTodo, StartDate: day(2024, time.January, 2)},
		{ActivityID: 2, Status: constant.StatusFinished, StartDate: day(2024, time.January, 2)},
	}

	layout := Compute(acts, ModeDay, today)
	assert.Empty(t, layout.Bars)
	// and the range is the empty-set default
	assert.Equal(t, day(2023, time.December, 27), layout.RangeStart)
}

func TestDayModeRangeAndGeometry(t *testing.T) {
	today := day(2024, time.January, 10)
	acts := []*model.Activity{doing(1, day(2024, time.January, 1), null.IntFrom(5), 50)}

	layout := Compute(acts, ModeDay, today)

	// min point Jan 1 padded by 7; max point today+14 padded by 7
	assert.Equal(t, day(2023, time.December, 25), layout.RangeStart)
	assert.Equal(t, day(2024, time.January, 31), layout.RangeEnd)
	assert.Len(t, layout.Columns, 38)
	assert.Equal(t, float64(16*constant.DayColumnWidth), layout.TodayPosition)

	require.Len(t, layout.Bars, 1)
	bar := layout.Bars[0]
	assert.Equal(t, float64(7*constant.DayColumnWidth), bar.X)
	// overdue: the bar stretches from Jan 1 to today
	assert.Equal(t, alarm.StateCritical, bar.State)
	assert.True(t, bar.IsOverdue)
	assert.Equal(t, float64(9*constant.DayColumnWidth), bar.Width)
	assert.Equal(t, bar.Width/2, bar.FillWidth)
	assert.Equal(t, bar.FillWidth-2*constant.ProgressInsetPx, bar.InsetFillWidth)
	assert.True(t, bar.LabelInside)
}

func TestWeekModeSnapsToMondayWithISOLabels(t *testing.T) {
	today := day(2024, time.January, 10) // Wednesday
	acts := []*model.Activity{doing(1, day(2024, time.January, 8), null.IntFrom(5), 0)}

	layout := Compute(acts, ModeWeek, today)

	assert.Equal(t, day(2024, time.January, 1), layout.RangeStart) // a Monday
	assert.Equal(t, day(2024, time.February, 4), layout.RangeEnd)  // a Sunday

	require.Len(t, layout.Columns, 5)
	for i, col := range layout.Columns {
		assert.Equal(t, time.Monday, col.Start.Weekday(), "column %d", i)
	}
	assert.Equal(t, "W1", layout.Columns[0].Label)
	assert.Equal(t, "W2", layout.Columns[1].Label)
	assert.Equal(t, "Jan 1", layout.Columns[0].SubLabel)
}

func TestMonthModeUsesThirtyDayApproximation(t *testing.T) {
	today := day(2024, time.January, 10)
	layout := Compute(nil, ModeMonth, today)

	assert.Equal(t, day(2023, time.December, 1), layout.RangeStart)
	assert.Equal(t, day(2024, time.January, 31), layout.RangeEnd)

	require.Len(t, layout.Columns, 2)
	assert.Equal(t, "December", layout.Columns[0].Label)
	assert.Equal(t, "2023", layout.Columns[0].SubLabel)

	// daysBetween(Dec 1, Jan 10) = 40; 40/30*120 = 160, not calendar-exact
	assert.InDelta(t, 160.0, layout.TodayPosition, 1e-9)
}

func TestMinimumBarWidthFloor(t *testing.T) {
	today := day(2024, time.January, 10)
	acts := []*model.Activity{doing(1, today, null.IntFrom(0), 0)}

	layout := Compute(acts, ModeDay, today)

	require.Len(t, layout.Bars, 1)
	assert.Equal(t, constant.MinBarWidthDay, layout.Bars[0].Width)
	assert.False(t, layout.Bars[0].LabelInside, "short bars render their title externally")
	assert.Zero(t, layout.Bars[0].FillWidth)
	assert.Zero(t, layout.Bars[0].InsetFillWidth)
}

func TestRangeIncludesNearFutureWindow(t *testing.T) {
	// one short activity far in the past still yields a range reaching
	// today+14d, so the near future stays visible
	today := day(2024, time.March, 1)
	acts := []*model.Activity{doing(1, day(2024, time.February, 1), null.IntFrom(1), 0)}

	layout := Compute(acts, ModeDay, today)
	assert.Equal(t, day(2024, time.March, 22), layout.RangeEnd)
}

func TestOpenEndedBarGrowsToToday(t *testing.T) {
	today := day(2024, time.January, 20)
	acts := []*model.Activity{doing(1, day(2024, time.January, 5), null.Int{}, 0)}

	layout := Compute(acts, ModeDay, today)

	require.Len(t, layout.Bars, 1)
	bar := layout.Bars[0]
	assert.Equal(t, alarm.StateNormal, bar.State)
	// 15 days from start to today
	assert.Equal(t, float64(15*constant.DayColumnWidth), bar.Width)
}

func TestComputeIsDeterministic(t *testing.T) {
	today := day(2024, time.January, 10)
	acts := []*model.Activity{
		doing(1, day(2024, time.January, 1), null.IntFrom(5), 30),
		doing(2, day(2024, time.January, 4), null.Int{}, 80),
	}

	first := Compute(acts, ModeWeek, today)
	second := Compute(acts, ModeWeek, today)
	assert.Equal(t, first, second, spew.Sdump(first, second))
}

func TestUnknownModePanics(t *testing.T) {
	assert.Panics(t, func() {
		Compute(nil, ViewMode("quarter"), day(2024, time.January, 10))
	})
}
