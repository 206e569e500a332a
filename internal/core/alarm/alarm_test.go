package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	"canvasflow.dev/backend/internal/constant"
	"canvasflow.dev/backend/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func act(status string, start time.Time, duration null.Int) *model.Activity {
	return &model.Activity{
		ActivityID:   1,
		Status:       status,
		StartDate:    start,
		DurationDays: duration,
	}
}

func TestOverdueDoingActivity(t *testing.T) {
	// planned end Jan 6, viewed on Jan 10
	a := act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(5))
	info := Compute(a, day(2024, time.January, 10))

	assert.Equal(t, StateCritical, info.State)
	assert.True(t, info.IsOverdue)
	assert.Equal(t, 4, info.DaysOverdue)
	assert.Equal(t, day(2024, time.January, 6), *info.PlannedEnd)
	assert.Equal(t, day(2024, time.January, 10), info.VisualEnd, "bar stretches to present, not the missed deadline")
}

func TestDoingOnSchedule(t *testing.T) {
	a := act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(5))
	info := Compute(a, day(2024, time.January, 3))

	assert.Equal(t, StateNormal, info.State)
	assert.False(t, info.IsOverdue)
	assert.Equal(t, day(2024, time.January, 6), info.VisualEnd)
}

func TestPlannedEndEqualTodayIsNotOverdue(t *testing.T) {
	a := act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(5))
	info := Compute(a, day(2024, time.January, 6))

	assert.Equal(t, StateNormal, info.State)
	assert.False(t, info.IsOverdue)
}

func TestOpenEndedDoingNeverCritical(t *testing.T) {
	a := act(constant.StatusDoing, day(2020, time.January, 1), null.Int{})
	info := Compute(a, day(2024, time.January, 10))

	assert.Equal(t, StateNormal, info.State)
	assert.False(t, info.IsOverdue)
	assert.Nil(t, info.PlannedEnd)
	assert.Equal(t, day(2024, time.January, 10), info.VisualEnd, "open-ended bars grow to the present day")
}

func TestZeroDurationIsNotOpenEnded(t *testing.T) {
	a := act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(0))
	info := Compute(a, day(2024, time.January, 2))

	// plannedEnd == startDate, so it is overdue the moment the day rolls over
	assert.Equal(t, StateCritical, info.State)
	assert.True(t, info.IsOverdue)
	assert.Equal(t, 1, info.DaysOverdue)
	assert.Equal(t, day(2024, time.January, 1), *info.PlannedEnd)
}

func TestGhostTodo(t *testing.T) {
	// should have started Jan 1, still in todo on Jan 5
	a := act(constant.StatusTodo, day(2024, time.January, 1), null.Int{})
	info := Compute(a, day(2024, time.January, 5))

	assert.Equal(t, StateGhost, info.State)
	assert.False(t, info.IsOverdue)
}

func TestTodoStartingTodayIsNotGhosted(t *testing.T) {
	a := act(constant.StatusTodo, day(2024, time.January, 5), null.Int{})
	assert.Equal(t, StateNormal, Compute(a, day(2024, time.January, 5)).State)

	future := act(constant.StatusTodo, day(2024, time.January, 7), null.Int{})
	assert.Equal(t, StateNormal, Compute(future, day(2024, time.January, 5)).State)
}

func TestFinishedAlwaysNormal(t *testing.T) {
	a := act(constant.StatusFinished, day(2020, time.January, 1), null.IntFrom(1))
	info := Compute(a, day(2024, time.January, 10))

	assert.Equal(t, StateNormal, info.State)
	assert.False(t, info.IsOverdue)
}

func TestTruncatesIntraDayTimes(t *testing.T) {
	a := act(constant.StatusTodo, time.Date(2024, time.January, 4, 23, 30, 0, 0, time.UTC), null.Int{})
	info := Compute(a, time.Date(2024, time.January, 5, 0, 30, 0, 0, time.UTC))

	assert.Equal(t, StateGhost, info.State)
}

func TestIdempotence(t *testing.T) {
	a := act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(5))
	now := day(2024, time.January, 10)

	first := Compute(a, now)
	second := Compute(a, now)
	assert.Equal(t, first, second)
}

func TestPanicsOnInvariantViolation(t *testing.T) {
	assert.Panics(t, func() {
		Compute(act(constant.StatusDoing, day(2024, time.January, 1), null.IntFrom(-3)), day(2024, time.January, 2))
	})

	bad := act(constant.StatusDoing, day(2024, time.January, 1), null.Int{})
	bad.Progress = 120
	assert.Panics(t, func() {
		Compute(bad, day(2024, time.January, 2))
	})
}
