package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.January, 10, 17, 42, 3, 999, time.UTC)
	assert.Equal(t, date(2024, time.January, 10), StartOfDay(in))
	assert.Equal(t, StartOfDay(in), StartOfDay(StartOfDay(in)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(date(2024, time.January, 1), date(2024, time.January, 10)))
	assert.Equal(t, -9, DaysBetween(date(2024, time.January, 10), date(2024, time.January, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, time.January, 10), date(2024, time.January, 10)))

	// intra-day fractions never count as a day
	late := time.Date(2024, time.January, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, time.January, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(late, early))

	// across a month boundary
	assert.Equal(t, 31, DaysBetween(date(2024, time.January, 15), date(2024, time.February, 15)))
}
