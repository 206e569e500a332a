package timeutil

import "time"

// StartOfDay truncates t to 00:00:00 of its calendar day, keeping the
// location. All scheduling math operates on day granularity.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from "from" to "to".
// Both instants are truncated to start-of-day first, so the result is an
// exact day count (floor semantics) and is negative when "to" precedes "from".
func DaysBetween(from, to time.Time) int {
	return int(StartOfDay(to).Sub(StartOfDay(from)) / (24 * time.Hour))
}

// AddDays steps d calendar days from t.
func AddDays(t time.Time, d int) time.Time {
	return t.AddDate(0, 0, d)
}
