package timeline

import (
	"fmt"
	"strconv"
	"time"
)

// buildColumns steps from the range start through the range end inclusive,
// one day/week/month at a time. Labels are locale-independent; localized
// rendering is the UI layer's concern.
func buildColumns(mode ViewMode, start, end time.Time) []Column {
	columns := make([]Column, 0, estimateColumns(mode, start, end))
	for cur := start; !cur.After(end); cur = step(mode, cur) {
		columns = append(columns, column(mode, cur))
	}
	return columns
}

func step(mode ViewMode, cur time.Time) time.Time {
	switch mode {
	case ModeWeek:
		return cur.AddDate(0, 0, 7)
	case ModeMonth:
		return cur.AddDate(0, 1, 0)
	default:
		return cur.AddDate(0, 0, 1)
	}
}

func column(mode ViewMode, cur time.Time) Column {
	switch mode {
	case ModeWeek:
		_, week := cur.ISOWeek()
		return Column{
			Start:    cur,
			Label:    fmt.Sprintf("W%d", week),
			SubLabel: cur.Format("Jan 2"),
		}
	case ModeMonth:
		return Column{
			Start:    cur,
			Label:    cur.Month().String(),
			SubLabel: strconv.Itoa(cur.Year()),
		}
	default:
		return Column{
			Start:    cur,
			Label:    strconv.Itoa(cur.Day()),
			SubLabel: cur.Weekday().String()[:3],
		}
	}
}

func estimateColumns(mode ViewMode, start, end time.Time) int {
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	switch mode {
	case ModeWeek:
		return days/7 + 1
	case ModeMonth:
		return days/28 + 1
	default:
		return days
	}
}
