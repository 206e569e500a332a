package constant

// Pixel-width-per-column constants for the timeline. These are configuration
// values, not computed: renderers rely on them matching exactly.
const (
	DayColumnWidth   = 40.0
	WeekColumnWidth  = 80.0
	MonthColumnWidth = 120.0

	DaysPerWeek = 7.0

	// DaysPerMonthApprox is the linear month approximation used for
	// position mapping. Not calendar-exact on purpose: bar positions stay
	// consistent with the reference rendering only with the 30-day divisor.
	DaysPerMonthApprox = 30.0

	// DefaultRangePaddingDays is the half-width of the fallback range
	// around today when no doing activities exist, and the forced
	// near-future visibility window.
	DefaultRangePaddingDays = 14

	DayModePaddingDays     = 7
	WeekModePaddingDays    = 7
	MonthModePaddingMonths = 1

	// MinBarWidth floors per view mode keep zero/short-duration bars
	// visible and clickable. Day mode floors at 80% of one column width.
	MinBarWidthDay   = DayColumnWidth * 0.8
	MinBarWidthWeek  = 24.0
	MinBarWidthMonth = 16.0

	// ProgressInsetPx is the margin of the darker inner progress fill.
	ProgressInsetPx = 2.0

	// LabelInsideMinWidth is the minimum bar width at which the progress
	// percentage is rendered inside the bar; narrower bars get their title
	// rendered as external text to the right.
	LabelInsideMinWidth = 48.0
)
