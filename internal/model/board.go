package model

// Card is the column-facing projection of an Activity: the raw record plus
// the alarm classification every card renderer must source from the engine
// instead of recomputing inline.
type Card struct {
	*Activity

	AlarmState  string `json:"alarmState"`
	IsOverdue   bool   `json:"isOverdue"`
	DaysOverdue int    `json:"daysOverdue,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Board groups cards by column.
type Board struct {
	Todo  []*Card `json:"todo"`
	Doing []*Card `json:"doing"`
	Done  []*Card `json:"finished"`
}
