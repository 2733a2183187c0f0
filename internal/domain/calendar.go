package domain

import "time"

// CalendarViewMode calendar rendering mode
type CalendarViewMode string

const (
	ViewWeek  CalendarViewMode = "week"
	ViewMonth CalendarViewMode = "month"
)

// CalendarDirection navigation direction between periods
type CalendarDirection string

const (
	DirectionPrev CalendarDirection = "prev"
	DirectionNext CalendarDirection = "next"
)

// CalendarDay is a single cell of a rendered week or month grid.
// Transient - built per request, never persisted.
type CalendarDay struct {
	Date            time.Time
	IsCurrentPeriod bool // false for leading/trailing fill days in month view
	IsToday         bool
	Booking         *Booking // pending/confirmed booking on this date, if any
}

// ParseViewMode validates a view mode string
func ParseViewMode(s string) (CalendarViewMode, bool) {
	switch CalendarViewMode(s) {
	case ViewWeek, ViewMonth:
		return CalendarViewMode(s), true
	default:
		return "", false
	}
}

// ParseDirection validates a navigation direction string
func ParseDirection(s string) (CalendarDirection, bool) {
	switch CalendarDirection(s) {
	case DirectionPrev, DirectionNext:
		return CalendarDirection(s), true
	default:
		return "", false
	}
}
