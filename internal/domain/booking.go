package domain

import (
	"time"

	"github.com/lexly/LM-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
)

// SessionType represents the kind of session booked with a lawyer
type SessionType string

const (
	SessionConsultation SessionType = "consultation"
	SessionMentorship   SessionType = "mentorship"
)

// Booking represents a client session booked with a lawyer
type Booking struct {
	ID       string // opaque unique identifier, assigned at creation
	ClientID int64
	LawyerID int64 // counterparty; display metadata lives in the lawyer directory

	Date            string // calendar date, "2006-01-02", no time zone component
	StartTime       types.TimeString
	DurationMinutes int
	SessionType     SessionType
	Status          BookingStatus
	Price           float64
	Topic           *string

	// RescheduleCount is incremented on every successful reschedule and never decreases
	RescheduleCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// transitions is the complete set of legal status transitions.
// Rescheduling is a separate composite operation, not a plain status change.
var transitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCancelled: true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
		StatusCompleted: true,
	},
	StatusCompleted:   {}, // terminal
	StatusCancelled:   {}, // terminal
	StatusRescheduled: {}, // transient label, normalized back to pending on reschedule
}

// CanTransition returns true if a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are possible
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can enter the reschedule flow
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// SessionStart combines the booking date and 12-hour start time into a naive
// local instant. This is the single source of truth for "when does the session
// start" - callers must not parse Date/StartTime on their own.
func (b *Booking) SessionStart() (time.Time, error) {
	return SessionStart(b.Date, b.StartTime)
}

// SessionStart parses a "2006-01-02" date and a 12-hour clock time into a
// naive local time.Time.
func SessionStart(date string, startTime types.TimeString) (time.Time, error) {
	day, err := time.ParseInLocation(DateFormat, date, time.Local)
	if err != nil {
		return time.Time{}, err
	}

	minutes, err := startTime.MinutesFromMidnight()
	if err != nil {
		return time.Time{}, err
	}

	return day.Add(time.Duration(minutes) * time.Minute), nil
}
