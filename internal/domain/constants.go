package domain

// Default scheduling policy values
const (
	DefaultRescheduleCutoffMinutes  = 60 // reschedule rejected within this window before the session
	DefaultRescheduleFeeThreshold   = 2  // fee advisory from this reschedule count
	DefaultRescheduleFeeAmount      = 25.0
	DefaultSuspensionThreshold      = 5 // suspension advisory from this reschedule count
)

// Business validation constants
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 480 // 8 hours

	MinRescheduleCutoffMinutes = 0
	MaxRescheduleCutoffMinutes = 10080 // 1 week

	MinFeeThreshold        = 1
	MaxFeeThreshold        = 100
	MinSuspensionThreshold = 1
	MaxSuspensionThreshold = 100

	MaxTopicLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование занимает слот.
// Используется для вкладки "upcoming" и для ячеек календаря.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses полный список статусов бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRescheduled,
}
