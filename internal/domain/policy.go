package domain

import "time"

// ReschedulePolicy represents the reschedule rules applied to a lawyer's bookings.
// A nil override falls back to service-wide defaults, the same way a missing
// per-lawyer config falls back in the policy repository.
type ReschedulePolicy struct {
	LawyerID             int64
	CutoffMinutes        int     // reschedule rejected within this window before the session
	FeeThreshold         int     // fee advisory from this reschedule count
	FeeAmount            float64 // flat advisory fee, never charged by this service
	SuspensionThreshold  int     // suspension advisory from this reschedule count
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DefaultReschedulePolicy returns the service-wide defaults
func DefaultReschedulePolicy() *ReschedulePolicy {
	return &ReschedulePolicy{
		CutoffMinutes:       DefaultRescheduleCutoffMinutes,
		FeeThreshold:        DefaultRescheduleFeeThreshold,
		FeeAmount:           DefaultRescheduleFeeAmount,
		SuspensionThreshold: DefaultSuspensionThreshold,
	}
}

// IsDefault returns true if this policy is not bound to a specific lawyer
func (p *ReschedulePolicy) IsDefault() bool {
	return p.LawyerID == 0
}
