package reschedule_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/domain"
)

func policyBooking(count int) *domain.Booking {
	return &domain.Booking{
		ID:              "b1",
		ClientID:        10,
		LawyerID:        77,
		Date:            "2025-04-15",
		StartTime:       "10:00 AM",
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		RescheduleCount: count,
	}
}

func TestEvaluatePolicyCutoff(t *testing.T) {
	policy := domain.DefaultReschedulePolicy()

	// Сессия 2025-04-15 10:00; cutoff 60 минут
	tests := []struct {
		name    string
		now     time.Time
		wantErr bool
	}{
		{name: "59 minutes before is rejected", now: time.Date(2025, 4, 15, 9, 1, 0, 0, time.Local), wantErr: true},
		{name: "exactly 60 minutes before is allowed", now: time.Date(2025, 4, 15, 9, 0, 0, 0, time.Local), wantErr: false},
		{name: "61 minutes before is allowed", now: time.Date(2025, 4, 15, 8, 59, 0, 0, time.Local), wantErr: false},
		{name: "30 minutes before is rejected", now: time.Date(2025, 4, 15, 9, 30, 0, 0, time.Local), wantErr: true},
		{name: "session already started is rejected", now: time.Date(2025, 4, 15, 10, 30, 0, 0, time.Local), wantErr: true},
		{name: "days before is allowed", now: time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluatePolicy(policyBooking(0), tt.now, policy)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTooCloseToSession)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEvaluatePolicyAdvisoryFlags(t *testing.T) {
	policy := domain.DefaultReschedulePolicy()
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.Local)

	tests := []struct {
		count          int
		wantFee        bool
		wantSuspension bool
	}{
		{count: 0, wantFee: false, wantSuspension: false},
		{count: 1, wantFee: false, wantSuspension: false},
		{count: 2, wantFee: true, wantSuspension: false},
		{count: 4, wantFee: true, wantSuspension: false},
		{count: 5, wantFee: true, wantSuspension: true},
		{count: 9, wantFee: true, wantSuspension: true},
	}

	for _, tt := range tests {
		assessment, err := evaluatePolicy(policyBooking(tt.count), now, policy)
		require.NoError(t, err)
		assert.Equal(t, tt.wantFee, assessment.FeeApplies, "fee flag at count=%d", tt.count)
		assert.Equal(t, tt.wantSuspension, assessment.SuspensionRisk, "suspension flag at count=%d", tt.count)
		assert.Equal(t, policy.FeeAmount, assessment.FeeAmount)
	}
}

func TestEvaluatePolicyCustomPolicy(t *testing.T) {
	now := time.Date(2025, 4, 15, 9, 30, 0, 0, time.Local)

	// Юрист с cutoff 15 минут: перенос за 30 минут разрешён
	relaxed := &domain.ReschedulePolicy{
		LawyerID:            77,
		CutoffMinutes:       15,
		FeeThreshold:        1,
		FeeAmount:           50,
		SuspensionThreshold: 3,
	}

	assessment, err := evaluatePolicy(policyBooking(1), now, relaxed)
	require.NoError(t, err)
	assert.True(t, assessment.FeeApplies)
	assert.Equal(t, 50.0, assessment.FeeAmount)
	assert.False(t, assessment.SuspensionRisk)
}

func TestEvaluatePolicyBadSessionTime(t *testing.T) {
	b := policyBooking(0)
	b.StartTime = "garbage"

	_, err := evaluatePolicy(b, time.Now(), domain.DefaultReschedulePolicy())
	assert.ErrorIs(t, err, ErrInternal)
}
