package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/pkg/types"
)

func TestCanTransition(t *testing.T) {
	legal := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCancelled, StatusCompleted},
	}

	// Всё, что не перечислено в таблице переходов, должно быть запрещено
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, allowed := range legal[from] {
				if allowed == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "transition %s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition("unknown", StatusPending))
	assert.False(t, CanTransition(StatusPending, "unknown"))
}

func TestBookingPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		active       bool
		terminal     bool
		cancellable  bool
		reschedulable bool
	}{
		{StatusPending, true, false, true, true},
		{StatusConfirmed, true, false, true, true},
		{StatusCompleted, false, true, false, false},
		{StatusCancelled, false, true, false, false},
		{StatusRescheduled, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.reschedulable, b.CanBeRescheduled())
		})
	}
}

func TestSessionStart(t *testing.T) {
	got, err := SessionStart("2025-04-15", types.TimeString("10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 10, 0, 0, 0, time.Local), got)

	got, err = SessionStart("2025-04-15", types.TimeString("12:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.Local), got)

	got, err = SessionStart("2025-04-15", types.TimeString("12:30 PM"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 12, 30, 0, 0, time.Local), got)

	_, err = SessionStart("15.04.2025", types.TimeString("10:00 AM"))
	assert.Error(t, err)

	_, err = SessionStart("2025-04-15", types.TimeString("25:00"))
	assert.Error(t, err)
}
