package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, args ...any)  {}
func (nopLogger) Warn(format string, args ...any)  {}
func (nopLogger) Error(format string, args ...any) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

// stubProvider раздаёт записи по датам без похода в сервис
type stubProvider struct {
	byDate map[string]*domain.Booking
}

func (s stubProvider) BookingOnDate(_ context.Context, _ int64, date string) (*domain.Booking, error) {
	return s.byDate[date], nil
}

func stubBooking(id, date string) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ClientID:        10,
		LawyerID:        20,
		Date:            date,
		StartTime:       types.TimeString("10:00 AM"),
		DurationMinutes: 60,
		SessionType:     domain.SessionConsultation,
		Status:          domain.StatusConfirmed,
		Price:           150,
	}
}

func TestExecuteWeekView(t *testing.T) {
	now := date(2025, time.April, 9) // среда
	provider := stubProvider{byDate: map[string]*domain.Booking{
		"2025-04-10": stubBooking("b1", "2025-04-10"),
	}}
	uc := NewUseCase(provider, fixedTime{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		ClientID: 10,
		View:     domain.ViewWeek,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "2025-04-09", resp.Anchor)
	assert.Equal(t, "2025-04-02", resp.PrevAnchor)
	assert.Equal(t, "2025-04-16", resp.NextAnchor)

	assert.Equal(t, "2025-04-06", resp.Days[0].Date)
	assert.Equal(t, 0, resp.Days[0].Weekday)

	for _, day := range resp.Days {
		assert.True(t, day.IsCurrentPeriod)
		assert.Equal(t, day.Date == "2025-04-09", day.IsToday)
		if day.Date == "2025-04-10" {
			require.NotNil(t, day.Booking)
			assert.Equal(t, "b1", day.Booking.ID)
		} else {
			assert.Nil(t, day.Booking)
		}
	}
}

func TestExecuteMonthView(t *testing.T) {
	now := date(2025, time.April, 15)
	provider := stubProvider{byDate: map[string]*domain.Booking{
		"2025-04-01": stubBooking("b1", "2025-04-01"),
		"2025-03-30": stubBooking("b2", "2025-03-30"), // хвост предыдущего месяца
	}}
	uc := NewUseCase(provider, fixedTime{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		ClientID: 10,
		View:     domain.ViewMonth,
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 42)
	assert.Equal(t, "2025-03-15", resp.PrevAnchor)
	assert.Equal(t, "2025-05-15", resp.NextAnchor)

	cells := make(map[string]DayCell, len(resp.Days))
	for _, day := range resp.Days {
		cells[day.Date] = day
	}

	assert.True(t, cells["2025-04-01"].IsCurrentPeriod)
	assert.False(t, cells["2025-03-30"].IsCurrentPeriod)
	assert.True(t, cells["2025-04-15"].IsToday)

	require.NotNil(t, cells["2025-04-01"].Booking)
	assert.Equal(t, "b1", cells["2025-04-01"].Booking.ID)
	require.NotNil(t, cells["2025-03-30"].Booking)
	assert.Equal(t, "b2", cells["2025-03-30"].Booking.ID)
}

func TestExecuteExplicitAnchor(t *testing.T) {
	now := date(2025, time.April, 15)
	uc := NewUseCase(stubProvider{}, fixedTime{now: now}, nopLogger{})

	resp, err := uc.Execute(context.Background(), Request{
		ClientID: 10,
		View:     domain.ViewWeek,
		Anchor:   "2025-07-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-07-02", resp.Anchor)
	assert.Equal(t, "2025-06-29", resp.Days[0].Date)
	for _, day := range resp.Days {
		assert.False(t, day.IsToday)
	}
}

func TestExecuteValidation(t *testing.T) {
	uc := NewUseCase(stubProvider{}, fixedTime{now: date(2025, time.April, 15)}, nopLogger{})

	tests := []struct {
		name string
		req  Request
	}{
		{name: "zero client id", req: Request{ClientID: 0, View: domain.ViewWeek}},
		{name: "unknown view", req: Request{ClientID: 10, View: domain.CalendarViewMode("year")}},
		{name: "bad anchor format", req: Request{ClientID: 10, View: domain.ViewWeek, Anchor: "07/02/2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
