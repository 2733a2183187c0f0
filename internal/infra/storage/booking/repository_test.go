package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/pkg/ptr"
	"github.com/lexly/LM-BookingService/pkg/types"
)

func newBooking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		ClientID:        10,
		LawyerID:        77,
		Date:            "2025-04-15",
		StartTime:       "10:00 AM",
		DurationMinutes: 60,
		SessionType:     domain.SessionConsultation,
		Status:          status,
		Price:           100,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	created, err := repo.Create(ctx, newBooking("b1", domain.StatusPending))
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	// Повторная вставка того же ID запрещена
	_, err = repo.Create(ctx, newBooking("b1", domain.StatusPending))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = repo.Create(ctx, newBooking("b1", domain.StatusPending))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.LawyerID)

	// Мутация возвращённой копии не должна менять хранилище
	got.Status = domain.StatusCompleted
	again, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", domain.StatusPending))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, "b1", domain.StatusConfirmed))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.StatusConfirmed), ErrBookingNotFound)
}

func TestUpdateStatusClosure(t *testing.T) {
	// Для всех пар (from, to), отсутствующих в таблице переходов,
	// UpdateStatus обязан вернуть ErrIllegalTransition и не изменить состояние
	ctx := context.Background()

	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			if domain.CanTransition(from, to) {
				continue
			}

			repo := NewRepository()
			_, err := repo.Create(ctx, newBooking("b1", from))
			require.NoError(t, err)

			err = repo.UpdateStatus(ctx, "b1", to)
			assert.ErrorIs(t, err, ErrIllegalTransition, "transition %s -> %s", from, to)

			got, err := repo.GetByID(ctx, "b1")
			require.NoError(t, err)
			assert.Equal(t, from, got.Status, "state must stay unchanged on %s -> %s", from, to)
		}
	}
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", domain.StatusConfirmed))
	require.NoError(t, err)

	updated, err := repo.Reschedule(ctx, "b1", "2025-04-20", "2:00 PM", ptr.Ptr("contract review"))
	require.NoError(t, err)

	assert.Equal(t, "2025-04-20", updated.Date)
	assert.Equal(t, types.TimeString("2:00 PM"), updated.StartTime)
	assert.Equal(t, 1, updated.RescheduleCount)
	// Перенос всегда возвращает бронирование в pending
	assert.Equal(t, domain.StatusPending, updated.Status)
	require.NotNil(t, updated.Topic)
	assert.Equal(t, "contract review", *updated.Topic)

	// Счётчик переносов монотонно растёт
	for i := 2; i <= 4; i++ {
		updated, err = repo.Reschedule(ctx, "b1", "2025-04-21", "3:00 PM", nil)
		require.NoError(t, err)
		assert.Equal(t, i, updated.RescheduleCount)
	}
	// nil-тема сохраняет предыдущую
	assert.Equal(t, "contract review", *updated.Topic)

	_, err = repo.Reschedule(ctx, "missing", "2025-04-21", "3:00 PM", nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRescheduleTerminalStatuses(t *testing.T) {
	ctx := context.Background()

	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		repo := NewRepository()
		_, err := repo.Create(ctx, newBooking("b1", status))
		require.NoError(t, err)

		_, err = repo.Reschedule(ctx, "b1", "2025-04-21", "3:00 PM", nil)
		assert.ErrorIs(t, err, ErrIllegalTransition)

		got, err := repo.GetByID(ctx, "b1")
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
		assert.Equal(t, 0, got.RescheduleCount)
	}
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.Create(ctx, newBooking("b1", domain.StatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking("b2", domain.StatusConfirmed))
	require.NoError(t, err)

	snap, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap, 2)

	restored := NewRepository()
	require.NoError(t, restored.Restore(ctx, snap))

	got, err := restored.GetByID(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	// Повторный restore с теми же ID отклоняется целиком
	assert.ErrorIs(t, restored.Restore(ctx, snap), ErrDuplicateID)
}

func TestClockIsUsedForTimestamps(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2025, 4, 10, 12, 0, 0, 0, time.Local)
	repo := NewRepositoryWithClock(func() time.Time { return fixed })

	created, err := repo.Create(ctx, newBooking("b1", domain.StatusPending))
	require.NoError(t, err)
	assert.Equal(t, fixed, created.CreatedAt)
	assert.Equal(t, fixed, created.UpdatedAt)
}
