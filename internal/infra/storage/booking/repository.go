package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/pkg/types"
)

// Repository in-memory хранилище бронирований.
// Единственная точка мутации Booking: снаружи отдаются только копии,
// чтобы инварианты (таблица переходов, монотонность RescheduleCount)
// нельзя было обойти прямой записью в поля.
//
// RWMutex защищает только от конкурентных чтений HTTP-слоя - хранилище
// не рассчитано на нескольких конкурирующих писателей.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	clock    func() time.Time
}

// NewRepository создает новый экземпляр хранилища бронирований
func NewRepository() *Repository {
	return &Repository{
		bookings: make(map[string]*domain.Booking),
		clock:    time.Now,
	}
}

// NewRepositoryWithClock создает хранилище с заданным источником времени (для тестов)
func NewRepositoryWithClock(clock func() time.Time) *Repository {
	return &Repository{
		bookings: make(map[string]*domain.Booking),
		clock:    clock,
	}
}

// Create добавляет новое бронирование.
// Бизнес-валидация выполняется на уровне usecase, здесь проверяется только уникальность ID.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[b.ID]; exists {
		return nil, fmt.Errorf("%w: id=%s", ErrDuplicateID, b.ID)
	}

	stored := *b
	now := r.clock()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.bookings[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	out := *b
	return &out, nil
}

// GetByClientID получает все бронирования клиента.
// Порядок не гарантируется - сортировка на стороне вызывающего.
func (r *Repository) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out := *b
			result = append(result, &out)
		}
	}

	return result, nil
}

// GetByLawyerID получает все бронирования юриста (counterparty).
// Порядок не гарантируется - сортировка на стороне вызывающего.
func (r *Repository) GetByLawyerID(ctx context.Context, lawyerID int64) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.LawyerID == lawyerID {
			out := *b
			result = append(result, &out)
		}
	}

	return result, nil
}

// UpdateStatus применяет переход статуса, если он допустим по таблице переходов.
// При недопустимом переходе возвращает ErrIllegalTransition, состояние не меняется.
func (r *Repository) UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	if !domain.CanTransition(b.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, b.Status, newStatus)
	}

	b.Status = newStatus
	b.UpdatedAt = r.clock()

	return nil
}

// Reschedule переносит бронирование на новые дату/время, обновляет тему,
// увеличивает счетчик переносов и нормализует статус обратно в pending -
// перенос всегда требует повторного подтверждения юристом.
//
// Проверка cutoff-политики выполняется usecase-слоем ДО вызова этого метода,
// здесь проверяется только допустимость самого перехода.
func (r *Repository) Reschedule(ctx context.Context, id string, newDate string, newTime types.TimeString, newTopic *string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	if !b.CanBeRescheduled() {
		return nil, fmt.Errorf("%w: cannot reschedule from %s", ErrIllegalTransition, b.Status)
	}

	b.Date = newDate
	b.StartTime = newTime
	if newTopic != nil {
		b.Topic = newTopic
	}
	b.RescheduleCount++
	b.Status = domain.StatusPending
	b.UpdatedAt = r.clock()

	out := *b
	return &out, nil
}

// Snapshot возвращает копию всей коллекции бронирований.
// Используется persistence-коллаборатором на границе save.
func (r *Repository) Snapshot(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out := *b
		result = append(result, &out)
	}

	return result, nil
}

// Restore загружает коллекцию бронирований целиком.
// Используется на границе load при старте процесса. Историческим данным
// статусы не перепроверяются - они восстанавливаются как есть.
func (r *Repository) Restore(ctx context.Context, bookings []*domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range bookings {
		if _, exists := r.bookings[b.ID]; exists {
			return fmt.Errorf("%w: id=%s", ErrDuplicateID, b.ID)
		}
	}

	for _, b := range bookings {
		stored := *b
		r.bookings[stored.ID] = &stored
	}

	return nil
}
