package policy

import (
	"context"
	"sync"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// Repository in-memory хранилище per-lawyer переопределений политики переносов.
// Отсутствие записи - не ошибка конфигурации: вызывающий слой подставляет
// сервисные дефолты (GetWithDefault).
type Repository struct {
	mu       sync.RWMutex
	policies map[int64]*domain.ReschedulePolicy
	defaults *domain.ReschedulePolicy
	clock    func() time.Time
}

// NewRepository создает хранилище политик с заданными сервисными дефолтами
func NewRepository(defaults *domain.ReschedulePolicy) *Repository {
	if defaults == nil {
		defaults = domain.DefaultReschedulePolicy()
	}
	return &Repository{
		policies: make(map[int64]*domain.ReschedulePolicy),
		defaults: defaults,
		clock:    time.Now,
	}
}

// GetByLawyerID возвращает переопределение политики для юриста
func (r *Repository) GetByLawyerID(ctx context.Context, lawyerID int64) (*domain.ReschedulePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.policies[lawyerID]
	if !ok {
		return nil, ErrPolicyNotFound
	}

	out := *p
	return &out, nil
}

// GetWithDefault возвращает политику юриста, при отсутствии переопределения - дефолты.
// Иерархия как у конфигурации слотов: сначала персональная запись, затем сервисная.
func (r *Repository) GetWithDefault(ctx context.Context, lawyerID int64) (*domain.ReschedulePolicy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.policies[lawyerID]; ok {
		out := *p
		return &out, nil
	}

	out := *r.defaults
	return &out, nil
}

// Upsert создает или обновляет переопределение политики юриста
func (r *Repository) Upsert(ctx context.Context, p *domain.ReschedulePolicy) (*domain.ReschedulePolicy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()

	stored := *p
	if existing, ok := r.policies[p.LawyerID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.policies[stored.LawyerID] = &stored

	out := stored
	return &out, nil
}
