package reschedule_booking

import (
	"context"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/pkg/types"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Reschedule(ctx context.Context, id string, newDate string, newTime types.TimeString, newTopic *string) (*domain.Booking, error)
}

// PolicyRepository интерфейс хранилища политик переносов
type PolicyRepository interface {
	GetWithDefault(ctx context.Context, lawyerID int64) (*domain.ReschedulePolicy, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
