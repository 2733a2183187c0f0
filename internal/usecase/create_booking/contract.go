package create_booking

import (
	"context"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/internal/integrations/lawyerservice"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// LawyerServiceClient интерфейс клиента каталога юристов
type LawyerServiceClient interface {
	GetLawyer(ctx context.Context, lawyerID int64) (*lawyerservice.Lawyer, error)
}

// IDGenerator интерфейс генерации ID бронирований (для тестирования)
type IDGenerator interface {
	NewID() string
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
