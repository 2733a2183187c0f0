package bookings

import (
	"context"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error)
	GetByLawyerID(ctx context.Context, lawyerID int64) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, newStatus domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
