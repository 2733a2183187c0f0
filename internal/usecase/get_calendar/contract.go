package get_calendar

import (
	"context"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// BookingProvider отдаёт активную запись клиента на конкретную дату (или nil)
type BookingProvider interface {
	BookingOnDate(ctx context.Context, clientID int64, date string) (*domain.Booking, error)
}

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
