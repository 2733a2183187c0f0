package next_upcoming

import (
	"context"
	"time"

	"github.com/lexly/LM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	NextUpcoming(ctx context.Context, clientID int64, now time.Time) (*models.BookingResponse, error)
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
