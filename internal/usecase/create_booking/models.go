package create_booking

import (
	"time"

	"github.com/lexly/LM-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID        int64
	LawyerID        int64
	Date            string // "2025-04-15"
	StartTime       types.TimeString
	DurationMinutes int
	SessionType     string
	Price           *float64 // nil - ставка юриста из каталога
	Topic           *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string
	ClientID        int64
	LawyerID        int64
	Date            string
	StartTime       types.TimeString
	DurationMinutes int
	SessionType     string
	Status          string
	Price           float64
	Topic           *string
	RescheduleCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
