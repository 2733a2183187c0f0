package get_calendar

import (
	"github.com/lexly/LM-BookingService/internal/domain"
	bookingsmodels "github.com/lexly/LM-BookingService/internal/service/bookings/models"
)

// Request параметры запроса календарной сетки
type Request struct {
	ClientID int64
	View     domain.CalendarViewMode
	Anchor   string // дата в формате 2006-01-02, пустая строка = сегодня
}

// DayCell одна ячейка календарной сетки
type DayCell struct {
	Date            string                          `json:"date"`
	Weekday         int                             `json:"weekday"`
	IsCurrentPeriod bool                            `json:"is_current_period"`
	IsToday         bool                            `json:"is_today"`
	Booking         *bookingsmodels.BookingResponse `json:"booking,omitempty"`
}

// Response календарная сетка с навигационными якорями
type Response struct {
	View       domain.CalendarViewMode `json:"view"`
	Anchor     string                  `json:"anchor"`
	PrevAnchor string                  `json:"prev_anchor"`
	NextAnchor string                  `json:"next_anchor"`
	Days       []DayCell               `json:"days"`
}
