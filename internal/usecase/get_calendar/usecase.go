package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	bookingsmodels "github.com/lexly/LM-BookingService/internal/service/bookings/models"
)

type UseCase struct {
	bookings     BookingProvider
	timeProvider TimeProvider
	logger       Logger
}

func NewUseCase(bookings BookingProvider, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		bookings:     bookings,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute строит календарную сетку для клиента: 7 ячеек для недели,
// 42 для месяца, с привязкой активных записей к датам
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if req.ClientID <= 0 {
		return nil, fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.View != domain.ViewWeek && req.View != domain.ViewMonth {
		return nil, fmt.Errorf("%w: unknown view mode %q", ErrInvalidInput, req.View)
	}

	now := uc.timeProvider.Now()
	today := now.Format(domain.DateFormat)

	anchor := now
	if req.Anchor != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, req.Anchor, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: anchor must be in format %s", ErrInvalidInput, domain.DateFormat)
		}
		anchor = parsed
	}

	var dates []time.Time
	if req.View == domain.ViewWeek {
		dates = WeekDates(anchor)
	} else {
		dates = MonthDates(anchor)
	}

	days := make([]DayCell, 0, len(dates))
	for _, d := range dates {
		dateStr := d.Format(domain.DateFormat)

		cell := DayCell{
			Date:            dateStr,
			Weekday:         int(d.Weekday()),
			IsCurrentPeriod: req.View == domain.ViewWeek || d.Month() == anchor.Month(),
			IsToday:         dateStr == today,
		}

		booking, err := uc.bookings.BookingOnDate(ctx, req.ClientID, dateStr)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to load booking for date %s: %v", dateStr, err)
			return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}
		if booking != nil {
			cell.Booking = bookingsmodels.FromDomainBooking(booking)
		}

		days = append(days, cell)
	}

	return &Response{
		View:       req.View,
		Anchor:     anchor.Format(domain.DateFormat),
		PrevAnchor: NextAnchor(anchor, req.View, domain.DirectionPrev).Format(domain.DateFormat),
		NextAnchor: NextAnchor(anchor, req.View, domain.DirectionNext).Format(domain.DateFormat),
		Days:       days,
	}, nil
}
