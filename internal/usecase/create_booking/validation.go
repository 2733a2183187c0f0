package create_booking

import (
	"fmt"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.LawyerID <= 0 {
		return fmt.Errorf("%w: lawyerID must be positive", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := time.ParseInLocation(domain.DateFormat, req.Date, time.Local); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	switch domain.SessionType(req.SessionType) {
	case domain.SessionConsultation, domain.SessionMentorship:
	default:
		return fmt.Errorf("%w: unknown session type %q", ErrInvalidInput, req.SessionType)
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	if req.Topic != nil && len(*req.Topic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic exceeds %d characters", ErrInvalidInput, domain.MaxTopicLength)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом.
// Новые бронирования в прошлое не создаются; исторические данные снапшота
// этой проверкой не перепроверяются.
func validateDate(date string, now time.Time) error {
	bookingDate, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if bookingDate.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
