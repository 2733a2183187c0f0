package reschedule_booking

import (
	"time"

	"github.com/lexly/LM-BookingService/pkg/types"

	rescheduleBooking "github.com/lexly/LM-BookingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	UserID   int64   `json:"userId"`
	NewDate  string  `json:"newDate"` // "2025-10-15"
	NewTime  string  `json:"newTime"` // "10:00 AM"
	NewTopic *string `json:"newTopic,omitempty"`
}

// RescheduleBookingResponse HTTP response model.
// Флаги fee/suspension - advisory: сервис сигнализирует, биллинг
// и модерация реагируют на своей стороне.
type RescheduleBookingResponse struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	Status          string  `json:"status"`
	Topic           *string `json:"topic,omitempty"`
	RescheduleCount int     `json:"rescheduleCount"`
	UpdatedAt       string  `json:"updatedAt"`
	FeeApplies      bool    `json:"feeApplies"`
	FeeAmount       float64 `json:"feeAmount,omitempty"`
	SuspensionRisk  bool    `json:"suspensionRisk"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) (*rescheduleBooking.Request, error) {
	newTime, err := types.NewTimeStringFromString(r.NewTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    r.UserID,
		NewDate:   r.NewDate,
		NewTime:   newTime,
		NewTopic:  r.NewTopic,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:              resp.ID,
		Date:            resp.Date,
		StartTime:       resp.StartTime.String(),
		Status:          resp.Status,
		Topic:           resp.Topic,
		RescheduleCount: resp.RescheduleCount,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
		FeeApplies:      resp.FeeApplies,
		FeeAmount:       resp.FeeAmount,
		SuspensionRisk:  resp.SuspensionRisk,
	}
}
