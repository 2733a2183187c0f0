package create_booking

import (
	"time"

	"github.com/lexly/LM-BookingService/pkg/types"

	createBooking "github.com/lexly/LM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID          int64    `json:"userId"`
	LawyerID        int64    `json:"lawyerId"`
	Date            string   `json:"date"`      // "2025-10-15"
	StartTime       string   `json:"startTime"` // "10:00 AM"
	DurationMinutes int      `json:"durationMinutes"`
	SessionType     string   `json:"sessionType"`
	Price           *float64 `json:"price,omitempty"`
	Topic           *string  `json:"topic,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        int64   `json:"clientId"`
	LawyerID        int64   `json:"lawyerId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	SessionType     string  `json:"sessionType"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	Topic           *string `json:"topic,omitempty"`
	RescheduleCount int     `json:"rescheduleCount"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:        r.UserID,
		LawyerID:        r.LawyerID,
		Date:            r.Date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		SessionType:     r.SessionType,
		Price:           r.Price,
		Topic:           r.Topic,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		LawyerID:        resp.LawyerID,
		Date:            resp.Date,
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		SessionType:     resp.SessionType,
		Status:          resp.Status,
		Price:           resp.Price,
		Topic:           resp.Topic,
		RescheduleCount: resp.RescheduleCount,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
