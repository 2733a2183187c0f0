package models

import (
	"errors"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

var (
	// ErrInvalidTab возвращается при неизвестной вкладке бронирований
	ErrInvalidTab = errors.New("invalid bookings tab")
)

// BookingsTab вкладка списка бронирований
type BookingsTab string

const (
	TabUpcoming    BookingsTab = "upcoming"
	TabPast        BookingsTab = "past"
	TabCancelled   BookingsTab = "cancelled"
	TabRescheduled BookingsTab = "rescheduled"
)

// ParseTab валидирует вкладку списка бронирований
func ParseTab(s string) (BookingsTab, error) {
	switch BookingsTab(s) {
	case TabUpcoming, TabPast, TabCancelled, TabRescheduled:
		return BookingsTab(s), nil
	default:
		return "", ErrInvalidTab
	}
}

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// ConfirmBookingRequest запрос на подтверждение бронирования юристом
type ConfirmBookingRequest struct {
	UserID int64 `json:"userId"`
}

// CompleteBookingRequest запрос на завершение бронирования
type CompleteBookingRequest struct {
	UserID int64 `json:"userId"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64        `json:"clientId"`
	Tab      *BookingsTab `json:"tab,omitempty"` // nil - все бронирования
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        int64   `json:"clientId"`
	LawyerID        int64   `json:"lawyerId"`
	Date            string  `json:"date"`      // "2025-04-15"
	StartTime       string  `json:"startTime"` // "10:00 AM"
	DurationMinutes int     `json:"durationMinutes"`
	SessionType     string  `json:"sessionType"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`
	Topic           *string `json:"topic,omitempty"`
	RescheduleCount int     `json:"rescheduleCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		ClientID:        b.ClientID,
		LawyerID:        b.LawyerID,
		Date:            b.Date,
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		SessionType:     string(b.SessionType),
		Status:          string(b.Status),
		Price:           b.Price,
		Topic:           b.Topic,
		RescheduleCount: b.RescheduleCount,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
