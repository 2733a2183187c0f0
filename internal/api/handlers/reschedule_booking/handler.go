package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
	rescheduleBooking "github.com/lexly/LM-BookingService/internal/usecase/reschedule_booking"
	"github.com/lexly/LM-BookingService/pkg/metrics"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM AM/PM"
	msgInvalidDate        = "некорректная дата переноса"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "перенести бронирование может только клиент"
	msgTooClose           = "до начала сессии осталось слишком мало времени"
	msgCannotReschedule   = "бронирование не может быть перенесено в текущем статусе"
	msgInvalidInput       = "некорректные данные переноса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	metrics *metrics.Metrics // nil, если метрики выключены
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%s, user_id=%d",
				bookingID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrTooCloseToSession):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Too close to session: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooClose)

		case errors.Is(err, rescheduleBooking.ErrIllegalTransition):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Illegal transition: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsRescheduled.Inc()
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%s, user_id=%d, count=%d",
		bookingID, req.UserID, result.RescheduleCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
