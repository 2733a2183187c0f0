package next_upcoming

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
	"github.com/lexly/LM-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgNoUpcoming    = "предстоящих сессий нет"
)

type Handler struct {
	service      BookingService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service BookingService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/bookings/next - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	booking, err := h.service.NextUpcoming(r.Context(), userID, h.timeProvider.Now())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrNoUpcomingBooking):
			h.logger.Info("GET /users/{userId}/bookings/next - No upcoming bookings: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNoUpcoming)

		default:
			h.logger.Error("GET /users/{userId}/bookings/next - Failed to get next booking: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/bookings/next - Next booking retrieved: user_id=%d, booking_id=%s",
		userID, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
