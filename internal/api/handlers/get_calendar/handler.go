package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
	"github.com/lexly/LM-BookingService/internal/domain"
	getCalendar "github.com/lexly/LM-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidParams = "некорректные параметры календаря"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/calendar?view=week|month&anchor=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/calendar - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// Режим по умолчанию - неделя
	view := domain.ViewWeek
	if viewStr := r.URL.Query().Get("view"); viewStr != "" {
		parsed, ok := domain.ParseViewMode(viewStr)
		if !ok {
			h.logger.Warn("GET /users/{userId}/calendar - Invalid view: %q", viewStr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		view = parsed
	}

	req := getCalendar.Request{
		ClientID: userID,
		View:     view,
		Anchor:   r.URL.Query().Get("anchor"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /users/{userId}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /users/{userId}/calendar - Failed to build calendar: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/calendar - Calendar built: user_id=%d, view=%s, days=%d",
		userID, result.View, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
