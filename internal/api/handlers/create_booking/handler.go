package create_booking

import (
	"errors"
	"net/http"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
	createBooking "github.com/lexly/LM-BookingService/internal/usecase/create_booking"
	"github.com/lexly/LM-BookingService/pkg/metrics"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM AM/PM"
	msgInvalidDate        = "некорректная дата бронирования"
	msgLawyerNotFound     = "юрист не найден"
	msgInvalidInput       = "некорректные данные бронирования"
	msgDuplicate          = "бронирование с таким ID уже существует"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics *metrics.Metrics // nil, если метрики выключены
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, m *metrics.Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: m,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Создаем бронирование
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrLawyerNotFound):
			h.logger.Warn("POST /bookings - Lawyer not found: lawyer_id=%d", req.LawyerID)
			handlers.RespondNotFound(w, msgLawyerNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDuplicateID):
			h.logger.Warn("POST /bookings - Duplicate booking ID: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgDuplicate)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v",
				req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.BookingsCreated.Inc()
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%d",
		result.ID, req.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
