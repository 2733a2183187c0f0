package update_policy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
	"github.com/lexly/LM-BookingService/internal/service/policy"
)

const (
	msgInvalidLawyerID    = "некорректный ID юриста"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "изменять политику может только сам юрист"
	msgInvalidPolicy      = "некорректные значения политики переносов"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/lawyers/{lawyerId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lawyerIDStr := vars["lawyerId"]

	lawyerID, err := strconv.ParseInt(lawyerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /lawyers/{lawyerId}/policy - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /lawyers/{lawyerId}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(lawyerID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /lawyers/{lawyerId}/policy - Access denied: lawyer_id=%d, user_id=%d",
				lawyerID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PUT /lawyers/{lawyerId}/policy - Invalid policy: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		default:
			h.logger.Error("PUT /lawyers/{lawyerId}/policy - Failed to update policy: lawyer_id=%d, error=%v",
				lawyerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /lawyers/{lawyerId}/policy - Policy updated: lawyer_id=%d", lawyerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
