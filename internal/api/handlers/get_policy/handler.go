package get_policy

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/lexly/LM-BookingService/internal/api/handlers"
)

const (
	msgInvalidLawyerID = "некорректный ID юриста"
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

// Handle GET /api/v1/lawyers/{lawyerId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lawyerIDStr := vars["lawyerId"]

	lawyerID, err := strconv.ParseInt(lawyerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /lawyers/{lawyerId}/policy - Invalid lawyer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLawyerID)
		return
	}

	// Политика всегда есть: при отсутствии кастомной отдаются глобальные правила
	policy, err := h.service.Get(r.Context(), lawyerID)
	if err != nil {
		h.logger.Error("GET /lawyers/{lawyerId}/policy - Failed to get policy: lawyer_id=%d, error=%v",
			lawyerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /lawyers/{lawyerId}/policy - Policy retrieved: lawyer_id=%d, is_default=%t",
		lawyerID, policy.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, policy)
}
