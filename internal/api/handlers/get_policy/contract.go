package get_policy

import (
	"context"

	"github.com/lexly/LM-BookingService/internal/service/policy/models"
)

type PolicyService interface {
	Get(ctx context.Context, lawyerID int64) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
