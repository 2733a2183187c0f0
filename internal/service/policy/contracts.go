package policy

import (
	"context"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// PolicyRepository интерфейс хранилища политик переносов
type PolicyRepository interface {
	GetWithDefault(ctx context.Context, lawyerID int64) (*domain.ReschedulePolicy, error)
	Upsert(ctx context.Context, p *domain.ReschedulePolicy) (*domain.ReschedulePolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
