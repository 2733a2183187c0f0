package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// Assessment результат проверки политики переносов для бронирования.
// Флаги вычисляются по счётчику переносов ДО инкремента.
type Assessment struct {
	FeeApplies     bool
	FeeAmount      float64
	SuspensionRisk bool
}

// evaluatePolicy проверяет перенос против политики юриста.
// Чистая функция над (бронирование, текущее время, политика) - ничего не мутирует.
//
// Cutoff защищает ТЕКУЩУЮ сессию от переноса в последний момент:
// сравнивается now с началом уже запланированной сессии, а не с новым временем.
func evaluatePolicy(b *domain.Booking, now time.Time, policy *domain.ReschedulePolicy) (*Assessment, error) {
	sessionStart, err := b.SessionStart()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse session start: %v", ErrInternal, err)
	}

	cutoff := time.Duration(policy.CutoffMinutes) * time.Minute
	if sessionStart.Sub(now) < cutoff {
		return nil, fmt.Errorf("%w: session starts at %s, cutoff is %d minutes",
			ErrTooCloseToSession, sessionStart.Format("2006-01-02 15:04"), policy.CutoffMinutes)
	}

	return &Assessment{
		FeeApplies:     b.RescheduleCount >= policy.FeeThreshold,
		FeeAmount:      policy.FeeAmount,
		SuspensionRisk: b.RescheduleCount >= policy.SuspensionThreshold,
	}, nil
}
