package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	bookingRepo "github.com/lexly/LM-BookingService/internal/infra/storage/booking"
)

// UseCase use case переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	policyRepo   PolicyRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policyRepo PolicyRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policyRepo:   policyRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Порядок проверок:
// 1. валидация входных данных
// 2. загрузка бронирования и проверка прав (переносит только клиент)
// 3. политика юриста: cutoff, advisory-флаги (по счётчику до инкремента)
// 4. мутация хранилища: новые дата/время/тема, инкремент счётчика, статус pending
// Любая ошибка оставляет бронирование без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%s, user=%d, newDate=%s, newTime=%s",
		req.BookingID, req.UserID, req.NewDate, req.NewTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if err := validateNewDate(req.NewDate, now); err != nil {
		uc.logger.Warn("RescheduleBooking: new date validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: repository error for booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != req.UserID {
		uc.logger.Warn("RescheduleBooking: user=%d is not the client of booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%s cannot be rescheduled, status=%s",
			req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: cannot reschedule from %s", ErrIllegalTransition, booking.Status)
	}

	// 3. Политика юриста (персональная или сервисные дефолты)
	policy, err := uc.policyRepo.GetWithDefault(ctx, booking.LawyerID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get policy for lawyer=%d: %v", booking.LawyerID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	assessment, err := evaluatePolicy(booking, now, policy)
	if err != nil {
		if errors.Is(err, ErrTooCloseToSession) {
			uc.logger.Warn("RescheduleBooking: booking id=%s too close to session: %v", req.BookingID, err)
		} else {
			uc.logger.Error("RescheduleBooking: policy evaluation failed for booking id=%s: %v", req.BookingID, err)
		}
		return nil, err
	}

	if assessment.FeeApplies {
		uc.logger.Info("RescheduleBooking: fee advisory for booking id=%s (count=%d, fee=%.2f)",
			req.BookingID, booking.RescheduleCount, assessment.FeeAmount)
	}
	if assessment.SuspensionRisk {
		uc.logger.Warn("RescheduleBooking: suspension advisory for client=%d (count=%d)",
			booking.ClientID, booking.RescheduleCount)
	}

	// 4. Мутация хранилища
	updated, err := uc.bookingRepo.Reschedule(ctx, req.BookingID, req.NewDate, req.NewTime, req.NewTopic)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrIllegalTransition):
			return nil, fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		default:
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%s to %s %s (count=%d)",
		updated.ID, updated.Date, updated.StartTime, updated.RescheduleCount)

	return &Response{
		ID:              updated.ID,
		Date:            updated.Date,
		StartTime:       updated.StartTime,
		Status:          string(updated.Status),
		Topic:           updated.Topic,
		RescheduleCount: updated.RescheduleCount,
		UpdatedAt:       updated.UpdatedAt,
		FeeApplies:      assessment.FeeApplies,
		FeeAmount:       assessment.FeeAmount,
		SuspensionRisk:  assessment.SuspensionRisk,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.NewDate == "" {
		return fmt.Errorf("%w: newDate is required", ErrInvalidInput)
	}

	if _, err := time.ParseInLocation(domain.DateFormat, req.NewDate, time.Local); err != nil {
		return fmt.Errorf("%w: invalid newDate format: %v", ErrInvalidInput, err)
	}

	if req.NewTime.IsZero() {
		return fmt.Errorf("%w: newTime is required", ErrInvalidInput)
	}

	if err := req.NewTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid newTime format: %v", ErrInvalidInput, err)
	}

	if req.NewTopic != nil && len(*req.NewTopic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic exceeds %d characters", ErrInvalidInput, domain.MaxTopicLength)
	}

	return nil
}

// validateNewDate проверяет, что новая дата не в прошлом
func validateNewDate(date string, now time.Time) error {
	newDate, err := time.ParseInLocation(domain.DateFormat, date, time.Local)
	if err != nil {
		return fmt.Errorf("%w: invalid newDate format: %v", ErrInvalidInput, err)
	}

	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if newDate.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}
