package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
	bookingRepo "github.com/lexly/LM-BookingService/internal/infra/storage/booking"
	"github.com/lexly/LM-BookingService/internal/service/bookings/models"
)

// Service сервис чтения и жизненного цикла бронирований.
// Все выборки работают поверх снапшотов хранилища и ничего не мутируют;
// мутации проходят исключительно через UpdateStatus хранилища.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Доступ имеют только клиент и юрист этого бронирования.
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkParticipant(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает бронирования клиента с фильтрацией по вкладке.
// Вкладки:
// - upcoming: pending + confirmed, хронологический порядок
// - past: completed, сначала новые
// - cancelled: cancelled, сначала новые
// - rescheduled: rescheduled (вкладка полноты ради: перенос нормализует статус в pending)
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, tab=%v", req.ClientID, req.Tab)

	all, err := s.bookingRepo.GetByClientID(ctx, req.ClientID)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	var filtered []*domain.Booking
	if req.Tab == nil {
		filtered = all
		sortChronological(filtered, false)
	} else {
		switch *req.Tab {
		case models.TabUpcoming:
			filtered = filterByStatus(all, domain.StatusPending, domain.StatusConfirmed)
			sortChronological(filtered, true)
		case models.TabPast:
			filtered = filterByStatus(all, domain.StatusCompleted)
			sortChronological(filtered, false)
		case models.TabCancelled:
			filtered = filterByStatus(all, domain.StatusCancelled)
			sortChronological(filtered, false)
		case models.TabRescheduled:
			filtered = filterByStatus(all, domain.StatusRescheduled)
			sortChronological(filtered, false)
		default:
			s.logger.Warn("GetClientBookings: invalid tab=%s for client=%d", *req.Tab, req.ClientID)
			return nil, fmt.Errorf("%w: invalid tab", ErrInvalidInput)
		}
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%d", len(filtered), req.ClientID)
	return models.FromDomainBookingList(filtered), nil
}

// NextUpcoming возвращает ближайшую подтверждённую сессию клиента с датой не раньше
// сегодняшней. Порядок детерминированный: дата, затем время начала, затем ID.
func (s *Service) NextUpcoming(ctx context.Context, clientID int64, now time.Time) (*models.BookingResponse, error) {
	s.logger.Info("NextUpcoming: fetching next booking for client=%d", clientID)

	all, err := s.bookingRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("NextUpcoming: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: NextUpcoming - repository error: %v", ErrInternal, err)
	}

	today := now.Format(domain.DateFormat)

	candidates := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.Status == domain.StatusConfirmed && b.Date >= today {
			candidates = append(candidates, b)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoUpcomingBooking
	}

	sortChronological(candidates, true)
	return models.FromDomainBooking(candidates[0]), nil
}

// BookingOnDate возвращает первое активное (pending/confirmed) бронирование клиента
// на указанную дату, детерминированно по времени начала и ID.
// Отсутствие бронирования - не ошибка, возвращается nil.
//
// В ячейке календаря представимо только одно бронирование на день:
// остальные сессии того же дня этим методом не видны.
func (s *Service) BookingOnDate(ctx context.Context, clientID int64, date string) (*domain.Booking, error) {
	all, err := s.bookingRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: BookingOnDate - repository error: %v", ErrInternal, err)
	}

	matches := make([]*domain.Booking, 0)
	for _, b := range all {
		if b.IsActive() && b.Date == date {
			matches = append(matches, b)
		}
	}

	if len(matches) == 0 {
		return nil, nil
	}

	sortChronological(matches, true)
	return matches[0], nil
}

// Cancel отменяет бронирование.
// Отменить может клиент или юрист бронирования; отмена необратима.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%d", bookingID, req.UserID)

	booking, err := s.getForUpdate(ctx, bookingID, "Cancel")
	if err != nil {
		return err
	}

	if err := checkParticipant(booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%s", req.UserID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.updateStatus(ctx, bookingID, domain.StatusCancelled, "Cancel"); err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Confirm подтверждает бронирование.
// Триггер принятия со стороны counterparty: подтвердить может только юрист.
func (s *Service) Confirm(ctx context.Context, bookingID string, req *models.ConfirmBookingRequest) error {
	s.logger.Info("Confirm: confirming booking id=%s by user=%d", bookingID, req.UserID)

	booking, err := s.getForUpdate(ctx, bookingID, "Confirm")
	if err != nil {
		return err
	}

	if booking.LawyerID != req.UserID {
		s.logger.Warn("Confirm: user=%d is not the lawyer of booking id=%s", req.UserID, bookingID)
		return ErrAccessDenied
	}

	if err := s.updateStatus(ctx, bookingID, domain.StatusConfirmed, "Confirm"); err != nil {
		return err
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%s", bookingID)
	return nil
}

// Complete завершает бронирование по истечении времени сессии.
// Переход управляется внешним триггером (юристом или планировщиком),
// но охраняется условием "сессия уже закончилась".
func (s *Service) Complete(ctx context.Context, bookingID string, req *models.CompleteBookingRequest, now time.Time) error {
	s.logger.Info("Complete: completing booking id=%s by user=%d", bookingID, req.UserID)

	booking, err := s.getForUpdate(ctx, bookingID, "Complete")
	if err != nil {
		return err
	}

	if err := checkParticipant(booking, req.UserID); err != nil {
		s.logger.Warn("Complete: access denied for user=%d to booking id=%s", req.UserID, bookingID)
		return err
	}

	start, err := booking.SessionStart()
	if err != nil {
		s.logger.Error("Complete: failed to parse session start of booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - invalid session start: %v", ErrInternal, err)
	}

	end := start.Add(time.Duration(booking.DurationMinutes) * time.Minute)
	if end.After(now) {
		s.logger.Warn("Complete: booking id=%s session has not finished yet (ends %s)", bookingID, end)
		return ErrSessionNotFinished
	}

	if err := s.updateStatus(ctx, bookingID, domain.StatusCompleted, "Complete"); err != nil {
		return err
	}

	s.logger.Info("Complete: successfully completed booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getForUpdate(ctx context.Context, bookingID, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) updateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, op string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrIllegalTransition):
			s.logger.Warn("%s: illegal transition for booking id=%s: %v", op, bookingID, err)
			return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
		default:
			s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
			return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}
	return nil
}

// checkParticipant проверяет, что пользователь - участник бронирования (клиент или юрист)
func checkParticipant(b *domain.Booking, userID int64) error {
	if b.ClientID == userID || b.LawyerID == userID {
		return nil
	}
	return ErrAccessDenied
}

// filterByStatus возвращает бронирования в одном из указанных статусов
func filterByStatus(bookings []*domain.Booking, statuses ...domain.BookingStatus) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		for _, status := range statuses {
			if b.Status == status {
				result = append(result, b)
				break
			}
		}
	}
	return result
}

// sortChronological сортирует бронирования по дате, времени начала и ID.
// ascending=false переворачивает порядок (сначала новые).
// ID как последний ключ делает порядок полностью детерминированным.
func sortChronological(bookings []*domain.Booking, ascending bool) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !ascending {
			a, b = b, a
		}

		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime.IsBefore(b.StartTime)
		}
		return a.ID < b.ID
	})
}
