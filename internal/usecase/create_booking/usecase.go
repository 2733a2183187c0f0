package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lexly/LM-BookingService/internal/domain"
	bookingRepo "github.com/lexly/LM-BookingService/internal/infra/storage/booking"
	lawyerClient "github.com/lexly/LM-BookingService/internal/integrations/lawyerservice"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	lawyerClient LawyerServiceClient
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	lawyerClient LawyerServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		lawyerClient: lawyerClient,
		idGenerator:  &uuidGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Новое бронирование всегда создается в статусе pending и ждет подтверждения юриста.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, lawyer=%d, date=%s, time=%s, type=%s",
		req.ClientID, req.LawyerID, req.Date, req.StartTime, req.SessionType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование юриста в каталоге
	lawyer, err := uc.lawyerClient.GetLawyer(ctx, req.LawyerID)
	if err != nil {
		if errors.Is(err, lawyerClient.ErrLawyerNotFound) {
			uc.logger.Warn("CreateBooking: lawyer id=%d not found", req.LawyerID)
			return nil, ErrLawyerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get lawyer id=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: failed to get lawyer: %v", ErrInternal, err)
	}

	// 4. Цена: явная из запроса или ставка юриста для типа сессии
	price := lawyer.RateFor(req.SessionType)
	if req.Price != nil {
		price = *req.Price
	}

	// 5. Создаем бронирование
	booking := &domain.Booking{
		ID:              uc.idGenerator.NewID(),
		ClientID:        req.ClientID,
		LawyerID:        req.LawyerID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		SessionType:     domain.SessionType(req.SessionType),
		Status:          domain.StatusPending,
		Price:           price,
		Topic:           req.Topic,
		RescheduleCount: 0,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateID) {
			uc.logger.Error("CreateBooking: duplicate booking id=%s", booking.ID)
			return nil, fmt.Errorf("%w: %v", ErrDuplicateID, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)

	return &Response{
		ID:              created.ID,
		ClientID:        created.ClientID,
		LawyerID:        created.LawyerID,
		Date:            created.Date,
		StartTime:       created.StartTime,
		DurationMinutes: created.DurationMinutes,
		SessionType:     string(created.SessionType),
		Status:          string(created.Status),
		Price:           created.Price,
		Topic:           created.Topic,
		RescheduleCount: created.RescheduleCount,
		CreatedAt:       created.CreatedAt,
		UpdatedAt:       created.UpdatedAt,
	}, nil
}

// uuidGenerator генерирует непрозрачные уникальные ID бронирований
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.New().String()
}
