package policy

import (
	"context"
	"fmt"

	"github.com/lexly/LM-BookingService/internal/domain"
	"github.com/lexly/LM-BookingService/internal/service/policy/models"
)

// Service сервис управления политиками переносов юристов
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса политик
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Get возвращает действующую политику переносов юриста.
// При отсутствии персонального переопределения возвращаются сервисные дефолты.
func (s *Service) Get(ctx context.Context, lawyerID int64) (*models.PolicyResponse, error) {
	s.logger.Info("Get: fetching reschedule policy for lawyer=%d", lawyerID)

	p, err := s.policyRepo.GetWithDefault(ctx, lawyerID)
	if err != nil {
		s.logger.Error("Get: repository error for lawyer=%d: %v", lawyerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(p), nil
}

// Update создает или обновляет переопределение политики юриста.
// Менять политику может только сам юрист.
func (s *Service) Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("Update: updating reschedule policy for lawyer=%d by user=%d", req.LawyerID, req.UserID)

	if req.UserID != req.LawyerID {
		s.logger.Warn("Update: user=%d is not lawyer=%d", req.UserID, req.LawyerID)
		return nil, ErrAccessDenied
	}

	if err := validatePolicy(req); err != nil {
		s.logger.Warn("Update: validation failed for lawyer=%d: %v", req.LawyerID, err)
		return nil, err
	}

	stored, err := s.policyRepo.Upsert(ctx, req.ToDomainPolicy())
	if err != nil {
		s.logger.Error("Update: repository error for lawyer=%d: %v", req.LawyerID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated policy for lawyer=%d", req.LawyerID)
	return models.FromDomainPolicy(stored), nil
}

func validatePolicy(req *models.UpdatePolicyRequest) error {
	if req.LawyerID <= 0 {
		return fmt.Errorf("%w: lawyerID must be positive", ErrInvalidInput)
	}

	if req.CutoffMinutes < domain.MinRescheduleCutoffMinutes || req.CutoffMinutes > domain.MaxRescheduleCutoffMinutes {
		return fmt.Errorf("%w: cutoffMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinRescheduleCutoffMinutes, domain.MaxRescheduleCutoffMinutes)
	}

	if req.FeeThreshold < domain.MinFeeThreshold || req.FeeThreshold > domain.MaxFeeThreshold {
		return fmt.Errorf("%w: feeThreshold must be between %d and %d",
			ErrInvalidInput, domain.MinFeeThreshold, domain.MaxFeeThreshold)
	}

	if req.SuspensionThreshold < domain.MinSuspensionThreshold || req.SuspensionThreshold > domain.MaxSuspensionThreshold {
		return fmt.Errorf("%w: suspensionThreshold must be between %d and %d",
			ErrInvalidInput, domain.MinSuspensionThreshold, domain.MaxSuspensionThreshold)
	}

	if req.FeeAmount < 0 {
		return fmt.Errorf("%w: feeAmount must be non-negative", ErrInvalidInput)
	}

	return nil
}
