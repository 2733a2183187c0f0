package models

import (
	"time"

	"github.com/lexly/LM-BookingService/internal/domain"
)

// UpdatePolicyRequest запрос на обновление политики переносов юриста
type UpdatePolicyRequest struct {
	UserID              int64   `json:"userId"`
	LawyerID            int64   `json:"lawyerId"`
	CutoffMinutes       int     `json:"cutoffMinutes"`
	FeeThreshold        int     `json:"feeThreshold"`
	FeeAmount           float64 `json:"feeAmount"`
	SuspensionThreshold int     `json:"suspensionThreshold"`
}

// PolicyResponse ответ с политикой переносов
type PolicyResponse struct {
	LawyerID            int64      `json:"lawyerId"`
	CutoffMinutes       int        `json:"cutoffMinutes"`
	FeeThreshold        int        `json:"feeThreshold"`
	FeeAmount           float64    `json:"feeAmount"`
	SuspensionThreshold int        `json:"suspensionThreshold"`
	IsDefault           bool       `json:"isDefault"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.ReschedulePolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		LawyerID:            p.LawyerID,
		CutoffMinutes:       p.CutoffMinutes,
		FeeThreshold:        p.FeeThreshold,
		FeeAmount:           p.FeeAmount,
		SuspensionThreshold: p.SuspensionThreshold,
		IsDefault:           p.IsDefault(),
	}

	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		resp.UpdatedAt = &updated
	}

	return resp
}

// ToDomainPolicy конвертирует запрос в domain модель
func (r *UpdatePolicyRequest) ToDomainPolicy() *domain.ReschedulePolicy {
	return &domain.ReschedulePolicy{
		LawyerID:            r.LawyerID,
		CutoffMinutes:       r.CutoffMinutes,
		FeeThreshold:        r.FeeThreshold,
		FeeAmount:           r.FeeAmount,
		SuspensionThreshold: r.SuspensionThreshold,
	}
}
