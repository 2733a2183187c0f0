package update_policy

import (
	"github.com/lexly/LM-BookingService/internal/service/policy/models"
)

// UpdatePolicyRequest HTTP request model
type UpdatePolicyRequest struct {
	UserID              int64   `json:"userId"`
	CutoffMinutes       int     `json:"cutoffMinutes"`
	FeeThreshold        int     `json:"feeThreshold"`
	FeeAmount           float64 `json:"feeAmount"`
	SuspensionThreshold int     `json:"suspensionThreshold"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePolicyRequest) ToServiceRequest(lawyerID int64) *models.UpdatePolicyRequest {
	return &models.UpdatePolicyRequest{
		UserID:              r.UserID,
		LawyerID:            lawyerID,
		CutoffMinutes:       r.CutoffMinutes,
		FeeThreshold:        r.FeeThreshold,
		FeeAmount:           r.FeeAmount,
		SuspensionThreshold: r.SuspensionThreshold,
	}
}
