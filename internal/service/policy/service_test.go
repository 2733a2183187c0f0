package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/config"
	storage "github.com/lexly/LM-BookingService/internal/infra/storage/policy"
	"github.com/lexly/LM-BookingService/internal/service/policy/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService() *Service {
	repo := storage.NewRepository(nil)
	return NewService(repo, nopLogger{})
}

func TestGetReturnsDefaults(t *testing.T) {
	svc := newService()

	resp, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Nil(t, resp.UpdatedAt)
}

func TestUpdateAndGet(t *testing.T) {
	svc := newService()

	updated, err := svc.Update(context.Background(), &models.UpdatePolicyRequest{
		UserID:              42,
		LawyerID:            42,
		CutoffMinutes:       180,
		FeeThreshold:        3,
		FeeAmount:           40,
		SuspensionThreshold: 6,
	})
	require.NoError(t, err)

	assert.False(t, updated.IsDefault)
	assert.Equal(t, 180, updated.CutoffMinutes)
	require.NotNil(t, updated.UpdatedAt)

	got, err := svc.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, updated.CutoffMinutes, got.CutoffMinutes)
	assert.Equal(t, updated.FeeAmount, got.FeeAmount)
}

func TestUpdateAccessDenied(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), &models.UpdatePolicyRequest{
		UserID:              10,
		LawyerID:            42,
		CutoffMinutes:       60,
		FeeThreshold:        2,
		SuspensionThreshold: 5,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateValidation(t *testing.T) {
	svc := newService()

	valid := models.UpdatePolicyRequest{
		UserID:              42,
		LawyerID:            42,
		CutoffMinutes:       60,
		FeeThreshold:        2,
		FeeAmount:           25,
		SuspensionThreshold: 5,
	}

	tests := []struct {
		name   string
		modify func(r *models.UpdatePolicyRequest)
	}{
		{name: "negative cutoff", modify: func(r *models.UpdatePolicyRequest) { r.CutoffMinutes = -1 }},
		{name: "cutoff over a week", modify: func(r *models.UpdatePolicyRequest) { r.CutoffMinutes = 10081 }},
		{name: "zero fee threshold", modify: func(r *models.UpdatePolicyRequest) { r.FeeThreshold = 0 }},
		{name: "zero suspension threshold", modify: func(r *models.UpdatePolicyRequest) { r.SuspensionThreshold = 0 }},
		{name: "negative fee amount", modify: func(r *models.UpdatePolicyRequest) { r.FeeAmount = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			_, err := svc.Update(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestConfigDefaultsFlowThrough(t *testing.T) {
	cfg := &config.Config{
		Policy: config.PolicyConfig{
			RescheduleCutoffMinutes: 240,
			FeeThreshold:            1,
			FeeAmount:               99,
			SuspensionThreshold:     3,
		},
	}
	repo := storage.NewRepository(cfg.DefaultPolicy())
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 240, resp.CutoffMinutes)
	assert.Equal(t, 99.0, resp.FeeAmount)
	assert.True(t, resp.IsDefault)
}
