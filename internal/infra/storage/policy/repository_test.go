package policy

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexly/LM-BookingService/internal/domain"
)

func TestGetByLawyerIDNotFound(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.GetByLawyerID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrPolicyNotFound)
}

func TestGetWithDefaultFallsBack(t *testing.T) {
	defaults := &domain.ReschedulePolicy{
		CutoffMinutes:       90,
		FeeThreshold:        3,
		FeeAmount:           50,
		SuspensionThreshold: 7,
	}
	repo := NewRepository(defaults)

	p, err := repo.GetWithDefault(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, 90, p.CutoffMinutes)
	assert.Equal(t, 3, p.FeeThreshold)
	assert.True(t, p.IsDefault())
}

func TestUpsertOverridesDefaults(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.Upsert(context.Background(), &domain.ReschedulePolicy{
		LawyerID:            42,
		CutoffMinutes:       180,
		FeeThreshold:        1,
		FeeAmount:           10,
		SuspensionThreshold: 4,
	})
	require.NoError(t, err)

	p, err := repo.GetWithDefault(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 180, p.CutoffMinutes)
	assert.False(t, p.IsDefault())

	// другие юристы остаются на дефолтах
	other, err := repo.GetWithDefault(context.Background(), 43)
	require.NoError(t, err)
	assert.True(t, other.IsDefault())
	assert.Equal(t, domain.DefaultRescheduleCutoffMinutes, other.CutoffMinutes)
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	repo := NewRepository(nil)

	first := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(24 * time.Hour)

	repo.clock = func() time.Time { return first }
	created, err := repo.Upsert(context.Background(), &domain.ReschedulePolicy{
		LawyerID:      42,
		CutoffMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, first, created.CreatedAt)

	repo.clock = func() time.Time { return second }
	updated, err := repo.Upsert(context.Background(), &domain.ReschedulePolicy{
		LawyerID:      42,
		CutoffMinutes: 120,
	})
	require.NoError(t, err)

	assert.Equal(t, first, updated.CreatedAt)
	assert.Equal(t, second, updated.UpdatedAt)
	assert.Equal(t, 120, updated.CutoffMinutes)
}

func TestGetReturnsCopy(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.Upsert(context.Background(), &domain.ReschedulePolicy{
		LawyerID:      42,
		CutoffMinutes: 60,
	})
	require.NoError(t, err)

	p1, err := repo.GetByLawyerID(context.Background(), 42)
	require.NoError(t, err)
	p1.CutoffMinutes = 999

	p2, err := repo.GetByLawyerID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 60, p2.CutoffMinutes)
}
