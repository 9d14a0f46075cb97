package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"grandhorizon/internal/domain"
)

func TestAssessCancellationFee(t *testing.T) {
	checkIn := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		tier   domain.FeeTier
		refund domain.RefundType
	}{
		{
			name:   "72 hours out",
			now:    checkIn.Add(-72 * time.Hour),
			tier:   domain.FeeNone,
			refund: domain.RefundFull,
		},
		{
			name:   "exactly 48 hours out",
			now:    checkIn.Add(-48 * time.Hour),
			tier:   domain.FeeNone,
			refund: domain.RefundFull,
		},
		{
			name:   "10 hours out",
			now:    checkIn.Add(-10 * time.Hour),
			tier:   domain.FeeFirstNight,
			refund: domain.RefundPartial,
		},
		{
			name:   "one minute out",
			now:    checkIn.Add(-time.Minute),
			tier:   domain.FeeFirstNight,
			refund: domain.RefundPartial,
		},
		{
			name:   "at check-in",
			now:    checkIn,
			tier:   domain.FeeFullAmount,
			refund: domain.RefundNone,
		},
		{
			name:   "check-in passed",
			now:    checkIn.Add(36 * time.Hour),
			tier:   domain.FeeFullAmount,
			refund: domain.RefundNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := AssessCancellationFee(checkIn, tt.now)
			assert.Equal(t, tt.tier, fee.Tier)
			assert.Equal(t, tt.refund, fee.RefundType)
			assert.NotEmpty(t, fee.Message)
		})
	}
}

func TestAssessCancellationFee_Deterministic(t *testing.T) {
	checkIn := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := checkIn.Add(-100 * time.Hour)

	first := AssessCancellationFee(checkIn, now)
	second := AssessCancellationFee(checkIn, now)
	assert.Equal(t, first, second)
}
