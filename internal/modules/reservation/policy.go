package reservation

import (
	"time"

	"grandhorizon/internal/domain"
)

// FeeAssessment is the outcome of applying the cancellation policy to a
// reservation's check-in date at a given moment.
type FeeAssessment struct {
	Tier       domain.FeeTier
	RefundType domain.RefundType
	Message    string
}

// AssessCancellationFee applies the 48-hour policy. It is a pure function
// of the check-in date and the supplied current time:
//
//	>= 48h before check-in  -> no fee, full refund
//	 0h <  t  < 48h         -> first night charged, partial refund
//	check-in already passed -> full amount charged, no refund
func AssessCancellationFee(checkIn, now time.Time) FeeAssessment {
	hoursUntilCheckIn := checkIn.Sub(now).Hours()

	switch {
	case hoursUntilCheckIn >= 48:
		return FeeAssessment{
			Tier:       domain.FeeNone,
			RefundType: domain.RefundFull,
			Message:    "Your cancellation is more than 48 hours before check-in. You will receive a full refund.",
		}
	case hoursUntilCheckIn > 0:
		return FeeAssessment{
			Tier:       domain.FeeFirstNight,
			RefundType: domain.RefundPartial,
			Message:    "Your cancellation is within 48 hours of check-in. The first night will be charged as per our cancellation policy.",
		}
	default:
		return FeeAssessment{
			Tier:       domain.FeeFullAmount,
			RefundType: domain.RefundNone,
			Message:    "The check-in date has passed. Unfortunately, no refund is available for this reservation.",
		}
	}
}
