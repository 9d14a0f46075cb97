package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentPaid        PaymentStatus = "paid"
)

type CancellationReason string

const (
	ReasonChangeOfPlans    CancellationReason = "change_of_plans"
	ReasonEmergency        CancellationReason = "emergency"
	ReasonFoundAlternative CancellationReason = "found_alternative"
	ReasonPriceConcern     CancellationReason = "price_concern"
	ReasonOther            CancellationReason = "other"
)

func (r CancellationReason) Valid() bool {
	switch r {
	case ReasonChangeOfPlans, ReasonEmergency, ReasonFoundAlternative, ReasonPriceConcern, ReasonOther:
		return true
	}
	return false
}

type FeeTier string

const (
	FeeNone       FeeTier = "none"
	FeeFirstNight FeeTier = "first_night"
	FeeFullAmount FeeTier = "full_amount"
)

type RefundType string

const (
	RefundFull    RefundType = "full_refund"
	RefundPartial RefundType = "partial_refund"
	RefundNone    RefundType = "no_refund"
)

// Reservation is an active booking keyed by its confirmation number.
// Nights and TotalCost are derived: nights = check-out minus check-in in
// days, total = nights * rate. Every mutation must keep both in sync.
type Reservation struct {
	Confirmation    string            `json:"confirmation_number"`
	GuestName       string            `json:"guest_name"`
	LastName        string            `json:"last_name"` // stored lowercase for case-insensitive matching
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	CheckIn         time.Time         `json:"check_in"`
	CheckOut        time.Time         `json:"check_out"`
	RoomType        string            `json:"room_type"`
	RoomNumber      string            `json:"room_number"`
	Guests          int               `json:"guests"`
	Nights          int               `json:"nights"`
	RatePerNight    float64           `json:"rate_per_night"`
	TotalCost       float64           `json:"total_cost"`
	Status          ReservationStatus `json:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status"`
	SpecialRequests []string          `json:"special_requests"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Clone returns a deep copy, detached from the store-owned record.
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.SpecialRequests = append([]string(nil), r.SpecialRequests...)
	return &c
}

// CancelledReservation is the immutable terminal form of a reservation.
type CancelledReservation struct {
	Reservation

	CancelledAt time.Time          `json:"cancelled_at"`
	Reason      CancellationReason `json:"cancellation_reason"`
	Reference   string             `json:"cancellation_ref"`
	FeeTier     FeeTier            `json:"cancellation_fee"`
	RefundType  RefundType         `json:"refund_type"`
}
