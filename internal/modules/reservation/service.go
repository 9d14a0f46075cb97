package reservation

import (
	"fmt"
	"strings"
	"time"

	"grandhorizon/internal/catalog"
	"grandhorizon/internal/domain"
	"grandhorizon/internal/store"
)

const dateLayout = "2006-01-02"

type Service struct {
	store   *store.Store
	catalog *catalog.Catalog

	// now is swapped out in tests so fee tiers and cancellation
	// references are deterministic.
	now func() time.Time
}

func NewService(st *store.Store, cat *catalog.Catalog) *Service {
	return &Service{
		store:   st,
		catalog: cat,
		now:     time.Now,
	}
}

type VerifyOutcome string

const (
	Verified     VerifyOutcome = "verified"
	NotFound     VerifyOutcome = "not_found"
	Cancelled    VerifyOutcome = "cancelled"
	NameMismatch VerifyOutcome = "name_mismatch"
)

// VerifyResult is the tagged outcome of identity verification.
// Reservation is set only for Verified, CancelledRecord only for Cancelled.
// On NameMismatch no reservation data is exposed: existence is revealed
// solely through the generic mismatch outcome.
type VerifyResult struct {
	Outcome         VerifyOutcome
	Confirmation    string
	Reservation     *domain.Reservation
	CancelledRecord *domain.CancelledReservation
}

// Verify is the single gate deciding reservation visibility. Lookup,
// cancellation, and modification all go through it; nothing else reads the
// store by guest-supplied identity.
func (s *Service) Verify(confirmation, lastName string) VerifyResult {
	conf := CanonicalConfirmation(confirmation)
	name := strings.ToLower(strings.TrimSpace(lastName))

	rec, ok := s.store.Get(conf)
	if !ok {
		if cancelled, wasCancelled := s.store.GetCancelled(conf); wasCancelled {
			return VerifyResult{Outcome: Cancelled, Confirmation: conf, CancelledRecord: cancelled}
		}
		return VerifyResult{Outcome: NotFound, Confirmation: conf}
	}

	if rec.LastName != name {
		return VerifyResult{Outcome: NameMismatch, Confirmation: conf}
	}

	return VerifyResult{Outcome: Verified, Confirmation: conf, Reservation: rec}
}

// CanonicalConfirmation normalizes a guest-supplied confirmation number to
// its canonical uppercase form ("gh-78432 " -> "GH-78432").
func CanonicalConfirmation(confirmation string) string {
	return strings.ToUpper(strings.TrimSpace(confirmation))
}

// Lookup verifies the caller and returns the reservation details.
func (s *Service) Lookup(confirmation, lastName string) (*ReservationDetails, error) {
	res := s.Verify(confirmation, lastName)
	if res.Outcome != Verified {
		return nil, s.verifyError(res, actionLookup)
	}

	rec := res.Reservation
	roomName := s.catalog.RoomTypeName(rec.RoomType)

	return &ReservationDetails{
		Confirmation:    res.Confirmation,
		GuestName:       rec.GuestName,
		CheckIn:         rec.CheckIn.Format(dateLayout),
		CheckOut:        rec.CheckOut.Format(dateLayout),
		Nights:          rec.Nights,
		RoomType:        roomName,
		RoomNumber:      rec.RoomNumber,
		Guests:          rec.Guests,
		RatePerNight:    money(rec.RatePerNight),
		TotalCost:       money(rec.TotalCost),
		Status:          string(rec.Status),
		PaymentStatus:   string(rec.PaymentStatus),
		SpecialRequests: append([]string(nil), rec.SpecialRequests...),
		Message: fmt.Sprintf(
			"I found your reservation, %s. You have a %s booked for %d nights, checking in on %s and checking out on %s. Your room number is %s and the total cost is %s.",
			rec.GuestName, roomName, rec.Nights,
			rec.CheckIn.Format(dateLayout), rec.CheckOut.Format(dateLayout),
			rec.RoomNumber, money(rec.TotalCost),
		),
	}, nil
}

// Cancel verifies the caller, assesses the fee tier, and atomically moves
// the reservation into the cancelled store.
func (s *Service) Cancel(confirmation, lastName, reason string) (*CancellationResult, error) {
	res := s.Verify(confirmation, lastName)
	if res.Outcome != Verified {
		return nil, s.verifyError(res, actionCancel)
	}

	rec := res.Reservation
	now := s.now()
	fee := AssessCancellationFee(rec.CheckIn, now)
	reference := fmt.Sprintf("CXL-%s-%s", res.Confirmation, now.Format("20060102"))

	cancelled := &domain.CancelledReservation{
		Reservation: *rec.Clone(),
		CancelledAt: now,
		Reason:      normalizeReason(reason),
		Reference:   reference,
		FeeTier:     fee.Tier,
		RefundType:  fee.RefundType,
	}
	cancelled.Status = domain.ReservationCancelled

	if err := s.store.Cancel(res.Confirmation, cancelled); err != nil {
		return nil, newError(CodeNotFound, "The reservation could not be cancelled. Please verify the confirmation number is correct.")
	}

	refundInfo := refundNarrative(fee, rec.TotalCost, rec.RatePerNight)

	return &CancellationResult{
		Reference:     reference,
		Confirmation:  res.Confirmation,
		GuestName:     rec.GuestName,
		CheckIn:       rec.CheckIn.Format(dateLayout),
		CheckOut:      rec.CheckOut.Format(dateLayout),
		PolicyApplied: fee.Message,
		RefundInfo:    refundInfo,
		Message: fmt.Sprintf(
			"Your reservation has been successfully cancelled. Your cancellation reference number is %s. Please save this for your records. %s",
			reference, refundInfo,
		),
	}, nil
}

func refundNarrative(fee FeeAssessment, total, rate float64) string {
	switch fee.RefundType {
	case domain.RefundFull:
		return fmt.Sprintf("A full refund of %s will be processed to your original payment method within 5-7 business days.", money(total))
	case domain.RefundPartial:
		return fmt.Sprintf("As per our cancellation policy, the first night (%s) will be charged. A refund of %s will be processed within 5-7 business days.", money(rate), money(total-rate))
	default:
		return "As the check-in date has passed, no refund is available for this reservation."
	}
}

func normalizeReason(reason string) domain.CancellationReason {
	r := domain.CancellationReason(strings.ToLower(strings.TrimSpace(reason)))
	if !r.Valid() {
		return domain.ReasonOther
	}
	return r
}

type verifyAction int

const (
	actionLookup verifyAction = iota
	actionCancel
	actionModify
)

// verifyError translates a failed verification into the typed rejection
// for the requested action. Cancelling an already-cancelled reservation is
// its own code; the other actions report the cancelled state.
func (s *Service) verifyError(res VerifyResult, action verifyAction) *Error {
	switch res.Outcome {
	case NotFound:
		return newError(CodeNotFound, fmt.Sprintf(
			"I couldn't find a reservation with confirmation number %s. Please double-check the number. It should start with 'GH-' followed by 5 digits.",
			res.Confirmation,
		))
	case Cancelled:
		switch action {
		case actionCancel:
			return newError(CodeAlreadyCancelled, "This reservation has already been cancelled. No further action is needed.")
		case actionModify:
			return newError(CodeCancelled, "This reservation has been cancelled and cannot be modified. Would you like me to help you make a new reservation?")
		default:
			c := res.CancelledRecord
			return newError(CodeCancelled, fmt.Sprintf(
				"This reservation was cancelled on %s. Cancellation reference: %s.",
				c.CancelledAt.Format(dateLayout), c.Reference,
			))
		}
	default:
		return newError(CodeVerification, "The last name provided doesn't match our records. For security, I cannot share or change the reservation details. Please verify you have the correct last name.")
	}
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
