package reservation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"grandhorizon/internal/domain"
)

// Modification kinds accepted by Modify.
const (
	ModifyCheckIn    = "check_in_date"
	ModifyCheckOut   = "check_out_date"
	ModifyRoomType   = "room_type"
	ModifyGuestCount = "guest_count"
	ModifyAddRequest = "add_request"
)

// Modify applies exactly one typed change to a verified reservation.
// Every kind validates first and commits only a fully consistent set of
// fields; a rejected modification leaves the stored record untouched.
func (s *Service) Modify(confirmation, lastName, kind, newValue string) (*ModificationResult, error) {
	res := s.Verify(confirmation, lastName)
	if res.Outcome != Verified {
		return nil, s.verifyError(res, actionModify)
	}

	rec := res.Reservation
	originalTotal := rec.TotalCost

	var change string
	var err error
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case ModifyCheckIn:
		change, err = s.changeCheckIn(rec, newValue)
	case ModifyCheckOut:
		change, err = s.changeCheckOut(rec, newValue)
	case ModifyRoomType:
		change, err = s.changeRoomType(rec, newValue)
	case ModifyGuestCount:
		change, err = s.changeGuestCount(rec, newValue)
	case ModifyAddRequest:
		change = s.addSpecialRequest(rec, newValue)
	default:
		err = newError(CodeInvalidModType, "I can help you modify: check-in date, check-out date, room type, guest count, or add a special request. What would you like to change?")
	}
	if err != nil {
		return nil, err
	}

	diff := rec.TotalCost - originalTotal

	return &ModificationResult{
		Confirmation:    res.Confirmation,
		Changes:         []string{change},
		CheckIn:         rec.CheckIn.Format(dateLayout),
		CheckOut:        rec.CheckOut.Format(dateLayout),
		RoomType:        s.catalog.RoomTypeName(rec.RoomType),
		Guests:          rec.Guests,
		NewTotal:        money(rec.TotalCost),
		PriceDifference: priceDifference(diff),
		PriceChange:     classifyPriceChange(diff),
		SpecialRequests: append([]string(nil), rec.SpecialRequests...),
		Message:         fmt.Sprintf("Your reservation has been updated. %s. %s", change, priceMessage(diff, rec.TotalCost)),
	}, nil
}

func (s *Service) changeCheckIn(rec *domain.Reservation, value string) (string, error) {
	newDate, err := parseDate(value)
	if err != nil {
		return "", newError(CodeInvalidDateFormat, "Please provide the date in YYYY-MM-DD format, for example 2026-01-15.")
	}

	nights := nightsBetween(newDate, rec.CheckOut)
	if nights <= 0 {
		return "", newError(CodeInvalidDates, "The new check-in date must be before the check-out date. Please provide a valid date.")
	}

	old := rec.CheckIn
	rec.CheckIn = newDate
	rec.Nights = nights
	rec.TotalCost = float64(nights) * rec.RatePerNight
	return fmt.Sprintf("Check-in date changed from %s to %s", old.Format(dateLayout), newDate.Format(dateLayout)), nil
}

func (s *Service) changeCheckOut(rec *domain.Reservation, value string) (string, error) {
	newDate, err := parseDate(value)
	if err != nil {
		return "", newError(CodeInvalidDateFormat, "Please provide the date in YYYY-MM-DD format, for example 2026-01-18.")
	}

	nights := nightsBetween(rec.CheckIn, newDate)
	if nights <= 0 {
		return "", newError(CodeInvalidDates, "The check-out date must be after the check-in date. Please provide a valid date.")
	}

	old := rec.CheckOut
	rec.CheckOut = newDate
	rec.Nights = nights
	rec.TotalCost = float64(nights) * rec.RatePerNight
	return fmt.Sprintf("Check-out date changed from %s to %s", old.Format(dateLayout), newDate.Format(dateLayout)), nil
}

func (s *Service) changeRoomType(rec *domain.Reservation, value string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	newRoom, ok := s.catalog.RoomType(key)
	if !ok {
		return "", newError(CodeInvalidRoomType, fmt.Sprintf(
			"'%s' is not a valid room type. Available options are: %s.",
			value, strings.Join(s.catalog.RoomTypeNames(), ", "),
		))
	}

	if rec.Guests > newRoom.MaxGuests {
		return "", newError(CodeCapacityExceeded, fmt.Sprintf(
			"The %s has a maximum capacity of %d guests, but your reservation is for %d guests. Please choose a larger room type or reduce the number of guests.",
			newRoom.Name, newRoom.MaxGuests, rec.Guests,
		))
	}

	oldName := s.catalog.RoomTypeName(rec.RoomType)
	rec.RoomType = newRoom.Key
	// The rate is re-read from the current catalog price on a room change
	// (and only then; guest-count changes keep the booked rate).
	rec.RatePerNight = newRoom.PricePerNight
	rec.TotalCost = float64(rec.Nights) * newRoom.PricePerNight
	return fmt.Sprintf("Room type changed from %s to %s", oldName, newRoom.Name), nil
}

func (s *Service) changeGuestCount(rec *domain.Reservation, value string) (string, error) {
	guests, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return "", newError(CodeInvalidGuestCount, "Please provide a valid number for the guest count.")
	}
	if guests <= 0 {
		return "", newError(CodeInvalidGuestCount, "The number of guests must be at least 1.")
	}

	room, ok := s.catalog.RoomType(rec.RoomType)
	if ok && guests > room.MaxGuests {
		return "", newError(CodeCapacityExceeded, fmt.Sprintf(
			"Your current room (%s) has a maximum capacity of %d guests. Would you like to upgrade to a larger room type?",
			room.Name, room.MaxGuests,
		))
	}

	old := rec.Guests
	rec.Guests = guests
	return fmt.Sprintf("Number of guests changed from %d to %d", old, guests), nil
}

func (s *Service) addSpecialRequest(rec *domain.Reservation, value string) string {
	rec.SpecialRequests = append(rec.SpecialRequests, value)
	return fmt.Sprintf("Added special request: %s", value)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(value))
}

// nightsBetween counts whole days from check-in to check-out. Dates are
// stored at UTC midnight, so the division is exact.
func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func classifyPriceChange(diff float64) string {
	switch {
	case diff > 0:
		return PriceSurcharge
	case diff < 0:
		return PriceCredit
	default:
		return PriceUnchanged
	}
}

func priceDifference(diff float64) string {
	if diff == 0 {
		return "No change"
	}
	return money(diff)
}

func priceMessage(diff, newTotal float64) string {
	switch {
	case diff > 0:
		return fmt.Sprintf("This change results in an additional charge of %s. Your new total is %s.", money(diff), money(newTotal))
	case diff < 0:
		return fmt.Sprintf("This change results in a credit of %s. Your new total is %s.", money(math.Abs(diff)), money(newTotal))
	default:
		return fmt.Sprintf("Your total remains %s.", money(newTotal))
	}
}
