package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModify_CheckInDate(t *testing.T) {
	svc, st := newTestService(testNow)

	// GH-78432: Jan 15 -> Jan 18, deluxe at 199/night
	result, err := svc.Modify("GH-78432", "smith", "check_in_date", "2026-01-16")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-16", result.CheckIn)
	assert.Equal(t, "$398.00", result.NewTotal)
	assert.Equal(t, "$-199.00", result.PriceDifference)
	assert.Equal(t, PriceCredit, result.PriceChange)
	assert.Contains(t, result.Message, "credit of $199.00")

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 2, rec.Nights)
	assert.Equal(t, 398.00, rec.TotalCost)
}

func TestModify_CheckInOnOrAfterCheckOut(t *testing.T) {
	svc, st := newTestService(testNow)

	for _, value := range []string{"2026-01-18", "2026-01-20"} {
		_, err := svc.Modify("GH-78432", "smith", "check_in_date", value)
		var opErr *Error
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, CodeInvalidDates, opErr.Code)
	}

	// a subsequent lookup still shows the original dates
	details, err := svc.Lookup("GH-78432", "smith")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", details.CheckIn)
	assert.Equal(t, 3, details.Nights)

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 597.00, rec.TotalCost)
}

func TestModify_CheckOutDate(t *testing.T) {
	svc, st := newTestService(testNow)

	result, err := svc.Modify("GH-78432", "smith", "check_out_date", "2026-01-20")
	require.NoError(t, err)

	assert.Equal(t, "2026-01-20", result.CheckOut)
	assert.Equal(t, "$995.00", result.NewTotal)
	assert.Equal(t, PriceSurcharge, result.PriceChange)

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 5, rec.Nights)
	assert.Equal(t, 995.00, rec.TotalCost)
}

func TestModify_CheckOutBeforeCheckIn(t *testing.T) {
	svc, st := newTestService(testNow)

	_, err := svc.Modify("GH-78432", "smith", "check_out_date", "2026-01-15")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeInvalidDates, opErr.Code)

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 3, rec.Nights)
}

func TestModify_BadDateFormat(t *testing.T) {
	svc, st := newTestService(testNow)

	for _, kind := range []string{"check_in_date", "check_out_date"} {
		_, err := svc.Modify("GH-78432", "smith", kind, "January 16th")
		var opErr *Error
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, CodeInvalidDateFormat, opErr.Code)
	}

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 597.00, rec.TotalCost)
}

func TestModify_RoomType(t *testing.T) {
	svc, st := newTestService(testNow)

	// deluxe (199) -> suite (349), 3 nights
	result, err := svc.Modify("GH-78432", "smith", "room_type", "suite")
	require.NoError(t, err)

	assert.Equal(t, "Executive Suite", result.RoomType)
	assert.Equal(t, "$1047.00", result.NewTotal)
	assert.Equal(t, "$450.00", result.PriceDifference)
	assert.Equal(t, PriceSurcharge, result.PriceChange)
	assert.Contains(t, result.Message, "additional charge of $450.00")

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, "suite", rec.RoomType)
	assert.Equal(t, 349.00, rec.RatePerNight)
	assert.Equal(t, 1047.00, rec.TotalCost)
	assert.Equal(t, 3, rec.Nights)
}

func TestModify_InvalidRoomType(t *testing.T) {
	svc, st := newTestService(testNow)

	_, err := svc.Modify("GH-78432", "smith", "room_type", "cabana")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeInvalidRoomType, opErr.Code)
	assert.Contains(t, opErr.Message, "Standard Room")
	assert.Contains(t, opErr.Message, "Penthouse Suite")

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, "deluxe", rec.RoomType)
}

func TestModify_RoomTypeCapacityExceeded(t *testing.T) {
	svc, st := newTestService(testNow)

	// GH-92156 has 4 guests; deluxe max is 3
	_, err := svc.Modify("GH-92156", "johnson", "room_type", "deluxe")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeCapacityExceeded, opErr.Code)

	rec, _ := st.Get("GH-92156")
	assert.Equal(t, "suite", rec.RoomType)
	assert.Equal(t, 349.00, rec.RatePerNight)
	assert.Equal(t, 698.00, rec.TotalCost)
}

func TestModify_GuestCount(t *testing.T) {
	svc, st := newTestService(testNow)

	result, err := svc.Modify("GH-78432", "smith", "guest_count", "3")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Guests)
	assert.Equal(t, "No change", result.PriceDifference)
	assert.Equal(t, PriceUnchanged, result.PriceChange)

	// guest-count changes never recalculate cost
	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 3, rec.Guests)
	assert.Equal(t, 199.00, rec.RatePerNight)
	assert.Equal(t, 597.00, rec.TotalCost)
}

func TestModify_GuestCountRejections(t *testing.T) {
	svc, st := newTestService(testNow)

	tests := []struct {
		value string
		code  string
	}{
		{"five", CodeInvalidGuestCount},
		{"0", CodeInvalidGuestCount},
		{"-2", CodeInvalidGuestCount},
		{"5", CodeCapacityExceeded}, // deluxe max is 3
	}

	for _, tt := range tests {
		_, err := svc.Modify("GH-78432", "smith", "guest_count", tt.value)
		var opErr *Error
		require.ErrorAs(t, err, &opErr, "value %q", tt.value)
		assert.Equal(t, tt.code, opErr.Code, "value %q", tt.value)
	}

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 2, rec.Guests)
}

func TestModify_AddRequest(t *testing.T) {
	svc, st := newTestService(testNow)

	result, err := svc.Modify("GH-78432", "smith", "add_request", "Feather-free pillows")
	require.NoError(t, err)

	assert.Equal(t, PriceUnchanged, result.PriceChange)
	assert.Contains(t, result.SpecialRequests, "Feather-free pillows")

	rec, _ := st.Get("GH-78432")
	assert.Len(t, rec.SpecialRequests, 3)
	assert.Equal(t, "Feather-free pillows", rec.SpecialRequests[2])
}

func TestModify_UnknownKind(t *testing.T) {
	svc, _ := newTestService(testNow)

	_, err := svc.Modify("GH-78432", "smith", "upgrade_minibar", "yes")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeInvalidModType, opErr.Code)
}

func TestModify_VerificationGate(t *testing.T) {
	svc, _ := newTestService(testNow)

	_, err := svc.Modify("GH-78432", "nope", "guest_count", "1")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeVerification, opErr.Code)

	_, err = svc.Cancel("GH-78432", "smith", "other")
	require.NoError(t, err)

	_, err = svc.Modify("GH-78432", "smith", "guest_count", "1")
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeCancelled, opErr.Code)
}

// The end-to-end upgrade scenario: capacity rejection followed by a room
// upgrade that re-rates the stay.
func TestModify_UpgradeScenario(t *testing.T) {
	svc, st := newTestService(testNow)

	_, err := svc.Modify("GH-78432", "smith", "guest_count", "5")
	var opErr *Error
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, CodeCapacityExceeded, opErr.Code)
	assert.Contains(t, opErr.Message, "Deluxe Room")

	result, err := svc.Modify("GH-78432", "smith", "room_type", "suite")
	require.NoError(t, err)
	assert.Equal(t, "$1047.00", result.NewTotal)
	assert.Equal(t, "$450.00", result.PriceDifference)

	result, err = svc.Modify("GH-78432", "smith", "guest_count", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, result.Guests)

	rec, _ := st.Get("GH-78432")
	assert.Equal(t, 4, rec.Guests)
	assert.Equal(t, 1047.00, rec.TotalCost)
	assert.Equal(t, rec.TotalCost, float64(rec.Nights)*rec.RatePerNight)
}

// Derived-field consistency after a chain of successful modifications.
func TestModify_InvariantsHold(t *testing.T) {
	svc, st := newTestService(testNow)

	steps := []struct{ kind, value string }{
		{"check_out_date", "2026-01-21"},
		{"room_type", "standard"},
		{"check_in_date", "2026-01-17"},
		{"guest_count", "2"},
	}

	for _, step := range steps {
		_, err := svc.Modify("GH-45891", "chen", step.kind, step.value)
		require.NoError(t, err, "%s=%s", step.kind, step.value)

		rec, ok := st.Get("GH-45891")
		require.True(t, ok)
		nights := int(rec.CheckOut.Sub(rec.CheckIn).Hours() / 24)
		assert.Equal(t, nights, rec.Nights)
		assert.Equal(t, float64(rec.Nights)*rec.RatePerNight, rec.TotalCost)
	}
}
