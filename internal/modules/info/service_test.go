package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grandhorizon/internal/catalog"
)

func newTestService() *Service {
	return NewService(catalog.Default())
}

func TestGet_DirectFields(t *testing.T) {
	svc := newTestService()

	result, err := svc.Get("check_in_time")
	require.NoError(t, err)
	assert.Equal(t, "check_in_time", result.Category)
	assert.Equal(t, "3:00 PM", result.Information)

	// spoken-form normalization
	result, err = svc.Get("  Check In Time ")
	require.NoError(t, err)
	assert.Equal(t, "3:00 PM", result.Information)
}

func TestGet_SingleAmenity(t *testing.T) {
	svc := newTestService()

	result, err := svc.Get("pool")
	require.NoError(t, err)
	assert.Contains(t, result.Information, "infinity pool")
}

func TestGet_AllAmenities(t *testing.T) {
	svc := newTestService()

	for _, category := range []string{"amenities", "all_amenities"} {
		result, err := svc.Get(category)
		require.NoError(t, err)
		assert.Equal(t, "amenities", result.Category)
		assert.Contains(t, result.Information, "Our hotel amenities include")
		assert.Contains(t, result.Information, "Pool:")
		assert.Contains(t, result.Information, "Room Service:")
	}
}

func TestGet_PolicyAliases(t *testing.T) {
	svc := newTestService()

	cancellation, err := svc.Get("cancellation_policy")
	require.NoError(t, err)
	assert.Contains(t, cancellation.Information, "48 hours")

	viaShortForm, err := svc.Get("cancellation")
	require.NoError(t, err)
	assert.Equal(t, cancellation.Information, viaShortForm.Information)

	pets, err := svc.Get("pet_policy")
	require.NoError(t, err)
	assert.Contains(t, pets.Information, "dogs under 50 pounds")
}

func TestGet_RoomTypes(t *testing.T) {
	svc := newTestService()

	for _, category := range []string{"room_types", "rooms"} {
		result, err := svc.Get(category)
		require.NoError(t, err)
		assert.Equal(t, "room_types", result.Category)
		assert.Contains(t, result.Information, "Standard Room - $149 per night, up to 2 guests")
		assert.Contains(t, result.Information, "Penthouse Suite - $699 per night, up to 6 guests")
	}
}

func TestGet_UnknownCategory(t *testing.T) {
	svc := newTestService()

	_, err := svc.Get("helipad schedule")
	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "helipad_schedule", unknown.Category)
	assert.Contains(t, unknown.Error(), "amenities")
}
