package usecase

import (
	"testing"

	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyZone_ULEZ(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
	}{
		{"central london EC", "EC1A 1BB"},
		{"west central", "WC2N 5DU"},
		{"south west prefix", "SW1A 2AA"},
		{"croydon", "CR0 1PB"},
		{"kingston", "KT1 1EU"},
		{"lowercase input", "ec1a 1bb"},
		{"untrimmed input", "  SE10 8XJ  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ClassifyZone(tt.postcode)

			assert.True(t, verdict.Applies)
			assert.Equal(t, models.ZoneULEZ, verdict.Type)
			assert.Equal(t, 12.50, verdict.Charge)
			assert.Equal(t, "Euro 6 diesel or Euro 4 petrol vehicle required", verdict.Requirements)
			assert.Contains(t, verdict.Exemptions, "Electric vehicles")
		})
	}
}

func TestClassifyZone_LEZ(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
	}{
		{"birmingham", "B1 1AA"},
		{"manchester", "M1 1AE"},
		{"glasgow", "G1 1XQ"},
		{"sheffield", "S1 2BJ"},
		{"cambridge", "CB1 1PT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ClassifyZone(tt.postcode)

			assert.True(t, verdict.Applies)
			assert.Equal(t, models.ZoneLEZ, verdict.Type)
			assert.Equal(t, 8.00, verdict.Charge)
		})
	}
}

func TestClassifyZone_NoZone(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
	}{
		{"empty postcode", ""},
		{"whitespace only", "   "},
		{"oxford", "OX1 2JD"},
		{"york", "YO1 7HH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := ClassifyZone(tt.postcode)

			assert.False(t, verdict.Applies)
			assert.Equal(t, models.ZoneNone, verdict.Type)
			assert.Zero(t, verdict.Charge)
		})
	}
}

// Overlapping rule sets resolve by evaluation order: a postcode matching
// both ULEZ and congestion rules always classifies as ULEZ.
func TestClassifyZone_OverlapResolvesToFirstMatch(t *testing.T) {
	for _, postcode := range []string{"SW1A 1AA", "EC2V 7HH", "WC1B 3DG", "SE1 7PB"} {
		verdict := ClassifyZone(postcode)
		assert.Equal(t, models.ZoneULEZ, verdict.Type, "postcode %s", postcode)
	}

	// LEZ prefixes also shadow congestion codes that start with the same letter
	verdict := ClassifyZone("E1W 1AA")
	assert.Equal(t, models.ZoneULEZ, verdict.Type)
}

func TestClassifyZone_Deterministic(t *testing.T) {
	first := ClassifyZone("SW1A 1AA")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, ClassifyZone("SW1A 1AA"))
	}
}

func TestClassifyBookingZones(t *testing.T) {
	t.Run("pickup zone wins when dropoff is clear", func(t *testing.T) {
		booking := &models.Booking{
			Pickup:  models.Address{Postcode: "EC1A 1BB"},
			Dropoff: models.Address{Postcode: "OX1 2JD"},
		}

		effective, pickup, dropoff := ClassifyBookingZones(booking)

		assert.Equal(t, models.ZoneULEZ, effective.Type)
		assert.Equal(t, models.ZoneULEZ, pickup.Type)
		assert.Equal(t, models.ZoneNone, dropoff.Type)
	})

	t.Run("dropoff zone wins when pickup is clear", func(t *testing.T) {
		booking := &models.Booking{
			Pickup:  models.Address{Postcode: "OX1 2JD"},
			Dropoff: models.Address{Postcode: "B1 1AA"},
		}

		effective, _, dropoff := ClassifyBookingZones(booking)

		assert.Equal(t, models.ZoneLEZ, effective.Type)
		assert.Equal(t, dropoff, effective)
	})

	t.Run("higher priority side wins when both apply", func(t *testing.T) {
		booking := &models.Booking{
			Pickup:  models.Address{Postcode: "B1 1AA"},
			Dropoff: models.Address{Postcode: "EC1A 1BB"},
		}

		effective, _, _ := ClassifyBookingZones(booking)

		assert.Equal(t, models.ZoneULEZ, effective.Type)
	})

	t.Run("no zones anywhere", func(t *testing.T) {
		booking := &models.Booking{
			Pickup:  models.Address{Postcode: "OX1 2JD"},
			Dropoff: models.Address{Postcode: "YO1 7HH"},
		}

		effective, _, _ := ClassifyBookingZones(booking)

		assert.False(t, effective.Applies)
		assert.Equal(t, models.ZoneNone, effective.Type)
	})
}
