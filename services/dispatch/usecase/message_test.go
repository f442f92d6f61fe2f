package usecase

import (
	"strings"
	"testing"

	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComposeTitle(t *testing.T) {
	booking := &models.Booking{Reference: "MV-2044"}
	assert.Equal(t, "New Job Assignment - MV-2044", ComposeTitle(booking))
}

func TestComposeMessage_BaseLineOnly(t *testing.T) {
	booking := &models.Booking{
		Pickup:  models.Address{City: "London"},
		Dropoff: models.Address{City: "Brighton"},
	}
	noZone := models.ZoneVerdict{Applies: false, Type: models.ZoneNone}

	msg := ComposeMessage(booking, noZone, nil, nil)

	assert.Equal(t, "New job from London to Brighton", msg)
}

func TestComposeMessage_UnknownCities(t *testing.T) {
	booking := &models.Booking{}
	noZone := models.ZoneVerdict{Applies: false, Type: models.ZoneNone}

	msg := ComposeMessage(booking, noZone, nil, nil)

	assert.Equal(t, "New job from Unknown to Unknown", msg)
}

func TestComposeMessage_AllConditionalLines(t *testing.T) {
	booking := &models.Booking{
		Pickup:  models.Address{City: "London"},
		Dropoff: models.Address{City: "Manchester"},
	}
	zone := models.ZoneVerdict{Applies: true, Type: models.ZoneULEZ, Charge: 12.50}
	weather := &models.WeatherInfo{Condition: "Heavy rain", Impact: models.ImpactHigh}
	traffic := &models.TrafficInfo{
		CongestionLevel:       models.CongestionSevere,
		EstimatedDelayMinutes: 40,
		RoadClosures:          []models.RoadClosure{{Road: "A40"}, {Road: "M25 J15"}},
	}

	msg := ComposeMessage(booking, zone, weather, traffic)

	lines := strings.Split(msg, "\n")
	assert.Equal(t, []string{
		"New job from London to Manchester",
		"⚠️ ULEZ zone applies - charge £12.50",
		"🌧 Adverse weather: Heavy rain",
		"🚦 severe congestion - expect 40 min delay",
		"🚧 2 road closures reported on route",
	}, lines)
}

// The base line never carries a condition marker; markers only appear on
// the conditional lines that earned them.
func TestComposeMessage_BaseLineNeverMarked(t *testing.T) {
	booking := &models.Booking{
		Pickup:  models.Address{City: "Leeds"},
		Dropoff: models.Address{City: "York"},
	}
	zone := models.ZoneVerdict{Applies: true, Type: models.ZoneLEZ, Charge: 8.00}

	msg := ComposeMessage(booking, zone, nil, nil)

	lines := strings.Split(msg, "\n")
	assert.Equal(t, "New job from Leeds to York", lines[0])
	for _, marker := range []string{"⚠️", "🌧", "🚦", "🚧"} {
		assert.NotContains(t, lines[0], marker)
	}
}

func TestComposeMessage_MediumImpactWeatherOmitted(t *testing.T) {
	booking := &models.Booking{
		Pickup:  models.Address{City: "Bristol"},
		Dropoff: models.Address{City: "Bath"},
	}
	noZone := models.ZoneVerdict{Applies: false, Type: models.ZoneNone}
	weather := &models.WeatherInfo{Condition: "Showers", Impact: models.ImpactMedium}
	traffic := &models.TrafficInfo{CongestionLevel: models.CongestionMedium, EstimatedDelayMinutes: 10}

	msg := ComposeMessage(booking, noZone, weather, traffic)

	assert.Equal(t, "New job from Bristol to Bath", msg)
}
