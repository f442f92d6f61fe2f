package usecase

import (
	"fmt"
	"strings"

	"github.com/movesure/dispatch/internal/pkg/models"
)

// ComposeTitle builds the notification title for a booking
func ComposeTitle(booking *models.Booking) string {
	return fmt.Sprintf("New Job Assignment - %s", booking.Reference)
}

// ComposeMessage assembles the notification body. The base line is always
// present; conditional lines follow in a fixed order and are newline-joined.
func ComposeMessage(booking *models.Booking, zone models.ZoneVerdict, weather *models.WeatherInfo, traffic *models.TrafficInfo) string {
	pickupCity := booking.Pickup.City
	if pickupCity == "" {
		pickupCity = "Unknown"
	}
	dropoffCity := booking.Dropoff.City
	if dropoffCity == "" {
		dropoffCity = "Unknown"
	}

	lines := []string{
		fmt.Sprintf("New job from %s to %s", pickupCity, dropoffCity),
	}

	if zone.Applies {
		lines = append(lines, fmt.Sprintf("⚠️ %s zone applies - charge £%.2f", zone.Type, zone.Charge))
	}
	if weather != nil && weather.Impact == models.ImpactHigh {
		lines = append(lines, fmt.Sprintf("🌧 Adverse weather: %s", weather.Condition))
	}
	if traffic != nil && (traffic.CongestionLevel == models.CongestionHigh || traffic.CongestionLevel == models.CongestionSevere) {
		lines = append(lines, fmt.Sprintf("🚦 %s congestion - expect %d min delay", traffic.CongestionLevel, traffic.EstimatedDelayMinutes))
	}
	if traffic != nil && len(traffic.RoadClosures) > 0 {
		lines = append(lines, fmt.Sprintf("🚧 %d road closures reported on route", len(traffic.RoadClosures)))
	}

	return strings.Join(lines, "\n")
}
