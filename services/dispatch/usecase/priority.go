package usecase

import "github.com/movesure/dispatch/internal/pkg/models"

// ComposePriority combines zone, weather and traffic signals into a
// notification priority. Precedence is fixed, first match wins.
func ComposePriority(zone models.ZoneVerdict, weather *models.WeatherInfo, traffic *models.TrafficInfo) models.Priority {
	if (weather != nil && weather.Impact == models.ImpactHigh) ||
		(traffic != nil && traffic.CongestionLevel == models.CongestionSevere) {
		return models.PriorityHigh
	}

	if zone.Applies ||
		(weather != nil && weather.Impact == models.ImpactMedium) ||
		(traffic != nil && traffic.CongestionLevel == models.CongestionHigh) {
		return models.PriorityMedium
	}

	return models.PriorityLow
}
