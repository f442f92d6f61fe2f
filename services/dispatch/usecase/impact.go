package usecase

import (
	"fmt"

	"github.com/movesure/dispatch/internal/pkg/models"
)

// WeatherImpactLevel grades raw forecast values into an impact level
func WeatherImpactLevel(w *models.WeatherInfo) models.ImpactLevel {
	switch {
	case w.PrecipitationMm > 5 || w.VisibilityKm < 5 || w.WindSpeedKph > 20:
		return models.ImpactHigh
	case w.PrecipitationMm > 2 || w.VisibilityKm < 8 || w.WindSpeedKph > 15:
		return models.ImpactMedium
	default:
		return models.ImpactLow
	}
}

// AssessWeather sets the impact level and driver recommendations on a
// weather bundle. Recommendations are appended in a fixed order, each only
// when its triggering condition holds.
func AssessWeather(w *models.WeatherInfo) {
	w.Impact = WeatherImpactLevel(w)

	recs := []string{}
	if w.PrecipitationMm > 5 {
		recs = append(recs, "Heavy rain expected - allow extra time and drive carefully")
	}
	if w.VisibilityKm < 5 {
		recs = append(recs, "Reduced visibility - use headlights and reduce speed")
	}
	if w.WindSpeedKph > 20 {
		recs = append(recs, "High winds - secure loose items and take care with high-sided loads")
	}
	if w.TemperatureC < 5 {
		recs = append(recs, "Cold weather - watch for icy surfaces when loading")
	}
	if len(recs) == 0 {
		recs = append(recs, "Good weather conditions for travel")
	}
	w.Recommendations = recs
}

// AssessTraffic sets driver recommendations on a traffic bundle. The
// congestion level itself comes from the provider or fallback and is not
// recomputed here.
func AssessTraffic(t *models.TrafficInfo) {
	recs := []string{}
	if t.CongestionLevel == models.CongestionHigh || t.CongestionLevel == models.CongestionSevere {
		recs = append(recs,
			"Heavy congestion expected - allow extra travel time",
			"Consider alternative routes")
	}
	if t.EstimatedDelayMinutes > 30 {
		recs = append(recs, fmt.Sprintf("Significant delays of %d minutes expected", t.EstimatedDelayMinutes))
	}
	if len(t.RoadClosures) > 0 {
		recs = append(recs, "Road closures on route - check alternatives before departure")
	}
	if len(t.AlternativeRoutes) > 0 {
		recs = append(recs, "Alternative routes available - may save fuel")
	}
	if len(recs) == 0 {
		recs = append(recs, "Normal traffic conditions expected")
	}
	t.Recommendations = recs
}
