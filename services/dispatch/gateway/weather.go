package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httppkg "github.com/movesure/dispatch/internal/pkg/http"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// WeatherGW fetches forecasts from the weather provider
type WeatherGW struct {
	client *httppkg.Client
}

// NewWeatherGW creates a new weather gateway
func NewWeatherGW(cfg models.ProviderConfig) *WeatherGW {
	return &WeatherGW{
		client: httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond),
	}
}

// weatherResponse is the provider's forecast payload
type weatherResponse struct {
	Condition       string  `json:"condition"`
	TemperatureC    float64 `json:"temperature_c"`
	PrecipitationMm float64 `json:"precipitation_mm"`
	WindSpeedKph    float64 `json:"wind_speed_kph"`
	VisibilityKm    float64 `json:"visibility_km"`
}

// FetchWeather queries the forecast for the given coordinates and time.
// Impact assessment is left to the caller.
func (g *WeatherGW) FetchWeather(ctx context.Context, at models.Coordinates, scheduledAt time.Time) (*models.WeatherInfo, error) {
	path := fmt.Sprintf("/v1/forecast?lat=%f&lng=%f&at=%s",
		at.Latitude, at.Longitude, url.QueryEscape(scheduledAt.Format(time.RFC3339)))

	var resp weatherResponse
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("weather provider: %w", err)
	}

	if resp.Condition == "" {
		return nil, fmt.Errorf("weather provider: malformed response, missing condition")
	}

	return &models.WeatherInfo{
		Condition:       resp.Condition,
		TemperatureC:    resp.TemperatureC,
		PrecipitationMm: resp.PrecipitationMm,
		WindSpeedKph:    resp.WindSpeedKph,
		VisibilityKm:    resp.VisibilityKm,
	}, nil
}
