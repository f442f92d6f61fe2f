package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httppkg "github.com/movesure/dispatch/internal/pkg/http"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// TrafficGW fetches congestion conditions from the traffic provider
type TrafficGW struct {
	client *httppkg.Client
}

// NewTrafficGW creates a new traffic gateway
func NewTrafficGW(cfg models.ProviderConfig) *TrafficGW {
	return &TrafficGW{
		client: httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond),
	}
}

// trafficResponse is the provider's conditions payload
type trafficResponse struct {
	CongestionLevel       string `json:"congestion_level"`
	EstimatedDelayMinutes int    `json:"estimated_delay_minutes"`
	RoadClosures          []struct {
		Road        string `json:"road"`
		Description string `json:"description"`
	} `json:"road_closures"`
	AlternativeRoutes []struct {
		Description          string  `json:"description"`
		DistanceMiles        float64 `json:"distance_miles"`
		EstimatedTimeMinutes float64 `json:"estimated_time_minutes"`
	} `json:"alternative_routes"`
}

var congestionLevels = map[string]models.CongestionLevel{
	"low":    models.CongestionLow,
	"medium": models.CongestionMedium,
	"high":   models.CongestionHigh,
	"severe": models.CongestionSevere,
}

// FetchTraffic queries congestion conditions between two points.
// Recommendations are left to the caller.
func (g *TrafficGW) FetchTraffic(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) (*models.TrafficInfo, error) {
	path := fmt.Sprintf("/v1/conditions?from_lat=%f&from_lng=%f&to_lat=%f&to_lng=%f&at=%s",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude,
		url.QueryEscape(scheduledAt.Format(time.RFC3339)))

	var resp trafficResponse
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("traffic provider: %w", err)
	}

	level, ok := congestionLevels[resp.CongestionLevel]
	if !ok {
		return nil, fmt.Errorf("traffic provider: unknown congestion level %q", resp.CongestionLevel)
	}

	info := &models.TrafficInfo{
		CongestionLevel:       level,
		EstimatedDelayMinutes: resp.EstimatedDelayMinutes,
		RoadClosures:          make([]models.RoadClosure, 0, len(resp.RoadClosures)),
		AlternativeRoutes:     make([]models.RouteOption, 0, len(resp.AlternativeRoutes)),
	}
	for _, closure := range resp.RoadClosures {
		info.RoadClosures = append(info.RoadClosures, models.RoadClosure{
			Road:        closure.Road,
			Description: closure.Description,
		})
	}
	for _, route := range resp.AlternativeRoutes {
		info.AlternativeRoutes = append(info.AlternativeRoutes, models.RouteOption{
			Description:          route.Description,
			DistanceMiles:        route.DistanceMiles,
			EstimatedTimeMinutes: route.EstimatedTimeMinutes,
		})
	}

	return info, nil
}
