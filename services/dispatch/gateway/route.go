package gateway

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httppkg "github.com/movesure/dispatch/internal/pkg/http"
	"github.com/movesure/dispatch/internal/pkg/models"
)

// RouteGW fetches cost optimizations from the route optimizer
type RouteGW struct {
	client *httppkg.Client
}

// NewRouteGW creates a new route gateway
func NewRouteGW(cfg models.ProviderConfig) *RouteGW {
	return &RouteGW{
		client: httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutMs)*time.Millisecond),
	}
}

type routeCostResponse struct {
	DistanceMiles float64 `json:"distance_miles"`
	TimeMinutes   float64 `json:"time_minutes"`
	FuelCost      float64 `json:"fuel_cost"`
	ZoneCost      float64 `json:"zone_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// routeResponse is the optimizer's comparison payload
type routeResponse struct {
	Original  *routeCostResponse `json:"original"`
	Optimized *routeCostResponse `json:"optimized"`
	Savings   float64            `json:"savings"`
}

// FetchRoute queries the optimizer for route economics between two points.
// Recommendations are left to the caller.
func (g *RouteGW) FetchRoute(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) (*models.RouteOptimization, error) {
	path := fmt.Sprintf("/v1/optimize?from_lat=%f&from_lng=%f&to_lat=%f&to_lng=%f&at=%s",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude,
		url.QueryEscape(scheduledAt.Format(time.RFC3339)))

	var resp routeResponse
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("route provider: %w", err)
	}

	if resp.Original == nil || resp.Optimized == nil {
		return nil, fmt.Errorf("route provider: malformed response, missing route costs")
	}

	return &models.RouteOptimization{
		Original:  toRouteCost(resp.Original),
		Optimized: toRouteCost(resp.Optimized),
		Savings:   resp.Savings,
	}, nil
}

func toRouteCost(r *routeCostResponse) models.RouteCost {
	return models.RouteCost{
		DistanceMiles: r.DistanceMiles,
		TimeMinutes:   r.TimeMinutes,
		FuelCost:      r.FuelCost,
		ZoneCost:      r.ZoneCost,
		TotalCost:     r.TotalCost,
	}
}
