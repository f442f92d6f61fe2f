package dispatch

import (
	"context"
	"time"

	"github.com/movesure/dispatch/internal/pkg/models"
)

// WeatherProvider fetches forecast conditions for a coordinate pair.
// Implementations return raw provider data; impact assessment happens in
// the enricher.
// go:generate mockgen -destination=mocks/mock_weather.go -package=mocks github.com/movesure/dispatch/services/dispatch WeatherProvider
type WeatherProvider interface {
	FetchWeather(ctx context.Context, at models.Coordinates, scheduledAt time.Time) (*models.WeatherInfo, error)
}

// TrafficProvider fetches congestion conditions between two points
// go:generate mockgen -destination=mocks/mock_traffic.go -package=mocks github.com/movesure/dispatch/services/dispatch TrafficProvider
type TrafficProvider interface {
	FetchTraffic(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) (*models.TrafficInfo, error)
}

// RouteProvider fetches route cost optimization between two points
// go:generate mockgen -destination=mocks/mock_route.go -package=mocks github.com/movesure/dispatch/services/dispatch RouteProvider
type RouteProvider interface {
	FetchRoute(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) (*models.RouteOptimization, error)
}

// DispatchGW defines outbound delivery of produced notifications.
// Both operations are best-effort by contract.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/movesure/dispatch/services/dispatch DispatchGW
type DispatchGW interface {
	// PushNotification delivers the notification to the driver's live
	// session if one exists. Failures are logged and swallowed.
	PushNotification(driverID string, notification *models.DispatchNotification)

	// PublishNotificationCreated emits an event for downstream consumers
	PublishNotificationCreated(ctx context.Context, event models.NotificationCreatedEvent) error
}
