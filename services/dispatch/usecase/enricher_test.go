package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/movesure/dispatch/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPickupCoords  = models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	testDropoffCoords = models.Coordinates{Latitude: 51.4545, Longitude: -2.5879}
)

func enricherTestBooking(scheduledAt time.Time) *models.Booking {
	return &models.Booking{
		Reference:   "MV-3001",
		Pickup:      models.Address{City: "London", Coordinates: &testPickupCoords},
		Dropoff:     models.Address{City: "Bristol", Coordinates: &testDropoffCoords},
		ScheduledAt: scheduledAt,
	}
}

// memoryCache is an in-process ProviderCache for tests
type memoryCache struct {
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.entries[key] = value.(string)
	return nil
}

func TestEnrich_AllProvidersSucceed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	booking := enricherTestBooking(time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))

	weather.EXPECT().FetchWeather(gomock.Any(), testPickupCoords, booking.ScheduledAt).
		Return(&models.WeatherInfo{Condition: "Rain", TemperatureC: 9, PrecipitationMm: 6, VisibilityKm: 10, WindSpeedKph: 10}, nil)
	traffic.EXPECT().FetchTraffic(gomock.Any(), testPickupCoords, testDropoffCoords, booking.ScheduledAt).
		Return(&models.TrafficInfo{CongestionLevel: models.CongestionHigh, EstimatedDelayMinutes: 25}, nil)
	route.EXPECT().FetchRoute(gomock.Any(), testPickupCoords, testDropoffCoords, booking.ScheduledAt).
		Return(&models.RouteOptimization{
			Original:  models.RouteCost{TimeMinutes: 140, FuelCost: 18},
			Optimized: models.RouteCost{TimeMinutes: 120, FuelCost: 11},
			Savings:   7,
		}, nil)

	enricher := NewEnvironmentalEnricher(weather, traffic, route, nil, models.ProvidersConfig{})

	w, tr, rt := enricher.Enrich(context.Background(), booking)

	require.NotNil(t, w)
	require.NotNil(t, tr)
	require.NotNil(t, rt)

	// Live provider data gets assessed
	assert.Equal(t, models.ImpactHigh, w.Impact)
	assert.Contains(t, w.Recommendations, "Heavy rain expected - allow extra time and drive carefully")
	assert.Contains(t, tr.Recommendations, "Heavy congestion expected - allow extra travel time")
	assert.Contains(t, rt.Recommendations, "Optimized route saves £7.00")
}

func TestEnrich_AllProvidersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	providerErr := errors.New("connection refused")
	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, providerErr)
	traffic.EXPECT().FetchTraffic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, providerErr)
	route.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, providerErr)

	booking := enricherTestBooking(time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC))
	enricher := NewEnvironmentalEnricher(weather, traffic, route, nil, models.ProvidersConfig{})

	w, tr, rt := enricher.Enrich(context.Background(), booking)

	require.NotNil(t, w)
	require.NotNil(t, tr)
	require.NotNil(t, rt)

	// Daytime weather fallback
	assert.Equal(t, "Clear", w.Condition)
	assert.Equal(t, 18.0, w.TemperatureC)
	assert.Equal(t, models.ImpactLow, w.Impact)
	assert.Equal(t, []string{"Normal driving conditions expected"}, w.Recommendations)

	// Conservative traffic fallback
	assert.Equal(t, models.CongestionMedium, tr.CongestionLevel)
	assert.Equal(t, 15, tr.EstimatedDelayMinutes)
	assert.Equal(t, []string{
		"Check route before departure",
		"Allow extra travel time",
	}, tr.Recommendations)

	// Route fallback synthesized from straight-line distance
	assert.Greater(t, rt.Original.DistanceMiles, 0.0)
	assert.InDelta(t, rt.Original.DistanceMiles*0.15, rt.Original.FuelCost, 0.001)
	assert.InDelta(t, rt.Original.FuelCost*0.15, rt.Savings, 0.001)
	assert.NotEmpty(t, rt.Recommendations)
}

func TestEnrich_NightFallbackWeather(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	traffic.EXPECT().FetchTraffic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TrafficInfo{CongestionLevel: models.CongestionLow}, nil)
	route.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RouteOptimization{}, nil)

	booking := enricherTestBooking(time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC))
	enricher := NewEnvironmentalEnricher(weather, traffic, route, nil, models.ProvidersConfig{})

	w, _, _ := enricher.Enrich(context.Background(), booking)

	require.NotNil(t, w)
	assert.Equal(t, "Cloudy", w.Condition)
	assert.Equal(t, 12.0, w.TemperatureC)
}

func TestEnrich_NoPickupCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	booking := &models.Booking{
		Reference: "MV-3002",
		Pickup:    models.Address{City: "London"},
		Dropoff:   models.Address{City: "Bristol", Coordinates: &testDropoffCoords},
	}
	enricher := NewEnvironmentalEnricher(weather, traffic, route, nil, models.ProvidersConfig{})

	w, tr, rt := enricher.Enrich(context.Background(), booking)

	assert.Nil(t, w)
	assert.Nil(t, tr)
	assert.Nil(t, rt)
}

func TestEnrich_PickupOnlySkipsTrafficAndRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.WeatherInfo{Condition: "Clear", TemperatureC: 16, VisibilityKm: 10}, nil)

	booking := &models.Booking{
		Reference: "MV-3003",
		Pickup:    models.Address{City: "London", Coordinates: &testPickupCoords},
		Dropoff:   models.Address{City: "Bristol"},
	}
	enricher := NewEnvironmentalEnricher(weather, traffic, route, nil, models.ProvidersConfig{})

	w, tr, rt := enricher.Enrich(context.Background(), booking)

	require.NotNil(t, w)
	assert.Nil(t, tr)
	assert.Nil(t, rt)
}

func TestEnrich_WeatherCacheHitSkipsProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	booking := enricherTestBooking(time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))

	cache := newMemoryCache()
	enricher := NewEnvironmentalEnricher(weather, traffic, route, cache, models.ProvidersConfig{CacheTTLMinutes: 10})

	// First call populates the cache
	// Traffic is cached alongside weather; route has no cache and is
	// fetched on every call.
	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.WeatherInfo{Condition: "Rain", TemperatureC: 9, PrecipitationMm: 6, VisibilityKm: 10}, nil)
	traffic.EXPECT().FetchTraffic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TrafficInfo{CongestionLevel: models.CongestionLow}, nil)
	route.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
		Return(&models.RouteOptimization{}, nil)

	first, _, _ := enricher.Enrich(context.Background(), booking)
	require.NotNil(t, first)

	// Second call within the same hour bucket must not hit the weather provider
	second, _, _ := enricher.Enrich(context.Background(), booking)
	require.NotNil(t, second)
	assert.Equal(t, first.Condition, second.Condition)
	assert.Equal(t, first.Impact, second.Impact)
}

func TestEnrich_TrafficCacheIsPerRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	scheduledAt := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	cambridgeCoords := models.Coordinates{Latitude: 52.2053, Longitude: 0.1218}

	toBristol := enricherTestBooking(scheduledAt)
	toCambridge := enricherTestBooking(scheduledAt)
	toCambridge.Dropoff = models.Address{City: "Cambridge", Coordinates: &cambridgeCoords}

	cache := newMemoryCache()
	enricher := NewEnvironmentalEnricher(weather, traffic, route, cache, models.ProvidersConfig{CacheTTLMinutes: 10})

	// Closures are route-specific, so a shared pickup must not reuse
	// another dropoff's traffic entry.
	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).
		Return(&models.WeatherInfo{Condition: "Clear", TemperatureC: 16, VisibilityKm: 10}, nil)
	traffic.EXPECT().FetchTraffic(gomock.Any(), testPickupCoords, testDropoffCoords, scheduledAt).
		Return(&models.TrafficInfo{
			CongestionLevel: models.CongestionHigh,
			RoadClosures:    []models.RoadClosure{{Road: "M4 towards Bristol", Description: "Resurfacing"}},
		}, nil)
	traffic.EXPECT().FetchTraffic(gomock.Any(), testPickupCoords, cambridgeCoords, scheduledAt).
		Return(&models.TrafficInfo{CongestionLevel: models.CongestionLow}, nil)
	route.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
		Return(&models.RouteOptimization{}, nil)

	_, bristolTraffic, _ := enricher.Enrich(context.Background(), toBristol)
	_, cambridgeTraffic, _ := enricher.Enrich(context.Background(), toCambridge)

	require.NotNil(t, bristolTraffic)
	require.NotNil(t, cambridgeTraffic)
	assert.Equal(t, models.CongestionHigh, bristolTraffic.CongestionLevel)
	assert.Equal(t, models.CongestionLow, cambridgeTraffic.CongestionLevel)
	assert.Empty(t, cambridgeTraffic.RoadClosures)
}

func TestEnrich_CachedValueRoundTrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	weather := mocks.NewMockWeatherProvider(ctrl)
	traffic := mocks.NewMockTrafficProvider(ctrl)
	route := mocks.NewMockRouteProvider(ctrl)

	booking := enricherTestBooking(time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))

	cache := newMemoryCache()
	enricher := NewEnvironmentalEnricher(weather, traffic, route, cache, models.ProvidersConfig{CacheTTLMinutes: 10})

	live := &models.WeatherInfo{Condition: "Rain", TemperatureC: 9, PrecipitationMm: 6, VisibilityKm: 10}
	weather.EXPECT().FetchWeather(gomock.Any(), gomock.Any(), gomock.Any()).Return(live, nil)
	traffic.EXPECT().FetchTraffic(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.TrafficInfo{CongestionLevel: models.CongestionLow}, nil)
	route.EXPECT().FetchRoute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.RouteOptimization{}, nil)

	enricher.Enrich(context.Background(), booking)

	// The stored entry carries the assessed bundle, not the raw provider data
	require.Len(t, cache.entries, 2)
	for key, raw := range cache.entries {
		if key[:3] != "wx:" {
			continue
		}
		var cached models.WeatherInfo
		require.NoError(t, json.Unmarshal([]byte(raw), &cached))
		assert.Equal(t, models.ImpactHigh, cached.Impact)
	}
}
