package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/movesure/dispatch/internal/pkg/constants"
	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/movesure/dispatch/internal/utils"
	"github.com/movesure/dispatch/services/dispatch"
)

// Fallback synthesis constants. Used only when a provider call fails;
// a booking without coordinates gets no bundle at all.
const (
	fallbackDefaultDistanceMiles = 10.0
	fuelCostPerMile              = 0.15
	minutesPerMile               = 2.0
	daytimeStartHour             = 6
	daytimeEndHour               = 20
)

// ProviderCache caches provider responses. Satisfied by database.RedisClient;
// a nil cache disables caching. Cache failures are treated as misses.
type ProviderCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// EnvironmentalEnricher orchestrates the weather, traffic and route
// provider calls. The three calls run concurrently, each bounded by its own
// timeout, so total latency is bounded by the slowest single provider.
// Provider failures never escape: each degrades to a deterministic fallback.
type EnvironmentalEnricher struct {
	weather dispatch.WeatherProvider
	traffic dispatch.TrafficProvider
	route   dispatch.RouteProvider
	cache   ProviderCache
	cfg     models.ProvidersConfig
}

// NewEnvironmentalEnricher creates a new enricher
func NewEnvironmentalEnricher(
	weather dispatch.WeatherProvider,
	traffic dispatch.TrafficProvider,
	route dispatch.RouteProvider,
	cache ProviderCache,
	cfg models.ProvidersConfig,
) *EnvironmentalEnricher {
	return &EnvironmentalEnricher{
		weather: weather,
		traffic: traffic,
		route:   route,
		cache:   cache,
		cfg:     cfg,
	}
}

// Enrich fetches all three environmental bundles for a booking. A nil
// bundle means the booking lacked the coordinates for that provider; a
// failed provider yields fallback data instead.
func (e *EnvironmentalEnricher) Enrich(ctx context.Context, booking *models.Booking) (*models.WeatherInfo, *models.TrafficInfo, *models.RouteOptimization) {
	var (
		wg      sync.WaitGroup
		weather *models.WeatherInfo
		traffic *models.TrafficInfo
		route   *models.RouteOptimization
	)

	pickup := booking.Pickup.Coordinates
	dropoff := booking.Dropoff.Coordinates

	if pickup != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			weather = e.enrichWeather(ctx, *pickup, booking.ScheduledAt)
		}()
	}

	if pickup != nil && dropoff != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			traffic = e.enrichTraffic(ctx, *pickup, *dropoff, booking.ScheduledAt)
		}()

		wg.Add(1)
		go func() {
			defer wg.Done()
			route = e.enrichRoute(ctx, *pickup, *dropoff, booking.ScheduledAt)
		}()
	}

	wg.Wait()
	return weather, traffic, route
}

func (e *EnvironmentalEnricher) enrichWeather(ctx context.Context, at models.Coordinates, scheduledAt time.Time) *models.WeatherInfo {
	cacheKey := fmt.Sprintf(constants.KeyWeatherCache, utils.CacheKeyHash(at), hourBucket(scheduledAt))
	if cached, ok := e.cacheGet(ctx, cacheKey, &models.WeatherInfo{}); ok {
		return cached.(*models.WeatherInfo)
	}

	callCtx, cancel := e.boundedContext(ctx, e.cfg.Weather.TimeoutMs)
	defer cancel()

	info, err := e.weather.FetchWeather(callCtx, at, scheduledAt)
	if err != nil {
		logger.Warn("Weather provider unavailable, using fallback",
			logger.Err(err))
		return fallbackWeather(scheduledAt)
	}
	AssessWeather(info)
	e.cacheSet(ctx, cacheKey, info)
	return info
}

func (e *EnvironmentalEnricher) enrichTraffic(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) *models.TrafficInfo {
	cacheKey := fmt.Sprintf(constants.KeyTrafficCache, utils.CacheKeyHash(from), utils.CacheKeyHash(to), hourBucket(scheduledAt))
	if cached, ok := e.cacheGet(ctx, cacheKey, &models.TrafficInfo{}); ok {
		return cached.(*models.TrafficInfo)
	}

	callCtx, cancel := e.boundedContext(ctx, e.cfg.Traffic.TimeoutMs)
	defer cancel()

	info, err := e.traffic.FetchTraffic(callCtx, from, to, scheduledAt)
	if err != nil {
		logger.Warn("Traffic provider unavailable, using fallback",
			logger.Err(err))
		return fallbackTraffic()
	}
	AssessTraffic(info)
	e.cacheSet(ctx, cacheKey, info)
	return info
}

func (e *EnvironmentalEnricher) enrichRoute(ctx context.Context, from, to models.Coordinates, scheduledAt time.Time) *models.RouteOptimization {
	callCtx, cancel := e.boundedContext(ctx, e.cfg.Route.TimeoutMs)
	defer cancel()

	opt, err := e.route.FetchRoute(callCtx, from, to, scheduledAt)
	if err != nil {
		logger.Warn("Route provider unavailable, using fallback",
			logger.Err(err))
		opt = fallbackRoute(utils.DistanceMiles(from, to))
	}
	AssessRoute(opt)
	return opt
}

func (e *EnvironmentalEnricher) boundedContext(ctx context.Context, timeoutMs int) (context.Context, context.CancelFunc) {
	timeout := time.Duration(timeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 2500 * time.Millisecond
	}
	return context.WithTimeout(ctx, timeout)
}

func (e *EnvironmentalEnricher) cacheGet(ctx context.Context, key string, out interface{}) (interface{}, bool) {
	if e.cache == nil {
		return nil, false
	}
	raw, err := e.cache.Get(ctx, key)
	if err != nil || raw == "" {
		return nil, false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, false
	}
	return out, true
}

func (e *EnvironmentalEnricher) cacheSet(ctx context.Context, key string, value interface{}) {
	if e.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ttl := time.Duration(e.cfg.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := e.cache.Set(ctx, key, string(data), ttl); err != nil {
		logger.Debug("Provider cache write failed",
			logger.String("key", key),
			logger.Err(err))
	}
}

func hourBucket(t time.Time) int64 {
	return t.Unix() / 3600
}

// fallbackWeather synthesizes deterministic forecast data when the weather
// provider cannot be reached. Daytime jobs assume clear conditions.
func fallbackWeather(scheduledAt time.Time) *models.WeatherInfo {
	info := &models.WeatherInfo{
		Condition:       "Cloudy",
		TemperatureC:    12,
		PrecipitationMm: 0,
		WindSpeedKph:    5,
		VisibilityKm:    10,
		Impact:          models.ImpactLow,
		Recommendations: []string{"Normal driving conditions expected"},
	}
	hour := scheduledAt.Hour()
	if hour >= daytimeStartHour && hour < daytimeEndHour {
		info.Condition = "Clear"
		info.TemperatureC = 18
	}
	return info
}

// fallbackTraffic synthesizes conservative congestion data
func fallbackTraffic() *models.TrafficInfo {
	return &models.TrafficInfo{
		CongestionLevel:       models.CongestionMedium,
		EstimatedDelayMinutes: 15,
		RoadClosures:          []models.RoadClosure{},
		AlternativeRoutes:     []models.RouteOption{},
		Recommendations: []string{
			"Check route before departure",
			"Allow extra travel time",
		},
	}
}

// fallbackRoute synthesizes route economics from the booking's straight-line
// distance, or a default distance when that degenerates to zero
func fallbackRoute(distanceMiles float64) *models.RouteOptimization {
	if distanceMiles <= 0 {
		distanceMiles = fallbackDefaultDistanceMiles
	}

	fuelCost := distanceMiles * fuelCostPerMile
	original := models.RouteCost{
		DistanceMiles: distanceMiles,
		TimeMinutes:   distanceMiles * minutesPerMile,
		FuelCost:      fuelCost,
		ZoneCost:      0,
		TotalCost:     fuelCost,
	}
	optimized := models.RouteCost{
		DistanceMiles: original.DistanceMiles * 0.90,
		TimeMinutes:   original.TimeMinutes * 0.95,
		FuelCost:      original.FuelCost * 0.85,
		ZoneCost:      0,
		TotalCost:     original.FuelCost * 0.85,
	}

	return &models.RouteOptimization{
		Original:  original,
		Optimized: optimized,
		Savings:   fuelCost * 0.15,
	}
}
