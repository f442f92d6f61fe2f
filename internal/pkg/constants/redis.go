package constants

// Redis key formats
const (
	// Provider response cache, keyed by coarse geohash and hour bucket.
	// Traffic data is route-specific (closures, delay), so its key carries
	// both endpoints; weather only depends on the pickup area.
	KeyWeatherCache = "wx:%s:%d"         // Format: wx:{geohash5}:{hour_bucket}
	KeyTrafficCache = "traffic:%s:%s:%d" // Format: traffic:{from_geohash5}:{to_geohash5}:{hour_bucket}
)
