package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/movesure/dispatch/internal/pkg/models"
)

const (
	earthRadiusKm  = 6371.0
	milesPerKm     = 0.621371
	cachePrecision = 5 // ~4.9km cells, coarse enough to share forecasts
)

// CacheKeyHash returns the coarse geohash used for provider cache keys
func CacheKeyHash(coords models.Coordinates) string {
	return geohash.EncodeWithPrecision(coords.Latitude, coords.Longitude, cachePrecision)
}

// EncodeCoordinates converts coordinates to a geohash string
func EncodeCoordinates(coords models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(coords.Latitude, coords.Longitude, precision)
}

// DistanceMiles calculates the straight-line distance between two points in
// miles using the Haversine formula
func DistanceMiles(from, to models.Coordinates) float64 {
	lat1 := from.Latitude * math.Pi / 180.0
	lon1 := from.Longitude * math.Pi / 180.0
	lat2 := to.Latitude * math.Pi / 180.0
	lon2 := to.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c * milesPerKm
}
