package utils

import (
	"testing"

	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles(t *testing.T) {
	// Central London to Croydon, roughly 9.4 miles as the crow flies
	london := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	croydon := models.Coordinates{Latitude: 51.3762, Longitude: -0.0982}

	distance := DistanceMiles(london, croydon)
	assert.InDelta(t, 9.2, distance, 1.0)
}

func TestDistanceMiles_SamePoint(t *testing.T) {
	point := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	assert.Equal(t, 0.0, DistanceMiles(point, point))
}

func TestCacheKeyHash(t *testing.T) {
	coords := models.Coordinates{Latitude: 51.5074, Longitude: -0.1278}
	hash := CacheKeyHash(coords)
	assert.Len(t, hash, 5)

	// Nearby points in the same cell share a key
	nearby := models.Coordinates{Latitude: 51.5080, Longitude: -0.1270}
	assert.Equal(t, hash, CacheKeyHash(nearby))
}
