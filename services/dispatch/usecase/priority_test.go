package usecase

import (
	"testing"

	"github.com/movesure/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComposePriority(t *testing.T) {
	noZone := models.ZoneVerdict{Applies: false, Type: models.ZoneNone}
	ulez := models.ZoneVerdict{Applies: true, Type: models.ZoneULEZ, Charge: 12.50}

	tests := []struct {
		name    string
		zone    models.ZoneVerdict
		weather *models.WeatherInfo
		traffic *models.TrafficInfo
		want    models.Priority
	}{
		{"nothing applies", noZone, nil, nil, models.PriorityLow},
		{"calm conditions", noZone, &models.WeatherInfo{Impact: models.ImpactLow}, &models.TrafficInfo{CongestionLevel: models.CongestionLow}, models.PriorityLow},
		{"zone only", ulez, nil, nil, models.PriorityMedium},
		{"medium weather", noZone, &models.WeatherInfo{Impact: models.ImpactMedium}, nil, models.PriorityMedium},
		{"high congestion", noZone, nil, &models.TrafficInfo{CongestionLevel: models.CongestionHigh}, models.PriorityMedium},
		{"high weather", noZone, &models.WeatherInfo{Impact: models.ImpactHigh}, nil, models.PriorityHigh},
		{"severe congestion", noZone, nil, &models.TrafficInfo{CongestionLevel: models.CongestionSevere}, models.PriorityHigh},
		{"high weather beats zone", ulez, &models.WeatherInfo{Impact: models.ImpactHigh}, &models.TrafficInfo{CongestionLevel: models.CongestionLow}, models.PriorityHigh},
		{"zone with medium congestion stays medium", ulez, &models.WeatherInfo{Impact: models.ImpactLow}, &models.TrafficInfo{CongestionLevel: models.CongestionMedium}, models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposePriority(tt.zone, tt.weather, tt.traffic))
		})
	}
}
