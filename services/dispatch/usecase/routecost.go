package usecase

import (
	"fmt"

	"github.com/movesure/dispatch/internal/pkg/models"
)

// AssessRoute sets the recommendation strings on a route optimization
// bundle. Monetary values are rounded to two decimals only here, at
// formatting time; the stored costs keep full precision.
func AssessRoute(opt *models.RouteOptimization) {
	recs := []string{}

	if opt.Savings > 5 {
		recs = append(recs, fmt.Sprintf("Optimized route saves £%.2f", opt.Savings))
	}
	if opt.Optimized.FuelCost < opt.Original.FuelCost {
		delta := opt.Original.FuelCost - opt.Optimized.FuelCost
		recs = append(recs, fmt.Sprintf("Fuel savings of £%.2f on optimized route", delta))
	}
	if opt.Optimized.ZoneCost > 0 {
		recs = append(recs, "Route passes through a charging zone - check vehicle compliance")
	}
	if opt.Optimized.TimeMinutes < opt.Original.TimeMinutes {
		saved := opt.Original.TimeMinutes - opt.Optimized.TimeMinutes
		recs = append(recs, fmt.Sprintf("Optimized route is %.0f minutes faster", saved))
	}
	if len(recs) == 0 {
		recs = append(recs, "Route is already optimized")
	}

	opt.Recommendations = recs
}
