package usecase

import (
	"fmt"
	"strings"

	"github.com/movesure/dispatch/internal/pkg/logger"
	"github.com/movesure/dispatch/internal/pkg/models"
)

const highVolumeThresholdM3 = 20.0
const manyItemsThreshold = 15

// RecommendCrew scores a booking's items and property access into a crew
// size recommendation. Factors are evaluated in a fixed escalation order:
// once the crew size has been raised it is never lowered, and the reason is
// only overwritten on escalation, not on corroboration. Any internal fault
// degrades to a safe two-person default instead of aborting the dispatch.
func RecommendCrew(booking *models.Booking) (rec models.CrewRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			ref := ""
			if booking != nil {
				ref = booking.Reference
			}
			logger.Error("Crew recommendation failed",
				logger.String("booking_ref", ref),
				logger.Any("panic_value", r))
			rec = models.CrewRecommendation{
				SuggestedCrewSize: models.CrewSizeTwo,
				Confidence:        models.ConfidenceLow,
				Reason:            "Unable to analyze job requirements",
				Factors:           []string{"Analysis failed"},
			}
		}
	}()

	rec = models.CrewRecommendation{
		SuggestedCrewSize: models.CrewSizeOne,
		Confidence:        models.ConfidenceLow,
		Factors:           []string{},
	}

	// 1. Two-person items
	for _, item := range booking.Items {
		if item.RequiresTwoPerson {
			rec.SuggestedCrewSize = models.CrewSizeTwo
			rec.Confidence = models.ConfidenceHigh
			rec.Reason = "Items require two-person handling"
			rec.Factors = append(rec.Factors, "Two-person items detected")
			break
		}
	}

	// 2. Total volume
	if total := booking.TotalVolumeM3(); total > highVolumeThresholdM3 {
		if rec.SuggestedCrewSize == models.CrewSizeOne {
			rec.SuggestedCrewSize = models.CrewSizeTwo
			rec.Confidence = models.ConfidenceMedium
			rec.Reason = "High volume job"
		}
		rec.Factors = append(rec.Factors, fmt.Sprintf("High volume: %.1f m³", total))
	}

	// 3. Stairs with multiple floors on either side
	pickupStairs := booking.Pickup.Property.AccessType == models.AccessStairs && booking.Pickup.Property.Floors > 1
	dropoffStairs := booking.Dropoff.Property.AccessType == models.AccessStairs && booking.Dropoff.Property.Floors > 1
	if pickupStairs || dropoffStairs {
		if rec.SuggestedCrewSize == models.CrewSizeOne {
			rec.SuggestedCrewSize = models.CrewSizeTwo
			rec.Confidence = models.ConfidenceMedium
			rec.Reason = "Multiple floors with stairs"
		}
		rec.Factors = append(rec.Factors, fmt.Sprintf("Stairs access: pickup %d floors, dropoff %d floors",
			booking.Pickup.Property.Floors, booking.Dropoff.Property.Floors))
	}

	// 4. Many individual items
	if count := len(booking.Items); count > manyItemsThreshold {
		if rec.SuggestedCrewSize == models.CrewSizeOne {
			rec.SuggestedCrewSize = models.CrewSizeTwo
			rec.Confidence = models.ConfidenceLow
			rec.Reason = "Many individual items"
		}
		rec.Factors = append(rec.Factors, fmt.Sprintf("%d individual items", count))
	}

	// 5. Informational factors; these never change size or confidence
	fragile, disassembly := 0, 0
	for _, item := range booking.Items {
		if item.IsFragile {
			fragile++
		}
		if item.RequiresDisassembly {
			disassembly++
		}
	}
	if fragile > 0 {
		rec.Factors = append(rec.Factors, fmt.Sprintf("%d fragile items", fragile))
	}
	if disassembly > 0 {
		rec.Factors = append(rec.Factors, fmt.Sprintf("%d items require disassembly", disassembly))
	}

	// Not reachable under the current rules, but a factor-only path must
	// still produce a reason.
	if rec.Reason == "" && len(rec.Factors) > 0 {
		rec.Reason = "Based on " + strings.Join(rec.Factors, ", ")
	}

	return rec
}
