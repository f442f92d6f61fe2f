package usecase

import (
	"strings"

	"github.com/movesure/dispatch/internal/pkg/models"
)

// Regulatory zone rule sets, evaluated against the uppercased postcode
// prefix. Checked in fixed priority order: ULEZ, then LEZ, then Congestion
// Charge. The sets overlap (SW matches ULEZ before SW1 can match the
// Congestion Charge); first match wins and later rules are not consulted.

var ulezPrefixes = []string{
	"EC", "WC", "NW", "SE", "SW", "BR", "CR", "DA", "EN", "HA",
	"IG", "KT", "RM", "SM", "TN", "TW", "UB", "WD", "E", "N", "W",
}

// "N" and "E" are shadowed by the same single-letter ULEZ prefixes and can
// never match; they stay listed so the set reads as the full LEZ roster.
// "S" and "C" survive the ULEZ pass for codes like S1 or CB1.
var lezPrefixes = []string{"B", "M", "L", "S", "N", "G", "E", "C"}

var congestionCodes = []string{
	"E1W", "EC1", "EC2", "EC3", "EC4", "WC1", "WC2", "SE1", "SW1", "E1", "W1",
}

const (
	ulezCharge       = 12.50
	lezCharge        = 8.00
	congestionCharge = 15.00

	emissionRequirements  = "Euro 6 diesel or Euro 4 petrol vehicle required"
	congestionRequirement = "Payment required for driving in zone"
)

// zonePriority ranks verdicts when pickup and dropoff differ; lower wins
var zonePriority = map[models.ZoneType]int{
	models.ZoneULEZ:             0,
	models.ZoneLEZ:              1,
	models.ZoneCongestionCharge: 2,
	models.ZoneNone:             3,
}

// ClassifyZone evaluates a postcode against the regulatory zone rule sets.
// An empty or unrecognised postcode yields a verdict that does not apply.
func ClassifyZone(postcode string) models.ZoneVerdict {
	code := strings.ToUpper(strings.TrimSpace(postcode))
	if code == "" {
		return models.ZoneVerdict{Applies: false, Type: models.ZoneNone}
	}

	for _, prefix := range ulezPrefixes {
		if strings.HasPrefix(code, prefix) {
			return models.ZoneVerdict{
				Applies:      true,
				Type:         models.ZoneULEZ,
				Charge:       ulezCharge,
				Requirements: emissionRequirements,
				Exemptions:   []string{"Electric vehicles", "Hybrid vehicles meeting standards"},
			}
		}
	}

	for _, prefix := range lezPrefixes {
		if strings.HasPrefix(code, prefix) {
			return models.ZoneVerdict{
				Applies:      true,
				Type:         models.ZoneLEZ,
				Charge:       lezCharge,
				Requirements: emissionRequirements,
				Exemptions:   []string{"Electric vehicles", "Hybrid vehicles meeting standards"},
			}
		}
	}

	outward := code
	if idx := strings.IndexByte(code, ' '); idx > 0 {
		outward = code[:idx]
	}
	for _, exact := range congestionCodes {
		if outward == exact {
			return models.ZoneVerdict{
				Applies:      true,
				Type:         models.ZoneCongestionCharge,
				Charge:       congestionCharge,
				Requirements: congestionRequirement,
				Exemptions:   []string{"Electric vehicles", "Residents", "Blue badge holders"},
			}
		}
	}

	return models.ZoneVerdict{Applies: false, Type: models.ZoneNone}
}

// ClassifyBookingZones classifies both ends of a booking and picks the
// effective verdict. If either side is zone-affected the booking is flagged
// using the higher-priority match.
func ClassifyBookingZones(booking *models.Booking) (effective, pickup, dropoff models.ZoneVerdict) {
	pickup = ClassifyZone(booking.Pickup.Postcode)
	dropoff = ClassifyZone(booking.Dropoff.Postcode)

	effective = pickup
	if zonePriority[dropoff.Type] < zonePriority[effective.Type] {
		effective = dropoff
	}
	return effective, pickup, dropoff
}
