package models

// ZoneType identifies a regulatory charging scheme
type ZoneType string

const (
	ZoneULEZ             ZoneType = "ULEZ"
	ZoneLEZ              ZoneType = "LEZ"
	ZoneCongestionCharge ZoneType = "CONGESTION_CHARGE"
	ZoneNone             ZoneType = "NONE"
)

// ZoneVerdict is the result of classifying a postcode against the
// regulatory zone rule sets. Recomputed per dispatch, never persisted
// on its own.
type ZoneVerdict struct {
	Applies      bool     `json:"applies"`
	Type         ZoneType `json:"type"`
	Charge       float64  `json:"charge"`
	Requirements string   `json:"requirements,omitempty"`
	Exemptions   []string `json:"exemptions,omitempty"`
}
