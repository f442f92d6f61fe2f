package models

// CrewSize is the number of personnel recommended for a job
type CrewSize int

const (
	CrewSizeOne   CrewSize = 1
	CrewSizeTwo   CrewSize = 2
	CrewSizeThree CrewSize = 3
	CrewSizeFour  CrewSize = 4
)

// Confidence grades how certain a recommendation is
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// CrewRecommendation is the crew sizing verdict for a booking. A dispatch
// notification always carries one; there is no null case.
type CrewRecommendation struct {
	SuggestedCrewSize CrewSize   `json:"suggested_crew_size"`
	Confidence        Confidence `json:"confidence"`
	Reason            string     `json:"reason"`
	Factors           []string   `json:"factors"`
}
