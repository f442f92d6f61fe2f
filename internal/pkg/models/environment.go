package models

// ImpactLevel grades how strongly conditions affect a job
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// CongestionLevel grades road congestion as reported by the traffic provider
type CongestionLevel string

const (
	CongestionLow    CongestionLevel = "low"
	CongestionMedium CongestionLevel = "medium"
	CongestionHigh   CongestionLevel = "high"
	CongestionSevere CongestionLevel = "severe"
)

// WeatherInfo holds forecast conditions for the scheduled pickup window
type WeatherInfo struct {
	Condition       string      `json:"condition"`
	TemperatureC    float64     `json:"temperature_c"`
	PrecipitationMm float64     `json:"precipitation_mm"`
	WindSpeedKph    float64     `json:"wind_speed_kph"`
	VisibilityKm    float64     `json:"visibility_km"`
	Impact          ImpactLevel `json:"impact"`
	Recommendations []string    `json:"recommendations"`
}

// RoadClosure describes a closed road on or near the planned route
type RoadClosure struct {
	Road        string `json:"road"`
	Description string `json:"description,omitempty"`
}

// RouteOption is an alternative route suggested by the traffic provider
type RouteOption struct {
	Description          string  `json:"description"`
	DistanceMiles        float64 `json:"distance_miles"`
	EstimatedTimeMinutes float64 `json:"estimated_time_minutes"`
}

// TrafficInfo holds congestion conditions for the scheduled pickup window
type TrafficInfo struct {
	CongestionLevel       CongestionLevel `json:"congestion_level"`
	EstimatedDelayMinutes int             `json:"estimated_delay_minutes"`
	RoadClosures          []RoadClosure   `json:"road_closures"`
	AlternativeRoutes     []RouteOption   `json:"alternative_routes"`
	Recommendations       []string        `json:"recommendations"`
}

// RouteCost is the economics of driving one candidate route.
// Values are stored unrounded; rounding happens only when formatting
// driver-facing messages.
type RouteCost struct {
	DistanceMiles float64 `json:"distance_miles"`
	TimeMinutes   float64 `json:"time_minutes"`
	FuelCost      float64 `json:"fuel_cost"`
	ZoneCost      float64 `json:"zone_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// RouteOptimization compares the booking's original route against the
// optimizer's suggestion
type RouteOptimization struct {
	Original        RouteCost `json:"original"`
	Optimized       RouteCost `json:"optimized"`
	Savings         float64   `json:"savings"`
	Recommendations []string  `json:"recommendations"`
}
