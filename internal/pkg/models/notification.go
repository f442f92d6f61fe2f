package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies what booking lifecycle event triggered a dispatch
type NotificationType string

const (
	NotificationNewBooking       NotificationType = "new_booking"
	NotificationBookingUpdated   NotificationType = "booking_updated"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
)

// Priority grades how urgently a driver should see a notification
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DispatchPayload bundles the enrichment results attached to a notification.
// Weather, traffic and route may individually be nil when coordinates were
// missing; zone and crew are always present.
type DispatchPayload struct {
	BookingReference string              `json:"booking_reference"`
	ScheduledAt      time.Time           `json:"scheduled_at"`
	TotalPrice       float64             `json:"total_price"`
	Zone             ZoneVerdict         `json:"zone"`
	PickupZone       ZoneVerdict         `json:"pickup_zone"`
	DropoffZone      ZoneVerdict         `json:"dropoff_zone"`
	Weather          *WeatherInfo        `json:"weather,omitempty"`
	Traffic          *TrafficInfo        `json:"traffic,omitempty"`
	Route            *RouteOptimization  `json:"route,omitempty"`
	Crew             *CrewRecommendation `json:"crew"`
}

// DispatchNotification is the persisted record produced by one dispatch
// attempt. Core fields are immutable after creation; only the read markers
// change afterwards.
type DispatchNotification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	Priority  Priority         `json:"priority" db:"priority"`
	DriverID  string           `json:"driver_id" db:"driver_id"`
	BookingID uuid.UUID        `json:"booking_id" db:"booking_id"`
	Payload   DispatchPayload  `json:"payload" db:"payload"`
	Read      bool             `json:"read" db:"read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
