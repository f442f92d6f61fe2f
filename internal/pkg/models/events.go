package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingCompletedEvent is consumed from the booking service when a booking
// is confirmed and a driver has been assigned
type BookingCompletedEvent struct {
	Booking  Booking          `json:"booking"`
	DriverID string           `json:"driver_id"`
	Type     NotificationType `json:"type"`
}

// NotificationCreatedEvent is published after a dispatch notification has
// been persisted, for downstream consumers such as mobile push
type NotificationCreatedEvent struct {
	NotificationID uuid.UUID `json:"notification_id"`
	DriverID       string    `json:"driver_id"`
	BookingID      uuid.UUID `json:"booking_id"`
	Priority       Priority  `json:"priority"`
	CreatedAt      time.Time `json:"created_at"`
}
