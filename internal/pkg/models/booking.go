package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessType describes how a property is reached from the vehicle
type AccessType string

const (
	AccessGround AccessType = "ground"
	AccessLift   AccessType = "lift"
	AccessStairs AccessType = "stairs"
)

// Coordinates represents a geographical point
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PropertyDetails describes the property on one side of a job
type PropertyDetails struct {
	Floors     int        `json:"floors"`
	AccessType AccessType `json:"access_type"`
	Notes      string     `json:"notes,omitempty"`
}

// Address represents one end of a booking
type Address struct {
	Line1       string          `json:"line1"`
	City        string          `json:"city"`
	Postcode    string          `json:"postcode"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Property    PropertyDetails `json:"property"`
}

// Item is a single inventory entry on a booking
type Item struct {
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	VolumeM3            float64 `json:"volume_m3"`
	RequiresTwoPerson   bool    `json:"requires_two_person"`
	IsFragile           bool    `json:"is_fragile"`
	RequiresDisassembly bool    `json:"requires_disassembly"`
}

// Booking is the confirmed transport booking the engine enriches.
// It is owned by the booking service; the dispatch engine only reads it.
type Booking struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	Pickup      Address   `json:"pickup"`
	Dropoff     Address   `json:"dropoff"`
	Items       []Item    `json:"items"`
	ScheduledAt time.Time `json:"scheduled_at"`
	TotalPrice  float64   `json:"total_price"`
}

// TotalVolumeM3 sums the volume of all items on the booking
func (b *Booking) TotalVolumeM3() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.VolumeM3
	}
	return total
}
