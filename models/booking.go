package models

import "time"

// LocationType says where the service is performed.
type LocationType string

const (
	LocationHome  LocationType = "HOME"
	LocationSalon LocationType = "SALON"
)

// BookingStatus follows the server-side lifecycle.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingItem is one service line inside a booking, priced at booking time.
type BookingItem struct {
	ServiceID string  `json:"service_id"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration"` // minutes
	Primary   bool    `json:"primary"`
}

// Booking represents a booking record as returned by the API. Totals are
// computed server-side; the client mirrors them.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	TherapistID   string        `json:"therapist_id,omitempty"`
	SalonID       string        `json:"salon_id,omitempty"`
	Items         []BookingItem `json:"items"`
	LocationType  LocationType  `json:"location_type"`
	Address       string        `json:"address,omitempty"`
	Subtotal      float64       `json:"subtotal"`
	TravelFee     float64       `json:"travel_fee"`
	Total         float64       `json:"total"`
	TotalDuration int           `json:"total_duration"`
	ScheduledAt   time.Time     `json:"scheduled_at"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ProviderID returns whichever of the two provider references is set.
func (b Booking) ProviderID() string {
	if b.TherapistID != "" {
		return b.TherapistID
	}
	return b.SalonID
}

// BookingRequest is the payload submitted to create a booking. Exactly one of
// TherapistID/SalonID must be set; the backend validates totals and conflicts.
type BookingRequest struct {
	TherapistID  string        `json:"therapist_id,omitempty"`
	SalonID      string        `json:"salon_id,omitempty"`
	Items        []BookingItem `json:"items"`
	LocationType LocationType  `json:"location_type"`
	Address      string        `json:"address,omitempty"`
	Date         string        `json:"date"` // "2006-01-02"
	Slot         string        `json:"slot"` // "HH:MM"
	Notes        string        `json:"notes,omitempty"`
}
