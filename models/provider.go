package models

import "time"

// ProviderKind distinguishes the two provider flavours.
type ProviderKind string

const (
	ProviderTherapist ProviderKind = "therapist"
	ProviderSalon     ProviderKind = "salon"
)

// Provider represents a therapist or salon offering bookable services.
type Provider struct {
	ID          string            `json:"id"`
	Kind        ProviderKind      `json:"kind"`
	DisplayName string            `json:"display_name"`
	Bio         string            `json:"bio,omitempty"`
	AvatarURL   string            `json:"avatar_url,omitempty"`
	Photos      []string          `json:"photos,omitempty"`
	City        string            `json:"city"`
	Region      string            `json:"region,omitempty"`
	Latitude    float64           `json:"latitude,omitempty"`
	Longitude   float64           `json:"longitude,omitempty"`
	Rating      float64           `json:"rating"`
	ReviewCount int               `json:"review_count"`
	Services    []ProviderService `json:"services,omitempty"`
	Packages    []Package         `json:"packages,omitempty"`
	// Salon-only fields.
	Address      string `json:"address,omitempty"`
	OpeningHours string `json:"opening_hours,omitempty"`
	// Therapist-only: whether home visits are offered.
	HomeVisits bool      `json:"home_visits,omitempty"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// CatalogEntry returns the provider's entry for a service, if any.
func (p Provider) CatalogEntry(serviceID string) (ProviderService, bool) {
	for _, ps := range p.Services {
		if ps.ServiceID == serviceID {
			return ps, true
		}
	}
	return ProviderService{}, false
}

// PhoneReveal is the response to a phone reveal request. Revealing a number
// spends provider credits server-side.
type PhoneReveal struct {
	Phone          string  `json:"phone"`
	CreditsCharged float64 `json:"credits_charged"`
}
