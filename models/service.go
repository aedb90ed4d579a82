package models

// Category groups services for browsing (e.g. hair, nails, massage).
type Category struct {
	ID     string `json:"id"`
	NameEn string `json:"name_en"`
	NameFr string `json:"name_fr"`
	Icon   string `json:"icon,omitempty"`
}

// Service is a bookable service as listed in the marketplace catalogue.
// BasePrice and Duration are defaults; providers may override both.
type Service struct {
	ID            string   `json:"id"`
	CategoryID    string   `json:"category_id"`
	NameEn        string   `json:"name_en"`
	NameFr        string   `json:"name_fr"`
	DescriptionEn string   `json:"description_en,omitempty"`
	DescriptionFr string   `json:"description_fr,omitempty"`
	BasePrice     float64  `json:"base_price"`   // XAF
	Duration      int      `json:"duration"`     // minutes
	Images        []string `json:"images,omitempty"`
	ProviderCount int      `json:"provider_count"`
}

// ProviderService is a provider's entry for a service, carrying optional
// price/duration overrides. A nil override means the service default applies.
type ProviderService struct {
	ServiceID string   `json:"service_id"`
	Price     *float64 `json:"price,omitempty"`
	Duration  *int     `json:"duration,omitempty"`
	Active    bool     `json:"active"`
}

// Package bundles several services at a combined price and duration.
type Package struct {
	ID         string   `json:"id"`
	ProviderID string   `json:"provider_id"`
	NameEn     string   `json:"name_en"`
	NameFr     string   `json:"name_fr"`
	ServiceIDs []string `json:"service_ids"`
	Price      float64  `json:"price"`
	Duration   int      `json:"duration"`
}
