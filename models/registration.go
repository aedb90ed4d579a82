package models

// ContractorRegistration is the payload for registering a therapist or salon
// profile. Validation tags mirror the form's client-side rules; the backend
// re-validates everything.
type ContractorRegistration struct {
	Kind        ProviderKind `json:"kind" validate:"required,oneof=therapist salon"`
	DisplayName string       `json:"display_name" validate:"required,min=2,max=80"`
	Email       string       `json:"email" validate:"required,email"`
	Phone       string       `json:"phone" validate:"required,e164"`
	City        string       `json:"city" validate:"required"`
	Region      string       `json:"region" validate:"required"`
	Bio         string       `json:"bio" validate:"max=600"`
	// Salon registrations need a street address; therapists do not.
	Address    string `json:"address" validate:"required_if=Kind salon"`
	HomeVisits bool   `json:"home_visits"`
	// Uploaded ID document paths (storage object paths, not raw files).
	IDDocuments []string `json:"id_documents" validate:"required,min=1"`
}

// PackageInput is the payload for creating or updating a service package.
type PackageInput struct {
	NameEn     string   `json:"name_en" validate:"required"`
	NameFr     string   `json:"name_fr" validate:"required"`
	ServiceIDs []string `json:"service_ids" validate:"required,min=2"`
	Price      float64  `json:"price" validate:"required,gt=0"`
	Duration   int      `json:"duration" validate:"required,gt=0"`
}

// ProfileUpdate carries editable contractor profile fields.
type ProfileUpdate struct {
	DisplayName string   `json:"display_name,omitempty" validate:"omitempty,min=2,max=80"`
	Bio         string   `json:"bio,omitempty" validate:"omitempty,max=600"`
	City        string   `json:"city,omitempty"`
	Region      string   `json:"region,omitempty"`
	Address     string   `json:"address,omitempty"`
	HomeVisits  *bool    `json:"home_visits,omitempty"`
	Photos      []string `json:"photos,omitempty"`
}
