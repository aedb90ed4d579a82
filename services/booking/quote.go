package booking

import (
	"sort"

	"bellavie/models"
)

// Selection is the set of services chosen for a booking. The primary service
// is pinned: toggling or deselecting it is a no-op, it is always included.
type Selection struct {
	primaryID  string
	additional map[string]struct{}
}

// NewSelection starts a selection around the primary service.
func NewSelection(primaryID string) Selection {
	return Selection{primaryID: primaryID, additional: make(map[string]struct{})}
}

// PrimaryID returns the pinned primary service id.
func (s Selection) PrimaryID() string { return s.primaryID }

// Toggle adds or removes an additional service. The primary id is ignored.
func (s *Selection) Toggle(serviceID string) {
	if serviceID == s.primaryID {
		return
	}
	if _, ok := s.additional[serviceID]; ok {
		delete(s.additional, serviceID)
	} else {
		s.additional[serviceID] = struct{}{}
	}
}

// Deselect removes an additional service. Deselecting the primary is a no-op.
func (s *Selection) Deselect(serviceID string) {
	if serviceID == s.primaryID {
		return
	}
	delete(s.additional, serviceID)
}

// IsSelected reports whether the service is part of the selection.
func (s Selection) IsSelected(serviceID string) bool {
	if serviceID == s.primaryID {
		return true
	}
	_, ok := s.additional[serviceID]
	return ok
}

// Additional returns the toggled additional service ids in stable order.
func (s Selection) Additional() []string {
	ids := make([]string, 0, len(s.additional))
	for id := range s.additional {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Catalog resolves prices and durations for a provider: the provider's
// per-service overrides win, the marketplace base values are the fallback.
type Catalog struct {
	provider models.Provider
	services map[string]models.Service
}

// NewCatalog builds a catalog from the provider and the marketplace service
// records the screen already fetched.
func NewCatalog(provider models.Provider, services []models.Service) Catalog {
	m := make(map[string]models.Service, len(services))
	for _, svc := range services {
		m[svc.ID] = svc
	}
	return Catalog{provider: provider, services: m}
}

// Provider returns the catalog's provider.
func (c Catalog) Provider() models.Provider { return c.provider }

// Resolve returns the effective price and duration for a service. ok is false
// when no service record exists at all; such entries are skipped by the quote
// rather than erroring.
func (c Catalog) Resolve(serviceID string) (price float64, duration int, ok bool) {
	svc, found := c.services[serviceID]
	if !found {
		return 0, 0, false
	}
	price, duration = svc.BasePrice, svc.Duration
	if entry, has := c.provider.CatalogEntry(serviceID); has {
		if entry.Price != nil {
			price = *entry.Price
		}
		if entry.Duration != nil {
			duration = *entry.Duration
		}
	}
	return price, duration, true
}

// Quote is the derived pricing state shown before submission.
type Quote struct {
	Subtotal      float64
	TravelFee     float64
	TotalPrice    float64
	TotalDuration int // minutes
}

// ComputeQuote derives the quote from the current selection. Pure function:
// recomputed from scratch on every change, no retained state.
// travelFee applies only to home visits.
func ComputeQuote(sel Selection, cat Catalog, location models.LocationType, travelFee float64) Quote {
	var q Quote
	if price, duration, ok := cat.Resolve(sel.PrimaryID()); ok {
		q.Subtotal += price
		q.TotalDuration += duration
	}
	for _, id := range sel.Additional() {
		price, duration, ok := cat.Resolve(id)
		if !ok {
			continue
		}
		q.Subtotal += price
		q.TotalDuration += duration
	}
	if location == models.LocationHome {
		q.TravelFee = travelFee
	}
	q.TotalPrice = q.Subtotal + q.TravelFee
	return q
}
