package booking

import (
	"context"
	"errors"
	"fmt"

	"bellavie/api"
	"bellavie/models"
)

// BookingService drives the booking flow: slot lookup, quote derivation and
// submission.
type BookingService interface {
	Slots(ctx context.Context, providerID, date string) ([]string, error)
	Quote(sel Selection, cat Catalog, location models.LocationType) Quote
	Submit(ctx context.Context, req SubmitRequest) (*models.Booking, error)
}

// SubmitRequest carries everything the confirm screen has gathered.
type SubmitRequest struct {
	Selection Selection
	Catalog   Catalog
	Location  models.LocationType
	Address   string
	Date      string // "2006-01-02"
	Slot      string // "HH:MM"
	Notes     string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	API       *api.Client
	SlotsFrom SlotSource
	TravelFee float64
}

func (s *DefaultBookingService) Slots(ctx context.Context, providerID, date string) ([]string, error) {
	return s.SlotsFrom.Slots(ctx, providerID, date)
}

func (s *DefaultBookingService) Quote(sel Selection, cat Catalog, location models.LocationType) Quote {
	return ComputeQuote(sel, cat, location, s.TravelFee)
}

// Submit builds the booking request from the selection and posts it. Line
// items carry the resolved prices so the server can flag stale quotes.
func (s *DefaultBookingService) Submit(ctx context.Context, req SubmitRequest) (*models.Booking, error) {
	if req.Date == "" || req.Slot == "" {
		return nil, errors.New("booking: date and slot are required")
	}
	if req.Location == models.LocationHome && req.Address == "" {
		return nil, errors.New("booking: home visits need an address")
	}

	var items []models.BookingItem
	appendItem := func(serviceID string, primary bool) {
		price, duration, ok := req.Catalog.Resolve(serviceID)
		if !ok {
			return
		}
		items = append(items, models.BookingItem{
			ServiceID: serviceID,
			Price:     price,
			Duration:  duration,
			Primary:   primary,
		})
	}
	appendItem(req.Selection.PrimaryID(), true)
	for _, id := range req.Selection.Additional() {
		appendItem(id, false)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("booking: no resolvable services in selection (primary %q)", req.Selection.PrimaryID())
	}

	payload := models.BookingRequest{
		Items:        items,
		LocationType: req.Location,
		Address:      req.Address,
		Date:         req.Date,
		Slot:         req.Slot,
		Notes:        req.Notes,
	}
	provider := req.Catalog.Provider()
	switch provider.Kind {
	case models.ProviderSalon:
		payload.SalonID = provider.ID
	default:
		payload.TherapistID = provider.ID
	}

	return s.API.CreateBooking(ctx, payload)
}
