package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"bellavie/models"
	"bellavie/services/booking"
	"bellavie/utils"
)

// BookingFlowParams carries the flow's inputs, normally gathered over several
// screens.
type BookingFlowParams struct {
	ProviderID   string
	ProviderKind models.ProviderKind
	PrimaryID    string
	AdditionalID []string
	Location     models.LocationType
	Address      string
	Date         string // "2006-01-02"
	Slot         string // "HH:MM"; empty shows available slots and stops
	Notes        string
}

// BookingFlow runs the composition flow: resolve the provider's catalogue,
// build the selection, show slots, quote, and submit.
func (a *App) BookingFlow(ctx context.Context, p BookingFlowParams) error {
	provider, err := a.fetchProvider(ctx, p.ProviderKind, p.ProviderID)
	if err != nil {
		return err
	}
	services, err := a.Feed.Services("").Get(ctx)
	if err != nil {
		return err
	}

	catalog := booking.NewCatalog(*provider, services)
	sel := booking.NewSelection(p.PrimaryID)
	for _, id := range p.AdditionalID {
		sel.Toggle(id)
	}

	slots, err := a.Booking.Slots(ctx, p.ProviderID, p.Date)
	if err != nil {
		return err
	}
	if p.Slot == "" {
		fmt.Fprintf(a.Out, "%s %s: %s\n", provider.DisplayName, p.Date, strings.Join(slots, " "))
		return nil
	}
	if !slices.Contains(slots, p.Slot) {
		return fmt.Errorf("slot %s is not available on %s", p.Slot, p.Date)
	}

	quote := a.Booking.Quote(sel, catalog, p.Location)
	fmt.Fprintf(a.Out, "%s: %s\n", a.Bundle.T("booking.subtotal"), utils.FormatXAF(quote.Subtotal))
	fmt.Fprintf(a.Out, "%s: %s\n", a.Bundle.T("booking.travel_fee"), utils.FormatXAF(quote.TravelFee))
	fmt.Fprintf(a.Out, "%s: %s\n", a.Bundle.T("booking.total"), utils.FormatXAF(quote.TotalPrice))
	fmt.Fprintf(a.Out, "%s: %s\n", a.Bundle.T("booking.duration"), utils.FormatDuration(quote.TotalDuration))

	created, err := a.Booking.Submit(ctx, booking.SubmitRequest{
		Selection: sel,
		Catalog:   catalog,
		Location:  p.Location,
		Address:   p.Address,
		Date:      p.Date,
		Slot:      p.Slot,
		Notes:     p.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "%s (#%s, %s)\n", a.Bundle.T("booking.confirmed"), created.ID, created.Status)
	return nil
}

// MyBookings lists the caller's bookings.
func (a *App) MyBookings(ctx context.Context, status models.BookingStatus) error {
	bookings, err := a.API.ListBookings(ctx, status)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		fmt.Fprintf(a.Out, "%-12s %s %-10s %10s  %s\n",
			b.ID, b.ScheduledAt.Format("2006-01-02 15:04"), b.Status,
			utils.FormatXAF(b.Total), b.ProviderID())
	}
	return nil
}

func (a *App) fetchProvider(ctx context.Context, kind models.ProviderKind, id string) (*models.Provider, error) {
	if kind == models.ProviderSalon {
		return a.API.GetSalon(ctx, id)
	}
	return a.API.GetTherapist(ctx, id)
}
