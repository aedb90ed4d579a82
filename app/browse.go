package app

import (
	"context"
	"fmt"

	"bellavie/api"
	"bellavie/utils"
)

// Categories renders the browse entry screen.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.Feed.Categories().Get(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		fmt.Fprintf(a.Out, "%-12s %s\n", c.ID, a.Bundle.Pick(c.NameEn, c.NameFr))
	}
	return nil
}

// Services renders the service list for a category.
func (a *App) Services(ctx context.Context, categoryID string) error {
	services, err := a.Feed.Services(categoryID).Get(ctx)
	if err != nil {
		return err
	}
	for _, s := range services {
		fmt.Fprintf(a.Out, "%-12s %-32s %10s  %-6s  %d %s\n",
			s.ID,
			a.Bundle.Pick(s.NameEn, s.NameFr),
			utils.FormatXAF(s.BasePrice),
			utils.FormatDuration(s.Duration),
			s.ProviderCount,
			"providers")
	}
	return nil
}

// Providers renders therapists and salons offering a service.
func (a *App) Providers(ctx context.Context, serviceID, city string) error {
	filter := api.ProviderFilter{ServiceID: serviceID, City: city}

	therapists, err := a.Feed.Therapists(filter).Get(ctx)
	if err != nil {
		return err
	}
	salons, err := a.Feed.Salons(filter).Get(ctx)
	if err != nil {
		return err
	}

	for _, p := range append(therapists, salons...) {
		fmt.Fprintf(a.Out, "%-12s [%-9s] %-28s %s  %.1f★ (%d)\n",
			p.ID, p.Kind, p.DisplayName, p.City, p.Rating, p.ReviewCount)
	}
	return nil
}
