package app

import (
	"context"
	"fmt"
)

// AddressSearch renders forward geocoding results for the home-visit address
// picker.
func (a *App) AddressSearch(ctx context.Context, query string) error {
	places, err := a.Geocode.Search(ctx, query, 5)
	if err != nil {
		return err
	}
	for _, p := range places {
		fmt.Fprintf(a.Out, "%s,%s  %s\n", p.Lat, p.Lon, p.DisplayName)
	}
	return nil
}

// WhereAmI renders the reverse lookup for a coordinate pair.
func (a *App) WhereAmI(ctx context.Context, lat, lon float64) error {
	place, err := a.Geocode.Reverse(ctx, lat, lon)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.Out, place.DisplayName)
	return nil
}
