package app

import (
	"context"
	"fmt"

	"bellavie/models"
)

// Profile renders the contractor's own profile.
func (a *App) Profile(ctx context.Context) error {
	p, err := a.API.GetContractorProfile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s (%s)  %s, %s\n", p.DisplayName, p.Kind, p.City, p.Region)
	if p.Bio != "" {
		fmt.Fprintln(a.Out, p.Bio)
	}
	fmt.Fprintf(a.Out, "%.1f★ (%d)  verified=%t  home visits=%t\n",
		p.Rating, p.ReviewCount, p.Verified, p.HomeVisits)
	for _, pkg := range p.Packages {
		fmt.Fprintf(a.Out, "  package %-12s %s\n", pkg.ID, a.Bundle.Pick(pkg.NameEn, pkg.NameFr))
	}
	return nil
}

// UpdateProfile applies the edited fields and prints the updated profile line.
func (a *App) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) error {
	if err := a.Validate.Struct(upd); err != nil {
		return err
	}
	p, err := a.API.UpdateContractorProfile(ctx, upd)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s  %s, %s\n", p.DisplayName, p.City, p.Region)
	return nil
}
