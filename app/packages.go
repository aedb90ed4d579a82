package app

import (
	"context"
	"fmt"

	"bellavie/models"
	"bellavie/utils"
)

// ListPackages prints the contractor's service packages.
func (a *App) ListPackages(ctx context.Context) error {
	p, err := a.API.GetContractorProfile(ctx)
	if err != nil {
		return err
	}
	for _, pkg := range p.Packages {
		fmt.Fprintf(a.Out, "%-12s %-24s %10s %-6s  %d services\n",
			pkg.ID, a.Bundle.Pick(pkg.NameEn, pkg.NameFr),
			utils.FormatXAF(pkg.Price), utils.FormatDuration(pkg.Duration),
			len(pkg.ServiceIDs))
	}
	return nil
}

// AddPackage validates and creates a service package.
func (a *App) AddPackage(ctx context.Context, in models.PackageInput) error {
	if err := a.Validate.Struct(in); err != nil {
		a.printValidationErrors(err)
		return err
	}
	pkg, err := a.API.CreatePackage(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s  %s\n", pkg.ID, a.Bundle.Pick(pkg.NameEn, pkg.NameFr))
	return nil
}

// ReplacePackage validates and replaces an existing package.
func (a *App) ReplacePackage(ctx context.Context, id string, in models.PackageInput) error {
	if err := a.Validate.Struct(in); err != nil {
		a.printValidationErrors(err)
		return err
	}
	pkg, err := a.API.UpdatePackage(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s  %s\n", pkg.ID, a.Bundle.Pick(pkg.NameEn, pkg.NameFr))
	return nil
}

// RemovePackage deletes a package.
func (a *App) RemovePackage(ctx context.Context, id string) error {
	if err := a.API.DeletePackage(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%s deleted\n", id)
	return nil
}
