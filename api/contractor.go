package api

import (
	"context"
	"net/url"

	"bellavie/models"
)

// RegisterContractor submits a new therapist/salon registration. The returned
// provider starts unverified until the uploaded ID documents are reviewed.
func (c *Client) RegisterContractor(ctx context.Context, reg models.ContractorRegistration) (*models.Provider, error) {
	var out models.Provider
	if err := c.post(ctx, "/contractor/register", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContractorProfile returns the caller's own provider profile.
func (c *Client) GetContractorProfile(ctx context.Context) (*models.Provider, error) {
	var out models.Provider
	if err := c.get(ctx, "/contractor/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateContractorProfile applies profile edits.
func (c *Client) UpdateContractorProfile(ctx context.Context, upd models.ProfileUpdate) (*models.Provider, error) {
	var out models.Provider
	if err := c.put(ctx, "/contractor/profile", upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePackage adds a service package to the caller's profile.
func (c *Client) CreatePackage(ctx context.Context, in models.PackageInput) (*models.Package, error) {
	var out models.Package
	if err := c.post(ctx, "/contractor/packages", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePackage replaces an existing package.
func (c *Client) UpdatePackage(ctx context.Context, id string, in models.PackageInput) (*models.Package, error) {
	var out models.Package
	if err := c.put(ctx, "/contractor/packages/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePackage removes a package.
func (c *Client) DeletePackage(ctx context.Context, id string) error {
	return c.delete(ctx, "/contractor/packages/"+url.PathEscape(id))
}
