package api

import (
	"context"
	"fmt"
	"net/url"

	"bellavie/models"
)

// ProviderFilter narrows provider listings.
type ProviderFilter struct {
	City       string
	CategoryID string
	ServiceID  string
	Query      string
}

func (f ProviderFilter) values() url.Values {
	q := url.Values{}
	if f.City != "" {
		q.Set("city", f.City)
	}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.ServiceID != "" {
		q.Set("service_id", f.ServiceID)
	}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	return q
}

// ListTherapists returns therapists matching the filter.
func (c *Client) ListTherapists(ctx context.Context, filter ProviderFilter) ([]models.Provider, error) {
	var out []models.Provider
	if err := c.get(ctx, "/therapists", filter.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSalons returns salons matching the filter.
func (c *Client) ListSalons(ctx context.Context, filter ProviderFilter) ([]models.Provider, error) {
	var out []models.Provider
	if err := c.get(ctx, "/salons", filter.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTherapist fetches one therapist with its full service catalogue.
func (c *Client) GetTherapist(ctx context.Context, id string) (*models.Provider, error) {
	var out models.Provider
	if err := c.get(ctx, "/therapists/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSalon fetches one salon with its full service catalogue.
func (c *Client) GetSalon(ctx context.Context, id string) (*models.Provider, error) {
	var out models.Provider
	if err := c.get(ctx, "/salons/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RevealPhone requests the provider's phone number. The backend debits the
// requesting provider's credits and records a PHONE_REVEAL transaction.
func (c *Client) RevealPhone(ctx context.Context, providerID string) (*models.PhoneReveal, error) {
	var out models.PhoneReveal
	path := fmt.Sprintf("/providers/%s/phone-reveal", url.PathEscape(providerID))
	if err := c.post(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
