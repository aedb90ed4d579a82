package api

import (
	"context"
	"net/url"

	"bellavie/models"
)

// ListCategories returns all service categories.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListServices returns services, optionally restricted to a category.
func (c *Client) ListServices(ctx context.Context, categoryID string) ([]models.Service, error) {
	q := url.Values{}
	if categoryID != "" {
		q.Set("category_id", categoryID)
	}
	var out []models.Service
	if err := c.get(ctx, "/services", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetService fetches a single service.
func (c *Client) GetService(ctx context.Context, id string) (*models.Service, error) {
	var out models.Service
	if err := c.get(ctx, "/services/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
