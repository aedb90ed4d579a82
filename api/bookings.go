package api

import (
	"context"
	"fmt"
	"net/url"

	"bellavie/models"
)

// CreateBooking submits a booking request. Conflict detection and price
// validation happen server-side at submission time.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	var out models.Booking
	if err := c.post(ctx, "/bookings", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBookings returns the caller's bookings, newest first.
func (c *Client) ListBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	var out []models.Booking
	if err := c.get(ctx, "/bookings", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBooking fetches a single booking.
func (c *Client) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var out models.Booking
	if err := c.get(ctx, "/bookings/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelBooking cancels a pending or confirmed booking.
func (c *Client) CancelBooking(ctx context.Context, id string) error {
	path := fmt.Sprintf("/bookings/%s/cancel", url.PathEscape(id))
	return c.post(ctx, path, nil, nil)
}

// GetAvailability returns a provider's free slots ("HH:MM") for a date.
// Callers should go through booking.SlotSource, which layers the fallback
// policy on top of this call.
func (c *Client) GetAvailability(ctx context.Context, providerID, date string) ([]string, error) {
	q := url.Values{}
	q.Set("provider_id", providerID)
	q.Set("date", date)
	var out []string
	if err := c.get(ctx, "/availability", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
