// Package geocode talks to a Nominatim-compatible endpoint for address search
// and reverse lookup. The public service's usage policy requires an
// identifying User-Agent and at most one request per second; both are
// enforced by the http.Client handed in at the composition root
// (middleware.UserAgent + middleware.RateLimit).
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Place is one geocoding result.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Type        string `json:"type,omitempty"`
	Address     struct {
		Road    string `json:"road,omitempty"`
		Suburb  string `json:"suburb,omitempty"`
		City    string `json:"city,omitempty"`
		Town    string `json:"town,omitempty"`
		State   string `json:"state,omitempty"`
		Country string `json:"country,omitempty"`
	} `json:"address"`
}

// Coordinates parses the result's lat/lon strings.
func (p Place) Coordinates() (lat, lon float64, err error) {
	lat, err = strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: bad latitude %q", p.Lat)
	}
	lon, err = strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("geocode: bad longitude %q", p.Lon)
	}
	return lat, lon, nil
}

// Client queries the geocoding endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a geocoding client. hc must carry the User-Agent and
// rate-limit middleware.
func NewClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Search runs a forward address search, biased to Cameroon.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	if limit <= 0 {
		limit = 5
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("countrycodes", "cm")
	q.Set("limit", strconv.Itoa(limit))

	var places []Place
	if err := c.get(ctx, "/search", q, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse resolves coordinates to the nearest address.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")

	var place Place
	if err := c.get(ctx, "/reverse", q, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("geocode: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("geocode: failed to decode response: %w", err)
	}
	return nil
}
