package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bellavie/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestClientDecodesList(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services", r.URL.Path)
		assert.Equal(t, "cat-hair", r.URL.Query().Get("category_id"))
		json.NewEncoder(w).Encode([]models.Service{{ID: "svc-1", BasePrice: 5000}})
	})

	services, err := client.ListServices(context.Background(), "cat-hair")
	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "svc-1", services[0].ID)
}

func TestClientErrorTaxonomy(t *testing.T) {
	cases := []struct {
		status   int
		sentinel error
	}{
		{http.StatusUnauthorized, ErrNotAuthenticated},
		{http.StatusForbidden, ErrNotAuthenticated},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrValidation},
		{http.StatusUnprocessableEntity, ErrValidation},
	}
	for _, tc := range cases {
		client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(ErrorResponse{Message: "nope"})
		})

		_, err := client.ListChats(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, tc.sentinel, "status %d", tc.status)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.status, apiErr.Status)
		assert.Equal(t, "nope", apiErr.Message)
	}
}

func TestClientServerErrorIsNotAClassifiedClass(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListChats(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotAuthenticated)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClientPostsJSONBody(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req models.BookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ther-1", req.TherapistID)
		json.NewEncoder(w).Encode(models.Booking{ID: "bk-1", Status: models.BookingPending})
	})

	created, err := client.CreateBooking(context.Background(), models.BookingRequest{
		TherapistID:  "ther-1",
		LocationType: models.LocationSalon,
		Date:         "2026-09-01",
		Slot:         "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", created.ID)
}

func TestClientHonoursContextCancel(t *testing.T) {
	client := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListChats(ctx)
	assert.Error(t, err)
}
