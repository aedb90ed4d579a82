package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bellavie/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSendsRequiredParameters(t *testing.T) {
	var gotQuery map[string]string
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		gotAgent = r.Header.Get("User-Agent")
		gotQuery = map[string]string{
			"q":            r.URL.Query().Get("q"),
			"format":       r.URL.Query().Get("format"),
			"countrycodes": r.URL.Query().Get("countrycodes"),
		}
		json.NewEncoder(w).Encode([]Place{{DisplayName: "Douala, Cameroun", Lat: "4.0511", Lon: "9.7679"}})
	}))
	defer srv.Close()

	hc := &http.Client{Transport: middleware.Chain(nil, middleware.UserAgent("Bellavie/1.0 (test)"))}
	client := NewClient(srv.URL, hc)

	places, err := client.Search(context.Background(), "Akwa, Douala", 5)
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, "Bellavie/1.0 (test)", gotAgent)
	assert.Equal(t, "Akwa, Douala", gotQuery["q"])
	assert.Equal(t, "jsonv2", gotQuery["format"])
	assert.Equal(t, "cm", gotQuery["countrycodes"])

	lat, lon, err := places[0].Coordinates()
	require.NoError(t, err)
	assert.InDelta(t, 4.0511, lat, 1e-6)
	assert.InDelta(t, 9.7679, lon, 1e-6)
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "3.848", r.URL.Query().Get("lat"))
		assert.Equal(t, "11.5021", r.URL.Query().Get("lon"))
		json.NewEncoder(w).Encode(Place{DisplayName: "Yaoundé, Cameroun"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	place, err := client.Reverse(context.Background(), 3.848, 11.5021)
	require.NoError(t, err)
	assert.Equal(t, "Yaoundé, Cameroun", place.DisplayName)
}

func TestSearchRejectsBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.Client())
	_, err := client.Search(context.Background(), "Douala", 5)
	assert.Error(t, err)
}
