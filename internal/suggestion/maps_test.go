package suggestion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReverseGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NotEmpty(t, r.URL.Query().Get("latlng"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]string{
				{"formatted_address": "1 Marina Blvd, Singapore"},
			},
		})
	}))
	defer srv.Close()

	g := NewMapsGeocoder(srv.URL, "test-key", time.Second)
	place, err := g.ReverseGeocode(context.Background(), 1.29, 103.85)
	require.NoError(t, err)
	require.Equal(t, "1 Marina Blvd, Singapore", place.Name)
	require.Equal(t, 1.29, place.Lat)
	require.Equal(t, 103.85, place.Lng)
}

func TestReverseGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"results": []any{}})
	}))
	defer srv.Close()

	g := NewMapsGeocoder(srv.URL, "test-key", time.Second)
	_, err := g.ReverseGeocode(context.Background(), 1.29, 103.85)
	require.Error(t, err)
}

func TestReverseGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewMapsGeocoder(srv.URL, "test-key", time.Second)
	_, err := g.ReverseGeocode(context.Background(), 1.29, 103.85)
	require.Error(t, err)
}
