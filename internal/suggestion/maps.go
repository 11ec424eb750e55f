package suggestion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// MapsGeocoder resolves coordinates via the geocoding API.
type MapsGeocoder struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewMapsGeocoder(baseURL, apiKey string, timeout time.Duration) *MapsGeocoder {
	return &MapsGeocoder{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

func (g *MapsGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (Place, error) {
	q := url.Values{}
	q.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("key", g.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Place{}, err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return Place{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocode: unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Place{}, err
	}
	if len(out.Results) == 0 {
		return Place{}, fmt.Errorf("geocode: no results")
	}
	return Place{Name: out.Results[0].FormattedAddress, Lat: lat, Lng: lng}, nil
}
