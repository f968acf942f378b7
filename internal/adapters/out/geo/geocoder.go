// Package geo adapts the Google Maps web services to the geocoding and travel
// estimation ports. Both clients take an injectable base URL so tests can
// point them at a local server.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lastmile/internal/core/domain/model/kernel"
	"lastmile/internal/core/ports"
)

const defaultGeocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder resolves addresses through the Google Geocoding API.
type GoogleGeocoder struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGoogleGeocoder creates a geocoder client.
// An empty baseURL falls back to the public Google endpoint.
func NewGoogleGeocoder(apiKey, baseURL string) *GoogleGeocoder {
	if baseURL == "" {
		baseURL = defaultGeocodeBaseURL
	}
	return &GoogleGeocoder{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves the address to coordinates.
// Returns ports.ErrAddressNotFound when the API reports zero results.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (kernel.GeoPoint, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return kernel.GeoPoint{}, err
	}

	if payload.Status == "ZERO_RESULTS" || len(payload.Results) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("%w: %q", ports.ErrAddressNotFound, address)
	}
	if payload.Status != "OK" {
		return kernel.GeoPoint{}, fmt.Errorf("geocoding failed with status %s", payload.Status)
	}

	location := payload.Results[0].Geometry.Location
	return kernel.NewGeoPoint(location.Lat, location.Lng)
}
