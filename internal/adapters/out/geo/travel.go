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

const defaultDistanceMatrixBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// GoogleTravelEstimator estimates road travel through the Google Distance
// Matrix API.
type GoogleTravelEstimator struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGoogleTravelEstimator creates a travel estimator client.
// An empty baseURL falls back to the public Google endpoint.
func NewGoogleTravelEstimator(apiKey, baseURL string) *GoogleTravelEstimator {
	if baseURL == "" {
		baseURL = defaultDistanceMatrixBaseURL
	}
	return &GoogleTravelEstimator{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate returns the road travel estimate from origin to destination.
func (g *GoogleTravelEstimator) Estimate(ctx context.Context, origin, destination kernel.GeoPoint) (ports.Travel, error) {
	query := url.Values{}
	query.Set("origins", fmt.Sprintf("%f,%f", origin.Lat(), origin.Lng()))
	query.Set("destinations", fmt.Sprintf("%f,%f", destination.Lat(), destination.Lng()))
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return ports.Travel{}, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.Travel{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.Travel{}, fmt.Errorf("travel estimate request failed with status %d", resp.StatusCode)
	}

	var payload distanceMatrixResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return ports.Travel{}, err
	}

	if payload.Status != "OK" {
		return ports.Travel{}, fmt.Errorf("travel estimate failed with status %s", payload.Status)
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return ports.Travel{}, fmt.Errorf("travel estimate returned no elements")
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return ports.Travel{}, fmt.Errorf("no route between points: %s", element.Status)
	}

	return ports.Travel{
		DistanceMeters:  element.Distance.Value,
		DurationSeconds: element.Duration.Value,
	}, nil
}
