package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/civishield/civi-shield/backend/internal/config"
)

// Place is a resolved city/state pair.
type Place struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// Geocoder resolves coordinates to a Place.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (Place, error)
}

// OpenCageClient reverse-geocodes through the OpenCage JSON API.
type OpenCageClient struct {
	cfg    config.GeocodingConfig
	client *http.Client
}

// NewOpenCageClient creates the geocoding client from configuration.
func NewOpenCageClient(cfg config.GeocodingConfig) *OpenCageClient {
	return &OpenCageClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		Components struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
		} `json:"components"`
	} `json:"results"`
}

// Reverse looks up lat/lng and extracts the first result's locality,
// preferring city, then town, then village.
func (c *OpenCageClient) Reverse(ctx context.Context, lat, lng float64) (Place, error) {
	query := url.Values{}
	query.Set("key", c.cfg.APIKey)
	query.Set("q", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocode endpoint returned status %d", resp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Place{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return Place{}, fmt.Errorf("geocode response contained no results")
	}

	components := parsed.Results[0].Components
	city := components.City
	if city == "" {
		city = components.Town
	}
	if city == "" {
		city = components.Village
	}
	if city == "" {
		return Place{}, fmt.Errorf("geocode result contained no locality")
	}

	return Place{City: city, State: components.State}, nil
}
