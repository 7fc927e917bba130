package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	httppkg "github.com/minh-swinburne/ridelink/internal/pkg/http"
	"github.com/minh-swinburne/ridelink/internal/pkg/models"
)

// GeocodingGateway calls a Nominatim-compatible geocoding provider
type GeocodingGateway struct {
	cfg    models.GeocodingConfig
	client *httppkg.Client
}

// NewGeocodingGateway creates a new geocoding gateway
func NewGeocodingGateway(cfg models.GeocodingConfig) *GeocodingGateway {
	return &GeocodingGateway{
		cfg:    cfg,
		client: httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// AddressToCoordinates resolves a free-text address to coordinates.
func (g *GeocodingGateway) AddressToCoordinates(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []searchResult
	if err := g.get(ctx, "/search", params, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed longitude in geocoding response: %w", err)
	}

	return lat, lon, nil
}

// CoordinatesToAddress resolves coordinates to a human-readable address.
func (g *GeocodingGateway) CoordinatesToAddress(ctx context.Context, latitude, longitude float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("format", "json")

	var result searchResult
	if err := g.get(ctx, "/reverse", params, &result); err != nil {
		return "", err
	}
	if result.DisplayName == "" {
		return "", fmt.Errorf("no reverse geocoding result for (%f, %f)", latitude, longitude)
	}

	return result.DisplayName, nil
}

func (g *GeocodingGateway) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := fmt.Sprintf("%s%s?%s", g.client.BaseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build geocoding request: %w", err)
	}
	if g.cfg.APIKey != "" {
		req.Header.Set("X-Api-Key", g.cfg.APIKey)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	return nil
}
