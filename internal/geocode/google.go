package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/hushbook/hushbook/internal/config"
	"github.com/hushbook/hushbook/internal/logging"
	"github.com/hushbook/hushbook/internal/model"
)

// GoogleResolver resolves addresses through the Google Maps Geocoding API.
type GoogleResolver struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

// NewGoogleResolver creates a resolver from the runtime configuration.
func NewGoogleResolver(cfg config.GeocodeConfig) *GoogleResolver {
	return &GoogleResolver{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
	}
}

// FromConfig returns the configured resolver: Google when an API key is set,
// otherwise Nop.
func FromConfig(cfg config.GeocodeConfig) Resolver {
	if cfg.APIKey == "" {
		return Nop{}
	}
	return NewGoogleResolver(cfg)
}

// geocodeResponse mirrors the slice of the API response we read.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Resolve geocodes the address. No retries: a failed attempt is a terminal
// "no coordinates" outcome for this save.
func (g *GoogleResolver) Resolve(ctx context.Context, address string) (model.Coordinates, bool) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		logging.Debug("geocode request build failed", "error", err)
		return model.Coordinates{}, false
	}

	resp, err := g.client.Do(req)
	if err != nil {
		logging.Debug("geocode request failed", "error", err)
		return model.Coordinates{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Debug("geocode request rejected", "status", resp.StatusCode)
		return model.Coordinates{}, false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		logging.Debug("geocode response read failed", "error", err)
		return model.Coordinates{}, false
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logging.Debug("geocode response malformed", "error", err)
		return model.Coordinates{}, false
	}

	if len(parsed.Results) == 0 {
		logging.Debug("geocode found no results", "status", parsed.Status)
		return model.Coordinates{}, false
	}

	loc := parsed.Results[0].Geometry.Location
	return model.Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, true
}
