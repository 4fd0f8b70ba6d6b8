package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushbook/hushbook/internal/config"
	"github.com/hushbook/hushbook/internal/model"
)

func newResolver(t *testing.T, handler http.HandlerFunc) *GoogleResolver {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewGoogleResolver(config.GeocodeConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		Timeout:  2 * time.Second,
	})
}

// =============================================================================
// GoogleResolver Tests
// =============================================================================

func TestResolveSuccess(t *testing.T) {
	resolver := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1 Main Street", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{"geometry": {"location": {"lat": 51.5074, "lng": -0.1278}}}]
		}`))
	})

	coords, ok := resolver.Resolve(context.Background(), "1 Main Street")
	require.True(t, ok)
	assert.InDelta(t, 51.5074, coords.Latitude, 1e-9)
	assert.InDelta(t, -0.1278, coords.Longitude, 1e-9)
}

func TestResolveFirstResultWins(t *testing.T) {
	resolver := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": 1, "lng": 2}}},
				{"geometry": {"location": {"lat": 3, "lng": 4}}}
			]
		}`))
	})

	coords, ok := resolver.Resolve(context.Background(), "ambiguous")
	require.True(t, ok)
	assert.InDelta(t, 1.0, coords.Latitude, 1e-9)
	assert.InDelta(t, 2.0, coords.Longitude, 1e-9)
}

func TestResolveZeroResults(t *testing.T) {
	resolver := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, ok := resolver.Resolve(context.Background(), "nowhere")
	assert.False(t, ok)
}

func TestResolveMalformedResponse(t *testing.T) {
	resolver := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, ok := resolver.Resolve(context.Background(), "anywhere")
	assert.False(t, ok)
}

func TestResolveServerError(t *testing.T) {
	resolver := newResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, ok := resolver.Resolve(context.Background(), "anywhere")
	assert.False(t, ok)
}

func TestResolveServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	resolver := NewGoogleResolver(config.GeocodeConfig{
		Endpoint: endpoint,
		APIKey:   "test-key",
		Timeout:  time.Second,
	})

	_, ok := resolver.Resolve(context.Background(), "anywhere")
	assert.False(t, ok)
}

// =============================================================================
// Nop / Static / FromConfig Tests
// =============================================================================

func TestNopNeverResolves(t *testing.T) {
	_, ok := Nop{}.Resolve(context.Background(), "1 Main Street")
	assert.False(t, ok)
}

func TestStaticResolver(t *testing.T) {
	static := Static{
		"Home": {Latitude: 1, Longitude: 2},
	}

	coords, ok := static.Resolve(context.Background(), "Home")
	require.True(t, ok)
	assert.Equal(t, model.Coordinates{Latitude: 1, Longitude: 2}, coords)

	_, ok = static.Resolve(context.Background(), "Unknown")
	assert.False(t, ok)
}

func TestFromConfigWithoutKey(t *testing.T) {
	resolver := FromConfig(config.GeocodeConfig{Timeout: time.Second})
	assert.IsType(t, Nop{}, resolver)
}

func TestFromConfigWithKey(t *testing.T) {
	resolver := FromConfig(config.GeocodeConfig{
		Endpoint: config.DefaultGeocodeEndpoint,
		APIKey:   "k",
		Timeout:  time.Second,
	})
	assert.IsType(t, &GoogleResolver{}, resolver)
}
