// Package geocode resolves free-text addresses to coordinates.
//
// Resolution is strictly best-effort: every failure mode (no API key,
// network error, malformed response, zero results) is the "no coordinates"
// outcome, never an error. Callers persist whatever comes back and must not
// treat absence as retryable.
package geocode

import (
	"context"

	"github.com/hushbook/hushbook/internal/model"
)

// Resolver turns an address into coordinates, best-effort.
type Resolver interface {
	// Resolve returns the coordinates for address and true on success, or a
	// zero value and false when no result could be obtained.
	Resolve(ctx context.Context, address string) (model.Coordinates, bool)
}

// Nop is a Resolver that never finds coordinates. Used when geocoding is not
// configured, and as a test double.
type Nop struct{}

// Resolve always reports no result.
func (Nop) Resolve(context.Context, string) (model.Coordinates, bool) {
	return model.Coordinates{}, false
}

// Static is a Resolver backed by a fixed address table, for tests.
type Static map[string]model.Coordinates

// Resolve looks the address up in the table.
func (s Static) Resolve(_ context.Context, address string) (model.Coordinates, bool) {
	c, ok := s[address]
	return c, ok
}
