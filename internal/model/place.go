package model

import (
	"fmt"
	"net/url"
	"strings"
)

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is a named location with an optional geocoded position.
// Latitude and Longitude are nil when geocoding never succeeded for the
// current address; that is a valid, permanent state.
type Place struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// EntityID returns the place's id.
func (p *Place) EntityID() string {
	return p.ID
}

// SetEntityID sets the place's id.
func (p *Place) SetEntityID(id string) {
	p.ID = id
}

// NewPlace creates a place with a fresh id and no coordinates.
func NewPlace(name, address string) *Place {
	return &Place{
		ID:      NewID(),
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
	}
}

// HasCoordinates reports whether the place was geocoded.
func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// SetCoordinates attaches a geocoded position.
func (p *Place) SetCoordinates(c Coordinates) {
	lat, lng := c.Latitude, c.Longitude
	p.Latitude = &lat
	p.Longitude = &lng
}

// ClearCoordinates drops the geocoded position, e.g. after an address change
// whose geocode attempt found nothing.
func (p *Place) ClearCoordinates() {
	p.Latitude = nil
	p.Longitude = nil
}

// MapsURL returns an OpenStreetMap link for the place, or an empty string
// when no coordinates are available.
func (p *Place) MapsURL() string {
	if !p.HasCoordinates() {
		return ""
	}
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%f&mlon=%f#map=16/%f/%f",
		*p.Latitude, *p.Longitude, *p.Latitude, *p.Longitude)
}

// SearchURL returns a maps search link for the place's address, usable even
// without coordinates.
func (p *Place) SearchURL() string {
	return "https://www.openstreetmap.org/search?query=" + url.QueryEscape(p.Address)
}
