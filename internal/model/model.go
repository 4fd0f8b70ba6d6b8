// Package model defines the domain models for Hushbook.
package model

import "github.com/google/uuid"

// Entity is the interface implemented by every record stored in a collection.
type Entity interface {
	// EntityID returns the unique id of this entity.
	EntityID() string
	// SetEntityID sets the unique id of this entity.
	SetEntityID(id string)
}

// NewID generates a fresh entity id. V7 UUIDs are time-ordered, so ids
// created in the same process run never collide and sort by creation time.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
