package storage

import (
	"github.com/hushbook/hushbook/internal/model"
)

// PlaceRepo provides operations for the place collection.
type PlaceRepo struct {
	*Collection[*model.Place]
}

// NewPlaceRepo creates a new place repository.
func NewPlaceRepo(db *DB) *PlaceRepo {
	return &PlaceRepo{Collection: NewCollection[*model.Place](db, KeyPlaces)}
}
