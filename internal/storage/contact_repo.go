package storage

import (
	"github.com/hushbook/hushbook/internal/model"
)

// ContactRepo provides operations for the contact collection.
type ContactRepo struct {
	*Collection[*model.Contact]
}

// NewContactRepo creates a new contact repository.
func NewContactRepo(db *DB) *ContactRepo {
	return &ContactRepo{Collection: NewCollection[*model.Contact](db, KeyContacts)}
}

// AddAll appends every contact and persists once per entry, preserving the
// given order. Used by CSV import after the whole file has parsed cleanly.
func (r *ContactRepo) AddAll(contacts []*model.Contact) error {
	for _, contact := range contacts {
		if err := r.Add(contact); err != nil {
			return err
		}
	}
	return nil
}
