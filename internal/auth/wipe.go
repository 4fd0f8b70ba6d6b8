package auth

import (
	"github.com/hushbook/hushbook/internal/model"
	"github.com/hushbook/hushbook/internal/storage"
)

// Wipe filters the contact collection down to the entries flagged to survive
// a duress login, preserving their relative order, and persists the result as
// the full replacement. Places and preferences are never touched.
func Wipe(contacts *storage.ContactRepo) error {
	all, err := contacts.Load()
	if err != nil {
		return err
	}

	kept := make([]*model.Contact, 0, len(all))
	for _, c := range all {
		if c.KeepAfterWipe {
			kept = append(kept, c)
		}
	}

	return contacts.ReplaceAll(kept)
}
