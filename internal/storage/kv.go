package storage

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// Storage keys. These match the layout of the original mobile app so data
// exported from it maps one-to-one; do not rename them.
const (
	KeyAccessPassword = "app_password"
	KeyDuressPassword = "termination_password"
	KeyContacts       = "@contacts_list"
	KeyPlaces         = "places"
	KeyLanguage       = "language"
	KeyTheme          = "theme"
)

// GetString retrieves a string value by key. An absent key is not an error:
// it returns ("", false, nil).
func (d *DB) GetString(key string) (string, bool, error) {
	var value string
	found := false
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			found = true
			return nil
		})
	})
	if err != nil {
		return "", false, err
	}
	return value, found, nil
}

// SetString stores a string value under key.
func (d *DB) SetString(key, value string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Remove deletes a key. Removing an absent key is a no-op.
func (d *DB) Remove(key string) error {
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// HasKey checks if a key exists.
func (d *DB) HasKey(key string) (bool, error) {
	_, found, err := d.GetString(key)
	return found, err
}
