package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hushbook/hushbook/internal/logging"
	"github.com/hushbook/hushbook/internal/model"
)

// ErrCorruptData is returned by Verify when a stored collection blob is not
// valid JSON. Load itself treats corrupt data as an empty collection.
var ErrCorruptData = errors.New("stored collection data is corrupt")

// Collection stores an ordered list of entities as a single JSON blob under
// one storage key. Every mutation re-serializes and persists the whole list.
// Insertion order is preserved; id uniqueness is the producer's concern.
type Collection[T model.Entity] struct {
	db     *DB
	key    string
	items  []T
	loaded bool
}

// NewCollection creates a collection bound to the given storage key.
func NewCollection[T model.Entity](db *DB, key string) *Collection[T] {
	return &Collection[T]{db: db, key: key}
}

// Key returns the storage key this collection persists under.
func (c *Collection[T]) Key() string {
	return c.key
}

func (c *Collection[T]) load() error {
	if c.loaded {
		return nil
	}

	raw, found, err := c.db.GetString(c.key)
	if err != nil {
		return err
	}
	if found && raw != "" {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			// Corrupt blob: start from an empty list rather than failing
			// every subsequent operation. The damaged value is overwritten
			// on the next mutation.
			logging.Warn("discarding corrupt collection data",
				"key", c.key, "error", err)
			items = nil
		}
		c.items = items
	}

	c.loaded = true
	return nil
}

func (c *Collection[T]) save() error {
	items := c.items
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", c.key, err)
	}
	return c.db.SetString(c.key, string(data))
}

// Load returns the current list in insertion order. An absent key yields an
// empty list.
func (c *Collection[T]) Load() ([]T, error) {
	if err := c.load(); err != nil {
		return nil, err
	}

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out, nil
}

// Verify reports ErrCorruptData when the stored blob exists but is not a
// valid JSON list. It never modifies the stored value.
func (c *Collection[T]) Verify() error {
	raw, found, err := c.db.GetString(c.key)
	if err != nil {
		return err
	}
	if !found || raw == "" {
		return nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return fmt.Errorf("%w: key %s: %v", ErrCorruptData, c.key, err)
	}
	return nil
}

// Find returns the entity with the given id.
func (c *Collection[T]) Find(id string) (T, bool, error) {
	var zero T
	if err := c.load(); err != nil {
		return zero, false, err
	}

	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Count returns the number of stored entities.
func (c *Collection[T]) Count() (int, error) {
	if err := c.load(); err != nil {
		return 0, err
	}
	return len(c.items), nil
}

// Add appends an entity and persists the full list. An entity without an id
// is assigned a fresh one.
func (c *Collection[T]) Add(item T) error {
	if err := c.load(); err != nil {
		return err
	}

	if item.EntityID() == "" {
		item.SetEntityID(model.NewID())
	}
	c.items = append(c.items, item)
	return c.save()
}

// Update replaces the entity with the matching id. Unknown ids are a silent
// no-op and the stored list is left untouched.
func (c *Collection[T]) Update(id string, item T) error {
	if err := c.load(); err != nil {
		return err
	}

	for i, existing := range c.items {
		if existing.EntityID() == id {
			item.SetEntityID(id)
			c.items[i] = item
			return c.save()
		}
	}
	return nil
}

// Remove deletes the entity with the matching id. Unknown ids are a silent
// no-op and the stored list is left untouched.
func (c *Collection[T]) Remove(id string) error {
	if err := c.load(); err != nil {
		return err
	}

	for i, existing := range c.items {
		if existing.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.save()
		}
	}
	return nil
}

// ReplaceAll overwrites the entire collection with the given list.
func (c *Collection[T]) ReplaceAll(items []T) error {
	if err := c.load(); err != nil {
		return err
	}

	c.items = make([]T, len(items))
	copy(c.items, items)
	return c.save()
}

// Clear removes every entity from the collection.
func (c *Collection[T]) Clear() error {
	return c.ReplaceAll(nil)
}
