// Package store holds every entity collection in process memory. Collections
// preserve insertion order, and all access goes through the typed service
// layer; nothing outside this module mutates a collection directly.
package store

import (
	"fmt"
	"sync"

	"github.com/glowtours/backoffice/internal/domain"
)

// Record is implemented by every entity held in a Collection.
type Record interface {
	// Key returns the record's unique id.
	Key() string
}

// Collection is a mutex-guarded, insertion-ordered set of records keyed by
// id. The zero value is not usable; create collections with NewCollection.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
	index map[string]int
}

// NewCollection creates an empty collection.
func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{index: make(map[string]int)}
}

// List returns a copy of the collection in insertion order.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the record with the given id.
// Returns domain.ErrNotFound if no record matches.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("record %q: %w", id, domain.ErrNotFound)
	}
	return c.items[i], nil
}

// Add appends a record. Ids are store-issued UUIDs so collisions indicate a
// caller bug; Add guards anyway and returns domain.ErrConflict on a
// duplicate id rather than silently appending a shadowed record.
func (c *Collection[T]) Add(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := item.Key()
	if _, exists := c.index[id]; exists {
		return fmt.Errorf("record %q already exists: %w", id, domain.ErrConflict)
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
	return nil
}

// Update replaces the record with the same id in place, keeping its position
// in insertion order. All fields are replaced atomically; there are no
// partial-patch semantics at this layer.
// Returns domain.ErrNotFound if no record matches, leaving the collection
// unchanged.
func (c *Collection[T]) Update(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := item.Key()
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("record %q: %w", id, domain.ErrNotFound)
	}
	c.items[i] = item
	return nil
}

// Remove deletes the record with the given id, preserving the order of the
// remaining records.
// Returns domain.ErrNotFound if no record matches, leaving the collection
// unchanged.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("record %q: %w", id, domain.ErrNotFound)
	}

	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Key()] = j
	}
	return nil
}

// Len returns the number of records in the collection.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
