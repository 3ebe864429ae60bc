// Package core ties the engine together: it owns the published store and the
// build-then-serve lifecycle.
package core

import (
	"sync/atomic"

	"github.com/xyian/lorebase/internal/core/store"
)

// Catalog publishes a fully built store to readers with a single atomic
// pointer swap. Ingestion and inference run against a store off to the side;
// readers of Active never observe a partially indexed state. The store itself
// has no locks, so the discipline is: never mutate a store after publishing.
type Catalog struct {
	active atomic.Pointer[store.Store]
}

func NewCatalog() *Catalog {
	c := &Catalog{}
	c.active.Store(store.New())
	return c
}

// Active returns the currently published store. Safe for concurrent readers.
func (c *Catalog) Active() *store.Store {
	return c.active.Load()
}

// Publish swaps in a new store as the active snapshot.
func (c *Catalog) Publish(s *store.Store) {
	c.active.Store(s)
}

// Rebuild constructs a fresh store via build and publishes it only when the
// build succeeds; a failed build leaves the previous snapshot serving.
func (c *Catalog) Rebuild(build func(*store.Store) error) error {
	next := store.New()
	if err := build(next); err != nil {
		return err
	}
	c.Publish(next)
	return nil
}
