package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyian/lorebase/internal/core/store"
)

func TestCatalogStartsEmpty(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, 0, c.Active().Stats().Entities)
}

func TestCatalogRebuildPublishesOnSuccess(t *testing.T) {
	c := NewCatalog()

	err := c.Rebuild(func(s *store.Store) error {
		s.AddEntity("e1", store.EntityData{Name: "Meteor"})
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, c.Active().Stats().Entities)
}

func TestCatalogRebuildKeepsOldSnapshotOnFailure(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Rebuild(func(s *store.Store) error {
		s.AddEntity("keep", store.EntityData{})
		return nil
	}))
	previous := c.Active()

	err := c.Rebuild(func(s *store.Store) error {
		s.AddEntity("discard", store.EntityData{})
		return errors.New("bad source data")
	})

	require.Error(t, err)
	assert.Same(t, previous, c.Active())
}
