package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyian/lorebase/internal/core/model"
)

func TestAddEntityDefaults(t *testing.T) {
	s := New()
	s.Now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	e := s.AddEntity("griffin_claw", EntityData{Content: "Multi-hit claws."})

	assert.Equal(t, "griffin_claw", e.ID)
	assert.Equal(t, model.TypeConcept, e.Type)
	assert.Equal(t, "griffin_claw", e.Name)
	assert.Equal(t, 1.0, e.Confidence)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), e.Timestamp)
}

func TestAddEntitySecondWriteWins(t *testing.T) {
	s := New()
	s.AddEntity("e1", EntityData{Name: "First", Confidence: 0.4})
	s.AddEntity("e1", EntityData{Name: "Second", Confidence: 0.9})

	assert.Equal(t, 1, s.Stats().Entities)
	e, ok := s.Entity("e1")
	require.True(t, ok)
	assert.Equal(t, "Second", e.Name)
	assert.Equal(t, 0.9, e.Confidence)
}

func TestAddRelationshipDanglingRejected(t *testing.T) {
	s := New()

	_, err := s.AddRelationship("ghost", "also_ghost", model.RelRelatedTo, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDanglingReference)
	assert.Equal(t, 0, s.Stats().Relationships)
}

func TestAddRelationshipIdempotent(t *testing.T) {
	s := New()
	s.AddEntity("a", EntityData{})
	s.AddEntity("b", EntityData{})

	first, err := s.AddRelationship("a", "b", model.RelSynergizesWith, map[string]any{"confidence": 0.8})
	require.NoError(t, err)
	second, err := s.AddRelationship("a", "b", model.RelSynergizesWith, map[string]any{"confidence": 0.9})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, s.Stats().Relationships)
	// last write updates properties
	assert.Equal(t, 0.9, s.Relationships()[0].Confidence())
}

func TestFindRelatedBothDirections(t *testing.T) {
	s := New()
	s.AddEntity("weapon", EntityData{Name: "Griffin Claw"})
	s.AddEntity("hero", EntityData{Name: "Thor"})
	s.AddEntity("mode", EntityData{Name: "Arena"})

	_, err := s.AddRelationship("weapon", "hero", model.RelRecommendedFor, nil)
	require.NoError(t, err)
	_, err = s.AddRelationship("mode", "hero", model.RelRelatedTo, nil)
	require.NoError(t, err)

	related := s.FindRelated("hero", "", 0)
	require.Len(t, related, 2)
	// insertion order: outgoing edge from weapon first, then mode
	assert.Equal(t, "weapon", related[0].Entity.ID)
	assert.Equal(t, model.RelRecommendedFor, related[0].Relationship.Type)
	assert.Equal(t, "mode", related[1].Entity.ID)
}

func TestFindRelatedTypeFilterAndLimit(t *testing.T) {
	s := New()
	s.AddEntity("w", EntityData{})
	for _, id := range []string{"c1", "c2", "c3"} {
		s.AddEntity(id, EntityData{})
		_, err := s.AddRelationship("w", id, model.RelRecommendedFor, nil)
		require.NoError(t, err)
	}
	_, err := s.AddRelationship("w", "c1", model.RelRelatedTo, nil)
	require.NoError(t, err)

	filtered := s.FindRelated("w", model.RelRecommendedFor, 2)
	require.Len(t, filtered, 2)
	assert.Equal(t, "c1", filtered[0].Entity.ID)
	assert.Equal(t, "c2", filtered[1].Entity.ID)
}

func TestCategories(t *testing.T) {
	s := New()
	s.AddEntity("meteor", EntityData{Category: "runes"})
	s.AddEntity("sprite", EntityData{Category: "runes"})
	// duplicate membership is a no-op
	require.NoError(t, s.AddToCategory("runes", "meteor"))
	require.NoError(t, s.AddToCategory("pvp", "meteor"))

	assert.Equal(t, []string{"meteor", "sprite"}, s.CategoryMembers("runes"))
	assert.Equal(t, []string{"meteor"}, s.CategoryMembers("pvp"))
	assert.Equal(t, 2, s.Stats().Categories)

	err := s.AddToCategory("runes", "ghost")
	assert.ErrorIs(t, err, ErrDanglingReference)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := New()
	s.AddEntity("w1", EntityData{
		Type:       model.TypeWeapon,
		Name:       "Oracle Staff",
		Content:    "Tracking orbs, strong in pve",
		Properties: map[string]any{"tier": "S"},
		Confidence: 0.85,
		Source:     "wiki",
		Category:   "weapons",
	})
	s.AddEntity("c1", EntityData{Type: model.TypeCharacter, Name: "Rolla"})
	_, err := s.AddRelationship("w1", "c1", model.RelRecommendedFor, map[string]any{"confidence": 0.8})
	require.NoError(t, err)

	snap := s.Export()
	assert.Equal(t, model.SnapshotVersion, snap.Version)

	restored := New()
	restored.Import(snap)

	assert.Equal(t, s.Stats(), restored.Stats())
	assert.Equal(t, s.Entities(), restored.Entities())
	assert.Equal(t, s.Relationships(), restored.Relationships())
	assert.Equal(t, []string{"w1"}, restored.CategoryMembers("weapons"))
}

func TestImportIsDestructiveReplace(t *testing.T) {
	s := New()
	s.AddEntity("old", EntityData{Category: "stale"})

	s.Import(model.Snapshot{
		Version:  model.SnapshotVersion,
		Entities: []model.Entity{{ID: "new", Type: model.TypeConcept, Name: "new", Confidence: 1.0}},
	})

	_, ok := s.Entity("old")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Stats().Entities)
	assert.Empty(t, s.CategoryMembers("stale"))
}

func TestTermIndex(t *testing.T) {
	s := New()
	s.AddEntity("gc", EntityData{
		Type:       model.TypeWeapon,
		Name:       "Griffin Claw",
		Properties: map[string]any{"tier": "mythic", "dps": 420.0},
	})

	// name tokens, type, property keys and string values; short tokens skipped
	assert.Equal(t, []string{"gc"}, s.LookupTerm("griffin"))
	assert.Equal(t, []string{"gc"}, s.LookupTerm("claw"))
	assert.Equal(t, []string{"gc"}, s.LookupTerm("weapon"))
	assert.Equal(t, []string{"gc"}, s.LookupTerm("tier"))
	assert.Equal(t, []string{"gc"}, s.LookupTerm("mythic"))
	assert.Nil(t, s.LookupTerm("dps"), "len <= 2 terms are not indexed")
	assert.Nil(t, s.LookupTerm("420"), "numeric property values are not indexed")

	// queryable immediately after insert
	s.AddEntity("gc2", EntityData{Name: "Griffin Set"})
	assert.Equal(t, []string{"gc", "gc2"}, s.LookupTerm("GRIFFIN"))
}
