package relate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

func seedStore() *store.Store {
	s := store.New()
	s.AddEntity("claw", store.EntityData{
		Type:    model.TypeWeapon,
		Name:    "Griffin Claw",
		Content: "Griffin Claw deals high damage and excels in PvP arena combat",
	})
	s.AddEntity("thor", store.EntityData{
		Type:    model.TypeCharacter,
		Name:    "Thor",
		Content: "Thor loves the griffin claw in pvp for burst damage",
	})
	s.AddEntity("rolla", store.EntityData{
		Type:    model.TypeCharacter,
		Name:    "Rolla",
		Content: "Rolla freezes enemies, great for chapter pushing",
	})
	s.AddEntity("dragoon_set", store.EntityData{
		Type:    model.TypeGear,
		Name:    "Dragoon Set",
		Content: "Dragoon gear works best on Thor and Rolla builds",
	})
	return s
}

func findEdge(s *store.Store, from, relType, to string) (model.Relationship, bool) {
	for _, rel := range s.Relationships() {
		if rel.From == from && rel.Type == relType && rel.To == to {
			return rel, true
		}
	}
	return model.Relationship{}, false
}

func TestInferWeaponEdges(t *testing.T) {
	s := seedStore()
	Infer(s)

	rec, ok := findEdge(s, "claw", model.RelRecommendedFor, "thor")
	require.True(t, ok, "character mentioning the weapon gets recommended_for")
	assert.Equal(t, 0.8, rec.Confidence())

	eff, ok := findEdge(s, "claw", model.RelEffectiveIn, "thor")
	require.True(t, ok, "weapon mention in a pvp context gets effective_in")
	assert.Equal(t, 0.7, eff.Confidence())

	_, ok = findEdge(s, "claw", model.RelRecommendedFor, "rolla")
	assert.False(t, ok, "rolla never mentions the claw")
}

func TestInferCharacterSynergy(t *testing.T) {
	s := seedStore()
	s.AddEntity("staff", store.EntityData{
		Type:    model.TypeWeapon,
		Name:    "Oracle Staff",
		Content: "Oracle Staff synergy with Rolla freeze builds",
	})
	Infer(s)

	rel, ok := findEdge(s, "rolla", model.RelSynergizesWith, "staff")
	require.True(t, ok)
	assert.Equal(t, 0.8, rel.Confidence())
}

func TestInferPvPPairwise(t *testing.T) {
	s := seedStore()
	Infer(s)

	// claw and thor both mention pvp/arena; edges link them both ways
	_, forward := findEdge(s, "claw", model.RelRelatedTo, "thor")
	_, backward := findEdge(s, "thor", model.RelRelatedTo, "claw")
	assert.True(t, forward)
	assert.True(t, backward)

	_, ok := findEdge(s, "claw", model.RelRelatedTo, "rolla")
	assert.False(t, ok, "rolla is outside the pvp subset")
}

func TestInferGearEdges(t *testing.T) {
	s := seedStore()
	Infer(s)

	rel, ok := findEdge(s, "dragoon_set", model.RelRecommendedFor, "thor")
	require.True(t, ok)
	assert.Equal(t, 0.7, rel.Confidence())

	_, ok = findEdge(s, "dragoon_set", model.RelRecommendedFor, "rolla")
	assert.True(t, ok, "gear content names rolla too")
}

func TestInferIsIdempotent(t *testing.T) {
	s := seedStore()

	first := Infer(s)
	assert.Positive(t, first.Added)
	count := s.Stats().Relationships

	second := Infer(s)
	assert.Zero(t, second.Added)
	assert.Equal(t, count, s.Stats().Relationships)
}
