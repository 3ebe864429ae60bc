package ingest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

func newTestPipeline(s *store.Store) *Pipeline {
	p := New(s, "test_batch")
	counter := 0
	p.NewID = func() string {
		counter++
		return fmt.Sprintf("rec-%d", counter)
	}
	return p
}

func TestUsefulnessFilter(t *testing.T) {
	cases := []struct {
		name    string
		content string
		useful  bool
	}{
		{"empty", "", false},
		{"too short", "griffin good", false},
		{"no domain signal", "I had a great breakfast this morning with my family and friends", false},
		{"too chatty", "@tom lol haha did you see that weapon drop yesterday it was crazy good", false},
		{"substantial weapon talk", "The Oracle Staff is the best weapon for clearing waves of enemies", true},
		{"borderline chat allowed", "lol the new rune is actually insane for arena, try it today", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.useful, isUseful(tc.content))
		})
	}
}

func TestCleanContent(t *testing.T) {
	raw := "@moderator  check   https://example.com/guide the  Dragoon   Crossbow hits twice"
	assert.Equal(t, "check the Dragoon Crossbow hits twice", cleanContent(raw))
}

func TestInferType(t *testing.T) {
	cases := []struct {
		name     string
		category string
		content  string
		want     string
	}{
		{"weapon keyword", "", "this staff melts bosses", model.TypeWeapon},
		{"character keyword", "", "the best hero for farming", model.TypeCharacter},
		{"rune keyword", "", "the meteor rune drops from events", model.TypeRune},
		{"gear keyword", "", "full oracle equipment is pricey", model.TypeCharacter}, // "oracle" matches first
		{"game mode keyword", "", "arena rank decay is brutal", model.TypeGameMode},
		{"guild keyword", "", "our guild clears the boss daily", model.TypeGuild},
		{"rule order weapon first", "", "this weapon carries arena", model.TypeWeapon},
		{"category beats content", "weapons", "excels in pvp arena combat", model.TypeWeapon},
		{"unrecognized category falls through", "misc", "arena tips", model.TypeGameMode},
		{"no match", "", "some generic advice", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inferType(tc.category, tc.content))
		})
	}
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "The Griffin Claw",
		extractName("The Griffin Claw deals high damage. Use it in arena."))
	assert.Equal(t, "weapon should",
		extractName("What weapon should I use for arena?"))
	assert.Equal(t, "Short note",
		extractName("Short note"))
	// a declarative first sentence never takes the question branch
	assert.Equal(t, "Ask me what",
		extractName("Ask me what to build. Seriously."))
}

func TestScoreConfidence(t *testing.T) {
	// base only
	assert.InDelta(t, 0.5, scoreConfidence("a plain statement about the game", false), 1e-9)
	// question penalty
	assert.InDelta(t, 0.4, scoreConfidence("which one is better?", false), 1e-9)
	// length and tech bonuses
	long := strings.Repeat("the build deals damage with critical tier stats bonus synergy ", 4)
	assert.InDelta(t, 1.0, scoreConfidence(long, true), 1e-9, "clamped to upper bound")
}

func TestIngestGriffinClawScenario(t *testing.T) {
	s := store.New()
	p := newTestPipeline(s)

	entity, ok := p.Ingest(model.SourceRecord{
		Category: "weapons",
		Content:  "The Griffin Claw deals high damage and excels in PvP arena combat with multi-hit attacks",
	})

	require.True(t, ok)
	assert.Equal(t, model.TypeWeapon, entity.Type)
	assert.GreaterOrEqual(t, entity.Confidence, 0.6)
	assert.LessOrEqual(t, entity.Confidence, 1.0)
	assert.Equal(t, "The Griffin Claw", entity.Name)
	assert.NotContains(t, entity.Content, "@")
	assert.Equal(t, "test_batch", entity.Source)
	assert.Equal(t, []string{"rec-1"}, s.CategoryMembers("weapons"))
}

func TestIngestAllCountsSkips(t *testing.T) {
	s := store.New()
	p := newTestPipeline(s)

	res := p.IngestAll([]model.SourceRecord{
		{Content: "too short"},
		{Content: "The Oracle Staff is the best weapon for clearing chapter bosses"},
		{Key: "k1", Content: "Dragoon gear gives huge damage bonus for crossbow builds in pvp"},
	})

	assert.Equal(t, Result{Ingested: 2, Skipped: 1}, res)
	assert.Equal(t, 2, s.Stats().Entities)

	_, ok := s.Entity("k1")
	assert.True(t, ok, "source key becomes the entity id")
}

func TestConfidenceBoundsForAllIngested(t *testing.T) {
	s := store.New()
	p := newTestPipeline(s)

	p.IngestAll([]model.SourceRecord{
		{Content: "which weapon???"},
		{Content: "Is the meteor rune worth the gems or should I save for the event?"},
		{Category: "characters", Content: strings.Repeat("Thor synergy damage critical tier stats bonus ", 6)},
	})

	for _, e := range s.Entities() {
		assert.GreaterOrEqual(t, e.Confidence, 0.1)
		assert.LessOrEqual(t, e.Confidence, 1.0)
	}
}
