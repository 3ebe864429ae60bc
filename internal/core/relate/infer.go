// Package relate derives typed relationships between stored entities from
// co-occurrence and keyword heuristics.
//
// The pass runs over the whole store at once; it needs the full entity set to
// find co-occurrences. Edges are upserts keyed by (from, type, to), so
// re-running the pass against an unchanged store changes nothing.
package relate

import (
	"log/slog"
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

const (
	confidenceRecommended = 0.8
	confidenceEffective   = 0.7
	confidenceRelated     = 0.6
	confidenceGear        = 0.7
)

// Result reports how many relationships the pass added.
type Result struct {
	Added int `json:"added"`
}

// Infer analyzes all entities currently in the store and adds derived edges.
// The expected data scale is hundreds of entities, so the pairwise scans are
// acceptable.
func Infer(s *store.Store) Result {
	before := s.Stats().Relationships
	entities := s.Entities()

	for _, e := range entities {
		content := strings.ToLower(e.Content)

		switch e.Type {
		case model.TypeWeapon:
			inferWeapon(s, e, entities)
		case model.TypeCharacter:
			inferCharacter(s, e, entities)
		}

		if mentionsPvP(content) {
			inferPvP(s, e, entities)
		}
		if strings.Contains(content, "gear") || strings.Contains(content, "equipment") {
			inferGear(s, e, entities)
		}
	}

	added := s.Stats().Relationships - before
	slog.Info("relationship inference complete", "added", added)
	return Result{Added: added}
}

// inferWeapon links a weapon to characters whose guides mention it, and to
// any entity that mentions it in a pvp/arena context.
func inferWeapon(s *store.Store, weapon model.Entity, entities []model.Entity) {
	name := strings.ToLower(weapon.Name)
	if name == "" {
		return
	}

	for _, other := range entities {
		if other.ID == weapon.ID {
			continue
		}
		otherContent := strings.ToLower(other.Content)

		if other.Type == model.TypeCharacter && strings.Contains(otherContent, name) {
			s.AddRelationship(weapon.ID, other.ID, model.RelRecommendedFor,
				map[string]any{"confidence": confidenceRecommended})
		}
		if strings.Contains(otherContent, name) && mentionsPvP(otherContent) {
			s.AddRelationship(weapon.ID, other.ID, model.RelEffectiveIn,
				map[string]any{"confidence": confidenceEffective})
		}
	}
}

// inferCharacter links a character to weapons whose descriptions mention it.
func inferCharacter(s *store.Store, character model.Entity, entities []model.Entity) {
	name := strings.ToLower(character.Name)
	if name == "" {
		return
	}

	for _, other := range entities {
		if other.ID == character.ID || other.Type != model.TypeWeapon {
			continue
		}
		if strings.Contains(strings.ToLower(other.Content), name) {
			s.AddRelationship(character.ID, other.ID, model.RelSynergizesWith,
				map[string]any{"confidence": confidenceRecommended})
		}
	}
}

// inferPvP pairwise-links entities within the pvp/arena-mentioning subset.
func inferPvP(s *store.Store, e model.Entity, entities []model.Entity) {
	for _, other := range entities {
		if other.ID == e.ID {
			continue
		}
		if mentionsPvP(strings.ToLower(other.Content)) {
			s.AddRelationship(e.ID, other.ID, model.RelRelatedTo,
				map[string]any{"confidence": confidenceRelated})
		}
	}
}

// inferGear links a gear-describing entity to every character named in its
// content.
func inferGear(s *store.Store, gear model.Entity, entities []model.Entity) {
	content := strings.ToLower(gear.Content)

	for _, other := range entities {
		if other.ID == gear.ID || other.Type != model.TypeCharacter {
			continue
		}
		name := strings.ToLower(other.Name)
		if name != "" && strings.Contains(content, name) {
			s.AddRelationship(gear.ID, other.ID, model.RelRecommendedFor,
				map[string]any{"confidence": confidenceGear})
		}
	}
}

func mentionsPvP(lowerContent string) bool {
	return strings.Contains(lowerContent, "pvp") || strings.Contains(lowerContent, "arena")
}
