package merge

import (
	"log/slog"
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

// categoryTypes maps a table category to the entity type its entries carry.
var categoryTypes = map[string]string{
	"gear_sets":  model.TypeGear,
	"runes":      model.TypeRune,
	"characters": model.TypeCharacter,
	"materials":  model.TypeMaterial,
}

// Apply folds merged entries into the store under a category label. Entry ids
// are deterministic (category plus name slug), so re-applying a category is
// an aggregation, not a duplication: mention counts add up, the longest
// context wins, and on conflicting property keys the value from the
// higher-confidence entity is preserved.
func Apply(s *store.Store, category string, entries []model.MergedEntry) {
	entityType := categoryTypes[category]

	for _, entry := range entries {
		id := category + "_" + Slug(entry.Name)

		props := map[string]any{
			"mentions": float64(entry.Mentions),
		}
		if len(entry.Sources) > 0 {
			props["sources"] = strings.Join(entry.Sources, ", ")
		}
		if len(entry.Effects) > 0 {
			props["effects"] = strings.Join(entry.Effects, ", ")
		}
		if len(entry.Usage) > 0 {
			props["usage"] = strings.Join(entry.Usage, ", ")
		}
		for _, piece := range entry.Pieces {
			props["piece_"+Slug(piece.Name)] = float64(piece.Mentions)
		}

		content := entry.BestContext
		confidence := 1.0

		if existing, ok := s.Entity(id); ok {
			props = mergeProperties(existing, props, confidence)
			if len(existing.Content) > len(content) {
				content = existing.Content
			}
			if existing.Confidence > confidence {
				confidence = existing.Confidence
			}
		}

		s.AddEntity(id, store.EntityData{
			Type:       entityType,
			Name:       entry.Name,
			Content:    content,
			Properties: props,
			Confidence: confidence,
			Source:     "table_merge",
			Category:   category,
		})
	}

	slog.Info("merged table applied", "category", category, "entries", len(entries))
}

// mergeProperties combines an existing entity's properties with incoming
// ones. Mention counters accumulate; for any other conflicting key the value
// backed by the higher confidence wins, existing on ties.
func mergeProperties(existing model.Entity, incoming map[string]any, incomingConfidence float64) map[string]any {
	merged := make(map[string]any, len(existing.Properties)+len(incoming))
	for k, v := range existing.Properties {
		merged[k] = v
	}
	for k, v := range incoming {
		old, conflict := merged[k]
		switch {
		case !conflict:
			merged[k] = v
		case k == "mentions" || strings.HasPrefix(k, "piece_"):
			oldN, _ := old.(float64)
			newN, _ := v.(float64)
			merged[k] = oldN + newN
		case incomingConfidence > existing.Confidence:
			merged[k] = v
		}
	}
	return merged
}
