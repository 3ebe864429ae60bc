package search

import (
	"fmt"

	"github.com/xyian/lorebase/internal/core/model"
)

// Reason renders one templated explanation line per related pair. The text is
// advisory, for display to humans; it never feeds back into ranking.
func Reason(entity model.Entity, related []model.Related) []string {
	explanations := make([]string, 0, len(related))
	for _, rel := range related {
		explanations = append(explanations, explain(entity, rel))
	}
	return explanations
}

func explain(entity model.Entity, rel model.Related) string {
	a, b := entity.Name, rel.Entity.Name

	switch rel.Relationship.Type {
	case model.RelRecommendedFor:
		return fmt.Sprintf("%s is recommended for %s", a, b)
	case model.RelSynergizesWith:
		return fmt.Sprintf("%s synergizes well with %s", a, b)
	case model.RelEffectiveIn:
		return fmt.Sprintf("%s is effective in %s", a, b)
	case model.RelBelongsTo:
		return fmt.Sprintf("%s belongs to the %s category", a, b)
	case model.RelHasProperty:
		return fmt.Sprintf("%s has the property: %s", a, b)
	default:
		return fmt.Sprintf("%s is related to %s (%s)", a, b, rel.Relationship.Type)
	}
}
