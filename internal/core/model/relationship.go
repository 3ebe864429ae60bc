package model

import (
	"fmt"
	"time"
)

// Relationship types produced by the inference pass. The store accepts
// arbitrary type strings; these are the ones the reasoner knows templates for.
const (
	RelRecommendedFor = "recommended_for"
	RelSynergizesWith = "synergizes_with"
	RelEffectiveIn    = "effective_in"
	RelRelatedTo      = "related_to"
	RelBelongsTo      = "belongs_to"
	RelHasProperty    = "has_property"
)

// Relationship is a directed, confidence-weighted edge between two entities.
// Its ID is deterministic over (from, type, to), so re-adding the same edge
// is an upsert rather than a duplicate.
type Relationship struct {
	ID         string         `json:"id"`
	From       string         `json:"from"`
	To         string         `json:"to"`
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// RelationshipID builds the deterministic composite key for an edge.
func RelationshipID(from, relType, to string) string {
	return fmt.Sprintf("%s|%s|%s", from, relType, to)
}

// Confidence returns the edge's confidence property, defaulting to 1.0 when
// the property is absent or not numeric.
func (r Relationship) Confidence() float64 {
	if v, ok := r.Properties["confidence"].(float64); ok {
		return v
	}
	return 1.0
}
