package model

import "time"

// SnapshotVersion identifies the snapshot schema. Bump when the serialized
// shape changes incompatibly.
const SnapshotVersion = 1

// Snapshot is a full serialized copy of a store: entities and relationships
// in insertion order, plus category memberships. Import of an exported
// snapshot must reproduce identical stats and identical entity and
// relationship sets.
type Snapshot struct {
	Version       int                 `json:"version"`
	Timestamp     time.Time           `json:"timestamp"`
	Entities      []Entity            `json:"entities"`
	Relationships []Relationship      `json:"relationships"`
	Categories    map[string][]string `json:"categories,omitempty"`
}

// Stats summarizes store contents for health and introspection surfaces.
type Stats struct {
	Entities      int `json:"entities"`
	Relationships int `json:"relationships"`
	Categories    int `json:"categories"`
	IndexedTerms  int `json:"indexed_terms"`
}
