// Package store owns all entities and typed relationships in memory.
//
// The store is an id-keyed arena with relationships held in a side table of
// (from, to) id pairs, so graph-shaped data never forms ownership cycles.
// It is single-writer, many-reader: populate it fully, then serve queries.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/xyian/lorebase/internal/core/model"
)

// ErrDanglingReference is returned when a relationship endpoint does not
// exist in the store. Dangling edges are rejected, never silently created.
var ErrDanglingReference = errors.New("relationship endpoint not found")

// DefaultRelatedLimit caps FindRelated results when the caller passes no limit.
const DefaultRelatedLimit = 5

// Store holds entities, relationships, category memberships and the term
// index. Iteration surfaces preserve insertion order; ranking is the query
// engine's job, not the store's.
type Store struct {
	entities  map[string]model.Entity
	entityIDs []string

	relationships map[string]model.Relationship
	relIDs        []string

	categories map[string][]string
	categorySet map[string]map[string]bool

	index map[string]map[string]bool

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

func New() *Store {
	return &Store{
		entities:      make(map[string]model.Entity),
		relationships: make(map[string]model.Relationship),
		categories:    make(map[string][]string),
		categorySet:   make(map[string]map[string]bool),
		index:         make(map[string]map[string]bool),
		Now:           time.Now,
	}
}

// EntityData carries caller-supplied fields for AddEntity. Zero values get
// defaults: Type "concept", Confidence 1.0, Timestamp now, Name the id.
type EntityData struct {
	Type       string
	Name       string
	Content    string
	Properties map[string]any
	Confidence float64
	Source     string
	Category   string
	Timestamp  time.Time
}

// AddEntity inserts or overwrites the entity at id. It always succeeds; the
// second write for an id wins. The entity is term-indexed before the call
// returns, so an added id is immediately queryable.
func (s *Store) AddEntity(id string, data EntityData) model.Entity {
	e := model.Entity{
		ID:         id,
		Type:       data.Type,
		Name:       data.Name,
		Content:    data.Content,
		Properties: data.Properties,
		Confidence: data.Confidence,
		Source:     data.Source,
		Timestamp:  data.Timestamp,
	}
	if e.Type == "" {
		e.Type = model.TypeConcept
	}
	if e.Name == "" {
		e.Name = id
	}
	if e.Confidence == 0 {
		e.Confidence = 1.0
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.Now().UTC()
	}

	if _, exists := s.entities[id]; !exists {
		s.entityIDs = append(s.entityIDs, id)
	}
	s.entities[id] = e

	if data.Category != "" {
		s.addToCategory(data.Category, id)
	}
	s.indexEntity(e)

	return e
}

// AddRelationship upserts the edge keyed by (from, type, to). Both endpoints
// must already exist; otherwise the call fails with ErrDanglingReference and
// the store is unchanged.
func (s *Store) AddRelationship(from, to, relType string, props map[string]any) (model.Relationship, error) {
	if _, ok := s.entities[from]; !ok {
		return model.Relationship{}, fmt.Errorf("from %q: %w", from, ErrDanglingReference)
	}
	if _, ok := s.entities[to]; !ok {
		return model.Relationship{}, fmt.Errorf("to %q: %w", to, ErrDanglingReference)
	}

	id := model.RelationshipID(from, relType, to)
	rel := model.Relationship{
		ID:         id,
		From:       from,
		To:         to,
		Type:       relType,
		Properties: props,
		Timestamp:  s.Now().UTC(),
	}

	if _, exists := s.relationships[id]; !exists {
		s.relIDs = append(s.relIDs, id)
	}
	s.relationships[id] = rel

	return rel, nil
}

// Entity returns the entity at id.
func (s *Store) Entity(id string) (model.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Entities returns all entities in insertion order.
func (s *Store) Entities() []model.Entity {
	out := make([]model.Entity, 0, len(s.entityIDs))
	for _, id := range s.entityIDs {
		out = append(out, s.entities[id])
	}
	return out
}

// Relationships returns all relationships in insertion order.
func (s *Store) Relationships() []model.Relationship {
	out := make([]model.Relationship, 0, len(s.relIDs))
	for _, id := range s.relIDs {
		out = append(out, s.relationships[id])
	}
	return out
}

// FindRelated returns neighbors of id in either edge direction, optionally
// filtered by relationship type, truncated to limit, in insertion order.
func (s *Store) FindRelated(id string, relType string, limit int) []model.Related {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	var related []model.Related
	for _, relID := range s.relIDs {
		rel := s.relationships[relID]
		if relType != "" && rel.Type != relType {
			continue
		}

		var neighborID string
		switch id {
		case rel.From:
			neighborID = rel.To
		case rel.To:
			neighborID = rel.From
		default:
			continue
		}

		if neighbor, ok := s.entities[neighborID]; ok {
			related = append(related, model.Related{Entity: neighbor, Relationship: rel})
			if len(related) == limit {
				break
			}
		}
	}
	return related
}

// CategoryMembers returns the ids filed under a category label, in the order
// they were added.
func (s *Store) CategoryMembers(label string) []string {
	members := s.categories[label]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// AddToCategory files an existing entity under an additional category label.
func (s *Store) AddToCategory(label, id string) error {
	if _, ok := s.entities[id]; !ok {
		return fmt.Errorf("entity %q: %w", id, ErrDanglingReference)
	}
	s.addToCategory(label, id)
	return nil
}

func (s *Store) addToCategory(label, id string) {
	set := s.categorySet[label]
	if set == nil {
		set = make(map[string]bool)
		s.categorySet[label] = set
	}
	if !set[id] {
		set[id] = true
		s.categories[label] = append(s.categories[label], id)
	}
}

// Stats reports store contents.
func (s *Store) Stats() model.Stats {
	return model.Stats{
		Entities:      len(s.entities),
		Relationships: len(s.relationships),
		Categories:    len(s.categories),
		IndexedTerms:  len(s.index),
	}
}

// Export serializes the full store. The snapshot preserves insertion order so
// a round trip reproduces iteration behavior, not just set membership.
func (s *Store) Export() model.Snapshot {
	snap := model.Snapshot{
		Version:       model.SnapshotVersion,
		Timestamp:     s.Now().UTC(),
		Entities:      s.Entities(),
		Relationships: s.Relationships(),
	}
	if len(s.categories) > 0 {
		snap.Categories = make(map[string][]string, len(s.categories))
		for label, members := range s.categories {
			snap.Categories[label] = append([]string(nil), members...)
		}
	}
	return snap
}

// Import replaces all store state with the snapshot's contents. Existing
// state is cleared first; this is a destructive replace, not a merge.
// The term index is rebuilt from the imported entities.
func (s *Store) Import(snap model.Snapshot) {
	s.entities = make(map[string]model.Entity, len(snap.Entities))
	s.entityIDs = s.entityIDs[:0]
	s.relationships = make(map[string]model.Relationship, len(snap.Relationships))
	s.relIDs = s.relIDs[:0]
	s.categories = make(map[string][]string)
	s.categorySet = make(map[string]map[string]bool)
	s.index = make(map[string]map[string]bool)

	for _, e := range snap.Entities {
		if _, exists := s.entities[e.ID]; !exists {
			s.entityIDs = append(s.entityIDs, e.ID)
		}
		s.entities[e.ID] = e
		s.indexEntity(e)
	}
	for _, rel := range snap.Relationships {
		if _, exists := s.relationships[rel.ID]; !exists {
			s.relIDs = append(s.relIDs, rel.ID)
		}
		s.relationships[rel.ID] = rel
	}
	for label, members := range snap.Categories {
		for _, id := range members {
			s.addToCategory(label, id)
		}
	}
}
