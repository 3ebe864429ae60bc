package store

import (
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
)

// minTermLength filters out stopword-sized tokens; terms must be longer than
// this to be indexed.
const minTermLength = 2

// indexEntity adds the entity's searchable terms to the inverted index.
// Terms come from the name, the type, property keys, and string property
// values. Index entries are only ever added; overwriting an entity leaves
// its previous terms pointing at the id, which is harmless for candidate
// lookup (lookups re-check the live entity).
func (s *Store) indexEntity(e model.Entity) {
	parts := []string{e.Name, e.Type}
	for key, value := range e.Properties {
		parts = append(parts, key)
		if str, ok := value.(string); ok {
			parts = append(parts, str)
		}
	}

	for _, term := range strings.Fields(strings.ToLower(strings.Join(parts, " "))) {
		if len(term) <= minTermLength {
			continue
		}
		ids := s.index[term]
		if ids == nil {
			ids = make(map[string]bool)
			s.index[term] = ids
		}
		ids[e.ID] = true
	}
}

// LookupTerm returns the ids of entities indexed under a normalized term,
// in insertion order. Unknown terms yield nil.
func (s *Store) LookupTerm(term string) []string {
	ids := s.index[strings.ToLower(term)]
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range s.entityIDs {
		if ids[id] {
			out = append(out, id)
		}
	}
	return out
}
