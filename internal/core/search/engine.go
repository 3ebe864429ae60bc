// Package search ranks stored entities against free-text queries and renders
// advisory reasoning for the results.
//
// Matching is substring-based rather than tokenized so partial or garbled
// queries still hit; ranking is purely lexical and heuristic.
package search

import (
	"sort"
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

// Scoring weights. Name matches dominate content matches, which dominate
// property matches; entity confidence only breaks ties between equal scores.
const (
	nameWeight     = 10
	contentWeight  = 5
	propertyWeight = 3
)

// DefaultLimit caps result lists when the caller passes no limit.
const DefaultLimit = 10

type Engine struct {
	Store *store.Store
}

func NewEngine(s *store.Store) *Engine {
	return &Engine{Store: s}
}

// Search scores every entity against the lowercased query and returns hits
// ordered by score plus confidence, descending, truncated to limit. An empty
// query or an empty candidate set yields an empty result, never an error.
func (e *Engine) Search(query string, limit int) []model.SearchHit {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var hits []model.SearchHit
	for _, entity := range e.Store.Entities() {
		score := scoreEntity(entity, query)
		if score > 0 {
			hits = append(hits, model.SearchHit{Entity: entity, Score: score})
		}
	}

	// Stable sort keeps insertion order between equal keys.
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score+hits[i].Entity.Confidence > hits[j].Score+hits[j].Entity.Confidence
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func scoreEntity(entity model.Entity, query string) float64 {
	var score float64

	if strings.Contains(strings.ToLower(entity.Name), query) {
		score += nameWeight
	}
	if strings.Contains(strings.ToLower(entity.Content), query) {
		score += contentWeight
	}
	for _, value := range entity.Properties {
		if str, ok := value.(string); ok && strings.Contains(strings.ToLower(str), query) {
			score += propertyWeight
		}
	}
	return score
}
