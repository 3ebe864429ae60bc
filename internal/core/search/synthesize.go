package search

import "github.com/xyian/lorebase/internal/core/model"

// maxContextRunes bounds the context snippet in an answer payload.
const maxContextRunes = 300

// Synthesize assembles the structured answer payload for a primary entity
// and its related neighbors. It is pure data transformation; presentation
// is the collaborator's job.
func Synthesize(entity model.Entity, related []model.Related) model.Answer {
	answer := model.Answer{
		ID:         entity.ID,
		Type:       entity.Type,
		Name:       entity.Name,
		Context:    truncate(entity.Content, maxContextRunes),
		Properties: entity.Properties,
		Confidence: entity.Confidence,
		Reasoning:  Reason(entity, related),
	}
	for _, rel := range related {
		answer.Related = append(answer.Related, rel.Entity.Name)
	}
	return answer
}

// Answer runs the full query path: rank, take the top hit, gather neighbors,
// explain. The second return is false when nothing matched.
func (e *Engine) Answer(query string, relatedLimit int) (model.Answer, bool) {
	hits := e.Search(query, 1)
	if len(hits) == 0 {
		return model.Answer{}, false
	}
	top := hits[0].Entity
	related := e.Store.FindRelated(top.ID, "", relatedLimit)
	return Synthesize(top, related), true
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
