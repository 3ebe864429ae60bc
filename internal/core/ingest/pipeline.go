// Package ingest turns raw, noisy community fragments into scored entities.
//
// Each record passes a usefulness filter, content cleaning, type inference,
// name extraction, and confidence scoring before landing in the store.
// Records that fail the filter are counted and skipped, never surfaced as
// errors.
package ingest

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

type Pipeline struct {
	Store  *store.Store
	Source string // ingestion batch identifier, recorded as entity provenance

	// NewID generates ids for records without a source key. Injectable for
	// deterministic tests.
	NewID func() string
}

// Result summarizes one batch run.
type Result struct {
	Ingested int `json:"ingested"`
	Skipped  int `json:"skipped"`
}

func New(s *store.Store, source string) *Pipeline {
	return &Pipeline{
		Store:  s,
		Source: source,
		NewID:  func() string { return uuid.New().String() },
	}
}

// Ingest processes a single record. It returns the stored entity and true
// when the record passed the usefulness filter, or a zero entity and false
// when it was rejected.
func (p *Pipeline) Ingest(rec model.SourceRecord) (model.Entity, bool) {
	if !isUseful(rec.Content) {
		return model.Entity{}, false
	}

	content := cleanContent(rec.Content)

	id := rec.Key
	if id == "" {
		id = p.NewID()
	}

	entity := p.Store.AddEntity(id, store.EntityData{
		Type:       inferType(rec.Category, content),
		Name:       extractName(content),
		Content:    content,
		Confidence: scoreConfidence(content, recognizedCategory(rec.Category)),
		Source:     p.Source,
		Category:   rec.Category,
	})
	return entity, true
}

// IngestAll runs a batch of records through the pipeline.
func (p *Pipeline) IngestAll(records []model.SourceRecord) Result {
	var res Result
	for _, rec := range records {
		if _, ok := p.Ingest(rec); ok {
			res.Ingested++
		} else {
			res.Skipped++
		}
	}
	slog.Info("ingestion batch complete",
		"source", p.Source, "ingested", res.Ingested, "skipped", res.Skipped)
	return res
}
