package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xyian/lorebase/internal/core/model"
)

// MirrorSnapshot pushes a full store snapshot into the graph database.
// Entities and edges are MERGEd by id, so repeated mirroring converges
// instead of duplicating.
func MirrorSnapshot(ctx context.Context, d GraphDriver, snap model.Snapshot) error {
	if err := d.BuildIndices(ctx); err != nil {
		return fmt.Errorf("build indices: %w", err)
	}

	for _, e := range snap.Entities {
		props, err := json.Marshal(e.Properties)
		if err != nil {
			return fmt.Errorf("marshal properties for %s: %w", e.ID, err)
		}
		params := map[string]interface{}{
			"id":         e.ID,
			"type":       e.Type,
			"name":       e.Name,
			"content":    e.Content,
			"properties": string(props),
			"confidence": e.Confidence,
			"source":     e.Source,
			"timestamp":  e.Timestamp.UTC().Format(time.RFC3339Nano),
		}
		if _, err := d.ExecuteQuery(ctx, SaveEntityQuery, params); err != nil {
			return fmt.Errorf("mirror entity %s: %w", e.ID, err)
		}
	}

	for _, rel := range snap.Relationships {
		props, err := json.Marshal(rel.Properties)
		if err != nil {
			return fmt.Errorf("marshal properties for %s: %w", rel.ID, err)
		}
		params := map[string]interface{}{
			"id":         rel.ID,
			"from_id":    rel.From,
			"to_id":      rel.To,
			"type":       rel.Type,
			"properties": string(props),
			"confidence": rel.Confidence(),
			"timestamp":  rel.Timestamp.UTC().Format(time.RFC3339Nano),
		}
		if _, err := d.ExecuteQuery(ctx, SaveRelationshipQuery, params); err != nil {
			return fmt.Errorf("mirror relationship %s: %w", rel.ID, err)
		}
	}

	for label, members := range snap.Categories {
		for _, id := range members {
			params := map[string]interface{}{"label": label, "entity_id": id}
			if _, err := d.ExecuteQuery(ctx, SaveCategoryQuery, params); err != nil {
				return fmt.Errorf("mirror category %s: %w", label, err)
			}
		}
	}

	slog.Info("snapshot mirrored",
		"entities", len(snap.Entities), "relationships", len(snap.Relationships))
	return nil
}
