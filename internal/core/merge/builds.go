package merge

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/xyian/lorebase/internal/core/model"
	"github.com/xyian/lorebase/internal/core/store"
)

// buildsFile is the curated builds document shape.
type buildsFile struct {
	Build []model.BuildRecommendation `toml:"build"`
}

// LoadBuilds reads curated build recommendations from a TOML file. Builds
// are human-authored configuration, never inference output.
func LoadBuilds(path string) ([]model.BuildRecommendation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read builds file %s: %w", path, err)
	}
	var file buildsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse builds file %s: %w", path, err)
	}
	return file.Build, nil
}

// ApplyBuilds stores build recommendations as build entities and links any
// referenced characters, runes, and gear sets already present from table
// merges with belongs_to edges. Unknown references are skipped; a build may
// name gear the tables never saw.
func ApplyBuilds(s *store.Store, builds []model.BuildRecommendation) {
	for _, b := range builds {
		id := "build_" + Slug(b.Name)

		content := b.Description
		if b.Context != "" {
			content += " - " + b.Context
		}

		s.AddEntity(id, store.EntityData{
			Type:    model.TypeBuild,
			Name:    b.Name,
			Content: content,
			Properties: map[string]any{
				"mode":    b.Mode,
				"curated": true,
			},
			Source:   "curated_builds",
			Category: "builds",
		})

		linkComponents(s, id, "characters", b.Characters)
		linkComponents(s, id, "runes", b.Runes)
		linkComponents(s, id, "gear_sets", b.Gear)
	}
	slog.Info("curated builds applied", "builds", len(builds))
}

func linkComponents(s *store.Store, buildID, category string, names []string) {
	for _, name := range names {
		componentID := category + "_" + Slug(name)
		if _, ok := s.Entity(componentID); !ok {
			continue
		}
		s.AddRelationship(componentID, buildID, model.RelBelongsTo,
			map[string]any{"confidence": 1.0})
	}
}
