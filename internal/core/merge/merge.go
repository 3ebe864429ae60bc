// Package merge folds several independently-produced categorized tables into
// one unified, de-duplicated knowledge view with provenance and aggregated
// mention counts.
package merge

import (
	"strings"

	"github.com/xyian/lorebase/internal/core/model"
)

// Canonical normalizes a row name for grouping: trimmed and lowercased.
func Canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Slug turns a canonical name into an id fragment.
func Slug(name string) string {
	return strings.ReplaceAll(Canonical(name), " ", "_")
}

// Tables merges rows from any number of tables within one category, grouping
// by canonical name. Mention counts are summed, the longest context wins
// (first seen on ties), and effect and source lists are unioned with set
// semantics in first-seen order. Output order follows first appearance.
func Tables(rows []model.TableRow) []model.MergedEntry {
	var order []string
	entries := make(map[string]*model.MergedEntry)
	seenSources := make(map[string]map[string]bool)
	seenEffects := make(map[string]map[string]bool)

	for _, row := range rows {
		key := Canonical(row.Name)
		if key == "" {
			continue
		}

		entry := entries[key]
		if entry == nil {
			entry = &model.MergedEntry{Name: key}
			entries[key] = entry
			order = append(order, key)
			seenSources[key] = make(map[string]bool)
			seenEffects[key] = make(map[string]bool)
		}

		entry.Mentions += row.Mentions
		if len(row.Context) > len(entry.BestContext) {
			entry.BestContext = row.Context
		}
		for _, src := range row.Sources {
			if src != "" && !seenSources[key][src] {
				seenSources[key][src] = true
				entry.Sources = append(entry.Sources, src)
			}
		}
		for _, effect := range row.Effects {
			if effect != "" && !seenEffects[key][effect] {
				seenEffects[key][effect] = true
				entry.Effects = append(entry.Effects, effect)
			}
		}
	}

	out := make([]model.MergedEntry, 0, len(order))
	for _, key := range order {
		entry := *entries[key]
		entry.Usage = extractUsage(entry.BestContext)
		out = append(out, entry)
	}
	return out
}

// GearSets merges gear rows grouped by their parent set name, tracking the
// constituent pieces and their per-piece mention counts under each set.
func GearSets(rows []model.TableRow) []model.MergedEntry {
	var order []string
	entries := make(map[string]*model.MergedEntry)
	seenSources := make(map[string]map[string]bool)
	pieceIdx := make(map[string]map[string]int)

	for _, row := range rows {
		setName := Canonical(row.Set)
		if setName == "" {
			setName = "unknown"
		}

		entry := entries[setName]
		if entry == nil {
			entry = &model.MergedEntry{Name: setName}
			entries[setName] = entry
			order = append(order, setName)
			seenSources[setName] = make(map[string]bool)
			pieceIdx[setName] = make(map[string]int)
		}

		entry.Mentions += row.Mentions
		if len(row.Context) > len(entry.BestContext) {
			entry.BestContext = row.Context
		}
		for _, src := range row.Sources {
			if src != "" && !seenSources[setName][src] {
				seenSources[setName][src] = true
				entry.Sources = append(entry.Sources, src)
			}
		}

		piece := Canonical(row.Name)
		if piece == "" {
			continue
		}
		if i, ok := pieceIdx[setName][piece]; ok {
			entry.Pieces[i].Mentions += row.Mentions
		} else {
			pieceIdx[setName][piece] = len(entry.Pieces)
			entry.Pieces = append(entry.Pieces, model.PieceStat{
				Name:      piece,
				PieceType: row.PieceType,
				Mentions:  row.Mentions,
			})
		}
	}

	out := make([]model.MergedEntry, 0, len(order))
	for _, key := range order {
		out = append(out, *entries[key])
	}
	return out
}

// extractUsage derives coarse usage tags from a context snippet.
func extractUsage(context string) []string {
	lower := strings.ToLower(context)
	var usage []string
	if strings.Contains(lower, "pvp") {
		usage = append(usage, "PvP")
	}
	if strings.Contains(lower, "pve") {
		usage = append(usage, "PvE")
	}
	if strings.Contains(lower, "resonance") {
		usage = append(usage, "Resonance")
	}
	if strings.Contains(lower, "base") {
		usage = append(usage, "Base")
	}
	return usage
}
