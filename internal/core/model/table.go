package model

// SourceRecord is a raw, uncleaned fragment handed to the ingestion pipeline
// by an extraction job. Only Content is required; Key, when present, becomes
// the entity id.
type SourceRecord struct {
	Key      string `json:"key,omitempty"`
	Category string `json:"category,omitempty"`
	Content  string `json:"content"`
}

// TableRow is one row of an independently-extracted structured table
// (gear, runes, characters, materials).
type TableRow struct {
	Name      string   `json:"name"`
	Set       string   `json:"set,omitempty"`        // gear only: parent set name
	PieceType string   `json:"piece_type,omitempty"` // gear only
	Mentions  int      `json:"mention_count"`
	Context   string   `json:"best_context,omitempty"`
	Effects   []string `json:"effects,omitempty"`
	Sources   []string `json:"sources,omitempty"`
}

// PieceStat tracks one constituent gear piece under its parent set.
type PieceStat struct {
	Name      string `json:"name"`
	PieceType string `json:"piece_type,omitempty"`
	Mentions  int    `json:"mentions"`
}

// MergedEntry is the unified, de-duplicated view of all rows sharing a
// canonical name within one category.
type MergedEntry struct {
	Name        string      `json:"name"`
	Mentions    int         `json:"mentions"`
	BestContext string      `json:"best_context,omitempty"`
	Effects     []string    `json:"effects,omitempty"`
	Sources     []string    `json:"sources,omitempty"`
	Usage       []string    `json:"usage,omitempty"`  // characters: PvP / PvE / Resonance / Base
	Pieces      []PieceStat `json:"pieces,omitempty"` // gear sets only
}

// BuildRecommendation is curated configuration, never inference output: a
// human-authored gear/rune/character combination with a description.
type BuildRecommendation struct {
	Name        string   `json:"name" toml:"name"`
	Mode        string   `json:"mode" toml:"mode"` // pvp, pve, mixed
	Description string   `json:"description" toml:"description"`
	Gear        []string `json:"gear,omitempty" toml:"gear"`
	Characters  []string `json:"characters,omitempty" toml:"characters"`
	Runes       []string `json:"runes,omitempty" toml:"runes"`
	Context     string   `json:"context,omitempty" toml:"context"`
}
