package ingest

import "github.com/xyian/lorebase/internal/core/model"

// The heuristic vocabularies below were tuned empirically against real
// community data; they are rule tables, not code, so each is unit-testable
// in isolation.

// chatIndicators mark conversational noise. Content with more than
// maxChatIndicators of them is rejected as chat rather than knowledge.
var chatIndicators = []string{"@", "yesterday", "today", "lol", "haha"}

const maxChatIndicators = 2

// minContentLength is the shortest fragment worth ingesting.
const minContentLength = 30

// domainKeywords gate ingestion: content with no domain signal at all is
// discarded, not stored with low confidence.
var domainKeywords = []string{
	"weapon", "character", "damage", "pvp", "arena", "rune", "gear", "build",
}

// techTerms raise confidence; each distinct term present adds 0.05.
var techTerms = []string{"damage", "critical", "tier", "stats", "bonus", "synergy"}

// typeRule maps a keyword group to an entity type. Rules are evaluated in
// order; the first group with any keyword present in the content wins.
type typeRule struct {
	Type     string
	Keywords []string
}

var typeRules = []typeRule{
	{model.TypeWeapon, []string{"weapon", "staff", "crossbow", "claw"}},
	{model.TypeCharacter, []string{"character", "hero", "dragoon", "oracle"}},
	{model.TypeRune, []string{"rune", "enchant"}},
	{model.TypeGear, []string{"gear", "equipment", "set"}},
	{model.TypeGameMode, []string{"pvp", "arena"}},
	{model.TypeGuild, []string{"guild"}},
}

// categoryHints map a source record's category label straight to a type.
// A recognized category is stronger evidence than content keywords: a weapon
// guide mentioning "arena" is still about the weapon.
var categoryHints = map[string]string{
	"weapons":    model.TypeWeapon,
	"characters": model.TypeCharacter,
	"runes":      model.TypeRune,
	"gear":       model.TypeGear,
	"gear_sets":  model.TypeGear,
	"materials":  model.TypeMaterial,
	"events":     model.TypeEvent,
	"guild":      model.TypeGuild,
	"mechanics":  model.TypeConcept,
}

// questionWords start an interrogative span for name extraction.
var questionWords = map[string]bool{
	"what": true, "which": true, "how": true,
	"why": true, "when": true, "where": true,
}
