package model

import (
	"fmt"
	"time"
)

// Entity types. The set is closed-ish: inference only ever assigns one of
// these, but callers may supply their own labels.
const (
	TypeWeapon    = "weapon"
	TypeCharacter = "character"
	TypeGear      = "gear"
	TypeRune      = "rune"
	TypeGameMode  = "game_mode"
	TypeGuild     = "guild"
	TypeMaterial  = "material"
	TypeConcept   = "concept"
	TypeBuild     = "build"
	TypeEvent     = "event"
)

type Entity struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Content    string         `json:"content,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Confidence float64        `json:"confidence"`
	Source     string         `json:"source,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// NormalizeProperties validates a property bag where it enters from outside,
// such as a loaded snapshot file. Values must be string, bool, or numeric;
// numbers are widened to float64 so a bag round-trips through JSON unchanged.
func NormalizeProperties(props map[string]any) (map[string]any, error) {
	if len(props) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		switch val := v.(type) {
		case string:
			out[k] = val
		case bool:
			out[k] = val
		case float64:
			out[k] = val
		case float32:
			out[k] = float64(val)
		case int:
			out[k] = float64(val)
		case int32:
			out[k] = float64(val)
		case int64:
			out[k] = float64(val)
		default:
			return nil, fmt.Errorf("property %q: unsupported value type %T", k, v)
		}
	}
	return out, nil
}
