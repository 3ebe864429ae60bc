package model

// SearchHit pairs a matched entity with its lexical score. Ordering is by
// score plus entity confidence, descending.
type SearchHit struct {
	Entity Entity  `json:"entity"`
	Score  float64 `json:"score"`
}

// Related pairs a neighboring entity with the edge that reaches it.
type Related struct {
	Entity       Entity       `json:"entity"`
	Relationship Relationship `json:"relationship"`
}

// Answer is the structured payload handed to presentation collaborators:
// the primary result plus related names and advisory reasoning lines.
type Answer struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	Context    string         `json:"context,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
	Confidence float64        `json:"confidence"`
	Related    []string       `json:"related,omitempty"`
	Reasoning  []string       `json:"reasoning,omitempty"`
}
