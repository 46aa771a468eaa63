package types

// SourceTag records where a suggestion's data came from, so callers can
// distinguish "no catalog entry satisfies constraints" from "lookup degraded
// to fallback data" when rendering.
type SourceTag string

const (
	SourceCatalog  SourceTag = "catalog"  // local catalog loaded from CSV
	SourceFallback SourceTag = "fallback" // built-in fallback dataset
	SourceWeb      SourceTag = "web"      // distributor lookup
)

// Suggestion wraps one part with the reasoning behind its recommendation.
// Suggestions are produced fresh per query and never mutated after creation.
// Score is unbounded but typically lands between 0 and 130; higher is more
// suitable.
type Suggestion struct {
	Component         Part      `json:"component"`
	Reason            string    `json:"reason"`
	Score             float64   `json:"score"`
	HeuristicsApplied []string  `json:"heuristics_applied,omitempty"`
	Source            SourceTag `json:"source"`
}
