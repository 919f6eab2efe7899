// Package filter cleans scored NLP output: confidence filtering and
// key-based deduplication.
package filter

// Thresholds carries the per-category minimum confidence scores. Different
// ontologies need different precision/recall tradeoffs, so these come from
// configuration rather than constants.
type Thresholds struct {
	Entity    float64
	Concept   float64
	Attribute float64
	Trait     float64
}

// Confident keeps items whose score is defined and strictly above min,
// preserving relative order. Items with no score are dropped, never kept by
// default.
func Confident[T any](items []T, score func(T) *float64, min float64) []T {
	var kept []T
	for _, item := range items {
		if s := score(item); s != nil && *s > min {
			kept = append(kept, item)
		}
	}
	return kept
}

// Dedup drops items whose key has been seen before, preserving first-seen
// order. Given the same input order, output order and membership are
// deterministic.
func Dedup[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	var out []T
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}
