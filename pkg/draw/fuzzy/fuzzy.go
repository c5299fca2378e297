// ABOUTME: Thin wrapper over sahilm/fuzzy for "did you mean" suggestions
// ABOUTME: Used when a border, colour or font name from a flag or style file is unknown

package fuzzy

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str   string
	Index int
	Score int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}

// Suggest returns the candidate that best matches name. When name is not a
// subsequence of any candidate, a candidate contained in name is accepted
// instead ("rounded-corners" suggests "rounded").
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}
	if m := Find(name, candidates); len(m) > 0 {
		return m[0].Str, true
	}
	best, bestScore := "", 0
	for _, c := range candidates {
		m := fuzzy.Find(c, []string{name})
		if len(m) > 0 && (best == "" || m[0].Score > bestScore) {
			best, bestScore = c, m[0].Score
		}
	}
	return best, best != ""
}

// DidYouMean formats a suggestion for error messages, or returns "".
func DidYouMean(name string, candidates []string) string {
	s, ok := Suggest(name, candidates)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", s)
}
