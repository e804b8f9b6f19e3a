package fuzzy

import (
	"strings"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/types"
)

// Scorer computes an approximate similarity between a keyword and a free-text
// input on a 0-100 scale. It is the extension point for alternative matching
// strategies (phonetic, embedding-based); LevenshteinScorer is the one
// built-in implementation.
type Scorer interface {
	// PartialRatio returns the best similarity of keyword against any
	// region of text, in [0,100]. It is symmetric in neither argument:
	// the first argument is the pattern, the second the haystack.
	PartialRatio(keyword, text string) float64
}

// NewScorer returns the scorer for the given matcher mode.
func NewScorer(mode string) (Scorer, error) {
	switch mode {
	case config.MatcherModeLevenshtein:
		return LevenshteinScorer{}, nil
	default:
		return nil, types.NewError(types.ErrInvalidConfig, "unknown matcher mode "+mode)
	}
}

// LevenshteinScorer scores with a normalized edit-distance partial ratio.
type LevenshteinScorer struct{}

// PartialRatio implements Scorer. Both inputs are lowercased and trimmed
// before comparison. An empty keyword or text scores 0.
func (LevenshteinScorer) PartialRatio(keyword, text string) float64 {
	k := []rune(strings.ToLower(strings.TrimSpace(keyword)))
	t := []rune(strings.ToLower(strings.TrimSpace(text)))
	if len(k) == 0 || len(t) == 0 {
		return 0
	}

	// Short text against a longer keyword degenerates to a plain ratio.
	if len(t) <= len(k) {
		return ratio(k, t) * 100
	}

	best := 0.0
	for i := 0; i+len(k) <= len(t); i++ {
		if r := ratio(k, t[i:i+len(k)]); r > best {
			best = r
			if best == 1.0 {
				break
			}
		}
	}
	// A window one rune wider absorbs single insertions inside the keyword.
	wide := len(k) + 1
	for i := 0; i+wide <= len(t) && best < 1.0; i++ {
		if r := ratio(k, t[i:i+wide]); r > best {
			best = r
		}
	}
	return best * 100
}

// ratio returns the normalized Levenshtein similarity of two rune slices in
// [0,1]: 1 minus the edit distance divided by the longer length.
func ratio(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	d := levenshtein(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(d)/float64(maxLen)
}

// levenshtein computes the edit distance with a rolling two-row DP table.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
