package fuzzy

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchflow/pitchflow/config"
)

func TestLevenshteinScorer_PartialRatio(t *testing.T) {
	scorer := LevenshteinScorer{}

	tests := []struct {
		name    string
		keyword string
		text    string
		min     float64
		max     float64
	}{
		{"exact substring", "budget", "what is your budget for this", 100, 100},
		{"case insensitive", "BUDGET", "My Budget is small", 100, 100},
		{"single typo", "budget", "Whats the budjet?", 70, 99},
		{"transposed letters", "expensive", "that is expesnive", 70, 99},
		{"unrelated text", "budget", "hello world how are you", 0, 60},
		{"empty keyword", "", "some text", 0, 0},
		{"empty text", "budget", "", 0, 0},
		{"identical strings", "close the deal", "close the deal", 100, 100},
		{"keyword longer than text", "very long keyword here", "short", 0, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.PartialRatio(tt.keyword, tt.text)
			assert.GreaterOrEqual(t, got, tt.min, "score below expected range")
			assert.LessOrEqual(t, got, tt.max, "score above expected range")
		})
	}
}

func TestLevenshteinScorer_TypoToleranceAtThreshold(t *testing.T) {
	scorer := LevenshteinScorer{}
	threshold := float64(config.DefaultThresholds().Similarity)

	// One edit in a six-letter keyword must clear the default threshold.
	assert.GreaterOrEqual(t, scorer.PartialRatio("budget", "the budjet is tight"), threshold)
	// A completely different word must not.
	assert.Less(t, scorer.PartialRatio("budget", "zzzzqqqq"), threshold)
}

func TestNewScorer(t *testing.T) {
	s, err := NewScorer(config.MatcherModeLevenshtein)
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = NewScorer("phonetic")
	require.Error(t, err)
}

func TestProperty_PartialRatioBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	scorer := LevenshteinScorer{}

	properties.Property("score is always within [0,100]", prop.ForAll(
		func(keyword, text string) bool {
			s := scorer.PartialRatio(keyword, text)
			return s >= 0 && s <= 100
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("a string always fully matches itself", prop.ForAll(
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return scorer.PartialRatio(s, s) == 0
			}
			return scorer.PartialRatio(s, s) == 100
		},
		gen.AlphaString(),
	))

	properties.Property("keyword embedded in text scores 100", prop.ForAll(
		func(keyword, prefix, suffix string) bool {
			if strings.TrimSpace(keyword) == "" {
				return true
			}
			text := prefix + " " + keyword + " " + suffix
			return scorer.PartialRatio(keyword, text) == 100
		},
		gen.AlphaString(),
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestProperty_RatioSymmetry(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("normalized ratio is symmetric", prop.ForAll(
		func(a, b string) bool {
			ra := ratio([]rune(a), []rune(b))
			rb := ratio([]rune(b), []rune(a))
			return ra == rb
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("ratio is within [0,1]", prop.ForAll(
		func(a, b string) bool {
			r := ratio([]rune(a), []rune(b))
			return r >= 0 && r <= 1
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"budget", "budjet", 1},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		got := levenshtein([]rune(tt.a), []rune(tt.b))
		assert.Equal(t, tt.want, got, "levenshtein(%q,%q)", tt.a, tt.b)
	}
}
