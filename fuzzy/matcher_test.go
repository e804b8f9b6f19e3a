package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/types"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(config.DefaultStrategy(), zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestMatcher_MatchIntent(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name    string
		text    string
		intents map[string][]string
		want    string
		wantOK  bool
	}{
		{
			name:    "exact keyword",
			text:    "what is the price of this plan",
			intents: map[string][]string{"budget_inquiry": {"budget", "cost", "price"}},
			want:    "budget_inquiry",
			wantOK:  true,
		},
		{
			name:    "typo tolerance",
			text:    "Whats the budjet?",
			intents: map[string][]string{"budget_inquiry": {"budget"}},
			want:    "budget_inquiry",
			wantOK:  true,
		},
		{
			name:    "no match on unrelated text",
			text:    "random unrelated text",
			intents: map[string][]string{"budget_inquiry": {"budget", "cost", "price"}},
			wantOK:  false,
		},
		{
			name: "multi keyword boost wins",
			text: "the cost and price are too high for our budget",
			intents: map[string][]string{
				"budget_inquiry": {"budget", "cost", "price"},
				"demo_request":   {"cost"},
			},
			want:   "budget_inquiry",
			wantOK: true,
		},
		{
			name:    "empty intent table",
			text:    "anything at all",
			intents: map[string][]string{},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.MatchIntent(tt.text, tt.intents)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestMatcher_DetectObjectionSignals(t *testing.T) {
	m := newTestMatcher(t)

	t.Run("price objection", func(t *testing.T) {
		signals := m.DetectObjectionSignals("That's too expensive")
		require.NotEmpty(t, signals)
		found := false
		for _, s := range signals {
			if s.Type == types.ObjectionPriceSensitivity {
				found = true
				assert.GreaterOrEqual(t, s.Confidence, 0.7)
			}
		}
		assert.True(t, found, "expected price_sensitivity signal")
	})

	t.Run("authority objection", func(t *testing.T) {
		signals := m.DetectObjectionSignals("I need to run this by my boss first")
		require.NotEmpty(t, signals)
		assert.Equal(t, types.ObjectionAuthority, signals[0].Type)
	})

	t.Run("clean text yields nothing", func(t *testing.T) {
		signals := m.DetectObjectionSignals("the weather is lovely today")
		assert.Empty(t, signals)
	})

	t.Run("ordered by confidence", func(t *testing.T) {
		signals := m.DetectObjectionSignals("it is expensive and I doubt it will really work")
		for i := 1; i < len(signals); i++ {
			assert.GreaterOrEqual(t, signals[i-1].Confidence, signals[i].Confidence)
		}
	})
}

func TestMatcher_DetectTransitionReadiness(t *testing.T) {
	m := newTestMatcher(t)

	t.Run("configured pair with signal phrase", func(t *testing.T) {
		ready, conf := m.DetectTransitionReadiness(
			"we are struggling with churn", types.PhaseIntent, types.PhaseProblem)
		assert.True(t, ready)
		assert.GreaterOrEqual(t, conf, 0.7)
	})

	t.Run("configured pair without signal", func(t *testing.T) {
		ready, conf := m.DetectTransitionReadiness(
			"zzz qqq xxx", types.PhaseIntent, types.PhaseProblem)
		assert.False(t, ready)
		assert.Less(t, conf, 0.7)
	})

	t.Run("unconfigured pair", func(t *testing.T) {
		ready, conf := m.DetectTransitionReadiness(
			"anything", types.PhaseClose, types.PhaseIntent)
		assert.False(t, ready)
		assert.Equal(t, 0.0, conf)
	})
}

func TestMatcher_DetectIntentUsesStrategyTable(t *testing.T) {
	m := newTestMatcher(t)
	intent, ok := m.DetectIntent("can you show me a demo of the product")
	require.True(t, ok)
	assert.Equal(t, "demo_request", intent)
}
