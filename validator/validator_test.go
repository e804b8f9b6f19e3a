package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/types"
)

func newTestValidator() *Validator {
	return New(config.DefaultStrategy(), zap.NewNop())
}

func TestValidator_Validate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name           string
		text           string
		wantSufficient bool
		minScore       float64
		maxScore       float64
	}{
		{
			name:           "single word short-circuits",
			text:           "Yes",
			wantSufficient: false,
			minScore:       0,
			maxScore:       0,
		},
		{
			name:           "empty text",
			text:           "",
			wantSufficient: false,
			minScore:       0,
			maxScore:       0,
		},
		{
			name:           "two vague words",
			text:           "not sure",
			wantSufficient: false,
			minScore:       0,
			maxScore:       0.39,
		},
		{
			name: "detailed answer with number",
			text: "We want to increase our quarterly sales revenue by 30% before the end of Q4 by improving our outbound closing process",
			wantSufficient: true,
			minScore:       0.51,
			maxScore:       1,
		},
		{
			name: "detailed emotional answer with number",
			text: "I am really frustrated because we keep losing about 12 deals every single month to slow follow up",
			wantSufficient: true,
			minScore:       0.7,
			maxScore:       1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.text, "goal", types.PhaseIntent)
			assert.Equal(t, tt.wantSufficient, res.Sufficient)
			assert.Equal(t, !tt.wantSufficient, res.NeedsProbe)
			assert.GreaterOrEqual(t, res.Score, tt.minScore)
			assert.LessOrEqual(t, res.Score, tt.maxScore)
			assert.NotEmpty(t, res.Feedback)
		})
	}
}

func TestValidator_SentimentDetection(t *testing.T) {
	v := newTestValidator()

	res := v.Validate("I am so frustrated with our current tooling", "pain_point", types.PhaseProblem)
	assert.True(t, res.SentimentDetected)

	res = v.Validate("our current tooling processes records slowly", "pain_point", types.PhaseProblem)
	assert.False(t, res.SentimentDetected)
}

func TestValidator_ScoreIsCapped(t *testing.T) {
	v := newTestValidator()

	long := "I am thrilled and excited because revenue grew 40% last year and 50% the year before and we are confident it will keep growing"
	res := v.Validate(long, "goal", types.PhaseIntent)
	assert.LessOrEqual(t, res.Score, 1.0)
	assert.True(t, res.Sufficient)
}

func TestValidator_ProbeRecommendation(t *testing.T) {
	v := newTestValidator()

	t.Run("missing emotion wins", func(t *testing.T) {
		res := v.Validate("we lost 14 accounts in the last two quarters to a cheaper competitor product", "pain_point", types.PhaseProblem)
		require.False(t, res.SentimentDetected)
		assert.Equal(t, types.ProbeEmotion, v.ProbeRecommendation(res))
	})

	t.Run("missing numbers recommends specificity", func(t *testing.T) {
		res := v.Validate("I am worried we keep losing deals to competitors and it feels unsustainable for the team", "pain_point", types.PhaseProblem)
		require.True(t, res.SentimentDetected)
		assert.Equal(t, types.ProbeSpecificity, v.ProbeRecommendation(res))
	})

	t.Run("nothing missing falls back to depth", func(t *testing.T) {
		res := types.ValidationResult{Feedback: []string{feedbackLooksStrong}}
		assert.Equal(t, types.ProbeDepth, v.ProbeRecommendation(res))
	})
}

func TestValidator_CompletionScore(t *testing.T) {
	v := newTestValidator()

	assert.Zero(t, v.CompletionScore("ok", "goal"))
	assert.Zero(t, v.CompletionScore("", "goal"))

	withNumber := v.CompletionScore("grow recurring revenue by 30% in two quarters", "goal")
	withoutNumber := v.CompletionScore("grow recurring revenue substantially over two quarters", "goal")
	assert.Greater(t, withNumber, withoutNumber)
	assert.LessOrEqual(t, withNumber, 1.0)

	// Ten words or more saturates the length component.
	long := v.CompletionScore("one two three four five six seven eight nine ten 11", "goal")
	assert.InDelta(t, 1.0, long, 1e-9)
}
