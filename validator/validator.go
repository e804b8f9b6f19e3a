package validator

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/types"
)

// Scoring weights. Length saturates at lengthCapWords; the bonuses reward
// measurable and emotionally grounded answers.
const (
	lengthCapWords  = 15
	lengthWeight    = 0.5
	numericBonus    = 0.25
	sentimentBonus  = 0.25
	completionCap   = 10
	completionSplit = 0.7
)

// Feedback messages double as dimension markers for probe recommendation.
const (
	feedbackTooShort    = "answer is too short to evaluate"
	feedbackAddNumbers  = "add a concrete number, metric, or timeframe"
	feedbackAddEmotion  = "share how this situation affects you personally"
	feedbackAddDetail   = "expand the answer with more detail"
	feedbackLooksStrong = "answer is specific and complete"
)

// Validator judges whether an answer is good enough to count as progress.
type Validator struct {
	minWords    int
	sufficiency float64
	sentiment   []string
	logger      *zap.Logger
}

// New creates a Validator from the strategy thresholds and affect lexicon.
func New(cfg *config.StrategyConfig, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		minWords:    cfg.Thresholds.MinWordCount,
		sufficiency: cfg.Thresholds.Sufficiency,
		sentiment:   cfg.SentimentWords,
		logger:      logger.With(zap.String("component", "answer_validator")),
	}
}

// Validate scores one free-text answer for the given capture key and phase.
// Answers below the minimum word count short-circuit to a zero score.
func (v *Validator) Validate(text string, captureKey string, phase types.Phase) types.ValidationResult {
	words := strings.Fields(text)
	if len(words) < v.minWords {
		return types.ValidationResult{
			Score:      0,
			Feedback:   []string{feedbackTooShort, fmt.Sprintf("give at least %d words", v.minWords)},
			Sufficient: false,
			NeedsProbe: true,
		}
	}

	score := 0.0
	var feedback []string

	lengthRatio := float64(len(words)) / lengthCapWords
	if lengthRatio > 1 {
		lengthRatio = 1
	}
	score += lengthRatio * lengthWeight
	if lengthRatio < 1 {
		feedback = append(feedback, feedbackAddDetail)
	}

	if containsNumeric(words) {
		score += numericBonus
	} else {
		feedback = append(feedback, feedbackAddNumbers)
	}

	sentimentDetected := v.containsSentiment(text)
	if sentimentDetected {
		score += sentimentBonus
	} else {
		feedback = append(feedback, feedbackAddEmotion)
	}

	if score > 1 {
		score = 1
	}
	if len(feedback) == 0 {
		feedback = append(feedback, feedbackLooksStrong)
	}

	sufficient := score >= v.sufficiency
	res := types.ValidationResult{
		Score:             score,
		Feedback:          feedback,
		Sufficient:        sufficient,
		NeedsProbe:        !sufficient,
		SentimentDetected: sentimentDetected,
	}
	v.logger.Debug("answer validated",
		zap.String("capture_key", captureKey),
		zap.String("phase", string(phase)),
		zap.Float64("score", score),
		zap.Bool("sufficient", sufficient))
	return res
}

// ProbeRecommendation picks the probe type targeting the weakest feedback
// dimension of a validation result.
func (v *Validator) ProbeRecommendation(res types.ValidationResult) types.ProbeType {
	for _, f := range res.Feedback {
		switch f {
		case feedbackAddEmotion:
			return types.ProbeEmotion
		case feedbackAddNumbers:
			return types.ProbeSpecificity
		}
	}
	return types.ProbeDepth
}

// CompletionScore is the lighter-weight scoring variant used for phase-gate
// averages: word count plus numeric presence, no sentiment pass.
func (v *Validator) CompletionScore(text string, captureKey string) float64 {
	words := strings.Fields(text)
	if len(words) < v.minWords {
		return 0
	}
	ratio := float64(len(words)) / completionCap
	if ratio > 1 {
		ratio = 1
	}
	score := ratio * completionSplit
	if containsNumeric(words) {
		score += 1 - completionSplit
	}
	return types.Clamp01(score)
}

func containsNumeric(words []string) bool {
	for _, w := range words {
		for _, r := range w {
			if unicode.IsDigit(r) {
				return true
			}
		}
	}
	return false
}

func (v *Validator) containsSentiment(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range v.sentiment {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
