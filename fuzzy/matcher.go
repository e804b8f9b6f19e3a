package fuzzy

import (
	"sort"

	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/types"
)

// ObjectionCandidate is a detected objection type with its best-match
// confidence in [0,1].
type ObjectionCandidate struct {
	Type       types.ObjectionType
	Confidence float64
}

// Matcher detects intents, objection signals, and transition readiness in
// free text using approximate keyword matching.
type Matcher struct {
	scorer     Scorer
	intents    map[string][]string
	objections map[types.ObjectionType][]string
	signals    map[types.Phase]map[types.Phase][]string
	threshold  float64 // 0-100 scale
	logger     *zap.Logger
}

// NewMatcher creates a matcher from the strategy's keyword tables. The
// strategy's matcher mode selects the scorer.
func NewMatcher(cfg *config.StrategyConfig, logger *zap.Logger) (*Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	scorer, err := NewScorer(cfg.MatcherMode)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		scorer:     scorer,
		intents:    cfg.Intents,
		objections: cfg.ObjectionKeywords,
		signals:    cfg.TransitionSignals,
		threshold:  float64(cfg.Thresholds.Similarity),
		logger:     logger.With(zap.String("component", "fuzzy_matcher")),
	}, nil
}

// MatchIntent returns the best-matching intent name for text against the
// given keyword table, or false if no keyword of any intent clears the
// similarity threshold. Intents with multiple matching keywords receive a
// 10% boost per extra match.
func (m *Matcher) MatchIntent(text string, intents map[string][]string) (string, bool) {
	bestName := ""
	bestScore := 0.0

	// Deterministic iteration so equal scores resolve stably.
	names := make([]string, 0, len(intents))
	for name := range intents {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sum := 0.0
		matches := 0
		for _, kw := range intents[name] {
			if s := m.scorer.PartialRatio(kw, text); s >= m.threshold {
				sum += s
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		score := (sum / float64(matches)) * (1 + 0.1*float64(matches-1))
		if score > bestScore {
			bestScore = score
			bestName = name
		}
	}
	if bestName == "" {
		return "", false
	}
	m.logger.Debug("intent matched", zap.String("intent", bestName), zap.Float64("score", bestScore))
	return bestName, true
}

// DetectIntent matches text against the strategy's configured intent table.
func (m *Matcher) DetectIntent(text string) (string, bool) {
	return m.MatchIntent(text, m.intents)
}

// DetectObjectionSignals returns every objection type whose best keyword
// similarity clears the threshold, ordered by descending confidence.
func (m *Matcher) DetectObjectionSignals(text string) []ObjectionCandidate {
	var out []ObjectionCandidate
	for typ, keywords := range m.objections {
		best := 0.0
		for _, kw := range keywords {
			if s := m.scorer.PartialRatio(kw, text); s > best {
				best = s
			}
		}
		if best >= m.threshold {
			out = append(out, ObjectionCandidate{Type: typ, Confidence: best / 100})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// DetectTransitionReadiness checks text for phrases signalling readiness to
// move from one phase to the next. Unconfigured phase pairs report not ready
// with zero confidence.
func (m *Matcher) DetectTransitionReadiness(text string, from, to types.Phase) (bool, float64) {
	phrases, ok := m.signals[from][to]
	if !ok || len(phrases) == 0 {
		return false, 0.0
	}
	best := 0.0
	for _, phrase := range phrases {
		if s := m.scorer.PartialRatio(phrase, text); s > best {
			best = s
		}
	}
	confidence := best / 100
	return confidence >= m.threshold/100, confidence
}
