package config

import (
	"fmt"

	"github.com/pitchflow/pitchflow/types"
)

// Thresholds holds the fixed scoring constants of a strategy.
type Thresholds struct {
	// Similarity is the fuzzy-match cutoff on a 0-100 scale.
	Similarity int `yaml:"similarity" env:"SIMILARITY"`
	// Sufficiency is the minimum validation score for an answer to count
	// as progress.
	Sufficiency float64 `yaml:"sufficiency" env:"SUFFICIENCY"`
	// PhaseGate is the minimum mean completion score required to advance
	// to the next phase.
	PhaseGate float64 `yaml:"phase_gate" env:"PHASE_GATE"`
	// MinWordCount is the minimum number of words for an answer to be
	// scored at all.
	MinWordCount int `yaml:"min_word_count" env:"MIN_WORD_COUNT"`
}

// StrategyConfig is the complete configuration for one conversation strategy
// (e.g. consultative vs. transactional). All tables are data, not code, so
// personas and languages can swap them without touching the engine.
type StrategyConfig struct {
	// Name identifies the strategy.
	Name string `yaml:"name" env:"NAME"`

	// Phases is the fixed, ordered, acyclic phase sequence.
	Phases []types.Phase `yaml:"phases"`

	// RequiredCaptures maps each phase to the ordered capture keys it must
	// fill. The first key of a phase is the primary capture for answers
	// given in that phase.
	RequiredCaptures map[types.Phase][]string `yaml:"required_captures"`

	// OpeningQuestions maps each phase to the question that opens it.
	OpeningQuestions map[types.Phase]string `yaml:"opening_questions"`

	// ProbeQuestions maps (phase, probe type) to a targeted follow-up.
	ProbeQuestions map[types.Phase]map[types.ProbeType]string `yaml:"probe_questions"`

	// FallbackQuestion is returned when a phase or probe type has no
	// configured entry.
	FallbackQuestion string `yaml:"fallback_question"`

	// Intents maps intent names to their keyword lists.
	Intents map[string][]string `yaml:"intents"`

	// ObjectionKeywords maps each objection type to its keyword list.
	ObjectionKeywords map[types.ObjectionType][]string `yaml:"objection_keywords"`

	// TransitionSignals maps an ordered (from, to) phase pair to the
	// phrases that signal readiness for that transition.
	TransitionSignals map[types.Phase]map[types.Phase][]string `yaml:"transition_signals"`

	// SentimentWords is the affect lexicon used by answer validation.
	SentimentWords []string `yaml:"sentiment_words"`

	// MatcherMode selects the fuzzy scoring strategy. "levenshtein" is the
	// only built-in implementation; unknown values fail validation.
	MatcherMode string `yaml:"matcher_mode" env:"MATCHER_MODE"`

	Thresholds Thresholds `yaml:"thresholds"`
}

// Validate checks structural consistency of the strategy.
func (c *StrategyConfig) Validate() error {
	if c.Name == "" {
		return types.NewError(types.ErrInvalidConfig, "strategy name is required")
	}
	if len(c.Phases) == 0 {
		return types.NewError(types.ErrInvalidConfig, "at least one phase is required")
	}
	seen := make(map[types.Phase]bool, len(c.Phases))
	for _, p := range c.Phases {
		if p == "" {
			return types.NewError(types.ErrInvalidConfig, "empty phase name")
		}
		if seen[p] {
			return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("duplicate phase %q", p))
		}
		seen[p] = true
	}
	for phase := range c.RequiredCaptures {
		if !seen[phase] {
			return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("required_captures references unknown phase %q", phase))
		}
	}
	for phase := range c.OpeningQuestions {
		if !seen[phase] {
			return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("opening_questions references unknown phase %q", phase))
		}
	}
	for from, tos := range c.TransitionSignals {
		if !seen[from] {
			return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("transition_signals references unknown phase %q", from))
		}
		for to := range tos {
			if !seen[to] {
				return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("transition_signals references unknown phase %q", to))
			}
		}
	}
	if c.Thresholds.Similarity < 0 || c.Thresholds.Similarity > 100 {
		return types.NewError(types.ErrInvalidConfig, "similarity threshold must be in [0,100]")
	}
	if c.Thresholds.Sufficiency < 0 || c.Thresholds.Sufficiency > 1 {
		return types.NewError(types.ErrInvalidConfig, "sufficiency threshold must be in [0,1]")
	}
	if c.Thresholds.PhaseGate < 0 || c.Thresholds.PhaseGate > 1 {
		return types.NewError(types.ErrInvalidConfig, "phase gate threshold must be in [0,1]")
	}
	if c.Thresholds.MinWordCount < 1 {
		return types.NewError(types.ErrInvalidConfig, "min word count must be at least 1")
	}
	if c.MatcherMode != MatcherModeLevenshtein {
		return types.NewError(types.ErrInvalidConfig, fmt.Sprintf("unknown matcher mode %q", c.MatcherMode))
	}
	return nil
}

// MatcherModeLevenshtein is the only built-in fuzzy scoring strategy.
const MatcherModeLevenshtein = "levenshtein"

// PhaseIndex returns the position of phase in the sequence, or -1.
func (c *StrategyConfig) PhaseIndex(phase types.Phase) int {
	for i, p := range c.Phases {
		if p == phase {
			return i
		}
	}
	return -1
}

// FirstPhase returns the first phase of the sequence.
func (c *StrategyConfig) FirstPhase() types.Phase {
	return c.Phases[0]
}

// PrimaryCapture returns the first required capture key of a phase. Phases
// with no configured captures fall back to the phase name itself, so answers
// are never dropped.
func (c *StrategyConfig) PrimaryCapture(phase types.Phase) string {
	if keys := c.RequiredCaptures[phase]; len(keys) > 0 {
		return keys[0]
	}
	return string(phase)
}

// Clone returns a deep copy of the strategy.
func (c *StrategyConfig) Clone() *StrategyConfig {
	out := *c
	out.Phases = append([]types.Phase(nil), c.Phases...)
	out.SentimentWords = append([]string(nil), c.SentimentWords...)

	out.RequiredCaptures = make(map[types.Phase][]string, len(c.RequiredCaptures))
	for k, v := range c.RequiredCaptures {
		out.RequiredCaptures[k] = append([]string(nil), v...)
	}
	out.OpeningQuestions = make(map[types.Phase]string, len(c.OpeningQuestions))
	for k, v := range c.OpeningQuestions {
		out.OpeningQuestions[k] = v
	}
	out.ProbeQuestions = make(map[types.Phase]map[types.ProbeType]string, len(c.ProbeQuestions))
	for k, v := range c.ProbeQuestions {
		inner := make(map[types.ProbeType]string, len(v))
		for pk, pv := range v {
			inner[pk] = pv
		}
		out.ProbeQuestions[k] = inner
	}
	out.Intents = make(map[string][]string, len(c.Intents))
	for k, v := range c.Intents {
		out.Intents[k] = append([]string(nil), v...)
	}
	out.ObjectionKeywords = make(map[types.ObjectionType][]string, len(c.ObjectionKeywords))
	for k, v := range c.ObjectionKeywords {
		out.ObjectionKeywords[k] = append([]string(nil), v...)
	}
	out.TransitionSignals = make(map[types.Phase]map[types.Phase][]string, len(c.TransitionSignals))
	for from, tos := range c.TransitionSignals {
		inner := make(map[types.Phase][]string, len(tos))
		for to, phrases := range tos {
			inner[to] = append([]string(nil), phrases...)
		}
		out.TransitionSignals[from] = inner
	}
	return &out
}
