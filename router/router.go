package router

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/phase"
	"github.com/pitchflow/pitchflow/tracker"
	"github.com/pitchflow/pitchflow/types"
	"github.com/pitchflow/pitchflow/validator"
)

// placeholderPattern matches {capture_key} template slots.
var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Router picks and renders question text.
type Router struct {
	opening  map[types.Phase]string
	probes   map[types.Phase]map[types.ProbeType]string
	fallback string

	phases    *phase.Manager
	tracker   *tracker.Tracker
	validator *validator.Validator
	logger    *zap.Logger
}

// New creates a Router over the strategy's question tables.
func New(cfg *config.StrategyConfig, pm *phase.Manager, tr *tracker.Tracker, val *validator.Validator, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		opening:   cfg.OpeningQuestions,
		probes:    cfg.ProbeQuestions,
		fallback:  cfg.FallbackQuestion,
		phases:    pm,
		tracker:   tr,
		validator: val,
		logger:    logger.With(zap.String("component", "question_router")),
	}
}

// OpeningQuestion returns the question that opens the phase, or the generic
// fallback when the phase is unconfigured.
func (r *Router) OpeningQuestion(p types.Phase) string {
	if q, ok := r.opening[p]; ok {
		return q
	}
	return r.fallback
}

// ProbeQuestion returns the targeted follow-up for (phase, probe type), or
// the generic fallback when unconfigured.
func (r *Router) ProbeQuestion(p types.Phase, probe types.ProbeType) string {
	if q, ok := r.probes[p][probe]; ok {
		return q
	}
	return r.fallback
}

// FormatWithContext replaces every {capture_key} placeholder that has a
// stored capture with its value. Placeholders with no matching capture are
// left verbatim.
func (r *Router) FormatWithContext(template, sessionID string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.Trim(match, "{}")
		if v, ok := r.tracker.GetCapture(sessionID, key); ok {
			return v
		}
		return match
	})
}

// ShouldProbeDeeper reports whether the answer for captureKey needs a
// follow-up, i.e. validation judged it insufficient.
func (r *Router) ShouldProbeDeeper(sessionID, text, captureKey string) bool {
	res := r.validator.Validate(text, captureKey, r.phases.Current(sessionID))
	return !res.Sufficient
}

// NextQuestion returns the next question for the session. With answer text
// that needs probing it returns a specificity probe for the current phase;
// otherwise the phase's opening question, rendered with captured context.
func (r *Router) NextQuestion(sessionID, text string) string {
	current := r.phases.Current(sessionID)
	if text != "" {
		key := r.primaryCaptureKey(current)
		if r.ShouldProbeDeeper(sessionID, text, key) {
			return r.ProbeQuestion(current, types.ProbeSpecificity)
		}
	}
	return r.FormatWithContext(r.OpeningQuestion(current), sessionID)
}

func (r *Router) primaryCaptureKey(p types.Phase) string {
	if keys := r.phases.RequiredCaptures(p); len(keys) > 0 {
		return keys[0]
	}
	return string(p)
}
