package engine

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/fuzzy"
	"github.com/pitchflow/pitchflow/internal/metrics"
	"github.com/pitchflow/pitchflow/phase"
	"github.com/pitchflow/pitchflow/router"
	"github.com/pitchflow/pitchflow/tracker"
	"github.com/pitchflow/pitchflow/types"
	"github.com/pitchflow/pitchflow/validator"
)

// Commitment temperature follows a bounded exponential moving average of
// turn scores, nudged by detected buying and resistance signals.
const (
	temperatureDecay    = 0.7
	temperatureGain     = 0.3
	objectionPenalty    = 0.1
	purchaseIntentBoost = 0.1
)

// Engine runs scripted sales-training conversations turn by turn.
type Engine struct {
	cfg       *config.StrategyConfig
	tracker   *tracker.Tracker
	matcher   *fuzzy.Matcher
	validator *validator.Validator
	phases    *phase.Manager
	router    *router.Router
	metrics   *metrics.Collector
	logger    *zap.Logger
	now       func() time.Time
}

// Options carries the collaborators an Engine needs. Tracker, Matcher,
// Validator, Phases, and Router are required; Metrics may be nil.
type Options struct {
	Tracker   *tracker.Tracker
	Matcher   *fuzzy.Matcher
	Validator *validator.Validator
	Phases    *phase.Manager
	Router    *router.Router
	Metrics   *metrics.Collector
	Logger    *zap.Logger
	Now       func() time.Time
}

// New creates an Engine for the given strategy.
func New(cfg *config.StrategyConfig, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		cfg:       cfg,
		tracker:   opts.Tracker,
		matcher:   opts.Matcher,
		validator: opts.Validator,
		phases:    opts.Phases,
		router:    opts.Router,
		metrics:   opts.Metrics,
		logger:    logger.With(zap.String("component", "conversation_engine")),
		now:       now,
	}
}

// GenerateResponse processes one user turn end to end and returns the
// structured decision. Turns for the same session serialize on the session's
// turn lock; different sessions proceed independently.
func (e *Engine) GenerateResponse(sessionID, userText string) (*types.TurnResult, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, types.NewInvalidArgument("session id", "must not be empty")
	}

	unlock := e.tracker.LockTurn(sessionID)
	defer unlock()
	start := e.now()

	e.tracker.AddMessage(sessionID, types.RoleUser, userText)

	intent, _ := e.matcher.DetectIntent(userText)
	objections := e.matcher.DetectObjectionSignals(userText)
	for _, obj := range objections {
		e.tracker.AddObjectionSignal(sessionID, obj.Type, userText, obj.Confidence)
		e.metrics.RecordObjection(string(obj.Type))
	}

	currentPhase := e.phases.Current(sessionID)
	captureKey := e.cfg.PrimaryCapture(currentPhase)
	wordCount := len(strings.Fields(userText))

	var (
		action   types.TurnAction
		response string
		score    float64
	)

	if wordCount >= e.cfg.Thresholds.MinWordCount {
		res := e.validator.Validate(userText, captureKey, currentPhase)
		score = res.Score
		e.tracker.SetCapture(sessionID, captureKey, userText, res.Score)
		if res.SentimentDetected {
			e.tracker.AddEmotionalHook(sessionID, userText)
		}
		if captureKey == "pain_point" {
			e.tracker.AddPainPoint(sessionID, userText)
		}

		scores := e.tracker.GetAllCompletionScores(sessionID)
		ready := false
		if next := e.peekNext(currentPhase); next != "" {
			ready, _ = e.matcher.DetectTransitionReadiness(userText, currentPhase, next)
		}

		switch {
		case e.phases.CanAdvance(scores) || (ready && len(scores) > 0):
			newPhase := e.phases.Advance(sessionID)
			e.metrics.RecordPhaseAdvance(string(newPhase))
			response = "Great, that gives me a clear picture. " +
				e.router.FormatWithContext(e.router.OpeningQuestion(newPhase), sessionID)
			action = types.ActionAdvance
			currentPhase = newPhase
		case res.NeedsProbe:
			probeType := e.validator.ProbeRecommendation(res)
			response = "Thanks for sharing that. " + e.router.ProbeQuestion(currentPhase, probeType)
			action = types.ActionProbeDeeper
			e.tracker.IncrementProbeCount(sessionID, captureKey)
			e.metrics.RecordProbe(string(probeType))
		default:
			response = "Understood. " +
				e.router.FormatWithContext(e.router.OpeningQuestion(currentPhase), sessionID)
			action = types.ActionAcknowledge
		}
	} else {
		// Too short to score: ask for elaboration around the phase question.
		response = "Could you tell me a bit more? " +
			e.router.FormatWithContext(e.router.OpeningQuestion(currentPhase), sessionID)
		action = types.ActionProbeDeeper
		e.tracker.IncrementProbeCount(sessionID, captureKey)
		e.metrics.RecordProbe(string(types.ProbeDepth))
	}

	temperature := e.updateTemperature(sessionID, score, intent, len(objections))

	e.tracker.AddMessage(sessionID, types.RoleAssistant, response)

	snap := e.tracker.GetContext(sessionID)
	result := &types.TurnResult{
		ResponseText: response,
		Phase:        currentPhase,
		Metadata: types.TurnMetadata{
			SessionID:             sessionID,
			CompletionScores:      snap.CompletionScores,
			ObjectionSignals:      snap.ObjectionSignals,
			IntentDetected:        intent,
			CommitmentTemperature: temperature,
			ActionTaken:           action,
		},
	}

	e.metrics.RecordTurn(string(action), e.now().Sub(start))
	e.metrics.ObserveCommitment(string(currentPhase), temperature)
	e.logger.Info("turn processed",
		zap.String("session_id", sessionID),
		zap.String("phase", string(currentPhase)),
		zap.String("action", string(action)),
		zap.String("intent", intent),
		zap.Int("objections", len(objections)))
	return result, nil
}

// ResetConversation destroys the session state entirely.
func (e *Engine) ResetConversation(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return types.NewInvalidArgument("session id", "must not be empty")
	}
	e.tracker.ClearSession(sessionID)
	e.metrics.RecordReset()
	return nil
}

// ResetPhases returns the session to the first phase without destroying its
// conversation history or signal state.
func (e *Engine) ResetPhases(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return types.NewInvalidArgument("session id", "must not be empty")
	}
	e.phases.Reset(sessionID)
	return nil
}

// ConversationSummary returns the reporting view of a session.
func (e *Engine) ConversationSummary(sessionID string) (*types.ConversationSummary, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, types.NewInvalidArgument("session id", "must not be empty")
	}
	snap := e.tracker.GetContext(sessionID)
	return &types.ConversationSummary{
		Session:  e.tracker.GetSessionSummary(sessionID),
		Progress: e.phases.Progress(sessionID),
		Captures: snap.Captures,
	}, nil
}

// updateTemperature folds the latest turn signal into the running commitment
// temperature estimate. The tracker clamps the stored value to [0,1].
func (e *Engine) updateTemperature(sessionID string, score float64, intent string, objectionCount int) float64 {
	old := e.tracker.GetSessionSummary(sessionID).CommitmentTemperature
	next := temperatureDecay*old + temperatureGain*score
	next -= objectionPenalty * float64(objectionCount)
	if intent == "purchase_intent" {
		next += purchaseIntentBoost
	}
	return e.tracker.UpdateCommitmentTemperature(sessionID, next)
}

// peekNext returns the phase after p in the configured sequence, or "".
func (e *Engine) peekNext(p types.Phase) types.Phase {
	idx := e.cfg.PhaseIndex(p)
	if idx < 0 || idx+1 >= len(e.cfg.Phases) {
		return ""
	}
	return e.cfg.Phases[idx+1]
}
