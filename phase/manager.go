package phase

import (
	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/tracker"
	"github.com/pitchflow/pitchflow/types"
)

// Manager drives the phase state machine for sessions.
type Manager struct {
	phases   []types.Phase
	required map[types.Phase][]string
	gate     float64
	tracker  *tracker.Tracker
	logger   *zap.Logger
}

// NewManager creates a phase manager over the strategy's phase sequence.
func NewManager(cfg *config.StrategyConfig, tr *tracker.Tracker, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		phases:   cfg.Phases,
		required: cfg.RequiredCaptures,
		gate:     cfg.Thresholds.PhaseGate,
		tracker:  tr,
		logger:   logger.With(zap.String("component", "phase_manager")),
	}
}

// Current returns the session's phase. A stored phase that is not part of
// the configured sequence defaults to the first phase rather than failing.
func (m *Manager) Current(sessionID string) types.Phase {
	p := m.tracker.GetPhase(sessionID)
	if m.indexOf(p) < 0 {
		return m.phases[0]
	}
	return p
}

// RequiredCaptures returns the ordered capture keys the phase must fill.
func (m *Manager) RequiredCaptures(phase types.Phase) []string {
	return append([]string(nil), m.required[phase]...)
}

// CanAdvance reports whether the completion scores clear the phase gate:
// never with no scores, otherwise when their mean reaches the gate threshold.
func (m *Manager) CanAdvance(scores map[string]float64) bool {
	if len(scores) == 0 {
		return false
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return sum/float64(len(scores)) >= m.gate
}

// Advance moves the session to the next phase and persists it. At the
// terminal phase it stays put and returns the terminal phase unchanged, so
// repeated calls are idempotent.
func (m *Manager) Advance(sessionID string) types.Phase {
	current := m.Current(sessionID)
	idx := m.indexOf(current)
	if idx >= len(m.phases)-1 {
		return current
	}
	next := m.phases[idx+1]
	m.tracker.SetPhase(sessionID, next)
	m.logger.Info("phase advanced",
		zap.String("session_id", sessionID),
		zap.String("from", string(current)),
		zap.String("to", string(next)))
	return next
}

// Progress blends the captured-vs-required key ratio with the average
// completion score of the current phase's captures, as a 0-100 percentage.
func (m *Manager) Progress(sessionID string) types.PhaseProgress {
	current := m.Current(sessionID)
	required := m.required[current]
	if len(required) == 0 {
		return types.PhaseProgress{CurrentPhase: current, ProgressPercentage: 0}
	}

	scores := m.tracker.GetAllCompletionScores(sessionID)
	captured := 0
	scoreSum := 0.0
	for _, key := range required {
		if _, ok := m.tracker.GetCapture(sessionID, key); ok {
			captured++
			scoreSum += scores[key]
		}
	}
	capturedRatio := float64(captured) / float64(len(required))
	scoreAvg := 0.0
	if captured > 0 {
		scoreAvg = scoreSum / float64(captured)
	}
	pct := (capturedRatio*0.5 + scoreAvg*0.5) * 100
	return types.PhaseProgress{CurrentPhase: current, ProgressPercentage: pct}
}

// Reset returns the session to the first phase and clears its capture state.
// Objection and emotional history persist; only an explicit session clear
// removes them.
func (m *Manager) Reset(sessionID string) {
	m.tracker.ResetPhaseState(sessionID, m.phases[0])
	m.logger.Info("phase reset", zap.String("session_id", sessionID))
}

func (m *Manager) indexOf(p types.Phase) int {
	for i, phase := range m.phases {
		if phase == p {
			return i
		}
	}
	return -1
}
