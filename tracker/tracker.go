package tracker

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/types"
)

// Config configures a Tracker.
type Config struct {
	// FirstPhase is the phase assigned to lazily created sessions.
	FirstPhase types.Phase

	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

type entry struct {
	mu     sync.Mutex // guards session fields
	turnMu sync.Mutex // held by the engine across a whole turn
	s      *types.Session
}

// Tracker is an in-memory session store.
type Tracker struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	firstPhase types.Phase
	now        func() time.Time
	logger     *zap.Logger
}

// New creates a Tracker.
func New(cfg Config, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Tracker{
		sessions:   make(map[string]*entry),
		firstPhase: cfg.FirstPhase,
		now:        now,
		logger:     logger.With(zap.String("component", "context_tracker")),
	}
}

// getOrCreate returns the entry for id, creating it with defaults if absent.
func (t *Tracker) getOrCreate(id string) *entry {
	t.mu.RLock()
	e, ok := t.sessions[id]
	t.mu.RUnlock()
	if ok {
		return e
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok = t.sessions[id]; ok {
		return e
	}
	now := t.now()
	e = &entry{s: &types.Session{
		ID:               id,
		CurrentPhase:     t.firstPhase,
		Captures:         make(map[string]string),
		CompletionScores: make(map[string]float64),
		ProbeCounts:      make(map[string]int),
		CreatedAt:        now,
		UpdatedAt:        now,
	}}
	t.sessions[id] = e
	t.logger.Debug("session created", zap.String("session_id", id))
	return e
}

// LockTurn acquires the session's turn mutex and returns the unlock func.
// Turns for the same session serialize here; other sessions are unaffected.
func (t *Tracker) LockTurn(id string) func() {
	e := t.getOrCreate(id)
	e.turnMu.Lock()
	return e.turnMu.Unlock
}

// GetContext returns a deep-copy snapshot of the session, lazily creating it
// with defaults on first access.
func (t *Tracker) GetContext(id string) *types.Session {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.s)
}

// AddMessage appends a message to the session history with a generated
// timestamp and returns it.
func (t *Tracker) AddMessage(id string, role types.Role, text string) types.Message {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	msg := types.NewMessage(role, text, t.now())
	e.s.History = append(e.s.History, msg)
	e.s.UpdatedAt = msg.Timestamp
	return msg
}

// SetCapture stores a captured value and its completion score under key.
// Captures and completion scores always share the same key set.
func (t *Tracker) SetCapture(id, key, value string, score float64) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.Captures[key] = value
	e.s.CompletionScores[key] = types.Clamp01(score)
	e.s.UpdatedAt = t.now()
}

// GetCapture returns the captured value for key, if any.
func (t *Tracker) GetCapture(id, key string) (string, bool) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.s.Captures[key]
	return v, ok
}

// GetCompletionScore returns the completion score for key, or 0.
func (t *Tracker) GetCompletionScore(id, key string) float64 {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.CompletionScores[key]
}

// GetAllCompletionScores returns a snapshot copy of all completion scores.
func (t *Tracker) GetAllCompletionScores(id string) map[string]float64 {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]float64, len(e.s.CompletionScores))
	for k, v := range e.s.CompletionScores {
		out[k] = v
	}
	return out
}

// IncrementProbeCount bumps the probe count for key and returns the new count.
func (t *Tracker) IncrementProbeCount(id, key string) int {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.ProbeCounts[key]++
	e.s.UpdatedAt = t.now()
	return e.s.ProbeCounts[key]
}

// GetProbeCount returns the probe count for key, or 0.
func (t *Tracker) GetProbeCount(id, key string) int {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.ProbeCounts[key]
}

// AddEmotionalHook records affect-bearing language the user volunteered.
func (t *Tracker) AddEmotionalHook(id, text string) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.EmotionalHooks = append(e.s.EmotionalHooks, text)
	e.s.UpdatedAt = t.now()
}

// AddPainPoint records a stated pain point.
func (t *Tracker) AddPainPoint(id, text string) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.PainPoints = append(e.s.PainPoints, text)
	e.s.UpdatedAt = t.now()
}

// AddObjectionSignal appends a detected objection with a generated timestamp.
func (t *Tracker) AddObjectionSignal(id string, typ types.ObjectionType, trigger string, confidence float64) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.ObjectionSignals = append(e.s.ObjectionSignals, types.ObjectionSignal{
		Type:        typ,
		TriggerText: trigger,
		Confidence:  confidence,
		Timestamp:   t.now(),
	})
	e.s.UpdatedAt = t.now()
}

// UpdateCommitmentTemperature sets the commitment temperature, clamped to
// [0,1], and returns the stored value.
func (t *Tracker) UpdateCommitmentTemperature(id string, v float64) float64 {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.CommitmentTemperature = types.Clamp01(v)
	e.s.UpdatedAt = t.now()
	return e.s.CommitmentTemperature
}

// GetPhase returns the session's current phase.
func (t *Tracker) GetPhase(id string) types.Phase {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s.CurrentPhase
}

// SetPhase stores the session's current phase.
func (t *Tracker) SetPhase(id string, phase types.Phase) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.CurrentPhase = phase
	e.s.UpdatedAt = t.now()
}

// ResetPhaseState returns the session to the given phase and clears capture,
// score, and probe state. History, emotional hooks, pain points, objection
// signals, and commitment temperature persist across resets.
func (t *Tracker) ResetPhaseState(id string, phase types.Phase) {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.s.CurrentPhase = phase
	e.s.Captures = make(map[string]string)
	e.s.CompletionScores = make(map[string]float64)
	e.s.ProbeCounts = make(map[string]int)
	e.s.UpdatedAt = t.now()
}

// ClearSession destroys the session. Clearing a missing session is a no-op.
func (t *Tracker) ClearSession(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.sessions[id]; ok {
		delete(t.sessions, id)
		t.logger.Debug("session cleared", zap.String("session_id", id))
	}
}

// SessionExists reports whether the session has been created.
func (t *Tracker) SessionExists(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.sessions[id]
	return ok
}

// GetSessionSummary returns a rollup of the session for reporting.
func (t *Tracker) GetSessionSummary(id string) types.SessionSummary {
	e := t.getOrCreate(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	avg := 0.0
	if n := len(e.s.CompletionScores); n > 0 {
		sum := 0.0
		for _, v := range e.s.CompletionScores {
			sum += v
		}
		avg = sum / float64(n)
	}
	return types.SessionSummary{
		MessageCount:          len(e.s.History),
		CapturesCount:         len(e.s.Captures),
		AverageCompletion:     avg,
		CurrentPhase:          e.s.CurrentPhase,
		CommitmentTemperature: e.s.CommitmentTemperature,
	}
}

func snapshot(s *types.Session) *types.Session {
	out := *s
	out.History = append([]types.Message(nil), s.History...)
	out.EmotionalHooks = append([]string(nil), s.EmotionalHooks...)
	out.PainPoints = append([]string(nil), s.PainPoints...)
	out.ObjectionSignals = append([]types.ObjectionSignal(nil), s.ObjectionSignals...)
	out.Captures = make(map[string]string, len(s.Captures))
	for k, v := range s.Captures {
		out.Captures[k] = v
	}
	out.CompletionScores = make(map[string]float64, len(s.CompletionScores))
	for k, v := range s.CompletionScores {
		out.CompletionScores[k] = v
	}
	out.ProbeCounts = make(map[string]int, len(s.ProbeCounts))
	for k, v := range s.ProbeCounts {
		out.ProbeCounts[k] = v
	}
	return &out
}
