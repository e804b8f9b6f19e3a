package types

import "time"

// Phase is a named stage of the scripted sales conversation.
type Phase string

// Default phase names used by the built-in strategies. Strategies may define
// their own phase sequences; these constants cover the consultative default.
const (
	PhaseIntent    Phase = "intent"
	PhaseProblem   Phase = "problem"
	PhaseSolution  Phase = "solution"
	PhaseValue     Phase = "value"
	PhaseObjection Phase = "objection"
	PhaseClose     Phase = "close"
)

// ObjectionType classifies a detected resistance pattern.
type ObjectionType string

const (
	ObjectionPriceSensitivity ObjectionType = "price_sensitivity"
	ObjectionTime             ObjectionType = "time_objection"
	ObjectionAuthority        ObjectionType = "authority"
	ObjectionCompetitor       ObjectionType = "competitor"
	ObjectionSkepticism       ObjectionType = "skepticism"
)

// ObjectionSignal is one detected resistance pattern with its confidence.
type ObjectionSignal struct {
	Type        ObjectionType `json:"type"`
	TriggerText string        `json:"trigger_text"`
	Confidence  float64       `json:"confidence"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Session holds all per-conversation state. It is owned by the context
// tracker; other components must read and write it through tracker methods,
// never through a private copy.
type Session struct {
	ID                    string             `json:"id"`
	CurrentPhase          Phase              `json:"current_phase"`
	History               []Message          `json:"conversation_history"`
	Captures              map[string]string  `json:"captures"`
	CompletionScores      map[string]float64 `json:"completion_scores"`
	ProbeCounts           map[string]int     `json:"probe_counts"`
	EmotionalHooks        []string           `json:"emotional_hooks"`
	PainPoints            []string           `json:"pain_points"`
	ObjectionSignals      []ObjectionSignal  `json:"objection_signals"`
	CommitmentTemperature float64            `json:"commitment_temperature"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// SessionSummary is a point-in-time rollup of a session for reporting.
type SessionSummary struct {
	MessageCount          int     `json:"message_count"`
	CapturesCount         int     `json:"captures_count"`
	AverageCompletion     float64 `json:"average_completion"`
	CurrentPhase          Phase   `json:"current_phase"`
	CommitmentTemperature float64 `json:"commitment_temperature"`
}

// PhaseProgress reports how far along the current phase is.
type PhaseProgress struct {
	CurrentPhase       Phase   `json:"current_phase"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

// ConversationSummary bundles the reporting views used by persistence and
// analytics collaborators.
type ConversationSummary struct {
	Session  SessionSummary    `json:"session_summary"`
	Progress PhaseProgress     `json:"phase_progress"`
	Captures map[string]string `json:"captures"`
}

// Clamp01 clamps v to the [0,1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
