package types

// ValidationResult is the outcome of scoring one free-text answer.
type ValidationResult struct {
	Score             float64  `json:"score"`
	Feedback          []string `json:"feedback"`
	Sufficient        bool     `json:"sufficient"`
	NeedsProbe        bool     `json:"needs_probe"`
	SentimentDetected bool     `json:"sentiment_detected"`
}

// ProbeType classifies the follow-up question issued when an answer is judged
// insufficient.
type ProbeType string

const (
	ProbeEmotion     ProbeType = "emotion"
	ProbeSpecificity ProbeType = "specificity"
	ProbeDepth       ProbeType = "depth"
	ProbeTimeline    ProbeType = "timeline"
	ProbeImpact      ProbeType = "impact"
)

// TurnAction describes what the engine decided to do with a turn.
type TurnAction string

const (
	ActionAdvance     TurnAction = "advance"
	ActionAcknowledge TurnAction = "acknowledge"
	ActionProbeDeeper TurnAction = "probe_deeper"
)

// TurnMetadata carries the latent signals a turn revealed.
type TurnMetadata struct {
	SessionID             string             `json:"session_id"`
	CompletionScores      map[string]float64 `json:"completion_scores"`
	ObjectionSignals      []ObjectionSignal  `json:"objection_signals"`
	IntentDetected        string             `json:"intent_detected,omitempty"`
	CommitmentTemperature float64            `json:"commitment_temperature"`
	ActionTaken           TurnAction         `json:"action_taken"`
}

// TurnResult is the structured decision for one full conversation turn.
type TurnResult struct {
	ResponseText string       `json:"response_text"`
	Phase        Phase        `json:"phase"`
	Metadata     TurnMetadata `json:"metadata"`
}
