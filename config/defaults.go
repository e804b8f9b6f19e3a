package config

import "github.com/pitchflow/pitchflow/types"

// DefaultThresholds returns the scoring constants shared by the built-in
// strategies.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Similarity:   70,
		Sufficiency:  0.4,
		PhaseGate:    0.2,
		MinWordCount: 2,
	}
}

// DefaultStrategy returns the consultative strategy: the full six-phase
// discovery sequence.
func DefaultStrategy() *StrategyConfig {
	return &StrategyConfig{
		Name: "consultative",
		Phases: []types.Phase{
			types.PhaseIntent,
			types.PhaseProblem,
			types.PhaseSolution,
			types.PhaseValue,
			types.PhaseObjection,
			types.PhaseClose,
		},
		RequiredCaptures: map[types.Phase][]string{
			types.PhaseIntent:    {"goal", "motivation"},
			types.PhaseProblem:   {"pain_point", "current_impact"},
			types.PhaseSolution:  {"desired_outcome", "success_criteria"},
			types.PhaseValue:     {"value_driver", "budget_range"},
			types.PhaseObjection: {"main_concern"},
			types.PhaseClose:     {"commitment", "next_step"},
		},
		OpeningQuestions: map[types.Phase]string{
			types.PhaseIntent:    "What brings you here today, and what are you hoping to achieve?",
			types.PhaseProblem:   "What's the biggest obstacle standing between you and {goal}?",
			types.PhaseSolution:  "If {pain_point} were solved tomorrow, what would that look like for you?",
			types.PhaseValue:     "What would achieving {desired_outcome} be worth to your business?",
			types.PhaseObjection: "What concerns do you still have about moving forward?",
			types.PhaseClose:     "It sounds like we have a fit. What would you need to get started?",
		},
		ProbeQuestions: map[types.Phase]map[types.ProbeType]string{
			types.PhaseIntent: {
				types.ProbeEmotion:     "How does falling short of that goal make you feel?",
				types.ProbeSpecificity: "Can you put a number on that goal, a percentage or a figure?",
				types.ProbeTimeline:    "When do you need to hit that goal by?",
				types.ProbeImpact:      "What happens to the business if that goal slips?",
			},
			types.PhaseProblem: {
				types.ProbeEmotion:     "What's the most frustrating part of dealing with that?",
				types.ProbeSpecificity: "How often does that problem actually come up, daily, weekly?",
				types.ProbeTimeline:    "How long has this been going on?",
				types.ProbeImpact:      "What is this problem costing you right now?",
			},
			types.PhaseSolution: {
				types.ProbeEmotion:     "How would solving this change your day-to-day?",
				types.ProbeSpecificity: "What specifically would need to be true for you to call it solved?",
				types.ProbeTimeline:    "How quickly would you want to see results?",
				types.ProbeImpact:      "Who else on your team would benefit from that outcome?",
			},
			types.PhaseValue: {
				types.ProbeEmotion:     "What would it mean to you personally to deliver that result?",
				types.ProbeSpecificity: "Can you estimate that value in revenue or hours saved?",
				types.ProbeTimeline:    "Over what period would that value accumulate?",
				types.ProbeImpact:      "How does that compare to what you're spending today?",
			},
			types.PhaseObjection: {
				types.ProbeEmotion:     "What's really behind that hesitation?",
				types.ProbeSpecificity: "Which part of the proposal specifically concerns you?",
				types.ProbeTimeline:    "Is the timing the issue, or the approach itself?",
				types.ProbeImpact:      "What would happen if you decided to do nothing?",
			},
			types.PhaseClose: {
				types.ProbeEmotion:     "How confident are you feeling about this decision?",
				types.ProbeSpecificity: "What exactly would you need to see before signing off?",
				types.ProbeTimeline:    "What does your decision timeline look like?",
				types.ProbeImpact:      "Who else needs to be involved in the final call?",
			},
		},
		FallbackQuestion: "Tell me more about that.",
		Intents: map[string][]string{
			"budget_inquiry":    {"budget", "cost", "price", "pricing", "afford"},
			"timeline_inquiry":  {"when", "timeline", "deadline", "how long", "schedule"},
			"feature_inquiry":   {"feature", "capability", "integration", "support", "how does"},
			"comparison":        {"competitor", "alternative", "versus", "compare", "other options"},
			"purchase_intent":   {"buy", "purchase", "sign up", "get started", "move forward"},
			"demo_request":      {"demo", "trial", "show me", "see it", "walkthrough"},
		},
		ObjectionKeywords: map[types.ObjectionType][]string{
			types.ObjectionPriceSensitivity: {"expensive", "too much", "cost", "afford", "cheaper", "budget"},
			types.ObjectionTime:             {"not now", "later", "busy", "next quarter", "no time", "too soon"},
			types.ObjectionAuthority:        {"my boss", "decision maker", "approval", "committee", "not my call"},
			types.ObjectionCompetitor:       {"competitor", "already using", "other vendor", "alternative", "switch"},
			types.ObjectionSkepticism:       {"not sure", "doubt", "really work", "prove", "skeptical", "guarantee"},
		},
		TransitionSignals: map[types.Phase]map[types.Phase][]string{
			types.PhaseIntent: {
				types.PhaseProblem: {"struggling with", "problem is", "challenge", "frustrated"},
			},
			types.PhaseProblem: {
				types.PhaseSolution: {"need a way", "looking for", "how can we", "want to fix"},
			},
			types.PhaseSolution: {
				types.PhaseValue: {"that would help", "sounds good", "makes sense", "interested"},
			},
			types.PhaseValue: {
				types.PhaseObjection: {"but", "however", "concern", "worried", "what about"},
			},
			types.PhaseObjection: {
				types.PhaseClose: {"fair enough", "that answers it", "ok let's", "makes sense"},
			},
		},
		SentimentWords: []string{
			"frustrated", "worried", "excited", "afraid", "stressed", "love",
			"hate", "anxious", "confident", "overwhelmed", "hopeful", "scared",
			"annoyed", "thrilled", "desperate", "relieved",
		},
		MatcherMode: MatcherModeLevenshtein,
		Thresholds:  DefaultThresholds(),
	}
}

// TransactionalStrategy returns the short-cycle strategy used for
// transactional sales roleplay: intent straight to value and close.
func TransactionalStrategy() *StrategyConfig {
	base := DefaultStrategy()
	return &StrategyConfig{
		Name: "transactional",
		Phases: []types.Phase{
			types.PhaseIntent,
			types.PhaseValue,
			types.PhaseClose,
		},
		RequiredCaptures: map[types.Phase][]string{
			types.PhaseIntent: {"goal"},
			types.PhaseValue:  {"value_driver"},
			types.PhaseClose:  {"commitment"},
		},
		OpeningQuestions: map[types.Phase]string{
			types.PhaseIntent: "What are you looking to buy today?",
			types.PhaseValue:  "What matters most to you in this purchase?",
			types.PhaseClose:  "Ready to wrap this up, shall we get you started?",
		},
		ProbeQuestions: map[types.Phase]map[types.ProbeType]string{
			types.PhaseIntent: base.ProbeQuestions[types.PhaseIntent],
			types.PhaseValue:  base.ProbeQuestions[types.PhaseValue],
			types.PhaseClose:  base.ProbeQuestions[types.PhaseClose],
		},
		FallbackQuestion:  base.FallbackQuestion,
		Intents:           base.Intents,
		ObjectionKeywords: base.ObjectionKeywords,
		TransitionSignals: map[types.Phase]map[types.Phase][]string{
			types.PhaseIntent: {
				types.PhaseValue: {"looking for", "need", "want to buy"},
			},
			types.PhaseValue: {
				types.PhaseClose: {"sounds good", "makes sense", "let's do it"},
			},
		},
		SentimentWords: base.SentimentWords,
		MatcherMode:    MatcherModeLevenshtein,
		Thresholds:     DefaultThresholds(),
	}
}
