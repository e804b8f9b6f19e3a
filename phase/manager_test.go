package phase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pitchflow/pitchflow/config"
	"github.com/pitchflow/pitchflow/tracker"
	"github.com/pitchflow/pitchflow/types"
)

func newTestManager() (*Manager, *tracker.Tracker, *config.StrategyConfig) {
	cfg := config.DefaultStrategy()
	tr := tracker.New(tracker.Config{FirstPhase: cfg.FirstPhase()}, zap.NewNop())
	return NewManager(cfg, tr, zap.NewNop()), tr, cfg
}

func TestManager_CurrentDefaultsToFirstPhase(t *testing.T) {
	m, tr, _ := newTestManager()

	assert.Equal(t, types.PhaseIntent, m.Current("fresh"))

	// A phase outside the configured sequence falls back to the first phase.
	tr.SetPhase("odd", "no_such_phase")
	assert.Equal(t, types.PhaseIntent, m.Current("odd"))
}

func TestManager_RequiredCaptures(t *testing.T) {
	m, _, _ := newTestManager()

	keys := m.RequiredCaptures(types.PhaseIntent)
	assert.Equal(t, []string{"goal", "motivation"}, keys)

	// Returned slice is a copy.
	keys[0] = "mutated"
	assert.Equal(t, []string{"goal", "motivation"}, m.RequiredCaptures(types.PhaseIntent))

	assert.Empty(t, m.RequiredCaptures("unknown"))
}

func TestManager_CanAdvance(t *testing.T) {
	m, _, _ := newTestManager()

	tests := []struct {
		name   string
		scores map[string]float64
		want   bool
	}{
		{"no scores", map[string]float64{}, false},
		{"nil scores", nil, false},
		{"mean exactly at gate", map[string]float64{"a": 0.2}, true},
		{"mean above gate", map[string]float64{"a": 0.1, "b": 0.5}, true},
		{"mean below gate", map[string]float64{"a": 0.05, "b": 0.1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CanAdvance(tt.scores))
		})
	}
}

func TestManager_AdvanceWalksSequenceAndStopsAtTerminal(t *testing.T) {
	m, _, cfg := newTestManager()

	want := cfg.Phases[1:]
	for _, expected := range want {
		assert.Equal(t, expected, m.Advance("s1"))
	}

	// Terminal phase is idempotent.
	assert.Equal(t, types.PhaseClose, m.Advance("s1"))
	assert.Equal(t, types.PhaseClose, m.Advance("s1"))
	assert.Equal(t, types.PhaseClose, m.Current("s1"))
}

func TestManager_AdvanceNeverDecreasesIndex(t *testing.T) {
	m, _, cfg := newTestManager()

	last := -1
	for i := 0; i < len(cfg.Phases)+3; i++ {
		p := m.Advance("s1")
		idx := cfg.PhaseIndex(p)
		require.GreaterOrEqual(t, idx, last)
		last = idx
	}
}

func TestManager_Progress(t *testing.T) {
	m, tr, _ := newTestManager()

	// Nothing captured yet.
	prog := m.Progress("s1")
	assert.Equal(t, types.PhaseIntent, prog.CurrentPhase)
	assert.Zero(t, prog.ProgressPercentage)

	// One of two required keys captured at 0.8: 50% of capture ratio (0.5)
	// plus 50% of score average (0.8).
	tr.SetCapture("s1", "goal", "grow 30%", 0.8)
	prog = m.Progress("s1")
	assert.InDelta(t, (0.5*0.5+0.8*0.5)*100, prog.ProgressPercentage, 1e-9)

	// Both captured.
	tr.SetCapture("s1", "motivation", "board pressure", 0.6)
	prog = m.Progress("s1")
	assert.InDelta(t, (1.0*0.5+0.7*0.5)*100, prog.ProgressPercentage, 1e-9)
}

func TestManager_Reset(t *testing.T) {
	m, tr, _ := newTestManager()

	m.Advance("s1")
	m.Advance("s1")
	tr.SetCapture("s1", "pain_point", "churn", 0.9)

	m.Reset("s1")
	assert.Equal(t, types.PhaseIntent, m.Current("s1"))
	assert.Empty(t, tr.GetAllCompletionScores("s1"))
}
