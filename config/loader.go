package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/pitchflow/pitchflow/types"
)

// Loader assembles a StrategyConfig from layered sources.
// Priority: base defaults -> YAML file -> environment variables.
type Loader struct {
	base       *StrategyConfig
	configPath string
	envPrefix  string
}

// NewLoader creates a loader seeded with the consultative default strategy.
func NewLoader() *Loader {
	return &Loader{base: DefaultStrategy()}
}

// WithBase replaces the default base strategy.
func (l *Loader) WithBase(base *StrategyConfig) *Loader {
	l.base = base
	return l
}

// WithConfigPath sets the YAML file to layer over the base.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path
	return l
}

// WithEnvPrefix enables environment variable overrides with the given prefix,
// e.g. "PITCHFLOW" reads PITCHFLOW_SIMILARITY.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// Load resolves the layered configuration and validates it.
func (l *Loader) Load() (*StrategyConfig, error) {
	cfg := l.base.Clone()

	if l.configPath != "" {
		data, err := os.ReadFile(l.configPath)
		if err != nil {
			return nil, types.NewError(types.ErrInvalidConfig, fmt.Sprintf("read config file %s", l.configPath)).WithCause(err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, types.NewError(types.ErrInvalidConfig, fmt.Sprintf("parse config file %s", l.configPath)).WithCause(err)
		}
	}

	if l.envPrefix != "" {
		l.applyEnv(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyEnv(cfg *StrategyConfig) {
	if v, ok := l.lookup("NAME"); ok {
		cfg.Name = v
	}
	if v, ok := l.lookup("MATCHER_MODE"); ok {
		cfg.MatcherMode = v
	}
	if v, ok := l.lookup("SIMILARITY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.Similarity = n
		}
	}
	if v, ok := l.lookup("SUFFICIENCY"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.Sufficiency = f
		}
	}
	if v, ok := l.lookup("PHASE_GATE"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.PhaseGate = f
		}
	}
	if v, ok := l.lookup("MIN_WORD_COUNT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.MinWordCount = n
		}
	}
}

func (l *Loader) lookup(key string) (string, bool) {
	return os.LookupEnv(l.envPrefix + "_" + key)
}
