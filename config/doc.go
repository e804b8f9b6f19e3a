// Package config defines the strategy configuration for the pitchflow
// conversation engine: phase sequences, capture requirements, question
// tables, keyword taxonomies, and scoring thresholds.
//
// Configuration is layered: built-in defaults, then an optional YAML file,
// then environment variable overrides.
//
//	cfg, err := config.NewLoader().
//	    WithConfigPath("strategy.yaml").
//	    WithEnvPrefix("PITCHFLOW").
//	    Load()
//
// A loaded StrategyConfig is treated as immutable: the engine deep-copies it
// at construction time so multiple engines with different strategies can
// coexist without shared mutable state.
package config
