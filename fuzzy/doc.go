// Package fuzzy provides typo-tolerant approximate matching for intents,
// objection signals, and phase-transition readiness.
//
// The core primitive is a normalized Levenshtein partial ratio: the best
// edit-distance similarity between a keyword and any same-length window of
// the input text, on a 0-100 scale. Matching is case-insensitive and
// deterministic; thresholds are fixed configuration, not tuned at runtime.
package fuzzy
