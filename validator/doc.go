// Package validator scores free-text answers for sufficiency and recommends
// targeted follow-up probes. Scoring is heuristic and deterministic: a
// saturating word-count component, a specificity bonus for numeric tokens,
// and a sentiment bonus for affect-bearing language.
package validator
