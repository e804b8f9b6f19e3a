// Package engine orchestrates one full conversation turn: it loads session
// state, extracts fuzzy signals, scores the answer, applies the phase gate,
// composes the next question, and persists everything back through the
// context tracker.
//
// The engine never fails on malformed free text; every turn yields a fully
// structured result. The only hard error is an empty session identifier.
package engine
