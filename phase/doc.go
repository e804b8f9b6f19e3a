// Package phase implements the conversation state machine: a fixed, ordered,
// acyclic sequence of phases with a completion-score gate on advancement.
// Phase state lives in the context tracker; this package only decides and
// applies transitions.
package phase
