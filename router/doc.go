// Package router selects and renders the next question for a session:
// opening questions keyed by phase, probe questions keyed by phase and probe
// type, and template rendering that substitutes captured values.
package router
