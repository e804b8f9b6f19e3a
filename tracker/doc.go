// Package tracker is the single source of truth for per-session conversation
// state. Sessions are created lazily on first access, mutated only through
// tracker methods, and destroyed only by an explicit clear.
//
// Concurrency: the store map is guarded by one RWMutex; every session carries
// its own field mutex plus a separate turn mutex. The engine holds a
// session's turn mutex for the duration of a turn so that multi-field turn
// updates appear atomic to the next turn, while turns for different sessions
// never contend.
package tracker
