// internal/engine/errors.go
// Error taxonomy. Most conditions are silent no-ops; only malformed
// persisted state and true programming errors surface as errors or panics.

package engine

import "errors"

// ErrStateCorruption indicates a persisted snapshot could not be decoded.
// It is recoverable: the in-memory state is left untouched.
var ErrStateCorruption = errors.New("engine: corrupted state snapshot")

// FatalError marks a programming error: negative player counts, a
// non-positive court number passed to UpdateWinner, or a broken internal
// invariant. These are not expected to recover; callers at the host
// boundary may choose to panic on them.
type FatalError struct {
	Msg string
}

func (e *FatalError) Error() string { return "engine: " + e.Msg }

func newFatalError(msg string) error {
	return &FatalError{Msg: msg}
}
