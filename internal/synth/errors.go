package synth

import (
	"errors"
	"fmt"
)

// Operation names used in error messages. Request purposes are the
// separate Purpose constants.
const (
	OpSynthesis    = "synthesis"
	OpGeneration   = "problem generation"
	OpVerification = "step verification"
)

// ErrIncomplete is wrapped when a response parses but lacks content the
// caller cannot do without.
var ErrIncomplete = errors.New("incomplete response")

// Error is the single failure shape of the gateway. Transport failures and
// malformed answers are reported the same way.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("API error during %s: %v. The model might have failed to generate valid JSON.", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
