package schedule

import (
	"errors"
	"fmt"
)

// ErrEmptySchedule is returned when a scheme string contains no tokens at
// all. A plan must hold at least one phase.
var ErrEmptySchedule = errors.New("iteration scheme is empty, at least one token is required")

// MalformedTokenError reports a scheme element that does not match the
// <positive-count><phase-letter> token shape.
type MalformedTokenError struct {
	Token string
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed iteration token %q: expected a positive repeat count followed by one of 'b', 'p' or 'm'", e.Token)
}

// UnknownKindError reports a well-shaped token whose phase letter is outside
// the notation alphabet.
type UnknownKindError struct {
	Code byte
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown phase kind %q: must be 'b' (burn-in), 'p' (pruning) or 'm' (main)", string(e.Code))
}
