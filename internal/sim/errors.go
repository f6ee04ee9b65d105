package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState indicates a body position or force became NaN or Inf.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrCanceled indicates the run was interrupted between ticks.
	ErrCanceled = errors.New("sim: run canceled by context")

	// ErrNoTicks indicates a run was requested with no ticks to perform.
	ErrNoTicks = errors.New("sim: tick count must be positive")
)

// StepError wraps an error with the tick and body it was detected at.
type StepError struct {
	Tick    uint64
	Body    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("tick %d body %d: %v", e.Tick, e.Body, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
