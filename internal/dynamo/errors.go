package dynamo

import "errors"

// Domain errors for orbit and sweep operations.
var (
	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrNegativeSteps indicates a negative iteration count.
	ErrNegativeSteps = errors.New("dynamo: step count must be non-negative")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")

	// ErrUnknownParam indicates a parameter name the map does not define.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")
)

// StepError wraps an error with the orbit position it occurred at.
type StepError struct {
	Step    int
	State   State
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
