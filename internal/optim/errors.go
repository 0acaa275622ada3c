package optim

import (
	"errors"
	"fmt"
)

// Error kinds. Use errors.Is to classify an error returned by this package.
var (
	ErrInvalidConfiguration = errors.New("invalid optimizer configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrDimensionMismatch    = errors.New("gradient dimensionality mismatch")
)

// ConfigError reports a rejected hyperparameter value.
type ConfigError struct {
	Param string  // Name of the hyperparameter (e.g. "learning_rate")
	Value float64 // Offending value
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s must be > 0, got %g", ErrInvalidConfiguration, e.Param, e.Value)
}

// Unwrap returns ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// DimensionError reports a gradient whose length differs from the point's.
type DimensionError struct {
	Iteration int // Iteration at which the mismatch was detected
	Expected  int // Length of the point
	Actual    int // Length of the gradient
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v at iteration %d: expected %d, got %d",
		ErrDimensionMismatch, e.Iteration, e.Expected, e.Actual)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

var errEmptyPoint = fmt.Errorf("%w: initial point is empty", ErrInvalidArgument)
