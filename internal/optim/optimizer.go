// Package optim implements first-order optimizers over generic vectors.
//
// This package provides:
//   - Optimizer interface: capability shared by every minimization strategy
//   - GradientDescent: fixed-step steepest descent with trajectory history
//
// Optimizers are generic over the element type T and the vector type V, so
// one algorithm serves both runtime-sized (vector.Dense) and fixed-size
// (vector.Fixed) points. Fixed-size vectors cannot change length, so size
// validation is skipped for them.
//
// Example usage:
//
//	gd, err := optim.NewGradientDescent[float64, vector.Dense[float64]](0.1)
//	if err != nil {
//	    return err
//	}
//
//	x, err := gd.Minimize(f, grad, vector.Of(1.0, -1.0),
//	    optim.WithMaxIterations[float64](500),
//	    optim.WithTolerance(1e-8),
//	)
//
//	for _, r := range gd.History() {
//	    fmt.Println(r.Iteration, r.FVal)
//	}
package optim

import (
	"log/slog"

	"github.com/born-ml/descent/internal/vector"
)

// Default hyperparameters.
const (
	DefaultLearningRate  = 0.01
	DefaultMaxIterations = 1000
	DefaultTolerance     = 1e-6
)

// Objective evaluates the function being minimized at x.
//
// Implementations must not modify or retain x.
type Objective[T vector.Float, V vector.Vector[T, V]] func(x V) T

// Gradient returns the partial derivatives of the objective at x.
//
// Implementations must not modify or retain x, and must return a vector
// that does not share storage with x.
type Gradient[T vector.Float, V vector.Vector[T, V]] func(x V) V

// Record is a snapshot of one iteration, taken before that iteration's update.
type Record[T vector.Float, V vector.Vector[T, V]] struct {
	Iteration int // Zero-based iteration index
	X         V   // Point entering the iteration
	FVal      T   // Objective value at X
}

// Optimizer is the base interface for all minimization strategies.
//
// An Optimizer is not safe for concurrent use. Run independent problems on
// separate instances.
type Optimizer[T vector.Float, V vector.Vector[T, V]] interface {
	// Minimize searches for a local minimum of f starting from x0 and
	// returns the final point. The caller's x0 is left untouched.
	Minimize(f Objective[T, V], grad Gradient[T, V], x0 V, opts ...MinimizeOption[T]) (V, error)

	// LearningRate returns the current step size.
	LearningRate() T

	// SetLearningRate replaces the step size. Non-positive values are
	// rejected and leave the optimizer unchanged.
	SetLearningRate(lr T) error

	// History returns a copy of the trajectory recorded by the most recent
	// Minimize call.
	History() []Record[T, V]
}

// Option configures an optimizer at construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() options {
	return options{logger: slog.New(slog.DiscardHandler)}
}

// WithLogger sets the logger used to report runs.
//
// If nil is passed, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// MinimizeOption configures a single Minimize call.
type MinimizeOption[T vector.Float] func(*minimizeConfig[T])

type minimizeConfig[T vector.Float] struct {
	maxIterations int
	tolerance     T
}

func defaultMinimizeConfig[T vector.Float]() minimizeConfig[T] {
	return minimizeConfig[T]{
		maxIterations: DefaultMaxIterations,
		tolerance:     T(DefaultTolerance),
	}
}

// WithMaxIterations caps the number of iterations (default: 1000).
//
// A value <= 0 runs no iterations: the returned point equals the start and
// the history stays empty.
func WithMaxIterations[T vector.Float](n int) MinimizeOption[T] {
	return func(c *minimizeConfig[T]) {
		c.maxIterations = n
	}
}

// WithTolerance sets the gradient-norm convergence threshold (default: 1e-6).
//
// Iteration stops once the Euclidean norm of the gradient is strictly below
// tol. A tolerance <= 0 disables convergence and always runs the full budget.
func WithTolerance[T vector.Float](tol T) MinimizeOption[T] {
	return func(c *minimizeConfig[T]) {
		c.tolerance = tol
	}
}
