// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"log/slog"

	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/vector"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer[T vector.Float, V vector.Vector[T, V]] = optim.Optimizer[T, V]

// Objective is the function being minimized.
type Objective[T vector.Float, V vector.Vector[T, V]] = optim.Objective[T, V]

// Gradient returns the partial derivatives of the objective.
type Gradient[T vector.Float, V vector.Vector[T, V]] = optim.Gradient[T, V]

// Record is one entry of an optimizer's history.
type Record[T vector.Float, V vector.Vector[T, V]] = optim.Record[T, V]

// Default hyperparameters.
const (
	DefaultLearningRate  = optim.DefaultLearningRate
	DefaultMaxIterations = optim.DefaultMaxIterations
	DefaultTolerance     = optim.DefaultTolerance
)

// Gradient Descent

// GradientDescent represents the fixed-step gradient descent optimizer.
type GradientDescent[T vector.Float, V vector.Vector[T, V]] = optim.GradientDescent[T, V]

// NewGradientDescent creates a new gradient descent optimizer.
//
// Example:
//
//	gd, err := optim.NewGradientDescent[float64, vector.Dense[float64]](optim.DefaultLearningRate)
func NewGradientDescent[T vector.Float, V vector.Vector[T, V]](lr T, opts ...Option) (*GradientDescent[T, V], error) {
	return optim.NewGradientDescent[T, V](lr, opts...)
}

// Options

// Option configures an optimizer at construction.
type Option = optim.Option

// MinimizeOption configures a single Minimize call.
type MinimizeOption[T vector.Float] = optim.MinimizeOption[T]

// WithLogger sets the logger used to report runs. Logging is off by default.
func WithLogger(l *slog.Logger) Option {
	return optim.WithLogger(l)
}

// WithMaxIterations caps the number of iterations (default: 1000).
func WithMaxIterations[T vector.Float](n int) MinimizeOption[T] {
	return optim.WithMaxIterations[T](n)
}

// WithTolerance sets the gradient-norm convergence threshold (default: 1e-6).
func WithTolerance[T vector.Float](tol T) MinimizeOption[T] {
	return optim.WithTolerance(tol)
}

// Status

// Status describes how the last Minimize call ended.
type Status = optim.Status

// Termination states.
const (
	NotRun         = optim.NotRun
	Converged      = optim.Converged
	IterationLimit = optim.IterationLimit
	Failed         = optim.Failed
)

// Errors

// Error kinds, for use with errors.Is.
var (
	ErrInvalidConfiguration = optim.ErrInvalidConfiguration
	ErrInvalidArgument      = optim.ErrInvalidArgument
	ErrDimensionMismatch    = optim.ErrDimensionMismatch
)

// ConfigError reports a rejected hyperparameter value.
type ConfigError = optim.ConfigError

// DimensionError reports a gradient of the wrong length.
type DimensionError = optim.DimensionError
