package optim

import (
	"log/slog"

	"github.com/born-ml/descent/internal/vector"
)

// maxReserve bounds the history capacity reserved up front. Longer runs grow
// the history by appending.
const maxReserve = 1 << 16

// GradientDescent implements fixed-step steepest descent.
//
// Update rule:
//
//	x = x - lr * grad_f(x)
//
// Iteration stops when the Euclidean norm of the gradient drops below the
// tolerance, or when the iteration budget runs out. Every iteration appends a
// Record describing the point before its update, so:
//   - on convergence, the last record is the returned point
//   - on budget exhaustion, the returned point is one update past the last record
//
// For vector types whose length is not static (vector.Dense), Minimize rejects
// an empty start and checks the gradient length on every iteration. For
// static types (vector.Fixed) both checks are skipped.
//
// Example:
//
//	gd, _ := optim.NewGradientDescent[float32, vector.Fixed[float32, [2]float32]](0.001)
//	x, err := gd.Minimize(f, grad, vector.NewFixed[float32]([2]float32{-1.2, 1}),
//	    optim.WithMaxIterations[float32](20000),
//	    optim.WithTolerance[float32](1e-5),
//	)
type GradientDescent[T vector.Float, V vector.Vector[T, V]] struct {
	lr      T
	history []Record[T, V]
	status  Status
	logger  *slog.Logger
}

var _ Optimizer[float64, vector.Dense[float64]] = (*GradientDescent[float64, vector.Dense[float64]])(nil)

// NewGradientDescent creates a gradient descent optimizer with learning rate lr.
//
// Returns a *ConfigError wrapping ErrInvalidConfiguration if lr <= 0.
// Use DefaultLearningRate for the conventional 0.01.
func NewGradientDescent[T vector.Float, V vector.Vector[T, V]](lr T, opts ...Option) (*GradientDescent[T, V], error) {
	if err := validateLearningRate(lr); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &GradientDescent[T, V]{
		lr:     lr,
		status: NotRun,
		logger: o.logger,
	}, nil
}

// LearningRate returns the current learning rate.
func (g *GradientDescent[T, V]) LearningRate() T {
	return g.lr
}

// SetLearningRate updates the learning rate.
//
// Non-positive values are rejected and the previous rate is kept.
func (g *GradientDescent[T, V]) SetLearningRate(lr T) error {
	if err := validateLearningRate(lr); err != nil {
		return err
	}
	g.lr = lr
	return nil
}

// History returns a deep copy of the trajectory of the last Minimize call.
//
// Records are ordered by iteration, starting at 0. The result is empty before
// the first call.
func (g *GradientDescent[T, V]) History() []Record[T, V] {
	out := make([]Record[T, V], len(g.history))
	for i, r := range g.history {
		out[i] = Record[T, V]{Iteration: r.Iteration, X: r.X.Clone(), FVal: r.FVal}
	}
	return out
}

// Status reports how the last Minimize call ended.
func (g *GradientDescent[T, V]) Status() Status {
	return g.status
}

// Minimize runs gradient descent on f from x0.
//
// The history of any previous call is discarded first. On error, the history
// holds only the records of iterations that completed before the failure.
//
// Errors:
//   - ErrInvalidArgument: x0 is empty (non-static vector types only)
//   - ErrDimensionMismatch: grad returned a vector of a different length
//     than the point (non-static vector types only), as a *DimensionError
func (g *GradientDescent[T, V]) Minimize(f Objective[T, V], grad Gradient[T, V], x0 V, opts ...MinimizeOption[T]) (V, error) {
	cfg := defaultMinimizeConfig[T]()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.history = make([]Record[T, V], 0, min(max(cfg.maxIterations, 0), maxReserve)+1)

	static := x0.Static()
	if !static && x0.Len() == 0 {
		return g.fail(errEmptyPoint)
	}

	x := x0.Clone()
	dim := x.Len()
	g.status = IterationLimit

	var norm T
	for k := 0; k < cfg.maxIterations; k++ {
		fval := f(x)
		gv := grad(x)

		if !static && gv.Len() != dim {
			return g.fail(&DimensionError{Iteration: k, Expected: dim, Actual: gv.Len()})
		}

		norm = vector.Norm[T](gv)

		g.history = append(g.history, Record[T, V]{Iteration: k, X: x.Clone(), FVal: fval})
		if norm < cfg.tolerance {
			g.status = Converged
			break
		}

		lr := g.lr
		for i := 0; i < dim; i++ {
			x.SetAt(i, x.At(i)-lr*gv.At(i))
		}
	}

	g.logger.Debug("gradient descent finished",
		"status", g.status.String(),
		"records", len(g.history),
		"dimension", dim,
		"grad_norm", float64(norm),
		"learning_rate", float64(g.lr),
	)

	return x, nil
}

func (g *GradientDescent[T, V]) fail(err error) (V, error) {
	g.status = Failed
	g.logger.Warn("gradient descent failed",
		"records", len(g.history),
		"error", err,
	)
	var zero V
	return zero, err
}

func validateLearningRate[T vector.Float](lr T) error {
	// Also rejects NaN.
	if !(lr > 0) {
		return &ConfigError{Param: "learning_rate", Value: float64(lr)}
	}
	return nil
}
