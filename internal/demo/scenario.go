package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/vector"
)

// Variant selects the vector representation and element type of a run.
type Variant string

// Supported variants.
const (
	Dense64 Variant = "dense64" // vector.Dense[float64]
	Dense32 Variant = "dense32" // vector.Dense[float32]
	Fixed64 Variant = "fixed64" // vector.Fixed[float64, [N]float64]
	Fixed32 Variant = "fixed32" // vector.Fixed[float32, [N]float32]
)

// Variants lists every supported variant.
func Variants() []Variant {
	return []Variant{Dense64, Dense32, Fixed64, Fixed32}
}

// ErrUnknownVariant is returned for variant names not in Variants.
var ErrUnknownVariant = errors.New("unknown variant")

// ErrUnsupportedDim is returned when a fixed variant has no array type for
// the start point's dimension.
var ErrUnsupportedDim = errors.New("unsupported dimension for fixed variant")

// Scenario describes one optimizer run.
type Scenario struct {
	Name          string
	Problem       string
	Variant       Variant
	LearningRate  float64
	MaxIterations int
	Tolerance     float64
	Start         []float64
}

// TraceRecord is a history entry converted to float64.
type TraceRecord struct {
	Iteration int
	X         []float64
	FVal      float64
}

// Result summarises a finished scenario.
type Result struct {
	Scenario   Scenario
	Solution   []float64
	Iterations int // len(history) - 1
	FinalValue float64
	Status     optim.Status
	Elapsed    time.Duration

	// DistanceToMin is the Euclidean distance from Solution to the problem's
	// known minimizer, or NaN if none is known.
	DistanceToMin float64

	Trace []TraceRecord
}

// DefaultScenarios mirrors the reference runs: a quadratic bowl, Rosenbrock
// from (1, -2), and Rosenbrock from (-1.2, 1) on each vector representation.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "quadratic", Problem: "quadratic", Variant: Dense64,
			LearningRate: 0.1, MaxIterations: 500, Tolerance: 1e-8, Start: []float64{1, -1}},
		{Name: "rosenbrock", Problem: "rosenbrock", Variant: Dense64,
			LearningRate: 0.001, MaxIterations: 10000, Tolerance: 1e-8, Start: []float64{1, -2}},
		{Name: "rosenbrock-dense64", Problem: "rosenbrock", Variant: Dense64,
			LearningRate: 0.001, MaxIterations: 20000, Tolerance: 1e-8, Start: []float64{-1.2, 1}},
		{Name: "rosenbrock-fixed32", Problem: "rosenbrock", Variant: Fixed32,
			LearningRate: 0.001, MaxIterations: 20000, Tolerance: 1e-5, Start: []float64{-1.2, 1}},
	}
}

// Run executes s on a fresh optimizer.
func Run(s Scenario, logger *slog.Logger) (Result, error) {
	p, err := LookupProblem(s.Problem)
	if err != nil {
		return Result{}, err
	}
	if err := p.CheckDim(len(s.Start)); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("scenario", s.Name, "variant", string(s.Variant))

	switch s.Variant {
	case Dense64:
		return runWith[float64](s, p, vector.Of(s.Start...), logger)
	case Dense32:
		return runWith[float32](s, p, vector.Of(toFloat32(s.Start)...), logger)
	case Fixed64:
		return runFixed[float64](s, p, s.Start, logger)
	case Fixed32:
		return runFixed[float32](s, p, toFloat32(s.Start), logger)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
}

func runFixed[T vector.Float](s Scenario, p Problem, start []T, logger *slog.Logger) (Result, error) {
	switch len(start) {
	case 1:
		return runFixedN[T, [1]T](s, p, start, logger)
	case 2:
		return runFixedN[T, [2]T](s, p, start, logger)
	case 3:
		return runFixedN[T, [3]T](s, p, start, logger)
	case 4:
		return runFixedN[T, [4]T](s, p, start, logger)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnsupportedDim, len(start))
	}
}

func runFixedN[T vector.Float, A vector.Array[T]](s Scenario, p Problem, start []T, logger *slog.Logger) (Result, error) {
	x0, err := vector.FixedFrom[T, A](start)
	if err != nil {
		return Result{}, err
	}
	return runWith[T](s, p, x0, logger)
}

func runWith[T vector.Float, V vector.Vector[T, V]](s Scenario, p Problem, x0 V, logger *slog.Logger) (Result, error) {
	gd, err := optim.NewGradientDescent[T, V](T(s.LearningRate), optim.WithLogger(logger))
	if err != nil {
		return Result{}, err
	}
	f, grad := FromSliceFuncs[T, V](p.Func, p.Grad)

	start := time.Now()
	x, err := gd.Minimize(f, grad, x0,
		optim.WithMaxIterations[T](s.MaxIterations),
		optim.WithTolerance(T(s.Tolerance)),
	)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	history := gd.History()
	res := Result{
		Scenario:      s,
		Solution:      toFloat64[T](x),
		Iterations:    len(history) - 1,
		Status:        gd.Status(),
		Elapsed:       elapsed,
		DistanceToMin: math.NaN(),
		Trace:         make([]TraceRecord, len(history)),
	}
	res.FinalValue = p.Func(res.Solution)
	if p.Minimum != nil {
		if m := p.Minimum(len(res.Solution)); m != nil {
			res.DistanceToMin = floats.Distance(res.Solution, m, 2)
		}
	}
	for i, r := range history {
		res.Trace[i] = TraceRecord{Iteration: r.Iteration, X: toFloat64[T](r.X), FVal: float64(r.FVal)}
	}

	logger.Info("scenario finished",
		"status", res.Status.String(),
		"iterations", res.Iterations,
		"final_value", res.FinalValue,
		"elapsed", elapsed,
	)
	return res, nil
}

// RunAll runs every scenario, at most parallel at a time, each on its own
// optimizer. Results are returned in input order. The first failure cancels
// scenarios that have not started yet.
func RunAll(ctx context.Context, scenarios []Scenario, parallel int, logger *slog.Logger) ([]Result, error) {
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, s := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(s, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func toFloat32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}

func toFloat64[T vector.Float, V vector.Vector[T, V]](v V) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = float64(v.At(i))
	}
	return out
}
