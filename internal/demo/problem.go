// Package demo wires the optimizer to a catalogue of test problems and runs
// them as timed scenarios for the descent command.
package demo

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/optimize/functions"
)

// ErrUnknownProblem is returned by LookupProblem for names not in the catalogue.
var ErrUnknownProblem = errors.New("unknown problem")

// Problem is an objective with an analytic gradient, expressed on float64
// slices the way gonum's test functions are.
type Problem struct {
	Name string

	// Func evaluates the objective at x.
	Func func(x []float64) float64

	// Grad stores the gradient at x into grad. len(grad) == len(x).
	Grad func(grad, x []float64)

	// MinDim and MaxDim bound the supported dimension. MaxDim 0 means unbounded.
	MinDim int
	MaxDim int

	// Minimum returns the global minimizer for dimension n, or nil if unknown.
	Minimum func(n int) []float64
}

// CheckDim reports whether the problem is defined in n dimensions.
func (p Problem) CheckDim(n int) error {
	if n < p.MinDim || (p.MaxDim > 0 && n > p.MaxDim) {
		if p.MaxDim == p.MinDim {
			return fmt.Errorf("problem %q is defined in %d dimensions, got %d", p.Name, p.MinDim, n)
		}
		return fmt.Errorf("problem %q needs at least %d dimensions, got %d", p.Name, p.MinDim, n)
	}
	return nil
}

var problems = map[string]Problem{
	"quadratic": {
		Name:    "quadratic",
		Func:    sumSquares,
		Grad:    sumSquaresGrad,
		MinDim:  1,
		Minimum: func(n int) []float64 { return make([]float64, n) },
	},
	"rosenbrock": {
		Name:    "rosenbrock",
		Func:    functions.ExtendedRosenbrock{}.Func,
		Grad:    functions.ExtendedRosenbrock{}.Grad,
		MinDim:  2,
		Minimum: ones,
	},
	"beale": {
		Name:    "beale",
		Func:    functions.Beale{}.Func,
		Grad:    functions.Beale{}.Grad,
		MinDim:  2,
		MaxDim:  2,
		Minimum: func(int) []float64 { return []float64{3, 0.5} },
	},
}

// LookupProblem returns the catalogue entry called name.
func LookupProblem(name string) (Problem, error) {
	p, ok := problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownProblem, name, ProblemNames())
	}
	return p, nil
}

// ProblemNames lists the catalogue in sorted order.
func ProblemNames() []string {
	names := make([]string, 0, len(problems))
	for name := range problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sumSquares(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v * v
	}
	return s
}

func sumSquaresGrad(grad, x []float64) {
	for i, v := range x {
		grad[i] = 2 * v
	}
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
