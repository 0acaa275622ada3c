package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/descent/internal/demo"
	"github.com/born-ml/descent/internal/optim"
)

type runFlags struct {
	problem       string
	variant       string
	learningRate  float64
	maxIterations int
	tolerance     float64
	start         []float64
	parallel      int
	trace         int
}

func runCmd(newLogger func() (*slog.Logger, error)) *cobra.Command {
	var fl runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Minimize a test problem, or run the default scenarios",
		Long: `Minimize a test problem with gradient descent.

Without --problem, the built-in scenarios are run: a quadratic bowl and
Rosenbrock's function on both dense and fixed-size vectors.`,
		Example: `  descent run
  descent run --problem rosenbrock --variant fixed32 --lr 0.001 --max-iter 20000 --tol 1e-5 --start -1.2,1
  descent run --problem beale --start 1,1 --trace 100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			scenarios, err := fl.scenarios()
			if err != nil {
				return err
			}

			results, err := demo.RunAll(cmd.Context(), scenarios, fl.parallel, logger)
			if err != nil {
				return err
			}
			return demo.Report(cmd.OutOrStdout(), results, fl.trace)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.problem, "problem", "", fmt.Sprintf("problem to minimize (%s)", strings.Join(demo.ProblemNames(), ", ")))
	f.StringVar(&fl.variant, "variant", string(demo.Dense64), fmt.Sprintf("vector representation (%s)", variantNames()))
	f.Float64Var(&fl.learningRate, "lr", optim.DefaultLearningRate, "learning rate, must be > 0")
	f.IntVar(&fl.maxIterations, "max-iter", optim.DefaultMaxIterations, "iteration budget")
	f.Float64Var(&fl.tolerance, "tol", optim.DefaultTolerance, "gradient norm convergence threshold")
	f.Float64SliceVar(&fl.start, "start", []float64{1, -1}, "comma-separated start point")
	f.IntVar(&fl.parallel, "parallel", 0, "maximum scenarios run at once (0: unlimited)")
	f.IntVar(&fl.trace, "trace", 0, "print every N-th history record (0: off)")

	return cmd
}

func (fl runFlags) scenarios() ([]demo.Scenario, error) {
	if fl.problem == "" {
		return demo.DefaultScenarios(), nil
	}
	if fl.maxIterations <= 0 {
		return nil, fmt.Errorf("--max-iter must be > 0, got %d", fl.maxIterations)
	}

	return []demo.Scenario{{
		Name:          fl.problem,
		Problem:       fl.problem,
		Variant:       demo.Variant(fl.variant),
		LearningRate:  fl.learningRate,
		MaxIterations: fl.maxIterations,
		Tolerance:     fl.tolerance,
		Start:         fl.start,
	}}, nil
}

func variantNames() string {
	var names []string
	for _, v := range demo.Variants() {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

func problemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the available test problems",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range demo.ProblemNames() {
				p, _ := demo.LookupProblem(name)
				dims := fmt.Sprintf("n >= %d", p.MinDim)
				if p.MaxDim == p.MinDim {
					dims = fmt.Sprintf("n = %d", p.MinDim)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, dims)
			}
		},
	}
}
