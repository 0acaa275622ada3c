package demo

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Report writes a human-readable summary of results to w.
//
// If traceEvery > 0, every traceEvery-th history record is listed under each
// result, followed by the last record.
func Report(w io.Writer, results []Result, traceEvery int) error {
	for _, r := range results {
		s := r.Scenario
		lines := []string{
			fmt.Sprintf("%s [%s, %s, lr=%g]", s.Name, s.Problem, s.Variant, s.LearningRate),
			fmt.Sprintf("  sol     = %s", formatPoint(r.Solution)),
			fmt.Sprintf("  iters   = %d", r.Iterations),
			fmt.Sprintf("  f(x)    = %.5g", r.FinalValue),
			fmt.Sprintf("  status  = %s", r.Status),
		}
		if !math.IsNaN(r.DistanceToMin) {
			lines = append(lines, fmt.Sprintf("  |x-x*|  = %.5g", r.DistanceToMin))
		}
		lines = append(lines, fmt.Sprintf("  time    = %.3f ms", float64(r.Elapsed)/float64(time.Millisecond)))

		if traceEvery > 0 {
			lines = append(lines, "  trace:")
			for i, rec := range r.Trace {
				if i%traceEvery != 0 && i != len(r.Trace)-1 {
					continue
				}
				lines = append(lines, fmt.Sprintf("    %6d  f=%-12.6g x=%s", rec.Iteration, rec.FVal, formatPoint(rec.X)))
			}
		}

		if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatPoint(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = fmt.Sprintf("%.5f", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
