// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/born-ml/descent/optim"
	"github.com/born-ml/descent/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec = vector.Dense[float64]

// TestGradientDescentImplementsOptimizer verifies the facade keeps the interface.
func TestGradientDescentImplementsOptimizer(_ *testing.T) {
	var _ optim.Optimizer[float64, vec] = (*optim.GradientDescent[float64, vec])(nil)
	var _ optim.Optimizer[float32, vector.Fixed[float32, [3]float32]] = (*optim.GradientDescent[float32, vector.Fixed[float32, [3]float32]])(nil)
}

func TestFacadeErrors(t *testing.T) {
	_, err := optim.NewGradientDescent[float64, vec](0)
	assert.ErrorIs(t, err, optim.ErrInvalidConfiguration)

	var cerr *optim.ConfigError
	assert.True(t, errors.As(err, &cerr))
}

func TestFacadeMinimize(t *testing.T) {
	gd, err := optim.NewGradientDescent[float64, vec](optim.DefaultLearningRate)
	require.NoError(t, err)

	f := func(x vec) float64 { return (x[0] - 3) * (x[0] - 3) }
	grad := func(x vec) vec { return vector.Of(2 * (x[0] - 3)) }

	x, err := gd.Minimize(f, grad, vector.Of(0.0), optim.WithMaxIterations[float64](optim.DefaultMaxIterations))
	require.NoError(t, err)
	assert.InDelta(t, 3, x[0], 1e-5)
	assert.Equal(t, optim.Converged, gd.Status())
}

func ExampleGradientDescent_Minimize() {
	f := func(x vec) float64 { return x[0]*x[0] + x[1]*x[1] }
	grad := func(x vec) vec { return vector.Of(2*x[0], 2*x[1]) }

	gd, err := optim.NewGradientDescent[float64, vec](0.1)
	if err != nil {
		fmt.Println(err)
		return
	}

	x, err := gd.Minimize(f, grad, vector.Of(1.0, -1.0),
		optim.WithMaxIterations[float64](500),
		optim.WithTolerance(1e-8),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("solution: (%.4f, %.4f)\n", x[0], x[1])
	fmt.Println("iterations:", len(gd.History())-1)
	fmt.Println("status:", gd.Status())
	// Output:
	// solution: (0.0000, -0.0000)
	// iterations: 88
	// status: Converged
}

func ExampleGradientDescent_Minimize_fixed() {
	type vec2 = vector.Fixed[float32, [2]float32]

	f := func(v vec2) float32 {
		x, y := v.At(0), v.At(1)
		return x*x + 4*y*y
	}
	grad := func(v vec2) vec2 {
		return vector.NewFixed[float32]([2]float32{2 * v.At(0), 8 * v.At(1)})
	}

	gd, _ := optim.NewGradientDescent[float32, vec2](0.05)
	_, err := gd.Minimize(f, grad, vector.NewFixed[float32]([2]float32{2, 1}),
		optim.WithTolerance[float32](1e-4))

	fmt.Println(err, gd.Status())
	// Output: <nil> Converged
}
