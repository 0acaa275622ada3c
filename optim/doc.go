// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimizers for scalar objectives.
//
// # Overview
//
// This package contains:
//   - GradientDescent: fixed-step steepest descent with trajectory history
//   - Optimizer interface for custom strategies
//
// Optimizers are generic over the element type and the vector type, so the
// same algorithm runs on runtime-sized vector.Dense points and on fixed-size
// vector.Fixed points. Fixed-size points cannot be empty or change length, so
// the optimizer skips those checks for them.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/descent/optim"
//	    "github.com/born-ml/descent/vector"
//	)
//
//	type vec = vector.Dense[float64]
//
//	func main() {
//	    f := func(x vec) float64 { return x[0]*x[0] + x[1]*x[1] }
//	    grad := func(x vec) vec { return vector.Of(2*x[0], 2*x[1]) }
//
//	    gd, err := optim.NewGradientDescent[float64, vec](0.1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x, err := gd.Minimize(f, grad, vector.Of(1.0, -1.0),
//	        optim.WithMaxIterations[float64](500),
//	        optim.WithTolerance(1e-8),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(x, len(gd.History())-1)
//	}
//
// # Fixed-size Vectors
//
//	type vec2 = vector.Fixed[float32, [2]float32]
//
//	gd, _ := optim.NewGradientDescent[float32, vec2](0.001)
//	x, _ := gd.Minimize(f, grad, vector.NewFixed[float32]([2]float32{-1.2, 1}))
//
// # History
//
// Every iteration records the point it started from and the objective value
// there. History returns a copy, so callers may keep or modify it freely:
//
//	for _, r := range gd.History() {
//	    fmt.Println(r.Iteration, r.X, r.FVal)
//	}
//
// When the iteration budget runs out, the returned point is one update past
// the last record. When the run converges, the last record is the returned
// point.
//
// # Errors
//
//   - ErrInvalidConfiguration: non-positive learning rate (constructor, setter)
//   - ErrInvalidArgument: empty start point (Dense only)
//   - ErrDimensionMismatch: gradient length differs from point length (Dense only)
package optim
