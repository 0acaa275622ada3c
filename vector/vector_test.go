// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector_test

import (
	"fmt"
	"testing"

	"github.com/born-ml/descent/vector"
	"github.com/stretchr/testify/assert"
)

// TestVariantsImplementVector verifies both variants satisfy the contract.
func TestVariantsImplementVector(_ *testing.T) {
	var _ vector.Vector[float64, vector.Dense[float64]] = vector.Dense[float64]{}
	var _ vector.Vector[float32, vector.Fixed[float32, [3]float32]] = vector.Fixed[float32, [3]float32]{}
}

func TestFacade(t *testing.T) {
	d := vector.Of(3.0, 4.0)
	f := vector.NewFixed[float64]([2]float64{3, 4})

	assert.Equal(t, vector.Norm[float64](d), vector.Norm[float64](f))
	assert.Equal(t, vector.ToSlice[float64](d), vector.ToSlice[float64](f))
	assert.Equal(t, 5, vector.Zeros[float32](5).Len())

	_, err := vector.FixedFrom[float64, [2]float64]([]float64{1})
	assert.ErrorIs(t, err, vector.ErrLengthMismatch)
}

func ExampleOf() {
	x := vector.Of(1.0, -1.0)
	fmt.Println(x.Len(), x.Static())
	// Output: 2 false
}

func ExampleNewFixed() {
	x := vector.NewFixed[float32]([2]float32{-1.2, 1})
	fmt.Println(x.Len(), x.Static(), x.At(0))
	// Output: 2 true -1.2
}
