// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the public API for the vectors optimizers work over.
//
// The package defines one contract and two storage variants:
//   - Vector[T, V]: length, indexed access, cloning
//   - Dense[T]: runtime-sized vector backed by a slice
//   - Fixed[T, A]: vector whose length is fixed by the array type A
//
// Example:
//
//	d := vector.Of(1.0, -1.0)                           // Dense[float64], length 2
//	f := vector.NewFixed[float32]([2]float32{-1.2, 1})  // Fixed[float32, [2]float32]
package vector

import (
	"github.com/born-ml/descent/internal/vector"
)

// Float is a constraint for vector element types: float32 and float64.
type Float = vector.Float

// Vector is the contract shared by Dense and Fixed.
type Vector[T Float, V any] = vector.Vector[T, V]

// Dense is a runtime-sized vector.
type Dense[T Float] = vector.Dense[T]

// Array is a constraint for the arrays that can back a Fixed vector.
type Array[T Float] = vector.Array[T]

// Fixed is a vector whose length is part of its type.
type Fixed[T Float, A Array[T]] = vector.Fixed[T, A]

// LengthError reports a failed slice to Fixed conversion.
type LengthError = vector.LengthError

// ErrLengthMismatch is the sentinel wrapped by LengthError.
var ErrLengthMismatch = vector.ErrLengthMismatch

// Of builds a Dense vector from its elements.
func Of[T Float](elems ...T) Dense[T] {
	return vector.Of(elems...)
}

// Zeros returns a Dense vector of n zeros.
func Zeros[T Float](n int) Dense[T] {
	return vector.Zeros[T](n)
}

// NewFixed builds a Fixed vector from an array.
//
// The element type cannot be inferred from the array, so pass it explicitly:
//
//	x := vector.NewFixed[float64]([3]float64{1, 2, 3})
func NewFixed[T Float, A Array[T]](a A) Fixed[T, A] {
	return vector.NewFixed[T](a)
}

// FixedFrom copies a slice into a Fixed vector, failing with a *LengthError
// if the lengths differ.
func FixedFrom[T Float, A Array[T]](s []T) (Fixed[T, A], error) {
	return vector.FixedFrom[T, A](s)
}

// Norm returns the Euclidean norm of v.
func Norm[T Float, V Vector[T, V]](v V) T {
	return vector.Norm[T](v)
}

// ToSlice copies the elements of v into a new slice.
func ToSlice[T Float, V Vector[T, V]](v V) []T {
	return vector.ToSlice[T](v)
}
