package vector

import "slices"

// Dense is a runtime-sized vector backed by a slice.
//
// The length is whatever the caller constructs it with, so code working on
// Dense values must check lengths itself (Static reports false).
type Dense[T Float] []T

var _ Vector[float64, Dense[float64]] = Dense[float64]{}

// Of builds a Dense vector from a literal list of elements.
//
// Example:
//
//	x0 := vector.Of(1.0, -1.0)
func Of[T Float](elems ...T) Dense[T] {
	return Dense[T](slices.Clone(elems))
}

// Zeros returns a Dense vector of n zero elements.
func Zeros[T Float](n int) Dense[T] {
	return make(Dense[T], n)
}

// Len returns the element count.
func (d Dense[T]) Len() int { return len(d) }

// At returns the element at index i.
func (d Dense[T]) At(i int) T { return d[i] }

// SetAt stores x at index i.
func (d Dense[T]) SetAt(i int, x T) { d[i] = x }

// Clone returns a copy that shares no storage with d.
func (d Dense[T]) Clone() Dense[T] {
	if d == nil {
		return nil
	}
	return slices.Clone(d)
}

// Static reports false: the length is only known at runtime.
func (Dense[T]) Static() bool { return false }
