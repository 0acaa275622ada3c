// Package vector implements the numeric vector types the optimizer works over.
//
// Two storage variants satisfy the same contract:
//   - Dense: runtime-sized, backed by a slice
//   - Fixed: length fixed by an array type parameter, e.g. Fixed[float32, [2]float32]
//
// The contract covers storage and indexed access only. Vector-space arithmetic
// is left to callers, which index elements directly.
package vector

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of element types a vector can hold.
type Float interface {
	constraints.Float
}

// Vector is a fixed-length tuple of T elements.
//
// V is the implementing type itself, so Clone can return a value of the
// concrete type:
//
//	func f[T vector.Float, V vector.Vector[T, V]](v V) V { return v.Clone() }
//
// Implementations have reference semantics for SetAt: writes through any copy
// of the value are visible to every other copy until Clone is called.
type Vector[T Float, V any] interface {
	// Len returns the element count.
	Len() int

	// At returns the element at index i. Panics if i is out of range.
	At(i int) T

	// SetAt stores x at index i. Panics if i is out of range.
	SetAt(i int, x T)

	// Clone returns an independent copy.
	Clone() V

	// Static reports whether the length is fixed by the type. When true,
	// every value of the type has the same non-zero length and callers may
	// skip runtime length checks.
	Static() bool
}

// ErrLengthMismatch is returned when a runtime slice cannot be stored in a
// vector of a different length.
var ErrLengthMismatch = errors.New("vector length mismatch")

// LengthError reports the lengths involved in a failed conversion.
type LengthError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("%v: want %d elements, got %d", ErrLengthMismatch, e.Want, e.Got)
}

// Unwrap returns ErrLengthMismatch.
func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// Norm returns the Euclidean norm of v over its first v.Len() elements.
func Norm[T Float, V Vector[T, V]](v V) T {
	var sum T
	for i := 0; i < v.Len(); i++ {
		x := v.At(i)
		sum += x * x
	}
	return T(math.Sqrt(float64(sum)))
}

// ToSlice copies the elements of v into a new slice.
func ToSlice[T Float, V Vector[T, V]](v V) []T {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}
