package vector

// Array is the set of array types a Fixed vector can be backed by.
//
// Zero-length arrays are deliberately absent: a Fixed vector is never empty.
type Array[T Float] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[12]T | ~[16]T | ~[32]T | ~[64]T
}

// Fixed is a vector whose length is part of its type.
//
// Because two values of the same Fixed type always have the same length,
// Static reports true and callers can skip size checks. Build values with
// NewFixed or FixedFrom; the zero Fixed has no storage and panics on access.
//
// Example:
//
//	x0 := vector.NewFixed[float32]([2]float32{-1.2, 1})
type Fixed[T Float, A Array[T]] struct {
	a *A
}

var _ Vector[float32, Fixed[float32, [2]float32]] = Fixed[float32, [2]float32]{}

// NewFixed wraps a copy of the array a.
func NewFixed[T Float, A Array[T]](a A) Fixed[T, A] {
	return Fixed[T, A]{a: &a}
}

// FixedFrom copies s into a new Fixed vector. It fails with a *LengthError
// when len(s) differs from the array length of A.
func FixedFrom[T Float, A Array[T]](s []T) (Fixed[T, A], error) {
	var a A
	if len(s) != len(a) {
		return Fixed[T, A]{}, &LengthError{Want: len(a), Got: len(s)}
	}
	for i := range s {
		a[i] = s[i]
	}
	return Fixed[T, A]{a: &a}, nil
}

// Len returns the array length of A.
func (Fixed[T, A]) Len() int {
	var a A
	return len(a)
}

// At returns the element at index i.
func (f Fixed[T, A]) At(i int) T { return (*f.a)[i] }

// SetAt stores x at index i.
func (f Fixed[T, A]) SetAt(i int, x T) { (*f.a)[i] = x }

// Clone returns a copy that shares no storage with f.
func (f Fixed[T, A]) Clone() Fixed[T, A] {
	a := *f.a
	return Fixed[T, A]{a: &a}
}

// Array returns a copy of the backing array.
func (f Fixed[T, A]) Array() A { return *f.a }

// Static reports true: the length is fixed by A.
func (Fixed[T, A]) Static() bool { return true }
