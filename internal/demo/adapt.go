package demo

import (
	"github.com/born-ml/descent/internal/optim"
	"github.com/born-ml/descent/internal/vector"
)

// FromSliceFuncs adapts slice-shaped callables to optimizer callbacks for any
// vector type. Each call marshals the point into a float64 buffer and the
// gradient back into a fresh vector of the point's type.
//
// The buffers are reused between calls, so the returned callbacks must not be
// shared between concurrent Minimize calls.
func FromSliceFuncs[T vector.Float, V vector.Vector[T, V]](
	f func(x []float64) float64,
	grad func(grad, x []float64),
) (optim.Objective[T, V], optim.Gradient[T, V]) {
	var xbuf, gbuf []float64

	load := func(x V) []float64 {
		n := x.Len()
		if cap(xbuf) < n {
			xbuf = make([]float64, n)
		}
		xbuf = xbuf[:n]
		for i := range xbuf {
			xbuf[i] = float64(x.At(i))
		}
		return xbuf
	}

	obj := func(x V) T {
		return T(f(load(x)))
	}

	g := func(x V) V {
		in := load(x)
		if cap(gbuf) < len(in) {
			gbuf = make([]float64, len(in))
		}
		gbuf = gbuf[:len(in)]
		grad(gbuf, in)

		out := x.Clone()
		for i, v := range gbuf {
			out.SetAt(i, T(v))
		}
		return out
	}

	return obj, g
}
