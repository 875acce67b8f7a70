// Package vec provides elementwise arithmetic over fixed-length float64 vectors.
//
// Every function allocates its result and leaves its inputs untouched, except
// AddInPlace which exists for gradient accumulation. Long vectors are split
// across workers according to the package parallel.Config.
package vec

import (
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/bbsunok/seisgrad/internal/parallel"
)

var cfg atomic.Pointer[parallel.Config]

func init() {
	c := parallel.DefaultConfig()
	cfg.Store(&c)
}

// Configure replaces the parallel configuration used by the kernels.
func Configure(c parallel.Config) {
	cfg.Store(&c)
}

// CurrentConfig returns the parallel configuration in effect.
func CurrentConfig() parallel.Config {
	return *cfg.Load()
}

func checkLen(op string, a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vec.%s: length mismatch %d != %d", op, len(a), len(b)))
	}
}

func binary(op string, a, b []float64, kernel func(dst, s, t []float64) []float64) []float64 {
	checkLen(op, a, b)
	dst := make([]float64, len(a))
	parallel.ForRange(len(a), func(lo, hi int) {
		kernel(dst[lo:hi], a[lo:hi], b[lo:hi])
	}, *cfg.Load())
	return dst
}

// Add returns a + b.
func Add(a, b []float64) []float64 { return binary("Add", a, b, floats.AddTo) }

// Sub returns a - b.
func Sub(a, b []float64) []float64 { return binary("Sub", a, b, floats.SubTo) }

// Mul returns the elementwise product a ⊙ b.
func Mul(a, b []float64) []float64 { return binary("Mul", a, b, floats.MulTo) }

// Div returns the elementwise quotient a ⊘ b. Zero divisors are not checked.
func Div(a, b []float64) []float64 { return binary("Div", a, b, floats.DivTo) }

// Scale returns c * a.
func Scale(c float64, a []float64) []float64 {
	dst := make([]float64, len(a))
	parallel.ForRange(len(a), func(lo, hi int) {
		floats.ScaleTo(dst[lo:hi], c, a[lo:hi])
	}, *cfg.Load())
	return dst
}

// Neg returns -a.
func Neg(a []float64) []float64 { return Scale(-1, a) }

// Sum returns the sum of the elements of a.
// The reduction is sequential so the result does not depend on worker count.
func Sum(a []float64) float64 { return floats.Sum(a) }

// Mean returns Sum(a)/len(a). The caller must ensure a is non-empty.
func Mean(a []float64) float64 { return floats.Sum(a) / float64(len(a)) }

// Fill returns a vector of n copies of c.
func Fill(n int, c float64) []float64 {
	dst := make([]float64, n)
	if c != 0 {
		floats.AddConst(c, dst)
	}
	return dst
}

// Ones returns a vector of n ones.
func Ones(n int) []float64 { return Fill(n, 1) }

// Clone returns a copy of a, or nil for a nil input.
func Clone(a []float64) []float64 {
	if a == nil {
		return nil
	}
	dst := make([]float64, len(a))
	copy(dst, a)
	return dst
}

// AddInPlace performs dst += s.
func AddInPlace(dst, s []float64) {
	checkLen("AddInPlace", dst, s)
	parallel.ForRange(len(dst), func(lo, hi int) {
		floats.Add(dst[lo:hi], s[lo:hi])
	}, *cfg.Load())
}
