package autodiff_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bbsunok/seisgrad/internal/autodiff"
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

const (
	epsilon   = 1e-5
	tolerance = 1e-4
)

// numericalGradient computes d(Σ f(x))/dx_i by central differences.
// This matches the ones seed of the backward passes.
func numericalGradient(f func(x []float64) []float64, x []float64) []float64 {
	grad := make([]float64, len(x))
	probe := vec.Clone(x)
	for i := range x {
		original := probe[i]

		probe[i] = original + epsilon
		fPlus := vec.Sum(f(probe))

		probe[i] = original - epsilon
		fMinus := vec.Sum(f(probe))

		grad[i] = (fPlus - fMinus) / (2 * epsilon)
		probe[i] = original
	}
	return grad
}

// evaluator turns a graph builder into a plain function of the input vector.
func evaluator(build func(x *graph.Node) *graph.Node) func([]float64) []float64 {
	return func(x []float64) []float64 {
		return build(graph.NewLeaf(x, true)).Value()
	}
}

func checkClose(t *testing.T, what string, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: length %d, want %d", what, len(got), len(want))
	}
	for i := range want {
		scale := math.Max(1, math.Abs(want[i]))
		if math.Abs(want[i]-got[i]) > tolerance*scale {
			t.Errorf("%s[%d] = %g, want %g", what, i, got[i], want[i])
		}
	}
}

var gradientChecks = []struct {
	name  string
	x     []float64
	build func(x *graph.Node) *graph.Node
}{
	{
		// f(x) = x³ - 2x² + x
		name: "polynomial",
		x:    []float64{2, -0.5, 1.25},
		build: func(x *graph.Node) *graph.Node {
			two := graph.Constant(2, x.Len())
			x2 := mul(x, x)
			return add(sub(mul(x2, x), mul(two, x2)), x)
		},
	},
	{
		// f(x) = (x + 2) * 3
		name: "composite",
		x:    []float64{5, -1},
		build: func(x *graph.Node) *graph.Node {
			return mul(add(x, graph.Constant(2, x.Len())), graph.Constant(3, x.Len()))
		},
	},
	{
		// f(x) = x / (x² + 1)
		name: "rational",
		x:    []float64{0.3, -2, 4},
		build: func(x *graph.Node) *graph.Node {
			return div(x, add(mul(x, x), graph.Ones(x.Len())))
		},
	},
	{
		// f(x) = (x - mean(x))², broadcast through Expand
		name: "centered_square",
		x:    []float64{1, 4, -2, 0.5},
		build: func(x *graph.Node) *graph.Node {
			m := graph.Must(graph.Expand(mean(x), x.Len()))
			d := sub(x, m)
			return mul(d, d)
		},
	},
	{
		// f(x) = sum(x) * x - neg(copy(x))
		name: "sum_scaled",
		x:    []float64{1.5, -3, 2},
		build: func(x *graph.Node) *graph.Node {
			s := graph.Must(graph.Expand(sum(x), x.Len()))
			return sub(mul(s, x), neg(cp(x)))
		},
	},
}

// TestGradientCheck_FirstOrder compares Backward against finite differences.
func TestGradientCheck_FirstOrder(t *testing.T) {
	for _, tc := range gradientChecks {
		t.Run(tc.name, func(t *testing.T) {
			x := graph.NewLeaf(tc.x, true)
			autodiff.Backward(tc.build(x))

			want := numericalGradient(evaluator(tc.build), tc.x)
			checkClose(t, "grad", want, x.Grad())
		})
	}
}

// TestGradientCheck_SymbolicFirstOrder compares the value of the symbolic
// gradient against finite differences.
func TestGradientCheck_SymbolicFirstOrder(t *testing.T) {
	for _, tc := range gradientChecks {
		t.Run(tc.name, func(t *testing.T) {
			x := graph.NewLeaf(tc.x, true)
			autodiff.SymbolicBackward(tc.build(x))

			want := numericalGradient(evaluator(tc.build), tc.x)
			checkClose(t, "gradNode", want, x.GradNode().Value())
		})
	}
}

// TestGradientCheck_SecondOrder differentiates the symbolic gradient and
// compares it with finite differences of the first derivative.
func TestGradientCheck_SecondOrder(t *testing.T) {
	for _, tc := range gradientChecks {
		t.Run(tc.name, func(t *testing.T) {
			x := graph.NewLeaf(tc.x, true)
			autodiff.SymbolicBackward(tc.build(x))
			dx := x.GradNode()
			autodiff.Backward(dx)
			got := x.Grad()
			if !dx.RequiresGrad() {
				// A gradient built only from constants is a dead end.
				require.Nil(t, got)
				got = make([]float64, len(tc.x))
			}

			firstDerivative := func(v []float64) []float64 {
				leaf := graph.NewLeaf(v, true)
				autodiff.SymbolicBackward(tc.build(leaf))
				return leaf.GradNode().Value()
			}
			want := numericalGradient(firstDerivative, tc.x)
			checkClose(t, "second derivative", want, got)
		})
	}
}

// TestGradientCheck_LinearSecondOrderVanishes pins the second derivative of
// a linear function: the gradient graph does not require grad, so Backward
// leaves x untouched and Grad reports a zero constant.
func TestGradientCheck_LinearSecondOrderVanishes(t *testing.T) {
	build := func(x *graph.Node) *graph.Node {
		return mul(add(x, graph.Constant(2, x.Len())), graph.Constant(3, x.Len()))
	}

	x := graph.NewLeaf([]float64{5, -1}, true)
	autodiff.SymbolicBackward(build(x))
	dx := x.GradNode()
	require.NotNil(t, dx)
	assert.Equal(t, []float64{3, 3}, dx.Value())
	assert.False(t, dx.RequiresGrad())

	autodiff.Backward(dx)
	assert.Nil(t, x.Grad())

	y := graph.NewLeaf([]float64{5, -1}, true)
	d2, err := autodiff.Grad(build(y), y, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, d2.Value())
	assert.False(t, d2.RequiresGrad())
}
