package optim

import (
	"fmt"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/bbsunok/seisgrad/internal/autodiff"
	"github.com/bbsunok/seisgrad/internal/graph"
)

// Objective builds the graph of a scalar objective over the parameter leaf x.
// It is called once per iteration with a fresh leaf.
type Objective func(x *graph.Node) (*graph.Node, error)

// Settings bound a Minimize run.
type Settings struct {
	MaxIter int     // Maximum number of steps (default: 100)
	Tol     float64 // Stop once max|grad| is at most Tol (default: 1e-8)
	Name    string  // Name of the parameter leaf (default: "x")

	// Observe, when set, is called after every evaluation.
	Observe func(Iterate)
}

// Iterate is one evaluation of the objective.
type Iterate struct {
	Iter int
	X    []float64
	F    float64
	Grad []float64
}

// Result is the outcome of Minimize.
type Result struct {
	Iterate
	Converged bool
}

func (s Settings) withDefaults() Settings {
	if s.MaxIter == 0 {
		s.MaxIter = 100
	}
	if s.Tol == 0 {
		s.Tol = 1e-8
	}
	if s.Name == "" {
		s.Name = "x"
	}
	return s
}

// Minimize runs opt on f from x0 until the gradient vanishes or MaxIter
// steps were taken. x0 is not modified.
//
// The objective graph is rebuilt at every iterate. Optimizers implementing
// CurvatureStepper receive the Hessian diagonal, which costs one extra
// backward pass per parameter.
func Minimize(f Objective, x0 []float64, opt Optimizer, s Settings) (Result, error) {
	if len(x0) == 0 {
		return Result{}, ErrNoStart
	}
	s = s.withDefaults()
	opt.Reset()

	x := append([]float64(nil), x0...)
	for iter := 0; ; iter++ {
		it, curv, err := evaluate(f, x, s.Name, opt)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iter, err)
		}
		it.Iter = iter
		if s.Observe != nil {
			s.Observe(it)
		}

		converged := floats.Norm(it.Grad, math.Inf(1)) <= s.Tol
		if converged || iter == s.MaxIter {
			return Result{Iterate: it, Converged: converged}, nil
		}

		if cs, ok := opt.(CurvatureStepper); ok {
			cs.StepCurvature(x, it.Grad, curv)
		} else {
			opt.Step(x, it.Grad)
		}
	}
}

// evaluate builds f at x and differentiates it. curv is nil unless opt is a
// CurvatureStepper.
func evaluate(f Objective, x []float64, name string, opt Optimizer) (Iterate, []float64, error) {
	leaf := graph.NewNamedLeaf(name, x, true)
	root, err := f(leaf)
	if err != nil {
		return Iterate{}, nil, err
	}
	if root.Len() != 1 {
		return Iterate{}, nil, fmt.Errorf("%w: length %d", ErrNotScalar, root.Len())
	}

	it := Iterate{X: leaf.Value(), F: root.At(0)}
	var curv []float64
	if _, ok := opt.(CurvatureStepper); ok {
		autodiff.SymbolicBackward(root)
		g := leaf.GradNode()
		it.Grad = make([]float64, len(x))
		curv = make([]float64, len(x))
		if g != nil {
			it.Grad = g.Value()
			curv = hessianDiag(g, leaf)
		}
	} else {
		autodiff.Backward(root)
		it.Grad = leaf.Grad()
		if it.Grad == nil {
			it.Grad = make([]float64, len(x))
		}
	}

	if !finite(it.F) || !lo.EveryBy(it.Grad, finite) || !lo.EveryBy(curv, finite) {
		return Iterate{}, nil, fmt.Errorf("%w: f=%g", ErrDiverged, it.F)
	}
	return it, curv, nil
}

// hessianDiag returns d g_i / d x_i for the gradient graph g of x. Row i of
// the Hessian is the gradient of sum(g * e_i).
func hessianDiag(g, x *graph.Node) []float64 {
	n := x.Len()
	curv := make([]float64, n)
	if !g.RequiresGrad() {
		return curv
	}

	e := make([]float64, n)
	for i := range n {
		e[i] = 1
		picked := graph.Must(graph.Mul(g, graph.NewLeaf(e, false)))
		row := graph.Must(graph.Sum(picked))
		e[i] = 0

		autodiff.ZeroGrad(row)
		autodiff.Backward(row)
		if r := x.Grad(); r != nil {
			curv[i] = r[i]
		}
	}
	return curv
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
