// Package autodiff implements reverse-mode automatic differentiation over
// graph.Node computation graphs.
//
// Two passes share one traversal skeleton:
//   - Backward: numeric pass, accumulates float gradients into Node.Grad
//   - SymbolicBackward: builds gradient graphs into Node.GradNode, which can be
//     differentiated again for higher-order derivatives
//
// Both passes visit Nodes in reverse topological order and sum contributions
// from every path, so a variable reused in several sub-expressions (x*x,
// a*x + b*x) receives the full derivative.
//
// Usage:
//
//	x := graph.NewNamedLeaf("x", []float64{1}, true)
//	a := graph.NewNamedLeaf("a", []float64{2}, false)
//	f := graph.Must(graph.Add(
//	    graph.Must(graph.Mul(x, graph.Must(graph.Mul(x, x)))),
//	    graph.Must(graph.Mul(a, x)),
//	)) // f = x³ + a·x
//
//	autodiff.SymbolicBackward(f)
//	df := x.GradNode() // 3x² + a = 5
//	autodiff.Backward(df)
//	x.Grad() // 6x = 6
package autodiff

import (
	"fmt"

	"github.com/bbsunok/seisgrad/internal/graph"
)

// ZeroGrad clears Grad and GradNode on every Node reachable from root,
// including Nodes that do not require gradients.
func ZeroGrad(root *graph.Node) {
	tape := recordAll(root)
	for i := 0; i < tape.Len(); i++ {
		tape.At(i).ZeroGrad()
	}
}

// Grad returns the order-th derivative of root with respect to wrt as a
// graph. Derivatives of vector-valued roots are taken of their elementwise
// sum, matching the ones seed of the backward passes.
//
// Grad resets the accumulators of every graph it differentiates. When the
// derivative vanishes identically, the result is a constant zero leaf.
func Grad(root, wrt *graph.Node, order int) (*graph.Node, error) {
	if root == nil || wrt == nil {
		return nil, fmt.Errorf("grad: %w", graph.ErrNilNode)
	}
	if order < 1 {
		return nil, fmt.Errorf("grad: order must be at least 1, got %d", order)
	}

	cur := root
	for range order {
		ZeroGrad(cur)
		wrt.ZeroGrad()
		SymbolicBackward(cur)

		next := wrt.GradNode()
		if next == nil {
			return graph.Constant(0, wrt.Len()), nil
		}
		cur = next
	}
	return cur, nil
}
