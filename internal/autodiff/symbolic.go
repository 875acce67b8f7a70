package autodiff

import (
	"github.com/bbsunok/seisgrad/internal/autodiff/ops"
	"github.com/bbsunok/seisgrad/internal/graph"
)

var symbolicPass = pass[*graph.Node]{
	name: "symbolic backward",
	seed: func(root *graph.Node) *graph.Node {
		return graph.Ones(root.Len())
	},
	propagate: func(rule ops.Rule, n *graph.Node, g *graph.Node) []*graph.Node {
		return rule.BackwardNode(n, g)
	},
	add: func(x, y *graph.Node) *graph.Node {
		return graph.Must(graph.Add(x, y))
	},
	commit: func(n *graph.Node, g *graph.Node) error {
		return n.AccumulateGradNode(g)
	},
}

// SymbolicBackward runs the reverse pass building gradient graphs instead of
// numbers. Afterwards GradNode of every differentiable Node reachable from
// root is a Node whose value is the gradient and whose graph can itself be
// differentiated: Backward or SymbolicBackward on a GradNode yields the next
// derivative order.
//
// Example:
//
//	x := graph.NewLeaf([]float64{2}, true)
//	f := graph.Must(graph.Mul(graph.Must(graph.Mul(x, x)), x)) // f = x³
//	autodiff.SymbolicBackward(f)
//	dx := x.GradNode() // value [12] = 3x²
//	autodiff.Backward(dx)
//	x.Grad() // [12] = 6x
func SymbolicBackward(root *graph.Node) {
	run(root, symbolicPass)
}
