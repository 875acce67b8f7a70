package autodiff

import (
	"github.com/bbsunok/seisgrad/internal/autodiff/ops"
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

var numericPass = pass[[]float64]{
	name: "backward",
	seed: func(root *graph.Node) []float64 {
		return vec.Ones(root.Len())
	},
	propagate: func(rule ops.Rule, n *graph.Node, g []float64) [][]float64 {
		return rule.Backward(n, g)
	},
	add: vec.Add,
	commit: func(n *graph.Node, g []float64) error {
		return n.AccumulateGrad(g)
	},
}

// Backward runs the numeric reverse pass from root, seeding droot/droot with
// ones. Every differentiable Node reachable from root has the gradient it
// received added to its Grad. Calling Backward on a root that does not
// require gradients is a no-op.
//
// Example:
//
//	x := graph.NewLeaf([]float64{3}, true)
//	y := graph.Must(graph.Mul(x, x)) // y = x²
//	autodiff.Backward(y)
//	x.Grad() // [6]
func Backward(root *graph.Node) {
	run(root, numericPass)
}
