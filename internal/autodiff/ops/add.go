package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// AddOp is the adjoint of c = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = g
//   - d(a+b)/db = 1, so grad_b = g
type AddOp struct{}

// Backward sends g to both operands.
func (AddOp) Backward(_ *graph.Node, g []float64) [][]float64 {
	return [][]float64{vec.Clone(g), vec.Clone(g)}
}

// BackwardNode sends a separate Copy(g) to each operand so the two
// contributions stay distinct vertices in the gradient graph.
func (AddOp) BackwardNode(_ *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Copy(g)), must(graph.Copy(g))}
}
