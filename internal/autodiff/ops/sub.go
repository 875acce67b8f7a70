package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// SubOp is the adjoint of c = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = g
//   - d(a-b)/db = -1, so grad_b = -g
type SubOp struct{}

// Backward returns [g, -g].
func (SubOp) Backward(_ *graph.Node, g []float64) [][]float64 {
	return [][]float64{vec.Clone(g), vec.Neg(g)}
}

// BackwardNode returns [Copy(g), Neg(g)].
func (SubOp) BackwardNode(_ *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Copy(g)), must(graph.Neg(g))}
}
