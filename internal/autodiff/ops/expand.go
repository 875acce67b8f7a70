package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// ExpandOp is the adjoint of c = [a0, a0, ..., a0]. It is the transpose of
// SumOp: the single operand element collects the sum of g.
type ExpandOp struct{}

// Backward returns [Σg].
func (ExpandOp) Backward(_ *graph.Node, g []float64) [][]float64 {
	return [][]float64{{vec.Sum(g)}}
}

// BackwardNode returns Sum(g).
func (ExpandOp) BackwardNode(_ *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Sum(g))}
}
