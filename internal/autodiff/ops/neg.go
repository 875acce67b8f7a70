package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// NegOp is the adjoint of c = -a.
type NegOp struct{}

// Backward returns -g.
func (NegOp) Backward(_ *graph.Node, g []float64) [][]float64 {
	return [][]float64{vec.Neg(g)}
}

// BackwardNode returns Neg(g).
func (NegOp) BackwardNode(_ *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Neg(g))}
}
