package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// SumOp is the adjoint of c = [Σa]. Every element of a receives g[0].
type SumOp struct{}

// Backward spreads g[0] over the operand length.
func (SumOp) Backward(c *graph.Node, g []float64) [][]float64 {
	return [][]float64{vec.Fill(c.Operand(0).Len(), g[0])}
}

// BackwardNode returns Expand(g, n).
func (SumOp) BackwardNode(c *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Expand(g, c.Operand(0).Len()))}
}
