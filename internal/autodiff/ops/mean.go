package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// MeanOp is the adjoint of c = [Σa/n]. Every element of a receives g[0]/n.
type MeanOp struct{}

// Backward spreads g[0]/n over the operand length.
func (MeanOp) Backward(c *graph.Node, g []float64) [][]float64 {
	n := c.Operand(0).Len()
	return [][]float64{vec.Fill(n, g[0]/float64(n))}
}

// BackwardNode returns Expand(g * [1/n], n).
func (MeanOp) BackwardNode(c *graph.Node, g *graph.Node) []*graph.Node {
	n := c.Operand(0).Len()
	scaled := must(graph.Mul(g, graph.Constant(1/float64(n), 1)))
	return []*graph.Node{must(graph.Expand(scaled, n))}
}
