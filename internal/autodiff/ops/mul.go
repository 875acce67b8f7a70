package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// MulOp is the adjoint of c = a ⊙ b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = g * b
//   - d(a*b)/db = a, so grad_b = g * a
type MulOp struct{}

// Backward returns [g⊙b, g⊙a].
func (MulOp) Backward(c *graph.Node, g []float64) [][]float64 {
	a, b := c.Operand(0), c.Operand(1)
	return [][]float64{
		vec.Mul(g, b.Value()),
		vec.Mul(g, a.Value()),
	}
}

// BackwardNode returns [Mul(b, g), Mul(a, g)]. The result references the
// forward operands, which is what makes second derivatives non-trivial.
func (MulOp) BackwardNode(c *graph.Node, g *graph.Node) []*graph.Node {
	a, b := c.Operand(0), c.Operand(1)
	return []*graph.Node{
		must(graph.Mul(b, g)),
		must(graph.Mul(a, g)),
	}
}
