package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// DivOp is the adjoint of c = a ⊘ b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = g / b
//   - d(a/b)/db = -a/b², so grad_b = -g * a / b²
type DivOp struct{}

// Backward returns [g⊘b, -(g⊙a)⊘b²].
func (DivOp) Backward(c *graph.Node, g []float64) [][]float64 {
	a, b := c.Operand(0).Value(), c.Operand(1).Value()

	gradA := vec.Div(g, b)

	bSquared := vec.Mul(b, b)
	numerator := vec.Mul(g, a)
	gradB := vec.Neg(vec.Div(numerator, bSquared))

	return [][]float64{gradA, gradB}
}

// BackwardNode returns [Div(g, b), Neg(Div(Mul(a, g), Mul(b, b)))].
func (DivOp) BackwardNode(c *graph.Node, g *graph.Node) []*graph.Node {
	a, b := c.Operand(0), c.Operand(1)

	gradA := must(graph.Div(g, b))

	bSquared := must(graph.Mul(b, b))
	numerator := must(graph.Mul(a, g))
	gradB := must(graph.Neg(must(graph.Div(numerator, bSquared))))

	return []*graph.Node{gradA, gradB}
}
