// Package ops defines the adjoint rules used by the backward passes.
//
// Each operator has one Rule with two faces:
//   - Backward: numeric adjoint, maps the output gradient vector to one
//     gradient vector per operand
//   - BackwardNode: symbolic adjoint, maps the output gradient Node to one
//     gradient Node per operand, building a graph that can be differentiated again
//
// Supported operators:
//   - CopyOp: d(a)/da = 1
//   - NegOp: d(-a)/da = -1
//   - AddOp: d(a+b)/da = 1, d(a+b)/db = 1
//   - SubOp: d(a-b)/da = 1, d(a-b)/db = -1
//   - MulOp: d(a*b)/da = b, d(a*b)/db = a
//   - DivOp: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - MeanOp: d(mean(a))/da_i = 1/n
//   - SumOp: d(sum(a))/da_i = 1
//   - ExpandOp: d(expand(a))/da = Σ over the copies
package ops

import (
	"fmt"

	"github.com/bbsunok/seisgrad/internal/graph"
)

// Rule is the adjoint of one operator.
//
// Both methods receive the Node c whose gradient is being propagated and
// return contributions in operand order. Contributions never alias g or any
// Node value, so callers may keep them.
type Rule interface {
	// Backward computes numeric operand gradients given dL/dc.
	//
	// Example for AddOp:
	//   operands: [a, b]
	//   g: dL/d(a+b)
	//   returns: [g, g]
	Backward(c *graph.Node, g []float64) [][]float64

	// BackwardNode computes symbolic operand gradients given the gradient
	// Node of c.
	BackwardNode(c *graph.Node, g *graph.Node) []*graph.Node
}

// For returns the rule for op. It panics for OpLeaf, which has nothing to
// propagate, and for tags outside the closed operator set.
func For(op graph.Operator) Rule {
	switch op {
	case graph.OpEqual:
		return CopyOp{}
	case graph.OpNeg:
		return NegOp{}
	case graph.OpAdd:
		return AddOp{}
	case graph.OpSub:
		return SubOp{}
	case graph.OpMul:
		return MulOp{}
	case graph.OpDiv:
		return DivOp{}
	case graph.OpMean:
		return MeanOp{}
	case graph.OpSum:
		return SumOp{}
	case graph.OpExpand:
		return ExpandOp{}
	default:
		panic(fmt.Sprintf("ops: no adjoint rule for operator %s", op))
	}
}
