// Package graph defines the computation-graph vertex used by the autodiff engine
// and the forward builders for every supported operator.
//
// A Node owns an immutable value vector and references the operand Nodes it was
// built from. Operands are shared: the same Node may feed many consumers, so the
// graph is a DAG rather than a tree. Backward passes populate two accumulators
// on each reachable Node:
//   - grad: the numeric gradient, a float vector
//   - gradNode: the symbolic gradient, itself a Node that can be differentiated again
//
// Both accumulators only ever grow by addition.
package graph

import (
	"fmt"
	"strings"

	"github.com/bbsunok/seisgrad/internal/vec"
)

// Node is a vertex of the computation graph.
type Node struct {
	value        []float64
	requiresGrad bool
	operands     []*Node
	op           Operator
	name         string

	grad     []float64
	gradNode *Node
}

// NewLeaf creates a leaf Node holding a copy of data.
func NewLeaf(data []float64, requiresGrad bool) *Node {
	return NewNamedLeaf("", data, requiresGrad)
}

// NewNamedLeaf creates a leaf Node with a debug label.
func NewNamedLeaf(name string, data []float64, requiresGrad bool) *Node {
	v := make([]float64, len(data))
	copy(v, data)
	return &Node{
		value:        v,
		requiresGrad: requiresGrad,
		name:         name,
	}
}

// Ones creates a constant leaf of n ones.
func Ones(n int) *Node {
	return &Node{value: vec.Ones(n), name: "1"}
}

// Constant creates a constant leaf of n copies of c.
func Constant(c float64, n int) *Node {
	return &Node{value: vec.Fill(n, c), name: fmt.Sprintf("%g", c)}
}

// newDerived wraps an already computed value. value must be freshly allocated.
func newDerived(op Operator, value []float64, operands ...*Node) *Node {
	requiresGrad := false
	for _, p := range operands {
		requiresGrad = requiresGrad || p.requiresGrad
	}
	return &Node{
		value:        value,
		requiresGrad: requiresGrad,
		operands:     operands,
		op:           op,
	}
}

// Value returns a copy of the forward value.
func (n *Node) Value() []float64 {
	return vec.Clone(n.value)
}

// At returns the i-th element of the forward value.
func (n *Node) At(i int) float64 {
	return n.value[i]
}

// Len returns the vector length. Only rank-1 values exist, so this is the shape.
func (n *Node) Len() int {
	return len(n.value)
}

// RequiresGrad reports whether backward passes propagate through n.
func (n *Node) RequiresGrad() bool {
	return n.requiresGrad
}

// Op returns the operator that produced n, or OpLeaf.
func (n *Node) Op() Operator {
	return n.op
}

// IsLeaf reports whether n has no operands.
func (n *Node) IsLeaf() bool {
	return len(n.operands) == 0
}

// Operands returns the operand Nodes in order.
// The returned slice must not be modified.
func (n *Node) Operands() []*Node {
	return n.operands
}

// Operand returns the i-th operand.
func (n *Node) Operand(i int) *Node {
	return n.operands[i]
}

// Name returns the debug label. Derived Nodes are unnamed unless SetName
// was called; see Expr for a rendered expression.
func (n *Node) Name() string {
	return n.name
}

// SetName replaces the debug label.
func (n *Node) SetName(name string) {
	n.name = name
}

// Grad returns a copy of the numeric gradient, or nil if no backward pass
// has reached n.
func (n *Node) Grad() []float64 {
	return vec.Clone(n.grad)
}

// HasGrad reports whether a numeric gradient is present.
func (n *Node) HasGrad() bool {
	return n.grad != nil
}

// GradNode returns the symbolic gradient, or nil.
func (n *Node) GradNode() *Node {
	return n.gradNode
}

// AccumulateGrad adds delta elementwise into the numeric gradient.
func (n *Node) AccumulateGrad(delta []float64) error {
	if len(delta) != len(n.value) {
		return fmt.Errorf("accumulate grad %s: %w: got %d, want %d", n.label(), ErrShapeMismatch, len(delta), len(n.value))
	}
	if n.grad == nil {
		n.grad = make([]float64, len(n.value))
	}
	vec.AddInPlace(n.grad, delta)
	return nil
}

// AccumulateGradNode adds delta into the symbolic gradient. The first call
// stores delta itself; later calls replace gradNode with Add(gradNode, delta),
// which is again differentiable.
func (n *Node) AccumulateGradNode(delta *Node) error {
	if delta == nil {
		return fmt.Errorf("accumulate grad node %s: %w", n.label(), ErrNilNode)
	}
	if delta.Len() != n.Len() {
		return fmt.Errorf("accumulate grad node %s: %w: got %d, want %d", n.label(), ErrShapeMismatch, delta.Len(), n.Len())
	}
	if n.gradNode == nil {
		n.gradNode = delta
		return nil
	}
	sum, err := Add(n.gradNode, delta)
	if err != nil {
		return fmt.Errorf("accumulate grad node %s: %w", n.label(), err)
	}
	n.gradNode = sum
	return nil
}

// ZeroGrad drops both gradient accumulators of n.
func (n *Node) ZeroGrad() {
	n.grad = nil
	n.gradNode = nil
}

func (n *Node) label() string {
	switch {
	case n.name != "":
		return n.name
	case n.op != OpLeaf:
		return n.op.String()
	default:
		return "_"
	}
}

// exprDepth bounds Expr output; gradient graphs of higher orders nest deeply.
const exprDepth = 12

// Expr renders the expression that produced n, using operand names where
// set. Sub-expressions nested deeper than a fixed limit print as "…".
func (n *Node) Expr() string {
	var b strings.Builder
	n.writeExpr(&b, exprDepth)
	return b.String()
}

func (n *Node) writeExpr(b *strings.Builder, depth int) {
	switch {
	case n.name != "":
		b.WriteString(n.name)
		return
	case n.op == OpLeaf && len(n.value) == 1:
		fmt.Fprintf(b, "%g", n.value[0])
		return
	case n.op == OpLeaf:
		fmt.Fprintf(b, "leaf[%d]", len(n.value))
		return
	case depth == 0:
		b.WriteString("…")
		return
	}

	switch n.op {
	case OpAdd, OpSub, OpMul, OpDiv:
		b.WriteByte('(')
		n.operands[0].writeExpr(b, depth-1)
		b.WriteString(n.op.infix())
		n.operands[1].writeExpr(b, depth-1)
		b.WriteByte(')')
	case OpExpand:
		b.WriteString("expand(")
		n.operands[0].writeExpr(b, depth-1)
		fmt.Fprintf(b, ",%d)", len(n.value))
	default:
		b.WriteString(strings.ToLower(n.op.String()))
		b.WriteByte('(')
		n.operands[0].writeExpr(b, depth-1)
		b.WriteByte(')')
	}
}

// String formats n for debugging.
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString("{data:[")
	for i, x := range n.value {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g", x)
	}
	fmt.Fprintf(&b, "], requiresGrad: %t, op: %s, name: %s}", n.requiresGrad, n.op, n.label())
	return b.String()
}
