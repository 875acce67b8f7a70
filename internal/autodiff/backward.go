package autodiff

import (
	"fmt"

	"github.com/bbsunok/seisgrad/internal/autodiff/ops"
	"github.com/bbsunok/seisgrad/internal/graph"
)

// pass parameterizes the shared reverse traversal by gradient kind:
// []float64 for the numeric pass, *graph.Node for the symbolic one.
type pass[G any] struct {
	name      string
	seed      func(root *graph.Node) G
	propagate func(rule ops.Rule, n *graph.Node, g G) []G
	add       func(x, y G) G
	commit    func(n *graph.Node, g G) error
}

// run walks the Tape of root in reverse.
//
// Algorithm:
//  1. Seed dL/droot
//  2. Visit Nodes in reverse execution order, so a Node's gradient for this
//     pass is complete before it propagates
//  3. Apply the operator's adjoint rule and sum contributions per operand
//  4. Commit every pass-local sum into the Node's persistent accumulator
//
// Sums are kept pass-local until step 4 so a second pass over the same graph
// propagates only its own contributions.
func run[G any](root *graph.Node, p pass[G]) {
	if root == nil {
		panic(p.name + ": nil root")
	}
	if !root.RequiresGrad() {
		return
	}

	tape := Record(root)
	grads := make(map[*graph.Node]G, tape.Len())
	grads[root] = p.seed(root)

	for i := tape.Len() - 1; i >= 0; i-- {
		n := tape.At(i)
		g, ok := grads[n]
		if !ok || n.IsLeaf() {
			continue
		}
		contribs := p.propagate(ops.For(n.Op()), n, g)
		for j, operand := range n.Operands() {
			if !operand.RequiresGrad() {
				continue
			}
			if existing, ok := grads[operand]; ok {
				grads[operand] = p.add(existing, contribs[j])
			} else {
				grads[operand] = contribs[j]
			}
		}
	}

	for i := 0; i < tape.Len(); i++ {
		n := tape.At(i)
		g, ok := grads[n]
		if !ok {
			continue
		}
		if err := p.commit(n, g); err != nil {
			panic(fmt.Sprintf("%s: %v", p.name, err))
		}
	}
}
