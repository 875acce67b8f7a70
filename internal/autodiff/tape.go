package autodiff

import "github.com/bbsunok/seisgrad/internal/graph"

// Tape lists the differentiable part of a graph in execution order: every
// Node appears after all of its operands. Walking a Tape backwards therefore
// visits every consumer of a Node before the Node itself.
//
// Usage:
//
//	tape := Record(loss)
//	for i := tape.Len() - 1; i >= 0; i-- {
//	    n := tape.At(i) // all consumers of n already visited
//	}
type Tape struct {
	nodes []*graph.Node
}

// Record builds the Tape of root. Only Nodes with RequiresGrad set are
// recorded; a Node that does not require gradients is a dead end, and since
// requiresGrad is inherited nothing below it requires gradients either.
func Record(root *graph.Node) *Tape {
	return record(root, (*graph.Node).RequiresGrad)
}

// recordAll builds a Tape containing every Node reachable from root.
func recordAll(root *graph.Node) *Tape {
	return record(root, func(*graph.Node) bool { return true })
}

// record performs an iterative post-order DFS, so deep graphs built by
// repeated symbolic differentiation cannot overflow the goroutine stack.
func record(root *graph.Node, include func(*graph.Node) bool) *Tape {
	t := &Tape{nodes: make([]*graph.Node, 0, 64)}
	if root == nil || !include(root) {
		return t
	}

	type frame struct {
		node *graph.Node
		next int // index of the next operand to descend into
	}
	visited := map[*graph.Node]bool{root: true}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := top.node.Operands()
		if top.next < len(operands) {
			p := operands[top.next]
			top.next++
			if !visited[p] && include(p) {
				visited[p] = true
				stack = append(stack, frame{node: p})
			}
			continue
		}
		t.nodes = append(t.nodes, top.node)
		stack = stack[:len(stack)-1]
	}
	return t
}

// Len returns the number of recorded Nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// At returns the i-th Node in execution order.
func (t *Tape) At(i int) *graph.Node {
	return t.nodes[i]
}

// Root returns the last recorded Node, or nil for an empty Tape.
func (t *Tape) Root() *graph.Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.nodes[len(t.nodes)-1]
}

// Leaves returns the recorded Nodes without operands, in execution order.
func (t *Tape) Leaves() []*graph.Node {
	var leaves []*graph.Node
	for _, n := range t.nodes {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
	}
	return leaves
}
