// Copyright 2026 The seisgrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// 1-D float64 vectors, including higher-order derivatives.
//
// Graphs are built eagerly from leaves; Backward accumulates numeric
// gradients, SymbolicBackward builds gradient graphs that can be
// differentiated again.
//
// Example:
//
//	import "github.com/bbsunok/seisgrad/autodiff"
//
//	func main() {
//	    x := autodiff.NewLeaf([]float64{2}, true)
//	    x2 := autodiff.Must(autodiff.Mul(x, x))
//	    f := autodiff.Must(autodiff.Mul(x2, x)) // f = x³
//
//	    autodiff.SymbolicBackward(f)
//	    df := x.GradNode() // 3x² = 12
//
//	    autodiff.Backward(df)
//	    fmt.Println(x.Grad()) // 6x = [12]
//	}
package autodiff

import (
	"github.com/bbsunok/seisgrad/internal/autodiff"
	"github.com/bbsunok/seisgrad/internal/graph"
)

// Node is a computation-graph vertex holding a value and its gradients.
type Node = graph.Node

// Operator tags the operation that produced a Node.
type Operator = graph.Operator

// Supported operators.
const (
	OpLeaf   = graph.OpLeaf
	OpEqual  = graph.OpEqual
	OpNeg    = graph.OpNeg
	OpAdd    = graph.OpAdd
	OpSub    = graph.OpSub
	OpMul    = graph.OpMul
	OpDiv    = graph.OpDiv
	OpMean   = graph.OpMean
	OpSum    = graph.OpSum
	OpExpand = graph.OpExpand
)

// Errors returned by graph builders.
var (
	ErrShapeMismatch = graph.ErrShapeMismatch
	ErrNilNode       = graph.ErrNilNode
	ErrEmpty         = graph.ErrEmpty
	ErrExpandSource  = graph.ErrExpandSource
)

// Tape lists the differentiable Nodes of a graph in execution order.
type Tape = autodiff.Tape

// NewLeaf creates a leaf Node holding a copy of data.
func NewLeaf(data []float64, requiresGrad bool) *Node {
	return graph.NewLeaf(data, requiresGrad)
}

// NewNamedLeaf creates a leaf Node with a debug label.
func NewNamedLeaf(name string, data []float64, requiresGrad bool) *Node {
	return graph.NewNamedLeaf(name, data, requiresGrad)
}

// Constant creates a leaf of n copies of c that does not require gradients.
func Constant(c float64, n int) *Node {
	return graph.Constant(c, n)
}

// Copy returns a Node equal to a.
func Copy(a *Node) (*Node, error) { return graph.Copy(a) }

// Neg returns -a.
func Neg(a *Node) (*Node, error) { return graph.Neg(a) }

// Add returns a + b.
func Add(a, b *Node) (*Node, error) { return graph.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Node) (*Node, error) { return graph.Sub(a, b) }

// Mul returns a ⊙ b.
func Mul(a, b *Node) (*Node, error) { return graph.Mul(a, b) }

// Div returns a ⊘ b.
func Div(a, b *Node) (*Node, error) { return graph.Div(a, b) }

// Mean returns [Σa/n].
func Mean(a *Node) (*Node, error) { return graph.Mean(a) }

// Sum returns [Σa].
func Sum(a *Node) (*Node, error) { return graph.Sum(a) }

// Expand repeats the single element of a n times.
func Expand(a *Node, n int) (*Node, error) { return graph.Expand(a, n) }

// Must returns n or panics on err.
func Must(n *Node, err error) *Node { return graph.Must(n, err) }

// Backward accumulates numeric gradients of root into every reachable Node.
func Backward(root *Node) {
	autodiff.Backward(root)
}

// SymbolicBackward accumulates gradient graphs of root into every reachable Node.
func SymbolicBackward(root *Node) {
	autodiff.SymbolicBackward(root)
}

// ZeroGrad clears the gradients of every Node reachable from root.
func ZeroGrad(root *Node) {
	autodiff.ZeroGrad(root)
}

// Grad returns the order-th derivative graph of root with respect to wrt.
func Grad(root, wrt *Node, order int) (*Node, error) {
	return autodiff.Grad(root, wrt, order)
}

// Record returns the Tape of root.
func Record(root *Node) *Tape {
	return autodiff.Record(root)
}
