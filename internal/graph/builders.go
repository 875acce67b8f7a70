package graph

import (
	"fmt"

	"github.com/bbsunok/seisgrad/internal/vec"
)

// Builders compute the forward value eagerly and record provenance.
// Binary builders require operands of equal length and fail before any
// Node is created otherwise.

func checkUnary(op Operator, a *Node) error {
	if a == nil {
		return fmt.Errorf("%s: %w", op, ErrNilNode)
	}
	return nil
}

func checkBinary(op Operator, a, b *Node) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilNode)
	}
	if a.Len() != b.Len() {
		return fmt.Errorf("%s: %w: %d vs %d", op, ErrShapeMismatch, a.Len(), b.Len())
	}
	return nil
}

// Copy returns a Node equal to a.
func Copy(a *Node) (*Node, error) {
	if err := checkUnary(OpEqual, a); err != nil {
		return nil, err
	}
	return newDerived(OpEqual, vec.Clone(a.value), a), nil
}

// Neg returns -a.
func Neg(a *Node) (*Node, error) {
	if err := checkUnary(OpNeg, a); err != nil {
		return nil, err
	}
	return newDerived(OpNeg, vec.Neg(a.value), a), nil
}

// Add returns a + b.
func Add(a, b *Node) (*Node, error) {
	if err := checkBinary(OpAdd, a, b); err != nil {
		return nil, err
	}
	return newDerived(OpAdd, vec.Add(a.value, b.value), a, b), nil
}

// Sub returns a - b.
func Sub(a, b *Node) (*Node, error) {
	if err := checkBinary(OpSub, a, b); err != nil {
		return nil, err
	}
	return newDerived(OpSub, vec.Sub(a.value, b.value), a, b), nil
}

// Mul returns the elementwise product a ⊙ b.
func Mul(a, b *Node) (*Node, error) {
	if err := checkBinary(OpMul, a, b); err != nil {
		return nil, err
	}
	return newDerived(OpMul, vec.Mul(a.value, b.value), a, b), nil
}

// Div returns the elementwise quotient a ⊘ b. Zero elements of b are the
// caller's responsibility and produce ±Inf or NaN.
func Div(a, b *Node) (*Node, error) {
	if err := checkBinary(OpDiv, a, b); err != nil {
		return nil, err
	}
	return newDerived(OpDiv, vec.Div(a.value, b.value), a, b), nil
}

// Mean returns the length-1 Node [Σa/n].
func Mean(a *Node) (*Node, error) {
	if err := checkUnary(OpMean, a); err != nil {
		return nil, err
	}
	if a.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", OpMean, ErrEmpty)
	}
	return newDerived(OpMean, []float64{vec.Mean(a.value)}, a), nil
}

// Sum returns the length-1 Node [Σa].
func Sum(a *Node) (*Node, error) {
	if err := checkUnary(OpSum, a); err != nil {
		return nil, err
	}
	return newDerived(OpSum, []float64{vec.Sum(a.value)}, a), nil
}

// Expand repeats the single element of a n times.
func Expand(a *Node, n int) (*Node, error) {
	if err := checkUnary(OpExpand, a); err != nil {
		return nil, err
	}
	if a.Len() != 1 {
		return nil, fmt.Errorf("%s: %w: got length %d", OpExpand, ErrExpandSource, a.Len())
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: %w: negative length %d", OpExpand, ErrShapeMismatch, n)
	}
	return newDerived(OpExpand, vec.Fill(n, a.value[0]), a), nil
}

// Must returns n or panics on err. It is meant for graphs whose shapes are
// known to agree, such as tests and gradient construction.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}
