// Package expr parses small arithmetic expressions into computation graphs.
//
// The language has float literals, variables, unary minus, the binary
// operators + - * / with the usual precedence, parentheses, and the calls
// mean(e), sum(e), copy(e) and neg(e). Variables are bound to graph Nodes by
// an Env; literals become constant Nodes matching the length of the operand
// they combine with.
//
// Example:
//
//	x := graph.NewNamedLeaf("x", []float64{1}, true)
//	a := graph.NewNamedLeaf("a", []float64{2}, false)
//	f, err := expr.Build("x*x*x + a*x", expr.Env{"x": x, "a": a})
package expr

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/bbsunok/seisgrad/internal/graph"
)

// Env binds variable names to Nodes.
type Env map[string]*graph.Node

var funcs = map[string]func(*graph.Node) (*graph.Node, error){
	"mean": graph.Mean,
	"sum":  graph.Sum,
	"copy": graph.Copy,
	"neg":  graph.Neg,
}

// Expr is a parsed expression that can be built against different Envs.
type Expr struct {
	src  string
	root node
}

// Parse parses src.
func Parse(src string) (*Expr, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, root: root}, nil
}

// String returns the source text.
func (e *Expr) String() string {
	return e.src
}

// Vars returns the variable names referenced by e in order of first use.
func (e *Expr) Vars() []string {
	var names []string
	e.root.walk(func(n node) {
		if id, ok := n.(*ident); ok {
			names = append(names, id.name)
		}
	})
	return lo.Uniq(names)
}

// Build evaluates e eagerly into a graph over the Nodes of env.
func (e *Expr) Build(env Env) (*graph.Node, error) {
	v, err := build(e.root, env)
	if err != nil {
		return nil, fmt.Errorf("build %q: %w", e.src, err)
	}
	return v.node(1), nil
}

// Build parses src and builds it against env.
func Build(src string, env Env) (*graph.Node, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Build(env)
}

// value is either a Node or a literal not yet given a length.
type value struct {
	n      *graph.Node
	scalar float64
}

func (v value) isScalar() bool {
	return v.n == nil
}

// node materializes v, broadcasting a literal to length n.
func (v value) node(n int) *graph.Node {
	if v.isScalar() {
		return graph.Constant(v.scalar, n)
	}
	return v.n
}

func build(n node, env Env) (value, error) {
	switch n := n.(type) {
	case *number:
		return value{scalar: n.value}, nil

	case *ident:
		x, ok := env[n.name]
		if !ok || x == nil {
			return value{}, fmt.Errorf("%w %q at offset %d", ErrUnknownVariable, n.name, n.pos)
		}
		return value{n: x}, nil

	case *unary:
		v, err := build(n.operand, env)
		if err != nil {
			return value{}, err
		}
		if v.isScalar() {
			return value{scalar: -v.scalar}, nil
		}
		out, err := graph.Neg(v.n)
		return value{n: out}, err

	case *binary:
		return buildBinary(n, env)

	case *call:
		fn, ok := funcs[n.fn]
		if !ok {
			return value{}, fmt.Errorf("%w %q at offset %d", ErrUnknownFunc, n.fn, n.pos)
		}
		v, err := build(n.arg, env)
		if err != nil {
			return value{}, err
		}
		out, err := fn(v.node(1))
		return value{n: out}, err

	default:
		panic(fmt.Sprintf("expr: unexpected node %T", n))
	}
}

func buildBinary(n *binary, env Env) (value, error) {
	l, err := build(n.left, env)
	if err != nil {
		return value{}, err
	}
	r, err := build(n.right, env)
	if err != nil {
		return value{}, err
	}

	if l.isScalar() && r.isScalar() {
		return value{scalar: fold(n.op, l.scalar, r.scalar)}, nil
	}

	var a, b *graph.Node
	switch {
	case l.isScalar():
		a, b = l.node(r.n.Len()), r.n
	case r.isScalar():
		a, b = l.n, r.node(l.n.Len())
	default:
		a, b = l.n, r.n
	}

	var out *graph.Node
	switch n.op {
	case '+':
		out, err = graph.Add(a, b)
	case '-':
		out, err = graph.Sub(a, b)
	case '*':
		out, err = graph.Mul(a, b)
	case '/':
		out, err = graph.Div(a, b)
	default:
		panic(fmt.Sprintf("expr: unexpected operator %q", n.op))
	}
	return value{n: out}, err
}

func fold(op rune, a, b float64) float64 {
	switch op {
	case '+':
		return a + b
	case '-':
		return a - b
	case '*':
		return a * b
	case '/':
		return a / b
	default:
		panic(fmt.Sprintf("expr: unexpected operator %q", op))
	}
}
