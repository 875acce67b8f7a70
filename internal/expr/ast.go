package expr

// node is a parsed expression.
type node interface {
	// walk calls fn for node and all its descendants, parents first.
	walk(fn func(node))
}

type number struct {
	value float64
}

type ident struct {
	name string
	pos  int
}

type unary struct {
	op      rune // only '-'
	operand node
}

type binary struct {
	op          rune // '+', '-', '*', '/'
	left, right node
}

type call struct {
	fn  string
	arg node
	pos int
}

func (n *number) walk(fn func(node)) { fn(n) }
func (n *ident) walk(fn func(node))  { fn(n) }

func (n *unary) walk(fn func(node)) {
	fn(n)
	n.operand.walk(fn)
}

func (n *binary) walk(fn func(node)) {
	fn(n)
	n.left.walk(fn)
	n.right.walk(fn)
}

func (n *call) walk(fn func(node)) {
	fn(n)
	n.arg.walk(fn)
}
