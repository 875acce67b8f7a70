package graph

// Operator tags the operation that produced a Node.
// The set is closed; the zero value marks a leaf.
type Operator int

// Supported operators.
const (
	OpLeaf   Operator = iota
	OpEqual           // copy
	OpNeg             // -a
	OpAdd             // a + b
	OpSub             // a - b
	OpMul             // a ⊙ b
	OpDiv             // a ⊘ b
	OpMean            // [Σa / n]
	OpSum             // [Σa]
	OpExpand          // [a0] repeated n times
)

// String returns the operator name.
func (op Operator) String() string {
	switch op {
	case OpLeaf:
		return "LEAF"
	case OpEqual:
		return "EQUAL"
	case OpNeg:
		return "NEG"
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpMean:
		return "MEAN"
	case OpSum:
		return "SUM"
	case OpExpand:
		return "EXPAND"
	default:
		return "UNKNOWN"
	}
}

// Arity returns the number of operands the operator takes.
func (op Operator) Arity() int {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return 2
	case OpEqual, OpNeg, OpMean, OpSum, OpExpand:
		return 1
	default:
		return 0
	}
}

func (op Operator) infix() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}
