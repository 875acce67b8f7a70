package ops

import (
	"fmt"

	"github.com/bbsunok/seisgrad/internal/graph"
)

// must unwraps a builder result inside a symbolic rule. Operand shapes were
// validated when c was built, so an error here is an engine bug.
func must(n *graph.Node, err error) *graph.Node {
	if err != nil {
		panic(fmt.Sprintf("ops: building gradient node: %v", err))
	}
	return n
}
