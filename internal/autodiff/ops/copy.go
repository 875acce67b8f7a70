package ops

import (
	"github.com/bbsunok/seisgrad/internal/graph"
	"github.com/bbsunok/seisgrad/internal/vec"
)

// CopyOp is the adjoint of c = a.
type CopyOp struct{}

// Backward passes g through unchanged.
func (CopyOp) Backward(_ *graph.Node, g []float64) [][]float64 {
	return [][]float64{vec.Clone(g)}
}

// BackwardNode returns Copy(g).
func (CopyOp) BackwardNode(_ *graph.Node, g *graph.Node) []*graph.Node {
	return []*graph.Node{must(graph.Copy(g))}
}
