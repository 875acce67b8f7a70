package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestForward(t *testing.T) {
	a := NewNamedLeaf("a", []float64{1, -2, 3.5}, true)
	b := NewNamedLeaf("b", []float64{4, 0.5, -2}, false)

	tests := []struct {
		name  string
		build func() (*Node, error)
		op    Operator
		want  []float64
	}{
		{"copy", func() (*Node, error) { return Copy(a) }, OpEqual, []float64{1, -2, 3.5}},
		{"neg", func() (*Node, error) { return Neg(a) }, OpNeg, []float64{-1, 2, -3.5}},
		{"add", func() (*Node, error) { return Add(a, b) }, OpAdd, []float64{5, -1.5, 1.5}},
		{"sub", func() (*Node, error) { return Sub(a, b) }, OpSub, []float64{-3, -2.5, 5.5}},
		{"mul", func() (*Node, error) { return Mul(a, b) }, OpMul, []float64{4, -1, -7}},
		{"div", func() (*Node, error) { return Div(a, b) }, OpDiv, []float64{0.25, -4, -1.75}},
		{"mean", func() (*Node, error) { return Mean(a) }, OpMean, []float64{2.5 / 3}},
		{"sum", func() (*Node, error) { return Sum(a) }, OpSum, []float64{2.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.op, n.Op())
			assert.Equal(t, tt.op.Arity(), len(n.Operands()))
			assert.True(t, n.RequiresGrad(), "a requires grad, so every result does")
			assert.Nil(t, n.Grad())
			assert.Nil(t, n.GradNode())
			if diff := cmp.Diff(tt.want, n.Value(), approx); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpand(t *testing.T) {
	s := NewLeaf([]float64{1.5}, true)
	e, err := Expand(s, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, e.Value())
	assert.Equal(t, OpExpand, e.Op())

	_, err = Expand(NewLeaf([]float64{1, 2}, true), 3)
	assert.ErrorIs(t, err, ErrExpandSource)
}

func TestRequiresGradIsOr(t *testing.T) {
	on := NewLeaf([]float64{1}, true)
	off := NewLeaf([]float64{2}, false)

	assert.True(t, Must(Add(on, off)).RequiresGrad())
	assert.True(t, Must(Mul(off, on)).RequiresGrad())
	assert.False(t, Must(Sub(off, off)).RequiresGrad())
	assert.False(t, Must(Neg(off)).RequiresGrad())
	assert.True(t, Must(Sum(on)).RequiresGrad())
}

func TestShapeMismatch(t *testing.T) {
	a := NewLeaf([]float64{1, 2, 3}, true)
	b := NewLeaf([]float64{1, 2, 3, 4}, true)

	for name, build := range map[string]func(x, y *Node) (*Node, error){
		"add": Add, "sub": Sub, "mul": Mul, "div": Div,
	} {
		t.Run(name, func(t *testing.T) {
			n, err := build(a, b)
			assert.Nil(t, n)
			assert.True(t, errors.Is(err, ErrShapeMismatch), "got %v", err)
		})
	}
}

func TestNilAndEmpty(t *testing.T) {
	_, err := Add(nil, NewLeaf([]float64{1}, true))
	assert.ErrorIs(t, err, ErrNilNode)
	_, err = Neg(nil)
	assert.ErrorIs(t, err, ErrNilNode)

	_, err = Mean(NewLeaf(nil, true))
	assert.ErrorIs(t, err, ErrEmpty)

	s, err := Sum(NewLeaf(nil, true))
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, s.Value())
}

func TestValueIsImmutable(t *testing.T) {
	data := []float64{1, 2}
	n := NewLeaf(data, true)
	data[0] = 100
	assert.Equal(t, 1.0, n.At(0), "leaf must own its data")

	v := n.Value()
	v[1] = 100
	assert.Equal(t, 2.0, n.At(1), "Value must return a copy")
}

func TestAccumulateGrad(t *testing.T) {
	n := NewLeaf([]float64{1, 2}, true)
	assert.False(t, n.HasGrad())

	require.NoError(t, n.AccumulateGrad([]float64{1, 2}))
	require.NoError(t, n.AccumulateGrad([]float64{0.5, 0.5}))
	assert.Equal(t, []float64{1.5, 2.5}, n.Grad())

	err := n.AccumulateGrad([]float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, []float64{1.5, 2.5}, n.Grad(), "failed accumulation must not change grad")

	n.ZeroGrad()
	assert.Nil(t, n.Grad())
}

func TestAccumulateGradNode(t *testing.T) {
	n := NewLeaf([]float64{1, 2}, true)
	d1 := NewLeaf([]float64{1, 1}, false)
	d2 := NewLeaf([]float64{2, 3}, false)

	require.NoError(t, n.AccumulateGradNode(d1))
	assert.Same(t, d1, n.GradNode(), "first contribution is stored as is")

	require.NoError(t, n.AccumulateGradNode(d2))
	g := n.GradNode()
	assert.Equal(t, OpAdd, g.Op())
	assert.Same(t, d1, g.Operand(0))
	assert.Same(t, d2, g.Operand(1))
	assert.Equal(t, []float64{3, 4}, g.Value())

	assert.ErrorIs(t, n.AccumulateGradNode(nil), ErrNilNode)
	assert.ErrorIs(t, n.AccumulateGradNode(Ones(3)), ErrShapeMismatch)
}

func TestNamesAndString(t *testing.T) {
	x := NewNamedLeaf("x", []float64{2}, true)
	y := NewNamedLeaf("y", []float64{3}, false)

	xy := Must(Mul(x, y))
	assert.Empty(t, xy.Name(), "derived nodes are unnamed")
	assert.Equal(t, "(x*y)", xy.Expr())
	assert.Equal(t, "neg((x+y))", Must(Neg(Must(Add(x, y)))).Expr())
	assert.Equal(t, "mean(leaf[2])", Must(Mean(NewLeaf([]float64{1, 2}, true))).Expr())
	assert.Equal(t, "expand(sum(x),3)", Must(Expand(Must(Sum(x)), 3)).Expr())
	assert.Equal(t, "(x/0.5)", Must(Div(x, Constant(0.5, 1))).Expr())

	xy.SetName("p")
	assert.Equal(t, "equal(p)", Must(Copy(xy)).Expr())

	assert.Equal(t, "{data:[2], requiresGrad: true, op: LEAF, name: x}", x.String())
	assert.Equal(t, "{data:[-2], requiresGrad: true, op: NEG, name: NEG}", Must(Neg(x)).String())
}

func TestExprDepthLimit(t *testing.T) {
	n := NewNamedLeaf("x", []float64{1}, true)
	for i := 0; i < 100; i++ {
		n = Must(Neg(n))
	}
	e := n.Expr()
	assert.Contains(t, e, "…")
	assert.NotContains(t, e, "x")
}

func TestConstants(t *testing.T) {
	o := Ones(3)
	assert.Equal(t, []float64{1, 1, 1}, o.Value())
	assert.False(t, o.RequiresGrad())
	assert.True(t, o.IsLeaf())

	c := Constant(0.25, 2)
	assert.Equal(t, []float64{0.25, 0.25}, c.Value())
	assert.Equal(t, "0.25", c.Name())
}

func TestOperatorString(t *testing.T) {
	assert.Equal(t, "MUL", OpMul.String())
	assert.Equal(t, "LEAF", OpLeaf.String())
	assert.Equal(t, "UNKNOWN", Operator(99).String())
	assert.Equal(t, 0, OpLeaf.Arity())
}
