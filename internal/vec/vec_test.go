package vec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/bbsunok/seisgrad/internal/parallel"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestElementwise(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{2, 4, 8, 16}

	tests := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"Add", Add(a, b), []float64{3, 6, 11, 20}},
		{"Sub", Sub(a, b), []float64{-1, -2, -5, -12}},
		{"Mul", Mul(a, b), []float64{2, 8, 24, 64}},
		{"Div", Div(a, b), []float64{0.5, 0.5, 0.375, 0.25}},
		{"Scale", Scale(2.5, a), []float64{2.5, 5, 7.5, 10}},
		{"Neg", Neg(a), []float64{-1, -2, -3, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got, approx); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	assert.Equal(t, []float64{1, 2, 3, 4}, a, "inputs must not be modified")
}

func TestReductions(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	assert.InDelta(t, 10.0, Sum(a), 1e-12)
	assert.InDelta(t, 2.5, Mean(a), 1e-12)
	assert.InDelta(t, 0.0, Sum(nil), 0)
}

func TestFillOnesClone(t *testing.T) {
	assert.Equal(t, []float64{1, 1, 1}, Ones(3))
	assert.Equal(t, []float64{0, 0}, Fill(2, 0))
	assert.Equal(t, []float64{-0.5, -0.5}, Fill(2, -0.5))
	assert.Empty(t, Ones(0))

	src := []float64{1, 2}
	dst := Clone(src)
	dst[0] = 9
	assert.Equal(t, 1.0, src[0])
	assert.Nil(t, Clone(nil))
}

func TestAddInPlace(t *testing.T) {
	dst := []float64{1, 1, 1}
	AddInPlace(dst, []float64{1, 2, 3})
	assert.Equal(t, []float64{2, 3, 4}, dst)
}

func TestLengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Add([]float64{1, 2}, []float64{1}) })
	assert.Panics(t, func() { AddInPlace([]float64{1}, []float64{1, 2}) })
}

func TestParallelMatchesSequential(t *testing.T) {
	old := CurrentConfig()
	defer Configure(old)

	n := 10_000
	a := make([]float64, n)
	b := make([]float64, n)
	for i := range a {
		a[i] = float64(i) * 0.5
		b[i] = float64(n-i) + 1
	}

	Configure(parallel.Config{Enabled: false})
	seq := Div(Mul(a, b), Add(a, b))

	Configure(parallel.Config{Enabled: true, NumWorkers: 7, MinChunkSize: 100})
	par := Div(Mul(a, b), Add(a, b))

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel result differs from sequential (-seq +par):\n%s", diff)
	}
}
