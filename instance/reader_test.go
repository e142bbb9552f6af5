package instance

import (
	"io"
	"math"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

var inf = math.Inf(1)

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestProblemConvertsRows(t *testing.T) {
	tab := &table{
		obj: []float64{1, 2},
		rows: []constraint{
			{coeffs: []float64{1, 1}, interval: interval{lo: -inf, hi: 4}},
			{coeffs: []float64{1, 0}, interval: interval{lo: 1, hi: inf}},
			{coeffs: []float64{0, 1}, interval: interval{lo: 1, hi: 3}},
			{coeffs: []float64{1, -1}, interval: interval{lo: 0, hi: 0}},
			{coeffs: []float64{5, 5}, interval: interval{lo: -inf, hi: inf}},
		},
		cols: []interval{{lo: 0, hi: 10}, {lo: 2, hi: inf}},
	}

	p, err := tab.problem(model.Minimize, quiet())
	require.NoError(t, err)

	assert.Equal(t, model.Minimize, p.Sense)
	want := [][]float64{
		{1, 1}, {-1, 0}, {0, 1}, {0, -1},
		{1, 0}, {0, -1},
	}
	require.Equal(t, len(want), p.NumRows)
	for i, row := range want {
		assert.Equal(t, row, p.A.RawRowView(i), "row %d", i)
	}
	assert.Equal(t, []float64{4, -1, 3, -1, 10, -2}, p.B.RawVector().Data)
	require.Len(t, p.Equalities, 1)
	assert.Equal(t, model.Equality{Coeffs: []float64{1, -1}, RHS: 0}, p.Equalities[0])
}

func TestProblemRejectsFreeVariables(t *testing.T) {
	for _, lo := range []float64{-1, math.Inf(-1)} {
		tab := &table{
			obj:  []float64{1},
			rows: []constraint{{coeffs: []float64{1}, interval: interval{lo: -inf, hi: 1}}},
			cols: []interval{{lo: lo, hi: inf}},
		}
		_, err := tab.problem(model.Maximize, quiet())
		assert.True(t, errors.Is(err, ErrFreeVariable), "lower bound %g: %v", lo, err)
	}
}

func TestBound(t *testing.T) {
	assert.True(t, math.IsInf(bound(math.MaxFloat64), 1))
	assert.True(t, math.IsInf(bound(-math.MaxFloat64), -1))
	assert.Equal(t, 3.0, bound(3))
}

func TestReadMPS(t *testing.T) {
	p, err := NewReader(filepath.Join("testdata", "small.mps")).WithLogger(quiet()).Read(model.Maximize)
	require.NoError(t, err)

	assert.Equal(t, 2, p.NumCols)
	assert.Equal(t, []float64{1, 1}, p.C.RawVector().Data)
	// LIM1, LIM2 negated, and the bound on Y.
	assert.Equal(t, 3, p.NumRows)
	assert.Equal(t, []float64{-1, 0}, p.A.RawRowView(1))
	assert.Equal(t, []float64{4, -1, 3}, p.B.RawVector().Data)
	require.Len(t, p.Equalities, 1)

	res, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.InDelta(t, 4, res.Objective, 1e-9)
	assert.InDelta(t, 2, res.X[0], 1e-9)
	assert.InDelta(t, 2, res.X[1], 1e-9)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join("testdata", "missing.mps")).WithLogger(quiet()).Read(model.Maximize)
	assert.Error(t, err)
}
