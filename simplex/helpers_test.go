package simplex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

const tol = 1e-9

func withTrace(fn func(phase string, t *Tableau)) Option {
	return func(s *settings) {
		s.trace = fn
	}
}

// requireCanonical checks that every basic column is a unit column with its
// one in the row the basis assigns it to.
func requireCanonical(t *testing.T, tab *Tableau) {
	t.Helper()
	rows, _ := tab.Dims()
	for i, v := range tab.basis {
		require.GreaterOrEqual(t, v, 0, "row %d has no basic variable", i+1)
		for r := 0; r < rows; r++ {
			want := 0.0
			if r == i+1 {
				want = 1
			}
			require.InDelta(t, want, tab.At(r, v+1), tol, "basic variable %d, row %d", v, r)
		}
	}
}

func problem(t *testing.T, sense model.Sense, a [][]float64, b, c []float64) *model.Problem {
	t.Helper()
	p := model.NewProblem(0, len(c))
	p.Sense = sense
	require.NoError(t, p.SetC(c))
	for i, row := range a {
		require.NoError(t, p.AddRow(row, b[i]))
	}
	return p
}

func requireDense(t *testing.T, want [][]float64, got *mat.Dense) {
	t.Helper()
	r, c := got.Dims()
	require.Equal(t, len(want), r, "rows")
	for i := range want {
		require.Equal(t, len(want[i]), c, "cols")
		for j := range want[i] {
			require.InDelta(t, want[i][j], got.At(i, j), tol, "entry (%d, %d)", i, j)
		}
	}
}

func requireSlice(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], tol, "component %d: got %v", i, got)
	}
}

func tableauOf(rows [][]float64, basis []int) *Tableau {
	data := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		data = append(data, r...)
	}
	return &Tableau{
		dense: mat.NewDense(len(rows), len(rows[0]), data),
		basis: basis,
	}
}
