package simplex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// maximize 3x1 + 2x2 s.t. x1 + x2 <= 4, 2x1 + x2 <= 6
func smallTableau() *Tableau {
	return tableauOf([][]float64{
		{0, -3, -2, 0, 0},
		{4, 1, 1, 1, 0},
		{6, 2, 1, 0, 1},
	}, []int{2, 3})
}

func TestPivotNormalizesAndEliminates(t *testing.T) {
	tab := smallTableau()
	Pivot(tab.dense, 2, 1)

	requireDense(t, [][]float64{
		{9, 0, -0.5, 0, 1.5},
		{1, 0, 0.5, 1, -0.5},
		{3, 1, 0.5, 0, 0.5},
	}, tab.dense)
	require.Equal(t, []int{2, 3}, tab.basis, "Pivot must not touch the basis")
}

func TestPivotRoundTrip(t *testing.T) {
	tab := smallTableau()
	orig := tab.Dense()

	tab.exchange(2, 1)
	require.Equal(t, []int{2, 0}, tab.basis)
	requireCanonical(t, tab)

	// s2 re-enters on the row it left.
	tab.exchange(2, 4)
	require.Equal(t, []int{2, 3}, tab.basis)
	requireCanonical(t, tab)

	r, c := orig.Dims()
	want := make([][]float64, r)
	for i := range want {
		want[i] = make([]float64, c)
		for j := range want[i] {
			want[i][j] = orig.At(i, j)
		}
	}
	requireDense(t, want, tab.dense)
}

func TestPivotNegativeElement(t *testing.T) {
	// -x1 = -3 without a basic variable yet.
	tab := tableauOf([][]float64{
		{0, 1, 0},
		{-3, -1, 1},
	}, []int{-1})
	tab.exchange(1, 1)

	requireDense(t, [][]float64{
		{-3, 0, 1},
		{3, 1, -1},
	}, tab.dense)
	requireCanonical(t, tab)
}
