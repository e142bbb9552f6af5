package simplex

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Pivot performs one Gauss-Jordan step on t around the element (k, j): row k
// is divided by t[k][j] and column j is eliminated from every other row,
// the objective row included.
//
// The pivot element must be nonzero; Pivot does not check it.
func Pivot(t *mat.Dense, k, j int) {
	pr := t.RawRowView(k)
	floats.Scale(1/pr[j], pr)
	pr[j] = 1

	rows, _ := t.Dims()
	for i := 0; i < rows; i++ {
		if i == k {
			continue
		}
		r := t.RawRowView(i)
		if f := r[j]; f != 0 {
			floats.AddScaled(r, -f, pr)
			r[j] = 0
		}
	}
}
