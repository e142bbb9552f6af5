package simplex

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Slack returns the slack form [A | I] of a, appending one slack variable per
// constraint row.
func Slack(a mat.Matrix) *mat.Dense {
	m, k := a.Dims()
	aug := mat.NewDense(m, k+m, nil)
	aug.Slice(0, m, 0, k).(*mat.Dense).Copy(a)
	for i := 0; i < m; i++ {
		aug.Set(i, k+i, 1)
	}
	return aug
}

// Assemble builds the tableau
//
//	[ 0 | c 0 ... 0 ]
//	[ b |    aug    ]
//
// The first eq rows of aug are equality rows without a slack variable and
// start without a basic variable. Each remaining row i owns slack variable
// len(c)+i-eq, which starts basic.
func Assemble(aug mat.Matrix, b, c []float64, eq int) (*Tableau, error) {
	m, n := aug.Dims()
	k := len(c)
	switch {
	case len(b) != m:
		return nil, errors.Wrapf(ErrShape, "rhs has %d entries for %d rows", len(b), m)
	case eq < 0 || eq > m:
		return nil, errors.Wrapf(ErrShape, "%d equality rows for %d rows", eq, m)
	case n != k+m-eq:
		return nil, errors.Wrapf(ErrShape, "%d columns, want %d structural and %d slack", n, k, m-eq)
	}

	d := mat.NewDense(m+1, n+1, nil)
	obj := d.RawRowView(0)
	copy(obj[1:], c)
	d.Slice(1, m+1, 1, n+1).(*mat.Dense).Copy(aug)
	d.SetCol(0, append([]float64{0}, b...))

	basis := make([]int, m)
	for i := range basis {
		basis[i] = -1
		if i >= eq {
			basis[i] = k + i - eq
		}
	}
	return &Tableau{dense: d, basis: basis}, nil
}
