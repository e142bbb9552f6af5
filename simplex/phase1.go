package simplex

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// completeBasis gives every equality row a basic variable by pivoting on the
// non-basic column with the largest magnitude in that row. The pivot element
// may be negative, so right-hand sides can turn negative and are left for
// phase one to repair. Rows that reduce to 0 = 0 are dropped.
func (t *Tableau) completeBasis(s *settings) error {
	for i := 0; i < len(t.basis); {
		if t.basis[i] >= 0 {
			i++
			continue
		}
		k := i + 1
		j := t.strongestColumn(k, s.tolerance)
		if j < 0 {
			if rhs := t.dense.At(k, 0); math.Abs(rhs) > s.tolerance {
				return errors.Wrapf(ErrInfeasible, "equality row %d reduces to 0 = %g", k, rhs)
			}
			s.logger.WithField("row", k).Warn("dropping redundant equality row")
			t.dropRow(k)
			continue
		}
		s.logger.WithFields(logrus.Fields{
			"row":   k,
			"col":   j,
			"value": t.dense.At(k, j),
		}).Debug("basis completion pivot")
		t.exchange(k, j)
		i++
	}
	return nil
}

// strongestColumn returns the non-basic column with the largest magnitude in
// row k, or -1 if every such entry is within eps of zero.
func (t *Tableau) strongestColumn(k int, eps float64) int {
	basic := t.isBasic()
	row := t.dense.RawRowView(k)
	col, best := -1, eps
	for j := 1; j < len(row); j++ {
		if basic[j-1] {
			continue
		}
		if a := math.Abs(row[j]); a > best {
			col, best = j, a
		}
	}
	return col
}

// phaseOne replaces the tableau by a feasible one for the same constraints.
// It solves the auxiliary problem
//
//	minimize x0  s.t.  each row - x0 = rhs,  x >= 0, x0 >= 0
//
// starting from the single forced pivot that makes every right-hand side
// non-negative. The objective row is left zeroed for the caller to restore.
// It returns the number of pivots performed.
func (t *Tableau) phaseOne(s *settings) (int, error) {
	rows, cols := t.dense.Dims()
	x0 := cols

	aux := mat.DenseCopyOf(t.dense.Grow(0, 1))
	obj := aux.RawRowView(0)
	for j := range obj {
		obj[j] = 0
	}
	obj[x0] = 1
	for i := 1; i < rows; i++ {
		aux.Set(i, x0, -1)
	}
	t.dense = aux

	k, rhs := t.minRHS()
	s.logger.WithFields(logrus.Fields{
		"phase": phase1,
		"row":   k,
		"rhs":   rhs,
	}).Debug("auxiliary variable enters")
	t.exchange(k, x0)
	if s.trace != nil {
		s.trace(phase1, t)
	}

	pivots, err := t.iterate(s, phase1)
	pivots++
	if err != nil {
		return pivots, err
	}

	if v := -t.dense.At(0, 0); v > s.tolerance {
		return pivots, errors.Wrapf(ErrInfeasible, "auxiliary optimum %g", v)
	}

	if r := t.basicRow(x0 - 1); r > 0 {
		if j := t.evictionColumn(r, x0, s.tolerance); j > 0 {
			s.logger.WithFields(logrus.Fields{
				"phase": phase1,
				"row":   r,
				"col":   j,
			}).Debug("auxiliary variable leaves")
			t.exchange(r, j)
			pivots++
			if s.trace != nil {
				s.trace(phase1, t)
			}
		} else {
			s.logger.WithField("row", r).Warn("dropping redundant constraint row")
			t.dropRow(r)
		}
	}

	rows, _ = t.dense.Dims()
	t.dense = mat.DenseCopyOf(t.dense.Slice(0, rows, 0, x0))
	return pivots, nil
}

// basicRow returns the constraint row in which variable v is basic, or -1.
func (t *Tableau) basicRow(v int) int {
	for i, b := range t.basis {
		if b == v {
			return i + 1
		}
	}
	return -1
}

// evictionColumn returns the first original column before x0 with a nonzero
// entry in row r, or -1. The row's right-hand side is zero, so the pivot keeps
// the tableau feasible whatever the sign of the element.
func (t *Tableau) evictionColumn(r, x0 int, eps float64) int {
	row := t.dense.RawRowView(r)
	for j := 1; j < x0; j++ {
		if math.Abs(row[j]) > eps {
			return j
		}
	}
	return -1
}
