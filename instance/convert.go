package instance

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"q.log/tableau/model"
)

// ErrFreeVariable is returned for columns whose lower bound is negative or
// missing; the solver only handles x >= 0.
var ErrFreeVariable = errors.New("instance: variable without a non-negative lower bound")

type interval struct {
	lo, hi float64
}

type constraint struct {
	coeffs []float64
	interval
}

// table is the raw content of an mps file.
type table struct {
	obj  []float64
	rows []constraint
	cols []interval
}

// problem converts the table to a problem. A row lo <= a·x <= hi becomes
//
//	 a·x <= hi   for a finite upper bound
//	-a·x <= -lo  for a finite lower bound
//	 a·x  = lo   when lo == hi
//
// Column bounds become rows the same way, except that x >= 0 needs none.
func (t *table) problem(sense model.Sense, log logrus.FieldLogger) (*model.Problem, error) {
	k := len(t.obj)
	p := model.NewProblem(0, k)
	p.Sense = sense
	if err := p.SetC(t.obj); err != nil {
		return nil, err
	}

	add := func(coeffs []float64, in interval) error {
		if !math.IsInf(in.hi, 1) {
			if err := p.AddRow(coeffs, in.hi); err != nil {
				return err
			}
		}
		if !math.IsInf(in.lo, -1) {
			neg := make([]float64, len(coeffs))
			for i, v := range coeffs {
				neg[i] = -v
			}
			if err := p.AddRow(neg, -in.lo); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range t.rows {
		switch {
		case r.lo == r.hi:
			if err := p.AddEquality(r.coeffs, r.lo); err != nil {
				return nil, errors.Wrapf(err, "row %d", i+1)
			}
		case math.IsInf(r.lo, -1) && math.IsInf(r.hi, 1):
			log.WithField("row", i+1).Debug("skipping free row")
		default:
			if err := add(r.coeffs, r.interval); err != nil {
				return nil, errors.Wrapf(err, "row %d", i+1)
			}
		}
	}

	for j, c := range t.cols {
		if c.lo < 0 {
			return nil, errors.Wrapf(ErrFreeVariable, "column %d has lower bound %g", j+1, c.lo)
		}
		unit := make([]float64, k)
		unit[j] = 1
		in := c
		if in.lo == 0 {
			in.lo = math.Inf(-1)
		}
		if err := add(unit, in); err != nil {
			return nil, errors.Wrapf(err, "column %d", j+1)
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
