package simplex

import (
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	phase1 = "phase1"
	phase2 = "phase2"
)

// iterate runs simplex pivots on a feasible tableau until no reduced cost is
// negative. It returns the number of pivots performed.
func (t *Tableau) iterate(s *settings, phase string) (int, error) {
	log := s.logger.WithField("phase", phase)
	pivots := 0
	for {
		//optimality condition
		j := t.entering(s.tolerance)
		if j < 0 {
			log.WithField("pivots", pivots).Debug("optimal")
			return pivots, nil
		}

		if pivots >= s.maxIterations {
			return pivots, errors.Wrapf(ErrIterationLimit, "%s: %d pivots", phase, pivots)
		}

		//minimal ratio test
		k, ratio, ties := t.leaving(j, s)
		if k < 0 {
			return pivots, errors.Wrapf(ErrUnbounded, "%s: column %d has no positive entry", phase, j)
		}

		entry := log.WithFields(logrus.Fields{
			"row":   k,
			"col":   j,
			"value": t.dense.At(k, j),
		})
		if math.Abs(ratio) <= s.tolerance {
			entry.Warn("degenerate pivot")
		}
		if ties > 0 {
			entry.WithField("ties", ties).Warn("minimum ratio tie")
		}
		entry.WithField("leaving", t.basis[k-1]).Debug("pivot")

		t.exchange(k, j)
		pivots++
		if s.trace != nil {
			s.trace(phase, t)
		}
	}
}

// entering returns the first column whose reduced cost is below -eps, or -1
// when the tableau is optimal.
func (t *Tableau) entering(eps float64) int {
	obj := t.dense.RawRowView(0)
	for j := 1; j < len(obj); j++ {
		if obj[j] < -eps {
			return j
		}
	}
	return -1
}

// leaving performs the minimum ratio test on column j. Rows whose entry is
// not positive are excluded. It returns -1 when every row is excluded, along
// with the winning ratio and how many other rows tied with it.
func (t *Tableau) leaving(j int, s *settings) (row int, best float64, ties int) {
	rows, _ := t.dense.Dims()
	row, best = -1, math.Inf(1)
	for i := 1; i < rows; i++ {
		a := t.dense.At(i, j)
		if a <= s.tolerance {
			continue
		}
		ratio := t.dense.At(i, 0) / a
		if row < 0 {
			row, best = i, ratio
			continue
		}
		if math.Abs(ratio-best) <= s.tolerance {
			ties++
			if s.rule == Bland && t.basis[i-1] < t.basis[row-1] {
				row, best = i, ratio
			}
			continue
		}
		if ratio < best {
			row, best, ties = i, ratio, 0
		}
	}
	return row, best, ties
}
