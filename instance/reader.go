package instance

import (
	"math"
	"runtime"

	"github.com/lukpank/go-glpk/glpk"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"q.log/tableau/model"
)

// Reader reads a free-format mps file to construct a problem
type Reader struct {
	filename string
	log      logrus.FieldLogger
}

func NewReader(filename string) *Reader {
	return &Reader{
		filename: filename,
		log:      logrus.StandardLogger(),
	}
}

// WithLogger routes the reader's diagnostics to l.
func (r *Reader) WithLogger(l logrus.FieldLogger) *Reader {
	r.log = l
	return r
}

// Read loads the file through GLPK and returns it as a problem with the given
// sense. The objective sense recorded in the file is ignored.
func (r *Reader) Read(sense model.Sense) (*model.Problem, error) {
	tab, err := r.load()
	if err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{
		"file": r.filename,
		"rows": len(tab.rows),
		"cols": len(tab.cols),
	}).Debug("read mps")

	p, err := tab.problem(sense, r.log)
	if err != nil {
		return nil, errors.Wrap(err, r.filename)
	}
	return p, nil
}

func (r *Reader) load() (*table, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	lp := glpk.New()
	defer lp.Delete()
	if err := lp.ReadMPS(glpk.MPS_FILE, nil, r.filename); err != nil {
		return nil, errors.Wrapf(err, "instance: read %s", r.filename)
	}

	numCols := lp.NumCols()
	tab := &table{}

	//objective function
	for c := 1; c <= numCols; c++ {
		tab.obj = append(tab.obj, lp.ObjCoef(c))
		tab.cols = append(tab.cols, interval{lo: bound(lp.ColLB(c)), hi: bound(lp.ColUB(c))})
	}

	//constraints; glpk indexes from 1 and leaves element 0 unused
	for row := 1; row <= lp.NumRows(); row++ {
		coeffs := make([]float64, numCols)
		idxs, vals := lp.MatRow(row)
		for i, v := range idxs {
			if v == 0 {
				continue
			}
			coeffs[v-1] = vals[i]
		}
		tab.rows = append(tab.rows, constraint{
			coeffs:   coeffs,
			interval: interval{lo: bound(lp.RowLB(row)), hi: bound(lp.RowUB(row))},
		})
	}
	return tab, nil
}

// bound maps GLPK's ±DBL_MAX to infinities.
func bound(v float64) float64 {
	switch v {
	case math.MaxFloat64:
		return math.Inf(1)
	case -math.MaxFloat64:
		return math.Inf(-1)
	}
	return v
}
