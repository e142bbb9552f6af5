package simplex

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/model"
)

// Pivots counts the pivots performed by each phase. Phase one includes the
// forced pivot on the auxiliary variable and its eviction, if any.
type Pivots struct {
	PhaseOne int
	PhaseTwo int
}

// Result is an optimal solution.
type Result struct {
	Status Status

	// Initial is the feasible tableau handed to phase two.
	Initial *mat.Dense

	// Final is the optimal tableau.
	Final *mat.Dense

	// Basis names the basic variable of each constraint row of Final.
	Basis []int

	// X holds the structural variables followed by the slack variables.
	X []float64

	// Objective is c·x at the optimum.
	Objective float64

	// PhaseOne reports whether the initial basic solution was infeasible.
	PhaseOne bool

	Pivots Pivots

	NumStructural int
}

// Structural returns the values of the original variables.
func (r *Result) Structural() []float64 {
	return r.X[:r.NumStructural]
}

// Build converts p to slack form and assembles its initial tableau. Equality
// rows come first and start without a basic variable. The objective row
// holds -c when maximizing and c when minimizing, so the iterations always
// drive its reduced costs non-negative.
func Build(p *model.Problem) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	aug := Slack(p.A)
	eq := len(p.Equalities)
	b := make([]float64, 0, eq+p.NumRows)
	if eq > 0 {
		rows := mat.NewDense(eq, p.NumCols+p.NumRows, nil)
		for i := 0; i < eq; i++ {
			rows.SetRow(i, p.EqualityRow(i))
			b = append(b, p.Equalities[i].RHS)
		}
		var stacked mat.Dense
		stacked.Stack(rows, aug)
		aug = &stacked
	}
	b = append(b, p.B.RawVector().Data...)

	c := make([]float64, p.NumCols)
	copy(c, p.C.RawVector().Data)
	if p.Sense == model.Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}
	return Assemble(aug, b, c, eq)
}

// Solve solves p with the two-phase tableau simplex method. On failure it
// returns no result and an error wrapping ErrUnbounded, ErrInfeasible or
// ErrIterationLimit; StatusOf classifies it.
func Solve(p *model.Problem, opts ...Option) (*Result, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	t, err := Build(p)
	if err != nil {
		return nil, err
	}
	rows, cols := t.Dims()
	s.logger.WithFields(logrus.Fields{
		"rows":   rows,
		"cols":   cols,
		"sense":  p.Sense,
		"rule":   s.rule,
		"equals": len(p.Equalities),
	}).Debug("solving")

	if err := t.completeBasis(s); err != nil {
		return nil, err
	}

	res := &Result{NumStructural: p.NumCols}
	if rows, _ := t.Dims(); rows > 1 {
		if _, rhs := t.minRHS(); rhs < 0 {
			z := append([]float64(nil), t.dense.RawRowView(0)...)
			res.PhaseOne = true
			n, err := t.phaseOne(s)
			res.Pivots.PhaseOne = n
			if err != nil {
				return nil, err
			}
			t.restore(z)
		}
	}
	res.Initial = t.Dense()

	n, err := t.iterate(s, phase2)
	res.Pivots.PhaseTwo = n
	if err != nil {
		return nil, err
	}

	res.Status = Optimal
	res.Final = t.Dense()
	res.Basis = t.Basis()
	res.X = t.Solution()
	res.Objective = -t.Value()
	if p.Sense == model.Maximize {
		res.Objective = t.Value()
	}
	s.logger.WithFields(logrus.Fields{
		"objective": res.Objective,
		"phase1":    res.Pivots.PhaseOne,
		"phase2":    res.Pivots.PhaseTwo,
	}).Debug("optimal")
	return res, nil
}
