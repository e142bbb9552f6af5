package model

import (
	"fmt"
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrShape    = errors.New("model: dimension mismatch")
	ErrNotFound = errors.New("model: row does not exist")
	ErrNaN      = errors.New("model: non-finite coefficient")
)

// Sense is the optimization direction of the objective.
type Sense int

const (
	Maximize Sense = iota
	Minimize
)

func (s Sense) String() string {
	switch s {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	}
	return fmt.Sprintf("Sense(%d)", int(s))
}

// ParseSense accepts "max", "maximize", "min" or "minimize". The empty string
// maps to Maximize.
func ParseSense(s string) (Sense, error) {
	switch s {
	case "", "max", "maximize":
		return Maximize, nil
	case "min", "minimize":
		return Minimize, nil
	}
	return 0, errors.Errorf("model: unknown sense %q", s)
}

// Equality is a hard constraint Coeffs·x = RHS. Coeffs spans either the
// structural variables only or the structural and slack variables.
type Equality struct {
	Coeffs []float64
	RHS    float64
}

// Problem is a linear program
//
//	maximize (or minimize) c·x
//	s.t.  A x <= b
//	      e_i·x = f_i  for every equality row
//	      x >= 0
type Problem struct {
	Sense Sense

	//C objective function coefficients
	C *mat.VecDense

	//A constraints matrix
	A *mat.Dense

	//B constraints rhs
	B *mat.VecDense

	Equalities []Equality

	NumRows int
	NumCols int
}

func NewProblem(numRows, numCols int) *Problem {
	p := &Problem{
		NumRows: numRows,
		NumCols: numCols,
	}
	if numCols > 0 {
		p.C = mat.NewVecDense(numCols, nil)
	}
	if numRows > 0 && numCols > 0 {
		p.A = mat.NewDense(numRows, numCols, nil)
		p.B = mat.NewVecDense(numRows, nil)
	}
	return p
}

func (p *Problem) SetC(cVec []float64) error {
	if p.NumCols == 0 || len(cVec) != p.NumCols {
		return errors.Wrapf(ErrShape, "objective has %d coefficients, want %d", len(cVec), p.NumCols)
	}

	p.C = mat.NewVecDense(p.NumCols, append([]float64(nil), cVec...))

	return nil
}

func (p *Problem) SetA(aVec []float64) error {
	if p.NumRows == 0 || p.NumCols == 0 || len(aVec) != p.NumCols*p.NumRows {
		return errors.Wrapf(ErrShape, "constraint matrix has %d entries, want %dx%d", len(aVec), p.NumRows, p.NumCols)
	}

	p.A = mat.NewDense(p.NumRows, p.NumCols, append([]float64(nil), aVec...))

	return nil
}

func (p *Problem) SetB(bVec []float64) error {
	if p.NumRows == 0 || len(bVec) != p.NumRows {
		return errors.Wrapf(ErrShape, "rhs has %d entries, want %d", len(bVec), p.NumRows)
	}

	p.B = mat.NewVecDense(p.NumRows, append([]float64(nil), bVec...))

	return nil
}

// AddRow appends the constraint rVec·x <= rhs.
func (p *Problem) AddRow(rVec []float64, rhs float64) error {
	if len(rVec) != p.NumCols || p.NumCols == 0 {
		return errors.Wrapf(ErrShape, "row has %d coefficients, want %d", len(rVec), p.NumCols)
	}

	if p.NumRows == 0 {
		p.A = mat.NewDense(1, p.NumCols, append([]float64(nil), rVec...))
		p.B = mat.NewVecDense(1, []float64{rhs})
		p.NumRows = 1
		return nil
	}

	p.A = mat.DenseCopyOf(p.A.Grow(1, 0))
	p.A.SetRow(p.NumRows, rVec)

	b := make([]float64, p.NumRows+1)
	copy(b, p.B.RawVector().Data)
	b[p.NumRows] = rhs
	p.B = mat.NewVecDense(len(b), b)

	p.NumRows++
	return nil
}

// AddEquality appends the constraint coeffs·x = rhs.
func (p *Problem) AddEquality(coeffs []float64, rhs float64) error {
	if len(coeffs) == 0 {
		return errors.Wrap(ErrShape, "empty equality row")
	}
	p.Equalities = append(p.Equalities, Equality{
		Coeffs: append([]float64(nil), coeffs...),
		RHS:    rhs,
	})
	return nil
}

// MultiplyConstraint scales row and its right-hand side by mul.
func (p *Problem) MultiplyConstraint(row int, mul float64) error {
	if row < 0 || row >= p.NumRows {
		return errors.Wrapf(ErrNotFound, "row %d", row)
	}

	for col := 0; col < p.NumCols; col++ {
		p.A.Set(row, col, p.A.At(row, col)*mul)
	}
	p.B.SetVec(row, p.B.AtVec(row)*mul)
	return nil
}

// Validate reports whether the problem can be handed to the solver.
func (p *Problem) Validate() error {
	if p.NumRows < 1 || p.NumCols < 1 {
		return errors.Wrapf(ErrShape, "need at least one constraint and one variable, have %dx%d", p.NumRows, p.NumCols)
	}
	if p.A == nil || p.B == nil || p.C == nil {
		return errors.Wrap(ErrShape, "problem data not set")
	}
	if r, c := p.A.Dims(); r != p.NumRows || c != p.NumCols {
		return errors.Wrapf(ErrShape, "A is %dx%d, want %dx%d", r, c, p.NumRows, p.NumCols)
	}
	if p.B.Len() != p.NumRows {
		return errors.Wrapf(ErrShape, "b has %d entries, want %d", p.B.Len(), p.NumRows)
	}
	if p.C.Len() != p.NumCols {
		return errors.Wrapf(ErrShape, "c has %d entries, want %d", p.C.Len(), p.NumCols)
	}
	if !finite(p.A.RawMatrix().Data) || !finite(p.B.RawVector().Data) || !finite(p.C.RawVector().Data) {
		return ErrNaN
	}
	for i, e := range p.Equalities {
		if n := len(e.Coeffs); n != p.NumCols && n != p.NumCols+p.NumRows {
			return errors.Wrapf(ErrShape, "equality %d has %d coefficients, want %d or %d",
				i, n, p.NumCols, p.NumCols+p.NumRows)
		}
		if !finite(e.Coeffs) || !finite([]float64{e.RHS}) {
			return errors.Wrapf(ErrNaN, "equality %d", i)
		}
	}
	return nil
}

// EqualityRow returns equality i over the structural and slack variables.
func (p *Problem) EqualityRow(i int) []float64 {
	row := make([]float64, p.NumCols+p.NumRows)
	copy(row, p.Equalities[i].Coeffs)
	return row
}

// Objective evaluates c·x over the structural prefix of x.
func (p *Problem) Objective(x []float64) float64 {
	return floats.Dot(p.C.RawVector().Data, x[:p.NumCols])
}

// Residual returns the largest constraint violation of x. x holds either the
// structural variables or the structural variables followed by the slacks.
func (p *Problem) Residual(x []float64) float64 {
	full := make([]float64, p.NumCols+p.NumRows)
	copy(full, x)
	if len(x) < len(full) {
		for i := 0; i < p.NumRows; i++ {
			full[p.NumCols+i] = p.B.AtVec(i) - floats.Dot(p.A.RawRowView(i), full[:p.NumCols])
		}
	}

	worst := 0.0
	for _, v := range full {
		worst = math.Max(worst, -v)
	}
	for i := 0; i < p.NumRows; i++ {
		lhs := floats.Dot(p.A.RawRowView(i), full[:p.NumCols]) + full[p.NumCols+i]
		worst = math.Max(worst, math.Abs(lhs-p.B.AtVec(i)))
	}
	for i, e := range p.Equalities {
		lhs := floats.Dot(p.EqualityRow(i), full)
		worst = math.Max(worst, math.Abs(lhs-e.RHS))
	}
	return worst
}

// Fprint writes c, A and b in gonum's matrix format.
func (p *Problem) Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", p.Sense)
	fmt.Fprintf(w, "c = %v\n", mat.Formatted(p.C.T(), mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "A = %v\n", mat.Formatted(p.A, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "b = %v\n", mat.Formatted(p.B.T(), mat.Prefix("    "), mat.Squeeze()))
	for i, e := range p.Equalities {
		fmt.Fprintf(w, "e%d = %v = %v\n", i, e.Coeffs, e.RHS)
	}
}

func finite(s []float64) bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
