package simplex

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Tableau is a dense simplex tableau together with its basis.
//
// Row 0 is the objective row: column 0 holds the negated objective value and
// columns 1..n the reduced costs. Rows 1..m are constraint rows: column 0 holds
// the value of the row's basic variable. Variable v lives in column v+1 and
// basis[i] names the variable basic in row i+1, or -1 while an equality row
// still lacks one.
type Tableau struct {
	dense *mat.Dense
	basis []int
}

// Dims returns the number of rows and columns of the tableau, including the
// objective row and the right-hand side column.
func (t *Tableau) Dims() (rows, cols int) {
	return t.dense.Dims()
}

func (t *Tableau) At(i, j int) float64 {
	return t.dense.At(i, j)
}

// Value returns the entry in the objective row's right-hand side column.
func (t *Tableau) Value() float64 {
	return t.dense.At(0, 0)
}

// Basis returns a copy of the basic variable indices, one per constraint row.
func (t *Tableau) Basis() []int {
	return append([]int(nil), t.basis...)
}

// Dense returns a copy of the tableau matrix.
func (t *Tableau) Dense() *mat.Dense {
	return mat.DenseCopyOf(t.dense)
}

// Solution returns the basic solution: every variable is zero except the
// basic ones, which take their row's right-hand side.
func (t *Tableau) Solution() []float64 {
	_, cols := t.dense.Dims()
	x := make([]float64, cols-1)
	for i, v := range t.basis {
		if v >= 0 {
			x[v] = t.dense.At(i+1, 0)
		}
	}
	return x
}

func (t *Tableau) String() string {
	return fmt.Sprintf("basis = %v\n%v", t.basis,
		mat.Formatted(t.dense, mat.Prefix(""), mat.Squeeze()))
}

// exchange pivots on (k, j) and records variable j-1 as basic in row k.
func (t *Tableau) exchange(k, j int) {
	Pivot(t.dense, k, j)
	t.basis[k-1] = j - 1
}

// isBasic reports, per variable, whether it is currently basic.
func (t *Tableau) isBasic() []bool {
	_, cols := t.dense.Dims()
	basic := make([]bool, cols-1)
	for _, v := range t.basis {
		if v >= 0 {
			basic[v] = true
		}
	}
	return basic
}

// dropRow removes constraint row k together with its basis entry.
func (t *Tableau) dropRow(k int) {
	rows, cols := t.dense.Dims()
	d := mat.NewDense(rows-1, cols, nil)
	for i, r := 0, 0; i < rows; i++ {
		if i == k {
			continue
		}
		d.SetRow(r, t.dense.RawRowView(i))
		r++
	}
	t.dense = d
	t.basis = append(t.basis[:k-1], t.basis[k:]...)
}

// minRHS returns the constraint row with the smallest right-hand side. Ties go
// to the first row.
func (t *Tableau) minRHS() (row int, value float64) {
	rows, _ := t.dense.Dims()
	row = 1
	value = t.dense.At(1, 0)
	for i := 2; i < rows; i++ {
		if v := t.dense.At(i, 0); v < value {
			row, value = i, v
		}
	}
	return row, value
}
