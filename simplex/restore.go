package simplex

import (
	"gonum.org/v1/gonum/floats"
)

// restore installs z as the objective row and substitutes every basic
// variable out of it, so the row again holds reduced costs for the current
// basis. z must have one entry per tableau column.
func (t *Tableau) restore(z []float64) {
	obj := t.dense.RawRowView(0)
	copy(obj, z)
	for i, v := range t.basis {
		if f := obj[v+1]; f != 0 {
			floats.AddScaled(obj, -f, t.dense.RawRowView(i+1))
			obj[v+1] = 0
		}
	}
}
