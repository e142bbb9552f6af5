package main

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"q.log/tableau/simplex"
)

func printResult(w io.Writer, res *simplex.Result) error {
	x := res.Structural()
	rounded := make([]float64, len(x))
	for i, v := range x {
		rounded[i] = round(v)
	}

	_, err := fmt.Fprintf(w, `Tableau before phase two:
%v

Final tableau:
%v

Basis: %v
Pivots: %d in phase one, %d in phase two
Solution: %v
Optimal value: %v
`,
		mat.Formatted(res.Initial, mat.Squeeze()),
		mat.Formatted(res.Final, mat.Squeeze()),
		res.Basis,
		res.Pivots.PhaseOne, res.Pivots.PhaseTwo,
		rounded,
		round(res.Objective),
	)
	return err
}

// round rounds to four decimal places and folds -0 into 0.
func round(v float64) float64 {
	r := scalar.Round(v, 4)
	if r == 0 {
		return 0
	}
	return r
}
