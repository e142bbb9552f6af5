// Package simplex solves dense linear programs with the two-phase tableau
// simplex method.
//
// A problem
//
//	maximize c·x  s.t.  A x <= b,  x >= 0
//
// is put in slack form [A | I] and assembled into a tableau whose first row
// holds the objective and whose first column holds the right-hand sides.
// Optional equality rows are placed on top of the constraint rows.
//
// When the starting basic solution is infeasible (a negative right-hand side)
// phase one adds a single auxiliary variable x0 with coefficient -1 in every
// row, pivots it in on the most negative row and minimizes it. A positive
// optimum means the constraints have no solution. Otherwise x0 is driven out
// of the basis, the original objective is restored and phase two runs the
// usual entering / minimum-ratio iterations until no reduced cost is negative.
//
// The default pivot rule takes the first negative reduced cost and the first
// row attaining the minimum ratio. It is deterministic but may cycle on
// degenerate problems; WithRule(Bland) breaks ratio ties by the smallest basic
// variable index instead.
package simplex
