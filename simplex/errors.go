package simplex

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnbounded      = errors.New("simplex: problem is unbounded")
	ErrInfeasible     = errors.New("simplex: problem is infeasible")
	ErrIterationLimit = errors.New("simplex: iteration limit reached")
	ErrShape          = errors.New("simplex: size mismatch")
)

// Status is the outcome of a solve.
type Status int

const (
	Optimal Status = iota
	Unbounded
	Infeasible
	IterationLimit
	Failed
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	case IterationLimit:
		return "iteration limit"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// StatusOf classifies an error returned by Solve.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Optimal
	case errors.Is(err, ErrUnbounded):
		return Unbounded
	case errors.Is(err, ErrInfeasible):
		return Infeasible
	case errors.Is(err, ErrIterationLimit):
		return IterationLimit
	}
	return Failed
}
