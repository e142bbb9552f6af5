package simplex

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultTolerance is the magnitude below which reduced costs, pivot
	// candidates and the auxiliary optimum are treated as zero.
	DefaultTolerance = 1e-9

	// DefaultMaxIterations caps the pivots performed by each phase.
	DefaultMaxIterations = 10000
)

// Rule selects how ties are broken when choosing pivots.
type Rule int

const (
	// FirstIndex enters the first column with a negative reduced cost and
	// leaves the first row attaining the minimum ratio. It can cycle on
	// degenerate problems.
	FirstIndex Rule = iota

	// Bland enters the first column with a negative reduced cost and breaks
	// minimum-ratio ties by the smallest basic variable index, which rules
	// out cycling.
	Bland
)

func (r Rule) String() string {
	switch r {
	case FirstIndex:
		return "first"
	case Bland:
		return "bland"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule parses the names returned by Rule.String.
func ParseRule(s string) (Rule, error) {
	switch s {
	case "", "first":
		return FirstIndex, nil
	case "bland":
		return Bland, nil
	}
	return 0, errors.Errorf("simplex: unknown pivot rule %q", s)
}

// Option configures Solve.
type Option func(*settings)

type settings struct {
	tolerance     float64
	maxIterations int
	rule          Rule
	logger        logrus.FieldLogger

	// trace, when set, is called after every pivot of either phase.
	trace func(phase string, t *Tableau)
}

func defaultSettings() *settings {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return &settings{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
		rule:          FirstIndex,
		logger:        discard,
	}
}

// WithTolerance sets the zero tolerance. Non-positive values are ignored.
func WithTolerance(eps float64) Option {
	return func(s *settings) {
		if eps > 0 {
			s.tolerance = eps
		}
	}
}

// WithMaxIterations caps the number of pivots per phase. Non-positive values
// are ignored.
func WithMaxIterations(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithRule selects the pivot rule.
func WithRule(r Rule) Option {
	return func(s *settings) {
		s.rule = r
	}
}

// WithLogger routes pivot traces and degeneracy warnings to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
