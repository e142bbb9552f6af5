package model

import (
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

type document struct {
	Sense       string    `json:"sense"`
	Objective   []float64 `json:"objective"`
	Constraints []row     `json:"constraints"`
	Equalities  []row     `json:"equalities,omitempty"`
}

type row struct {
	Coeffs []float64 `json:"coeffs"`
	RHS    float64   `json:"rhs"`
}

// Decode parses a YAML or JSON problem description:
//
//	sense: minimize
//	objective: [-2, -3, 5]
//	constraints:
//	  - {coeffs: [-2, 5, -1], rhs: -10}
//	  - {coeffs: [1, 3, 1], rhs: 12}
//	equalities:
//	  - {coeffs: [1, 1, 1], rhs: 7}
func Decode(data []byte) (*Problem, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "model: decode problem")
	}

	sense, err := ParseSense(doc.Sense)
	if err != nil {
		return nil, err
	}

	p := NewProblem(0, len(doc.Objective))
	p.Sense = sense
	if err := p.SetC(doc.Objective); err != nil {
		return nil, err
	}
	for i, r := range doc.Constraints {
		if err := p.AddRow(r.Coeffs, r.RHS); err != nil {
			return nil, errors.Wrapf(err, "constraint %d", i)
		}
	}
	for i, r := range doc.Equalities {
		if err := p.AddEquality(r.Coeffs, r.RHS); err != nil {
			return nil, errors.Wrapf(err, "equality %d", i)
		}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads and decodes the problem file at path.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "model: read %s", path)
	}
	return Decode(data)
}
