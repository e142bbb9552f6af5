package main

import (
	"github.com/spf13/cobra"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

func newExampleCommand() *cobra.Command {
	var maximize bool

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Solve a built-in problem that needs basis completion and an equality row",
		Long: `Solve

    minimize  -2x1 - 3x2 + 5x3
    s.t.      -2x1 + 5x2 - x3 <= -10
                x1 + 3x2 + x3 <= 12
                x1 +  x2 + x3  = 7
              x >= 0

and print the tableaus and the solution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, err := setup(cmd)
			if err != nil {
				return err
			}

			p, err := exampleProblem()
			if err != nil {
				return err
			}
			if maximize {
				p.Sense = model.Maximize
			}
			p.Fprint(cmd.OutOrStdout())

			res, err := simplex.Solve(p, s.Options(log)...)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&maximize, "maximize", false, "Maximize the objective instead")
	return cmd
}

func exampleProblem() (*model.Problem, error) {
	p := model.NewProblem(2, 3)
	p.Sense = model.Minimize
	if err := p.SetA([]float64{
		-2, 5, -1,
		1, 3, 1,
	}); err != nil {
		return nil, err
	}
	if err := p.SetB([]float64{-10, 12}); err != nil {
		return nil, err
	}
	if err := p.SetC([]float64{-2, -3, 5}); err != nil {
		return nil, err
	}
	if err := p.AddEquality([]float64{1, 1, 1, 0, 0}, 7); err != nil {
		return nil, err
	}
	return p, nil
}
