package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"q.log/tableau/instance"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

type solveOpts struct {
	mps      bool
	minimize bool
}

func newSolveCommand() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the linear program in FILE",
		Long: `Solve the linear program in FILE and print the tableau handed to phase two,
the optimal tableau, the structural solution and the optimal value.

FILE is a YAML or JSON problem description unless --mps is given, in which case
it is read as a free-format MPS file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, log, err := setup(cmd)
			if err != nil {
				return err
			}

			p, err := opts.load(args[0], log)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"file":       args[0],
				"rows":       p.NumRows,
				"cols":       p.NumCols,
				"equalities": len(p.Equalities),
				"sense":      p.Sense,
			}).Info("loaded problem")

			res, err := simplex.Solve(p, s.Options(log)...)
			if err != nil {
				log.WithField("status", simplex.StatusOf(err)).Warn("no optimal solution")
				return err
			}
			return printResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&opts.mps, "mps", false, "Read FILE as a free-format MPS file")
	cmd.Flags().BoolVar(&opts.minimize, "minimize", false, "Minimize the objective regardless of the sense recorded in FILE")
	return cmd
}

func (o *solveOpts) load(file string, log logrus.FieldLogger) (*model.Problem, error) {
	var (
		p   *model.Problem
		err error
	)
	if o.mps {
		p, err = instance.NewReader(file).WithLogger(log).Read(model.Maximize)
	} else {
		p, err = model.Load(file)
	}
	if err != nil {
		return nil, err
	}
	if o.minimize {
		p.Sense = model.Minimize
	}
	return p, nil
}
