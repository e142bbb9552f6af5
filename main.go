package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"q.log/tableau/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.WithError(err).Error("solve failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tableau",
		Short:         "Solve linear programs with the two-phase tableau simplex method",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newSolveCommand(),
		newExampleCommand(),
	)
	return cmd
}

// setup resolves the settings for cmd and points the standard logger at its
// error stream.
func setup(cmd *cobra.Command) (*config.Settings, logrus.FieldLogger, error) {
	s, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log := logrus.StandardLogger()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(s.Level())
	return s, log, nil
}
