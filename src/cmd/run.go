package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/session"
)

func CmdRun() *cli.Command {
	return &cli.Command{
		Name:     "run",
		Action:   run,
		Category: "DEMO",
		Usage:    "start the interactive sorting session",
		Description: `Prompts for an array size, fills an array with random values in [0, 99]
and sorts it with the chosen algorithm, printing the time taken. The session
repeats until 4-Exit is chosen or the input ends.

Examples:
$ sortdemo run
# Reproducible arrays
$ sortdemo --seed 42 run`,
	}
}

func run(c *cli.Context) error {
	if err := setup(c); err != nil {
		return err
	}

	s := session.New(c.App.Reader, c.App.Writer, newSource(c), session.WithLogger(logger))
	logger.Debugf("interactive session started")
	err := s.Run(c.Context)
	if errors.Is(err, context.Canceled) {
		logger.Debugf("interrupted, session ended")
		return nil
	}
	return err
}
