package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/session"
	"sortdemo/src/sort"
)

func sizeFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "size",
		Aliases: []string{"n"},
		Value:   10,
		Usage:   "length of the random array used when no values are given",
	}
}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortOnce,
		Category:  "DEMO",
		Usage:     "sort one array and exit",
		ArgsUsage: "[VALUE ...]",
		Description: `Sorts the given integers, or a random array of --size values in [0, 99]
when none are given, and prints the time taken.

Examples:
$ sortdemo sort -a merge 5 3 8 1
$ sortdemo sort -a bogo -n 6
# Negative values go after --
$ sortdemo sort -- -4 2 -1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "quick",
				Usage:   "merge, quick or bogo (or 1-3)",
			},
			sizeFlag(),
			&cli.IntFlag{
				Name:  "max-bogo",
				Value: 10,
				Usage: "refuse bogosort on arrays longer than this",
			},
		},
	}
}

func sortOnce(c *cli.Context) error {
	if err := setup(c); err != nil {
		return err
	}
	choice, err := sort.ParseChoice(c.String("algorithm"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	rng := newSource(c)
	arr, err := arrayFromArgs(c, rng)
	if err != nil {
		return err
	}
	if choice == sort.BogoSortChoice && len(arr) > c.Int("max-bogo") {
		return cli.Exit(fmt.Sprintf("bogosort on %d elements would not finish, raise --max-bogo to insist", len(arr)), 1)
	}

	w := c.App.Writer
	if err := writeArray(w, "New array: ", arr); err != nil {
		return err
	}

	start := time.Now()
	if err := sort.Run(choice, arr, rng); err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.WithField("algorithm", choice.String()).Debugf("sorted %d elements in %s", len(arr), elapsed)

	if _, err := fmt.Fprintf(w, "\nTime taken: %s milliseconds\n", session.FormatMillis(elapsed)); err != nil {
		return errors.Wrap(err, "write output")
	}
	return writeArray(w, "Sorted array: ", arr)
}

func writeArray(w io.Writer, label string, arr sort.IntArray) error {
	if _, err := io.WriteString(w, label); err != nil {
		return errors.Wrap(err, "write output")
	}
	return errors.Wrap(sort.WriteArray(w, arr), "write output")
}

// arrayFromArgs parses the positional values, or draws a random array of
// --size values when there are none.
func arrayFromArgs(c *cli.Context, rng sort.Source) (sort.IntArray, error) {
	if c.NArg() == 0 {
		n := c.Int("size")
		if n <= 0 {
			return nil, cli.Exit(fmt.Sprintf("invalid --size %d: must be positive", n), 1)
		}
		return sort.RandomArray(rng, n), nil
	}
	arr := make(sort.IntArray, 0, c.NArg())
	for _, s := range c.Args().Slice() {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("invalid value %q: not an integer", s), 1)
		}
		arr = append(arr, v)
	}
	return arr, nil
}
