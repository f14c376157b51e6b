package cmd

import (
	"github.com/urfave/cli/v2"
)

// NewApp wires every command. Without a command the interactive session runs.
func NewApp() *cli.App {
	// -v belongs to --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print version only",
	}
	return &cli.App{
		Name:                 "sortdemo",
		Usage:                "merge sort, quicksort and bogosort on random arrays",
		Version:              Version,
		HideHelpCommand:      true,
		EnableBashCompletion: true,
		Flags:                GlobalFlags(),
		Action:               run,
		Commands: []*cli.Command{
			CmdRun(),
			CmdSort(),
			CmdTree(),
		},
	}
}
