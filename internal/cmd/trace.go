package cmd

import (
	"github.com/urfave/cli/v2"
)

func CmdTrace() *cli.Command {
	return &cli.Command{
		Name:      "trace",
		Action:    trace,
		Category:  "DEMO",
		Usage:     "Print the list after every swap and every pass",
		ArgsUsage: "[VALUES...]",
		Description: `
Prints "swap i<->j: [...]" after every exchange and "pass N: [...]" after
every pass. Insertion sort shifts instead of swapping, so only its passes
are shown.

Examples:
$ lvsort trace 3 2 1
$ lvsort trace -a selection 5 5 3 3 1`,
		Flags: append([]cli.Flag{algorithmFlag()}, kindFlags()...),
	}
}

func trace(c *cli.Context) error {
	cfg := configOf(c)
	alg, err := algorithmOf(c, cfg)
	if err != nil {
		return err
	}
	in, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	w := c.App.Writer
	switch in.kind {
	case kindStrings:
		return runTrace(w, alg, in.words)
	case kindFloats:
		return runTrace(w, alg, in.floats)
	}

	return runTrace(w, alg, in.ints)
}
