package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvsort/sorting"
)

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortAction,
		Category:  "DEMO",
		Usage:     "Print a list before and after sorting it",
		ArgsUsage: "[VALUES...]",
		Description: `
Sorts VALUES in place with the chosen algorithm. VALUES may be separated by
blanks or commas; without VALUES the demo list from the config is used.
Put "--" before negative numbers.

With --trace each pass prints "pass N: [A] | [B]", where B is the settled
tail for bubble sort and A the sorted head for insertion and selection sort.

Examples:
$ lvsort sort 10 2 5 4 80 43
$ lvsort sort -a insertion --trace 10,2,5,4,80,43
$ lvsort sort --strings --stats Banane Apfel Orange
$ LVSORT_ALGORITHM=selection lvsort sort -- -4 9 0`,
		Flags: append([]cli.Flag{
			algorithmFlag(),
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "print the list after every pass",
			},
			&cli.BoolFlag{
				Name:  "early-exit",
				Usage: "stop bubble sort after the first pass without swaps",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "print passes, comparisons, swaps, shifts and elapsed time",
			},
		}, kindFlags()...),
	}
}

func sortAction(c *cli.Context) error {
	cfg := configOf(c)
	alg, err := algorithmOf(c, cfg)
	if err != nil {
		return err
	}
	in, err := readInput(c, cfg)
	if err != nil {
		return err
	}
	ro := runOptions{
		trace:     boolOf(c, "trace", cfg.Trace),
		earlyExit: boolOf(c, "early-exit", cfg.EarlyExit),
		stats:     boolOf(c, "stats", cfg.Stats),
	}
	if ro.earlyExit && alg != sorting.Bubble {
		log.Warnf("--early-exit has no effect on %s sort", alg)
	}
	log.Debugf("sorting %d values with %s sort", in.len(), alg)

	w := c.App.Writer
	switch in.kind {
	case kindStrings:
		return runSort(w, alg, in.words, ro)
	case kindFloats:
		return runSort(w, alg, in.floats, ro)
	}

	return runSort(w, alg, in.ints, ro)
}
