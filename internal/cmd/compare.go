package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

func CmdCompare() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Action:    compare,
		Category:  "DEMO",
		Usage:     "Run every algorithm on the same list and tabulate the work",
		ArgsUsage: "[VALUES...]",
		Description: `
Each algorithm sorts its own copy of VALUES. One row per algorithm lists
stability, passes, comparisons, swaps, shifts and elapsed time.

Examples:
$ lvsort compare
$ lvsort compare 5 5 3 3 1`,
		Flags: kindFlags(),
	}
}

func compare(c *cli.Context) error {
	cfg := configOf(c)
	in, err := readInput(c, cfg)
	if err != nil {
		return err
	}

	var rows []result
	switch in.kind {
	case kindStrings:
		rows, err = compareAll(in.words)
	case kindFloats:
		rows, err = compareAll(in.floats)
	default:
		rows, err = compareAll(in.ints)
	}
	if err != nil {
		return err
	}

	w := c.App.Writer
	headColor.Fprintf(w, "n=%s\n", humanize.Comma(int64(in.len())))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSTABLE\tPASSES\tCOMPARISONS\tSWAPS\tSHIFTS\tELAPSED")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\t%s\t%s\t%s\n",
			r.alg, r.alg.Stable(),
			humanize.Comma(int64(r.stats.Passes)),
			humanize.Comma(int64(r.stats.Comparisons)),
			humanize.Comma(int64(r.stats.Swaps)),
			humanize.Comma(int64(r.stats.Shifts)),
			r.elapsed)
	}

	return tw.Flush()
}
