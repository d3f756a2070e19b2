package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvsort/sorting"
)

func CmdAlgorithms() *cli.Command {
	return &cli.Command{
		Name:     "algorithms",
		Aliases:  []string{"ls"},
		Action:   listAlgorithms,
		Category: "INFO",
		Usage:    "List the available algorithms and their stability",
	}
}

func listAlgorithms(c *cli.Context) error {
	w := c.App.Writer
	for _, alg := range sorting.Algorithms() {
		fmt.Fprintf(w, "%-10s", alg)
		if alg.Stable() {
			fmt.Fprintln(w, "stable")
			continue
		}
		warnColor.Fprintln(w, "not stable")
	}

	return nil
}
