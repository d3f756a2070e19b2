package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lvsort/internal/config"
)

// DemoWords is the word list used with --strings when no VALUES are given.
var DemoWords = []string{"Banane", "Apfel", "Orange", "Mango", "Birne", "Kirsche"}

type valueKind int

const (
	kindInts valueKind = iota
	kindFloats
	kindStrings
)

// input is the parsed VALUES of a command; exactly one slice is used,
// as selected by kind.
type input struct {
	kind   valueKind
	ints   []int
	floats []float64
	words  []string
}

func (in input) len() int {
	switch in.kind {
	case kindFloats:
		return len(in.floats)
	case kindStrings:
		return len(in.words)
	}

	return len(in.ints)
}

// readInput parses the command's arguments. Values may be separated by
// blanks or commas, so "10,2,5" and "10 2 5" are the same list. Without
// arguments the config values (or DemoWords) are used.
func readInput(c *cli.Context, cfg config.Config) (input, error) {
	if c.Bool("strings") && c.Bool("floats") {
		return input{}, errors.New("--strings and --floats are mutually exclusive")
	}
	fields := splitValues(c.Args().Slice())

	switch {
	case c.Bool("strings"):
		if len(fields) == 0 {
			fields = append([]string(nil), DemoWords...)
		}
		return input{kind: kindStrings, words: fields}, nil

	case c.Bool("floats"):
		in := input{kind: kindFloats}
		if len(fields) == 0 {
			for _, v := range cfg.Values {
				in.floats = append(in.floats, float64(v))
			}
			return in, nil
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return input{}, errors.Wrapf(err, "value %q", f)
			}
			in.floats = append(in.floats, v)
		}
		return in, nil
	}

	in := input{kind: kindInts}
	if len(fields) == 0 {
		in.ints = append([]int(nil), cfg.Values...)
		return in, nil
	}
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return input{}, errors.Wrapf(err, "value %q", f)
		}
		in.ints = append(in.ints, v)
	}

	return in, nil
}

func splitValues(args []string) []string {
	var out []string
	for _, a := range args {
		out = append(out, strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}

	return out
}
