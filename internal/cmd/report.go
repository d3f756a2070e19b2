package cmd

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsort/sorting"
)

var (
	headColor = color.New(color.FgCyan, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// runOptions are the switches of a single sort run.
type runOptions struct {
	trace     bool
	earlyExit bool
	stats     bool
}

// result is what one algorithm did to one input.
type result struct {
	alg     sorting.Algorithm
	stats   sorting.Stats
	elapsed time.Duration
}

// runSort prints s, sorts it with alg and prints the outcome.
func runSort[E cmp.Ordered](w io.Writer, alg sorting.Algorithm, s []E, ro runOptions) error {
	headColor.Fprint(w, "before:")
	fmt.Fprintf(w, " %v\n", s)

	var opts []sorting.Option
	if ro.trace {
		opts = append(opts, sorting.WithOnPass(func(pass int, snap []E) {
			left, right := splitPass(alg, pass, snap)
			fmt.Fprintf(w, "pass %d: %v | %v\n", pass, left, right)
		}))
	}
	if ro.earlyExit {
		opts = append(opts, sorting.WithEarlyExit())
	}
	res, err := measure(alg, s, opts...)
	if err != nil {
		return err
	}

	headColor.Fprint(w, "after:")
	fmt.Fprintf(w, "  %v\n", s)
	if ro.stats {
		fmt.Fprintln(w, formatResult(res))
	}

	return nil
}

// runTrace sorts s printing the state after every swap and every pass.
func runTrace[E cmp.Ordered](w io.Writer, alg sorting.Algorithm, s []E) error {
	headColor.Fprint(w, "before:")
	fmt.Fprintf(w, " %v\n", s)
	_, err := measure(alg, s,
		sorting.WithOnSwap(func(i, j int) {
			fmt.Fprintf(w, "  swap %d<->%d: %v\n", i, j, s)
		}),
		sorting.WithOnPass(func(pass int, snap []E) {
			fmt.Fprintf(w, "pass %d: %v\n", pass, snap)
		}),
	)
	if err != nil {
		return err
	}
	headColor.Fprint(w, "after:")
	fmt.Fprintf(w, "  %v\n", s)

	return nil
}

// compareAll sorts a private copy of s with every algorithm.
func compareAll[E cmp.Ordered](s []E) ([]result, error) {
	out := make([]result, 0, len(sorting.Algorithms()))
	for _, alg := range sorting.Algorithms() {
		res, err := measure(alg, slices.Clone(s))
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// measure sorts s with alg, collecting counters and wall time.
func measure[E cmp.Ordered](alg sorting.Algorithm, s []E, opts ...sorting.Option) (result, error) {
	res := result{alg: alg}
	opts = append(opts, sorting.WithStats(&res.stats))

	start := time.Now()
	if err := sorting.Sort(alg, s, opts...); err != nil {
		return res, errors.Wrapf(err, "%s sort", alg)
	}
	res.elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"n":         len(s),
		"elapsed":   res.elapsed,
	}).Debug("sorted")

	return res, nil
}

// splitPass divides a pass snapshot into the region still being worked on
// and the region settled so far. Bubble sort settles the tail, the other
// two settle (or, for insertion, order) the head.
func splitPass[E any](alg sorting.Algorithm, pass int, snap []E) (left, right []E) {
	cut := pass
	switch alg {
	case sorting.Bubble:
		cut = len(snap) - pass
	case sorting.Insertion:
		cut = pass + 1
	}
	cut = min(max(cut, 0), len(snap))

	return snap[:cut], snap[cut:]
}

func formatResult(r result) string {
	return fmt.Sprintf("passes=%s comparisons=%s swaps=%s shifts=%s elapsed=%s",
		humanize.Comma(int64(r.stats.Passes)),
		humanize.Comma(int64(r.stats.Comparisons)),
		humanize.Comma(int64(r.stats.Swaps)),
		humanize.Comma(int64(r.stats.Shifts)),
		r.elapsed)
}
