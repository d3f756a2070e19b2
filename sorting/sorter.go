package sorting

import (
	"cmp"
	"fmt"
	"slices"
)

// sorter encapsulates the mutable state of one sort over a slice:
// the comparator, the resolved hooks and the counters.
type sorter[E any] struct {
	cmp    func(a, b E) int
	opts   Options
	onPass func(pass int, snapshot []E)
	stats  *Stats
}

// newSorter validates cmp and opts and returns a ready sorter.
// No element of the sequence is touched here.
func newSorter[E any](cmp func(a, b E) int, opts []Option) (*sorter[E], error) {
	if cmp == nil {
		return nil, ErrNilCompare
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w := &sorter[E]{cmp: cmp, opts: o, stats: statsOf(o)}
	if o.onPass != nil {
		fn, ok := o.onPass.(func(int, []E))
		if !ok {
			return nil, fmt.Errorf("%w: OnPass hook %T does not accept %T snapshots",
				ErrOptionViolation, o.onPass, []E(nil))
		}
		w.onPass = fn
	}

	return w, nil
}

// greater reports a > b and counts the comparison.
func (w *sorter[E]) greater(a, b E) bool {
	w.stats.Comparisons++

	return w.cmp(a, b) > 0
}

// less reports a < b and counts the comparison.
func (w *sorter[E]) less(a, b E) bool {
	w.stats.Comparisons++

	return w.cmp(a, b) < 0
}

// swap exchanges s[i] and s[j], counts it and calls OnSwap.
func (w *sorter[E]) swap(s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
	w.stats.Swaps++
	w.opts.OnSwap(i, j)
}

// endPass records a completed outer pass and fires the pass hooks.
func (w *sorter[E]) endPass(pass int, s []E) {
	w.stats.Passes++
	w.opts.OnPassIndex(pass)
	if w.onPass != nil {
		w.onPass(pass, slices.Clone(s))
	}
}

// ifaceSorter is the sorter counterpart for an Interface sequence.
type ifaceSorter struct {
	data  Interface
	opts  Options
	stats *Stats
}

// newIfaceSorter rejects a nil sequence and snapshot hooks.
func newIfaceSorter(data Interface, opts []Option) (*ifaceSorter, error) {
	if data == nil {
		return nil, ErrNilSequence
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.onPass != nil {
		return nil, fmt.Errorf("%w: OnPass snapshots need a slice, use WithOnPassIndex",
			ErrOptionViolation)
	}

	return &ifaceSorter{data: data, opts: o, stats: statsOf(o)}, nil
}

// less reports data[i] < data[j] and counts the comparison.
func (w *ifaceSorter) less(i, j int) bool {
	w.stats.Comparisons++

	return w.data.Less(i, j)
}

// swap exchanges data[i] and data[j], counts it and calls OnSwap.
func (w *ifaceSorter) swap(i, j int) {
	w.data.Swap(i, j)
	w.stats.Swaps++
	w.opts.OnSwap(i, j)
}

// endPass records a completed outer pass.
func (w *ifaceSorter) endPass(pass int) {
	w.stats.Passes++
	w.opts.OnPassIndex(pass)
}

// statsOf returns the caller's Stats reset to zero, or a private one.
func statsOf(o Options) *Stats {
	if o.Stats == nil {
		return &Stats{}
	}
	*o.Stats = Stats{}

	return o.Stats
}

// checkOrdered rejects slices holding NaN, the only cmp.Ordered value
// that is not equal to itself and admits no order.
func checkOrdered[S ~[]E, E cmp.Ordered](s S) error {
	for i, v := range s {
		if v != v {
			return fmt.Errorf("%w: NaN at index %d", ErrIncomparable, i)
		}
	}

	return nil
}
