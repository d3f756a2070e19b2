package sorting

import "cmp"

// BubbleSort is the exchange sort by adjacent swaps.
//
// Description:
//
//	Repeatedly walks the unsorted prefix and swaps neighbors that are out
//	of order, so the largest remaining element "bubbles" to the end.
//
// Algorithm Outline:
//  1. Let n = len(s).
//  2. For pass i = 0..n-2:
//     For j = 0..n-2-i:
//     if s[j] > s[j+1], swap s[j] and s[j+1].
//  3. After pass i, s[n-1-i] holds its final value, so the scan of the
//     next pass is one element shorter.
//  4. With WithEarlyExit, stop after the first pass that made no swap.
//
// Stability:
//
//	Swaps happen only on strict ">", so equal neighbors never cross.
//
// Complexity:
//
//	Time   = O(n²) comparisons, O(n²) swaps in the worst case
//	Memory = O(1)
//
// Errors:
//   - ErrIncomparable:    s contains NaN (s is left unchanged).
//   - ErrOptionViolation: a mistyped hook.
func BubbleSort[S ~[]E, E cmp.Ordered](s S, opts ...Option) error {
	if err := checkOrdered(s); err != nil {
		return err
	}

	return BubbleSortFunc(s, cmp.Compare[E], opts...)
}

// BubbleSortFunc sorts s in ascending order as determined by cmp, which
// must return a negative number when a < b, zero when a == b and a
// positive number when a > b, and must describe a total order.
func BubbleSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int, opts ...Option) error {
	w, err := newSorter(cmp, opts)
	if err != nil {
		return err
	}
	w.bubble([]E(s))

	return nil
}

// BubbleSortInterface sorts data in place using only Len, Less and Swap.
// Returns ErrNilSequence for a nil data.
func BubbleSortInterface(data Interface, opts ...Option) error {
	w, err := newIfaceSorter(data, opts)
	if err != nil {
		return err
	}
	n := data.Len()
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			// data[j] > data[j+1]
			if w.less(j+1, j) {
				w.swap(j, j+1)
				swapped = true
			}
		}
		w.endPass(i + 1)
		if !swapped && w.opts.EarlyExit {
			return nil
		}
	}

	return nil
}

func (w *sorter[E]) bubble(s []E) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if w.greater(s[j], s[j+1]) {
				w.swap(s, j, j+1)
				swapped = true
			}
		}
		w.endPass(i+1, s)
		if !swapped && w.opts.EarlyExit {
			return
		}
	}
}
