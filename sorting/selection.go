package sorting

import "cmp"

// SelectionSort places the minimum of the unsorted suffix, one position
// at a time.
//
// Description:
//
//	For each position i, scans s[i:] for the leftmost minimum and swaps it
//	into i. At most n-1 swaps are performed in total.
//
// Algorithm Outline:
//  1. For i = 0..n-2:
//     m = i
//     for j = i+1..n-1: if s[j] < s[m], m = j
//     if m != i, swap s[i] and s[m]
//
// Stability:
//
//	NOT stable: the swap can carry s[i] past an element equal to it.
//
// Complexity:
//
//	Time   = O(n²) comparisons, O(n) swaps
//	Memory = O(1)
//
// Errors:
//   - ErrIncomparable:    s contains NaN (s is left unchanged).
//   - ErrOptionViolation: a mistyped hook.
func SelectionSort[S ~[]E, E cmp.Ordered](s S, opts ...Option) error {
	if err := checkOrdered(s); err != nil {
		return err
	}

	return SelectionSortFunc(s, cmp.Compare[E], opts...)
}

// SelectionSortFunc sorts s in ascending order as determined by cmp.
// On ties the leftmost minimum wins.
func SelectionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int, opts ...Option) error {
	w, err := newSorter(cmp, opts)
	if err != nil {
		return err
	}
	w.selection([]E(s))

	return nil
}

// SelectionSortInterface sorts data in place using only Len, Less and Swap.
func SelectionSortInterface(data Interface, opts ...Option) error {
	w, err := newIfaceSorter(data, opts)
	if err != nil {
		return err
	}
	n := data.Len()
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if w.less(j, minIdx) {
				minIdx = j
			}
		}
		if minIdx != i {
			w.swap(i, minIdx)
		}
		w.endPass(i + 1)
	}

	return nil
}

func (w *sorter[E]) selection(s []E) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if w.less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			w.swap(s, i, minIdx)
		}
		w.endPass(i+1, s)
	}
}
