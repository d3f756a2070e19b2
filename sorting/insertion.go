package sorting

import "cmp"

// InsertionSort grows a sorted prefix one element at a time.
//
// Description:
//
//	Keeps s[0:i] sorted. Each step takes key = s[i], shifts every element of
//	the prefix that is strictly greater than key one slot to the right, and
//	drops key into the gap.
//
// Algorithm Outline:
//  1. For i = 1..n-1:
//     key = s[i]; j = i-1
//     while j >= 0 and s[j] > key: s[j+1] = s[j]; j--
//     s[j+1] = key
//
// Stability:
//
//	Shifting stops at the first element <= key, so equal elements keep their
//	relative order.
//
// Complexity:
//
//	Time   = O(n²) worst case, O(n) on already sorted input
//	Memory = O(1)
//
// Errors:
//   - ErrIncomparable:    s contains NaN (s is left unchanged).
//   - ErrOptionViolation: a mistyped hook.
func InsertionSort[S ~[]E, E cmp.Ordered](s S, opts ...Option) error {
	if err := checkOrdered(s); err != nil {
		return err
	}

	return InsertionSortFunc(s, cmp.Compare[E], opts...)
}

// InsertionSortFunc sorts s in ascending order as determined by cmp.
// Moves are counted in Stats.Shifts; OnSwap is never called.
func InsertionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int, opts ...Option) error {
	w, err := newSorter(cmp, opts)
	if err != nil {
		return err
	}
	w.insertion([]E(s))

	return nil
}

// InsertionSortInterface sorts data in place. Without direct element access
// the shift is performed as a run of adjacent swaps while Less(j, j-1),
// which is the same strict condition and keeps the sort stable.
func InsertionSortInterface(data Interface, opts ...Option) error {
	w, err := newIfaceSorter(data, opts)
	if err != nil {
		return err
	}
	n := data.Len()
	for i := 1; i < n; i++ {
		for j := i; j > 0 && w.less(j, j-1); j-- {
			w.swap(j, j-1)
		}
		w.endPass(i)
	}

	return nil
}

func (w *sorter[E]) insertion(s []E) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && w.greater(s[j], key) {
			s[j+1] = s[j]
			w.stats.Shifts++
			j--
		}
		s[j+1] = key
		w.endPass(i, s)
	}
}
