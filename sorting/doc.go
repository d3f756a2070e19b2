// Package sorting implements the three elementary comparison sorts
// (bubble, insertion and selection) as in-place, generic routines with
// optional instrumentation hooks.
//
// What
//
//   - BubbleSort, InsertionSort, SelectionSort for any cmp.Ordered slice.
//   - ...Func variants for any element type with a three-way comparator
//     (the slices.SortFunc contract: negative, zero, positive).
//   - ...Interface variants for sequences exposing Len/Less/Swap.
//   - Sort, SortFunc and SortInterface dispatch on an Algorithm value so a
//     caller can iterate Algorithms() uniformly.
//   - Functional hooks:
//   - WithOnPass      (pass number + snapshot of the slice after each pass)
//   - WithOnPassIndex (pass number only)
//   - WithOnSwap      (positions of every exchange)
//   - WithStats       (passes, comparisons, swaps, shifts)
//   - WithEarlyExit   (bubble sort stops after a swap-free pass)
//
// Why
//
//   - Textbook O(n²) algorithms with observable intermediate state, for
//     teaching, tracing and regression tests of pass-by-pass behavior.
//
// Stability
//
//	Insertion sort shifts only elements strictly greater than the key and is
//	stable. Bubble sort swaps only on strict ">" and therefore also keeps
//	equal elements in order. Selection sort swaps the minimum across equal
//	elements and is NOT stable; Algorithm.Stable reports this.
//
// Errors
//
//   - ErrIncomparable:    an ordered slice contains NaN. Checked before any
//     mutation, so the slice is left as it was.
//   - ErrNilSequence:     a nil Interface. A nil slice is an empty sequence.
//   - ErrNilCompare:      a ...Func variant got a nil comparator.
//   - ErrOptionViolation: a hook of the wrong shape.
//   - ErrUnknownAlgorithm: dispatch on an unknown Algorithm.
//
// Concurrency
//
//	Every call is synchronous and runs on the caller's goroutine. The caller
//	must not mutate the sequence while it is being sorted.
//
// Complexity (n = length)
//
//   - Time:   O(n²) comparisons for all three; selection performs at most n-1 swaps.
//   - Memory: O(1) scratch; O(n) per pass only when WithOnPass is set.
//
// See example_test.go for runnable examples.
package sorting
