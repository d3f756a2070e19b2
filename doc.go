// Package lvsort is a small, pure-Go playground for the elementary
// comparison sorts (bubble, insertion and selection) with every pass
// observable.
//
// 🚀 What is lvsort?
//
//	A generic, in-place sorting library plus a command-line harness:
//		• Algorithms: BubbleSort, InsertionSort, SelectionSort
//		• Any element type: cmp.Ordered, a three-way comparator, or Len/Less/Swap
//		• Hooks: per-pass snapshots, per-swap notification, counters
//		• CLI: print before/after, trace passes and swaps, compare algorithms
//
// ✨ Why choose lvsort?
//
//   - Beginner-friendly: one function per algorithm, same shape for all three
//   - Honest guarantees: stability documented per algorithm and tested
//   - Observable: OnPass and OnSwap hooks reproduce textbook traces
//   - Pure Go: the sorting package imports only the standard library
//
// Under the hood:
//
//	sorting/:         BubbleSort, InsertionSort, SelectionSort, dispatch & options
//	internal/cmd/:    lvsort commands: sort, compare, trace, algorithms
//	internal/config/: YAML/JSON defaults for the commands
//	internal/logger/: named logrus loggers
//	cmd/lvsort/:      the lvsort binary
//	examples/:        runnable walkthrough
//
// Quick trace of bubble sort on [3 2 1]:
//
//	pass 1: [3 2 1] → [2 3 1] → [2 1 3]
//	pass 2: [2 1 3] → [1 2 3]
//
//	go install github.com/katalvlaran/lvsort/cmd/lvsort@latest
package lvsort
