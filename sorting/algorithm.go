package sorting

import (
	"cmp"
	"fmt"
	"strings"
)

// Algorithm names one of the sorts in this package.
type Algorithm int

const (
	// Bubble selects BubbleSort.
	Bubble Algorithm = iota

	// Insertion selects InsertionSort.
	Insertion

	// Selection selects SelectionSort.
	Selection
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Insertion: "insertion",
	Selection: "selection",
}

// Algorithms lists every Algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Insertion, Selection}
}

// String returns the lower-case name, e.g. "bubble".
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Stable reports whether equal elements keep their relative order.
// Bubble is stable because it swaps only on strict ">".
func (a Algorithm) Stable() bool {
	return a == Bubble || a == Insertion
}

func (a Algorithm) valid() bool {
	return a >= Bubble && a <= Selection
}

// ParseAlgorithm maps a name such as "insertion", "Insertion-Sort" or
// "insertion_sort" to its Algorithm. Case and surrounding blanks are ignored.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "-sort"), "_sort")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Sort sorts s in place with the chosen algorithm.
//
// Example:
//
//	for _, alg := range sorting.Algorithms() {
//		s := []int{10, 2, 5}
//		if err := sorting.Sort(alg, s); err != nil {
//			// handle ErrIncomparable or ErrOptionViolation
//		}
//	}
func Sort[S ~[]E, E cmp.Ordered](alg Algorithm, s S, opts ...Option) error {
	switch alg {
	case Bubble:
		return BubbleSort(s, opts...)
	case Insertion:
		return InsertionSort(s, opts...)
	case Selection:
		return SelectionSort(s, opts...)
	}

	return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// SortFunc sorts s in place with the chosen algorithm as determined by cmp.
func SortFunc[S ~[]E, E any](alg Algorithm, s S, cmp func(a, b E) int, opts ...Option) error {
	switch alg {
	case Bubble:
		return BubbleSortFunc(s, cmp, opts...)
	case Insertion:
		return InsertionSortFunc(s, cmp, opts...)
	case Selection:
		return SelectionSortFunc(s, cmp, opts...)
	}

	return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}

// SortInterface sorts data in place with the chosen algorithm.
func SortInterface(alg Algorithm, data Interface, opts ...Option) error {
	switch alg {
	case Bubble:
		return BubbleSortInterface(data, opts...)
	case Insertion:
		return InsertionSortInterface(data, opts...)
	case Selection:
		return SelectionSortInterface(data, opts...)
	}

	return fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
}
