package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors for sort execution.
var (
	// ErrNilSequence is returned when a nil Interface is passed.
	ErrNilSequence = errors.New("sorting: sequence is nil")

	// ErrNilCompare is returned when a ...Func variant gets a nil comparator.
	ErrNilCompare = errors.New("sorting: compare function is nil")

	// ErrIncomparable is returned when two elements admit no order (NaN).
	ErrIncomparable = errors.New("sorting: elements are not comparable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an Algorithm outside Algorithms().
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Interface is a sequence that is sorted through index-based access.
// It has the shape of sort.Interface, so anything that satisfies one
// satisfies the other.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// Stats collects counters for a single sort call.
//
//   - Passes:      outer-loop iterations completed.
//   - Comparisons: element comparisons performed.
//   - Swaps:       exchanges of two positions.
//   - Shifts:      one-slot moves made by insertion sort on slices.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
	Shifts      int
}

// String renders the counters on one line.
func (s Stats) String() string {
	return fmt.Sprintf("passes=%d comparisons=%d swaps=%d shifts=%d",
		s.Passes, s.Comparisons, s.Swaps, s.Shifts)
}

// Option configures a sort via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds the hooks and switches applied to one sort call.
type Options struct {
	// OnPassIndex is called after each outer pass with its 1-based number.
	OnPassIndex func(pass int)

	// OnSwap is called after positions i and j have been exchanged.
	OnSwap func(i, j int)

	// Stats, if non-nil, is reset and then filled during the call.
	Stats *Stats

	// EarlyExit lets bubble sort stop after a pass without swaps.
	// The other algorithms ignore it.
	EarlyExit bool

	// onPass holds a func(pass int, snapshot []E); its element type is
	// checked against the sequence when the sort starts.
	onPass any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, no counters and
// early exit disabled.
func DefaultOptions() Options {
	return Options{
		OnPassIndex: func(int) {},
		OnSwap:      func(int, int) {},
	}
}

// WithOnPass registers fn to receive the 1-based pass number and a copy
// of the slice after every outer pass. E must match the element type of
// the slice being sorted, otherwise the sort fails with ErrOptionViolation.
// Interface variants reject it, having no slice to copy.
func WithOnPass[E any](fn func(pass int, snapshot []E)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPass = fn
		}
	}
}

// WithOnPassIndex registers fn to receive the 1-based pass number.
func WithOnPassIndex(fn func(pass int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPassIndex = fn
		}
	}
}

// WithOnSwap registers fn to run after every exchange of two positions.
// Insertion sort on slices shifts rather than swaps and never calls it.
func WithOnSwap(fn func(i, j int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSwap = fn
		}
	}
}

// WithStats makes the sort reset *st and count into it.
// A nil pointer is an invalid option.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		if st == nil {
			o.err = fmt.Errorf("%w: Stats pointer is nil", ErrOptionViolation)

			return
		}
		o.Stats = st
	}
}

// WithEarlyExit lets bubble sort finish as soon as a pass makes no swap.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
