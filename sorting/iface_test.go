package sorting_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intSlice is a minimal Interface over []int.
type intSlice []int

func (p intSlice) Len() int           { return len(p) }
func (p intSlice) Less(i, j int) bool { return p[i] < p[j] }
func (p intSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// taggedSlice orders tagged values by v only.
type taggedSlice []tagged

func (p taggedSlice) Len() int           { return len(p) }
func (p taggedSlice) Less(i, j int) bool { return p[i].v < p[j].v }
func (p taggedSlice) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// TestInterface_NilSequence fails fast for every algorithm.
func TestInterface_NilSequence(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		err := sorting.SortInterface(alg, nil)
		assert.ErrorIs(t, err, sorting.ErrNilSequence, alg.String())
	}
}

// TestInterface_MatchesSliceVariant compares swap traces of both forms.
// Bubble and selection issue the same swaps on slices and interfaces.
func TestInterface_MatchesSliceVariant(t *testing.T) {
	in := []int{10, 2, 5, 4, 80, 43, 10, 2}
	for _, alg := range []sorting.Algorithm{sorting.Bubble, sorting.Selection} {
		var sliceSwaps, ifaceSwaps [][2]int
		a := slices.Clone(in)
		b := intSlice(slices.Clone(in))

		require.NoError(t, sorting.Sort(alg, a,
			sorting.WithOnSwap(func(i, j int) { sliceSwaps = append(sliceSwaps, [2]int{i, j}) })))
		require.NoError(t, sorting.SortInterface(alg, b,
			sorting.WithOnSwap(func(i, j int) { ifaceSwaps = append(ifaceSwaps, [2]int{i, j}) })))

		assert.Equal(t, sliceSwaps, ifaceSwaps, alg.String())
		assert.Equal(t, a, []int(b), alg.String())
	}
}

// TestInterface_InsertionSwapCountEqualsShifts relates the two insertion forms:
// every shift on a slice is one adjacent swap on an Interface.
func TestInterface_InsertionSwapCountEqualsShifts(t *testing.T) {
	in := []int{10, 2, 5, 4, 80, 43, 10, 2}
	var sliceStats, ifaceStats sorting.Stats

	require.NoError(t, sorting.InsertionSort(slices.Clone(in), sorting.WithStats(&sliceStats)))
	require.NoError(t, sorting.InsertionSortInterface(intSlice(slices.Clone(in)), sorting.WithStats(&ifaceStats)))

	assert.Equal(t, sliceStats.Shifts, ifaceStats.Swaps)
	assert.Equal(t, sliceStats.Passes, ifaceStats.Passes)
}
