package sorting_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvsort/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectionSort_NotStable shows the swap reordering equal values.
// The multiset stays correct; only the tags of the 5s come out reversed.
func TestSelectionSort_NotStable(t *testing.T) {
	s := duplicates()
	require.NoError(t, sorting.SelectionSortFunc(s, byValue))

	values := make([]int, len(s))
	for i, e := range s {
		values[i] = e.v
	}
	assert.Equal(t, []int{1, 3, 3, 5, 5}, values)
	assert.Equal(t, []string{"e", "c", "d", "b", "a"}, tags(s))
}

// TestSelectionSort_LeftmostMinimum verifies ties pick the first minimum.
func TestSelectionSort_LeftmostMinimum(t *testing.T) {
	s := []tagged{{2, "x"}, {1, "p"}, {1, "q"}}
	var swaps [][2]int
	require.NoError(t, sorting.SelectionSortFunc(s, byValue,
		sorting.WithOnSwap(func(i, j int) { swaps = append(swaps, [2]int{i, j}) })))

	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, swaps)
	assert.Equal(t, []string{"p", "q", "x"}, tags(s))
}

// TestSelectionSort_PassPlacesMinimum checks s[i] is final after pass i+1.
func TestSelectionSort_PassPlacesMinimum(t *testing.T) {
	in := []int{10, 2, 5, 4, 80, 43}
	want := slices.Clone(in)
	slices.Sort(want)

	err := sorting.SelectionSort(in, sorting.WithOnPass(func(pass int, snap []int) {
		assert.Equal(t, want[:pass], snap[:pass], "prefix after pass %d", pass)
	}))
	require.NoError(t, err)
}

// TestSelectionSort_AtMostNMinusOneSwaps bounds the exchanges.
func TestSelectionSort_AtMostNMinusOneSwaps(t *testing.T) {
	s := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	var st sorting.Stats
	require.NoError(t, sorting.SelectionSort(s, sorting.WithStats(&st)))
	assert.LessOrEqual(t, st.Swaps, len(s)-1)
	assert.Equal(t, 45, st.Comparisons)
}
