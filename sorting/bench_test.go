package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsort/sorting"
)

// benchmarkSort is a helper that sorts a fresh copy of a random slice of
// length n with alg on every iteration.
func benchmarkSort(b *testing.B, alg sorting.Algorithm, n int) {
	rng := rand.New(rand.NewSource(1))
	src := make([]int, n)
	for i := range src {
		src[i] = rng.Int()
	}
	work := make([]int, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		copy(work, src)
		if err := sorting.Sort(alg, work); err != nil {
			b.Fatalf("%v failed: %v", alg, err)
		}
	}
}

func BenchmarkBubbleSort_100(b *testing.B)     { benchmarkSort(b, sorting.Bubble, 100) }
func BenchmarkBubbleSort_1000(b *testing.B)    { benchmarkSort(b, sorting.Bubble, 1000) }
func BenchmarkInsertionSort_100(b *testing.B)  { benchmarkSort(b, sorting.Insertion, 100) }
func BenchmarkInsertionSort_1000(b *testing.B) { benchmarkSort(b, sorting.Insertion, 1000) }
func BenchmarkSelectionSort_100(b *testing.B)  { benchmarkSort(b, sorting.Selection, 100) }
func BenchmarkSelectionSort_1000(b *testing.B) { benchmarkSort(b, sorting.Selection, 1000) }
