package sort

import (
	"fmt"
	"io"
)

type IntArray []int

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Source is the pseudo-random generator threaded through RandomArray and Shuffle.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// RandomArray returns n values drawn from [0, 99].
func RandomArray(rng Source, n int) IntArray {
	a := make(IntArray, n)
	for i := range a {
		a[i] = rng.Intn(100)
	}
	return a
}

// IsSorted reports whether data is in non-descending order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}

// Shuffle swaps every position i, in order, with a random position in [0, n).
// This is not Fisher-Yates and the resulting permutations are not uniform.
func Shuffle(data Sorter, rng Source) {
	n := data.Len()
	for i := 0; i < n; i++ {
		data.Swap(i, rng.Intn(n))
	}
}

// WriteArray writes every element followed by a space, then a newline.
func WriteArray(w io.Writer, a IntArray) error {
	for _, v := range a {
		if _, err := fmt.Fprintf(w, "%d ", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
