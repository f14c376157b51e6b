package sort

// QuickSort sorts a[low..high] (both inclusive) in place.
// The pivot is always a[high], so sorted input degrades to O(n^2).
func QuickSort(a IntArray, low, high int) {
	if low >= high {
		return
	}
	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if a[j] < pivot {
			i++
			a.Swap(i, j)
		}
	}
	a.Swap(i+1, high)

	QuickSort(a, low, i)
	QuickSort(a, i+2, high)
}

// BogoSort shuffles data until it happens to be sorted. There is no bound
// on the number of rounds.
func BogoSort(data Sorter, rng Source) {
	for !IsSorted(data) {
		Shuffle(data, rng)
	}
}
