package sort

// MergeSort sorts a[l..r] (both inclusive) in non-descending order.
// Equal elements keep their relative order.
func MergeSort(a IntArray, l, r int) {
	if l >= r {
		return
	}
	m := Midpoint(l, r)
	MergeSort(a, l, m)
	MergeSort(a, m+1, r)
	merge(a, l, m, r)
}

// merge combines the sorted runs a[l..m] and a[m+1..r].
func merge(a IntArray, l, m, r int) {
	left := append(IntArray(nil), a[l:m+1]...)
	right := append(IntArray(nil), a[m+1:r+1]...)

	i, j, k := 0, 0, l
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			a[k] = left[i]
			i++
		} else {
			a[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i++ {
		a[k] = left[i]
		k++
	}
	for ; j < len(right); j++ {
		a[k] = right[j]
		k++
	}
}

// Midpoint is the split index MergeSort uses for a[l..r].
func Midpoint(l, r int) int {
	return l + (r-l)/2
}
