package sort

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Choice selects the algorithm applied to an array.
type Choice int

const (
	MergeSortChoice Choice = 1
	QuickSortChoice Choice = 2
	BogoSortChoice  Choice = 3
	ExitChoice      Choice = 4
)

// ErrExit is returned by Run for ExitChoice, which has nothing to sort.
var ErrExit = errors.New("exit requested")

// Known reports whether c is one of the menu entries.
func (c Choice) Known() bool {
	return c >= MergeSortChoice && c <= ExitChoice
}

func (c Choice) String() string {
	switch c {
	case MergeSortChoice:
		return "MergeSort"
	case QuickSortChoice:
		return "QuickSort"
	case BogoSortChoice:
		return "BogoSort"
	case ExitChoice:
		return "Exit"
	default:
		return "QuickSort(default)"
	}
}

// ParseChoice accepts a menu number (1-3) or an algorithm name such as
// "merge", "quick" or "bogo".
func ParseChoice(name string) (Choice, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if n, err := strconv.Atoi(s); err == nil {
		c := Choice(n)
		if !c.Known() || c == ExitChoice {
			return 0, errors.Errorf("unknown algorithm %q", name)
		}
		return c, nil
	}
	switch strings.TrimSuffix(s, "sort") {
	case "merge":
		return MergeSortChoice, nil
	case "quick":
		return QuickSortChoice, nil
	case "bogo":
		return BogoSortChoice, nil
	}
	return 0, errors.Errorf("unknown algorithm %q", name)
}

// Run sorts a with the algorithm selected by c. Choices outside the menu fall
// back to QuickSort.
func Run(c Choice, a IntArray, rng Source) error {
	switch c {
	case MergeSortChoice:
		buf := append(IntArray(nil), a...)
		MergeSort(buf, 0, len(buf)-1)
		copy(a, buf)
	case QuickSortChoice:
		QuickSort(a, 0, len(a)-1)
	case BogoSortChoice:
		BogoSort(a, rng)
	case ExitChoice:
		return ErrExit
	default:
		QuickSort(a, 0, len(a)-1)
	}
	return nil
}
