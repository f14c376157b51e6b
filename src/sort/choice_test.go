package sort

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseChoice(t *testing.T) {
	cases := map[string]Choice{
		"1":         MergeSortChoice,
		"merge":     MergeSortChoice,
		"MergeSort": MergeSortChoice,
		"2":         QuickSortChoice,
		" quick ":   QuickSortChoice,
		"3":         BogoSortChoice,
		"bogosort":  BogoSortChoice,
	}
	for in, want := range cases {
		got, err := ParseChoice(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "4", "0", "7", "heap", "sort"} {
		_, err := ParseChoice(in)
		require.Error(t, err, in)
	}
}

func TestChoiceString(t *testing.T) {
	require.Equal(t, "MergeSort", MergeSortChoice.String())
	require.Equal(t, "Exit", ExitChoice.String())
	require.Equal(t, "QuickSort(default)", Choice(7).String())
	require.True(t, BogoSortChoice.Known())
	require.False(t, Choice(0).Known())
}

func TestRun(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	a := IntArray{5, 3, 8, 1}
	require.NoError(t, Run(MergeSortChoice, a, rng))
	require.Equal(t, IntArray{1, 3, 5, 8}, a)

	a = IntArray{9, 2, 7, 2}
	require.NoError(t, Run(QuickSortChoice, a, rng))
	require.Equal(t, IntArray{2, 2, 7, 9}, a)

	a = IntArray{4, 1, 3}
	require.NoError(t, Run(BogoSortChoice, a, rng))
	require.Equal(t, IntArray{1, 3, 4}, a)

	a = IntArray{3, 1, 2}
	require.NoError(t, Run(Choice(-1), a, rng))
	require.Equal(t, IntArray{1, 2, 3}, a)

	a = IntArray{3, 1, 2}
	err := Run(ExitChoice, a, rng)
	require.True(t, errors.Is(err, ErrExit))
	require.Equal(t, IntArray{3, 1, 2}, a)
}
