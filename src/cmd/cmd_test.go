package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp(input string) (*cli.App, *bytes.Buffer) {
	app := NewApp()
	var out bytes.Buffer
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app, &out
}

func TestRunDefaultsToSession(t *testing.T) {
	app, out := testApp("3\n4\n")
	require.NoError(t, app.Run([]string{"sortdemo", "--seed", "1"}))
	require.True(t, strings.HasPrefix(out.String(), "Enter array size: New array: "))
	require.True(t, strings.HasSuffix(out.String(), "4-Exit): "))
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		app, out := testApp("")
		require.NoError(t, app.Run([]string{"sortdemo", flag}), flag)
		require.Equal(t, "sortdemo version "+Version+"\n", out.String(), flag)
	}
}

func TestShortVerboseFlag(t *testing.T) {
	app, out := testApp("2\n4\n")
	require.NoError(t, app.Run([]string{"sortdemo", "-v", "--no-color", "run"}))
	require.True(t, strings.HasPrefix(out.String(), "Enter array size: New array: "))
	require.NotContains(t, out.String(), "version")
}

func TestRunInterruptedEndsCleanly(t *testing.T) {
	app, out := testApp("")
	pr, pw := io.Pipe()
	defer pw.Close()
	app.Reader = pr

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, app.RunContext(ctx, []string{"sortdemo", "run"}))
	require.Empty(t, out.String())
}

func TestSortCommandWriteError(t *testing.T) {
	app, _ := testApp("")
	app.Writer = failingWriter{}
	err := app.Run([]string{"sortdemo", "sort", "3", "1", "2"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "write output")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRunSessionIsReproducibleWithSeed(t *testing.T) {
	first, out1 := testApp("6\n4\n")
	require.NoError(t, first.Run([]string{"sortdemo", "--seed", "42", "run"}))
	second, out2 := testApp("6\n4\n")
	require.NoError(t, second.Run([]string{"sortdemo", "--seed", "42", "run"}))
	require.Equal(t, out1.String(), out2.String())
}

func TestSortCommand(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, app.Run([]string{"sortdemo", "sort", "-a", "merge", "5", "3", "8", "1"}))
	require.Contains(t, out.String(), "New array: 5 3 8 1 \n")
	require.Contains(t, out.String(), " milliseconds\n")
	require.True(t, strings.HasSuffix(out.String(), "Sorted array: 1 3 5 8 \n"))
}

func TestSortCommandRandom(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, app.Run([]string{"sortdemo", "--seed", "3", "sort", "-a", "bogo", "-n", "5"}))
	require.Contains(t, out.String(), "Sorted array: ")
}

func TestSortCommandErrors(t *testing.T) {
	cases := [][]string{
		{"sortdemo", "sort", "-a", "heap", "1", "2"},
		{"sortdemo", "sort", "1", "x"},
		{"sortdemo", "sort", "-n", "0"},
		{"sortdemo", "sort", "-a", "bogo", "-n", "11"},
	}
	for _, args := range cases {
		app, _ := testApp("")
		err := app.Run(args)
		require.Error(t, err, strings.Join(args, " "))
		exit, ok := err.(cli.ExitCoder)
		require.True(t, ok)
		require.Equal(t, 1, exit.ExitCode())
	}
}

func TestTreeCommand(t *testing.T) {
	app, out := testApp("")
	require.NoError(t, app.Run([]string{"sortdemo", "tree", "5", "3", "8", "1"}))
	want := ".\n" +
		"└── [0..3] 5 3 8 1\n" +
		"    ├── [0..1] 5 3\n" +
		"    │   ├── [0..0] 5\n" +
		"    │   └── [1..1] 3\n" +
		"    └── [2..3] 8 1\n" +
		"        ├── [2..2] 8\n" +
		"        └── [3..3] 1\n"
	require.Equal(t, want, out.String())
}

func TestSplitTreeOddLength(t *testing.T) {
	root := SplitTree([]int{4, 2, 9})
	require.Len(t, root.Children, 1)
	top := root.Children[0]
	require.Equal(t, "[0..2] 4 2 9", top.Label)
	require.Equal(t, "[0..1] 4 2", top.Children[0].Label)
	require.Equal(t, "[2..2] 9", top.Children[1].Label)
	require.Empty(t, top.Children[1].Children)

	require.Empty(t, SplitTree(nil).Children)
}
