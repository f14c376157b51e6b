package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"sortdemo/src/sort"
	"sortdemo/src/utils"
)

func CmdTree() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Action:    tree,
		Category:  "DEMO",
		Usage:     "show how merge sort splits an array",
		ArgsUsage: "[VALUE ...]",
		Description: `Prints every subrange merge sort visits, one node per recursive call.

Examples:
$ sortdemo tree 5 3 8 1
$ sortdemo tree -n 6`,
		Flags: []cli.Flag{
			sizeFlag(),
		},
	}
}

func tree(c *cli.Context) error {
	if err := setup(c); err != nil {
		return err
	}
	arr, err := arrayFromArgs(c, newSource(c))
	if err != nil {
		return err
	}
	root := SplitTree(arr)
	return errors.Wrap(root.ShowTree(c.App.Writer, ""), "write output")
}

// SplitTree builds the tree of subranges MergeSort recurses into.
func SplitTree(arr sort.IntArray) *utils.TreeNode {
	root := &utils.TreeNode{}
	if len(arr) > 0 {
		addRange(root, arr, 0, len(arr)-1)
	}
	return root
}

func addRange(parent *utils.TreeNode, arr sort.IntArray, l, r int) {
	node := parent.AddChild(rangeLabel(arr, l, r))
	if l >= r {
		return
	}
	m := sort.Midpoint(l, r)
	addRange(node, arr, l, m)
	addRange(node, arr, m+1, r)
}

func rangeLabel(arr sort.IntArray, l, r int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d..%d]", l, r)
	for _, v := range arr[l : r+1] {
		fmt.Fprintf(&b, " %d", v)
	}
	return b.String()
}
