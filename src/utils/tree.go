package utils

import (
	"fmt"
	"io"
)

const (
	pipe    = "│   "
	tee     = "├── "
	lasttee = "└── "
	blank   = "    "
	rootDir = "."
)

type TreeNode struct {
	Level    int
	Label    string
	Children []*TreeNode
	// Right is the next sibling; the last child has none.
	Right *TreeNode
}

// ShowTree prints out the contents of the tree, using its prefix to determine the proper indentation and the difference
// between the tee and lasttee characters to denote the beginning or end of a tree branch
func (node *TreeNode) ShowTree(w io.Writer, prefix string) error {
	if node.Level == 0 {
		if _, err := fmt.Fprintln(w, rootDir); err != nil {
			return err
		}
	}

	var subFix string
	if node.Right != nil {
		subFix = tee
	} else {
		subFix = lasttee
	}

	if node.Label != "" {
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, subFix, node.Label); err != nil {
			return err
		}
		if node.Right != nil {
			prefix += pipe
		} else {
			prefix += blank
		}
	}

	for _, child := range node.Children {
		if err := child.ShowTree(w, prefix); err != nil {
			return err
		}
	}
	return nil
}

// AddChild appends a labelled child and links the previous child to it.
func (node *TreeNode) AddChild(label string) *TreeNode {
	var pre *TreeNode = nil
	if len(node.Children) > 0 {
		pre = node.Children[len(node.Children)-1]
	}

	child := &TreeNode{
		Level: node.Level + 1,
		Label: label,
	}

	if pre != nil {
		pre.Right = child
	}

	node.Children = append(node.Children, child)
	return child
}
