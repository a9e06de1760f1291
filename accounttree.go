package ledger

import "strings"

// treeNode is one path segment in the account trie. The root is an unlabeled
// container of top-level segments and is never emitted. exists marks nodes
// where some input path terminates; children keep first-seen order.
type treeNode struct {
	label    string
	exists   bool
	children []*treeNode
}

// child returns the child with the given label, creating and appending it
// when absent so insertion order is preserved.
func (n *treeNode) child(label string) *treeNode {
	for _, c := range n.children {
		if c.label == label {
			return c
		}
	}
	c := &treeNode{label: label}
	n.children = append(n.children, c)
	return c
}

// CompressAccountPaths reduces a flat list of account paths to the minimal
// list to display. A path is emitted only if it terminates an input path and
// its node does not have exactly one child: single-child ancestors are
// treated as pass-throughs and hidden, even when they are declared accounts.
// Output is a pre-order walk, children in first-seen order.
func CompressAccountPaths(paths []string) []string {
	root := &treeNode{}
	for _, path := range paths {
		node := root
		for _, segment := range strings.Split(path, ":") {
			node = node.child(segment)
		}
		node.exists = true
	}

	var out []string
	var walk func(n *treeNode, prefix string)
	walk = func(n *treeNode, prefix string) {
		for _, c := range n.children {
			full := c.label
			if prefix != "" {
				full = prefix + ":" + c.label
			}
			if c.exists && len(c.children) != 1 {
				out = append(out, full)
			}
			walk(c, full)
		}
	}
	walk(root, "")
	return out
}
