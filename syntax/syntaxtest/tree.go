// Package syntaxtest provides a literal, hand-built syntax tree for testing
// code that consumes the syntax.Tree capability. Tests construct nodes with
// Leaf and Branch, wire them into a Tree with NewTree, and get the same
// query surface a real parser adapter would provide.
//
// Position queries use syntax.DescendantForRange, so the fake's boundary
// tie-break policy is the one documented there: half-open containment for
// cursor positions, first child in source order wins.
package syntaxtest

import "github.com/dshills/treeselect/syntax"

// Node is a fake syntax node. Fields are set at construction time and never
// mutated afterwards; parent links are wired by NewTree.
type Node struct {
	Span     syntax.Range
	Named    bool
	Kind     string // optional label, for test failure messages only
	Children []*Node

	parent *Node
}

// Leaf creates a terminal node covering [start, end).
func Leaf(start, end syntax.ByteOffset, named bool) *Node {
	return &Node{Span: syntax.NewRange(start, end), Named: named}
}

// Branch creates an interior node whose span is computed from its first and
// last children.
func Branch(named bool, children ...*Node) *Node {
	n := &Node{Named: named, Children: children}
	if len(children) > 0 {
		n.Span = syntax.NewRange(children[0].Span.Start, children[len(children)-1].Span.End)
	}
	return n
}

// WithKind labels the node for debugging and returns it.
func (n *Node) WithKind(kind string) *Node {
	n.Kind = kind
	return n
}

// StartByte implements syntax.Node.
func (n *Node) StartByte() syntax.ByteOffset { return n.Span.Start }

// EndByte implements syntax.Node.
func (n *Node) EndByte() syntax.ByteOffset { return n.Span.End }

// IsNamed implements syntax.Node.
func (n *Node) IsNamed() bool { return n.Named }

// Parent implements syntax.Node.
func (n *Node) Parent() syntax.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildCount implements syntax.Node.
func (n *Node) ChildCount() int { return len(n.Children) }

// Child implements syntax.Node.
func (n *Node) Child(i int) syntax.Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// NamedChildCount implements syntax.Node.
func (n *Node) NamedChildCount() int {
	count := 0
	for _, c := range n.Children {
		if c.Named {
			count++
		}
	}
	return count
}

// NamedChild implements syntax.Node.
func (n *Node) NamedChild(i int) syntax.Node {
	count := 0
	for _, c := range n.Children {
		if c.Named {
			if count == i {
				return c
			}
			count++
		}
	}
	return nil
}

// Tree is a fake syntax tree implementing syntax.Tree.
type Tree struct {
	root *Node
}

// NewTree wires parent links throughout the node graph and returns a Tree
// rooted at root.
func NewTree(root *Node) *Tree {
	if root != nil {
		wireParents(root)
	}
	return &Tree{root: root}
}

func wireParents(n *Node) {
	for _, c := range n.Children {
		c.parent = n
		wireParents(c)
	}
}

// RootNode implements syntax.Tree.
func (t *Tree) RootNode() syntax.Node {
	if t.root == nil {
		return nil
	}
	return t.root
}

// NodeAt implements syntax.Tree.
func (t *Tree) NodeAt(offset syntax.ByteOffset) syntax.Node {
	return syntax.DescendantForRange(t.RootNode(), syntax.NewRange(offset, offset))
}

// SmallestCovering implements syntax.Tree.
func (t *Tree) SmallestCovering(r syntax.Range) syntax.Node {
	return syntax.DescendantForRange(t.RootNode(), r)
}
