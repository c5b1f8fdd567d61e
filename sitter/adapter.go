package sitter

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/dshills/treeselect/syntax"
)

// Tree wraps a tree-sitter Tree as a syntax.Tree. The underlying tree
// remains owned by the caller, who is responsible for closing it.
type Tree struct {
	raw *tree_sitter.Tree
}

// Wrap borrows a tree-sitter tree for queries. A nil tree is allowed and
// yields a Tree whose queries all return nil.
func Wrap(raw *tree_sitter.Tree) *Tree {
	return &Tree{raw: raw}
}

// Raw returns the underlying tree-sitter Tree.
func (t *Tree) Raw() *tree_sitter.Tree {
	if t == nil {
		return nil
	}
	return t.raw
}

// RootNode implements syntax.Tree.
func (t *Tree) RootNode() syntax.Node {
	return wrapNode(t.rootRaw())
}

// NodeAt implements syntax.Tree. Offsets outside the root's half-open span
// have no node and return nil.
func (t *Tree) NodeAt(offset syntax.ByteOffset) syntax.Node {
	root := t.rootRaw()
	if root == nil {
		return nil
	}
	if offset < syntax.ByteOffset(root.StartByte()) || offset >= syntax.ByteOffset(root.EndByte()) {
		return nil
	}
	return wrapNode(root.DescendantForByteRange(uint(offset), uint(offset)))
}

// SmallestCovering implements syntax.Tree.
func (t *Tree) SmallestCovering(r syntax.Range) syntax.Node {
	root := t.rootRaw()
	if root == nil || !r.IsValid() || r.Start < 0 {
		return nil
	}
	if r.Start < syntax.ByteOffset(root.StartByte()) || r.End > syntax.ByteOffset(root.EndByte()) {
		return nil
	}
	return wrapNode(root.DescendantForByteRange(uint(r.Start), uint(r.End)))
}

func (t *Tree) rootRaw() *tree_sitter.Node {
	if t == nil || t.raw == nil {
		return nil
	}
	return t.raw.RootNode()
}

// node wraps a tree-sitter Node as a syntax.Node.
type node struct {
	raw *tree_sitter.Node
}

func wrapNode(raw *tree_sitter.Node) syntax.Node {
	if raw == nil {
		return nil
	}
	return &node{raw: raw}
}

// Raw returns the underlying tree-sitter Node.
func (n *node) Raw() *tree_sitter.Node { return n.raw }

// StartByte implements syntax.Node.
func (n *node) StartByte() syntax.ByteOffset { return syntax.ByteOffset(n.raw.StartByte()) }

// EndByte implements syntax.Node.
func (n *node) EndByte() syntax.ByteOffset { return syntax.ByteOffset(n.raw.EndByte()) }

// IsNamed implements syntax.Node.
func (n *node) IsNamed() bool { return n.raw.IsNamed() }

// Parent implements syntax.Node.
func (n *node) Parent() syntax.Node { return wrapNode(n.raw.Parent()) }

// ChildCount implements syntax.Node.
func (n *node) ChildCount() int { return int(n.raw.ChildCount()) }

// Child implements syntax.Node.
func (n *node) Child(i int) syntax.Node {
	if i < 0 || uint(i) >= n.raw.ChildCount() {
		return nil
	}
	return wrapNode(n.raw.Child(uint(i)))
}

// NamedChildCount implements syntax.Node.
func (n *node) NamedChildCount() int { return int(n.raw.NamedChildCount()) }

// NamedChild implements syntax.Node.
func (n *node) NamedChild(i int) syntax.Node {
	if i < 0 || uint(i) >= n.raw.NamedChildCount() {
		return nil
	}
	return wrapNode(n.raw.NamedChild(uint(i)))
}
