package syntax

// Node is a single node in a concrete syntax tree. Nodes are produced and
// owned entirely by the tree adapter; callers navigate them read-only.
//
// Named nodes are semantically meaningful units (expressions, statements);
// unnamed nodes are purely lexical tokens such as punctuation and
// delimiters. Parent links are navigation-only back-references and never
// imply ownership.
type Node interface {
	// StartByte returns the byte offset where the node begins.
	StartByte() ByteOffset

	// EndByte returns the byte offset where the node ends (exclusive).
	EndByte() ByteOffset

	// IsNamed reports whether this is a named node, as opposed to
	// anonymous syntax like punctuation.
	IsNamed() bool

	// Parent returns the node's parent, or nil for the root.
	Parent() Node

	// ChildCount returns the number of children, named and unnamed.
	ChildCount() int

	// Child returns the i-th child in source order, or nil if i is out
	// of range.
	Child(i int) Node

	// NamedChildCount returns the number of named children.
	NamedChildCount() int

	// NamedChild returns the i-th named child (skipping unnamed
	// children), or nil if i is out of range.
	NamedChild(i int) Node
}

// Tree is the query surface of a host-owned syntax tree. Implementations
// wrap whatever parser the host keeps alive; the library never constructs
// trees itself.
type Tree interface {
	// RootNode returns the tree's root node, or nil for an empty tree.
	RootNode() Node

	// NodeAt returns the smallest node whose span contains the given
	// offset, or nil if no node does. Ties at exact node boundaries are
	// resolved by the adapter's own policy.
	NodeAt(offset ByteOffset) Node

	// SmallestCovering returns the smallest node whose span fully
	// contains the given range, or nil if no node does.
	SmallestCovering(r Range) Node
}

// NodeRange returns the node's span as a Range.
func NodeRange(n Node) Range {
	return Range{Start: n.StartByte(), End: n.EndByte()}
}

// NthChild returns the i-th child of n in source order. Negative indices
// count from the end (-1 is the last child). If namedOnly is true, only
// named children are counted. Returns nil if i is out of range.
func NthChild(n Node, i int, namedOnly bool) Node {
	if n == nil {
		return nil
	}
	count := n.ChildCount()
	if namedOnly {
		count = n.NamedChildCount()
	}
	if i < 0 {
		i += count
	}
	if i < 0 || i >= count {
		return nil
	}
	if namedOnly {
		return n.NamedChild(i)
	}
	return n.Child(i)
}
