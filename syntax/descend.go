package syntax

// DescendantForRange returns the smallest node under root whose span fully
// contains r, or nil if root's own span does not contain it. An empty range
// is treated as a cursor position: a node contains it when the position
// falls inside the node's half-open span, so a cursor sitting exactly at a
// node's end belongs to the following node.
//
// When several children could contain the range (zero-width nodes at the
// same boundary), the first child in source order wins. This is the
// tie-break policy used by pure-Go adapters such as syntaxtest; the sitter
// adapter delegates tie-breaking to the tree-sitter runtime instead.
func DescendantForRange(root Node, r Range) Node {
	if root == nil || !r.IsValid() || !nodeCovers(root, r) {
		return nil
	}

	cur := root
	for {
		var next Node
		for i := 0; i < cur.ChildCount(); i++ {
			c := cur.Child(i)
			if c != nil && nodeCovers(c, r) {
				next = c
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// nodeCovers reports whether n's span contains r. Empty ranges use
// half-open containment; non-empty ranges require full inclusion.
func nodeCovers(n Node, r Range) bool {
	if r.IsEmpty() {
		return n.StartByte() <= r.Start && r.Start < n.EndByte()
	}
	return n.StartByte() <= r.Start && r.End <= n.EndByte()
}
