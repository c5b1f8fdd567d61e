package expand

import "github.com/dshills/treeselect/syntax"

// Expand computes the next larger selection for sel against the given tree
// and text. Returned selections are always forward (anchor <= head).
//
// With a bare cursor, Expand selects the full span of the smallest node
// containing the cursor. With an active selection, it selects the smallest
// node strictly containing the selection; when the selection already equals
// that node's span, it climbs to the nearest ancestor with a larger span
// and selects either that ancestor's inner content (when the ancestor is
// delimiter-bounded and the interior is balanced) or its full span.
//
// Expand never fails. If nothing encloses the input, it returns sel
// unchanged.
func Expand(sel syntax.Selection, tree syntax.Tree, text []byte) syntax.Selection {
	if tree == nil {
		return sel
	}

	if sel.IsEmpty() {
		node := tree.NodeAt(sel.Head)
		if node == nil {
			return sel
		}
		return syntax.NewRangeSelection(syntax.NodeRange(node))
	}

	r := sel.Range()
	cover := tree.SmallestCovering(r)
	if cover == nil {
		return sel
	}

	// Grow to the covering node when it is strictly larger than the
	// current selection.
	cr := syntax.NodeRange(cover)
	if cr.Start < r.Start || r.End < cr.End {
		return syntax.NewRangeSelection(cr)
	}

	// The cover is exactly selected already. Climb past any wrapper
	// ancestors that share its span to the first strictly larger one.
	super := superNode(cover)
	if super == nil {
		return sel
	}

	if inner, ok := innerRange(super); ok && inner.ContainsRange(r) && IsBalanced(text, inner.Start, inner.End) {
		return syntax.NewRangeSelection(inner)
	}
	return syntax.NewRangeSelection(syntax.NodeRange(super))
}

// superNode returns the nearest ancestor of n whose span differs from n's
// span, or nil when no ancestor is strictly larger. Grammars with
// passthrough nodes produce ancestor chains sharing one span; those are
// skipped in a single walk.
func superNode(n syntax.Node) syntax.Node {
	r := syntax.NodeRange(n)
	for p := n.Parent(); p != nil; p = p.Parent() {
		if syntax.NodeRange(p) != r {
			return p
		}
	}
	return nil
}

// innerRange returns the span from the start of n's first named child to
// the end of its last named child, provided n is delimiter-bounded: at
// least two named children, with an unnamed token on each end. The
// classification is purely named/unnamed; no grammar-specific delimiter
// knowledge is involved.
func innerRange(n syntax.Node) (syntax.Range, bool) {
	if n.NamedChildCount() < 2 {
		return syntax.Range{}, false
	}
	first := syntax.NthChild(n, 0, false)
	last := syntax.NthChild(n, -1, false)
	if first == nil || last == nil || first.IsNamed() || last.IsNamed() {
		return syntax.Range{}, false
	}
	firstNamed := syntax.NthChild(n, 0, true)
	lastNamed := syntax.NthChild(n, -1, true)
	return syntax.NewRange(firstNamed.StartByte(), lastNamed.EndByte()), true
}
