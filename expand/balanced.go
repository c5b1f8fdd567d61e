package expand

import (
	"errors"

	"github.com/dshills/treeselect/scan"
	"github.com/dshills/treeselect/syntax"
)

// IsBalanced reports whether [beg, end) is composed of whole lexical atoms,
// with no atom straddling the boundary. It scans the raw text with the scan
// package rather than consulting the syntax tree, because some grammars do
// not model brackets as a single balanced node.
//
// A scan that stops on an unmatched closing delimiter counts as balanced:
// that is the common shape where the enclosing unit's own closer lies just
// past end, and rejecting it would wrongly fail interiors that are in fact
// whole. Any other scan failure means the region is not balanced.
//
// IsBalanced is a pure function of (text, beg, end).
func IsBalanced(text []byte, beg, end syntax.ByteOffset) bool {
	if beg < 0 {
		beg = 0
	}
	if end > syntax.ByteOffset(len(text)) {
		end = syntax.ByteOffset(len(text))
	}

	pos := beg
	for {
		pos = scan.SkipSpace(text, pos, end)
		if pos >= end {
			return true
		}

		next, err := scan.Atom(text, pos)
		switch {
		case errors.Is(err, scan.ErrUnmatchedClose), errors.Is(err, scan.ErrNoAtom):
			return true
		case err != nil:
			return false
		case next > end:
			// The atom starts inside the region but finishes
			// outside it.
			return false
		}
		pos = next
	}
}
