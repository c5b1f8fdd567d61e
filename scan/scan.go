package scan

import (
	"errors"

	"github.com/dshills/treeselect/syntax"
)

// Errors returned by Atom.
var (
	// ErrNoAtom indicates there is no text left to scan.
	ErrNoAtom = errors.New("no atom to scan")

	// ErrUnmatchedClose indicates a closing delimiter with nothing left
	// to close. Balance checking treats this as a success condition.
	ErrUnmatchedClose = errors.New("unmatched closing delimiter")

	// ErrUnterminated indicates a group or string that never closes.
	ErrUnterminated = errors.New("unterminated group")

	// ErrMismatched indicates a closing delimiter that does not match
	// the innermost open delimiter.
	ErrMismatched = errors.New("mismatched closing delimiter")
)

// SkipSpace advances pos past whitespace without crossing limit.
func SkipSpace(text []byte, pos, limit syntax.ByteOffset) syntax.ByteOffset {
	if pos < 0 {
		pos = 0
	}
	if limit > syntax.ByteOffset(len(text)) {
		limit = syntax.ByteOffset(len(text))
	}
	for pos < limit && isSpace(text[pos]) {
		pos++
	}
	return pos
}

// Atom scans exactly one complete lexical atom forward from pos and returns
// the offset just past it. It does not skip leading whitespace; callers use
// SkipSpace first. On error the returned offset is where scanning stopped.
//
// Atom either advances past pos or returns a non-nil error.
func Atom(text []byte, pos syntax.ByteOffset) (syntax.ByteOffset, error) {
	if pos < 0 {
		pos = 0
	}
	if pos >= syntax.ByteOffset(len(text)) {
		return pos, ErrNoAtom
	}

	switch b := text[pos]; {
	case isClose(b):
		return pos, ErrUnmatchedClose
	case isOpen(b):
		return scanGroup(text, pos)
	case b == '"':
		return scanString(text, pos)
	default:
		return scanSymbol(text, pos), nil
	}
}

// scanGroup scans a bracketed group starting at an opening delimiter.
// Nested groups of any bracket kind and embedded strings are consumed.
func scanGroup(text []byte, pos syntax.ByteOffset) (syntax.ByteOffset, error) {
	n := syntax.ByteOffset(len(text))
	var stack []byte

	i := pos
	for i < n {
		switch b := text[i]; {
		case b == '"':
			end, err := scanString(text, i)
			if err != nil {
				return end, err
			}
			i = end
		case isOpen(b):
			stack = append(stack, closerFor(b))
			i++
		case isClose(b):
			if b != stack[len(stack)-1] {
				return i, ErrMismatched
			}
			stack = stack[:len(stack)-1]
			i++
			if len(stack) == 0 {
				return i, nil
			}
		default:
			i++
		}
	}
	return i, ErrUnterminated
}

// scanString scans a double-quoted string starting at the opening quote.
// Backslash escapes the following byte.
func scanString(text []byte, pos syntax.ByteOffset) (syntax.ByteOffset, error) {
	n := syntax.ByteOffset(len(text))
	i := pos + 1
	for i < n {
		switch text[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1, nil
		default:
			i++
		}
	}
	return n, ErrUnterminated
}

// scanSymbol scans a maximal run of plain symbol bytes. The first byte is
// known not to be whitespace, a bracket, or a quote.
func scanSymbol(text []byte, pos syntax.ByteOffset) syntax.ByteOffset {
	n := syntax.ByteOffset(len(text))
	i := pos + 1
	for i < n && !isBoundary(text[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func isOpen(b byte) bool {
	switch b {
	case '(', '[', '{':
		return true
	}
	return false
}

func isClose(b byte) bool {
	switch b {
	case ')', ']', '}':
		return true
	}
	return false
}

func closerFor(b byte) byte {
	switch b {
	case '(':
		return ')'
	case '[':
		return ']'
	default:
		return '}'
	}
}

func isBoundary(b byte) bool {
	return isSpace(b) || isOpen(b) || isClose(b) || b == '"'
}
