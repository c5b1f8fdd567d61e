// Package scan provides a generic lexical atom scanner over raw text,
// independent of any syntax tree.
//
// An atom is one complete lexical unit: a fully matched bracketed group
// (with nesting), a double-quoted string, or a maximal run of plain symbol
// bytes. The scanner exists for whole-unit navigation and balance checking;
// it deliberately knows nothing about any particular grammar, because some
// grammars' trees do not model brackets as a single balanced node.
//
// The error taxonomy is part of the contract: ErrUnmatchedClose (a closing
// delimiter with nothing left to close) is distinguished from
// ErrUnterminated and ErrMismatched so that callers can treat the
// "ends prematurely" shape as a distinct, non-failure condition.
package scan
