// Package sitter adapts tree-sitter parse trees to the syntax.Tree query
// surface used by the rest of treeselect.
//
// The host owns the parser and the tree lifecycle: it parses, re-parses
// incrementally, and eventually closes the tree. Wrap only borrows the
// tree for queries and never frees it.
//
// Position and range queries defer to the tree-sitter runtime's own
// DescendantForByteRange, so tie-breaking at exact node boundaries follows
// tree-sitter's policy rather than the pure-Go policy documented on
// syntax.DescendantForRange.
package sitter
