// Package syntax defines the data model shared by all of treeselect: byte
// ranges, anchor/head selections, and the read-only query surface of a
// host-owned concrete syntax tree.
//
// The syntax tree is an injected capability, not owned data. A host editor
// keeps a tree alive through an incremental parser and exposes it to this
// library through the Tree and Node interfaces; the library only reads node
// spans and named/unnamed classification, and never mutates or allocates
// nodes. The sitter package adapts real tree-sitter trees to these
// interfaces, and syntaxtest provides a literal fake for tests.
//
// Position Types:
//
//   - ByteOffset: raw byte position in the text
//   - Range: half-open [Start, End) byte range
//   - Selection: anchor/head pair; Anchor == Head is a bare cursor
//
// Thread Safety:
//
// Range and Selection are immutable value types and safe for concurrent
// use. Thread safety of Tree and Node implementations is the adapter's
// concern; this package assumes a consistent snapshot per call.
package syntax
