// Package expand implements incremental, structure-aware expansion of a
// text selection using a host-supplied concrete syntax tree.
//
// Each call to Expand grows the current selection (or bare cursor) to the
// next larger meaningful span: the smallest enclosing syntactic unit, then
// its enclosing unit, and so on. When stepping outward, Expand first tries
// the enclosing unit's inner content — the span between its bounding
// delimiter tokens — and only falls back to the full unit when the interior
// is not a safe, balanced region.
//
// Expand is a total function: it never fails. Degenerate input (nil tree,
// no node at the position or range, root already selected) returns the
// input selection unchanged; that no-op is the documented fallback, not a
// swallowed error. Repeated application converges to the root node's span.
//
// The package is stateless. Every invocation is independent given the same
// tree, text, and selection; the host guarantees the tree and text are a
// consistent snapshot for the duration of one call.
package expand
