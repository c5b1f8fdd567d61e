// Package strategy provides the registration surface between a host editor
// and the expansion algorithms in this library.
//
// A host keeps one ordered list of expansion strategies per language. Each
// expansion request walks the list in order and takes the first strategy
// that produces a new selection. Syntax returns this library's entry point
// as such a strategy, gated on whether the current buffer actually has a
// tree-backed parser attached: with no tree, it declines so the host falls
// through to its other strategies.
//
// Which languages get the syntax strategy can be driven by a TOML
// configuration file (LoadConfig, Config.Apply) and kept live with Watch,
// which re-applies the file whenever it changes on disk.
//
// Registry is safe for concurrent use.
package strategy
