package strategy

import (
	"sort"
	"sync"

	"github.com/dshills/treeselect/expand"
	"github.com/dshills/treeselect/syntax"
)

// Context carries the inputs of one expansion request.
type Context struct {
	// Selection is the current selection or bare cursor.
	Selection syntax.Selection

	// Tree is the buffer's syntax tree, or nil when the buffer has no
	// tree-backed parser attached.
	Tree syntax.Tree

	// Text is the buffer content the tree was parsed from.
	Text []byte
}

// Func computes a new selection from an expansion context. The boolean
// reports whether the strategy produced one; a declining strategy lets the
// host fall through to the next entry in the list.
type Func func(ctx Context) (syntax.Selection, bool)

// Strategy is a named selection-expansion step in a language's list.
type Strategy struct {
	// Name identifies the strategy within a language's list.
	Name string

	// Expand is the strategy function.
	Expand Func
}

// SyntaxStrategyName is the registered name of the syntax-tree strategy.
const SyntaxStrategyName = "syntax"

// Syntax returns the syntax-tree expansion strategy. It declines when the
// context has no tree or when expansion would not change the selection.
func Syntax() Strategy {
	return Strategy{
		Name: SyntaxStrategyName,
		Expand: func(ctx Context) (syntax.Selection, bool) {
			if ctx.Tree == nil {
				return ctx.Selection, false
			}
			next := expand.Expand(ctx.Selection, ctx.Tree, ctx.Text)
			if next.Equals(ctx.Selection) {
				return ctx.Selection, false
			}
			return next, true
		},
	}
}

// Registry holds ordered expansion strategies per language.
type Registry struct {
	mu     sync.RWMutex
	byLang map[string][]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byLang: make(map[string][]Strategy),
	}
}

// Append adds a strategy to the end of a language's list. A strategy with
// the same name replaces the existing entry in place, keeping its position.
func (r *Registry) Append(lang string, s Strategy) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byLang[lang]
	for i, existing := range list {
		if existing.Name == s.Name {
			list[i] = s
			return
		}
	}
	r.byLang[lang] = append(list, s)
}

// Remove deletes the named strategy from a language's list.
func (r *Registry) Remove(lang, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byLang[lang]
	for i, s := range list {
		if s.Name == name {
			r.byLang[lang] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Has returns true if the language's list contains the named strategy.
func (r *Registry) Has(lang, name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.byLang[lang] {
		if s.Name == name {
			return true
		}
	}
	return false
}

// For returns a copy of the language's strategy list in registration order.
func (r *Registry) For(lang string) []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byLang[lang]
	if len(list) == 0 {
		return nil
	}
	out := make([]Strategy, len(list))
	copy(out, list)
	return out
}

// Languages returns the languages with at least one registered strategy,
// sorted for deterministic iteration.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]string, 0, len(r.byLang))
	for lang, list := range r.byLang {
		if len(list) > 0 {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// Expand runs the language's strategies in order and returns the first
// produced selection. The boolean reports whether any strategy produced
// one; when none does, the input selection is returned unchanged.
func (r *Registry) Expand(lang string, ctx Context) (syntax.Selection, bool) {
	for _, s := range r.For(lang) {
		if s.Expand == nil {
			continue
		}
		if next, ok := s.Expand(ctx); ok {
			return next, true
		}
	}
	return ctx.Selection, false
}
