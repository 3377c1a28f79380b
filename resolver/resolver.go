// Package resolver turns opaque semantic type handles into the normalized,
// acyclic documentation tree defined by package kind.
//
// Resolution is recursive and syntax-aware: every type expression is visited
// together with the declaration node it appears under, because the syntax
// carries information the semantic model has already erased (parenthesized
// groups, typeof queries, readonly operators, infer positions). The engine
// never inspects source text itself; it asks the model structural questions
// and assembles kind nodes from the answers.
//
// Each top-level call gets fresh guard state, so resolving the same symbol
// twice yields identical output regardless of call order.
package resolver

import (
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// Options configure a Resolver. The zero value is usable: everything is
// retained, no documentation is attached, and the default trivial-type
// predicate applies.
type Options struct {
	// Filter decides which dependency symbols and properties survive into
	// the output. Nil retains everything. Project-local symbols are never
	// filtered.
	Filter model.Filter

	// Docs supplies documentation per declaration. Nil attaches none.
	Docs model.DocExtractor

	// IsTrivial overrides the predicate that keeps dependency types with
	// uninteresting type arguments as shallow references. Nil uses
	// DefaultTrivial.
	IsTrivial func(model.Type) bool
}

// Resolver resolves types and symbols against a semantic model. It is
// stateless between calls and safe for concurrent use.
type Resolver struct {
	filter    model.Filter
	docs      model.DocExtractor
	isTrivial func(model.Type) bool
}

func New(opts Options) *Resolver {
	r := &Resolver{
		filter:    opts.Filter,
		docs:      opts.Docs,
		isTrivial: opts.IsTrivial,
	}
	if r.isTrivial == nil {
		r.isTrivial = DefaultTrivial
	}
	return r
}

// ResolveType resolves one type expression anchored at the given
// declaration node. The anchor may be nil when no syntax is available.
// A nil, nil return means the filter dropped the type.
func (r *Resolver) ResolveType(t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	return r.resolveType(newResolution(), t, enclosing)
}

// ResolveSymbol resolves one top-level symbol into its documentable node:
// Function, Component, Class, Interface, TypeAlias, Enum, Variable, or
// Namespace. A nil, nil return means the filter dropped the symbol.
func (r *Resolver) ResolveSymbol(sym model.Symbol) (kind.Kind, error) {
	return r.resolveSymbol(newResolution(), sym)
}

// resolution is the per-call guard state. Both sets are identity sets: a
// type or alias present in them is currently being expanded somewhere up
// the stack, and any re-entry must become a shallow reference instead of
// recursing. Entries are removed on the way out so siblings resolve fully.
type resolution struct {
	types   map[model.TypeID]struct{}
	aliases map[model.SymbolID]struct{}

	// skipAliasOnce lets a type alias declaration expand its own target:
	// the target type carries the alias symbol, which would otherwise
	// bounce straight back into a self-reference.
	skipAliasOnce model.SymbolID
}

func newResolution() *resolution {
	return &resolution{
		types:   make(map[model.TypeID]struct{}),
		aliases: make(map[model.SymbolID]struct{}),
	}
}

// enterType marks a type as mid-expansion. It reports false when the type
// is already being expanded, in which case the caller must not exit it.
func (rc *resolution) enterType(id model.TypeID) bool {
	if _, ok := rc.types[id]; ok {
		return false
	}
	rc.types[id] = struct{}{}
	return true
}

func (rc *resolution) exitType(id model.TypeID) {
	delete(rc.types, id)
}

func (rc *resolution) expandingType(id model.TypeID) bool {
	_, ok := rc.types[id]
	return ok
}

func (rc *resolution) enterAlias(id model.SymbolID) bool {
	if _, ok := rc.aliases[id]; ok {
		return false
	}
	rc.aliases[id] = struct{}{}
	return true
}

func (rc *resolution) exitAlias(id model.SymbolID) {
	delete(rc.aliases, id)
}

func (rc *resolution) expandingAlias(id model.SymbolID) bool {
	_, ok := rc.aliases[id]
	return ok
}
