package resolver

import (
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// DefaultTrivial reports types whose expansion would add nothing a reader
// cannot see from the name: primitives, literals, type parameters, and
// arrays of trivial elements.
func DefaultTrivial(t model.Type) bool {
	if t == nil {
		return true
	}
	switch t.Class() {
	case model.ClassString, model.ClassNumber, model.ClassBoolean,
		model.ClassSymbol, model.ClassBigInt, model.ClassNull,
		model.ClassUndefined, model.ClassVoid, model.ClassAny,
		model.ClassUnknown, model.ClassNever,
		model.ClassTypeParameter, model.ClassObjectKeyword:
		return true
	case model.ClassArray:
		return DefaultTrivial(t.Element())
	}
	return false
}

// referenceTarget returns the symbol that makes a type a candidate for the
// expand-or-reference decision, or nil for purely structural types that
// always resolve in place.
func referenceTarget(t model.Type) model.Symbol {
	if a := t.AliasSymbol(); a != nil {
		return a
	}
	switch t.Class() {
	case model.ClassObject, model.ClassEnum:
		return t.Symbol()
	}
	return nil
}

// shouldExpand decides between expanding a named type in place and keeping
// it as a shallow reference. The rules, in order:
//
//  1. Anything currently mid-expansion (by type identity or alias
//     identity) stays a reference; this is what keeps the output acyclic.
//  2. An alias that wraps an array is transparent regardless of export.
//  3. Types still containing free type parameters stay references; their
//     expansion would be a formula, not a shape.
//  4. Checker-synthesized symbols with no declarations expand; there is
//     nothing to point a reference at.
//  5. Project-local symbols expand exactly when unexported: an exported
//     symbol has its own documentation to link to.
//  6. Dependency and global symbols stay references unless instantiated
//     with at least one local unexported type argument, and none of the
//     arguments is trivial.
func (r *Resolver) shouldExpand(rc *resolution, t model.Type, sym model.Symbol, meta symbolMeta, enclosing model.Declaration) bool {
	if rc.expandingType(t.ID()) {
		return false
	}
	if rc.expandingAlias(sym.ID()) {
		return false
	}
	if t.AliasSymbol() != nil && t.Class() == model.ClassArray {
		return true
	}
	if containsFreeTypeParameter(t, nil) {
		return false
	}
	if meta.Virtual {
		return true
	}
	if meta.InProject {
		return !meta.Exported
	}

	args := t.TypeArguments()
	if len(args) == 0 {
		return false
	}
	expand := false
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if r.isTrivial(arg) {
			return false
		}
		am := r.symbolMeta(ownerSymbol(arg), enclosing)
		if am.InProject && !am.Exported {
			expand = true
		}
	}
	return expand
}

// referenceNode builds the shallow pointer form of a named type. Type
// arguments are still resolved recursively; the guard entry around them
// keeps self-applications finite.
func (r *Resolver) referenceNode(rc *resolution, t model.Type, sym model.Symbol, meta symbolMeta, enclosing model.Declaration) (kind.Kind, error) {
	ref := &kind.TypeReference{
		Node: kind.Node{Text: t.Text(model.RenderDefault)},
		Name: sym.Name(),
	}
	if d := meta.Declaration; d != nil {
		ref.Path = d.Path()
		ref.Position = d.Position()
	}
	if !meta.InProject {
		ref.ModuleSpecifier = meta.ModuleSpecifier
	}

	if entered := rc.enterType(t.ID()); entered {
		defer rc.exitType(t.ID())
	}
	for _, arg := range t.TypeArguments() {
		if arg == nil {
			continue
		}
		node, err := r.resolveType(rc, arg, enclosing)
		if err != nil {
			return nil, err
		}
		if node != nil {
			ref.TypeArguments = append(ref.TypeArguments, node)
		}
	}
	return ref, nil
}

// containsFreeTypeParameter walks a type's structure looking for an
// unsubstituted type parameter. The seen set guards recursive types.
func containsFreeTypeParameter(t model.Type, seen map[model.TypeID]bool) bool {
	if t == nil {
		return false
	}
	if seen == nil {
		seen = make(map[model.TypeID]bool)
	}
	if seen[t.ID()] {
		return false
	}
	seen[t.ID()] = true

	if t.Class() == model.ClassTypeParameter {
		return true
	}
	for _, a := range t.TypeArguments() {
		if containsFreeTypeParameter(a, seen) {
			return true
		}
	}
	for _, m := range t.UnionMembers() {
		if containsFreeTypeParameter(m, seen) {
			return true
		}
	}
	for _, m := range t.IntersectionMembers() {
		if containsFreeTypeParameter(m, seen) {
			return true
		}
	}
	for _, e := range t.TupleElements() {
		if containsFreeTypeParameter(e.Type, seen) {
			return true
		}
	}
	if containsFreeTypeParameter(t.Element(), seen) {
		return true
	}
	if p := t.Conditional(); p != nil {
		if containsFreeTypeParameter(p.Check, seen) ||
			containsFreeTypeParameter(p.Extends, seen) ||
			containsFreeTypeParameter(p.True, seen) ||
			containsFreeTypeParameter(p.False, seen) {
			return true
		}
	}
	if p := t.Mapped(); p != nil {
		if containsFreeTypeParameter(p.Constraint, seen) ||
			containsFreeTypeParameter(p.Value, seen) {
			return true
		}
	}
	if p := t.IndexedAccess(); p != nil {
		if containsFreeTypeParameter(p.Object, seen) ||
			containsFreeTypeParameter(p.Index, seen) {
			return true
		}
	}
	if p := t.Operator(); p != nil {
		if containsFreeTypeParameter(p.Operand, seen) {
			return true
		}
	}
	for _, sig := range t.CallSignatures() {
		for _, prm := range sig.Parameters() {
			pt := prm.DeclaredType()
			if pt == nil {
				pt = prm.ContextualType()
			}
			if containsFreeTypeParameter(pt, seen) {
				return true
			}
		}
		if containsFreeTypeParameter(sig.ReturnType(), seen) {
			return true
		}
	}
	return false
}

// touchesProject reports whether any symbol reachable through the type's
// structure belongs to the documented project. Mapped types that touch
// project symbols are materialized rather than kept as formulas.
func (r *Resolver) touchesProject(t model.Type, enclosing model.Declaration, seen map[model.TypeID]bool) bool {
	if t == nil {
		return false
	}
	if seen == nil {
		seen = make(map[model.TypeID]bool)
	}
	if seen[t.ID()] {
		return false
	}
	seen[t.ID()] = true

	if sym := ownerSymbol(t); sym != nil {
		if m := r.symbolMeta(sym, enclosing); m.InProject {
			return true
		}
	}
	for _, a := range t.TypeArguments() {
		if r.touchesProject(a, enclosing, seen) {
			return true
		}
	}
	for _, m := range t.UnionMembers() {
		if r.touchesProject(m, enclosing, seen) {
			return true
		}
	}
	for _, m := range t.IntersectionMembers() {
		if r.touchesProject(m, enclosing, seen) {
			return true
		}
	}
	if r.touchesProject(t.Element(), enclosing, seen) {
		return true
	}
	if p := t.IndexedAccess(); p != nil {
		if r.touchesProject(p.Object, enclosing, seen) || r.touchesProject(p.Index, enclosing, seen) {
			return true
		}
	}
	if p := t.Operator(); p != nil {
		if r.touchesProject(p.Operand, enclosing, seen) {
			return true
		}
	}
	if p := t.Mapped(); p != nil {
		if r.touchesProject(p.Constraint, enclosing, seen) || r.touchesProject(p.Value, enclosing, seen) {
			return true
		}
	}
	return false
}
