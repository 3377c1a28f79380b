package resolver

import (
	"strings"

	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/logger"
	"github.com/teranos/typedoc/model"
)

// resolveSymbol dispatches a top-level symbol on its authoritative
// declaration's class.
func (r *Resolver) resolveSymbol(rc *resolution, sym model.Symbol) (kind.Kind, error) {
	if sym == nil {
		return nil, errors.AssertionFailedf("resolveSymbol called with nil symbol")
	}
	decls := sym.Declarations()
	if len(decls) == 0 {
		return nil, newMissingDeclarationError(sym.Name(), nil)
	}
	d := locate(decls)

	logger.Debugw("resolving symbol",
		logger.FieldSymbol, sym.Name(),
		logger.FieldPath, d.Path())

	switch d.Class() {
	case model.NodeTypeAliasDecl:
		return r.resolveTypeAliasDecl(rc, sym, d)
	case model.NodeInterfaceDecl:
		return r.resolveInterfaceDecl(rc, sym, d)
	case model.NodeClassDecl:
		return r.resolveClassDecl(rc, sym, d)
	case model.NodeEnumDecl:
		return r.resolveEnumDecl(rc, sym, d)
	case model.NodeFunctionDecl, model.NodeFunctionOverload:
		return r.resolveFunctionDecl(rc, sym, d)
	case model.NodeVariableDecl:
		return r.resolveVariableDecl(rc, sym, d)
	case model.NodeNamespaceDecl:
		return r.resolveNamespaceDecl(rc, sym, d)
	}

	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}
	return r.resolveType(rc, t, d)
}

func (r *Resolver) resolveTypeAliasDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	target := sym.Type()
	if target == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}

	node := &kind.TypeAlias{
		Node: nodeFor(d),
		Doc:  kind.Doc{Name: sym.Name()},
	}
	r.attachDoc(&node.Doc, d)

	tps, err := r.resolveTypeParameters(rc, sym.TypeParameters())
	if err != nil {
		return nil, err
	}
	node.TypeParameters = tps

	// Expanding the alias's own target must not bounce into a
	// self-reference; deeper self-references still do.
	if entered := rc.enterAlias(sym.ID()); entered {
		defer rc.exitAlias(sym.ID())
	}
	rc.skipAliasOnce = sym.ID()
	resolved, err := r.resolveType(rc, target, d)
	rc.skipAliasOnce = ""
	if err != nil {
		return nil, err
	}
	node.Type = resolved
	return node, nil
}

func (r *Resolver) resolveInterfaceDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}
	if entered := rc.enterType(t.ID()); entered {
		defer rc.exitType(t.ID())
	}

	node := &kind.Interface{
		Node: nodeFor(d),
		Doc:  kind.Doc{Name: sym.Name()},
	}
	r.attachDoc(&node.Doc, d)

	tps, err := r.resolveTypeParameters(rc, sym.TypeParameters())
	if err != nil {
		return nil, err
	}
	node.TypeParameters = tps

	members, err := r.resolveMembers(rc, t, d, false)
	if err != nil {
		return nil, err
	}
	node.Members = members
	return node, nil
}

func (r *Resolver) resolveClassDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}
	if entered := rc.enterType(t.ID()); entered {
		defer rc.exitType(t.ID())
	}

	cls := &kind.Class{
		Node: nodeFor(d),
		Doc:  kind.Doc{Name: sym.Name()},
	}
	r.attachDoc(&cls.Doc, d)

	tps, err := r.resolveTypeParameters(rc, sym.TypeParameters())
	if err != nil {
		return nil, err
	}
	cls.TypeParameters = tps

	if ext := d.Extends(); ext != nil {
		node, err := r.resolveType(rc, ext, nil)
		if err != nil {
			return nil, err
		}
		cls.Extends = node
	}
	for _, impl := range d.Implements() {
		node, err := r.resolveType(rc, impl, nil)
		if err != nil {
			return nil, err
		}
		if node != nil {
			cls.Implements = append(cls.Implements, node)
		}
	}

	if ctors := t.ConstructSignatures(); len(ctors) > 0 {
		cs, err := r.resolveSignature(rc, ctors[0], d)
		if err != nil {
			return nil, err
		}
		cls.Constructor = cs
	}

	for _, p := range t.Properties() {
		pd := locate(p.Declarations())
		if pd != nil && pd.Class() == model.NodeAccessorDecl {
			acc, err := r.resolveAccessor(rc, p, pd)
			if err != nil {
				return nil, err
			}
			if acc != nil {
				cls.Accessors = append(cls.Accessors, acc)
			}
			continue
		}
		node, err := r.resolveProperty(rc, p, t, d, false)
		if err != nil {
			return nil, err
		}
		switch n := node.(type) {
		case *kind.MethodSignature:
			cls.Methods = append(cls.Methods, n)
		case *kind.PropertySignature:
			cls.Properties = append(cls.Properties, n)
		}
	}
	return cls, nil
}

// resolveAccessor handles get and set accessors. The declaration text
// distinguishes the two; a setter's parameter list comes from its call
// signature.
func (r *Resolver) resolveAccessor(rc *resolution, p model.Symbol, d model.Declaration) (*kind.ClassAccessor, error) {
	acc := &kind.ClassAccessor{
		Node:     nodeFor(d),
		Doc:      kind.Doc{Name: p.Name()},
		Modifier: "get",
	}
	if strings.HasPrefix(strings.TrimSpace(d.Text()), "set ") {
		acc.Modifier = "set"
	}
	r.attachDoc(&acc.Doc, d)

	pt := p.Type()
	if pt == nil {
		return acc, nil
	}
	if acc.Modifier == "set" {
		if sigs := pt.CallSignatures(); len(sigs) > 0 {
			cs, err := r.resolveSignature(rc, sigs[0], d)
			if err != nil {
				return nil, err
			}
			acc.Parameters = cs.Parameters
			return acc, nil
		}
	}
	node, err := r.resolveType(rc, pt, d)
	if err != nil {
		return nil, err
	}
	acc.Type = node
	return acc, nil
}

func (r *Resolver) resolveEnumDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}

	e := &kind.Enum{
		Node:    nodeFor(d),
		Doc:     kind.Doc{Name: sym.Name()},
		Members: []*kind.EnumMember{},
	}
	r.attachDoc(&e.Doc, d)

	for _, m := range t.Properties() {
		md := locate(m.Declarations())
		mem := &kind.EnumMember{
			Node: nodeFor(md),
			Doc:  kind.Doc{Name: m.Name()},
		}
		if mt := m.Type(); mt != nil {
			if lit, ok := mt.Literal(); ok {
				mem.Value = lit.Value
			}
		}
		r.attachDoc(&mem.Doc, md)
		e.Members = append(e.Members, mem)
	}
	return e, nil
}

func (r *Resolver) resolveFunctionDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}
	sigs := t.CallSignatures()
	out := make([]*kind.CallSignature, 0, len(sigs))
	for _, sig := range sigs {
		cs, err := r.resolveSignature(rc, sig, d)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}

	node := nodeFor(d)
	doc := kind.Doc{Name: sym.Name()}
	r.attachDoc(&doc, d)

	if isComponentFunction(sym.Name(), out) {
		return &kind.Component{Node: node, Doc: doc, Signatures: out}, nil
	}
	return &kind.Function{Node: node, Doc: doc, Signatures: out}, nil
}

func (r *Resolver) resolveVariableDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	t := sym.Type()
	if t == nil {
		return nil, newMissingDeclarationError(sym.Name(), d)
	}
	resolved, err := r.resolveType(rc, t, d)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, nil
	}

	node := nodeFor(d)
	doc := kind.Doc{Name: sym.Name()}
	r.attachDoc(&doc, d)

	// Function-typed values document as functions, not variables.
	if ft, ok := resolved.(*kind.FunctionType); ok {
		sigs := []*kind.CallSignature{signatureOf(ft.Node, ft.Parameters, ft.ReturnType, ft.TypeParameters, ft.IsAsync, ft.IsGenerator)}
		if isComponentFunction(sym.Name(), sigs) {
			return &kind.Component{Node: node, Doc: doc, Signatures: sigs}, nil
		}
		return &kind.Function{Node: node, Doc: doc, Signatures: sigs}, nil
	}
	if ct, ok := resolved.(*kind.ComponentType); ok {
		sigs := []*kind.CallSignature{signatureOf(ct.Node, ct.Parameters, ct.ReturnType, ct.TypeParameters, ct.IsAsync, ct.IsGenerator)}
		return &kind.Component{Node: node, Doc: doc, Signatures: sigs}, nil
	}

	return &kind.Variable{Node: node, Doc: doc, Type: resolved}, nil
}

func signatureOf(n kind.Node, params []*kind.Parameter, ret kind.Kind, tps []*kind.TypeParameter, isAsync, isGenerator bool) *kind.CallSignature {
	if params == nil {
		params = []*kind.Parameter{}
	}
	return &kind.CallSignature{
		Node:           n,
		Parameters:     params,
		ReturnType:     ret,
		TypeParameters: tps,
		IsAsync:        isAsync,
		IsGenerator:    isGenerator,
	}
}

func (r *Resolver) resolveNamespaceDecl(rc *resolution, sym model.Symbol, d model.Declaration) (kind.Kind, error) {
	ns := &kind.Namespace{
		Node:  nodeFor(d),
		Doc:   kind.Doc{Name: sym.Name()},
		Types: []kind.Kind{},
	}
	r.attachDoc(&ns.Doc, d)

	for _, child := range sym.Exports() {
		node, err := r.resolveSymbol(rc, child)
		if err != nil {
			return nil, err
		}
		if node != nil {
			ns.Types = append(ns.Types, node)
		}
	}
	return ns, nil
}
