package resolver

import (
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// resolveMembers produces the ordered member list of an object shape: call
// signatures, construct signatures, index signatures, then properties.
// readonlyAll propagates a container-level readonly token onto every
// member.
func (r *Resolver) resolveMembers(rc *resolution, t model.Type, enclosing model.Declaration, readonlyAll bool) ([]kind.Kind, error) {
	var members []kind.Kind

	for _, sig := range t.CallSignatures() {
		cs, err := r.resolveSignature(rc, sig, enclosing)
		if err != nil {
			return nil, err
		}
		members = append(members, cs)
	}
	for _, sig := range t.ConstructSignatures() {
		cs, err := r.resolveSignature(rc, sig, enclosing)
		if err != nil {
			return nil, err
		}
		members = append(members, cs)
	}

	if idx := t.StringIndexType(); idx != nil {
		node, err := r.indexSignature(rc, "key", &kind.String{Node: kind.Node{Text: "string"}}, idx, readonlyAll)
		if err != nil {
			return nil, err
		}
		if node != nil {
			members = append(members, node)
		}
	}
	if idx := t.NumberIndexType(); idx != nil {
		node, err := r.indexSignature(rc, "index", &kind.Number{Node: kind.Node{Text: "number"}}, idx, readonlyAll)
		if err != nil {
			return nil, err
		}
		if node != nil {
			members = append(members, node)
		}
	}

	for _, p := range t.Properties() {
		node, err := r.resolveProperty(rc, p, t, enclosing, readonlyAll)
		if err != nil {
			return nil, err
		}
		if node != nil {
			members = append(members, node)
		}
	}
	return members, nil
}

func (r *Resolver) indexSignature(rc *resolution, keyName string, keyNode kind.Kind, valueType model.Type, readonly bool) (kind.Kind, error) {
	valNode, err := r.resolveType(rc, valueType, nil)
	if err != nil {
		return nil, err
	}
	if valNode == nil {
		return nil, nil
	}
	keyText := keyNode.Base().Text
	return &kind.IndexSignature{
		Node: kind.Node{Text: "[" + keyName + ": " + keyText + "]: " + valueType.Text(model.RenderDefault)},
		Parameter: &kind.Parameter{
			Node: kind.Node{Text: keyName + ": " + keyText},
			Doc:  kind.Doc{Name: keyName},
			Type: keyNode,
		},
		Type:       valNode,
		IsReadonly: readonly,
	}, nil
}

// resolveProperty resolves one property symbol of an object shape into a
// PropertySignature or MethodSignature. A nil, nil return means the filter
// dropped the property.
func (r *Resolver) resolveProperty(rc *resolution, p model.Symbol, parent model.Type, enclosing model.Declaration, readonlyAll bool) (kind.Kind, error) {
	decls := p.Declarations()
	if len(decls) == 0 {
		return nil, newMissingDeclarationError(p.Name(), enclosing)
	}
	d := locate(decls)

	// Property filtering only applies under dependency-owned shapes;
	// project members are always kept.
	if r.filter != nil {
		if parentSym := ownerSymbol(parent); parentSym != nil {
			pm := r.symbolMeta(parentSym, enclosing)
			if pm.InDependency {
				keep, err := r.filter.RetainProperty(pm.ModuleSpecifier, parentSym.Name(), p.Name())
				if err != nil {
					return nil, err
				}
				if !keep {
					return nil, nil
				}
			}
		}
	}

	pt := p.Type()
	if pt == nil {
		return nil, errors.AssertionFailedf("property %q has no type", p.Name())
	}

	if d.Class() == model.NodeMethodDecl {
		return r.resolveMethod(rc, p, pt, d, enclosing)
	}

	node, err := r.resolveType(rc, pt, d)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}

	optional := p.IsOptional() || d.HasQuestionToken()
	if optional {
		node = stripUndefined(node)
	}
	node = asComponentType(p.Name(), node)

	prop := &kind.PropertySignature{
		Node:       nodeFor(d),
		Doc:        kind.Doc{Name: p.Name()},
		Type:       node,
		IsOptional: optional,
		IsReadonly: readonlyAll || d.HasReadonlyModifier(),
	}
	r.attachDoc(&prop.Doc, d)
	return prop, nil
}

func (r *Resolver) resolveMethod(rc *resolution, p model.Symbol, pt model.Type, d model.Declaration, enclosing model.Declaration) (*kind.MethodSignature, error) {
	sigs := pt.CallSignatures()
	out := make([]*kind.CallSignature, 0, len(sigs))
	for _, sig := range sigs {
		cs, err := r.resolveSignature(rc, sig, enclosing)
		if err != nil {
			return nil, err
		}
		if cs.Text == "" {
			cs.Node = nodeFor(d)
		}
		out = append(out, cs)
	}
	m := &kind.MethodSignature{
		Node:       nodeFor(d),
		Doc:        kind.Doc{Name: p.Name()},
		Signatures: out,
	}
	r.attachDoc(&m.Doc, d)
	return m, nil
}

// attachDoc merges extracted documentation into a node's doc fields. The
// extractor's output is taken verbatim.
func (r *Resolver) attachDoc(doc *kind.Doc, d model.Declaration) {
	if r.docs == nil || d == nil {
		return
	}
	if md, ok := r.docs.DocFor(d); ok {
		doc.Description = md.Description
		doc.Tags = md.Tags
	}
}

func nodeFor(d model.Declaration) kind.Node {
	if d == nil {
		return kind.Node{}
	}
	return kind.Node{Text: d.Text(), Path: d.Path(), Position: d.Position()}
}
