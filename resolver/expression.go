package resolver

import (
	"encoding/json"
	"strings"

	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// resolveType dispatches one type expression against its syntactic anchor.
// A nil, nil return means the filter dropped the type.
func (r *Resolver) resolveType(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	if t == nil {
		return nil, errors.AssertionFailedf("resolveType called with nil type")
	}

	// Syntax unwraps come first: the anchor can change what the expression
	// means before the semantic class is even consulted.
	if enclosing != nil {
		switch enclosing.Class() {
		case model.NodeParenthesized:
			return r.resolveType(rc, t, enclosing.Inner())
		case model.NodeTypeQuery:
			if q := enclosing.QueriedType(); q != nil {
				return r.resolveType(rc, q, nil)
			}
			return r.resolveType(rc, t, nil)
		}
	}

	// readonly T[] and readonly [..]: strip the operator, resolve the
	// operand, and carry readonly as a flag on the result.
	if op := t.Operator(); op != nil && op.Operator == "readonly" {
		node, err := r.resolveType(rc, op.Operand, innerOf(enclosing))
		if err != nil || node == nil {
			return node, err
		}
		markReadonly(node)
		return node, nil
	}

	if ia := t.IndexedAccess(); ia != nil {
		return r.resolveIndexedAccess(rc, t, ia, enclosing)
	}

	// Free and inferred type parameters surface as name references; their
	// shape lives at the declaration that introduced them.
	if tp := t.TypeParam(); tp != nil {
		return &kind.TypeReference{
			Node: kind.Node{Text: t.Text(model.RenderDefault)},
			Name: tp.Name,
		}, nil
	}

	// The expand-or-reference decision for named types. An expansion marks
	// the type (and its alias, if any) mid-resolution for everything below
	// it in the tree.
	skipAlias := rc.skipAliasOnce
	rc.skipAliasOnce = ""
	sym := referenceTarget(t)
	if sym != nil && skipAlias != "" && sym.ID() == skipAlias {
		sym = nil
		if entered := rc.enterType(t.ID()); entered {
			defer rc.exitType(t.ID())
		}
	}
	if sym != nil {
		meta := r.symbolMeta(sym, enclosing)
		if meta.InDependency && r.filter != nil {
			keep, err := r.filter.RetainType(meta.ModuleSpecifier, sym.Name())
			if err != nil {
				return nil, err
			}
			if !keep {
				return nil, nil
			}
		}
		if !r.shouldExpand(rc, t, sym, meta, enclosing) {
			return r.referenceNode(rc, t, sym, meta, enclosing)
		}
		if entered := rc.enterType(t.ID()); entered {
			defer rc.exitType(t.ID())
		}
		if a := t.AliasSymbol(); a != nil {
			if entered := rc.enterAlias(a.ID()); entered {
				defer rc.exitAlias(a.ID())
			}
		}
	}

	switch t.Class() {
	case model.ClassString, model.ClassNumber, model.ClassBoolean,
		model.ClassSymbol, model.ClassBigInt, model.ClassNull,
		model.ClassUndefined, model.ClassVoid, model.ClassAny,
		model.ClassUnknown, model.ClassNever:
		return resolvePrimitive(t), nil

	case model.ClassTuple:
		return r.resolveTuple(rc, t, enclosing)

	case model.ClassArray:
		return r.resolveArray(rc, t, enclosing)

	case model.ClassUnion:
		return r.resolveUnion(rc, t, enclosing)

	case model.ClassIntersection:
		return r.resolveIntersection(rc, t, enclosing)

	case model.ClassConditional:
		return r.resolveConditional(rc, t, enclosing)

	case model.ClassOperator:
		return r.resolveOperator(rc, t, enclosing)

	case model.ClassMapped:
		return r.resolveMapped(rc, t, enclosing)

	case model.ClassFunction:
		return r.resolveFunctionType(rc, t, enclosing)

	case model.ClassEnum:
		return r.resolveEnumType(rc, t, enclosing)

	case model.ClassObjectKeyword:
		return &kind.TypeLiteral{Node: kind.Node{Text: t.Text(model.RenderDefault)}}, nil

	case model.ClassObject:
		return r.resolveObject(rc, t, enclosing, false)
	}

	return nil, newUnresolvedError(t, enclosing)
}

// innerOf unwraps one syntactic layer when the anchor has one.
func innerOf(d model.Declaration) model.Declaration {
	if d == nil {
		return nil
	}
	if inner := d.Inner(); inner != nil {
		return inner
	}
	return d
}

// markReadonly carries a readonly operator onto the operand and down to
// the property signatures it directly contains.
func markReadonly(node kind.Kind) {
	switch n := node.(type) {
	case *kind.Array:
		n.IsReadonly = true
		markPropertiesReadonly(n.Element)
	case *kind.Tuple:
		n.IsReadonly = true
		for i := range n.Elements {
			n.Elements[i].IsReadonly = true
			markPropertiesReadonly(n.Elements[i].Type)
		}
	}
}

func markPropertiesReadonly(node kind.Kind) {
	tl, ok := node.(*kind.TypeLiteral)
	if !ok {
		return
	}
	for _, m := range tl.Members {
		if ps, ok := m.(*kind.PropertySignature); ok {
			ps.IsReadonly = true
		}
	}
}

func resolvePrimitive(t model.Type) kind.Kind {
	n := kind.Node{Text: t.Text(model.RenderDefault)}
	lit, isLit := t.Literal()
	switch t.Class() {
	case model.ClassString:
		s := &kind.String{Node: n}
		if isLit {
			if v, ok := lit.Value.(string); ok {
				s.Value = &v
			}
		}
		return s
	case model.ClassNumber:
		num := &kind.Number{Node: n}
		if isLit {
			if v, ok := lit.Value.(float64); ok {
				num.Value = &v
			}
		}
		return num
	case model.ClassBoolean:
		b := &kind.Boolean{Node: n}
		if isLit {
			if v, ok := lit.Value.(bool); ok {
				b.Value = &v
			}
		}
		return b
	case model.ClassBigInt:
		big := &kind.BigInt{Node: n}
		if isLit {
			if v, ok := lit.Value.(string); ok {
				big.Value = v
			}
		}
		return big
	case model.ClassSymbol:
		return &kind.SymbolType{Node: n}
	case model.ClassNull:
		return &kind.Null{Node: n}
	case model.ClassUndefined:
		return &kind.Undefined{Node: n}
	case model.ClassVoid:
		return &kind.Void{Node: n}
	case model.ClassAny:
		return &kind.Any{Node: n}
	case model.ClassUnknown:
		return &kind.Unknown{Node: n}
	case model.ClassNever:
		return &kind.Never{Node: n}
	}
	return nil
}

func (r *Resolver) resolveTuple(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	elems := t.TupleElements()
	out := make([]kind.TupleElement, 0, len(elems))
	for _, e := range elems {
		node, err := r.resolveType(rc, e.Type, nil)
		if err != nil {
			return nil, err
		}
		if node == nil {
			continue
		}
		out = append(out, kind.TupleElement{
			Name:       e.Label,
			Type:       node,
			IsRest:     e.IsRest,
			IsOptional: e.IsOptional,
			IsReadonly: e.IsReadonly,
		})
	}
	return &kind.Tuple{
		Node:     kind.Node{Text: t.Text(model.RenderDefault)},
		Elements: out,
	}, nil
}

func (r *Resolver) resolveArray(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	elem := t.Element()
	if elem == nil {
		return nil, newUnresolvedError(t, enclosing)
	}
	node, err := r.resolveType(rc, elem, nil)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	return &kind.Array{
		Node:    kind.Node{Text: t.Text(model.RenderDefault)},
		Element: node,
	}, nil
}

func (r *Resolver) resolveUnion(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	var out []kind.Kind
	for _, m := range t.UnionMembers() {
		node, err := r.resolveType(rc, m, nil)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	out = collapseBooleanLiterals(out)
	out = dedupeKinds(out)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0], nil
	}
	return &kind.UnionType{
		Node:  kind.Node{Text: t.Text(model.RenderDefault)},
		Types: out,
	}, nil
}

// collapseBooleanLiterals replaces a true/false literal pair with a single
// bare boolean member, preserving the pair's position in the union.
func collapseBooleanLiterals(members []kind.Kind) []kind.Kind {
	hasTrue, hasFalse := false, false
	for _, m := range members {
		if b, ok := m.(*kind.Boolean); ok && b.Value != nil {
			if *b.Value {
				hasTrue = true
			} else {
				hasFalse = true
			}
		}
	}
	if !hasTrue || !hasFalse {
		return members
	}
	out := make([]kind.Kind, 0, len(members))
	replaced := false
	for _, m := range members {
		if b, ok := m.(*kind.Boolean); ok && b.Value != nil {
			if !replaced {
				out = append(out, &kind.Boolean{Node: kind.Node{Text: "boolean"}})
				replaced = true
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// dedupeKinds removes structural duplicates, keeping first occurrences in
// order. Equality is over the serialized form, which is exactly the
// structure a reader of the output would see twice.
func dedupeKinds(members []kind.Kind) []kind.Kind {
	if len(members) < 2 {
		return members
	}
	seen := make(map[string]struct{}, len(members))
	out := make([]kind.Kind, 0, len(members))
	for _, m := range members {
		data, err := json.Marshal(m)
		if err != nil {
			out = append(out, m)
			continue
		}
		if _, dup := seen[string(data)]; dup {
			continue
		}
		seen[string(data)] = struct{}{}
		out = append(out, m)
	}
	return out
}

func (r *Resolver) resolveIntersection(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	var out []kind.Kind
	for _, m := range t.IntersectionMembers() {
		node, err := r.resolveType(rc, m, nil)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0], nil
	}
	if prim := brandedPrimitive(out); prim != nil {
		return prim, nil
	}
	if merged := mergeObjectShapes(out, t.Text(model.RenderDefault)); merged != nil {
		return merged, nil
	}
	return &kind.IntersectionType{
		Node:  kind.Node{Text: t.Text(model.RenderDefault)},
		Types: out,
	}, nil
}

// brandedPrimitive detects the widening-blocker idiom (string & {}): one
// bare primitive intersected with empty object shapes reduces to the
// primitive.
func brandedPrimitive(members []kind.Kind) kind.Kind {
	var prim kind.Kind
	for _, m := range members {
		switch n := m.(type) {
		case *kind.String, *kind.Number, *kind.Boolean, *kind.BigInt, *kind.SymbolType:
			if prim != nil {
				return nil
			}
			prim = n
		case *kind.TypeLiteral:
			if len(n.Members) != 0 {
				return nil
			}
		default:
			return nil
		}
	}
	return prim
}

// mergeObjectShapes folds an intersection of plain property bags into one
// TypeLiteral. Later members win on name collision. Returns nil when any
// operand is not a TypeLiteral of property signatures; method, call, and
// index signatures keep the intersection shape.
func mergeObjectShapes(members []kind.Kind, text string) kind.Kind {
	var merged []kind.Kind
	index := make(map[string]int)
	for _, m := range members {
		tl, ok := m.(*kind.TypeLiteral)
		if !ok {
			return nil
		}
		for _, member := range tl.Members {
			ps, ok := member.(*kind.PropertySignature)
			if !ok {
				return nil
			}
			if at, dup := index[ps.Name]; dup {
				merged[at] = member
				continue
			}
			index[ps.Name] = len(merged)
			merged = append(merged, member)
		}
	}
	return &kind.TypeLiteral{Node: kind.Node{Text: text}, Members: merged}
}

func (r *Resolver) resolveConditional(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	parts := t.Conditional()
	if parts == nil {
		return nil, newUnresolvedError(t, enclosing)
	}
	check, err := r.resolveType(rc, parts.Check, nil)
	if err != nil {
		return nil, err
	}
	extends, err := r.resolveType(rc, parts.Extends, nil)
	if err != nil {
		return nil, err
	}
	trueT, err := r.resolveType(rc, parts.True, nil)
	if err != nil {
		return nil, err
	}
	falseT, err := r.resolveType(rc, parts.False, nil)
	if err != nil {
		return nil, err
	}
	return &kind.ConditionalType{
		Node:           kind.Node{Text: t.Text(model.RenderDefault)},
		CheckType:      check,
		ExtendsType:    extends,
		TrueType:       trueT,
		FalseType:      falseT,
		IsDistributive: parts.IsDistributive,
	}, nil
}

func (r *Resolver) resolveOperator(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	op := t.Operator()
	if op == nil {
		return nil, newUnresolvedError(t, enclosing)
	}
	operand, err := r.resolveType(rc, op.Operand, nil)
	if err != nil {
		return nil, err
	}
	if operand == nil {
		return nil, nil
	}
	return &kind.TypeOperator{
		Node:     kind.Node{Text: t.Text(model.RenderDefault)},
		Operator: op.Operator,
		Type:     operand,
	}, nil
}

// resolveMapped keeps fully-external mapped formulas abstract and
// materializes everything that touches project symbols into the concrete
// member list the checker already computed.
func (r *Resolver) resolveMapped(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	parts := t.Mapped()
	if parts == nil {
		return nil, newUnresolvedError(t, enclosing)
	}

	concrete := !containsFreeTypeParameter(t, nil) &&
		(r.touchesProject(parts.Constraint, enclosing, nil) || r.touchesProject(parts.Value, enclosing, nil))
	if concrete {
		return r.resolveObject(rc, t, enclosing, parts.HasReadonlyToken)
	}

	param := &kind.TypeParameter{
		Node: kind.Node{Text: parts.ParameterName},
		Name: parts.ParameterName,
	}
	if parts.Constraint != nil {
		c, err := r.resolveType(rc, parts.Constraint, nil)
		if err != nil {
			return nil, err
		}
		param.Constraint = c
	}
	value, err := r.resolveType(rc, parts.Value, nil)
	if err != nil {
		return nil, err
	}
	return &kind.MappedType{
		Node:       kind.Node{Text: t.Text(model.RenderDefault)},
		Parameter:  param,
		Type:       value,
		IsReadonly: parts.HasReadonlyToken,
		IsOptional: parts.HasOptionalToken,
	}, nil
}

func (r *Resolver) resolveIndexedAccess(rc *resolution, t model.Type, ia *model.IndexedAccessParts, enclosing model.Declaration) (kind.Kind, error) {
	// Accesses through an unexported local alias flatten to the reduced
	// type; the intermediate name would dangle in the output.
	if ia.Reduced != nil {
		if sym := ownerSymbol(ia.Object); sym != nil {
			meta := r.symbolMeta(sym, enclosing)
			if meta.InProject && !meta.Exported {
				return r.resolveType(rc, ia.Reduced, enclosing)
			}
		}
	}
	obj, err := r.resolveType(rc, ia.Object, nil)
	if err != nil {
		return nil, err
	}
	idx, err := r.resolveType(rc, ia.Index, nil)
	if err != nil {
		return nil, err
	}
	if obj == nil || idx == nil {
		if ia.Reduced != nil {
			return r.resolveType(rc, ia.Reduced, enclosing)
		}
		return nil, nil
	}
	return &kind.IndexedAccessType{
		Node:       kind.Node{Text: t.Text(model.RenderDefault)},
		ObjectType: obj,
		IndexType:  idx,
	}, nil
}

func (r *Resolver) resolveFunctionType(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	sigs := t.CallSignatures()
	if len(sigs) == 1 {
		cs, err := r.resolveSignature(rc, sigs[0], enclosing)
		if err != nil {
			return nil, err
		}
		node := &kind.FunctionType{
			Node:           kind.Node{Text: t.Text(model.RenderDefault)},
			Parameters:     cs.Parameters,
			ReturnType:     cs.ReturnType,
			TypeParameters: cs.TypeParameters,
			IsAsync:        cs.IsAsync,
			IsGenerator:    cs.IsGenerator,
		}
		return node, nil
	}

	// Overloaded function-typed values surface as an object of call
	// signatures.
	members := make([]kind.Kind, 0, len(sigs))
	for _, sig := range sigs {
		cs, err := r.resolveSignature(rc, sig, enclosing)
		if err != nil {
			return nil, err
		}
		members = append(members, cs)
	}
	return &kind.TypeLiteral{
		Node:    kind.Node{Text: t.Text(model.RenderDefault)},
		Members: members,
	}, nil
}

// resolveEnumType renders an enum in type position as the union of its
// member literals. Named enum references are handled by the reference
// decision before dispatch reaches here.
func (r *Resolver) resolveEnumType(rc *resolution, t model.Type, enclosing model.Declaration) (kind.Kind, error) {
	props := t.Properties()
	var out []kind.Kind
	for _, p := range props {
		mt := p.Type()
		if mt == nil {
			continue
		}
		node, err := r.resolveType(rc, mt, nil)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	switch len(out) {
	case 0:
		return nil, newUnresolvedError(t, enclosing)
	case 1:
		return out[0], nil
	}
	return &kind.UnionType{
		Node:  kind.Node{Text: t.Text(model.RenderDefault)},
		Types: out,
	}, nil
}

func (r *Resolver) resolveObject(rc *resolution, t model.Type, enclosing model.Declaration, readonlyAll bool) (kind.Kind, error) {
	members, err := r.resolveMembers(rc, t, enclosing, readonlyAll)
	if err != nil {
		return nil, err
	}
	return &kind.TypeLiteral{
		Node:    kind.Node{Text: t.Text(model.RenderDefault)},
		Members: members,
	}, nil
}

// stripUndefined removes the undefined branch optionality adds to a
// member's type. A question token already encodes the absence.
func stripUndefined(node kind.Kind) kind.Kind {
	u, ok := node.(*kind.UnionType)
	if !ok {
		return node
	}
	out := make([]kind.Kind, 0, len(u.Types))
	for _, m := range u.Types {
		if _, isUndef := m.(*kind.Undefined); isUndef {
			continue
		}
		out = append(out, m)
	}
	if len(out) == len(u.Types) {
		return node
	}
	if len(out) == 1 {
		return out[0]
	}
	u.Types = out
	u.Node.Text = strings.TrimSuffix(strings.TrimPrefix(u.Node.Text, "undefined | "), " | undefined")
	return u
}
