package resolver

import (
	"unicode"
	"unicode/utf8"

	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// resolveSignature resolves one call or construct signature. The declared
// annotation wins for project code; external signatures prefer the
// contextual (instantiated) type when it carries no free type parameters,
// so call-site substitutions show through.
func (r *Resolver) resolveSignature(rc *resolution, sig model.Signature, enclosing model.Declaration) (*kind.CallSignature, error) {
	d := sig.Declaration()
	cs := &kind.CallSignature{Parameters: []*kind.Parameter{}}
	if d != nil {
		cs.Node = nodeFor(d)
		cs.IsGenerator = d.IsGenerator()
		r.attachDoc(&cs.Doc, d)
	}

	for _, tp := range sig.TypeParameters() {
		node, err := r.resolveDeclaredTypeParameter(rc, tp)
		if err != nil {
			return nil, err
		}
		if node != nil {
			cs.TypeParameters = append(cs.TypeParameters, node)
		}
	}

	external := declIsExternal(d)

	if this := sig.ThisParameter(); this != nil {
		if tt := parameterTypeFor(this, external); tt != nil {
			node, err := r.resolveType(rc, tt, this.Declaration())
			if err != nil {
				return nil, err
			}
			cs.ThisType = node
		}
	}

	for _, p := range sig.Parameters() {
		node, err := r.resolveParameter(rc, p, external)
		if err != nil {
			return nil, err
		}
		if node != nil {
			cs.Parameters = append(cs.Parameters, node)
		}
	}

	if ret := returnTypeFor(sig, external); ret != nil {
		node, err := r.resolveType(rc, ret, nil)
		if err != nil {
			return nil, err
		}
		cs.ReturnType = node
	}

	cs.IsAsync = (d != nil && d.IsAsync()) || returnsPromise(cs.ReturnType)
	return cs, nil
}

func (r *Resolver) resolveParameter(rc *resolution, p model.Parameter, external bool) (*kind.Parameter, error) {
	d := p.Declaration()
	var typeNode kind.Kind
	if pt := parameterTypeFor(p, external); pt != nil {
		node, err := r.resolveType(rc, pt, d)
		if err != nil {
			return nil, err
		}
		typeNode = node
	}

	optional := p.IsOptional() || p.Initializer() != "" || (d != nil && d.HasQuestionToken())
	if optional && typeNode != nil {
		typeNode = stripUndefined(typeNode)
	}

	param := &kind.Parameter{
		Doc:         kind.Doc{Name: p.Name()},
		Type:        typeNode,
		Initializer: p.Initializer(),
		IsOptional:  optional,
		IsRest:      p.IsRest(),
	}
	if d != nil {
		param.Node = nodeFor(d)
		r.attachDoc(&param.Doc, d)
		if param.Initializer == "" {
			param.Initializer = d.Initializer()
		}
	}
	if param.Text == "" {
		param.Text = p.Name()
	}
	return param, nil
}

func (r *Resolver) resolveDeclaredTypeParameter(rc *resolution, tp model.Type) (*kind.TypeParameter, error) {
	if tp == nil {
		return nil, nil
	}
	info := tp.TypeParam()
	if info == nil {
		return nil, nil
	}
	node := &kind.TypeParameter{
		Node: kind.Node{Text: tp.Text(model.RenderDefault)},
		Name: info.Name,
	}
	if info.Constraint != nil {
		c, err := r.resolveType(rc, info.Constraint, nil)
		if err != nil {
			return nil, err
		}
		node.Constraint = c
	}
	if info.Default != nil {
		dflt, err := r.resolveType(rc, info.Default, nil)
		if err != nil {
			return nil, err
		}
		node.Default = dflt
	}
	return node, nil
}

func (r *Resolver) resolveTypeParameters(rc *resolution, tps []model.Type) ([]*kind.TypeParameter, error) {
	var out []*kind.TypeParameter
	for _, tp := range tps {
		node, err := r.resolveDeclaredTypeParameter(rc, tp)
		if err != nil {
			return nil, err
		}
		if node != nil {
			out = append(out, node)
		}
	}
	return out, nil
}

func declIsExternal(d model.Declaration) bool {
	if d == nil {
		return false
	}
	return !d.Source().InProject
}

func returnTypeFor(sig model.Signature, external bool) model.Type {
	declared := sig.DeclaredReturnType()
	contextual := sig.ReturnType()
	if declared == nil {
		return contextual
	}
	if external && contextual != nil && !containsFreeTypeParameter(contextual, nil) {
		return contextual
	}
	return declared
}

func parameterTypeFor(p model.Parameter, external bool) model.Type {
	declared := p.DeclaredType()
	contextual := p.ContextualType()
	if declared == nil {
		return contextual
	}
	if external && contextual != nil && !containsFreeTypeParameter(contextual, nil) {
		return contextual
	}
	return declared
}

// returnsPromise detects async-shaped returns structurally, covering
// functions whose declarations carry no async modifier but whose return is
// a promise all the same.
func returnsPromise(ret kind.Kind) bool {
	switch n := ret.(type) {
	case *kind.TypeReference:
		return n.Name == "Promise"
	case *kind.UnionType:
		for _, m := range n.Types {
			if returnsPromise(m) {
				return true
			}
		}
	case *kind.IntersectionType:
		for _, m := range n.Types {
			if returnsPromise(m) {
				return true
			}
		}
	}
	return false
}

// asComponentType re-tags a function type whose name and parameter shape
// match the component convention: capitalized name with zero parameters,
// or exactly one whose type is not a bare primitive.
func asComponentType(name string, node kind.Kind) kind.Kind {
	fn, ok := node.(*kind.FunctionType)
	if !ok || !isComponentName(name) || !componentParams(fn.Parameters) {
		return node
	}
	return &kind.ComponentType{
		Node:           fn.Node,
		Parameters:     fn.Parameters,
		ReturnType:     fn.ReturnType,
		TypeParameters: fn.TypeParameters,
		IsAsync:        fn.IsAsync,
		IsGenerator:    fn.IsGenerator,
	}
}

func isComponentName(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

func componentParams(params []*kind.Parameter) bool {
	switch len(params) {
	case 0:
		return true
	case 1:
		return !containsBarePrimitive(params[0].Type)
	}
	return false
}

func containsBarePrimitive(t kind.Kind) bool {
	switch n := t.(type) {
	case *kind.String:
		return n.Value == nil
	case *kind.Number:
		return n.Value == nil
	case *kind.Boolean:
		return n.Value == nil
	case *kind.BigInt:
		return n.Value == ""
	case *kind.SymbolType:
		return true
	case *kind.UnionType:
		for _, m := range n.Types {
			if containsBarePrimitive(m) {
				return true
			}
		}
	}
	return false
}

// isComponentFunction applies the component convention to a named
// function's full overload set: every signature must qualify.
func isComponentFunction(name string, sigs []*kind.CallSignature) bool {
	if !isComponentName(name) || len(sigs) == 0 {
		return false
	}
	for _, s := range sigs {
		if !componentParams(s.Parameters) {
			return false
		}
	}
	return true
}
