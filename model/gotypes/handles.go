package gotypes

import (
	"go/token"
	"go/types"

	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// typeHandle adapts one types.Type. Handles are cached per type identity,
// which is what makes the engine's cycle guard sound: recursive Go types
// share the same *types.Named up the chain.
type typeHandle struct {
	p     *Provider
	id    model.TypeID
	t     types.Type
	alias *symbolHandle
}

func (h *typeHandle) ID() model.TypeID { return h.id }

func (h *typeHandle) Class() model.TypeClass {
	return h.p.classOf(h.t)
}

func (p *Provider) classOf(t types.Type) model.TypeClass {
	switch u := t.(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case u.Kind() == types.Invalid:
			return model.ClassInvalid
		case u.Kind() == types.UntypedNil:
			return model.ClassNull
		case info&types.IsBoolean != 0:
			return model.ClassBoolean
		case info&types.IsString != 0:
			return model.ClassString
		case info&types.IsNumeric != 0:
			return model.ClassNumber
		}
		return model.ClassUnknown
	case *types.Slice, *types.Array:
		return model.ClassArray
	case *types.Pointer:
		return p.classOf(u.Elem())
	case *types.Map, *types.Chan, *types.Struct:
		return model.ClassObject
	case *types.Interface:
		if !u.IsMethodSet() {
			return model.ClassUnion
		}
		if u.Empty() {
			return model.ClassUnknown
		}
		return model.ClassObject
	case *types.Union:
		return model.ClassUnion
	case *types.Signature:
		return model.ClassFunction
	case *types.Tuple:
		return model.ClassTuple
	case *types.TypeParam:
		return model.ClassTypeParameter
	case *types.Named:
		if _, isEnum := p.enums[u.Obj()]; isEnum {
			return model.ClassEnum
		}
		return p.classOf(u.Underlying())
	case *types.Alias:
		return p.classOf(types.Unalias(u))
	}
	return model.ClassInvalid
}

func (h *typeHandle) Text(mode model.RenderMode) string {
	qual := func(pkg *types.Package) string { return pkg.Name() }
	if mode == model.RenderExpanded {
		qual = func(pkg *types.Package) string { return pkg.Path() }
	}
	return types.TypeString(h.t, qual)
}

func (h *typeHandle) Symbol() model.Symbol {
	switch u := types.Unalias(h.t).(type) {
	case *types.Named:
		return h.p.symbolOrNil(u.Obj())
	case *types.TypeParam:
		return h.p.symbolOrNil(u.Obj())
	}
	return nil
}

func (h *typeHandle) AliasSymbol() model.Symbol {
	if h.alias == nil {
		return nil
	}
	return h.alias
}

// under resolves aliases and named wrappers to the structural type.
func (h *typeHandle) under() types.Type {
	return types.Unalias(h.t).Underlying()
}

func (h *typeHandle) TypeArguments() []model.Type {
	n, ok := types.Unalias(h.t).(*types.Named)
	if !ok {
		return nil
	}
	args := n.TypeArgs()
	if args == nil || args.Len() == 0 {
		return nil
	}
	out := make([]model.Type, 0, args.Len())
	for i := 0; i < args.Len(); i++ {
		out = append(out, h.p.modelType(args.At(i)))
	}
	return out
}

func (h *typeHandle) CallSignatures() []model.Signature {
	sig, ok := h.under().(*types.Signature)
	if !ok {
		return nil
	}
	var decl model.Declaration
	if n, ok := types.Unalias(h.t).(*types.Named); ok {
		decl = h.p.symbolFor(n.Obj()).decl
	}
	return []model.Signature{&signatureHandle{p: h.p, sig: sig, decl: decl}}
}

func (h *typeHandle) ConstructSignatures() []model.Signature { return nil }

func (h *typeHandle) Properties() []model.Symbol {
	if tn := h.p.isEnumType(h.t); tn != nil {
		members := h.p.enums[tn]
		out := make([]model.Symbol, 0, len(members))
		for _, m := range members {
			out = append(out, h.p.symbolFor(m))
		}
		return out
	}

	switch u := h.under().(type) {
	case *types.Struct:
		var out []model.Symbol
		for i := 0; i < u.NumFields(); i++ {
			f := u.Field(i)
			if !f.Exported() {
				continue
			}
			out = append(out, h.p.symbolFor(f))
		}
		if n, ok := types.Unalias(h.t).(*types.Named); ok {
			for i := 0; i < n.NumMethods(); i++ {
				m := n.Method(i)
				if m.Exported() {
					out = append(out, h.p.symbolFor(m))
				}
			}
		}
		return out
	case *types.Interface:
		if !u.IsMethodSet() {
			return nil
		}
		var out []model.Symbol
		for i := 0; i < u.NumMethods(); i++ {
			m := u.Method(i)
			if m.Exported() {
				out = append(out, h.p.symbolFor(m))
			}
		}
		return out
	}
	return nil
}

func (h *typeHandle) StringIndexType() model.Type {
	m, ok := h.under().(*types.Map)
	if !ok {
		return nil
	}
	if isNumericKey(m.Key()) {
		return nil
	}
	return h.p.modelType(m.Elem())
}

func (h *typeHandle) NumberIndexType() model.Type {
	m, ok := h.under().(*types.Map)
	if !ok {
		return nil
	}
	if !isNumericKey(m.Key()) {
		return nil
	}
	return h.p.modelType(m.Elem())
}

func isNumericKey(key types.Type) bool {
	b, ok := key.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsNumeric != 0
}

func (h *typeHandle) UnionMembers() []model.Type {
	switch u := h.under().(type) {
	case *types.Union:
		return h.p.unionTerms(u)
	case *types.Interface:
		if u.IsMethodSet() {
			return nil
		}
		var out []model.Type
		for i := 0; i < u.NumEmbeddeds(); i++ {
			if un, ok := u.EmbeddedType(i).(*types.Union); ok {
				out = append(out, h.p.unionTerms(un)...)
			} else {
				out = append(out, h.p.modelType(u.EmbeddedType(i)))
			}
		}
		return out
	}
	return nil
}

func (p *Provider) unionTerms(u *types.Union) []model.Type {
	out := make([]model.Type, 0, u.Len())
	for i := 0; i < u.Len(); i++ {
		out = append(out, p.modelType(u.Term(i).Type()))
	}
	return out
}

func (h *typeHandle) IntersectionMembers() []model.Type { return nil }

func (h *typeHandle) TupleElements() []model.TupleElement {
	tup, ok := types.Unalias(h.t).(*types.Tuple)
	if !ok {
		return nil
	}
	out := make([]model.TupleElement, 0, tup.Len())
	for i := 0; i < tup.Len(); i++ {
		v := tup.At(i)
		out = append(out, model.TupleElement{
			Type:  h.p.modelType(v.Type()),
			Label: v.Name(),
		})
	}
	return out
}

func (h *typeHandle) Element() model.Type {
	switch u := h.under().(type) {
	case *types.Slice:
		return h.p.modelType(u.Elem())
	case *types.Array:
		return h.p.modelType(u.Elem())
	}
	return nil
}

func (h *typeHandle) Literal() (model.Literal, bool) {
	return model.Literal{}, false
}

func (h *typeHandle) Conditional() *model.ConditionalParts     { return nil }
func (h *typeHandle) Mapped() *model.MappedParts               { return nil }
func (h *typeHandle) IndexedAccess() *model.IndexedAccessParts { return nil }
func (h *typeHandle) Operator() *model.OperatorParts           { return nil }

func (h *typeHandle) TypeParam() *model.TypeParamInfo {
	tp, ok := types.Unalias(h.t).(*types.TypeParam)
	if !ok {
		return nil
	}
	info := &model.TypeParamInfo{Name: tp.Obj().Name()}
	if c := tp.Constraint(); c != nil {
		// The implicit any constraint carries no information.
		if iface, ok := c.Underlying().(*types.Interface); !ok || !iface.Empty() {
			info.Constraint = h.p.modelType(c)
		}
	}
	return info
}

// symbolHandle adapts one types.Object.
type symbolHandle struct {
	p    *Provider
	id   model.SymbolID
	obj  types.Object
	decl *declHandle
}

func (h *symbolHandle) ID() model.SymbolID { return h.id }
func (h *symbolHandle) Name() string       { return h.obj.Name() }

func (h *symbolHandle) Declarations() []model.Declaration {
	if h.decl == nil {
		return nil
	}
	return []model.Declaration{h.decl}
}

func (h *symbolHandle) Type() model.Type {
	if c, ok := h.obj.(*types.Const); ok {
		return h.p.literalFor(c)
	}
	return h.p.modelType(h.obj.Type())
}

func (h *symbolHandle) TypeParameters() []model.Type {
	tn, ok := h.obj.(*types.TypeName)
	if !ok {
		return nil
	}
	n, ok := tn.Type().(*types.Named)
	if !ok {
		return nil
	}
	tps := n.TypeParams()
	if tps == nil || tps.Len() == 0 {
		return nil
	}
	out := make([]model.Type, 0, tps.Len())
	for i := 0; i < tps.Len(); i++ {
		out = append(out, h.p.modelType(tps.At(i)))
	}
	return out
}

func (h *symbolHandle) Exports() []model.Symbol { return nil }
func (h *symbolHandle) IsOptional() bool        { return false }

func (h *symbolHandle) IsExported(model.Declaration) bool {
	return token.IsExported(h.obj.Name())
}

// signatureHandle adapts one types.Signature. Go annotates everything, so
// the declared and contextual views coincide.
type signatureHandle struct {
	p    *Provider
	sig  *types.Signature
	decl model.Declaration
}

func (s *signatureHandle) Declaration() model.Declaration { return s.decl }

func (s *signatureHandle) TypeParameters() []model.Type {
	tps := s.sig.TypeParams()
	if tps == nil || tps.Len() == 0 {
		return nil
	}
	out := make([]model.Type, 0, tps.Len())
	for i := 0; i < tps.Len(); i++ {
		out = append(out, s.p.modelType(tps.At(i)))
	}
	return out
}

func (s *signatureHandle) Parameters() []model.Parameter {
	params := s.sig.Params()
	n := params.Len()
	out := make([]model.Parameter, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &paramHandle{
			p:    s.p,
			v:    params.At(i),
			rest: s.sig.Variadic() && i == n-1,
		})
	}
	return out
}

func (s *signatureHandle) ThisParameter() model.Parameter {
	if recv := s.sig.Recv(); recv != nil {
		return &paramHandle{p: s.p, v: recv}
	}
	return nil
}

func (s *signatureHandle) ReturnType() model.Type {
	res := s.sig.Results()
	switch res.Len() {
	case 0:
		return s.p.voidType()
	case 1:
		return s.p.modelType(res.At(0).Type())
	}
	return s.p.modelType(res)
}

func (s *signatureHandle) DeclaredReturnType() model.Type {
	return s.ReturnType()
}

// paramHandle adapts one formal parameter or receiver.
type paramHandle struct {
	p    *Provider
	v    *types.Var
	rest bool
}

func (h *paramHandle) Name() string { return h.v.Name() }

func (h *paramHandle) Declaration() model.Declaration {
	return h.p.declFor(h.v, model.NodeParameterDecl)
}

func (h *paramHandle) DeclaredType() model.Type   { return h.p.modelType(h.v.Type()) }
func (h *paramHandle) ContextualType() model.Type { return h.p.modelType(h.v.Type()) }
func (h *paramHandle) Initializer() string        { return "" }
func (h *paramHandle) IsOptional() bool           { return false }
func (h *paramHandle) IsRest() bool               { return h.rest }

// declHandle is the syntactic anchor for a go/types object. Go has none of
// the token-level notions the interface asks about, so those all answer
// false.
type declHandle struct {
	class  model.NodeClass
	text   string
	path   string
	pos    *kind.Position
	src    model.Source
	docKey string
}

func (d *declHandle) Class() model.NodeClass    { return d.class }
func (d *declHandle) Text() string              { return d.text }
func (d *declHandle) Path() string              { return d.path }
func (d *declHandle) Position() *kind.Position  { return d.pos }
func (d *declHandle) Source() model.Source      { return d.src }
func (d *declHandle) Inner() model.Declaration  { return nil }
func (d *declHandle) QueriedType() model.Type   { return nil }
func (d *declHandle) HasQuestionToken() bool    { return false }
func (d *declHandle) HasReadonlyModifier() bool { return false }
func (d *declHandle) IsAsync() bool             { return false }
func (d *declHandle) IsGenerator() bool         { return false }
func (d *declHandle) Initializer() string       { return "" }
func (d *declHandle) Extends() model.Type       { return nil }
func (d *declHandle) Implements() []model.Type  { return nil }

// syntheticType backs shapes go/types has no handle for: the void return
// and constant literal types.
type syntheticType struct {
	id    model.TypeID
	class model.TypeClass
	text  string
	lit   *model.Literal
}

func (s *syntheticType) ID() model.TypeID                        { return s.id }
func (s *syntheticType) Class() model.TypeClass                  { return s.class }
func (s *syntheticType) Text(model.RenderMode) string            { return s.text }
func (s *syntheticType) Symbol() model.Symbol                    { return nil }
func (s *syntheticType) AliasSymbol() model.Symbol               { return nil }
func (s *syntheticType) TypeArguments() []model.Type             { return nil }
func (s *syntheticType) CallSignatures() []model.Signature       { return nil }
func (s *syntheticType) ConstructSignatures() []model.Signature  { return nil }
func (s *syntheticType) Properties() []model.Symbol              { return nil }
func (s *syntheticType) StringIndexType() model.Type             { return nil }
func (s *syntheticType) NumberIndexType() model.Type             { return nil }
func (s *syntheticType) UnionMembers() []model.Type              { return nil }
func (s *syntheticType) IntersectionMembers() []model.Type       { return nil }
func (s *syntheticType) TupleElements() []model.TupleElement     { return nil }
func (s *syntheticType) Element() model.Type                     { return nil }
func (s *syntheticType) Conditional() *model.ConditionalParts    { return nil }
func (s *syntheticType) Mapped() *model.MappedParts              { return nil }
func (s *syntheticType) IndexedAccess() *model.IndexedAccessParts {
	return nil
}
func (s *syntheticType) Operator() *model.OperatorParts { return nil }
func (s *syntheticType) TypeParam() *model.TypeParamInfo {
	return nil
}

func (s *syntheticType) Literal() (model.Literal, bool) {
	if s.lit == nil {
		return model.Literal{}, false
	}
	return *s.lit, true
}

// pkgHandle is one loaded package's documentable surface.
type pkgHandle struct {
	path     string
	name     string
	doc      string
	exported []model.Symbol
}

func (p *pkgHandle) Path() string             { return p.path }
func (p *pkgHandle) Name() string             { return p.name }
func (p *pkgHandle) Doc() string              { return p.doc }
func (p *pkgHandle) Exported() []model.Symbol { return p.exported }
