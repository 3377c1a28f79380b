// Package modeltest provides a synthetic, fully in-memory implementation
// of the semantic model interfaces.
//
// It exists so engine behavior can be exercised over the model's whole
// shape vocabulary, including shapes the go/types provider never produces
// (literal types, conditional types, mapped formulas). Everything is built
// by hand: no checker, no source files.
package modeltest

import (
	"strconv"
	"sync/atomic"

	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

var idCounter atomic.Int64

func nextID(prefix string) string {
	return prefix + strconv.FormatInt(idCounter.Add(1), 10)
}

// Type is a configurable model.Type. Fields map one to one onto the
// interface accessors; unset fields answer with zero values.
type Type struct {
	TypeID    model.TypeID
	TypeClass model.TypeClass
	Rendered  string

	Sym   *Symbol
	Alias *Symbol

	Args         []model.Type
	Calls        []model.Signature
	Constructs   []model.Signature
	Props        []model.Symbol
	StrIndex     model.Type
	NumIndex     model.Type
	Union        []model.Type
	Intersection []model.Type
	Tuple        []model.TupleElement
	Elem         model.Type

	Lit         *model.Literal
	Cond        *model.ConditionalParts
	MappedParts *model.MappedParts
	Access      *model.IndexedAccessParts
	Op          *model.OperatorParts
	Param       *model.TypeParamInfo
}

func (t *Type) ID() model.TypeID                 { return t.TypeID }
func (t *Type) Class() model.TypeClass           { return t.TypeClass }
func (t *Type) Text(model.RenderMode) string     { return t.Rendered }
func (t *Type) TypeArguments() []model.Type      { return t.Args }
func (t *Type) CallSignatures() []model.Signature {
	return t.Calls
}
func (t *Type) ConstructSignatures() []model.Signature { return t.Constructs }
func (t *Type) Properties() []model.Symbol             { return t.Props }
func (t *Type) StringIndexType() model.Type            { return t.StrIndex }
func (t *Type) NumberIndexType() model.Type            { return t.NumIndex }
func (t *Type) UnionMembers() []model.Type             { return t.Union }
func (t *Type) IntersectionMembers() []model.Type      { return t.Intersection }
func (t *Type) TupleElements() []model.TupleElement    { return t.Tuple }
func (t *Type) Element() model.Type                    { return t.Elem }
func (t *Type) Conditional() *model.ConditionalParts   { return t.Cond }
func (t *Type) Mapped() *model.MappedParts             { return t.MappedParts }
func (t *Type) IndexedAccess() *model.IndexedAccessParts {
	return t.Access
}
func (t *Type) Operator() *model.OperatorParts { return t.Op }
func (t *Type) TypeParam() *model.TypeParamInfo {
	return t.Param
}

func (t *Type) Literal() (model.Literal, bool) {
	if t.Lit == nil {
		return model.Literal{}, false
	}
	return *t.Lit, true
}

func (t *Type) Symbol() model.Symbol {
	if t.Sym == nil {
		return nil
	}
	return t.Sym
}

func (t *Type) AliasSymbol() model.Symbol {
	if t.Alias == nil {
		return nil
	}
	return t.Alias
}

// Symbol is a configurable model.Symbol.
type Symbol struct {
	SymbolID   model.SymbolID
	SymbolName string
	Decls      []model.Declaration
	Denotes    model.Type
	TypeParams []model.Type
	Members    []model.Symbol
	Optional   bool
	Exported   bool
}

func (s *Symbol) ID() model.SymbolID                  { return s.SymbolID }
func (s *Symbol) Name() string                        { return s.SymbolName }
func (s *Symbol) Declarations() []model.Declaration   { return s.Decls }
func (s *Symbol) Type() model.Type                    { return s.Denotes }
func (s *Symbol) TypeParameters() []model.Type        { return s.TypeParams }
func (s *Symbol) Exports() []model.Symbol             { return s.Members }
func (s *Symbol) IsOptional() bool                    { return s.Optional }
func (s *Symbol) IsExported(model.Declaration) bool   { return s.Exported }

// Decl is a configurable model.Declaration.
type Decl struct {
	NodeClass model.NodeClass
	NodeText  string
	File      string
	Pos       *kind.Position
	Src       model.Source

	InnerDecl model.Declaration
	Queried   model.Type

	QuestionToken    bool
	ReadonlyModifier bool
	Async            bool
	Generator        bool
	Init             string

	ExtendsType     model.Type
	ImplementsTypes []model.Type
}

func (d *Decl) Class() model.NodeClass      { return d.NodeClass }
func (d *Decl) Text() string                { return d.NodeText }
func (d *Decl) Path() string                { return d.File }
func (d *Decl) Position() *kind.Position    { return d.Pos }
func (d *Decl) Source() model.Source        { return d.Src }
func (d *Decl) Inner() model.Declaration    { return d.InnerDecl }
func (d *Decl) QueriedType() model.Type     { return d.Queried }
func (d *Decl) HasQuestionToken() bool      { return d.QuestionToken }
func (d *Decl) HasReadonlyModifier() bool   { return d.ReadonlyModifier }
func (d *Decl) IsAsync() bool               { return d.Async }
func (d *Decl) IsGenerator() bool           { return d.Generator }
func (d *Decl) Initializer() string         { return d.Init }
func (d *Decl) Extends() model.Type         { return d.ExtendsType }
func (d *Decl) Implements() []model.Type    { return d.ImplementsTypes }

// Signature is a configurable model.Signature.
type Signature struct {
	Decl           model.Declaration
	TypeParams     []model.Type
	Params         []model.Parameter
	This           model.Parameter
	Return         model.Type
	DeclaredReturn model.Type
}

func (s *Signature) Declaration() model.Declaration  { return s.Decl }
func (s *Signature) TypeParameters() []model.Type    { return s.TypeParams }
func (s *Signature) Parameters() []model.Parameter   { return s.Params }
func (s *Signature) ThisParameter() model.Parameter  { return s.This }
func (s *Signature) ReturnType() model.Type          { return s.Return }
func (s *Signature) DeclaredReturnType() model.Type  { return s.DeclaredReturn }

// Param is a configurable model.Parameter.
type Param struct {
	ParamName  string
	Decl       model.Declaration
	Declared   model.Type
	Contextual model.Type
	Init       string
	Optional   bool
	Rest       bool
}

func (p *Param) Name() string                  { return p.ParamName }
func (p *Param) Declaration() model.Declaration { return p.Decl }
func (p *Param) DeclaredType() model.Type      { return p.Declared }
func (p *Param) ContextualType() model.Type    { return p.Contextual }
func (p *Param) Initializer() string           { return p.Init }
func (p *Param) IsOptional() bool              { return p.Optional }
func (p *Param) IsRest() bool                  { return p.Rest }

// Pkg is a configurable model.Package.
type Pkg struct {
	PkgPath   string
	PkgName   string
	PkgDoc    string
	TopLevels []model.Symbol
}

func (p *Pkg) Path() string              { return p.PkgPath }
func (p *Pkg) Name() string              { return p.PkgName }
func (p *Pkg) Doc() string               { return p.PkgDoc }
func (p *Pkg) Exported() []model.Symbol  { return p.TopLevels }

// --- builders ---

// NewType creates a type of the given class with a fresh identity.
func NewType(class model.TypeClass, text string) *Type {
	return &Type{
		TypeID:    model.TypeID(nextID("t")),
		TypeClass: class,
		Rendered:  text,
	}
}

func StringType() *Type    { return NewType(model.ClassString, "string") }
func NumberType() *Type    { return NewType(model.ClassNumber, "number") }
func BooleanType() *Type   { return NewType(model.ClassBoolean, "boolean") }
func BigIntType() *Type    { return NewType(model.ClassBigInt, "bigint") }
func NullType() *Type      { return NewType(model.ClassNull, "null") }
func UndefinedType() *Type { return NewType(model.ClassUndefined, "undefined") }
func VoidType() *Type      { return NewType(model.ClassVoid, "void") }
func AnyType() *Type       { return NewType(model.ClassAny, "any") }
func UnknownType() *Type   { return NewType(model.ClassUnknown, "unknown") }
func NeverType() *Type     { return NewType(model.ClassNever, "never") }

func StringLiteral(v string) *Type {
	text := strconv.Quote(v)
	t := NewType(model.ClassString, text)
	t.Lit = &model.Literal{Class: model.ClassString, Text: text, Value: v}
	return t
}

func NumberLiteral(v float64) *Type {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	t := NewType(model.ClassNumber, text)
	t.Lit = &model.Literal{Class: model.ClassNumber, Text: text, Value: v}
	return t
}

func BooleanLiteral(v bool) *Type {
	text := strconv.FormatBool(v)
	t := NewType(model.ClassBoolean, text)
	t.Lit = &model.Literal{Class: model.ClassBoolean, Text: text, Value: v}
	return t
}

func UnionOf(text string, members ...model.Type) *Type {
	t := NewType(model.ClassUnion, text)
	t.Union = members
	return t
}

func IntersectionOf(text string, members ...model.Type) *Type {
	t := NewType(model.ClassIntersection, text)
	t.Intersection = members
	return t
}

func ArrayOf(elem model.Type) *Type {
	t := NewType(model.ClassArray, elem.Text(model.RenderDefault)+"[]")
	t.Elem = elem
	return t
}

func TupleOf(text string, elems ...model.TupleElement) *Type {
	t := NewType(model.ClassTuple, text)
	t.Tuple = elems
	return t
}

// ObjectType builds an anonymous object shape from property symbols.
func ObjectType(text string, props ...model.Symbol) *Type {
	t := NewType(model.ClassObject, text)
	t.Props = props
	return t
}

func FunctionType(text string, sigs ...model.Signature) *Type {
	t := NewType(model.ClassFunction, text)
	t.Calls = sigs
	return t
}

func TypeParameterType(name string) *Type {
	t := NewType(model.ClassTypeParameter, name)
	t.Param = &model.TypeParamInfo{Name: name}
	return t
}

// NewSymbol creates a symbol with a fresh identity.
func NewSymbol(name string, decls ...model.Declaration) *Symbol {
	return &Symbol{
		SymbolID:   model.SymbolID(nextID("s")),
		SymbolName: name,
		Decls:      decls,
	}
}

// ProjectSource is the source every ProjectDecl carries.
func ProjectSource(file string) model.Source {
	return model.Source{ModuleSpecifier: "example.test/project", FilePath: file, InProject: true}
}

// DepSource marks a declaration as living in a dependency.
func DepSource(module, version string) model.Source {
	return model.Source{ModuleSpecifier: module, ModuleVersion: version}
}

// ProjectDecl creates a declaration inside the documented project.
func ProjectDecl(class model.NodeClass, text string) *Decl {
	return &Decl{
		NodeClass: class,
		NodeText:  text,
		File:      "types.src",
		Src:       ProjectSource("types.src"),
	}
}

// DepDecl creates a declaration inside a dependency module.
func DepDecl(class model.NodeClass, text, module string) *Decl {
	return &Decl{
		NodeClass: class,
		NodeText:  text,
		File:      module + "/index.src",
		Src:       DepSource(module, "1.0.0"),
	}
}

// Property builds a property symbol with a project property declaration
// attached and the given type.
func Property(name string, t model.Type) *Symbol {
	decl := ProjectDecl(model.NodePropertyDecl, name+": "+t.Text(model.RenderDefault))
	s := NewSymbol(name, decl)
	s.Denotes = t
	return s
}

// OptionalProperty builds a property symbol carrying a question token.
func OptionalProperty(name string, t model.Type) *Symbol {
	decl := ProjectDecl(model.NodePropertyDecl, name+"?: "+t.Text(model.RenderDefault))
	decl.QuestionToken = true
	s := NewSymbol(name, decl)
	s.Denotes = t
	s.Optional = true
	return s
}

// NamedObject attaches a declaring symbol to an object shape, making it a
// candidate for the expand-or-reference decision. Exported controls
// project-local visibility.
func NamedObject(name string, exported bool, props ...model.Symbol) *Type {
	decl := ProjectDecl(model.NodeInterfaceDecl, "interface "+name)
	sym := NewSymbol(name, decl)
	sym.Exported = exported
	t := ObjectType(name, props...)
	t.Sym = sym
	sym.Denotes = t
	return t
}

// Aliased wraps a type with an alias symbol declared in the project.
func Aliased(name string, exported bool, target *Type) *Type {
	decl := ProjectDecl(model.NodeTypeAliasDecl, "type "+name+" = "+target.Rendered)
	sym := NewSymbol(name, decl)
	sym.Exported = exported
	sym.Denotes = target
	target.Alias = sym
	return target
}

// SimpleParam builds a parameter with a declared type and a project
// parameter declaration.
func SimpleParam(name string, t model.Type) *Param {
	decl := ProjectDecl(model.NodeParameterDecl, name+": "+t.Text(model.RenderDefault))
	return &Param{ParamName: name, Decl: decl, Declared: t}
}

// SimpleSignature builds a call signature with declared parameter and
// return types.
func SimpleSignature(text string, ret model.Type, params ...model.Parameter) *Signature {
	return &Signature{
		Decl:           ProjectDecl(model.NodeFunctionDecl, text),
		Params:         params,
		Return:         ret,
		DeclaredReturn: ret,
	}
}
