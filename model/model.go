// Package model defines the semantic model consumed by the type resolution
// engine.
//
// The engine itself never inspects source code or performs type checking;
// it asks an implementation of these interfaces structural questions about
// already-checked types and symbols. The shipped implementation is backed
// by go/types (package model/gotypes); the engine is equally happy with any
// other statically-typed semantic model, which is how its full shape
// vocabulary (unions, mapped types, conditional types, literals) is
// exercised by the synthetic model in model/modeltest.
package model

import "github.com/teranos/typedoc/kind"

// TypeID is a stable identity for a type within one model instance. Two
// handles with equal IDs denote the same type; the cycle guard keys on it.
type TypeID string

// SymbolID is a stable identity for a symbol within one model instance.
type SymbolID string

// RenderMode selects how a type is rendered to text.
type RenderMode int

const (
	// RenderDefault keeps alias names and short package qualifiers.
	RenderDefault RenderMode = iota
	// RenderExpanded expands aliases and uses full package paths.
	RenderExpanded
)

// TypeClass is the semantic classification of a type, precomputed by the
// provider so the engine's dispatcher can be a single switch.
type TypeClass int

const (
	ClassInvalid TypeClass = iota
	ClassString
	ClassNumber
	ClassBoolean
	ClassSymbol
	ClassBigInt
	ClassNull
	ClassUndefined
	ClassVoid
	ClassAny
	ClassUnknown
	ClassNever
	ClassTypeParameter
	ClassObject
	ClassObjectKeyword
	ClassTuple
	ClassArray
	ClassUnion
	ClassIntersection
	ClassMapped
	ClassConditional
	ClassIndexedAccess
	ClassOperator
	ClassFunction
	ClassEnum
)

// String returns the flag-style name of the class, used in diagnostics.
func (c TypeClass) String() string {
	switch c {
	case ClassString:
		return "String"
	case ClassNumber:
		return "Number"
	case ClassBoolean:
		return "Boolean"
	case ClassSymbol:
		return "Symbol"
	case ClassBigInt:
		return "BigInt"
	case ClassNull:
		return "Null"
	case ClassUndefined:
		return "Undefined"
	case ClassVoid:
		return "Void"
	case ClassAny:
		return "Any"
	case ClassUnknown:
		return "Unknown"
	case ClassNever:
		return "Never"
	case ClassTypeParameter:
		return "TypeParameter"
	case ClassObject:
		return "Object"
	case ClassObjectKeyword:
		return "ObjectKeyword"
	case ClassTuple:
		return "Tuple"
	case ClassArray:
		return "Array"
	case ClassUnion:
		return "Union"
	case ClassIntersection:
		return "Intersection"
	case ClassMapped:
		return "Mapped"
	case ClassConditional:
		return "Conditional"
	case ClassIndexedAccess:
		return "IndexedAccess"
	case ClassOperator:
		return "Operator"
	case ClassFunction:
		return "Function"
	case ClassEnum:
		return "Enum"
	default:
		return "Invalid"
	}
}

// Literal is the constant value of a literal type.
type Literal struct {
	// Class is the primitive classification the literal belongs to.
	Class TypeClass
	// Text is the exact rendering of the literal ("\"hi\"", "42", "true").
	Text string
	// Value is the decoded value: string, float64, bool, or a decimal
	// string for bigints.
	Value interface{}
}

// TupleElement pairs one positional tuple member type with the syntactic
// metadata of its tuple-member declaration.
type TupleElement struct {
	Type       Type
	Label      string
	IsRest     bool
	IsOptional bool
	IsReadonly bool
}

// ConditionalParts are the four branches of a conditional type.
// IsDistributive reports whether the check operand is a bare, unwrapped
// type parameter in the source.
type ConditionalParts struct {
	Check          Type
	Extends        Type
	True           Type
	False          Type
	IsDistributive bool
}

// MappedParts describe a mapped type formula. The readonly and optional
// tokens come from syntax; the semantic model does not expose them.
type MappedParts struct {
	ParameterName    string
	Constraint       Type
	Value            Type
	HasReadonlyToken bool
	HasOptionalToken bool
}

// IndexedAccessParts describe T[K]. Reduced, when non-nil, is the
// checker's resolution of the access, used when the object side should be
// flattened through an unexported alias.
type IndexedAccessParts struct {
	Object  Type
	Index   Type
	Reduced Type
}

// OperatorParts describe a type operator application.
type OperatorParts struct {
	Operator string // "keyof", "readonly", or "unique"
	Operand  Type
}

// TypeParamInfo describes a type parameter type.
type TypeParamInfo struct {
	Name       string
	Constraint Type
	Default    Type
	// IsInfer reports whether the parameter occurs in an infer position.
	IsInfer bool
}

// Type is an opaque semantic type handle.
//
// Accessors that do not apply to the handle's class return their zero
// value: nil slices, nil types, nil part structs.
type Type interface {
	ID() TypeID
	Class() TypeClass
	Text(mode RenderMode) string

	// Symbol returns the declaring symbol, if the type has one.
	Symbol() Symbol
	// AliasSymbol returns the alias symbol the type was referred through.
	AliasSymbol() Symbol

	TypeArguments() []Type
	CallSignatures() []Signature
	ConstructSignatures() []Signature
	// Properties returns the apparent property symbols, in declaration
	// order.
	Properties() []Symbol
	StringIndexType() Type
	NumberIndexType() Type
	UnionMembers() []Type
	IntersectionMembers() []Type
	TupleElements() []TupleElement
	// Element returns the array element type.
	Element() Type

	Literal() (Literal, bool)
	Conditional() *ConditionalParts
	Mapped() *MappedParts
	IndexedAccess() *IndexedAccessParts
	Operator() *OperatorParts
	TypeParam() *TypeParamInfo
}

// Symbol is an opaque semantic symbol handle.
type Symbol interface {
	ID() SymbolID
	Name() string
	// Declarations returns the symbol's declarations in source order.
	// Merged declarations and overloads yield more than one.
	Declarations() []Declaration
	// Type returns the type the symbol denotes: the value type for value
	// symbols, the declared or aliased type for type symbols.
	Type() Type
	// TypeParameters returns the symbol's generic parameters, each of
	// class TypeParameter.
	TypeParameters() []Type
	// Exports returns the exported member symbols of a namespace symbol.
	Exports() []Symbol
	// IsOptional reports a question token or optionality flag on the
	// symbol itself.
	IsOptional() bool
	// IsExported reports exported-ness relative to the given enclosing
	// node; a nil enclosing node means module scope.
	IsExported(enclosing Declaration) bool
}

// Signature is one call or construct signature.
type Signature interface {
	Declaration() Declaration
	TypeParameters() []Type
	Parameters() []Parameter
	// ThisParameter returns the explicit this parameter, or nil.
	ThisParameter() Parameter
	// ReturnType is the contextual (call-site-substituted) return type.
	ReturnType() Type
	// DeclaredReturnType is the written annotation's type, or nil when
	// the return type is inferred.
	DeclaredReturnType() Type
}

// Parameter is one formal parameter of a signature.
type Parameter interface {
	Name() string
	Declaration() Declaration
	// DeclaredType is the written annotation's type, or nil.
	DeclaredType() Type
	// ContextualType is the call-site-substituted type.
	ContextualType() Type
	Initializer() string
	IsOptional() bool
	IsRest() bool
}

// Package enumerates a loaded package's exported surface.
type Package interface {
	// Path is the package's module specifier (import path).
	Path() string
	Name() string
	// Doc is the package-level documentation, if any.
	Doc() string
	// Exported returns the exported top-level symbols in a stable order.
	Exported() []Symbol
}

// Doc is extracted documentation for one declaration.
type Doc struct {
	Description string
	Tags        []kind.Tag
}

// DocExtractor supplies documentation per declaration. The engine merges
// the result verbatim without interpreting content.
type DocExtractor interface {
	DocFor(decl Declaration) (Doc, bool)
}

// Filter decides whether a dependency symbol is retained in the output.
// Project-local symbols are never filtered. Errors propagate uncaught
// through the engine to the caller.
type Filter interface {
	// RetainType reports whether the named external type is kept.
	RetainType(moduleSpecifier, name string) (bool, error)
	// RetainProperty reports whether a property of a retained external
	// type is kept.
	RetainProperty(moduleSpecifier, typeName, property string) (bool, error)
}
