package model

import "github.com/teranos/typedoc/kind"

// NodeClass classifies a declaration's syntax so the engine can make the
// syntax-directed decisions the semantic model alone cannot answer:
// parenthesized unwrapping, typeof queries, infer positions, named tuple
// metadata, mapped-type tokens.
type NodeClass int

const (
	NodeUnknown NodeClass = iota
	NodeParenthesized
	NodeTypeOperator
	NodeTypeQuery
	NodeIndexedAccess
	NodeInfer
	NodeFunctionTypeExpr
	NodeMappedTypeExpr
	NodeConditionalTypeExpr
	NodeTypeReferenceExpr

	NodeTypeAliasDecl
	NodeInterfaceDecl
	NodeClassDecl
	NodeFunctionDecl
	NodeFunctionOverload
	NodeMethodDecl
	NodeAccessorDecl
	NodeVariableDecl
	NodeEnumDecl
	NodeEnumMemberDecl
	NodeParameterDecl
	NodePropertyDecl
	NodeNamespaceDecl
)

// Source identifies where a declaration lives relative to the project
// being documented.
type Source struct {
	// ModuleSpecifier is the import path or package specifier of the
	// declaring module.
	ModuleSpecifier string
	// ModuleVersion is the resolved dependency version, when known.
	ModuleVersion string
	// FilePath is the declaring file, project-relative when InProject.
	FilePath string
	// InProject reports that the declaration belongs to the documented
	// project rather than a dependency.
	InProject bool
	// IsGlobal reports a language/runtime built-in with no module of its
	// own.
	IsGlobal bool
}

// Declaration is an opaque syntactic anchor for a symbol or type
// expression. Token accessors return false when the token cannot occur on
// the declaration's class.
type Declaration interface {
	Class() NodeClass
	Text() string
	Path() string
	Position() *kind.Position
	Source() Source

	// Inner unwraps one syntactic layer (the operand of a parenthesized
	// or operator node), or returns nil.
	Inner() Declaration
	// QueriedType returns the type named by a typeof query anchor.
	QueriedType() Type

	HasQuestionToken() bool
	HasReadonlyModifier() bool
	IsAsync() bool
	IsGenerator() bool
	Initializer() string

	// Extends returns the base type of a class declaration, or nil.
	Extends() Type
	// Implements returns the implemented interface types of a class
	// declaration.
	Implements() []Type
}
