package kind

// Composite type-expression variants.

// Array describes an array type with a single element type.
type Array struct {
	Node
	Element    Kind `json:"element"`
	IsReadonly bool `json:"isReadonly,omitempty"`
}

func (*Array) TypeKind() TypeKind { return KindArray }
func (a *Array) Base() *Node      { return &a.Node }
func (a *Array) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindArray, *a)
}

// TupleElement pairs one positional tuple member with its syntactic
// metadata (label, rest, optional, readonly). It is not itself a graph
// node; it always appears inside a Tuple.
type TupleElement struct {
	Name       string `json:"name,omitempty"`
	Type       Kind   `json:"type"`
	IsRest     bool   `json:"isRest,omitempty"`
	IsOptional bool   `json:"isOptional,omitempty"`
	IsReadonly bool   `json:"isReadonly,omitempty"`
}

// Tuple describes a tuple type with ordered, possibly named elements.
type Tuple struct {
	Node
	Elements   []TupleElement `json:"elements"`
	IsReadonly bool           `json:"isReadonly,omitempty"`
}

func (*Tuple) TypeKind() TypeKind { return KindTuple }
func (t *Tuple) Base() *Node      { return &t.Node }
func (t *Tuple) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTuple, *t)
}

// TypeLiteral describes an anonymous object shape. Members are ordered and
// are PropertySignature, MethodSignature, CallSignature, or IndexSignature
// nodes.
type TypeLiteral struct {
	Node
	Members []Kind `json:"members,omitempty"`
}

func (*TypeLiteral) TypeKind() TypeKind { return KindTypeLiteral }
func (t *TypeLiteral) Base() *Node      { return &t.Node }
func (t *TypeLiteral) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTypeLiteral, *t)
}

// UnionType describes a union. Members are ordered, structurally deduped,
// and never contain the true/false literal pair (it collapses to Boolean).
type UnionType struct {
	Node
	Types []Kind `json:"types"`
}

func (*UnionType) TypeKind() TypeKind { return KindUnionType }
func (u *UnionType) Base() *Node      { return &u.Node }
func (u *UnionType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindUnionType, *u)
}

// IntersectionType describes an intersection whose operands could not be
// merged into a single TypeLiteral.
type IntersectionType struct {
	Node
	Types []Kind `json:"types"`
}

func (*IntersectionType) TypeKind() TypeKind { return KindIntersectionType }
func (i *IntersectionType) Base() *Node      { return &i.Node }
func (i *IntersectionType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindIntersectionType, *i)
}

// MappedType describes an abstract mapped type formula. When a mapped type
// touches project-local symbols it is materialized into a TypeLiteral
// instead, so this variant only appears for fully-external formulas.
type MappedType struct {
	Node
	Parameter  *TypeParameter `json:"parameter"`
	Type       Kind           `json:"type"`
	IsReadonly bool           `json:"isReadonly,omitempty"`
	IsOptional bool           `json:"isOptional,omitempty"`
}

func (*MappedType) TypeKind() TypeKind { return KindMappedType }
func (m *MappedType) Base() *Node      { return &m.Node }
func (m *MappedType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindMappedType, *m)
}

// ConditionalType describes a conditional type with all four branches
// resolved. IsDistributive is set when the check operand is a bare,
// unwrapped type parameter.
type ConditionalType struct {
	Node
	CheckType      Kind `json:"checkType"`
	ExtendsType    Kind `json:"extendsType"`
	TrueType       Kind `json:"trueType"`
	FalseType      Kind `json:"falseType"`
	IsDistributive bool `json:"isDistributive,omitempty"`
}

func (*ConditionalType) TypeKind() TypeKind { return KindConditionalType }
func (c *ConditionalType) Base() *Node      { return &c.Node }
func (c *ConditionalType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindConditionalType, *c)
}

// TypeOperator describes keyof/readonly/unique applied to an operand type.
type TypeOperator struct {
	Node
	Operator string `json:"operator"`
	Type     Kind   `json:"type"`
}

func (*TypeOperator) TypeKind() TypeKind { return KindTypeOperator }
func (t *TypeOperator) Base() *Node      { return &t.Node }
func (t *TypeOperator) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTypeOperator, *t)
}

// IndexedAccessType describes T[K].
type IndexedAccessType struct {
	Node
	ObjectType Kind `json:"objectType"`
	IndexType  Kind `json:"indexType"`
}

func (*IndexedAccessType) TypeKind() TypeKind { return KindIndexedAccessType }
func (i *IndexedAccessType) Base() *Node      { return &i.Node }
func (i *IndexedAccessType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindIndexedAccessType, *i)
}

// FunctionType describes an anonymous function type expression.
type FunctionType struct {
	Node
	Parameters     []*Parameter     `json:"parameters"`
	ReturnType     Kind             `json:"returnType,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	IsAsync        bool             `json:"isAsync,omitempty"`
	IsGenerator    bool             `json:"isGenerator,omitempty"`
}

func (*FunctionType) TypeKind() TypeKind { return KindFunctionType }
func (f *FunctionType) Base() *Node      { return &f.Node }
func (f *FunctionType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindFunctionType, *f)
}

// ComponentType describes a function type classified as a component shape.
type ComponentType struct {
	Node
	Parameters     []*Parameter     `json:"parameters"`
	ReturnType     Kind             `json:"returnType,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	IsAsync        bool             `json:"isAsync,omitempty"`
	IsGenerator    bool             `json:"isGenerator,omitempty"`
}

func (*ComponentType) TypeKind() TypeKind { return KindComponentType }
func (c *ComponentType) Base() *Node      { return &c.Node }
func (c *ComponentType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindComponentType, *c)
}

// TypeReference is the shallow pointer form: a navigable record carrying
// only the referenced type's name, rendering, and location. Used for
// exported local types, unexpanded dependency types, and cycle re-entries.
type TypeReference struct {
	Node
	Name            string `json:"name,omitempty"`
	TypeArguments   []Kind `json:"typeArguments,omitempty"`
	ModuleSpecifier string `json:"moduleSpecifier,omitempty"`
}

func (*TypeReference) TypeKind() TypeKind { return KindTypeReference }
func (t *TypeReference) Base() *Node      { return &t.Node }
func (t *TypeReference) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTypeReference, *t)
}

// TypeParameter describes one generic placeholder, optionally constrained
// and defaulted.
type TypeParameter struct {
	Node
	Name       string `json:"name"`
	Constraint Kind   `json:"constraint,omitempty"`
	Default    Kind   `json:"default,omitempty"`
}

func (*TypeParameter) TypeKind() TypeKind { return KindTypeParameter }
func (t *TypeParameter) Base() *Node      { return &t.Node }
func (t *TypeParameter) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTypeParameter, *t)
}
