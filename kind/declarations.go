package kind

// Declaration-level variants: the documentable nodes a top-level symbol
// resolves to, plus the member nodes they contain.

// Parameter describes one resolved signature parameter.
type Parameter struct {
	Node
	Doc
	Type        Kind   `json:"type,omitempty"`
	Initializer string `json:"initializer,omitempty"`
	IsOptional  bool   `json:"isOptional,omitempty"`
	IsRest      bool   `json:"isRest,omitempty"`
}

func (*Parameter) TypeKind() TypeKind { return KindParameter }
func (p *Parameter) Base() *Node      { return &p.Node }
func (p *Parameter) DocFields() *Doc  { return &p.Doc }
func (p *Parameter) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindParameter, *p)
}

// CallSignature describes one call, construct, or method signature.
type CallSignature struct {
	Node
	Doc
	Parameters     []*Parameter     `json:"parameters"`
	ThisType       Kind             `json:"thisType,omitempty"`
	ReturnType     Kind             `json:"returnType,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
	IsAsync        bool             `json:"isAsync,omitempty"`
	IsGenerator    bool             `json:"isGenerator,omitempty"`
}

func (*CallSignature) TypeKind() TypeKind { return KindCallSignature }
func (c *CallSignature) Base() *Node      { return &c.Node }
func (c *CallSignature) DocFields() *Doc  { return &c.Doc }
func (c *CallSignature) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindCallSignature, *c)
}

// PropertySignature describes one named property of an object shape.
// Optionality is represented here, never as an undefined union branch in
// Type.
type PropertySignature struct {
	Node
	Doc
	Type       Kind `json:"type"`
	IsOptional bool `json:"isOptional,omitempty"`
	IsReadonly bool `json:"isReadonly,omitempty"`
}

func (*PropertySignature) TypeKind() TypeKind { return KindPropertySignature }
func (p *PropertySignature) Base() *Node      { return &p.Node }
func (p *PropertySignature) DocFields() *Doc  { return &p.Doc }
func (p *PropertySignature) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindPropertySignature, *p)
}

// MethodSignature describes one named method with its overload signatures.
type MethodSignature struct {
	Node
	Doc
	Signatures []*CallSignature `json:"signatures"`
}

func (*MethodSignature) TypeKind() TypeKind { return KindMethodSignature }
func (m *MethodSignature) Base() *Node      { return &m.Node }
func (m *MethodSignature) DocFields() *Doc  { return &m.Doc }
func (m *MethodSignature) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindMethodSignature, *m)
}

// IndexSignature describes an explicit or implicit index signature.
type IndexSignature struct {
	Node
	Parameter  *Parameter `json:"parameter"`
	Type       Kind       `json:"type"`
	IsReadonly bool       `json:"isReadonly,omitempty"`
}

func (*IndexSignature) TypeKind() TypeKind { return KindIndexSignature }
func (i *IndexSignature) Base() *Node      { return &i.Node }
func (i *IndexSignature) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindIndexSignature, *i)
}

// Function describes a named function with one or more signatures.
type Function struct {
	Node
	Doc
	Signatures []*CallSignature `json:"signatures"`
}

func (*Function) TypeKind() TypeKind { return KindFunction }
func (f *Function) Base() *Node      { return &f.Node }
func (f *Function) DocFields() *Doc  { return &f.Doc }
func (f *Function) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindFunction, *f)
}

// Component describes a named function classified as a component.
type Component struct {
	Node
	Doc
	Signatures []*CallSignature `json:"signatures"`
}

func (*Component) TypeKind() TypeKind { return KindComponent }
func (c *Component) Base() *Node      { return &c.Node }
func (c *Component) DocFields() *Doc  { return &c.Doc }
func (c *Component) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindComponent, *c)
}

// ClassAccessor describes a get or set accessor on a class.
type ClassAccessor struct {
	Node
	Doc
	Modifier   string       `json:"modifier"` // "get" or "set"
	Type       Kind         `json:"type,omitempty"`
	Parameters []*Parameter `json:"parameters,omitempty"`
}

func (*ClassAccessor) TypeKind() TypeKind { return KindClassAccessor }
func (c *ClassAccessor) Base() *Node      { return &c.Node }
func (c *ClassAccessor) DocFields() *Doc  { return &c.Doc }
func (c *ClassAccessor) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindClassAccessor, *c)
}

// Class describes a class declaration.
type Class struct {
	Node
	Doc
	Constructor    *CallSignature       `json:"constructor,omitempty"`
	Accessors      []*ClassAccessor     `json:"accessors,omitempty"`
	Methods        []*MethodSignature   `json:"methods,omitempty"`
	Properties     []*PropertySignature `json:"properties,omitempty"`
	Extends        Kind                 `json:"extends,omitempty"`
	Implements     []Kind               `json:"implements,omitempty"`
	TypeParameters []*TypeParameter     `json:"typeParameters,omitempty"`
}

func (*Class) TypeKind() TypeKind { return KindClass }
func (c *Class) Base() *Node      { return &c.Node }
func (c *Class) DocFields() *Doc  { return &c.Doc }
func (c *Class) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindClass, *c)
}

// Interface describes a named object shape declaration.
type Interface struct {
	Node
	Doc
	Members        []Kind           `json:"members,omitempty"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
}

func (*Interface) TypeKind() TypeKind { return KindInterface }
func (i *Interface) Base() *Node      { return &i.Node }
func (i *Interface) DocFields() *Doc  { return &i.Doc }
func (i *Interface) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindInterface, *i)
}

// TypeAlias describes a named alias and its resolved target type.
type TypeAlias struct {
	Node
	Doc
	Type           Kind             `json:"type"`
	TypeParameters []*TypeParameter `json:"typeParameters,omitempty"`
}

func (*TypeAlias) TypeKind() TypeKind { return KindTypeAlias }
func (t *TypeAlias) Base() *Node      { return &t.Node }
func (t *TypeAlias) DocFields() *Doc  { return &t.Doc }
func (t *TypeAlias) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindTypeAlias, *t)
}

// EnumMember describes one member of an enum.
type EnumMember struct {
	Node
	Doc
	Value interface{} `json:"value,omitempty"`
}

func (*EnumMember) TypeKind() TypeKind { return KindEnumMember }
func (e *EnumMember) Base() *Node      { return &e.Node }
func (e *EnumMember) DocFields() *Doc  { return &e.Doc }
func (e *EnumMember) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindEnumMember, *e)
}

// Enum describes an enum declaration.
type Enum struct {
	Node
	Doc
	Members []*EnumMember `json:"members"`
}

func (*Enum) TypeKind() TypeKind { return KindEnum }
func (e *Enum) Base() *Node      { return &e.Node }
func (e *Enum) DocFields() *Doc  { return &e.Doc }
func (e *Enum) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindEnum, *e)
}

// Variable describes a variable or constant declaration.
type Variable struct {
	Node
	Doc
	Type Kind `json:"type,omitempty"`
}

func (*Variable) TypeKind() TypeKind { return KindVariable }
func (v *Variable) Base() *Node      { return &v.Node }
func (v *Variable) DocFields() *Doc  { return &v.Doc }
func (v *Variable) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindVariable, *v)
}

// Namespace groups the resolved declarations of one module or package.
type Namespace struct {
	Node
	Doc
	Types []Kind `json:"types"`
}

func (*Namespace) TypeKind() TypeKind { return KindNamespace }
func (n *Namespace) Base() *Node      { return &n.Node }
func (n *Namespace) DocFields() *Doc  { return &n.Doc }
func (n *Namespace) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindNamespace, *n)
}
