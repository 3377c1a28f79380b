package kind

// Primitive variants. Each may describe either the keyword type (text
// "string", "number", ...) or a literal type, in which case Value holds the
// literal and Text holds its rendering ("\"hi\"", "42", "true").

// String describes a string or string-literal type.
type String struct {
	Node
	Value *string `json:"value,omitempty"`
}

func (*String) TypeKind() TypeKind { return KindString }
func (s *String) Base() *Node      { return &s.Node }
func (s *String) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindString, *s)
}

// Number describes a numeric or numeric-literal type.
type Number struct {
	Node
	Value *float64 `json:"value,omitempty"`
}

func (*Number) TypeKind() TypeKind { return KindNumber }
func (n *Number) Base() *Node      { return &n.Node }
func (n *Number) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindNumber, *n)
}

// Boolean describes the boolean type or one of its literal halves.
type Boolean struct {
	Node
	Value *bool `json:"value,omitempty"`
}

func (*Boolean) TypeKind() TypeKind { return KindBoolean }
func (b *Boolean) Base() *Node      { return &b.Node }
func (b *Boolean) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindBoolean, *b)
}

// BigInt describes a bigint or bigint-literal type. Literal values are kept
// as their exact decimal rendering.
type BigInt struct {
	Node
	Value string `json:"value,omitempty"`
}

func (*BigInt) TypeKind() TypeKind { return KindBigInt }
func (b *BigInt) Base() *Node      { return &b.Node }
func (b *BigInt) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindBigInt, *b)
}

// SymbolType describes the symbol primitive.
type SymbolType struct {
	Node
}

func (*SymbolType) TypeKind() TypeKind { return KindSymbol }
func (s *SymbolType) Base() *Node      { return &s.Node }
func (s *SymbolType) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindSymbol, *s)
}

// Null describes the null type.
type Null struct {
	Node
}

func (*Null) TypeKind() TypeKind { return KindNull }
func (n *Null) Base() *Node      { return &n.Node }
func (n *Null) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindNull, *n)
}

// Undefined describes the undefined type.
type Undefined struct {
	Node
}

func (*Undefined) TypeKind() TypeKind { return KindUndefined }
func (u *Undefined) Base() *Node      { return &u.Node }
func (u *Undefined) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindUndefined, *u)
}

// Void describes the void type.
type Void struct {
	Node
}

func (*Void) TypeKind() TypeKind { return KindVoid }
func (v *Void) Base() *Node      { return &v.Node }
func (v *Void) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindVoid, *v)
}

// Any describes the any type.
type Any struct {
	Node
}

func (*Any) TypeKind() TypeKind { return KindAny }
func (a *Any) Base() *Node      { return &a.Node }
func (a *Any) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindAny, *a)
}

// Unknown describes the unknown type.
type Unknown struct {
	Node
}

func (*Unknown) TypeKind() TypeKind { return KindUnknown }
func (u *Unknown) Base() *Node      { return &u.Node }
func (u *Unknown) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindUnknown, *u)
}

// Never describes the never type.
type Never struct {
	Node
}

func (*Never) TypeKind() TypeKind { return KindNever }
func (n *Never) Base() *Node      { return &n.Node }
func (n *Never) MarshalJSON() ([]byte, error) {
	return marshalWithKind(KindNever, *n)
}
