// Package kind defines the serializable documentation graph emitted by the
// type resolution engine.
//
// Every node in the graph is one variant of a tagged union. The JSON
// encoding carries a "kind" discriminator plus the variant's own fields.
// Field names and kind tags are a stable wire contract consumed by
// downstream documentation renderers; they must not change silently.
//
// The graph is a tree: nodes that stand in for an already-expanded or
// deliberately-unexpanded type are plain TypeReference records (name, text,
// location only), never live back-pointers, so the output stays acyclic and
// serializable even though the type system it describes is cyclic.
package kind

import (
	"encoding/json"

	"github.com/teranos/typedoc/errors"
)

// TypeKind is the discriminator tag of a graph node variant.
type TypeKind string

// Variant tags. These strings are part of the wire contract.
const (
	KindString    TypeKind = "String"
	KindNumber    TypeKind = "Number"
	KindBoolean   TypeKind = "Boolean"
	KindSymbol    TypeKind = "Symbol"
	KindBigInt    TypeKind = "BigInt"
	KindNull      TypeKind = "Null"
	KindUndefined TypeKind = "Undefined"
	KindVoid      TypeKind = "Void"
	KindAny       TypeKind = "Any"
	KindUnknown   TypeKind = "Unknown"
	KindNever     TypeKind = "Never"

	KindArray             TypeKind = "Array"
	KindTuple             TypeKind = "Tuple"
	KindTypeLiteral       TypeKind = "TypeLiteral"
	KindUnionType         TypeKind = "UnionType"
	KindIntersectionType  TypeKind = "IntersectionType"
	KindMappedType        TypeKind = "MappedType"
	KindConditionalType   TypeKind = "ConditionalType"
	KindTypeOperator      TypeKind = "TypeOperator"
	KindIndexedAccessType TypeKind = "IndexedAccessType"
	KindFunctionType      TypeKind = "FunctionType"
	KindComponentType     TypeKind = "ComponentType"
	KindTypeReference     TypeKind = "TypeReference"
	KindTypeParameter     TypeKind = "TypeParameter"

	KindFunction   TypeKind = "Function"
	KindComponent  TypeKind = "Component"
	KindClass      TypeKind = "Class"
	KindInterface  TypeKind = "Interface"
	KindTypeAlias  TypeKind = "TypeAlias"
	KindEnum       TypeKind = "Enum"
	KindEnumMember TypeKind = "EnumMember"
	KindVariable   TypeKind = "Variable"
	KindNamespace  TypeKind = "Namespace"

	KindCallSignature     TypeKind = "CallSignature"
	KindParameter         TypeKind = "Parameter"
	KindPropertySignature TypeKind = "PropertySignature"
	KindMethodSignature   TypeKind = "MethodSignature"
	KindIndexSignature    TypeKind = "IndexSignature"
	KindClassAccessor     TypeKind = "ClassAccessor"
)

// Location is a zero-based line/column pair.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Position is the source span of a node.
type Position struct {
	Start Location `json:"start"`
	End   Location `json:"end"`
}

// Node carries the fields shared by every variant. Text is never empty.
type Node struct {
	Text     string    `json:"text"`
	Path     string    `json:"path,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// Tag is one documentation tag attached to a documentable node.
type Tag struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// Doc carries the fields shared by documentable variants.
type Doc struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`
}

// Kind is one tagged-union element of the documentation graph.
// All implementations are pointer types; interface-typed fields in the
// graph must hold pointers so their MarshalJSON methods participate.
type Kind interface {
	TypeKind() TypeKind
	Base() *Node
}

// Documentable is implemented by variants that can carry a name,
// description, and documentation tags.
type Documentable interface {
	Kind
	DocFields() *Doc
}

// marshalWithKind serializes a variant struct value with its discriminator
// injected. The value (not pointer) form is marshaled so the variant's own
// pointer-receiver MarshalJSON is not re-entered.
func marshalWithKind(k TypeKind, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "marshal %s node", k)
	}
	head := []byte(`{"kind":"` + string(k) + `"`)
	if len(body) <= 2 { // "{}"
		return append(head, '}'), nil
	}
	head = append(head, ',')
	return append(head, body[1:]...), nil
}
