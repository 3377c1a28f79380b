package kind

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundtrip(t *testing.T, k Kind) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(k)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestPrimitiveCarriesKindTag(t *testing.T) {
	m := roundtrip(t, &String{Node: Node{Text: "string"}})
	assert.Equal(t, "String", m["kind"])
	assert.Equal(t, "string", m["text"])
	assert.NotContains(t, m, "value")
}

func TestLiteralValueSerialized(t *testing.T) {
	v := "hello"
	m := roundtrip(t, &String{Node: Node{Text: `"hello"`}, Value: &v})
	assert.Equal(t, "hello", m["value"])

	b := true
	mb := roundtrip(t, &Boolean{Node: Node{Text: "true"}, Value: &b})
	assert.Equal(t, true, mb["value"])
}

func TestUnionSerializesNestedKinds(t *testing.T) {
	u := &UnionType{
		Node: Node{Text: "string | number"},
		Types: []Kind{
			&String{Node: Node{Text: "string"}},
			&Number{Node: Node{Text: "number"}},
		},
	}
	m := roundtrip(t, u)
	assert.Equal(t, "UnionType", m["kind"])

	members, ok := m["types"].([]interface{})
	require.True(t, ok)
	require.Len(t, members, 2)
	first := members[0].(map[string]interface{})
	assert.Equal(t, "String", first["kind"])
}

func TestPositionAndPathOmittedWhenEmpty(t *testing.T) {
	m := roundtrip(t, &Number{Node: Node{Text: "number"}})
	assert.NotContains(t, m, "path")
	assert.NotContains(t, m, "position")

	withPos := &Number{Node: Node{
		Text:     "number",
		Path:     "pkg/thing.go",
		Position: &Position{Start: Location{Line: 3, Column: 1}, End: Location{Line: 3, Column: 7}},
	}}
	m = roundtrip(t, withPos)
	assert.Equal(t, "pkg/thing.go", m["path"])
	pos := m["position"].(map[string]interface{})
	start := pos["start"].(map[string]interface{})
	assert.EqualValues(t, 3, start["line"])
}

func TestPropertySignatureOptionalFlag(t *testing.T) {
	p := &PropertySignature{
		Node:       Node{Text: "name?: string"},
		Doc:        Doc{Name: "name", Description: "Display name."},
		Type:       &String{Node: Node{Text: "string"}},
		IsOptional: true,
	}
	m := roundtrip(t, p)
	assert.Equal(t, "PropertySignature", m["kind"])
	assert.Equal(t, "name", m["name"])
	assert.Equal(t, true, m["isOptional"])
	assert.Equal(t, "Display name.", m["description"])
}

func TestTypeReferenceShallowShape(t *testing.T) {
	ref := &TypeReference{
		Node:            Node{Text: "Tree", Path: "pkg/tree.go"},
		Name:            "Tree",
		ModuleSpecifier: "example.com/pkg",
	}
	m := roundtrip(t, ref)
	assert.Equal(t, "TypeReference", m["kind"])
	assert.Equal(t, "Tree", m["name"])
	assert.Equal(t, "example.com/pkg", m["moduleSpecifier"])
	// Shallow: no members, no types
	assert.NotContains(t, m, "members")
	assert.NotContains(t, m, "types")
}

func TestFunctionWithSignature(t *testing.T) {
	fn := &Function{
		Node: Node{Text: "function identity<T>(value: T): T"},
		Doc:  Doc{Name: "identity"},
		Signatures: []*CallSignature{{
			Node: Node{Text: "(value: T): T"},
			Parameters: []*Parameter{{
				Node: Node{Text: "value: T"},
				Doc:  Doc{Name: "value"},
				Type: &TypeReference{Node: Node{Text: "T"}, Name: "T"},
			}},
			ReturnType:     &TypeReference{Node: Node{Text: "T"}, Name: "T"},
			TypeParameters: []*TypeParameter{{Node: Node{Text: "T"}, Name: "T"}},
		}},
	}
	m := roundtrip(t, fn)
	assert.Equal(t, "Function", m["kind"])
	sigs := m["signatures"].([]interface{})
	require.Len(t, sigs, 1)
	sig := sigs[0].(map[string]interface{})
	assert.Equal(t, "CallSignature", sig["kind"])
	params := sig["parameters"].([]interface{})
	require.Len(t, params, 1)
	assert.Equal(t, "Parameter", params[0].(map[string]interface{})["kind"])
}

func TestTupleElementMetadata(t *testing.T) {
	tup := &Tuple{
		Node: Node{Text: "[first: string, ...rest: number[]]"},
		Elements: []TupleElement{
			{Name: "first", Type: &String{Node: Node{Text: "string"}}},
			{Name: "rest", IsRest: true, Type: &Array{
				Node:    Node{Text: "number[]"},
				Element: &Number{Node: Node{Text: "number"}},
			}},
		},
	}
	m := roundtrip(t, tup)
	elems := m["elements"].([]interface{})
	require.Len(t, elems, 2)
	second := elems[1].(map[string]interface{})
	assert.Equal(t, true, second["isRest"])
	assert.Equal(t, "Array", second["type"].(map[string]interface{})["kind"])
}

func TestEmptyVariantStillTagged(t *testing.T) {
	// A node with only shared fields must still serialize the tag first.
	data, err := json.Marshal(&Never{Node: Node{Text: "never"}})
	require.NoError(t, err)
	assert.Equal(t, `{"kind":"Never","text":"never"}`, string(data))
}
