package gotypes_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/model/gotypes"
	"github.com/teranos/typedoc/resolver"
)

// check type-checks a single self-contained source file in memory and
// registers it with a fresh provider.
func check(t *testing.T, src string) (*gotypes.Provider, model.Package) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "widgets.go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{}
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	pkg, err := conf.Check("example.test/demo/widgets", fset, []*ast.File{f}, info)
	require.NoError(t, err)

	p := gotypes.NewProvider("example.test/demo")
	mp := p.AddPackage(gotypes.PackageData{
		Fset:      fset,
		Files:     []*ast.File{f},
		Pkg:       pkg,
		InProject: true,
	})
	return p, mp
}

func lookup(t *testing.T, pkg model.Package, name string) model.Symbol {
	t.Helper()
	for _, s := range pkg.Exported() {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("symbol %q not in exported surface", name)
	return nil
}

func TestStructDocumentsAsInterface(t *testing.T) {
	p, pkg := check(t, `package widgets

// Widget is a drawable thing.
type Widget struct {
	// Label is the display text.
	Label string
	Size  int
	inner bool
}
`)
	r := resolver.New(resolver.Options{Docs: p})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Widget"))
	require.NoError(t, err)

	in, ok := node.(*kind.Interface)
	require.True(t, ok, "got %T", node)
	assert.Equal(t, "Widget", in.Name)
	assert.Equal(t, "Widget is a drawable thing.", in.Description)

	require.Len(t, in.Members, 2, "unexported fields stay out")
	label := in.Members[0].(*kind.PropertySignature)
	assert.Equal(t, "Label", label.Name)
	assert.Equal(t, "Label is the display text.", label.Description)
	_, ok = label.Type.(*kind.String)
	assert.True(t, ok)
}

func TestCrossReferenceBetweenExportedTypes(t *testing.T) {
	_, pkg := check(t, `package widgets

type Theme struct {
	Accent string
}

type Widget struct {
	Theme *Theme
}
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Widget"))
	require.NoError(t, err)

	in := node.(*kind.Interface)
	require.Len(t, in.Members, 1)
	prop := in.Members[0].(*kind.PropertySignature)
	ref, ok := prop.Type.(*kind.TypeReference)
	require.True(t, ok, "pointer unwraps and exported type references, got %T", prop.Type)
	assert.Equal(t, "Theme", ref.Name)
}

func TestConstGroupDocumentsAsEnum(t *testing.T) {
	_, pkg := check(t, `package widgets

// Level orders severity.
type Level int

const (
	Low  Level = 0
	High Level = 2
)
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Level"))
	require.NoError(t, err)

	e, ok := node.(*kind.Enum)
	require.True(t, ok, "got %T", node)
	require.Len(t, e.Members, 2)
	assert.Equal(t, "Low", e.Members[0].Name)
	assert.Equal(t, float64(0), e.Members[0].Value)
	assert.Equal(t, "High", e.Members[1].Name)
	assert.Equal(t, float64(2), e.Members[1].Value)
}

func TestMultipleResultsBecomeTuple(t *testing.T) {
	_, pkg := check(t, `package widgets

func Split(s string) (head string, tail string) { return "", "" }
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Split"))
	require.NoError(t, err)

	fn := node.(*kind.Function)
	require.Len(t, fn.Signatures, 1)
	tup, ok := fn.Signatures[0].ReturnType.(*kind.Tuple)
	require.True(t, ok, "got %T", fn.Signatures[0].ReturnType)
	require.Len(t, tup.Elements, 2)
	assert.Equal(t, "head", tup.Elements[0].Name)
	assert.Equal(t, "tail", tup.Elements[1].Name)
}

func TestVariadicParameterIsRest(t *testing.T) {
	_, pkg := check(t, `package widgets

func Join(sep string, parts ...string) string { return "" }
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Join"))
	require.NoError(t, err)

	fn := node.(*kind.Function)
	params := fn.Signatures[0].Parameters
	require.Len(t, params, 2)
	assert.False(t, params[0].IsRest)
	assert.True(t, params[1].IsRest)
	_, ok := params[1].Type.(*kind.Array)
	assert.True(t, ok, "variadic parameter keeps its slice type, got %T", params[1].Type)
}

func TestStringKeyedMapGetsIndexSignature(t *testing.T) {
	_, pkg := check(t, `package widgets

type Labels map[string]string
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Labels"))
	require.NoError(t, err)

	alias, ok := node.(*kind.TypeAlias)
	require.True(t, ok, "named map documents as alias, got %T", node)
	tl := alias.Type.(*kind.TypeLiteral)
	require.Len(t, tl.Members, 1)
	idx := tl.Members[0].(*kind.IndexSignature)
	_, ok = idx.Parameter.Type.(*kind.String)
	assert.True(t, ok)
	_, ok = idx.Type.(*kind.String)
	assert.True(t, ok)
}

func TestConstraintTypeSetBecomesUnion(t *testing.T) {
	_, pkg := check(t, `package widgets

type Number interface {
	~int | ~float64
}
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Number"))
	require.NoError(t, err)

	alias, ok := node.(*kind.TypeAlias)
	require.True(t, ok, "constraint documents as alias of its type set, got %T", node)
	u, ok := alias.Type.(*kind.UnionType)
	require.True(t, ok, "got %T", alias.Type)
	require.Len(t, u.Types, 2)
	_, ok = u.Types[0].(*kind.Number)
	assert.True(t, ok)
}

func TestMethodSetDocumentsAsMethodSignatures(t *testing.T) {
	_, pkg := check(t, `package widgets

type Widget struct {
	Label string
}

// Render draws the widget.
func (w *Widget) Render(indent int) string { return "" }
`)
	p := resolver.New(resolver.Options{})

	node, err := p.ResolveSymbol(lookup(t, pkg, "Widget"))
	require.NoError(t, err)

	in := node.(*kind.Interface)
	require.Len(t, in.Members, 2)
	method, ok := in.Members[1].(*kind.MethodSignature)
	require.True(t, ok, "got %T", in.Members[1])
	assert.Equal(t, "Render", method.Name)
	require.Len(t, method.Signatures, 1)
	require.Len(t, method.Signatures[0].Parameters, 1)
	assert.Equal(t, "indent", method.Signatures[0].Parameters[0].Name)
}

func TestDeprecatedCommentBecomesTag(t *testing.T) {
	p, pkg := check(t, `package widgets

// Old does a thing.
//
// Deprecated: use New instead.
func Old() {}
`)
	r := resolver.New(resolver.Options{Docs: p})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Old"))
	require.NoError(t, err)

	fn := node.(*kind.Function)
	assert.Equal(t, "Old does a thing.", fn.Description)
	require.Len(t, fn.Tags, 1)
	assert.Equal(t, "deprecated", fn.Tags[0].Name)
	assert.Equal(t, "use New instead.", fn.Tags[0].Text)
}

func TestGenericTypeParametersSurface(t *testing.T) {
	_, pkg := check(t, `package widgets

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
`)
	r := resolver.New(resolver.Options{})

	node, err := r.ResolveSymbol(lookup(t, pkg, "Pair"))
	require.NoError(t, err)

	in := node.(*kind.Interface)
	require.Len(t, in.TypeParameters, 2)
	assert.Equal(t, "K", in.TypeParameters[0].Name)
	assert.Equal(t, "V", in.TypeParameters[1].Name)

	key := in.Members[0].(*kind.PropertySignature)
	ref, ok := key.Type.(*kind.TypeReference)
	require.True(t, ok, "field typed by a parameter references it, got %T", key.Type)
	assert.Equal(t, "K", ref.Name)
}

func TestConcurrentResolutionSharesOneProvider(t *testing.T) {
	var src strings.Builder
	src.WriteString("package widgets\n\n")
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&src, "type Node%d struct {\n\tNext *Node%d\n\tLabel string\n}\n\n", i, (i+1)%40)
	}
	p, pkg := check(t, src.String())
	r := resolver.New(resolver.Options{Docs: p})

	// One resolver, many goroutines: the provider's handle caches fill
	// lazily from all of them at once, like a parallel package build.
	syms := pkg.Exported()
	errs := make([]error, len(syms))
	var wg sync.WaitGroup
	for i, sym := range syms {
		wg.Add(1)
		go func(i int, sym model.Symbol) {
			defer wg.Done()
			_, errs[i] = r.ResolveSymbol(sym)
		}(i, sym)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "symbol %d", i)
	}
}
