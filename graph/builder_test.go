package graph_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/typedoc/cache"
	"github.com/teranos/typedoc/graph"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/model/modeltest"
)

func testPackage() model.Package {
	widget := modeltest.NamedObject("Widget", false,
		modeltest.Property("label", modeltest.StringType()),
		modeltest.Property("size", modeltest.NumberType()),
	)
	theme := modeltest.NamedObject("Theme", false,
		modeltest.Property("accent", modeltest.StringType()),
	)
	return &modeltest.Pkg{
		PkgPath:   "example.test/project/widgets",
		PkgName:   "widgets",
		PkgDoc:    "Package widgets renders things.",
		TopLevels: []model.Symbol{widget.Sym, theme.Sym},
	}
}

func TestBuildPackageKeepsDeclarationOrder(t *testing.T) {
	b := graph.New(graph.Options{Workers: 2})

	doc, err := b.BuildPackage(context.Background(), testPackage())
	require.NoError(t, err)

	assert.Equal(t, "example.test/project/widgets", doc.Path)
	assert.Equal(t, "widgets", doc.Name)
	assert.Equal(t, "Package widgets renders things.", doc.Description)
	require.Len(t, doc.Symbols, 2)

	var first struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(doc.Symbols[0], &first))
	assert.Equal(t, "Interface", first.Kind)
	assert.Equal(t, "Widget", first.Name)

	var second struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(doc.Symbols[1], &second))
	assert.Equal(t, "Theme", second.Name)
}

func TestBuildPackageOutputIsValidJSON(t *testing.T) {
	b := graph.New(graph.Options{})

	doc, err := b.BuildPackage(context.Background(), testPackage())
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))
}

func TestBuildAllPreservesPackageOrder(t *testing.T) {
	b := graph.New(graph.Options{})

	first := testPackage()
	second := &modeltest.Pkg{
		PkgPath: "example.test/project/empty",
		PkgName: "empty",
	}

	docs, err := b.BuildAll(context.Background(), []model.Package{first, second})
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "example.test/project/widgets", docs[0].Path)
	assert.Equal(t, "example.test/project/empty", docs[1].Path)
	assert.Empty(t, docs[1].Symbols)
}

func TestBuildPackageCancellation(t *testing.T) {
	b := graph.New(graph.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.BuildPackage(ctx, testPackage())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPackagePopulatesCache(t *testing.T) {
	store, err := cache.Open(":memory:", nil)
	require.NoError(t, err)
	defer store.Close()

	b := graph.New(graph.Options{Cache: store})
	pkg := testPackage()

	doc, err := b.BuildPackage(context.Background(), pkg)
	require.NoError(t, err)
	require.Len(t, doc.Symbols, 2)

	st, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Nodes)

	// Second run serves from cache and produces identical output.
	again, err := b.BuildPackage(context.Background(), pkg)
	require.NoError(t, err)
	require.Len(t, again.Symbols, 2)
	assert.JSONEq(t, string(doc.Symbols[0]), string(again.Symbols[0]))
}
