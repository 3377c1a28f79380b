package resolver_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/model/modeltest"
	"github.com/teranos/typedoc/resolver"
)

func newResolver() *resolver.Resolver {
	return resolver.New(resolver.Options{})
}

func TestBooleanLiteralPairCollapses(t *testing.T) {
	u := modeltest.UnionOf("boolean",
		modeltest.BooleanLiteral(true),
		modeltest.BooleanLiteral(false))

	node, err := newResolver().ResolveType(u, nil)
	require.NoError(t, err)

	b, ok := node.(*kind.Boolean)
	require.True(t, ok, "expected bare Boolean, got %T", node)
	assert.Nil(t, b.Value)
}

func TestUnionDeduplicatesStructuralTwins(t *testing.T) {
	u := modeltest.UnionOf("string | string",
		modeltest.StringType(),
		modeltest.StringType())

	node, err := newResolver().ResolveType(u, nil)
	require.NoError(t, err)

	_, ok := node.(*kind.String)
	assert.True(t, ok, "a single surviving member is unwrapped, got %T", node)
}

func TestUnionKeepsDistinctMembers(t *testing.T) {
	u := modeltest.UnionOf("string | number",
		modeltest.StringType(),
		modeltest.NumberType())

	node, err := newResolver().ResolveType(u, nil)
	require.NoError(t, err)

	un, ok := node.(*kind.UnionType)
	require.True(t, ok)
	require.Len(t, un.Types, 2)
	assert.Equal(t, "string | number", un.Text)
}

func TestSelfReferentialTypeTerminates(t *testing.T) {
	tree := modeltest.NamedObject("tree", false)
	tree.Props = []model.Symbol{
		modeltest.Property("children", modeltest.ArrayOf(tree)),
	}

	node, err := newResolver().ResolveType(tree, nil)
	require.NoError(t, err)

	tl, ok := node.(*kind.TypeLiteral)
	require.True(t, ok, "unexported local type expands, got %T", node)
	require.Len(t, tl.Members, 1)

	prop := tl.Members[0].(*kind.PropertySignature)
	arr := prop.Type.(*kind.Array)
	ref, ok := arr.Element.(*kind.TypeReference)
	require.True(t, ok, "cycle re-entry becomes a reference, got %T", arr.Element)
	assert.Equal(t, "tree", ref.Name)
}

func TestMutualRecursionTerminates(t *testing.T) {
	a := modeltest.NamedObject("alpha", false)
	b := modeltest.NamedObject("beta", false)
	a.Props = []model.Symbol{modeltest.Property("next", b)}
	b.Props = []model.Symbol{modeltest.Property("back", a)}

	node, err := newResolver().ResolveType(a, nil)
	require.NoError(t, err)

	outer := node.(*kind.TypeLiteral)
	inner := outer.Members[0].(*kind.PropertySignature).Type.(*kind.TypeLiteral)
	ref := inner.Members[0].(*kind.PropertySignature).Type.(*kind.TypeReference)
	assert.Equal(t, "alpha", ref.Name)
}

func TestResolutionIsIdempotent(t *testing.T) {
	tree := modeltest.NamedObject("tree", false)
	tree.Props = []model.Symbol{
		modeltest.Property("children", modeltest.ArrayOf(tree)),
	}

	r := newResolver()
	first, err := r.ResolveType(tree, nil)
	require.NoError(t, err)
	second, err := r.ResolveType(tree, nil)
	require.NoError(t, err)

	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(fj), string(sj))
}

func TestOptionalPropertyStripsUndefined(t *testing.T) {
	propType := modeltest.UnionOf("string | undefined",
		modeltest.StringType(),
		modeltest.UndefinedType())
	obj := modeltest.ObjectType("{ name?: string }",
		modeltest.OptionalProperty("name", propType))

	node, err := newResolver().ResolveType(obj, nil)
	require.NoError(t, err)

	tl := node.(*kind.TypeLiteral)
	require.Len(t, tl.Members, 1)
	prop := tl.Members[0].(*kind.PropertySignature)
	assert.True(t, prop.IsOptional)
	_, ok := prop.Type.(*kind.String)
	assert.True(t, ok, "undefined branch is gone, got %T", prop.Type)
}

func TestIntersectionOfObjectShapesMerges(t *testing.T) {
	left := modeltest.ObjectType("{ id: number }",
		modeltest.Property("id", modeltest.NumberType()))
	right := modeltest.ObjectType("{ name: string }",
		modeltest.Property("name", modeltest.StringType()))
	i := modeltest.IntersectionOf("Left & Right", left, right)

	node, err := newResolver().ResolveType(i, nil)
	require.NoError(t, err)

	tl, ok := node.(*kind.TypeLiteral)
	require.True(t, ok, "mergeable intersection flattens, got %T", node)
	require.Len(t, tl.Members, 2)
}

func TestIntersectionWithMethodMemberStaysIntersection(t *testing.T) {
	left := modeltest.ObjectType("{ a: string }",
		modeltest.Property("a", modeltest.StringType()))

	m := modeltest.NewSymbol("m", modeltest.ProjectDecl(model.NodeMethodDecl, "m(): void"))
	m.Denotes = modeltest.FunctionType("() => void",
		modeltest.SimpleSignature("(): void", modeltest.VoidType()))
	right := modeltest.ObjectType("{ m(): void }", m)

	i := modeltest.IntersectionOf("{ a: string } & { m(): void }", left, right)

	node, err := newResolver().ResolveType(i, nil)
	require.NoError(t, err)

	in, ok := node.(*kind.IntersectionType)
	require.True(t, ok, "method-bearing operands do not merge, got %T", node)
	require.Len(t, in.Types, 2)
}

func TestBrandedStringCollapsesToString(t *testing.T) {
	i := modeltest.IntersectionOf("string & {}",
		modeltest.StringType(),
		modeltest.ObjectType("{}"))

	node, err := newResolver().ResolveType(i, nil)
	require.NoError(t, err)

	_, ok := node.(*kind.String)
	assert.True(t, ok, "widening blocker reduces to the primitive, got %T", node)
}

func TestExportFlipChangesExpansion(t *testing.T) {
	build := func(exported bool) model.Type {
		return modeltest.NamedObject("options", exported,
			modeltest.Property("level", modeltest.NumberType()))
	}

	node, err := newResolver().ResolveType(build(false), nil)
	require.NoError(t, err)
	_, isLiteral := node.(*kind.TypeLiteral)
	assert.True(t, isLiteral, "unexported local type expands in place")

	node, err = newResolver().ResolveType(build(true), nil)
	require.NoError(t, err)
	ref, isRef := node.(*kind.TypeReference)
	require.True(t, isRef, "exported local type becomes a reference")
	assert.Equal(t, "options", ref.Name)
	assert.Empty(t, ref.ModuleSpecifier, "project references carry no module specifier")
}

func TestExportedAliasOfArrayStaysTransparent(t *testing.T) {
	names := modeltest.Aliased("Names", true,
		modeltest.ArrayOf(modeltest.StringType()))

	node, err := newResolver().ResolveType(names, nil)
	require.NoError(t, err)

	arr, ok := node.(*kind.Array)
	require.True(t, ok, "alias-wrapped arrays resolve through, got %T", node)
	_, ok = arr.Element.(*kind.String)
	assert.True(t, ok)
}

func TestExportedAliasOfObjectBecomesReference(t *testing.T) {
	opts := modeltest.Aliased("Opts", true,
		modeltest.ObjectType("{ id: number }",
			modeltest.Property("id", modeltest.NumberType())))

	node, err := newResolver().ResolveType(opts, nil)
	require.NoError(t, err)

	ref, ok := node.(*kind.TypeReference)
	require.True(t, ok)
	assert.Equal(t, "Opts", ref.Name)
}

func TestAliasDeclarationExpandsOwnTarget(t *testing.T) {
	opts := modeltest.Aliased("Opts", true,
		modeltest.ObjectType("{ id: number }",
			modeltest.Property("id", modeltest.NumberType())))

	node, err := newResolver().ResolveSymbol(opts.Alias)
	require.NoError(t, err)

	alias, ok := node.(*kind.TypeAlias)
	require.True(t, ok)
	assert.Equal(t, "Opts", alias.Name)
	_, ok = alias.Type.(*kind.TypeLiteral)
	assert.True(t, ok, "the alias's own target expands, got %T", alias.Type)
}

func TestReadonlyOperatorMarksArray(t *testing.T) {
	ro := modeltest.NewType(model.ClassOperator, "readonly string[]")
	ro.Op = &model.OperatorParts{
		Operator: "readonly",
		Operand:  modeltest.ArrayOf(modeltest.StringType()),
	}

	node, err := newResolver().ResolveType(ro, nil)
	require.NoError(t, err)

	arr, ok := node.(*kind.Array)
	require.True(t, ok)
	assert.True(t, arr.IsReadonly)
}

func TestReadonlyTupleReachesElementProperties(t *testing.T) {
	obj := modeltest.ObjectType("{ x: number }",
		modeltest.Property("x", modeltest.NumberType()))
	ro := modeltest.NewType(model.ClassOperator, "readonly [{ x: number }]")
	ro.Op = &model.OperatorParts{
		Operator: "readonly",
		Operand:  modeltest.TupleOf("[{ x: number }]", model.TupleElement{Type: obj}),
	}

	node, err := newResolver().ResolveType(ro, nil)
	require.NoError(t, err)

	tup, ok := node.(*kind.Tuple)
	require.True(t, ok)
	assert.True(t, tup.IsReadonly)
	require.Len(t, tup.Elements, 1)
	assert.True(t, tup.Elements[0].IsReadonly)

	tl, ok := tup.Elements[0].Type.(*kind.TypeLiteral)
	require.True(t, ok, "got %T", tup.Elements[0].Type)
	require.Len(t, tl.Members, 1)
	ps := tl.Members[0].(*kind.PropertySignature)
	assert.True(t, ps.IsReadonly)
}

func TestKeyofStaysAnOperatorNode(t *testing.T) {
	target := modeltest.NamedObject("Config", true,
		modeltest.Property("debug", modeltest.BooleanType()))
	k := modeltest.NewType(model.ClassOperator, "keyof Config")
	k.Op = &model.OperatorParts{Operator: "keyof", Operand: target}

	node, err := newResolver().ResolveType(k, nil)
	require.NoError(t, err)

	op, ok := node.(*kind.TypeOperator)
	require.True(t, ok)
	assert.Equal(t, "keyof", op.Operator)
	_, ok = op.Type.(*kind.TypeReference)
	assert.True(t, ok)
}

func TestMappedFormulaOverExternalsStaysAbstract(t *testing.T) {
	mt := modeltest.NewType(model.ClassMapped, "{ [K in string]?: number }")
	mt.MappedParts = &model.MappedParts{
		ParameterName:    "K",
		Constraint:       modeltest.StringType(),
		Value:            modeltest.NumberType(),
		HasOptionalToken: true,
	}

	node, err := newResolver().ResolveType(mt, nil)
	require.NoError(t, err)

	mapped, ok := node.(*kind.MappedType)
	require.True(t, ok, "external formula stays abstract, got %T", node)
	assert.Equal(t, "K", mapped.Parameter.Name)
	assert.True(t, mapped.IsOptional)
}

func TestMappedOverLocalTypeMaterializes(t *testing.T) {
	local := modeltest.NamedObject("Config", true,
		modeltest.Property("debug", modeltest.BooleanType()))
	constraint := modeltest.NewType(model.ClassOperator, "keyof Config")
	constraint.Op = &model.OperatorParts{Operator: "keyof", Operand: local}

	mt := modeltest.NewType(model.ClassMapped, "{ [K in keyof Config]: boolean }")
	mt.MappedParts = &model.MappedParts{
		ParameterName: "K",
		Constraint:    constraint,
		Value:         modeltest.BooleanType(),
	}
	mt.Props = []model.Symbol{
		modeltest.Property("debug", modeltest.BooleanType()),
	}

	node, err := newResolver().ResolveType(mt, nil)
	require.NoError(t, err)

	tl, ok := node.(*kind.TypeLiteral)
	require.True(t, ok, "formulas touching project symbols materialize, got %T", node)
	require.Len(t, tl.Members, 1)
	assert.Equal(t, "debug", tl.Members[0].(*kind.PropertySignature).Name)
}

func TestIndexedAccessFlattensThroughUnexportedAlias(t *testing.T) {
	internal := modeltest.Aliased("internalShape", false,
		modeltest.ObjectType("{ field: string }",
			modeltest.Property("field", modeltest.StringType())))

	acc := modeltest.NewType(model.ClassIndexedAccess, `internalShape["field"]`)
	acc.Access = &model.IndexedAccessParts{
		Object:  internal,
		Index:   modeltest.StringLiteral("field"),
		Reduced: modeltest.StringType(),
	}

	node, err := newResolver().ResolveType(acc, nil)
	require.NoError(t, err)

	_, ok := node.(*kind.String)
	assert.True(t, ok, "access through an unexported alias flattens, got %T", node)
}

func TestIndexedAccessOnExportedTypeKeepsStructure(t *testing.T) {
	exported := modeltest.Aliased("Shape", true,
		modeltest.ObjectType("{ field: string }",
			modeltest.Property("field", modeltest.StringType())))

	acc := modeltest.NewType(model.ClassIndexedAccess, `Shape["field"]`)
	acc.Access = &model.IndexedAccessParts{
		Object:  exported,
		Index:   modeltest.StringLiteral("field"),
		Reduced: modeltest.StringType(),
	}

	node, err := newResolver().ResolveType(acc, nil)
	require.NoError(t, err)

	ia, ok := node.(*kind.IndexedAccessType)
	require.True(t, ok)
	_, ok = ia.ObjectType.(*kind.TypeReference)
	assert.True(t, ok)
}

func TestUnresolvedTypeIsFatalAndMarked(t *testing.T) {
	bad := modeltest.NewType(model.ClassInvalid, "<?>")

	_, err := newResolver().ResolveType(bad, nil)
	require.Error(t, err)
	assert.True(t, errors.IsUnresolvedTypeError(err))
}

func TestPropertyWithoutDeclarationIsFatal(t *testing.T) {
	ghost := modeltest.NewSymbol("ghost")
	ghost.Denotes = modeltest.StringType()
	obj := modeltest.ObjectType("{ ghost: string }", ghost)

	_, err := newResolver().ResolveType(obj, nil)
	require.Error(t, err)
	assert.True(t, errors.IsMissingDeclarationError(err))
}

type nameFilter struct {
	blockedType string
	blockedProp string
}

func (f nameFilter) RetainType(_, name string) (bool, error) {
	return name != f.blockedType, nil
}

func (f nameFilter) RetainProperty(_, _, property string) (bool, error) {
	return property != f.blockedProp, nil
}

func depObject(name string, props ...model.Symbol) *modeltest.Type {
	decl := modeltest.DepDecl(model.NodeInterfaceDecl, "interface "+name, "ext.test/lib")
	sym := modeltest.NewSymbol(name, decl)
	sym.Exported = true
	t := modeltest.ObjectType(name, props...)
	t.Sym = sym
	sym.Denotes = t
	return t
}

func TestFilterDropsDependencyType(t *testing.T) {
	dep := depObject("Blocked")
	r := resolver.New(resolver.Options{Filter: nameFilter{blockedType: "Blocked"}})

	node, err := r.ResolveType(dep, nil)
	require.NoError(t, err)
	assert.Nil(t, node)

	u := modeltest.UnionOf("string | Blocked", modeltest.StringType(), dep)
	node, err = r.ResolveType(u, nil)
	require.NoError(t, err)
	_, ok := node.(*kind.String)
	assert.True(t, ok, "dropped members leave the union, got %T", node)
}

func TestFilterDropsDependencyProperty(t *testing.T) {
	visible := modeltest.NewSymbol("visible",
		modeltest.DepDecl(model.NodePropertyDecl, "visible: string", "ext.test/lib"))
	visible.Denotes = modeltest.StringType()
	secret := modeltest.NewSymbol("secret",
		modeltest.DepDecl(model.NodePropertyDecl, "secret: string", "ext.test/lib"))
	secret.Denotes = modeltest.StringType()

	dep := depObject("Options", visible, secret)
	// A non-trivial unexported local argument forces the dependency type
	// to expand instead of staying a reference.
	localArg := modeltest.NamedObject("localCfg", false,
		modeltest.Property("x", modeltest.NumberType()))
	dep.Args = []model.Type{localArg}

	r := resolver.New(resolver.Options{Filter: nameFilter{blockedProp: "secret"}})
	node, err := r.ResolveType(dep, nil)
	require.NoError(t, err)

	tl, ok := node.(*kind.TypeLiteral)
	require.True(t, ok, "dependency type with local args expands, got %T", node)
	require.Len(t, tl.Members, 1)
	assert.Equal(t, "visible", tl.Members[0].(*kind.PropertySignature).Name)
}

func TestDependencyTypeWithTrivialArgsStaysReference(t *testing.T) {
	dep := depObject("Box")
	dep.Args = []model.Type{modeltest.StringType()}

	node, err := newResolver().ResolveType(dep, nil)
	require.NoError(t, err)

	ref, ok := node.(*kind.TypeReference)
	require.True(t, ok)
	assert.Equal(t, "Box", ref.Name)
	assert.Equal(t, "ext.test/lib", ref.ModuleSpecifier)
	require.Len(t, ref.TypeArguments, 1)
}

func TestFreeTypeParameterStaysReference(t *testing.T) {
	generic := modeltest.NamedObject("box", false,
		modeltest.Property("value", modeltest.TypeParameterType("T")))
	generic.Args = []model.Type{modeltest.TypeParameterType("T")}

	node, err := newResolver().ResolveType(generic, nil)
	require.NoError(t, err)

	ref, ok := node.(*kind.TypeReference)
	require.True(t, ok, "types with free parameters stay references, got %T", node)
	assert.Equal(t, "box", ref.Name)
}

func TestPromiseReturnImpliesAsync(t *testing.T) {
	promiseDecl := modeltest.DepDecl(model.NodeInterfaceDecl, "interface Promise<T>", "std")
	promiseDecl.Src.IsGlobal = true
	promiseSym := modeltest.NewSymbol("Promise", promiseDecl)
	promiseSym.Exported = true
	promise := modeltest.ObjectType("Promise<string>")
	promise.Sym = promiseSym

	sig := modeltest.SimpleSignature("fetchName(): Promise<string>", promise)
	fnType := modeltest.FunctionType("() => Promise<string>", sig)

	fdecl := modeltest.ProjectDecl(model.NodeFunctionDecl, "function fetchName(): Promise<string>")
	fsym := modeltest.NewSymbol("fetchName", fdecl)
	fsym.Denotes = fnType
	fsym.Exported = true

	node, err := newResolver().ResolveSymbol(fsym)
	require.NoError(t, err)

	fn, ok := node.(*kind.Function)
	require.True(t, ok)
	require.Len(t, fn.Signatures, 1)
	assert.True(t, fn.Signatures[0].IsAsync)
	ret := fn.Signatures[0].ReturnType.(*kind.TypeReference)
	assert.Equal(t, "Promise", ret.Name)
}

func TestComponentClassification(t *testing.T) {
	props := modeltest.NamedObject("ButtonProps", true,
		modeltest.Property("label", modeltest.StringType()))
	ret := modeltest.NamedObject("Element", true)

	sig := modeltest.SimpleSignature("Button(props: ButtonProps): Element", ret,
		modeltest.SimpleParam("props", props))
	fnType := modeltest.FunctionType("(props: ButtonProps) => Element", sig)

	fdecl := modeltest.ProjectDecl(model.NodeFunctionDecl, "function Button(props: ButtonProps): Element")
	fsym := modeltest.NewSymbol("Button", fdecl)
	fsym.Denotes = fnType
	fsym.Exported = true

	node, err := newResolver().ResolveSymbol(fsym)
	require.NoError(t, err)
	_, ok := node.(*kind.Component)
	assert.True(t, ok, "capitalized single-props function is a component, got %T", node)
}

func TestPrimitiveParameterIsNotComponent(t *testing.T) {
	sig := modeltest.SimpleSignature("Format(value: string): string",
		modeltest.StringType(),
		modeltest.SimpleParam("value", modeltest.StringType()))
	fnType := modeltest.FunctionType("(value: string) => string", sig)

	fdecl := modeltest.ProjectDecl(model.NodeFunctionDecl, "function Format(value: string): string")
	fsym := modeltest.NewSymbol("Format", fdecl)
	fsym.Denotes = fnType
	fsym.Exported = true

	node, err := newResolver().ResolveSymbol(fsym)
	require.NoError(t, err)
	_, ok := node.(*kind.Function)
	assert.True(t, ok, "bare-primitive props disqualify, got %T", node)
}

func TestInterfaceDeclarationResolves(t *testing.T) {
	iface := modeltest.NamedObject("Config", true,
		modeltest.Property("debug", modeltest.BooleanType()),
		modeltest.OptionalProperty("name", modeltest.StringType()))

	node, err := newResolver().ResolveSymbol(iface.Sym)
	require.NoError(t, err)

	in, ok := node.(*kind.Interface)
	require.True(t, ok)
	assert.Equal(t, "Config", in.Name)
	require.Len(t, in.Members, 2)
	second := in.Members[1].(*kind.PropertySignature)
	assert.True(t, second.IsOptional)
}

func TestEnumDeclarationResolvesMemberValues(t *testing.T) {
	edecl := modeltest.ProjectDecl(model.NodeEnumDecl, "enum Level")
	esym := modeltest.NewSymbol("Level", edecl)
	esym.Exported = true

	mkMember := func(name string, value float64) *modeltest.Symbol {
		md := modeltest.ProjectDecl(model.NodeEnumMemberDecl, name)
		m := modeltest.NewSymbol(name, md)
		m.Denotes = modeltest.NumberLiteral(value)
		return m
	}
	et := modeltest.NewType(model.ClassEnum, "Level")
	et.Props = []model.Symbol{mkMember("Low", 0), mkMember("High", 1)}
	et.Sym = esym
	esym.Denotes = et

	node, err := newResolver().ResolveSymbol(esym)
	require.NoError(t, err)

	e, ok := node.(*kind.Enum)
	require.True(t, ok)
	require.Len(t, e.Members, 2)
	assert.Equal(t, "Low", e.Members[0].Name)
	assert.Equal(t, float64(0), e.Members[0].Value)
}

func TestFunctionTypedVariableDocumentsAsFunction(t *testing.T) {
	sig := modeltest.SimpleSignature("(input: number) => number",
		modeltest.NumberType(),
		modeltest.SimpleParam("input", modeltest.NumberType()))
	fnType := modeltest.FunctionType("(input: number) => number", sig)

	vdecl := modeltest.ProjectDecl(model.NodeVariableDecl, "const double = (input: number) => input * 2")
	vsym := modeltest.NewSymbol("double", vdecl)
	vsym.Denotes = fnType
	vsym.Exported = true

	node, err := newResolver().ResolveSymbol(vsym)
	require.NoError(t, err)

	fn, ok := node.(*kind.Function)
	require.True(t, ok, "function-typed values document as functions, got %T", node)
	assert.Equal(t, "double", fn.Name)
	require.Len(t, fn.Signatures, 1)
	require.Len(t, fn.Signatures[0].Parameters, 1)
	assert.Equal(t, "input", fn.Signatures[0].Parameters[0].Name)
}

func TestTupleElementMetadataSurvives(t *testing.T) {
	tup := modeltest.TupleOf("[id: number, ...rest: string[]]",
		model.TupleElement{Type: modeltest.NumberType(), Label: "id"},
		model.TupleElement{Type: modeltest.ArrayOf(modeltest.StringType()), Label: "rest", IsRest: true},
	)

	node, err := newResolver().ResolveType(tup, nil)
	require.NoError(t, err)

	tn, ok := node.(*kind.Tuple)
	require.True(t, ok)
	require.Len(t, tn.Elements, 2)
	assert.Equal(t, "id", tn.Elements[0].Name)
	assert.True(t, tn.Elements[1].IsRest)
}

func TestConditionalTypeResolvesAllBranches(t *testing.T) {
	cond := modeltest.NewType(model.ClassConditional, "T extends string ? number : boolean")
	cond.Cond = &model.ConditionalParts{
		Check:          modeltest.TypeParameterType("T"),
		Extends:        modeltest.StringType(),
		True:           modeltest.NumberType(),
		False:          modeltest.BooleanType(),
		IsDistributive: true,
	}

	node, err := newResolver().ResolveType(cond, nil)
	require.NoError(t, err)

	cn, ok := node.(*kind.ConditionalType)
	require.True(t, ok)
	assert.True(t, cn.IsDistributive)
	check := cn.CheckType.(*kind.TypeReference)
	assert.Equal(t, "T", check.Name)
	_, ok = cn.FalseType.(*kind.Boolean)
	assert.True(t, ok)
}
