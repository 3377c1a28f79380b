// Package gotypes adapts go/types output to the semantic model interfaces.
//
// The adapter is read-only over already-checked packages: it classifies
// go/types shapes into the model's vocabulary (slices become arrays, result
// tuples become tuples, structs and method sets become object shapes,
// constraint type sets become unions) and synthesizes the handful of
// notions Go itself lacks, such as enum symbols for typed constant groups.
// Pointers are unwrapped transparently everywhere.
package gotypes

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/teranos/typedoc/kind"
	"github.com/teranos/typedoc/model"
)

// Provider adapts one checked build (one shared FileSet) to the model.
// Finish AddPackage calls before resolving; after that, resolutions may
// run concurrently. The handle caches fill lazily under a mutex.
type Provider struct {
	fset   *token.FileSet
	module string

	project  map[string]bool
	versions map[string]string

	mu          sync.Mutex
	typeIDs     map[types.Type]*typeHandle
	symbols     map[types.Object]*symbolHandle
	enums       map[*types.TypeName][]*types.Const
	enumMembers map[types.Object]*types.TypeName
	docs        map[string]model.Doc

	seq atomic.Int64
}

// NewProvider creates a provider for a project rooted at the given module
// path. Packages under that path count as project-local.
func NewProvider(module string) *Provider {
	return &Provider{
		module:      module,
		project:     make(map[string]bool),
		versions:    make(map[string]string),
		typeIDs:     make(map[types.Type]*typeHandle),
		symbols:     make(map[types.Object]*symbolHandle),
		enums:       make(map[*types.TypeName][]*types.Const),
		enumMembers: make(map[types.Object]*types.TypeName),
		docs:        make(map[string]model.Doc),
	}
}

// PackageData is one checked package handed to the provider.
type PackageData struct {
	Fset  *token.FileSet
	Files []*ast.File
	Pkg   *types.Package
	// InProject marks the package as part of the documented project.
	InProject bool
	// Version is the containing module's version, for dependencies.
	Version string
}

// AddPackage registers a checked package and returns its documentable
// surface.
func (p *Provider) AddPackage(data PackageData) model.Package {
	if p.fset == nil {
		p.fset = data.Fset
	}
	path := data.Pkg.Path()
	if data.InProject {
		p.project[path] = true
	}
	if data.Version != "" {
		p.versions[path] = data.Version
	}

	p.collectDocs(data.Files)
	p.collectEnums(data.Pkg.Scope())

	var doc string
	for _, f := range data.Files {
		if f.Doc != nil {
			doc = strings.TrimSpace(f.Doc.Text())
			break
		}
	}

	scope := data.Pkg.Scope()
	var exported []model.Symbol
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		// Enum members surface through their enum, not at top level.
		if _, member := p.enumMembers[obj]; member {
			continue
		}
		exported = append(exported, p.symbolFor(obj))
	}

	return &pkgHandle{
		path:     path,
		name:     data.Pkg.Name(),
		doc:      doc,
		exported: exported,
	}
}

// collectEnums groups package-scoped typed constants under their named
// type. A named type with at least one constant behaves as an enum.
func (p *Provider) collectEnums(scope *types.Scope) {
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}
		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}
		tn := named.Obj()
		if tn.Pkg() == nil || tn.Pkg() != c.Pkg() {
			continue
		}
		p.enums[tn] = append(p.enums[tn], c)
		p.enumMembers[c] = tn
	}
	for _, members := range p.enums {
		sort.Slice(members, func(i, j int) bool { return members[i].Pos() < members[j].Pos() })
	}
}

func (p *Provider) collectDocs(files []*ast.File) {
	record := func(pos token.Pos, text string) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		p.docs[p.docKey(pos)] = parseDoc(text)
	}
	for _, f := range files {
		for _, decl := range f.Decls {
			switch d := decl.(type) {
			case *ast.FuncDecl:
				if d.Doc != nil {
					record(d.Name.Pos(), d.Doc.Text())
				}
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch s := spec.(type) {
					case *ast.TypeSpec:
						doc := s.Doc
						if doc == nil {
							doc = d.Doc
						}
						if doc != nil {
							record(s.Name.Pos(), doc.Text())
						}
					case *ast.ValueSpec:
						doc := s.Doc
						if doc == nil {
							doc = d.Doc
						}
						if doc != nil {
							for _, n := range s.Names {
								record(n.Pos(), doc.Text())
							}
						}
					}
				}
			}
		}
		ast.Inspect(f, func(n ast.Node) bool {
			if fl, ok := n.(*ast.Field); ok && fl.Doc != nil {
				for _, name := range fl.Names {
					record(name.Pos(), fl.Doc.Text())
				}
			}
			return true
		})
	}
}

// parseDoc splits a raw doc comment into a description and tags. A
// "Deprecated:" paragraph becomes a deprecated tag, matching go/doc
// conventions.
func parseDoc(text string) model.Doc {
	doc := model.Doc{}
	var desc []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "Deprecated:"); ok {
			doc.Tags = append(doc.Tags, kind.Tag{Name: "deprecated", Text: strings.TrimSpace(rest)})
			continue
		}
		desc = append(desc, line)
	}
	doc.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	return doc
}

func (p *Provider) docKey(pos token.Pos) string {
	if p.fset == nil || !pos.IsValid() {
		return ""
	}
	position := p.fset.Position(pos)
	return fmt.Sprintf("%s:%d", position.Filename, position.Line)
}

// DocFor implements model.DocExtractor over the comments collected from
// the packages' syntax trees.
func (p *Provider) DocFor(decl model.Declaration) (model.Doc, bool) {
	dh, ok := decl.(*declHandle)
	if !ok || dh.docKey == "" {
		return model.Doc{}, false
	}
	doc, ok := p.docs[dh.docKey]
	return doc, ok
}

func (p *Provider) nextID(prefix string) string {
	return prefix + strconv.FormatInt(p.seq.Add(1), 10)
}

// typeFor returns the cached handle for a type, unwrapping pointers.
func (p *Provider) typeFor(t types.Type) *typeHandle {
	if t == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lockedTypeFor(t)
}

func (p *Provider) lockedTypeFor(t types.Type) *typeHandle {
	if ptr, ok := t.(*types.Pointer); ok {
		return p.lockedTypeFor(ptr.Elem())
	}
	if h, ok := p.typeIDs[t]; ok {
		return h
	}
	h := &typeHandle{
		p:  p,
		id: model.TypeID(p.nextID("t")),
		t:  t,
	}
	p.typeIDs[t] = h
	if a, ok := t.(*types.Alias); ok {
		h.alias = p.lockedSymbolFor(a.Obj())
	}
	return h
}

// modelType is typeFor with interface-typed nil handling.
func (p *Provider) modelType(t types.Type) model.Type {
	h := p.typeFor(t)
	if h == nil {
		return nil
	}
	return h
}

func (p *Provider) symbolFor(obj types.Object) *symbolHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lockedSymbolFor(obj)
}

func (p *Provider) lockedSymbolFor(obj types.Object) *symbolHandle {
	if h, ok := p.symbols[obj]; ok {
		return h
	}
	h := &symbolHandle{
		p:   p,
		id:  model.SymbolID(p.nextID("s")),
		obj: obj,
	}
	p.symbols[obj] = h
	h.decl = p.declFor(obj, p.classifyDecl(obj))
	return h
}

func (p *Provider) symbolOrNil(obj types.Object) model.Symbol {
	if obj == nil {
		return nil
	}
	return p.symbolFor(obj)
}

func (p *Provider) classifyDecl(obj types.Object) model.NodeClass {
	switch o := obj.(type) {
	case *types.TypeName:
		if o.IsAlias() {
			return model.NodeTypeAliasDecl
		}
		if _, isEnum := p.enums[o]; isEnum {
			return model.NodeEnumDecl
		}
		switch u := o.Type().Underlying().(type) {
		case *types.Struct:
			return model.NodeInterfaceDecl
		case *types.Interface:
			// Constraint interfaces carry a type set, not a method set;
			// they document as aliases of their union.
			if u.IsMethodSet() {
				return model.NodeInterfaceDecl
			}
		}
		return model.NodeTypeAliasDecl
	case *types.Func:
		if sig, ok := o.Type().(*types.Signature); ok && sig.Recv() != nil {
			return model.NodeMethodDecl
		}
		return model.NodeFunctionDecl
	case *types.Const:
		if _, member := p.enumMembers[o]; member {
			return model.NodeEnumMemberDecl
		}
		return model.NodeVariableDecl
	case *types.Var:
		if o.IsField() {
			return model.NodePropertyDecl
		}
		return model.NodeVariableDecl
	}
	return model.NodeUnknown
}

func (p *Provider) declFor(obj types.Object, class model.NodeClass) *declHandle {
	d := &declHandle{
		class: class,
		text:  types.ObjectString(obj, types.RelativeTo(obj.Pkg())),
		src:   p.sourceFor(obj),
	}
	if pos := obj.Pos(); pos.IsValid() && p.fset != nil {
		position := p.fset.Position(pos)
		d.path = position.Filename
		loc := kind.Location{Line: position.Line, Column: position.Column}
		d.pos = &kind.Position{Start: loc, End: loc}
		d.docKey = p.docKey(pos)
	}
	return d
}

func (p *Provider) sourceFor(obj types.Object) model.Source {
	pkg := obj.Pkg()
	if pkg == nil {
		// Universe scope: error, any, comparable.
		return model.Source{IsGlobal: true}
	}
	src := model.Source{ModuleSpecifier: pkg.Path()}
	switch {
	case p.project[pkg.Path()] || p.inModule(pkg.Path()):
		src.InProject = true
	default:
		if v, ok := p.versions[pkg.Path()]; ok {
			src.ModuleVersion = v
		} else {
			src.IsGlobal = true
		}
	}
	return src
}

func (p *Provider) inModule(path string) bool {
	return p.module != "" && (path == p.module || strings.HasPrefix(path, p.module+"/"))
}

// literalFor turns a constant object into a literal type handle.
func (p *Provider) literalFor(c *types.Const) model.Type {
	val := c.Val()
	lit := model.Literal{Text: val.ExactString()}
	switch val.Kind() {
	case constant.String:
		lit.Class = model.ClassString
		lit.Value = constant.StringVal(val)
	case constant.Bool:
		lit.Class = model.ClassBoolean
		lit.Value = constant.BoolVal(val)
	case constant.Int, constant.Float:
		lit.Class = model.ClassNumber
		f, _ := constant.Float64Val(val)
		lit.Value = f
		lit.Text = strconv.FormatFloat(f, 'g', -1, 64)
	default:
		lit.Class = model.ClassNumber
	}
	return &syntheticType{
		id:    model.TypeID(p.nextID("t")),
		class: lit.Class,
		text:  lit.Text,
		lit:   &lit,
	}
}

var voidSingleton = &syntheticType{id: "t-void", class: model.ClassVoid, text: "void"}

func (p *Provider) voidType() model.Type {
	return voidSingleton
}

func (p *Provider) isEnumType(t types.Type) *types.TypeName {
	n, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil
	}
	if _, isEnum := p.enums[n.Obj()]; isEnum {
		return n.Obj()
	}
	return nil
}
