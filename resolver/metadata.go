package resolver

import "github.com/teranos/typedoc/model"

// symbolMeta is the resolved placement of one symbol: where it lives, how
// visible it is, and which declaration speaks for it.
type symbolMeta struct {
	Exported     bool
	InProject    bool
	InDependency bool
	Global       bool
	// Virtual marks checker-synthesized symbols with no declarations at
	// all (mapped-type property symbols, for instance).
	Virtual bool

	ModuleSpecifier string
	ModuleVersion   string
	Declaration     model.Declaration
}

// declRank orders a symbol's declarations by authority when a symbol has
// several (merged declarations, overload sets). Higher wins; ties keep
// source order.
var declRank = map[model.NodeClass]int{
	model.NodeInterfaceDecl:    9,
	model.NodeClassDecl:        9,
	model.NodeEnumDecl:         9,
	model.NodeTypeAliasDecl:    8,
	model.NodeNamespaceDecl:    7,
	model.NodeFunctionDecl:     6,
	model.NodeMethodDecl:       5,
	model.NodeAccessorDecl:     5,
	model.NodeFunctionOverload: 4,
	model.NodeVariableDecl:     3,
	model.NodePropertyDecl:     2,
	model.NodeEnumMemberDecl:   2,
	model.NodeParameterDecl:    1,
}

// locate picks the authoritative declaration from a symbol's declaration
// list, or nil for an empty list.
func locate(decls []model.Declaration) model.Declaration {
	var best model.Declaration
	bestRank := -1
	for _, d := range decls {
		if d == nil {
			continue
		}
		if rk := declRank[d.Class()]; rk > bestRank {
			best, bestRank = d, rk
		}
	}
	return best
}

func (r *Resolver) symbolMeta(sym model.Symbol, enclosing model.Declaration) symbolMeta {
	var m symbolMeta
	if sym == nil {
		return m
	}
	decls := sym.Declarations()
	if len(decls) == 0 {
		m.Virtual = true
		return m
	}
	d := locate(decls)
	m.Declaration = d
	src := d.Source()
	m.InProject = src.InProject
	m.Global = src.IsGlobal
	m.InDependency = !src.InProject && !src.IsGlobal
	m.ModuleSpecifier = src.ModuleSpecifier
	m.ModuleVersion = src.ModuleVersion
	m.Exported = sym.IsExported(enclosing)
	return m
}

// ownerSymbol returns the symbol a type is known by: the alias it was
// referred through when there is one, otherwise its declaring symbol.
func ownerSymbol(t model.Type) model.Symbol {
	if t == nil {
		return nil
	}
	if a := t.AliasSymbol(); a != nil {
		return a
	}
	return t.Symbol()
}
