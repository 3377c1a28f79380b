package gotypes

import (
	"context"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/provenance"
)

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedDeps | packages.NeedTypes |
	packages.NeedSyntax | packages.NeedTypesInfo | packages.NeedModule

// Load type-checks the packages matching the patterns and returns the
// provider plus the documentable surface of each root package. All
// packages share one provider so cross-package references resolve to the
// same handles.
func Load(ctx context.Context, dir string, patterns ...string) (*Provider, []model.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    loadMode,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "load packages")
	}
	if len(pkgs) == 0 {
		return nil, nil, errors.Newf("no packages matched %v", patterns)
	}

	var loadErrs []string
	packages.Visit(pkgs, nil, func(pk *packages.Package) {
		for _, e := range pk.Errors {
			loadErrs = append(loadErrs, e.Error())
		}
	})
	if len(loadErrs) > 0 {
		return nil, nil, errors.Newf("packages failed to load: %s", strings.Join(loadErrs, "; "))
	}

	module := ""
	for _, pk := range pkgs {
		if pk.Module != nil && pk.Module.Main {
			module = pk.Module.Path
			break
		}
	}

	p := NewProvider(module)

	// Dependency versions first, so references resolved out of the root
	// packages carry provenance.
	packages.Visit(pkgs, nil, func(pk *packages.Package) {
		if pk.Module != nil && !pk.Module.Main && pk.Module.Version != "" {
			p.versions[pk.PkgPath] = provenance.Canonical(pk.Module.Version)
		}
	})

	out := make([]model.Package, 0, len(pkgs))
	for _, pk := range pkgs {
		if pk.Types == nil {
			continue
		}
		out = append(out, p.AddPackage(PackageData{
			Fset:      pk.Fset,
			Files:     pk.Syntax,
			Pkg:       pk.Types,
			InProject: pk.Module != nil && pk.Module.Main,
			Version:   p.versions[pk.PkgPath],
		}))
	}

	logger.Debugw("loaded packages",
		logger.FieldCount, len(out),
		logger.FieldModule, module)
	return p, out, nil
}
