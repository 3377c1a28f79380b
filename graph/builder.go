// Package graph assembles whole-package documentation trees. It drives
// the resolver over every exported symbol of a package, in parallel, and
// consults the cache so unchanged symbols skip re-resolution.
package graph

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/typedoc/cache"
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/resolver"
)

const defaultWorkers = 4

// Options configures a Builder. Resolver options pass through.
type Options struct {
	Filter    model.Filter
	Docs      model.DocExtractor
	IsTrivial func(model.Type) bool

	// Cache is optional; nil disables caching.
	Cache *cache.Store
	// Workers bounds concurrent symbol resolutions per package.
	Workers int
}

// Builder resolves packages into serializable documentation.
type Builder struct {
	resolver *resolver.Resolver
	cache    *cache.Store
	workers  int
	log      *zap.SugaredLogger
}

// New creates a Builder.
func New(opts Options) *Builder {
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Builder{
		resolver: resolver.New(resolver.Options{
			Filter:    opts.Filter,
			Docs:      opts.Docs,
			IsTrivial: opts.IsTrivial,
		}),
		cache:   opts.Cache,
		workers: workers,
		log:     logger.ComponentLogger("graph"),
	}
}

// PackageDoc is the documentation of one package: its identity plus the
// resolved tree of every exported symbol, in declaration order.
type PackageDoc struct {
	Path        string            `json:"path"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Symbols     []json.RawMessage `json:"symbols"`
}

// BuildPackage resolves every exported symbol of a package. Symbols a
// filter drops are omitted; the rest keep their declaration order.
func (b *Builder) BuildPackage(ctx context.Context, pkg model.Package) (*PackageDoc, error) {
	requestID := uuid.New().String()
	log := b.log.With(
		logger.FieldRequestID, requestID,
		logger.FieldPackage, pkg.Path(),
	)
	start := time.Now()

	symbols := pkg.Exported()
	results := make([]json.RawMessage, len(symbols))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, sym := range symbols {
		i, sym := i, sym
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			payload, err := b.resolveOne(ctx, pkg, sym, log)
			if err != nil {
				return errors.Wrapf(err, "resolve %s.%s", pkg.Path(), sym.Name())
			}
			results[i] = payload
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &PackageDoc{
		Path:        pkg.Path(),
		Name:        pkg.Name(),
		Description: pkg.Doc(),
		Symbols:     make([]json.RawMessage, 0, len(results)),
	}
	for _, payload := range results {
		if payload != nil {
			doc.Symbols = append(doc.Symbols, payload)
		}
	}

	log.Infow("built package documentation",
		logger.FieldCount, len(doc.Symbols),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return doc, nil
}

// BuildAll resolves a set of packages in input order.
func (b *Builder) BuildAll(ctx context.Context, pkgs []model.Package) ([]*PackageDoc, error) {
	docs := make([]*PackageDoc, 0, len(pkgs))
	for _, pkg := range pkgs {
		doc, err := b.BuildPackage(ctx, pkg)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// resolveOne resolves a single symbol, going through the cache when one
// is configured. A nil payload means the symbol resolved to nothing
// (filtered away).
func (b *Builder) resolveOne(ctx context.Context, pkg model.Package, sym model.Symbol, log *zap.SugaredLogger) (json.RawMessage, error) {
	fp := b.fingerprint(sym)

	if b.cache != nil {
		if payload, err := b.cache.Get(ctx, pkg.Path(), sym.Name(), fp); err == nil {
			log.Debugw("cache hit", logger.FieldSymbol, sym.Name())
			return payload, nil
		} else if !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	node, err := b.resolver.ResolveSymbol(sym)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	payload, err := json.Marshal(node)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s", sym.Name())
	}

	if b.cache != nil {
		// Best effort: a failed write costs a re-resolve next run.
		if err := b.cache.Put(ctx, cache.Entry{
			PackagePath: pkg.Path(),
			SymbolName:  sym.Name(),
			Fingerprint: fp,
			Payload:     payload,
		}); err != nil {
			log.Warnw("cache write failed",
				logger.FieldSymbol, sym.Name(),
				logger.FieldError, err,
			)
		}
	}
	return payload, nil
}

// fingerprint covers everything a symbol's resolution can depend on that
// the loader surfaces: declaration sources, their locations, and the
// owning module versions.
func (b *Builder) fingerprint(sym model.Symbol) string {
	parts := []string{sym.Name()}
	for _, d := range sym.Declarations() {
		src := d.Source()
		parts = append(parts, d.Path(), d.Text(), src.ModuleSpecifier, src.ModuleVersion)
	}
	return cache.Fingerprint(parts...)
}
