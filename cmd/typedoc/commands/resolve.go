package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/typedoc/cache"
	"github.com/teranos/typedoc/config"
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/filter"
	"github.com/teranos/typedoc/graph"
	"github.com/teranos/typedoc/logger"
	"github.com/teranos/typedoc/model"
	"github.com/teranos/typedoc/model/gotypes"
)

// ResolveCmd represents the resolve command
var ResolveCmd = &cobra.Command{
	Use:   "resolve [patterns...]",
	Short: "Resolve packages and emit documentation",
	Long: `Type-check the project and resolve every exported symbol into a
documentation tree.

Patterns default to ./... under the project directory. Output goes to
stdout (or --out) as JSON; logs stay on stderr so output can be piped.

Examples:
  typedoc resolve                          # Whole module, JSON to stdout
  typedoc resolve ./pkg/... --format yaml  # One subtree as YAML
  typedoc resolve --out docs.json --pretty # Indented JSON to a file
  typedoc resolve --no-cache               # Force full re-resolution`,
	RunE: runResolve,
}

var (
	resolveDir     string
	resolveFormat  string
	resolvePretty  bool
	resolveOut     string
	resolveFilter  string
	resolveNoCache bool
	resolveWorkers int
	resolveSymbol  string
)

func init() {
	ResolveCmd.Flags().StringVar(&resolveDir, "dir", "", "Project directory (default: from config)")
	ResolveCmd.Flags().StringVar(&resolveFormat, "format", "", "Output format: json, yaml (default: from config)")
	ResolveCmd.Flags().BoolVar(&resolvePretty, "pretty", false, "Indent JSON output")
	ResolveCmd.Flags().StringVar(&resolveOut, "out", "", "Write output to file instead of stdout")
	ResolveCmd.Flags().StringVar(&resolveFilter, "filter", "", "TOML filter rules for dependency types")
	ResolveCmd.Flags().BoolVar(&resolveNoCache, "no-cache", false, "Bypass the resolution cache")
	ResolveCmd.Flags().IntVar(&resolveWorkers, "workers", 0, "Concurrent symbol resolutions per package (default: from config)")
	ResolveCmd.Flags().StringVar(&resolveSymbol, "symbol", "", "Only emit the named exported symbol")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	docs, err := buildDocs(cmd.Context(), cfg, args)
	if err != nil {
		return err
	}
	return writeDocs(cfg, docs)
}

// buildDocs runs one full resolution pass: load, filter, cache, build.
// Shared with watch mode.
func buildDocs(ctx context.Context, cfg *config.Config, patterns []string) ([]*graph.PackageDoc, error) {
	dir := resolveDir
	if dir == "" {
		dir = cfg.Project.Dir
	}
	if len(patterns) == 0 {
		patterns = cfg.Project.Patterns
	}

	spinner, _ := pterm.DefaultSpinner.Start("Type-checking packages...")

	provider, pkgs, err := gotypes.Load(ctx, dir, patterns...)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Type-checking failed")
		}
		return nil, err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Type-checked %d packages", len(pkgs)))
	}

	var typeFilter model.Filter
	filterPath := resolveFilter
	if filterPath == "" {
		filterPath = cfg.Resolve.FilterPath
	}
	if filterPath != "" {
		f, err := filter.Load(filterPath)
		if err != nil {
			return nil, err
		}
		typeFilter = f
	}

	var store *cache.Store
	if cfg.Cache.Enabled && !resolveNoCache {
		store, err = cache.Open(cfg.Cache.Path, logger.Logger)
		if err != nil {
			return nil, err
		}
		defer store.Close()
	}

	workers := resolveWorkers
	if workers == 0 {
		workers = cfg.Resolve.Workers
	}

	builder := graph.New(graph.Options{
		Filter:  typeFilter,
		Docs:    provider,
		Cache:   store,
		Workers: workers,
	})

	docs, err := builder.BuildAll(ctx, pkgs)
	if err != nil {
		return nil, err
	}

	if resolveSymbol != "" {
		docs = selectSymbol(docs, resolveSymbol)
		if len(docs) == 0 {
			return nil, errors.Newf("symbol %q not found in any resolved package", resolveSymbol)
		}
	}

	total := 0
	for _, doc := range docs {
		total += len(doc.Symbols)
	}
	pterm.Success.Printf("Resolved %d symbols across %d packages\n", total, len(docs))
	return docs, nil
}

// selectSymbol narrows the output to one named symbol, dropping packages
// that don't declare it.
func selectSymbol(docs []*graph.PackageDoc, name string) []*graph.PackageDoc {
	var kept []*graph.PackageDoc
	for _, doc := range docs {
		var matches []json.RawMessage
		for _, payload := range doc.Symbols {
			var probe struct {
				Name string `json:"name"`
			}
			if err := json.Unmarshal(payload, &probe); err != nil {
				continue
			}
			if probe.Name == name {
				matches = append(matches, payload)
			}
		}
		if len(matches) > 0 {
			doc.Symbols = matches
			kept = append(kept, doc)
		}
	}
	return kept
}

// writeDocs serializes the package docs to the configured destination.
func writeDocs(cfg *config.Config, docs []*graph.PackageDoc) error {
	format := resolveFormat
	if format == "" {
		format = cfg.Output.Format
	}
	pretty := resolvePretty || cfg.Output.Pretty

	var data []byte
	var err error
	switch format {
	case "", "json":
		if pretty {
			data, err = json.MarshalIndent(docs, "", "  ")
		} else {
			data, err = json.Marshal(docs)
		}
		if err != nil {
			return errors.Wrap(err, "marshal documentation to JSON")
		}
		data = append(data, '\n')

	case "yaml":
		// Round-trip through JSON so RawMessage payloads render as
		// structures instead of byte arrays.
		raw, err := json.Marshal(docs)
		if err != nil {
			return errors.Wrap(err, "marshal documentation")
		}
		var generic interface{}
		if err := json.Unmarshal(raw, &generic); err != nil {
			return errors.Wrap(err, "decode documentation for YAML output")
		}
		data, err = yaml.Marshal(generic)
		if err != nil {
			return errors.Wrap(err, "marshal documentation to YAML")
		}

	default:
		return errors.Newf("unsupported format: %s (supported: json, yaml)", format)
	}

	out := resolveOut
	if out == "" {
		out = cfg.Output.Path
	}
	if out == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrapf(err, "write output to %s", out)
	}
	pterm.Info.Printf("Wrote documentation to %s\n", out)
	return nil
}
