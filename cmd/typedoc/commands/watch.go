package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/typedoc/config"
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
	"github.com/teranos/typedoc/watch"
)

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch [patterns...]",
	Short: "Re-resolve automatically when sources change",
	Long: `Resolve once, then keep watching the project directory and rebuild
the documentation whenever Go sources change. Bursts of changes settle
before a rebuild runs.

Examples:
  typedoc watch                        # Watch the whole module
  typedoc watch --out docs.json        # Keep an output file fresh`,
	RunE: runWatch,
}

func init() {
	// Output flags are shared with resolve; watch reuses its flag set so
	// "typedoc watch --out docs.json --format yaml" behaves the same.
	WatchCmd.Flags().AddFlagSet(ResolveCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	dir := resolveDir
	if dir == "" {
		dir = cfg.Project.Dir
	}

	rebuild := func() {
		docs, err := buildDocs(cmd.Context(), cfg, args)
		if err != nil {
			pterm.Error.Printf("Resolution failed: %v\n", err)
			return
		}
		if err := writeDocs(cfg, docs); err != nil {
			pterm.Error.Printf("Writing output failed: %v\n", err)
		}
	}

	// Initial build before entering the watch loop.
	rebuild()

	watcher, err := watch.New(dir)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	if cfg.Watch.DebounceMs > 0 {
		watcher.SetDebounce(time.Duration(cfg.Watch.DebounceMs) * time.Millisecond)
	}
	watcher.OnRebuild(func(changed []string) error {
		logger.Infow("Sources changed",
			logger.FieldCount, len(changed),
		)
		rebuild()
		return nil
	})
	watcher.Start()

	pterm.Info.Printf("Watching %s for changes (Ctrl+C to stop)\n", dir)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	pterm.Info.Println("\nStopping watch mode")
	return nil
}
