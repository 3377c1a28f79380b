package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/typedoc/cache"
	"github.com/teranos/typedoc/config"
	"github.com/teranos/typedoc/errors"
	"github.com/teranos/typedoc/logger"
)

// CacheCmd represents the cache command
var CacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the resolution cache",
	Long: `Inspect and maintain the SQLite cache of resolved documentation.

Examples:
  typedoc cache stats                       # Show cache contents
  typedoc cache clear                       # Drop the whole cache
  typedoc cache clear --package ./internal  # Drop one package's entries`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE:  runCacheStats,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached resolutions",
	Long:  "Delete the cache database, or only one package's rows with --package.",
	RunE:  runCacheClear,
}

var clearPackageFlag string

func init() {
	CacheCmd.AddCommand(cacheStatsCmd)
	CacheCmd.AddCommand(cacheClearCmd)
	cacheClearCmd.Flags().StringVar(&clearPackageFlag, "package", "", "Only clear entries for this package path")
}

func runCacheStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	store, err := cache.Open(cfg.Cache.Path, logger.Logger)
	if err != nil {
		return errors.Wrap(err, "open cache")
	}
	defer store.Close()

	stats, err := store.Stats(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Cache Statistics\n")
	fmt.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")
	fmt.Printf("Cache Path:     %s\n", cfg.Cache.Path)
	fmt.Printf("Cached Nodes:   %d\n", stats.Nodes)
	fmt.Printf("Packages:       %d\n", stats.Packages)
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "load configuration")
	}

	if clearPackageFlag != "" {
		store, err := cache.Open(cfg.Cache.Path, logger.Logger)
		if err != nil {
			return errors.Wrap(err, "open cache")
		}
		defer store.Close()

		n, err := store.InvalidatePackage(cmd.Context(), clearPackageFlag)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d cached nodes for %s\n", n, clearPackageFlag)
		return nil
	}

	if err := os.Remove(cfg.Cache.Path); err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Cache is already empty")
			return nil
		}
		return errors.Wrapf(err, "remove cache database %s", cfg.Cache.Path)
	}
	fmt.Printf("Removed cache database %s\n", cfg.Cache.Path)
	return nil
}
