package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/typedoc/cmd/typedoc/commands"
	"github.com/teranos/typedoc/logger"
)

var rootCmd = &cobra.Command{
	Use:   "typedoc",
	Short: "typedoc - Documentation trees from Go type information",
	Long: `typedoc - Resolve Go packages into serializable documentation trees.

typedoc type-checks a module, walks every exported symbol, and emits a
normalized tree of documentation nodes: interfaces with their members,
functions with their signatures, enums with their values, references for
types that document themselves elsewhere.

Available commands:
  resolve - Resolve packages and emit documentation
  watch   - Re-resolve automatically when sources change
  cache   - Manage the resolution cache
  config  - Manage typedoc configuration
  version - Show version information

Examples:
  typedoc resolve ./...            # Document the current module
  typedoc resolve --format yaml    # Emit YAML instead of JSON
  typedoc watch                    # Rebuild on every source change
  typedoc cache stats              # Show cache contents`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON on stderr")

	rootCmd.AddCommand(commands.ResolveCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.CacheCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
