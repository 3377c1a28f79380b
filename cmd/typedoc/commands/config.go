package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/typedoc/config"
)

// ConfigCmd represents the config command
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage typedoc configuration",
	Long: `Display and manage typedoc configuration settings.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TYPEDOC_* prefix)
3. Project config (./typedoc.toml, searched upward)
4. Persisted overrides (~/.typedoc/overrides.toml)
5. User config (~/.typedoc/config.toml)
6. System config (/etc/typedoc/config.toml)
7. Default values

Examples:
  typedoc config show                  # Show current configuration
  typedoc config show --format json    # Show configuration as JSON
  typedoc config get cache.path        # Get a specific value
  typedoc config validate              # Validate current configuration
  typedoc config where                 # Show where each setting came from`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged typedoc configuration from all sources",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific configuration value",
	Long:  "Get a configuration value using dot notation (e.g., cache.path, resolve.workers)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which layer supplied each
effective setting.`,
	RunE: runConfigWhere,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configGetCmd)
	ConfigCmd.AddCommand(configValidateCmd)
	ConfigCmd.AddCommand(configWhereCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch configFormat {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config to JSON: %w", err)
		}
		fmt.Println(string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Printf("# typedoc configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to TOML: %w", err)
		}
		fmt.Printf("# typedoc configuration\n%s", string(data))

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := config.GetViper()
	if !v.IsSet(key) {
		return fmt.Errorf("configuration key %q not found", key)
	}

	fmt.Println(config.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	fmt.Println("✓ Configuration is valid")
	return nil
}

func runConfigWhere(cmd *cobra.Command, args []string) error {
	intro, err := config.GetIntrospection()
	if err != nil {
		return fmt.Errorf("failed to get config introspection: %w", err)
	}

	fmt.Println("Configuration cascade (later overrides earlier):")
	fmt.Println("  1. [DEFAULT]   Built-in defaults")
	fmt.Println("  2. [SYSTEM]    /etc/typedoc/config.toml")
	fmt.Println("  3. [USER]      ~/.typedoc/config.toml")
	fmt.Println("  4. [OVERRIDE]  ~/.typedoc/overrides.toml")
	fmt.Println("  5. [PROJECT]   ./typedoc.toml (searches up directories)")
	fmt.Println("  6. [ENV]       TYPEDOC_* environment variables")
	fmt.Println()

	// Group settings by their source layer.
	bySource := make(map[config.ConfigSource][]config.SettingInfo)
	for _, setting := range intro.Settings {
		bySource[setting.Source] = append(bySource[setting.Source], setting)
	}

	sourceOrder := []config.ConfigSource{
		config.SourceDefault,
		config.SourceSystem,
		config.SourceUser,
		config.SourceOverride,
		config.SourceProject,
		config.SourceEnvironment,
	}

	fmt.Println("Active configuration:")
	for _, source := range sourceOrder {
		settings := bySource[source]
		if len(settings) == 0 {
			continue
		}
		sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })

		if path := settings[0].SourcePath; path != "" && source != config.SourceDefault {
			fmt.Printf("\n%s: %d settings from %s\n", source, len(settings), path)
		} else {
			fmt.Printf("\n%s: %d settings\n", source, len(settings))
		}
		for _, setting := range settings {
			valueStr := fmt.Sprintf("%v", setting.Value)
			if len(valueStr) > 50 {
				valueStr = valueStr[:47] + "..."
			}
			fmt.Printf("  %s = %s\n", setting.Key, valueStr)
		}
	}
	return nil
}
