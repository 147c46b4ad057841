package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax of the file itself
- Output format and precision range
- Logging level and format
- Every defaults.to_units entry, which must name convertible units`,
		Example: `  # Validate current configuration
  uconv config validate

  # Validate and show detailed information
  uconv config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVar(&verbose, "verbose", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.LoadError(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Force decimal: %t\n", cfg.Output.ForceDecimal)
	cmd.Printf("  Prefer IEC storage units: %t\n", cfg.Storage.PreferIEC)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	printDefaultUnits(cmd, cfg)
}

// printDefaultUnits prints the configured default destinations.
func printDefaultUnits(cmd *cobra.Command, cfg *config.Config) {
	if len(cfg.Defaults.ToUnits) == 0 {
		cmd.Println("  No default destination units configured")
		return
	}

	cmd.Printf("  Default destination units: %d\n", len(cfg.Defaults.ToUnits))
	for _, from := range slices.Sorted(maps.Keys(cfg.Defaults.ToUnits)) {
		cmd.Printf("    - %s -> %s\n", from, cfg.Defaults.ToUnits[from])
	}
}
