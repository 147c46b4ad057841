package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/cli/pagination"
	"github.com/rshade/uconv/internal/config"
	"github.com/rshade/uconv/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the uconv CLI. The root
// command itself performs a conversion; list, batch, config and version are
// subcommands. Callers that pass raw os.Args should route them through
// NormalizeNegativeArgs first so "-5" is read as a value.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult *logging.LogPathResult
		toFlag    string
		listFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "uconv [flags] <value> <from_units> [to_units]",
		Short: "Convert quantities between compound units",
		Long: `uconv converts a quantity between units of measure, including compound
units such as m/sec, lumen/sqinch or J.sec/kg.

Unit names accept SI prefixes (kilometre, km), exponents (m2, sqft, cubic
inch) and common synonyms. Imperial results are shown in mixed units such as
"5 feet, 6 inches" unless -d is given.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfigFlag(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if listFlag {
				return runList(cmd, listOptions{page: pagination.NewPaginationParams()})
			}
			if len(args) == 0 {
				_ = cmd.Usage()
				return ErrWrongArgCount
			}
			return runConvert(cmd, args, toFlag)
		},
	}

	cmd.SetVersionTemplate(versionTemplate)

	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "list available units")
	cmd.Flags().StringVar(&toFlag, "to", "", "destination units when only source units are given")

	cmd.PersistentFlags().BoolP("decimal", "d", false, "force decimal output instead of mixed units")
	cmd.PersistentFlags().Bool("iec", false, "read decimal storage units (GB) as binary ones (GiB)")
	cmd.PersistentFlags().Int("precision", config.DefaultPrecision,
		"significant digits in results (0 = shortest exact representation)")
	cmd.PersistentFlags().StringP("output", "o", config.FormatText, "output format: text, json, yaml")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "configuration file (default $UCONV_HOME/config.yaml)")

	cmd.AddCommand(NewListCmd(), NewBatchCmd(), newConfigCmd(), NewVersionCmd())

	return cmd
}

const rootCmdExample = `  # Convert a distance
  uconv 1 mile km

  # Compound units and prefixes
  uconv 60 mph m/sec
  uconv 3600 kJ/hour W

  # Fractions, mixed fractions and negative values
  uconv 1/2 mile yards
  uconv 5 1/2 ft m
  uconv -40 celsius fahrenheit

  # Value joined to its units, destination from --to
  uconv 5mph --to km/h

  # Decimal instead of mixed units
  uconv -d 5.5 lb lb

  # Digital storage
  uconv 10 GB GiB

  # List units
  uconv list --filter byte`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
