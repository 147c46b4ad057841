package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  # Show configuration as YAML
  uconv config show

  # Show configuration as JSON
  uconv config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := config.FormatYAML
			if cmd.Flags().Changed("output") {
				format, _ = cmd.Flags().GetString("output")
			}
			if format == config.FormatText {
				format = config.FormatYAML
			}
			if err := validateOutputFormat(format); err != nil {
				return err
			}
			return writeStructured(cmd.OutOrStdout(), format, config.GetGlobalConfig())
		},
	}
}
