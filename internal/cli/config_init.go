package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/uconv/internal/config"
)

// errConfigExists is returned when config init would overwrite a file.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at
$UCONV_HOME/config.yaml, or ~/.uconv/config.yaml when UCONV_HOME is unset.

When the file exists you are asked before it is replaced; without a terminal
the command fails unless --force is given.`,
		Example: `  # Create configuration
  uconv config init

  # Create configuration, overwriting existing
  uconv config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	path, err := config.GetConfigFilePath()
	if err != nil {
		return err
	}

	if !force {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if !ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path).Accepted {
				return errConfigExists
			}
		case !os.IsNotExist(statErr):
			return fmt.Errorf("cannot access config path %s: %w", path, statErr)
		}
	}

	if err = config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	cfg.SetConfigPath(path)
	if err = cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", path)

	return nil
}
