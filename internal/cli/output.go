package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/uconv/internal/config"
)

// yamlIndent matches the indentation config.Save produces.
const yamlIndent = 2

// conversionSettings are the effective output options for one command, after
// config file, environment and flags have been applied.
type conversionSettings struct {
	Format       string
	Precision    int
	ForceDecimal bool
	PreferIEC    bool
}

// resolveSettings starts from the global configuration and applies any
// explicitly set --output, --precision, --decimal and --iec flags.
func resolveSettings(cmd *cobra.Command) (conversionSettings, error) {
	cfg := config.GetGlobalConfig()
	s := conversionSettings{
		Format:       config.GetDefaultOutputFormat(),
		Precision:    config.GetOutputPrecision(),
		ForceDecimal: cfg.Output.ForceDecimal,
		PreferIEC:    cfg.Storage.PreferIEC,
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		s.Format, _ = flags.GetString("output")
	}
	if flags.Changed("precision") {
		s.Precision, _ = flags.GetInt("precision")
	}
	if flags.Changed("decimal") {
		s.ForceDecimal, _ = flags.GetBool("decimal")
	}
	if flags.Changed("iec") {
		s.PreferIEC, _ = flags.GetBool("iec")
	}

	s.Format = strings.ToLower(s.Format)
	if s.Format == "" {
		s.Format = config.FormatText
	}
	if err := validateOutputFormat(s.Format); err != nil {
		return conversionSettings{}, err
	}
	if s.Precision < 0 || s.Precision > config.MaxPrecision {
		return conversionSettings{}, fmt.Errorf("precision %d must be between 0 and %d",
			s.Precision, config.MaxPrecision)
	}
	return s, nil
}

func validateOutputFormat(format string) error {
	switch format {
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: text, json, yaml)", ErrInvalidFormat, format)
	}
}

// writeStructured renders v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}
