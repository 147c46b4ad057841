package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/uconv/internal/logging"
	"github.com/rshade/uconv/internal/units"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Defaults applied before the config file and environment.
const (
	DefaultPrecision = 6
	MaxPrecision     = 17
	configFileName   = "config.yaml"
)

// Environment variable overrides.
const (
	EnvHome         = "UCONV_HOME"
	EnvOutputFormat = "UCONV_OUTPUT_FORMAT"
	EnvPrecision    = "UCONV_PRECISION"
	EnvForceDecimal = "UCONV_FORCE_DECIMAL"
	EnvPreferIEC    = "UCONV_PREFER_IEC"
	EnvLogLevel     = "UCONV_LOG_LEVEL"
	EnvLogFormat    = "UCONV_LOG_FORMAT"
	EnvLogFile      = "UCONV_LOG_FILE"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full uconv configuration.
type Config struct {
	Output   OutputConfig   `json:"output" yaml:"output"`
	Logging  LoggingConfig  `json:"logging" yaml:"logging"`
	Storage  StorageConfig  `json:"storage" yaml:"storage"`
	Defaults DefaultsConfig `json:"defaults" yaml:"defaults"`

	configPath string
	loadErr    error
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
	Precision     int    `json:"precision" yaml:"precision"`
	ForceDecimal  bool   `json:"force_decimal" yaml:"force_decimal"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string      `json:"level" yaml:"level"`
	Format string      `json:"format" yaml:"format"`
	File   string      `json:"file,omitempty" yaml:"file,omitempty"`
	Audit  AuditConfig `json:"audit" yaml:"audit"`
}

// AuditConfig controls the conversion audit trail.
type AuditConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	File    string `json:"file,omitempty" yaml:"file,omitempty"`
}

// StorageConfig controls digital-storage unit handling.
type StorageConfig struct {
	// PreferIEC treats SI storage units (GB) as their binary counterparts
	// (GiB) when no binary unit is named explicitly.
	PreferIEC bool `json:"prefer_iec" yaml:"prefer_iec"`
}

// DefaultsConfig holds per-unit default destinations used when only a source
// unit is given, e.g. {"mph": "km/h"}.
type DefaultsConfig struct {
	ToUnits map[string]string `json:"to_units,omitempty" yaml:"to_units,omitempty"`
}

// Default returns a configuration holding only built-in defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatText,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  logging.DefaultLevel,
			Format: logging.FormatConsole,
		},
	}
}

// New returns the effective configuration: defaults, then the config file
// under GetConfigDir if one exists, then environment overrides. A malformed
// config file leaves the defaults in place and is reported by LoadError.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err != nil {
		cfg.loadErr = err
		cfg.applyEnv()
		return cfg
	}
	cfg.configPath = filepath.Join(dir, configFileName)

	if _, statErr := os.Stat(cfg.configPath); statErr == nil {
		if mergeErr := ShallowMergeYAML(cfg, cfg.configPath); mergeErr != nil {
			cfg.loadErr = mergeErr
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads the configuration at path strictly: the file must exist and
// parse. Environment overrides are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// ConfigPath returns the file this configuration is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// LoadError returns the error encountered while reading the config file, if
// any.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Save writes the configuration as YAML to ConfigPath, creating the parent
// directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section for semantic errors.
func (c *Config) Validate() error {
	var errs []error

	// An empty format, as left by a partial output section, means text.
	if !slices.Contains([]string{"", FormatText, FormatJSON, FormatYAML}, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be one of text, json, yaml",
			c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		errs = append(errs, fmt.Errorf("output.precision %d must be between 0 and %d",
			c.Output.Precision, MaxPrecision))
	}

	if c.Logging.Level != "" {
		if _, err := zerologLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging.level %q: %w", c.Logging.Level, err))
		}
	}
	switch c.Logging.Format {
	case "", logging.FormatJSON, logging.FormatConsole, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be one of json, console, text", c.Logging.Format))
	}
	if c.Logging.Audit.Enabled && c.Logging.Audit.File == "" {
		errs = append(errs, errors.New("logging.audit.file is required when auditing is enabled"))
	}

	for from, to := range c.Defaults.ToUnits {
		if _, err := units.ConvertText(1, from, to); err != nil {
			errs = append(errs, fmt.Errorf("defaults.to_units[%s]: %w", from, err))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// DefaultToUnits returns the configured destination for from. Keys match
// exactly first, then ignoring case.
func (c *Config) DefaultToUnits(from string) (string, bool) {
	if to, ok := c.Defaults.ToUnits[from]; ok {
		return to, true
	}
	for k, to := range c.Defaults.ToUnits {
		if strings.EqualFold(k, from) {
			return to, true
		}
	}
	return "", false
}

// applyEnv overlays UCONV_* environment variables. Unparseable values are
// ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = strings.ToLower(v)
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Output.Precision = n
		}
	}
	if v := os.Getenv(EnvForceDecimal); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Output.ForceDecimal = b
		}
	}
	if v := os.Getenv(EnvPreferIEC); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Storage.PreferIEC = b
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
}
