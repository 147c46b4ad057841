package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/uconv/internal/config"
)

// newDefaultTarget returns a Config with known non-zero defaults so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Output: config.OutputConfig{
			DefaultFormat: "text",
			Precision:     6,
		},
		Logging: config.LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		Storage: config.StorageConfig{
			PreferIEC: true,
		},
		Defaults: config.DefaultsConfig{
			ToUnits: map[string]string{"mph": "km/h"},
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 4
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 4, target.Output.Precision)

	assert.Equal(t, "warn", target.Logging.Level)
	assert.True(t, target.Storage.PreferIEC)
	assert.Equal(t, "km/h", target.Defaults.ToUnits["mph"])
}

func TestShallowMergeYAML_SectionIsReplacedNotMerged(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
defaults:
  to_units:
    lb: kg
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"lb": "kg"}, target.Defaults.ToUnits)
}

func TestShallowMergeYAML_ZeroValueFieldsReplaceDefaults(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: text
  precision: 0
storage:
  prefer_iec: false
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, 0, target.Output.Precision)
	assert.False(t, target.Storage.PreferIEC)
}

func TestShallowMergeYAML_LoggingWithAudit(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: json
  file: /tmp/uconv.log
  audit:
    enabled: true
    file: /tmp/uconv-audit.log
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "json", target.Logging.Format)
	assert.Equal(t, "/tmp/uconv.log", target.Logging.File)
	assert.True(t, target.Logging.Audit.Enabled)
	assert.Equal(t, "/tmp/uconv-audit.log", target.Logging.Audit.File)
}

func TestShallowMergeYAML_EmptyAndCommentOnly(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"comment only": "# nothing here\n",
	} {
		t.Run(name, func(t *testing.T) {
			target := newDefaultTarget()
			original := *target

			require.NoError(t, config.ShallowMergeYAML(target, writeOverlay(t, content)))
			assert.Equal(t, original.Output, target.Output)
			assert.Equal(t, original.Logging, target.Logging)
			assert.Equal(t, original.Storage, target.Storage)
		})
	}
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: yaml
unknown_section:
  foo: bar
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name        string
		path        func(t *testing.T) string
		errContains string
	}{
		{
			name:        "corrupted yaml",
			path:        func(t *testing.T) string { return writeOverlay(t, "{{{{not valid yaml at all") },
			errContains: "parsing overlay YAML",
		},
		{
			name:        "missing file",
			path:        func(_ *testing.T) string { return "/nonexistent/path/overlay.yaml" },
			errContains: "reading overlay file",
		},
		{
			name:        "wrong section type",
			path:        func(t *testing.T) string { return writeOverlay(t, "output:\n  precision: many\n") },
			errContains: `applying overlay section "output"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.ShallowMergeYAML(newDefaultTarget(), tt.path(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	err := config.ShallowMergeYAML(nil, "unused")
	require.Error(t, err)
}
