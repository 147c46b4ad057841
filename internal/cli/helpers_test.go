package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/uconv/internal/cli"
	"github.com/rshade/uconv/internal/config"
)

// isolateCLI points UCONV_HOME at a fresh directory, clears every UCONV_*
// override and resets the global configuration around the test.
func isolateCLI(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	for _, env := range []string{
		config.EnvOutputFormat, config.EnvPrecision, config.EnvForceDecimal,
		config.EnvPreferIEC, config.EnvLogFormat, config.EnvLogFile,
	} {
		t.Setenv(env, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// writeHomeConfig writes config.yaml into the isolated UCONV_HOME.
func writeHomeConfig(t *testing.T, home, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o600))
}

// executeCmd runs the root command with args the way main does and returns
// stdout and stderr.
func executeCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	root := cli.NewRootCmd("1.2.3")
	root.SetArgs(cli.NormalizeNegativeArgs(root, args))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
