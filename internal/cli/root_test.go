package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/uconv/internal/cli"
	"github.com/rshade/uconv/internal/config"
	"github.com/rshade/uconv/internal/engine"
	"github.com/rshade/uconv/internal/units"
)

func TestRootConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "metric", args: []string{"1", "mile", "km"}, want: "1 mile = 1.60934 kilometres\n"},
		{name: "mixed fraction", args: []string{"5 1/2", "ft", "in"}, want: "5 feet, 6 inches = 66 inches\n"},
		{name: "split mixed fraction", args: []string{"5", "1/2", "ft", "in"}, want: "5 feet, 6 inches = 66 inches\n"},
		{name: "negative temperature", args: []string{"-40", "C", "F"}, want: "-40 celsius = -40 fahrenheit\n"},
		{name: "force decimal", args: []string{"-d", "5.5", "lb", "lb"}, want: "5.5 pounds = 5.5 pounds\n"},
		{name: "mixed output", args: []string{"5.5", "lb", "lb"}, want: "5 pounds, 8 ounces = 5 pounds, 8 ounces\n"},
		{name: "storage", args: []string{"10", "GB", "GiB"}, want: "10 gigabytes = 9.31323 gibibytes\n"},
		{name: "iec flag", args: []string{"--iec", "1", "GB", "MB"}, want: "1 gibibyte = 1024 mebibytes\n"},
		{name: "precision flag", args: []string{"--precision", "3", "1", "mile", "km"}, want: "1 mile = 1.61 kilometres\n"},
		{name: "to flag", args: []string{"1", "mile", "--to", "km"}, want: "1 mile = 1.60934 kilometres\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			stdout, _, err := executeCmd(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRootConvert_JoinedValue(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "5mph", "--to", "km/h")
	require.NoError(t, err)
	assert.Contains(t, stdout, "5 mph = 8.04672")
}

func TestRootConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "no arguments", args: nil, wantErr: cli.ErrWrongArgCount},
		{name: "too many arguments", args: []string{"1", "mile", "km", "m"}, wantErr: cli.ErrWrongArgCount},
		{name: "no destination", args: []string{"1", "mile"}, wantErr: cli.ErrWrongArgCount},
		{name: "destination twice", args: []string{"1", "mile", "km", "--to", "m"}, wantErr: cli.ErrWrongArgCount},
		{name: "bad number", args: []string{"abc", "m", "km"}, wantErr: cli.ErrInvalidNumber},
		{name: "division by zero", args: []string{"1/0", "m", "km"}, wantErr: cli.ErrDivisionByZero},
		{name: "unknown unit", args: []string{"1", "furlong", "m"}, wantErr: units.ErrUnknownUnitName},
		{
			name:    "incompatible",
			args:    []string{"1", "meter", "second"},
			wantErr: units.ErrIncompatibleDimensions,
			wantMsg: "can't convert metre to second, because their base dimensions are different",
		},
		{name: "temperature outside rate", args: []string{"1", "celsius", "celsius/sec"}, wantErr: units.ErrTemperatureNotInRate},
		{name: "bad output format", args: []string{"-o", "xml", "1", "mile", "km"}, wantErr: cli.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			_, _, err := executeCmd(t, "", tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Equal(t, 1, cli.ExitCode(err))
		})
	}
}

func TestRootConvert_NoArgsPrintsUsage(t *testing.T) {
	isolateCLI(t)
	_, stderr, err := executeCmd(t, "")
	require.ErrorIs(t, err, cli.ErrWrongArgCount)
	assert.Contains(t, stderr, "Usage:")
}

func TestRootConvert_PrecisionOutOfRange(t *testing.T) {
	isolateCLI(t)
	_, _, err := executeCmd(t, "", "--precision", "40", "1", "mile", "km")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precision 40 must be between 0 and 17")
}

func TestRootConvert_StructuredOutput(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		isolateCLI(t)
		stdout, _, err := executeCmd(t, "", "-o", "json", "1", "mile", "km")
		require.NoError(t, err)

		var res engine.Result
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		assert.InDelta(t, 1.609344, res.Value, 1e-9)
		assert.Equal(t, "mile", res.From)
		assert.Equal(t, "kilometres", res.To)
		assert.Equal(t, "1 mile", res.FromText)
		assert.Equal(t, "1.60934 kilometres", res.Text)
	})

	t.Run("yaml", func(t *testing.T) {
		isolateCLI(t)
		stdout, _, err := executeCmd(t, "", "1", "mile", "km", "--output", "yaml")
		require.NoError(t, err)

		var res engine.Result
		require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
		assert.Equal(t, "1.60934 kilometres", res.Text)
	})
}

func TestRootConvert_ConfigDefaults(t *testing.T) {
	t.Run("default destination from config file", func(t *testing.T) {
		home := isolateCLI(t)
		writeHomeConfig(t, home, "defaults:\n  to_units:\n    mph: km/h\n")

		stdout, _, err := executeCmd(t, "", "60", "mph")
		require.NoError(t, err)
		assert.Contains(t, stdout, "60 mph = 96.5606")
	})

	t.Run("precision from environment", func(t *testing.T) {
		isolateCLI(t)
		t.Setenv(config.EnvPrecision, "3")

		stdout, _, err := executeCmd(t, "", "1", "mile", "km")
		require.NoError(t, err)
		assert.Equal(t, "1 mile = 1.61 kilometres\n", stdout)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		isolateCLI(t)
		t.Setenv(config.EnvPrecision, "3")

		stdout, _, err := executeCmd(t, "", "--precision", "2", "1", "mile", "km")
		require.NoError(t, err)
		assert.Equal(t, "1 mile = 1.6 kilometres\n", stdout)
	})

	t.Run("explicit config file", func(t *testing.T) {
		isolateCLI(t)
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  force_decimal: true\n"), 0o600))

		stdout, _, err := executeCmd(t, "", "--config", path, "5.5", "lb", "lb")
		require.NoError(t, err)
		assert.Equal(t, "5.5 pounds = 5.5 pounds\n", stdout)
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		isolateCLI(t)
		_, _, err := executeCmd(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1", "m", "km")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})
}

func TestRootList(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "-l")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NAME")
	assert.Contains(t, stdout, "imperial foot")
	assert.Contains(t, stdout, "Units can be used in combination: m/sec, lumen/sqinch, J.sec/kg etc")
}

func TestRootVersionFlag(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "-v")
	require.NoError(t, err)
	assert.Equal(t,
		"uconv version 1.2.3\nCopyright (c)2013 Kevin Boone\n"+
			"Freely distributable under the terms of the GNU Public Licence\n",
		stdout)
}

func TestRootAuditLog(t *testing.T) {
	home := isolateCLI(t)
	auditFile := filepath.Join(home, "logs", "audit.log")
	writeHomeConfig(t, home, "logging:\n  audit:\n    enabled: true\n    file: "+auditFile+"\n")

	_, _, err := executeCmd(t, "", "1", "mile", "km")
	require.NoError(t, err)

	data, err := os.ReadFile(auditFile)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "convert", entry["command"])
	assert.Equal(t, true, entry["success"])
	assert.Equal(t, "1.60934 kilometres", entry["result"])
	assert.NotEmpty(t, entry["trace_id"])
}

func TestExitError(t *testing.T) {
	inner := assert.AnError
	err := &cli.ExitError{Code: 2, Err: inner}

	assert.Equal(t, inner.Error(), err.Error())
	require.ErrorIs(t, err, inner)
	assert.Equal(t, 2, cli.ExitCode(err))
	assert.Equal(t, "exit status 4", (&cli.ExitError{Code: 4}).Error())
	assert.Equal(t, 0, cli.ExitCode(nil))
}
