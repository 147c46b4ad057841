package cli_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/uconv/internal/cli"
	"github.com/rshade/uconv/internal/units"
)

type listingJSON struct {
	Units []struct {
		Name        string   `json:"name"        yaml:"name"`
		Description string   `json:"description" yaml:"description"`
		Synonyms    []string `json:"synonyms"    yaml:"synonyms"`
	} `json:"units" yaml:"units"`
	Pagination struct {
		CurrentPage int  `json:"current_page" yaml:"current_page"`
		TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
		TotalItems  int  `json:"total_items"  yaml:"total_items"`
		HasNext     bool `json:"has_next"     yaml:"has_next"`
	} `json:"pagination" yaml:"pagination"`
}

func TestList_Table(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(stdout, "\n")
	assert.Regexp(t, `^NAME\s+DESCRIPTION\s+SYNONYMS$`, lines[0])
	assert.Contains(t, stdout, "gibibyte")
	assert.Contains(t, stdout, "feet, ft")
	assert.Contains(t, stdout, fmt.Sprintf("%d units\n", units.UnitCount()))
	assert.True(t, strings.HasSuffix(stdout, "Units can be used in combination: m/sec, lumen/sqinch, J.sec/kg etc\n"))
}

func TestList_Filters(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name:        "bare text",
			args:        []string{"--filter", "gibi"},
			contains:    []string{"gibibyte", "gibibit"},
			notContains: []string{"imperial foot"},
		},
		{
			name:        "synonym key",
			args:        []string{"--filter", "synonym=ft"},
			contains:    []string{"imperial foot"},
			notContains: []string{"gibibyte"},
		},
		{
			name:        "repeated filters narrow",
			args:        []string{"--filter", "byte", "--filter", "name=gibi"},
			contains:    []string{"gibibyte"},
			notContains: []string{"gigabyte", "gibibit "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			stdout, _, err := executeCmd(t, "", append([]string{"list"}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, stdout, s)
			}
		})
	}
}

func TestList_SortAndPaginateJSON(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "list", "--sort", "name:desc", "--limit", "3", "-o", "json")
	require.NoError(t, err)

	var got listingJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got.Units, 3)
	assert.GreaterOrEqual(t, strings.ToLower(got.Units[0].Name), strings.ToLower(got.Units[1].Name))
	assert.GreaterOrEqual(t, strings.ToLower(got.Units[1].Name), strings.ToLower(got.Units[2].Name))
	assert.Equal(t, units.UnitCount(), got.Pagination.TotalItems)
	assert.True(t, got.Pagination.HasNext)
}

func TestList_PageYAML(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "list", "--page", "2", "--page-size", "10", "-o", "yaml")
	require.NoError(t, err)

	var got listingJSON
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Len(t, got.Units, 10)
	assert.Equal(t, 2, got.Pagination.CurrentPage)
	assert.Equal(t, units.ListCatalog()[10].Name, got.Units[0].Name)
}

func TestList_PageText(t *testing.T) {
	isolateCLI(t)
	stdout, _, err := executeCmd(t, "", "list", "--page", "1", "--page-size", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, fmt.Sprintf("Showing 5 of %d units", units.UnitCount()))
}

func TestList_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "bad filter key", args: []string{"--filter", "colour=red"}, wantErr: cli.ErrInvalidFilter},
		{name: "bad sort field", args: []string{"--sort", "weight"}, wantMsg: "valid fields: description, name, synonyms"},
		{name: "mixed pagination", args: []string{"--page", "1", "--page-size", "5", "--offset", "3"}, wantMsg: "mutually exclusive"},
		{name: "interactive without terminal", args: []string{"--interactive"}, wantMsg: "--interactive requires a terminal"},
		{name: "positional argument", args: []string{"metre"}, wantMsg: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateCLI(t)
			_, _, err := executeCmd(t, "", append([]string{"list"}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
