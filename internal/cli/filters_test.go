package cli_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/uconv/internal/cli"
	"github.com/rshade/uconv/internal/units"
)

func TestApplyFilters(t *testing.T) {
	t.Parallel()

	entries := []units.CatalogEntry{
		{Name: "feet", Description: "imperial foot", Synonyms: []string{"foot", "ft"}},
		{Name: "gibibytes", Description: "binary gigabyte", Synonyms: []string{"gib"}},
		{Name: "gigabytes", Description: "decimal gigabyte", Synonyms: []string{"gb"}},
		{Name: "metres", Description: "SI length", Synonyms: []string{"metre", "meter", "m"}},
	}

	tests := []struct {
		name          string
		filters       []string
		wantNames     []string
		wantErrSubstr string
	}{
		{
			name:      "no filters returns all entries",
			filters:   []string{},
			wantNames: []string{"feet", "gibibytes", "gigabytes", "metres"},
		},
		{
			name:      "nil filters returns all entries",
			wantNames: []string{"feet", "gibibytes", "gigabytes", "metres"},
		},
		{
			name:      "empty string filter is ignored",
			filters:   []string{""},
			wantNames: []string{"feet", "gibibytes", "gigabytes", "metres"},
		},
		{
			name:      "bare text matches any field",
			filters:   []string{"GIGABYTE"},
			wantNames: []string{"gibibytes", "gigabytes"},
		},
		{
			name:      "name key",
			filters:   []string{"name=gib"},
			wantNames: []string{"gibibytes"},
		},
		{
			name:      "description key",
			filters:   []string{"description=imperial"},
			wantNames: []string{"feet"},
		},
		{
			name:      "synonym key ignores case",
			filters:   []string{"Synonym=METER"},
			wantNames: []string{"metres"},
		},
		{
			name:      "filters narrow in turn",
			filters:   []string{"byte", "synonym=gb"},
			wantNames: []string{"gigabytes"},
		},
		{
			name:      "no match",
			filters:   []string{"furlong"},
			wantNames: nil,
		},
		{
			name:          "unknown key",
			filters:       []string{"colour=red"},
			wantErrSubstr: `unknown key "colour"`,
		},
		{
			name:          "empty value",
			filters:       []string{"name="},
			wantErrSubstr: "empty value",
		},
		{
			name:          "later invalid filter fails before filtering",
			filters:       []string{"feet", "weight=1"},
			wantErrSubstr: "invalid filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cli.ApplyFilters(context.Background(), entries, tt.filters)
			if tt.wantErrSubstr != "" {
				require.ErrorIs(t, err, cli.ErrInvalidFilter)
				assert.Contains(t, err.Error(), tt.wantErrSubstr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestValidateFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filter  string
		wantErr bool
	}{
		{filter: "gibi"},
		{filter: "name=foot"},
		{filter: "description=si"},
		{filter: "synonym=ft"},
		{filter: " NAME = x"},
		{filter: "a=b=name", wantErr: true},
		{filter: "synonym=  ", wantErr: true},
	}

	for _, tt := range tests {
		err := cli.ValidateFilter(tt.filter)
		if tt.wantErr {
			require.ErrorIs(t, err, cli.ErrInvalidFilter, tt.filter)
			continue
		}
		require.NoError(t, err, tt.filter)
	}
}
