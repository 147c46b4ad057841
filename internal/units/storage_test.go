package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemapStorageToIEC(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		wantFrom  string
		wantTo    string
		wantRemap bool
	}{
		{name: "both SI", from: "GB", to: "MB", wantFrom: "gibibyte", wantTo: "mebibyte", wantRemap: true},
		{name: "SI rates", from: "TB/s", to: "MB/h", wantFrom: "tebibyte.second^-1", wantTo: "mebibyte.hour^-1", wantRemap: true},
		{name: "mixed prefixes", from: "GB/h", to: "kB/s", wantFrom: "gibibyte.hour^-1", wantTo: "kibibyte.second^-1", wantRemap: true},
		{name: "plain byte destination", from: "GB", to: "byte", wantFrom: "gigabyte", wantTo: "byte"},
		{name: "plain bit source", from: "bit/s", to: "Mbit/s", wantFrom: "bit.second^-1", wantTo: "megabit.second^-1"},
		{name: "bits", from: "gbit", to: "kbit", wantFrom: "gibibit", wantTo: "kibibit", wantRemap: true},
		{name: "IEC already present", from: "GB", to: "GiB", wantFrom: "gigabyte", wantTo: "gibibyte"},
		{name: "no storage units", from: "m", to: "ft", wantFrom: "metre", wantTo: "foot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, remapped := RemapStorageToIEC(mustParse(t, tt.from), mustParse(t, tt.to))
			assert.Equal(t, tt.wantRemap, remapped)
			assert.Equal(t, tt.wantFrom, from.String())
			assert.Equal(t, tt.wantTo, to.String())
		})
	}
}

func TestRemapStorageToIEC_Conversion(t *testing.T) {
	from, to, remapped := RemapStorageToIEC(mustParse(t, "GB"), mustParse(t, "MB"))
	require.True(t, remapped)

	got, err := Convert(1, from, to)
	require.NoError(t, err)
	assert.InDelta(t, 1024.0, got, 1e-9)
}

func TestStorageClassification(t *testing.T) {
	assert.True(t, Kilobyte.IsSIStorage())
	assert.False(t, Kilobyte.IsIECStorage())
	assert.True(t, Exbibit.IsIECStorage())
	assert.False(t, Byte.IsSIStorage())
	assert.False(t, Byte.IsIECStorage())
}
