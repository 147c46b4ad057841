package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, text string) Expression {
	t.Helper()
	expr, err := Parse(text)
	require.NoError(t, err)
	return expr
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		plural bool
		want   string
	}{
		{name: "single", text: "m", plural: false, want: "metre"},
		{name: "single plural", text: "ft", plural: true, want: "feet"},
		{name: "prefixed", text: "km", plural: true, want: "kilometres"},
		{name: "only numerator tail pluralized", text: "ft/s", plural: true, want: "feet/second"},
		{name: "compound numerator", text: "N.m", plural: true, want: "newton.metres"},
		{name: "square word", text: "m2", plural: true, want: "square metres"},
		{name: "square with prefix", text: "km2", plural: false, want: "square kilometre"},
		{name: "cubic word", text: "cuft", plural: false, want: "cubic foot"},
		{name: "high power suffix", text: "m4", plural: false, want: "metre^4"},
		{name: "leading reciprocal", text: "/s", plural: false, want: "/second"},
		{name: "squared denominator", text: "kg.m2/s2", plural: true, want: "kilogramme.square metres/square second"},
		{name: "deep negative power uses dot", text: "m.s-4", plural: false, want: "metre.second^-4"},
		{name: "dimensionless", text: "", plural: true, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(mustParse(t, tt.text), tt.plural))
		})
	}
}

func TestFormatValue_Mixed(t *testing.T) {
	tests := []struct {
		name  string
		unit  UnitID
		value float64
		want  string
	}{
		{name: "pounds and ounces", unit: Pound, value: 5.5, want: "5 pounds, 8 ounces"},
		{name: "one pound", unit: Pound, value: 1, want: "1 pound"},
		{name: "feet and inches", unit: Foot, value: 5.5, want: "5 feet, 6 inches"},
		{name: "negative sign once", unit: Foot, value: -2.5, want: "-2 feet, 6 inches"},
		{name: "mile and yards", unit: Mile, value: 1.5, want: "1 mile, 880 yards"},
		{name: "yard chain", unit: Yard, value: 1.5, want: "1 yard, 1 foot, 6 inches"},
		{name: "hours and minutes", unit: Hour, value: 1.25, want: "1 hour, 15 minutes"},
		{name: "minutes and seconds", unit: Minute, value: 2.5, want: "2 minutes, 30 seconds"},
		{name: "tons and hundredweight", unit: Ton, value: 2.5, want: "2 tons, 10 hundredweight"},
		{name: "hundredweight and stone", unit: Hundredweight, value: 1.5, want: "1 hundredweight, 4 stones"},
		{name: "stone and pounds", unit: Stone, value: 10.5, want: "10 stones, 7 pounds"},
		{name: "gallon and pints", unit: Gallon, value: 1.5, want: "1 gallon, 4 pints"},
		{name: "pints and fluid ounces", unit: Pint, value: 0.25, want: "0 pints, 5 fluid-ounces"},
		{name: "whole count", unit: Mile, value: 3, want: "3 miles"},
		{name: "leaf clause rounded", unit: Foot, value: 1.1, want: "1 foot, 1.2 inches"},
		{name: "beyond exact integers", unit: Mile, value: 1.578e20, want: "1.578e+20 miles"},
		{name: "negative beyond exact integers", unit: Foot, value: -1e25, want: "-1e+25 feet"},
		{name: "infinite", unit: Foot, value: math.Inf(1), want: "+Inf feet"},
		{name: "negative infinite", unit: Pound, value: math.Inf(-1), want: "-Inf pounds"},
		{name: "largest exact whole", unit: Foot, value: 1 << 52, want: "4503599627370496 feet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(Single(tt.unit), tt.value, false))
		})
	}
}

func TestFormatValue_Generic(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		value        float64
		forceDecimal bool
		want         string
	}{
		{name: "forced decimal", text: "lb", value: 5.5, forceDecimal: true, want: "5.5 pounds"},
		{name: "singular", text: "m", value: 1, want: "1 metre"},
		{name: "plural", text: "km", value: 2, want: "2 kilometres"},
		{name: "prefixed mixed unit is generic", text: "kft", value: 1.5, want: "1.5 kilofeet"},
		{name: "rate", text: "km/h", value: 96.56064, want: "96.56064 kilometres/hour"},
		{name: "dimensionless", text: "", value: 3, want: "3"},
		{name: "large", text: "byte", value: 1e21, want: "1e+21 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(mustParse(t, tt.text), tt.value, tt.forceDecimal))
		})
	}
}

func TestFormatValueWith_Precision(t *testing.T) {
	got := FormatValueWith(Single(Gibibyte), 9.313225746154785, FormatOptions{Precision: 6})
	assert.Equal(t, "9.31323 gibibytes", got)

	got = FormatValueWith(Single(Foot), 0.3, FormatOptions{Precision: 4})
	assert.Equal(t, "0 feet, 3.6 inches", got)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.1", FormatNumber(0.1, 0))
	assert.Equal(t, "1e+06", FormatNumber(1e6, 0))
	assert.Equal(t, "3.14", FormatNumber(3.14159, 3))
}

func BenchmarkFormatValue(b *testing.B) {
	expr := Single(Pound)
	for b.Loop() {
		FormatValue(expr, 5.5, false)
	}
}
