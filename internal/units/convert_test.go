package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionTable_SlopesPositive(t *testing.T) {
	for id := Invalid + 1; id < unitCount; id++ {
		c, ok := conversionFor(id)
		require.True(t, ok, "unit %s has no conversion", id)
		assert.Greater(t, c.slope, 0.0, "unit %s", id)
		assert.NotEmpty(t, c.base, "unit %s", id)
	}
}

func TestConvert_Identity(t *testing.T) {
	for id := Invalid + 1; id < unitCount; id++ {
		got, err := Convert(1, Single(id), Single(id))
		require.NoError(t, err, "unit %s", id)
		assert.Equal(t, 1.0, got, "unit %s", id)
	}
}

func TestReduce_NoDuplicatesOrZeroExponents(t *testing.T) {
	for _, text := range []string{"kg.m2/s2", "J.sec/kg", "W/m2", "psi", "lux", "cd", "mpg", "N.m/s"} {
		expr, err := Parse(text)
		require.NoError(t, err)

		vec, factor, err := Reduce(expr)
		require.NoError(t, err, text)
		assert.Greater(t, factor, 0.0)

		seen := map[UnitID]bool{}
		for _, term := range vec.Terms() {
			assert.NotZero(t, term.Exponent, text)
			assert.Zero(t, term.PrefixPower, text)
			assert.False(t, seen[term.Unit], "%s: duplicate %s", text, term.Unit)
			seen[term.Unit] = true
		}
	}
}

func TestConvertText(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
		delta float64
	}{
		{name: "km/h to h/km inverts", value: 1, from: "km/h", to: "h/km", want: 1, delta: 1e-12},
		{name: "km/h to s/m inverts", value: 1, from: "km/h", to: "s/m", want: 3.6, delta: 1e-12},
		{name: "mile to km", value: 1, from: "mile", to: "km", want: 1.609344, delta: 1e-12},
		{name: "mph to km/h", value: 60, from: "mph", to: "km/h", want: 96.56064, delta: 1e-9},
		{name: "kmh synonym", value: 36, from: "kmh", to: "m/s", want: 10, delta: 1e-12},
		{name: "sqft to sq m", value: 1, from: "sqft", to: "sqm", want: 0.09290304, delta: 1e-12},
		{name: "acre to hectare", value: 1, from: "acre", to: "hectare", want: 0.40468564224, delta: 1e-12},
		{name: "pound to kg", value: 1, from: "lb", to: "kg", want: 0.45359237, delta: 1e-12},
		{name: "joule to newton metre", value: 5, from: "J", to: "N.m", want: 5, delta: 1e-12},
		{name: "watt to joule per second", value: 3, from: "W", to: "J/s", want: 3, delta: 1e-12},
		{name: "psi to pascal", value: 1, from: "psi", to: "Pa", want: 6894.757, delta: 1e-6},
		{name: "atmosphere to bar", value: 1, from: "atm", to: "bar", want: 1.01325, delta: 1e-12},
		{name: "gigabyte to gibibyte", value: 10, from: "GB", to: "GiB", want: 10e9 / math.Pow(2, 30), delta: 1e-9},
		{name: "kilobit to byte", value: 1, from: "kilobit", to: "byte", want: 125, delta: 1e-12},
		{name: "mebibit to kibibyte", value: 1, from: "mebibit", to: "kibibyte", want: 128, delta: 1e-12},
		{name: "mpg to litres per 100 km", value: 30, from: "mpg", to: "l100k", want: 9.416, delta: 1e-3},
		{name: "revolution to degrees", value: 1, from: "revolution", to: "deg", want: 360, delta: 1e-9},
		{name: "celsius rate to kelvin rate", value: 2, from: "celsius/sec", to: "kelvin/sec", want: 2, delta: 1e-12},
		{name: "fahrenheit rate to celsius rate", value: 9, from: "F/min", to: "C/min", want: 5, delta: 1e-12},
		{name: "dimensionless", value: 7, from: "", to: "", want: 7, delta: 0},
		{name: "cancelled units are dimensionless", value: 7, from: "m/m", to: "", want: 7, delta: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertText(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestConvertText_CorrectedSlopes(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want float64
	}{
		{from: "torr", to: "Pa", want: 133.322368},
		{from: "kilobit", to: "bit", want: 1000},
		{from: "megabit", to: "kilobit", want: 1000},
		{from: "Mbit", to: "byte", want: 125000},
		{from: "exabit", to: "petabyte", want: 125},
		{from: "kmh", to: "m/s", want: 1 / 3.6},
		{from: "gray", to: "J/kg", want: 1},
		{from: "rad", to: "gray", want: 0.01},
		{from: "rem", to: "sievert", want: 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			got, err := ConvertText(1, tt.from, tt.to)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_Temperature(t *testing.T) {
	tests := []struct {
		value float64
		from  string
		to    string
		want  float64
	}{
		{0, "celsius", "fahrenheit", 32},
		{100, "celsius", "kelvin", 373.15},
		{0, "celsius", "rankine", 491.67},
		{32, "fahrenheit", "celsius", 0},
		{212, "fahrenheit", "kelvin", 373.15},
		{0, "fahrenheit", "rankine", 459.67},
		{0, "kelvin", "celsius", -273.15},
		{0, "kelvin", "fahrenheit", -459.67},
		{100, "kelvin", "rankine", 180},
		{491.67, "rankine", "celsius", 0},
		{459.67, "rankine", "fahrenheit", 0},
		{180, "rankine", "kelvin", 100},
		{-40, "C", "F", -40},
		{25, "celsius", "celsius", 25},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			got, err := ConvertText(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name        string
		from        string
		to          string
		wantErr     error
		errContains string
	}{
		{
			name:        "length to time",
			from:        "meter",
			to:          "second",
			wantErr:     ErrIncompatibleDimensions,
			errContains: "can't convert metre to second, because their base dimensions are different",
		},
		{name: "area to length", from: "sqft", to: "m", wantErr: ErrIncompatibleDimensions},
		{name: "mixed equal and inverse", from: "m/s", to: "m.s", wantErr: ErrIncompatibleDimensions},
		{name: "temperature into a rate", from: "celsius", to: "celsius/sec", wantErr: ErrTemperatureNotInRate},
		{name: "temperature to length", from: "kelvin", to: "m", wantErr: ErrTemperatureNotInRate},
		{name: "squared temperature", from: "celsius2", to: "kelvin2", wantErr: ErrTemperatureNotInRate},
		{name: "unknown unit", from: "parsec", to: "m", wantErr: ErrUnknownUnitName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertText(1, tt.from, tt.to)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestConvert_InternalTable(t *testing.T) {
	bogus, err := NewExpression(Term{Unit: UnitID(9999), Exponent: 1})
	require.NoError(t, err)

	_, err = Convert(1, bogus, Single(Metre))
	require.ErrorIs(t, err, ErrInternalTable)
}

func TestConvert_InverseSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"mph", "km/h"},
		{"psi", "mmHg"},
		{"BTU", "kJ"},
		{"usgal", "l"},
		{"mpg", "usmpg"},
		{"mpg", "l100k"},
		{"ft/s", "s/m"},
		{"TB", "TiB"},
		{"lux", "footcandle"},
	}

	for _, p := range pairs {
		t.Run(p[0]+"_"+p[1], func(t *testing.T) {
			there, err := ConvertText(3.25, p[0], p[1])
			require.NoError(t, err)
			back, err := ConvertText(there, p[1], p[0])
			require.NoError(t, err)
			assert.InDelta(t, 3.25, back, 1e-9)
		})
	}
}

func TestCompare(t *testing.T) {
	mps, err := NewExpression(Term{Unit: Metre, Exponent: 1}, Term{Unit: Second, Exponent: -1})
	require.NoError(t, err)
	spm, err := NewExpression(Term{Unit: Second, Exponent: 1}, Term{Unit: Metre, Exponent: -1})
	require.NoError(t, err)
	smps, err := NewExpression(Term{Unit: Second, Exponent: -1}, Term{Unit: Metre, Exponent: 1})
	require.NoError(t, err)

	assert.Equal(t, Equal, Compare(Expression{}, Expression{}, false))
	assert.Equal(t, Equal, Compare(mps, smps, false), "order is irrelevant")
	assert.Equal(t, Inverse, Compare(mps, spm, true))
	assert.Equal(t, Incompatible, Compare(mps, spm, false))
	assert.Equal(t, Incompatible, Compare(mps, Single(Metre), true))
	assert.Equal(t, "inverse", Inverse.String())
}

func BenchmarkConvertText(b *testing.B) {
	for b.Loop() {
		_, _ = ConvertText(60, "mph", "km/h")
	}
}
