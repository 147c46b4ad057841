package units

import "math"

type temperaturePair struct {
	from, to UnitID
}

// temperatureTransforms holds the affine transform for every ordered pair of
// distinct temperature scales.
//
//nolint:gochecknoglobals // Immutable transform table.
var temperatureTransforms = map[temperaturePair]func(float64) float64{
	{Celsius, Fahrenheit}: func(c float64) float64 { return c*9/5 + 32 },
	{Celsius, Kelvin}:     func(c float64) float64 { return c + 273.15 },
	{Celsius, Rankine}:    func(c float64) float64 { return (c + 273.15) * 9 / 5 },
	{Fahrenheit, Celsius}: func(f float64) float64 { return (f - 32) * 5 / 9 },
	{Fahrenheit, Kelvin}:  func(f float64) float64 { return (f + 459.67) * 5 / 9 },
	{Fahrenheit, Rankine}: func(f float64) float64 { return f + 459.67 },
	{Kelvin, Celsius}:     func(k float64) float64 { return k - 273.15 },
	{Kelvin, Fahrenheit}:  func(k float64) float64 { return k*9/5 - 459.67 },
	{Kelvin, Rankine}:     func(k float64) float64 { return k * 9 / 5 },
	{Rankine, Celsius}:    func(r float64) float64 { return (r - 491.67) * 5 / 9 },
	{Rankine, Fahrenheit}: func(r float64) float64 { return r - 459.67 },
	{Rankine, Kelvin}:     func(r float64) float64 { return r * 5 / 9 },
}

// convertTemperature converts an absolute temperature between two bare
// temperature expressions. SI prefixes scale the reading on either side.
func convertTemperature(n float64, from, to Term) (float64, error) {
	n *= math.Pow10(from.PrefixPower)
	if from.Unit != to.Unit {
		transform, ok := temperatureTransforms[temperaturePair{from.Unit, to.Unit}]
		if !ok {
			return 0, ErrInternalTable
		}
		n = transform(n)
	}
	return n / math.Pow10(to.PrefixPower), nil
}
