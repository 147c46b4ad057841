package units

import (
	"fmt"
	"math"
)

// Reduce expands expr into its base vector and the factor that converts one
// expr unit into that vector. Temperature units are accepted only inside a
// rate, that is an expression with at least one negative exponent.
func Reduce(expr Expression) (Expression, float64, error) {
	var (
		vec            Expression
		factor         = 1.0
		isRate         bool
		hasTemperature bool
	)

	for _, term := range expr.terms[:expr.n] {
		if term.Exponent < 0 {
			isRate = true
		}
		if term.Unit.IsTemperature() {
			hasTemperature = true
		}

		c, ok := conversionFor(term.Unit)
		if !ok {
			return Expression{}, 0, fmt.Errorf("%w: %s (id %d)", ErrInternalTable, term.Unit.Name(), int(term.Unit))
		}

		factor *= math.Pow(c.slope*math.Pow10(term.PrefixPower), float64(term.Exponent))

		var err error
		if vec, err = vec.withScaled(c.base, term.Exponent); err != nil {
			return Expression{}, 0, err
		}
	}

	if hasTemperature && !isRate {
		return Expression{}, 0, ErrTemperatureNotInRate
	}
	return vec, factor, nil
}
