package units

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatOptions controls value rendering.
type FormatOptions struct {
	// ForceDecimal disables mixed-unit output such as "5 feet, 6 inches".
	ForceDecimal bool
	// Precision is the number of significant digits. Zero or less selects the
	// shortest representation that round-trips.
	Precision int
}

// FormatUnits renders expr as words, e.g. "feet/second" or "square metre".
// Only the last term of the leading numerator run is pluralized.
func FormatUnits(expr Expression, plural bool) string {
	lastNumerator := -1
	for i, t := range expr.terms[:expr.n] {
		if t.Exponent < 0 {
			break
		}
		lastNumerator = i
	}

	var b strings.Builder
	for i, t := range expr.terms[:expr.n] {
		switch {
		case i == 0:
			if t.Exponent == -1 {
				b.WriteString("/")
			}
		case t.Exponent <= -1 && t.Exponent >= -3:
			b.WriteString("/")
		default:
			b.WriteString(".")
		}

		switch t.Exponent {
		case 2, -2:
			b.WriteString("square ")
		case 3, -3:
			b.WriteString("cubic ")
		}

		b.WriteString(prefixName(t.PrefixPower))
		if plural && i == lastNumerator {
			b.WriteString(t.Unit.PluralName())
		} else {
			b.WriteString(t.Unit.Name())
		}

		if t.Exponent > 3 || t.Exponent < -3 {
			fmt.Fprintf(&b, "^%d", t.Exponent)
		}
	}
	return b.String()
}

// FormatValue renders n followed by the unit words for expr. Unless
// forceDecimal is set, a handful of traditional units are written as mixed
// subdivisions.
func FormatValue(expr Expression, n float64, forceDecimal bool) string {
	return FormatValueWith(expr, n, FormatOptions{ForceDecimal: forceDecimal})
}

// FormatValueWith is FormatValue with explicit options.
func FormatValueWith(expr Expression, n float64, opts FormatOptions) string {
	if !opts.ForceDecimal {
		if u, ok := mixedUnit(expr); ok && mixedRenderable(n) {
			return formatMixed(u, n, opts.Precision)
		}
	}

	num := FormatNumber(n, opts.Precision)
	if expr.IsEmpty() {
		return num
	}
	return num + " " + FormatUnits(expr, n != 1)
}

// FormatNumber renders n in general floating-point form.
func FormatNumber(n float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(n, 'g', precision, 64)
}
