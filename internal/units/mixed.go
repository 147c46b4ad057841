package units

import (
	"math"
	"strconv"
)

// maxMixedValue bounds values rendered as mixed subdivisions. Whole parts
// beyond it are no longer exact integers in a float64.
const maxMixedValue = 1 << 53

// mixedLeafDigits is the number of significant digits used for the last
// clause of a mixed rendering when no precision is requested.
const mixedLeafDigits = 6

// subdivision names the next-smaller unit in a traditional chain and how many
// of it make one of the parent.
type subdivision struct {
	next  UnitID
	count float64
}

// mixedUnits lists the units rendered as mixed subdivisions, in match order.
//
//nolint:gochecknoglobals // Immutable lookup table.
var mixedUnits = []UnitID{
	Mile, Yard, Foot, Hour, Minute, Ton, Hundredweight, Pound, Stone, Gallon, Pint,
}

//nolint:gochecknoglobals // Immutable lookup table.
var subdivisions = map[UnitID]subdivision{
	Mile:          {Yard, 1760},
	Yard:          {Foot, 3},
	Foot:          {Inch, 12},
	Hour:          {Minute, 60},
	Minute:        {Second, 60},
	Ton:           {Hundredweight, 20},
	Hundredweight: {Stone, 8},
	Stone:         {Pound, 14},
	Pound:         {Ounce, 16},
	Gallon:        {Pint, 8},
	Pint:          {FluidOunce, 20},
}

// mixedRenderable reports whether n can be split into whole subdivisions.
func mixedRenderable(n float64) bool {
	return !math.IsNaN(n) && math.Abs(n) < maxMixedValue
}

// mixedUnit reports whether expr is exactly one unprefixed mixed unit.
func mixedUnit(expr Expression) (UnitID, bool) {
	if expr.n != 1 {
		return Invalid, false
	}
	t := expr.terms[0]
	if t.Exponent != 1 || t.PrefixPower != 0 {
		return Invalid, false
	}
	for _, u := range mixedUnits {
		if t.Unit == u {
			return u, true
		}
	}
	return Invalid, false
}

// formatMixed renders n of u as a comma-separated chain, e.g.
// "1 mile, 20 yards, 1 foot, 6 inches". The sign is applied once.
func formatMixed(u UnitID, n float64, precision int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + formatLevel(u, n, precision)
}

func formatLevel(u UnitID, n float64, precision int) string {
	sub, ok := subdivisions[u]
	if !ok {
		if precision <= 0 {
			precision = mixedLeafDigits
		}
		return FormatNumber(n, precision) + " " + unitWord(u, n == 1)
	}

	whole := math.Floor(n)
	head := strconv.FormatFloat(whole, 'f', 0, 64) + " " + unitWord(u, whole == 1)
	rest := (n - whole) * sub.count
	if rest == 0 {
		return head
	}
	return head + ", " + formatLevel(sub.next, rest, precision)
}

func unitWord(u UnitID, singular bool) string {
	if singular {
		return u.Name()
	}
	return u.PluralName()
}
