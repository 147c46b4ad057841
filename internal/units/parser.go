package units

import (
	"fmt"
	"strconv"
	"strings"
)

// wordPrefix is an area/volume word that implies an exponent.
type wordPrefix struct {
	text     string
	exponent int
}

// wordPrefixes is checked in order; longer spellings come first.
//
//nolint:gochecknoglobals // Immutable lookup table.
var wordPrefixes = []wordPrefix{
	{"cubic ", 3},
	{"cubic", 3},
	{"cu ", 3},
	{"cu", 3},
	{"square ", 2},
	{"square", 2},
	{"sq ", 2},
	{"sq", 2},
}

// Parse converts a compound unit string such as "J.sec/kg", "/s" or "m^-2"
// into an Expression. Terms are separated by '.' or '/'; a '/' (or a leading
// '/') puts only the following term in the denominator. An empty string is a
// valid, dimensionless expression.
func Parse(text string) (Expression, error) {
	var expr Expression
	if text == "" {
		return expr, nil
	}

	rest := text
	denominator := false
	if strings.HasPrefix(rest, "/") {
		denominator = true
		rest = rest[1:]
	}

	for {
		segment := rest
		nextDenominator := false
		sep := strings.IndexAny(rest, "./")
		if sep >= 0 {
			segment = rest[:sep]
			nextDenominator = rest[sep] == '/'
		}

		term, err := parseTerm(segment)
		if err != nil {
			return Expression{}, err
		}
		if denominator {
			term.Exponent = -term.Exponent
		}
		if expr, err = expr.With(term); err != nil {
			return Expression{}, err
		}

		if sep < 0 {
			return expr, nil
		}
		denominator = nextDenominator
		rest = rest[sep+1:]
	}
}

// parseTerm parses one "[wordPrefix]<unit>[exponent]" segment.
func parseTerm(segment string) (Term, error) {
	s := strings.ReplaceAll(segment, "^", "")

	implied := 0
	for _, wp := range wordPrefixes {
		if !strings.HasPrefix(s, wp.text) {
			continue
		}
		// "curie" begins with "cu" but is a unit in its own right.
		if wp.text == "cu" && strings.EqualFold(s, "curie") {
			continue
		}
		implied = wp.exponent
		s = s[len(wp.text):]
		break
	}

	name, power := splitExponent(s)
	exponent := implied
	switch {
	case power != "" && implied != 0:
		return Term{}, fmt.Errorf("%w: can't use prefix sq, cubic, etc., with an explicit power: '%s'",
			ErrBadExponent, segment)
	case power != "":
		n, err := strconv.Atoi(power)
		if err != nil || n == 0 {
			return Term{}, fmt.Errorf("%w: '%s'", ErrBadExponent, power)
		}
		exponent = n
	case implied == 0:
		exponent = 1
	}

	unit, prefixPower, ok := Resolve(name, true)
	if !ok {
		return Term{}, fmt.Errorf("%w: '%s'", ErrUnknownUnitName, name)
	}
	return Term{Unit: unit, Exponent: exponent, PrefixPower: prefixPower}, nil
}

// splitExponent splits s at the first digit, or at a '-' immediately followed
// by a digit. The second result is empty when there is no exponent.
func splitExponent(s string) (string, string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isDigit(c) || (c == '-' && i+1 < len(s) && isDigit(s[i+1])) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
