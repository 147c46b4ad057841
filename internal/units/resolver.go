package units

import "strings"

// siPrefix is a recognized metric prefix spelling and its power of ten.
type siPrefix struct {
	text  string
	power int
}

// siPrefixes is the prefix match order: full words before single letters so
// that "milli" wins over "m". Matching is case-sensitive.
//
//nolint:gochecknoglobals // Immutable lookup table.
var siPrefixes = []siPrefix{
	{"tera", 12},
	{"giga", 9},
	{"mega", 6},
	{"kilo", 3},
	{"deci", -1},
	{"nano", -9},
	{"pico", -12},
	{"centi", -2},
	{"milli", -3},
	{"micro", -6},
	{"T", 12},
	{"G", 9},
	{"M", 6},
	{"k", 3},
	{"d", -1},
	{"n", -9},
	{"p", -12},
	{"c", -2},
	{"m", -3},
	{"u", -6},
}

// prefixName returns the word form of a prefix power; 0 is the empty string.
func prefixName(power int) string {
	switch power {
	case 0:
		return ""
	case -12:
		return "pico"
	case -9:
		return "nano"
	case -6:
		return "micro"
	case -3:
		return "milli"
	case -2:
		return "centi"
	case -1:
		return "deci"
	case 3:
		return "kilo"
	case 6:
		return "mega"
	case 9:
		return "giga"
	case 12:
		return "tera"
	default:
		return "?"
	}
}

// FindUnit returns the unit whose long name or synonym equals name, ignoring
// case.
func FindUnit(name string) (UnitID, bool) {
	if name == "" {
		return Invalid, false
	}
	for id := Invalid + 1; id < unitCount; id++ {
		if definitions[id].Matches(name) {
			return id, true
		}
	}
	return Invalid, false
}

// findPrefix returns the first prefix that token starts with.
func findPrefix(token string) (siPrefix, bool) {
	for _, p := range siPrefixes {
		if strings.HasPrefix(token, p.text) {
			return p, true
		}
	}
	return siPrefix{}, false
}

// Resolve maps a token to a unit and SI prefix power. An exact name match
// always wins over a prefixed reading, so "meter" is never milli-"eter". When
// allowPrefix is set, at most one prefix is stripped and the remainder must
// resolve exactly.
func Resolve(token string, allowPrefix bool) (UnitID, int, bool) {
	if u, ok := FindUnit(token); ok {
		return u, 0, true
	}
	if !allowPrefix {
		return Invalid, 0, false
	}
	p, ok := findPrefix(token)
	if !ok {
		return Invalid, 0, false
	}
	if u, _, ok := Resolve(token[len(p.text):], false); ok {
		return u, p.power, true
	}
	// The unprefixed reading already failed above, so this is a miss.
	return Invalid, 0, false
}
