package units

// Relation is the outcome of comparing two base vectors.
type Relation int

// Comparison outcomes.
const (
	Incompatible Relation = iota
	Equal
	Inverse
)

// String implements fmt.Stringer.
func (r Relation) String() string {
	switch r {
	case Equal:
		return "equal"
	case Inverse:
		return "inverse"
	default:
		return "incompatible"
	}
}

// Compare reports whether two base vectors describe the same dimension, the
// reciprocal dimension, or neither. Term order is irrelevant. Inverse is only
// returned when allowInverse is set; otherwise it collapses to Incompatible.
func Compare(a, b Expression, allowInverse bool) Relation {
	if a.n != b.n {
		return Incompatible
	}

	equal, inverse := true, true
	for _, ta := range a.terms[:a.n] {
		tb, ok := b.find(ta.Unit)
		if !ok {
			return Incompatible
		}
		if tb.Exponent != ta.Exponent {
			equal = false
		}
		if tb.Exponent != -ta.Exponent {
			inverse = false
		}
	}

	switch {
	case equal:
		return Equal
	case inverse && allowInverse:
		return Inverse
	default:
		return Incompatible
	}
}

// find returns the first term for unit u, ignoring prefixes.
func (e Expression) find(u UnitID) (Term, bool) {
	for _, t := range e.terms[:e.n] {
		if t.Unit == u {
			return t, true
		}
	}
	return Term{}, false
}
