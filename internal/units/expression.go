package units

import "fmt"

// MaxTerms is the maximum number of distinct terms in an Expression.
const MaxTerms = 10

// Term is one unit raised to an integer power, optionally scaled by an SI
// prefix. PrefixPower is the base-10 exponent of the prefix (3 for kilo).
type Term struct {
	Unit        UnitID
	Exponent    int
	PrefixPower int
}

// Expression is an ordered, fixed-capacity list of terms. It is a value type:
// every mutating operation returns a new Expression.
type Expression struct {
	n     int
	terms [MaxTerms]Term
}

// NewExpression builds an expression by adding each term in order.
func NewExpression(terms ...Term) (Expression, error) {
	var e Expression
	for _, t := range terms {
		var err error
		if e, err = e.With(t); err != nil {
			return Expression{}, err
		}
	}
	return e, nil
}

// Single returns the expression holding exactly one unit at exponent 1.
func Single(u UnitID) Expression {
	var e Expression
	e.terms[0] = Term{Unit: u, Exponent: 1}
	e.n = 1
	return e
}

// Len returns the number of terms.
func (e Expression) Len() int {
	return e.n
}

// IsEmpty reports whether the expression is dimensionless.
func (e Expression) IsEmpty() bool {
	return e.n == 0
}

// Term returns the i-th term.
func (e Expression) Term(i int) Term {
	return e.terms[i]
}

// Terms returns a copy of the terms in insertion order.
func (e Expression) Terms() []Term {
	out := make([]Term, e.n)
	copy(out, e.terms[:e.n])
	return out
}

// With returns e with t merged in. A term with the same unit and prefix has
// its exponent summed with t's; a sum of zero removes the term. Adding a
// zero-exponent term is a no-op.
func (e Expression) With(t Term) (Expression, error) {
	if t.Exponent == 0 {
		return e, nil
	}
	for i := range e.n {
		cur := e.terms[i]
		if cur.Unit != t.Unit || cur.PrefixPower != t.PrefixPower {
			continue
		}
		cur.Exponent += t.Exponent
		if cur.Exponent != 0 {
			e.terms[i] = cur
			return e, nil
		}
		copy(e.terms[i:e.n], e.terms[i+1:e.n])
		e.n--
		e.terms[e.n] = Term{}
		return e, nil
	}
	if e.n == MaxTerms {
		return Expression{}, fmt.Errorf("%w: limit is %d", ErrTooManyTerms, MaxTerms)
	}
	e.terms[e.n] = t
	e.n++
	return e, nil
}

// withScaled merges every term of base into e with its exponent multiplied by
// power.
func (e Expression) withScaled(base []Term, power int) (Expression, error) {
	for _, b := range base {
		var err error
		e, err = e.With(Term{Unit: b.Unit, Exponent: b.Exponent * power, PrefixPower: b.PrefixPower})
		if err != nil {
			return Expression{}, err
		}
	}
	return e, nil
}

// isBareTemperature reports whether e is a single temperature unit at
// exponent 1.
func (e Expression) isBareTemperature() bool {
	return e.n == 1 && e.terms[0].Unit.IsTemperature() && e.terms[0].Exponent == 1
}

// String renders the expression compactly, e.g. "kilometre.second^-1".
func (e Expression) String() string {
	s := ""
	for i, t := range e.terms[:e.n] {
		if i > 0 {
			s += "."
		}
		s += prefixName(t.PrefixPower) + t.Unit.Name()
		if t.Exponent != 1 {
			s += fmt.Sprintf("^%d", t.Exponent)
		}
	}
	return s
}
