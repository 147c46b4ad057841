package units

// siToIEC maps each decimal storage unit to its binary counterpart.
//
//nolint:gochecknoglobals // Immutable lookup table.
var siToIEC = map[UnitID]UnitID{
	Kilobyte: Kibibyte,
	Megabyte: Mebibyte,
	Gigabyte: Gibibyte,
	Terabyte: Tebibyte,
	Petabyte: Pebibyte,
	Exabyte:  Exbibyte,
	Kilobit:  Kibibit,
	Megabit:  Mebibit,
	Gigabit:  Gibibit,
	Terabit:  Tebibit,
	Petabit:  Pebibit,
	Exabit:   Exbibit,
}

// IsSIStorage reports whether u is a decimal (power of 1000) storage unit.
func (u UnitID) IsSIStorage() bool {
	_, ok := siToIEC[u]
	return ok
}

// IsIECStorage reports whether u is a binary (power of 1024) storage unit.
func (u UnitID) IsIECStorage() bool {
	switch u {
	case Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte, Exbibyte,
		Kibibit, Mebibit, Gibibit, Tebibit, Pebibit, Exbibit:
		return true
	default:
		return false
	}
}

// isStorage reports whether u measures digital storage at all.
func (u UnitID) isStorage() bool {
	return u == Byte || u == Bit || u.IsSIStorage() || u.IsIECStorage()
}

// RemapStorageToIEC rewrites decimal storage units in both expressions to
// their binary counterparts, for users who write "GB" but mean gibibytes.
// The rewrite happens only when every storage unit on both sides is decimal;
// a plain byte or bit, or any binary unit, leaves both expressions alone. The
// boolean reports whether a rewrite happened.
func RemapStorageToIEC(from, to Expression) (Expression, Expression, bool) {
	storage := 0
	for _, e := range []Expression{from, to} {
		for _, t := range e.terms[:e.n] {
			if !t.Unit.isStorage() {
				continue
			}
			if !t.Unit.IsSIStorage() {
				return from, to, false
			}
			storage++
		}
	}
	if storage == 0 {
		return from, to, false
	}
	return from.remapped(), to.remapped(), true
}

// remapped replaces units in place so that term order and exponents survive.
func (e Expression) remapped() Expression {
	for i := range e.n {
		if iec, ok := siToIEC[e.terms[i].Unit]; ok {
			e.terms[i].Unit = iec
		}
	}
	return e
}
