package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by the unit engine. Callers match them with
// errors.Is; the wrapped message carries the offending text.
var (
	// ErrUnknownUnitName indicates a token that resolves to no catalog unit,
	// even after prefix stripping.
	ErrUnknownUnitName = constError("unknown unit name")

	// ErrBadExponent indicates an exponent of zero, a malformed exponent, or an
	// explicit exponent combined with a "square"/"cubic" word prefix.
	ErrBadExponent = constError("bad exponent")

	// ErrIncompatibleDimensions indicates two expressions whose base vectors
	// neither match nor invert.
	ErrIncompatibleDimensions = constError("incompatible dimensions")

	// ErrTemperatureNotInRate indicates a temperature unit used outside a rate,
	// other than the bare temperature-to-temperature case.
	ErrTemperatureNotInRate = constError(
		"units of temperature can only be converted to other units of temperature if they are not part of a rate")

	// ErrInternalTable indicates a catalog unit with no conversion entry.
	ErrInternalTable = constError("internal error: no conversion defined for unit")

	// ErrTooManyTerms indicates an expression that would exceed MaxTerms.
	ErrTooManyTerms = constError("too many unit elements")
)
