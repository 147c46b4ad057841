package units

import "fmt"

// Convert returns n expressed in from as a quantity of to. Two bare
// temperatures use the affine temperature transforms; everything else is
// reduced to base vectors, which must be equal or reciprocal.
func Convert(n float64, from, to Expression) (float64, error) {
	if from.isBareTemperature() && to.isBareTemperature() {
		return convertTemperature(n, from.terms[0], to.terms[0])
	}

	fromBase, fromScale, err := Reduce(from)
	if err != nil {
		return 0, err
	}
	toBase, toScale, err := Reduce(to)
	if err != nil {
		return 0, err
	}

	switch Compare(fromBase, toBase, true) {
	case Equal:
		return n * (fromScale / toScale), nil
	case Inverse:
		return 1 / (n * fromScale * toScale), nil
	default:
		return 0, fmt.Errorf("%w: can't convert %s to %s, because their base dimensions are different",
			ErrIncompatibleDimensions, FormatUnits(from, false), FormatUnits(to, false))
	}
}

// ConvertText parses both unit strings and converts n between them.
func ConvertText(n float64, from, to string) (float64, error) {
	fromExpr, err := Parse(from)
	if err != nil {
		return 0, err
	}
	toExpr, err := Parse(to)
	if err != nil {
		return 0, err
	}
	return Convert(n, fromExpr, toExpr)
}
