// Package units implements the unit-algebra engine behind uconv.
//
// A unit string such as "J.sec/kg", "sqft" or "m^-2" is parsed into an
// Expression of (unit, exponent, SI prefix) terms. Conversion reduces both
// sides to base vectors over gramme, metre, second, ampere, radian, steradian
// and byte, then compares them:
//   - Equal vectors convert by the ratio of their scale factors
//   - Reciprocal vectors (km/h and h/km) convert through the inverse
//   - Anything else fails with ErrIncompatibleDimensions
//
// Absolute temperatures bypass the vector model and use affine transforms.
// Results are rendered back into words, with mixed subdivisions for a few
// traditional units ("5 pounds, 8 ounces").
//
// All catalog data is immutable; every function is safe for concurrent use.
package units
