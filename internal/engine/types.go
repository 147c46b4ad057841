package engine

import (
	"errors"
	"math"
)

// ErrInvalidValue is returned for NaN or infinite input values.
var ErrInvalidValue = errors.New("value must be a finite number")

// Request is one conversion of Value from one compound unit to another.
type Request struct {
	Value float64 `json:"value" yaml:"value"`
	From  string  `json:"from"  yaml:"from"`
	To    string  `json:"to"    yaml:"to"`

	// ForceDecimal disables mixed-unit rendering such as "5 feet, 6 inches".
	ForceDecimal bool `json:"-" yaml:"-"`
	// Precision is the number of significant digits in Text. Zero selects the
	// shortest round-trip representation.
	Precision int `json:"-" yaml:"-"`
	// PreferIEC reads decimal storage units as binary ones.
	PreferIEC bool `json:"-" yaml:"-"`
}

// Validate checks the request before any parsing happens.
func (r Request) Validate() error {
	if math.IsNaN(r.Value) || math.IsInf(r.Value, 0) {
		return ErrInvalidValue
	}
	return nil
}

// Result is the outcome of a successful conversion. FromText and Text are
// the rendered input and output quantities, e.g. "1 mile" and "1.60934
// kilometres".
type Result struct {
	Input    float64 `json:"input"                     yaml:"input"`
	From     string  `json:"from"                      yaml:"from"`
	FromText string  `json:"from_text"                 yaml:"from_text"`
	Value    float64 `json:"value"                     yaml:"value"`
	To       string  `json:"to"                        yaml:"to"`
	Text     string  `json:"text"                      yaml:"text"`
	Remapped bool    `json:"remapped_to_iec,omitempty" yaml:"remapped_to_iec,omitempty"`
}

// BatchResult pairs a request with its outcome. Exactly one of Result and
// Error is set.
type BatchResult struct {
	Line    int     `json:"line"             yaml:"line"`
	Request Request `json:"request"          yaml:"request"`
	Result  *Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error   string  `json:"error,omitempty"  yaml:"error,omitempty"`
}

// Failed reports whether the conversion for this line failed.
func (b BatchResult) Failed() bool {
	return b.Error != ""
}
