package parser

import (
	"errors"
	"fmt"
)

// ErrConversion flags a value which is neither an integer nor a floating
// point number.
var ErrConversion = errors.New("number conversion error")

// ConversionError carries the text which failed to convert. Kind is
// "Integer" or "Floating point".
type ConversionError struct {
	Kind string
	Text string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s number conversion error for string: %q", e.Kind, e.Text)
}

// Unwrap makes errors.Is(err, ErrConversion) work.
func (e *ConversionError) Unwrap() error {
	return ErrConversion
}
