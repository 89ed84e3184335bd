package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDrawing is returned when a drawing does not hold exactly
	// one positioned graphic.
	ErrMalformedDrawing = errors.New("drawing must contain exactly one graphic")

	// ErrUnsupportedImage is returned when a graphic is not a picture or
	// its embedded image is not in the image dictionary.
	ErrUnsupportedImage = errors.New("unsupported image")
)

// ConversionError reports a failure that aborts the conversion of a
// document. Location identifies the offending element, e.g.
// "body[3]/r[0]/drawing[1]".
type ConversionError struct {
	Location string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Location, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
