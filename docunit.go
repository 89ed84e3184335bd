// Package docunit provides a fluent API for converting DOCX documents into
// a structured document model and HTML.
//
// Basic usage:
//
//	html, warnings, err := docunit.Open("decision.docx").HTML()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docunit.FormatWarnings(warnings))
//	}
//
// With options:
//
//	elements, _, err := docunit.Open("decision.docx").
//	    WithLogger(logger).
//	    ConvertLegacyImages().
//	    Elements()
//
// For advanced use cases, the lower-level docx and convert packages are
// also available.
package docunit

import (
	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/format"
)

// Open opens a DOCX file and returns a Converter for fluent configuration.
// The file is read by the first terminal operation, which also closes it.
//
// Example:
//
//	html, warnings, err := docunit.Open("decision.docx").HTML()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		format:   format.Detect(filename),
		options:  defaultOptions(),
	}
}

// FromReader creates a Converter from an already-opened docx.Reader.
// This is useful when you need more control over the reader lifecycle.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := docx.Open("decision.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	html, warnings, err := docunit.FromReader(r).HTML()
func FromReader(r *docx.Reader) *Converter {
	return &Converter{
		reader:       r,
		format:       format.DOCX,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	r := docunit.Must(docx.Open("decision.docx"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustHTML is a helper that wraps a call to HTML() or Elements() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	html := docunit.MustHTML(docunit.Open("decision.docx").HTML())
func MustHTML[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
