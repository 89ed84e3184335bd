package docunit

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/docunit/convert"
	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/format"
	"github.com/tsawler/docunit/model"
)

// Converter provides a fluent interface for converting DOCX files.
// Each configuration method returns a new Converter instance, making it
// safe to derive several configurations from one base.
type Converter struct {
	// Source
	filename string
	format   format.Format

	reader *docx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:     c.filename,
		format:       c.format,
		reader:       c.reader,
		ownsReader:   c.ownsReader,
		readerOpened: c.readerOpened,
		options:      c.options.clone(),
		err:          c.err,
	}
}

// ensureReader opens the reader if not already open.
func (c *Converter) ensureReader() error {
	if c.readerOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if c.format != format.DOCX {
		detected, err := detectFile(c.filename)
		if err != nil {
			return err
		}
		c.format = detected
	}
	if c.format != format.DOCX {
		return fmt.Errorf("unsupported file format: %s", c.format)
	}

	var opts []docx.Option
	if c.options.convertLegacyImages {
		opts = append(opts, docx.WithLegacyImageConversion())
	}
	r, err := docx.Open(c.filename, opts...)
	if err != nil {
		return fmt.Errorf("failed to open DOCX: %w", err)
	}
	c.reader = r
	c.ownsReader = true
	c.readerOpened = true
	return nil
}

// detectFile inspects the file content when the extension is not conclusive.
func detectFile(filename string) (format.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return format.Unknown, fmt.Errorf("stat file: %w", err)
	}
	return format.DetectFromReader(f, fi.Size())
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsReader && c.reader != nil {
		err := c.reader.Close()
		c.reader = nil
		c.ownsReader = false
		c.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// WithLogger sets the logger that receives conversion diagnostics.
func (c *Converter) WithLogger(logger *zap.Logger) *Converter {
	nc := c.clone()
	if logger == nil {
		nc.err = fmt.Errorf("nil logger")
		return nc
	}
	nc.options.logger = logger
	return nc
}

// ConvertLegacyImages re-encodes TIFF and BMP images as PNG so that
// browsers can display them. It has no effect on a Converter created with
// FromReader.
func (c *Converter) ConvertLegacyImages() *Converter {
	nc := c.clone()
	nc.options.convertLegacyImages = true
	return nc
}

// ============================================================================
// Terminal Operations
// ============================================================================

func (c *Converter) convert() (*convert.Result, error) {
	if c.err != nil {
		return nil, c.err
	}
	if err := c.ensureReader(); err != nil {
		return nil, err
	}
	defer c.Close()

	log := c.options.logger
	if c.filename != "" {
		log = log.With(zap.String("file", c.filename))
	}

	res, err := convert.Convert(c.reader.Body(), c.reader.Styles(), c.reader.Images(), convert.WithLogger(log))
	if err != nil {
		return nil, err
	}
	if len(res.Diagnostics) > 0 {
		log.Debug("converted with diagnostics", zap.Int("count", len(res.Diagnostics)))
	}
	return res, nil
}

// Elements converts the document and returns its body elements in order.
//
// Example:
//
//	elements, warnings, err := docunit.Open("decision.docx").Elements()
func (c *Converter) Elements() ([]model.Element, []Warning, error) {
	res, err := c.convert()
	if err != nil {
		return nil, nil, err
	}
	return res.Elements, warningsFromDiagnostics(res.Diagnostics), nil
}

// HTML converts the document and renders it as an HTML fragment.
//
// Example:
//
//	html, warnings, err := docunit.Open("decision.docx").HTML()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docunit.FormatWarnings(warnings))
//	}
func (c *Converter) HTML() (string, []Warning, error) {
	res, err := c.convert()
	if err != nil {
		return "", nil, err
	}
	return res.HTML(), warningsFromDiagnostics(res.Diagnostics), nil
}

// Document converts the document and returns it together with the
// metadata of docProps/core.xml.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	if err := c.ensureReader(); err != nil {
		return nil, nil, err
	}
	// Metadata must be read before convert closes an owned reader
	meta := c.reader.Metadata()

	res, err := c.convert()
	if err != nil {
		return nil, nil, err
	}

	doc := model.NewDocument()
	doc.Metadata = meta
	for _, el := range res.Elements {
		doc.AddElement(el)
	}
	return doc, warningsFromDiagnostics(res.Diagnostics), nil
}
