// Package docx provides DOCX (Office Open XML) document parsing.
//
// A Reader opens a DOCX archive and exposes the three inputs of the
// converter: the body elements of word/document.xml in source order, the
// named styles of word/styles.xml and the images referenced from the main
// document part.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tsawler/docunit/model"
)

// Option configures a Reader.
type Option func(*options)

type options struct {
	convertLegacyImages bool
}

// WithLegacyImageConversion re-encodes TIFF and BMP images as PNG.
func WithLegacyImageConversion() Option {
	return func(o *options) {
		o.convertLegacyImages = true
	}
}

// Reader provides access to DOCX document content.
type Reader struct {
	file         *os.File
	zipReader    *zip.Reader
	opts         options
	contentTypes *contentTypesXML
	rels         *relationshipsXML
	coreProps    *corePropertiesXML
	body         []BodyElement
	styles       StyleDictionary
	images       ImageDictionary
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata)
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// Open opens a DOCX file for reading.
func Open(filename string, opts ...Option) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	r, err := NewReader(f, fi.Size(), opts...)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, nil
}

// NewReader reads a DOCX archive of the given size from r.
func NewReader(ra io.ReaderAt, size int64, opts ...Option) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{zipReader: zr}
	for _, opt := range opts {
		opt(&r.opts)
	}

	// Validate required files exist
	if err := r.validate(); err != nil {
		return nil, err
	}

	if err := r.parseContentTypes(); err != nil {
		return nil, fmt.Errorf("parsing content types: %w", err)
	}

	// Parse relationships first (needed for images)
	if err := r.parseRelationships(); err != nil {
		return nil, fmt.Errorf("parsing relationships: %w", err)
	}

	if err := r.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	if err := r.parseStyles(); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}

	if r.images, err = r.loadImages(); err != nil {
		return nil, fmt.Errorf("loading images: %w", err)
	}

	// Metadata is optional
	r.parseCoreProperties()

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// Body returns the body elements of the document in source order.
func (r *Reader) Body() []BodyElement {
	return r.body
}

// Styles returns the named styles of the document.
func (r *Reader) Styles() StyleDictionary {
	return r.styles
}

// Images returns the images referenced from the main document part.
func (r *Reader) Images() ImageDictionary {
	return r.images
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps == nil {
		return meta
	}
	meta.Title = r.coreProps.Title
	meta.Author = r.coreProps.Creator
	meta.Subject = r.coreProps.Subject
	if r.coreProps.Keywords != "" {
		meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
		for i, kw := range meta.Keywords {
			meta.Keywords[i] = strings.TrimSpace(kw)
		}
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Created)); err == nil {
		meta.CreationDate = t
	}
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.coreProps.Modified)); err == nil {
		meta.ModDate = t
	}
	return meta
}

// validate checks that required DOCX files exist.
func (r *Reader) validate() error {
	required := []string{
		"[Content_Types].xml",
		"word/document.xml",
	}

	for _, name := range required {
		if r.getFile(name) == nil {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.getFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// getFile returns a zip.File by name.
func (r *Reader) getFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (r *Reader) parseContentTypes() error {
	data, err := r.getFileContent("[Content_Types].xml")
	if err != nil {
		return err
	}

	r.contentTypes = &contentTypesXML{}
	return xml.Unmarshal(data, r.contentTypes)
}

// parseRelationships parses the document relationships file.
func (r *Reader) parseRelationships() error {
	data, err := r.getFileContent("word/_rels/document.xml.rels")
	if err != nil {
		// Relationships file is optional
		return nil
	}

	r.rels = &relationshipsXML{}
	return xml.Unmarshal(data, r.rels)
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent("word/document.xml")
	if err != nil {
		return err
	}

	r.body, err = parseBody(data)
	return err
}

// parseStyles parses the styles definition file.
func (r *Reader) parseStyles() error {
	data, err := r.getFileContent("word/styles.xml")
	if err != nil {
		// Styles are optional
		r.styles = StyleDictionary{}
		return nil
	}

	r.styles, err = parseStyles(data)
	return err
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent("docProps/core.xml")
	if err != nil {
		return
	}

	props := &corePropertiesXML{}
	if err := xml.Unmarshal(data, props); err != nil {
		return
	}
	r.coreProps = props
}
