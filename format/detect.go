// Package format identifies word-processing document formats so that only
// DOCX input reaches the converter, and other inputs are refused by name.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// Format represents a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates an Office Open XML word-processing document (.docx).
	DOCX
	// DOC indicates a legacy binary Word document (.doc).
	DOC
	// RTF indicates a Rich Text Format document.
	RTF
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// PDF indicates a PDF document.
	PDF
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case RTF:
		return "RTF"
	case ODT:
		return "ODT"
	case PDF:
		return "PDF"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	if f == Unknown {
		return ""
	}
	return "." + strings.ToLower(f.String())
}

// Detect determines file format from filename extension. Macro-enabled
// documents and templates share the DOCX package layout.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx", ".docm", ".dotx", ".dotm":
		return DOCX
	case ".doc":
		return DOC
	case ".rtf":
		return RTF
	case ".odt":
		return ODT
	case ".pdf":
		return PDF
	case ".xlsx":
		return XLSX
	case ".pptx":
		return PPTX
	default:
		return Unknown
	}
}

// byKind maps filetype extensions to formats.
var byKind = map[string]Format{
	"docx": DOCX,
	"doc":  DOC,
	"rtf":  RTF,
	"odt":  ODT,
	"pdf":  PDF,
	"xlsx": XLSX,
	"pptx": PPTX,
}

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives whose content cannot be told from the leading bytes return
// Unknown; use DetectFromReader for those.
func DetectFromMagic(data []byte) Format {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return Unknown
	}
	return byKind[kind.Extension]
}

// isZIP reports whether data starts with a local file header.
func isZIP(data []byte) bool {
	return len(data) >= 4 && data[0] == 'P' && data[1] == 'K' && data[2] == 0x03 && data[3] == 0x04
}

// DetectFromReader inspects the content to determine format. ZIP archives
// are opened to tell DOCX from the other package formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	// 8 KiB covers the signatures filetype inspects for office packages
	head := make([]byte, 8192)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	head = head[:n]

	if isZIP(head) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(head), nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's DOCX, XLSX, PPTX or ODT.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasContentTypes := false
	for _, f := range zr.File {
		switch {
		case f.Name == "mimetype":
			if isODT(f) {
				return ODT, nil
			}
		case f.Name == "[Content_Types].xml":
			hasContentTypes = true
		}
	}
	if !hasContentTypes {
		return Unknown, nil
	}

	// Office Open XML: the main part directory names the application
	for _, f := range zr.File {
		switch {
		case f.Name == "word/document.xml":
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		}
	}

	return Unknown, nil
}

func isODT(f *zip.File) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()

	data := make([]byte, 256)
	n, _ := io.ReadFull(rc, data)
	return strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.text")
}
