package docx

import (
	"bytes"
	"encoding/xml"
	"image"
	"image/png"
	"mime"
	"path"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// relImage is the relationship type of embedded images.
const relImage = nsR + "/image"

// Image is binary image data with its content type.
type Image struct {
	Data        []byte
	ContentType string
}

// ImageDictionary maps relationship IDs (r:embed) to images.
type ImageDictionary map[string]Image

// Lookup returns the image with the given relationship ID.
func (d ImageDictionary) Lookup(id string) (Image, bool) {
	if id == "" || d == nil {
		return Image{}, false
	}
	img, ok := d[id]
	return img, ok
}

// relationshipsXML represents _rels/*.rels files
type relationshipsXML struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Relationships []relationshipXML `xml:"Relationship"`
}

// relationshipXML represents a single relationship.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr"` // External or empty (internal)
}

// contentTypesXML represents [Content_Types].xml
type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	Defaults  []defaultTypeXML  `xml:"Default"`
	Overrides []overrideTypeXML `xml:"Override"`
}

type defaultTypeXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideTypeXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypeOf returns the declared content type of a ZIP part.
// Overrides win over extension defaults.
func (ct *contentTypesXML) contentTypeOf(name string) string {
	if ct == nil {
		return ""
	}
	partName := "/" + name
	for _, o := range ct.Overrides {
		if strings.EqualFold(o.PartName, partName) {
			return o.ContentType
		}
	}
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	for _, d := range ct.Defaults {
		if strings.ToLower(d.Extension) == ext {
			return d.ContentType
		}
	}
	return ""
}

// partPath resolves a relationship target of word/document.xml to a ZIP
// entry name.
func partPath(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join("word", target)
}

// loadImages collects every internal image relationship of the main
// document part.
func (r *Reader) loadImages() (ImageDictionary, error) {
	images := make(ImageDictionary)
	if r.rels == nil {
		return images, nil
	}

	for _, rel := range r.rels.Relationships {
		if rel.Type != relImage || rel.TargetMode == "External" {
			continue
		}

		name := partPath(rel.Target)
		data, err := r.getFileContent(name)
		if err != nil {
			// dangling relationship, the converter reports it if used
			continue
		}

		img := Image{Data: data, ContentType: r.detectContentType(name, data)}
		if r.opts.convertLegacyImages {
			img = convertLegacyImage(img)
		}
		images[rel.ID] = img
	}

	return images, nil
}

// detectContentType uses the package declaration, then the file
// signature, then the file extension.
func (r *Reader) detectContentType(name string, data []byte) string {
	if ct := r.contentTypes.contentTypeOf(name); ct != "" {
		return ct
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// convertLegacyImage re-encodes TIFF and BMP images, which browsers do
// not display, as PNG. Images that fail to decode are returned unchanged.
func convertLegacyImage(img Image) Image {
	var decode func(*bytes.Reader) (image.Image, error)
	switch img.ContentType {
	case "image/tiff":
		decode = func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) }
	case "image/bmp", "image/x-ms-bmp":
		decode = func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) }
	default:
		return img
	}

	decoded, err := decode(bytes.NewReader(img.Data))
	if err != nil {
		return img
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, decoded); err != nil {
		return img
	}
	return Image{Data: buf.Bytes(), ContentType: "image/png"}
}
