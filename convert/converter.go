// Package convert turns parsed DOCX body elements into the document model.
//
// Conversion resolves the effective style of every run, separates margin
// number paragraphs from ordinary ones, rebuilds tables and embeds images
// as base64 data. Elements of unsupported types never abort a conversion:
// they are recorded as diagnostics and, at body level, replaced by an
// Unrecognized placeholder. Malformed drawings and missing images abort
// with a *ConversionError.
package convert

import (
	"go.uber.org/zap"

	"github.com/tsawler/docunit/docx"
	"github.com/tsawler/docunit/model"
)

// Option configures a conversion.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger that receives diagnostics at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// Result is the outcome of a successful conversion.
type Result struct {
	Elements    []model.Element
	Diagnostics []Diagnostic
}

// HTML renders the converted elements.
func (r *Result) HTML() string {
	return model.RenderHTML(r.Elements)
}

// converter holds the read-only inputs of one conversion and collects its
// diagnostics.
type converter struct {
	styles      docx.StyleDictionary
	images      docx.ImageDictionary
	log         *zap.Logger
	diagnostics []Diagnostic
}

// Convert converts body elements, in order, into model elements.
// On error no partial result is returned.
func Convert(body []docx.BodyElement, styles docx.StyleDictionary, images docx.ImageDictionary, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &converter{styles: styles, images: images, log: o.logger}

	elements := make([]model.Element, 0, len(body))
	root := path{}
	for i, el := range body {
		converted, err := c.element(root.child("body", i), el)
		if err != nil {
			c.log.Debug("conversion failed", zap.Error(err))
			return nil, err
		}
		elements = append(elements, converted)
	}

	return &Result{Elements: elements, Diagnostics: c.diagnostics}, nil
}

// element dispatches one body element to its builder.
func (c *converter) element(loc path, el docx.BodyElement) (model.Element, error) {
	switch el := el.(type) {
	case *docx.Table:
		t, err := c.table(loc, el)
		if err != nil {
			return nil, err
		}
		return t, nil
	case *docx.Paragraph:
		if IsBorderNumber(el) {
			return borderNumber(el), nil
		}
		p, err := c.paragraph(loc, el)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		name := nodeName(el)
		c.diagnose(UnrecognizedElement, loc, name)
		return &model.Unrecognized{Name: name}, nil
	}
}

func (c *converter) diagnose(kind DiagnosticKind, loc path, name string) {
	d := Diagnostic{Kind: kind, Location: loc.String(), Name: name}
	c.diagnostics = append(c.diagnostics, d)
	c.log.Debug(kind.String(),
		zap.String("location", d.Location),
		zap.String("name", d.Name),
	)
}

// nodeName returns the element name of unknown nodes and the kind name of
// all others.
func nodeName(n docx.Node) string {
	if u, ok := n.(*docx.Unknown); ok {
		return u.Name
	}
	return n.Kind().String()
}
