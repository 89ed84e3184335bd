package docunit

import (
	"strings"

	"github.com/tsawler/docunit/convert"
)

// Warning is a non-fatal issue found during conversion: the document was
// converted, but part of it could not be represented.
type Warning struct {
	Message  string
	Location string
	Kind     convert.DiagnosticKind
	// Element is the source element type, e.g. "w:sdt".
	Element string
}

func (w Warning) String() string {
	if w.Location == "" {
		return w.Message
	}
	return w.Location + ": " + w.Message
}

func warningsFromDiagnostics(diags []convert.Diagnostic) []Warning {
	if len(diags) == 0 {
		return nil
	}
	warnings := make([]Warning, 0, len(diags))
	for _, d := range diags {
		warnings = append(warnings, Warning{
			Message:  d.Kind.String() + " " + d.Name,
			Location: d.Location,
			Kind:     d.Kind,
			Element:  d.Name,
		})
	}
	return warnings
}

// FormatWarnings formats warnings one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
