package convert

import (
	"fmt"
	"strings"
)

// DiagnosticKind classifies a recoverable conversion problem.
type DiagnosticKind int

const (
	// UnrecognizedElement is recorded for a body, table, row or cell child
	// of an unsupported type.
	UnrecognizedElement DiagnosticKind = iota
	// UnrecognizedRunChild is recorded for a run child of an unsupported
	// type. The child is skipped.
	UnrecognizedRunChild
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnrecognizedElement:
		return "unrecognized element"
	case UnrecognizedRunChild:
		return "unrecognized run child"
	default:
		return "unknown"
	}
}

// Diagnostic is a recoverable problem found during conversion.
type Diagnostic struct {
	Kind     DiagnosticKind
	Location string
	// Name is the source element type, e.g. "w:sdt".
	Name string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s %s", d.Location, d.Kind, d.Name)
}

// path builds element locations such as "body[2]/tr[0]/tc[1]".
type path []string

func (p path) child(name string, index int) path {
	next := make(path, len(p), len(p)+1)
	copy(next, p)
	return append(next, fmt.Sprintf("%s[%d]", name, index))
}

func (p path) String() string {
	return strings.Join(p, "/")
}
