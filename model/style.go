package model

// TextStyle represents resolved text styling
type TextStyle struct {
	Bold      bool
	Strike    bool
	Underline Underline
	// Size is the font size in half-points, 0 if not specified.
	Size int
}

// IsZero reports whether no styling is applied.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}

// Underline represents the underline kind of a text run.
// Only single underlines are distinguished.
type Underline int

const (
	UnderlineNone Underline = iota
	UnderlineSingle
)

func (u Underline) String() string {
	if u == UnderlineSingle {
		return "single"
	}
	return "none"
}

// Alignment represents paragraph alignment
type Alignment int

const (
	AlignNone Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "none"
}
