package astdump

import "strconv"

type (
	// Indent selects how the collaborator's renderer lays out a
	// single node. The zero value means compact (no indentation
	// specified). The formatter passes it through unchanged; only
	// the renderer interprets it. A width of zero is valid and is
	// distinct from compact.
	Indent struct {
		width int
		set   bool
	}
)

// Spaces returns an Indent of n spaces per nesting level.
func Spaces(n int) Indent {
	return Indent{
		width: n,
		set:   true,
	}
}

// Width returns the number of spaces per nesting level and whether an
// indentation was specified at all.
func (i Indent) Width() (int, bool) {
	return i.width, i.set
}

// IsCompact tells if no indentation was specified.
func (i Indent) IsCompact() bool {
	return !i.set
}

func (i Indent) String() string {
	if !i.set {
		return "compact"
	}

	return strconv.Itoa(i.width) + " spaces"
}
