package astdump

import "fmt"

type (
	// DumpError is the error for values that are not recognized tree
	// fragments. Failures of the collaborator's rendering primitive
	// are not wrapped into it; they propagate as is.
	DumpError struct {
		reason string
	}
)

// NewError creates a DumpError from a format string.
func NewError(format string, args ...interface{}) *DumpError {
	e := &DumpError{}
	e.SetReason(format, args...)
	return e
}

// SetReason replaces the error message.
func (e *DumpError) SetReason(format string, args ...interface{}) {
	e.reason = fmt.Sprintf(format, args...)
}

func (e *DumpError) Error() string { return e.reason }

func errInvalidNode(node Node) *DumpError {
	if node == nil {
		return NewError("invalid node: <nil>")
	}

	return NewError("invalid node: %T", node)
}
