package errs

import (
	"fmt"
	"strings"
)

// HeaderError locates a header failure on a 1-based line, counting the leading `ply` line as 1.
type HeaderError struct {
	Line   int
	Err    error
	Detail string
}

// NewHeaderError creates a HeaderError for the given line.
func NewHeaderError(line int, err error, detail string) *HeaderError {
	return &HeaderError{Line: line, Err: err, Detail: detail}
}

func (e *HeaderError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
}

func (e *HeaderError) Unwrap() error {
	return e.Err
}

// ElementError locates a body failure by element name, row index and property name.
// Row is -1 and Property is empty when they do not apply.
type ElementError struct {
	Element  string
	Row      int
	Property string
	Err      error
	Detail   string
}

// NewElementError creates an ElementError.
//
// Parameters:
//   - element: Element name
//   - row: 0-based row index, or -1
//   - property: Property name, or ""
//   - err: Sentinel error kind
//   - detail: Optional human-readable detail
func NewElementError(element string, row int, property string, err error, detail string) *ElementError {
	return &ElementError{
		Element:  element,
		Row:      row,
		Property: property,
		Err:      err,
		Detail:   detail,
	}
}

func (e *ElementError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "element '%s': ", e.Element)
	if e.Row >= 0 {
		fmt.Fprintf(&sb, "row %d: ", e.Row)
	}
	if e.Property != "" {
		fmt.Fprintf(&sb, "property '%s': ", e.Property)
	}
	sb.WriteString(e.Err.Error())
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
