// Package errs defines the error taxonomy shared by the PLY header parser and codecs.
//
// Every failure kind is a sentinel error so callers can test it with errors.Is.
// Failures tied to a header line are wrapped in *HeaderError, failures tied to an
// element body row are wrapped in *ElementError; use errors.As to read the location.
package errs

import "errors"

// Header grammar errors.
var (
	// ErrUnknownType is returned when a property type token is neither a canonical code nor an alias.
	ErrUnknownType = errors.New("unknown property type")

	// ErrUnexpectedKeyword is returned when a header line starts with a keyword that is
	// unknown or not legal in the current parser state.
	ErrUnexpectedKeyword = errors.New("unexpected keyword")

	// ErrMalformedFormatLine is returned when the `format` line is not `format {name} 1.0`.
	ErrMalformedFormatLine = errors.New("malformed format line")

	// ErrMalformedElementLine is returned when an `element` line is not `element {name} {count}`.
	ErrMalformedElementLine = errors.New("malformed element line")

	// ErrMalformedPropertyLine is returned when a `property` line has the wrong number of tokens.
	ErrMalformedPropertyLine = errors.New("malformed property line")

	// ErrPropertyOutsideElement is returned when a `property` line appears before any `element` line.
	ErrPropertyOutsideElement = errors.New("property outside element")

	// ErrUnterminatedHeader is returned when input ends before `end_header`.
	ErrUnterminatedHeader = errors.New("unterminated header")
)

// Structural errors.
var (
	// ErrDuplicateElementName is returned when two elements of a document share a name.
	ErrDuplicateElementName = errors.New("duplicate element name")

	// ErrDuplicatePropertyName is returned when two properties of an element share a name.
	ErrDuplicatePropertyName = errors.New("duplicate property name")

	// ErrInvalidName is returned for an element or property name that is empty, not
	// ASCII, or contains whitespace.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidComment is returned for a comment or obj_info text that is not ASCII
	// or contains a line break.
	ErrInvalidComment = errors.New("invalid comment")

	// ErrRecordMismatch is returned when a caller-built record does not fit its element:
	// the field count differs from the property count, a scalar property holds list
	// data, or a named field is missing or unknown.
	ErrRecordMismatch = errors.New("record does not match element properties")

	// ErrElementNotFound is returned by a document lookup for a name it does not hold.
	ErrElementNotFound = errors.New("element not found")
)

// Body errors.
var (
	// ErrTruncatedRecord is returned when a binary body ends inside a record.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrMalformedValue is returned when a value token is not a number of the declared
	// type, or when a list length is negative or non-integral.
	ErrMalformedValue = errors.New("malformed value")

	// ErrEarlyEndOfLine is returned when an ASCII row has fewer tokens than its properties need.
	ErrEarlyEndOfLine = errors.New("early end of line")

	// ErrExpectedEndOfLine is returned when an ASCII row has tokens left after its last property.
	ErrExpectedEndOfLine = errors.New("expected end of line")

	// ErrEarlyEndOfFile is returned when the body has fewer rows than an element declares.
	ErrEarlyEndOfFile = errors.New("early end of file")

	// ErrValueOutOfRange is returned by encoders when a value cannot be stored exactly in its declared type.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrTrailingData is returned in strict mode when data follows the last element.
	ErrTrailingData = errors.New("trailing data after last element")
)
