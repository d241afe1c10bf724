// Package ply reads and writes PLY polygon files.
//
// PLY is a self-describing container for tables of numeric records ("elements"). A
// text header declares each element with its row count and its properties, which are
// either scalars or length-prefixed lists of one of eight numeric types. The body that
// follows stores the rows as whitespace-separated ASCII or as fixed-width binary in a
// declared byte order.
//
// # Core Features
//
//   - Strict header grammar with line-numbered errors
//   - ASCII, binary little-endian and binary big-endian bodies
//   - Exact round trips: integers bit-exact, floats bit-exact at their declared width
//   - Encode-time range checks instead of silent truncation
//   - Element, row and property named in every body error
//
// # Basic Usage
//
// Reading a file:
//
//	import "github.com/arloliu/ply"
//
//	doc, err := ply.Read(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vertex, _ := doc.Element("vertex")
//	for _, rec := range vertex.All() {
//	    x, _ := rec.Scalar("x")
//	    y, _ := rec.Scalar("y")
//	    z, _ := rec.Scalar("z")
//	    fmt.Println(x, y, z)
//	}
//
// Writing a file:
//
//	x, _ := ply.ScalarProperty("x", format.TypeFloat32)
//	vertex, _ := ply.NewElement("vertex", []section.Property{x})
//	_ = vertex.AppendRecord(encoding.ScalarValue(0.5))
//
//	doc, _ := ply.NewDocument([]*document.Element{vertex}, document.WithTextBody())
//	out, err := ply.Write(doc)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the document package,
// simplifying the most common use cases. For options such as strict trailing-data
// checks, logging or forcing an output byte order, use the document package directly
// or pass its options through these functions.
package ply

import (
	"io"

	"github.com/arloliu/ply/document"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/section"
)

// Source is the read-only view of a decoded file used by code that consumes PLY data
// without caring about its encoding: elements in order, each with its properties and
// records queryable by property name.
type Source interface {
	Len() int
	Elements() []*document.Element
	Element(name string) (*document.Element, error)
	HasElement(name string) bool
	Comments() []string
	ObjInfo() []string
}

var _ Source = (*document.Document)(nil)

// Read decodes a complete PLY file.
//
// Parameters:
//   - data: Entire file contents
//   - opts: Decoder options (see document.DecoderOption)
//
// Returns:
//   - *document.Document: Decoded document
//   - error: *errs.HeaderError for header failures, *errs.ElementError for body failures
//
// Example:
//
//	doc, err := ply.Read(data, document.WithStrictTrailing(true))
func Read(data []byte, opts ...document.DecoderOption) (*document.Document, error) {
	decoder, err := document.NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// ReadFrom reads r to EOF and decodes the result as a PLY file.
func ReadFrom(r io.Reader, opts ...document.DecoderOption) (*document.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Read(data, opts...)
}

// Write encodes doc as a complete PLY file.
//
// Parameters:
//   - doc: Document to encode
//   - opts: Encoder options (see document.EncoderOption)
//
// Returns:
//   - []byte: Header followed by the body
//   - error: *errs.ElementError for a value that cannot be represented in its type
func Write(doc *document.Document, opts ...document.EncoderOption) ([]byte, error) {
	encoder, err := document.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(doc)
}

// WriteTo encodes doc and writes it to w, returning the number of bytes written.
func WriteTo(w io.Writer, doc *document.Document, opts ...document.EncoderOption) (int, error) {
	encoder, err := document.NewEncoder(opts...)
	if err != nil {
		return 0, err
	}

	return encoder.EncodeTo(w, doc)
}

// NewDocument creates a document from elements in order.
//
// Example:
//
//	doc, err := ply.NewDocument(elements,
//	    document.WithBinaryBody(format.LittleEndian),
//	    document.WithComments("exported by scanner"),
//	)
func NewDocument(elements []*document.Element, opts ...document.DocumentOption) (*document.Document, error) {
	return document.New(elements, opts...)
}

// NewElement creates an empty element with the given properties and comments.
func NewElement(name string, props []section.Property, comments ...string) (*document.Element, error) {
	return document.NewElement(name, props, comments...)
}

// ScalarProperty creates a scalar property descriptor.
func ScalarProperty(name string, valueType format.ScalarType) (section.Property, error) {
	return section.NewScalarProperty(name, valueType)
}

// ListProperty creates a list property descriptor.
func ListProperty(name string, lengthType, valueType format.ScalarType) (section.Property, error) {
	return section.NewListProperty(name, lengthType, valueType)
}

// ResolveType resolves a header type token such as "uchar" or "float32".
func ResolveType(token string) (format.ScalarType, error) {
	return format.ResolveType(token)
}
