package document

import (
	"fmt"
	"slices"

	"github.com/arloliu/ply/endian"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/internal/collision"
	"github.com/arloliu/ply/internal/options"
	"github.com/arloliu/ply/section"
)

// Document is a complete PLY file: ordered elements plus document comments, obj_info
// lines and the body encoding.
//
// Element order is header order and body order. Element names are unique; lookups by
// name are O(1).
type Document struct {
	elements  []*Element
	index     map[string]int
	comments  []string
	objInfo   []string
	text      bool
	byteOrder format.ByteOrder
}

// DocumentOption configures a Document built with New.
type DocumentOption = options.Option[*Document]

// WithTextBody makes the document an ASCII PLY file.
func WithTextBody() DocumentOption {
	return options.NoError(func(d *Document) {
		d.text = true
	})
}

// WithBinaryBody makes the document a binary PLY file in the given byte order.
// format.NativeEndian is resolved to the host order whenever a header is generated.
func WithBinaryBody(order format.ByteOrder) DocumentOption {
	return options.New(func(d *Document) error {
		if !order.Valid() {
			return fmt.Errorf("invalid byte order: %d", uint8(order))
		}

		d.text = false
		d.byteOrder = order

		return nil
	})
}

// WithComments appends document comments.
func WithComments(comments ...string) DocumentOption {
	return options.New(func(d *Document) error {
		for _, c := range comments {
			if err := section.ValidateComment(c); err != nil {
				return err
			}
		}
		d.comments = append(d.comments, comments...)

		return nil
	})
}

// WithObjInfo appends obj_info lines.
func WithObjInfo(lines ...string) DocumentOption {
	return options.New(func(d *Document) error {
		for _, l := range lines {
			if err := section.ValidateComment(l); err != nil {
				return err
			}
		}
		d.objInfo = append(d.objInfo, lines...)

		return nil
	})
}

// New creates a document from elements in the given order.
//
// Without options the document is binary in native byte order with no comments.
//
// Parameters:
//   - elements: Elements in header and body order
//   - opts: Body encoding, comments and obj_info
//
// Returns:
//   - *Document: New document referencing the given elements
//   - error: errs.ErrDuplicateElementName if two elements share a name, or an option error
func New(elements []*Element, opts ...DocumentOption) (*Document, error) {
	doc := &Document{byteOrder: format.NativeEndian}
	if err := options.Apply(doc, opts...); err != nil {
		return nil, err
	}

	for i, e := range elements {
		if e == nil {
			return nil, fmt.Errorf("element %d is nil", i)
		}
	}
	if err := doc.setElements(slices.Clone(elements)); err != nil {
		return nil, err
	}

	return doc, nil
}

func (d *Document) setElements(elements []*Element) error {
	tracker := collision.NewTracker(errs.ErrDuplicateElementName, len(elements))
	index := make(map[string]int, len(elements))
	for i, e := range elements {
		if err := tracker.Track(e.name); err != nil {
			return err
		}
		index[e.name] = i
	}

	d.elements = elements
	d.index = index

	return nil
}

// Len returns the number of elements.
func (d *Document) Len() int {
	return len(d.elements)
}

// Elements returns the elements in order. The slice is a copy; the elements are shared.
func (d *Document) Elements() []*Element {
	return slices.Clone(d.elements)
}

// Element returns the element named name.
//
// Returns:
//   - *Element: Matching element
//   - error: errs.ErrElementNotFound if the document has no such element
func (d *Document) Element(name string) (*Element, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrElementNotFound, name)
	}

	return d.elements[i], nil
}

// HasElement reports whether the document has an element named name.
func (d *Document) HasElement(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Comments returns a copy of the document comments.
func (d *Document) Comments() []string {
	return slices.Clone(d.comments)
}

// ObjInfo returns a copy of the obj_info lines.
func (d *Document) ObjInfo() []string {
	return slices.Clone(d.objInfo)
}

// IsText reports whether the body is ASCII.
func (d *Document) IsText() bool {
	return d.text
}

// ByteOrder returns the declared byte order of a binary body, which may be
// format.NativeEndian. It is meaningless for ASCII documents.
func (d *Document) ByteOrder() format.ByteOrder {
	return d.byteOrder
}

// Format returns the format written on the `format` line, with native byte order
// resolved to the host order.
func (d *Document) Format() format.Format {
	if d.text {
		return format.FormatASCII
	}

	return endian.Resolve(d.byteOrder).BinaryFormat()
}

// Header generates the header for the document's current contents.
// Element counts are the current record counts.
func (d *Document) Header() *section.Header {
	return d.headerFor(d.Format())
}

func (d *Document) headerFor(f format.Format) *section.Header {
	h := &section.Header{
		Format:   f,
		Comments: d.comments,
		ObjInfo:  d.objInfo,
		Elements: make([]section.ElementDecl, len(d.elements)),
	}
	for i, e := range d.elements {
		h.Elements[i] = e.declaration()
	}

	return h
}

// String returns the header text, from `ply` to `end_header`.
func (d *Document) String() string {
	return d.Header().String()
}

// SchemaID returns the layout fingerprint of the document (see section.Header.SchemaID).
func (d *Document) SchemaID() uint64 {
	return d.Header().SchemaID()
}
