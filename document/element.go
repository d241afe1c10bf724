package document

import (
	"iter"
	"slices"

	"github.com/arloliu/ply/encoding"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/internal/collision"
	"github.com/arloliu/ply/section"
)

// layout is the property list of an element plus its name index.
// It is shared by the element and all of its records and never modified.
type layout struct {
	props []section.Property
	index map[string]int
}

func newLayout(props []section.Property) *layout {
	l := &layout{
		props: props,
		index: make(map[string]int, len(props)),
	}
	for i, p := range props {
		l.index[p.Name] = i
	}

	return l
}

// Element is a named table of records sharing one property list.
//
// The property list is fixed at construction. Records are appended with AppendRecord
// before encoding, or filled by the Decoder.
type Element struct {
	name     string
	layout   *layout
	comments []string
	records  []Record
}

// NewElement creates an empty element.
//
// Parameters:
//   - name: Element name (non-empty ASCII without whitespace)
//   - props: Property descriptors in record order; names must be unique
//   - comments: Element comments, written after the `element` line
//
// Returns:
//   - *Element: Element without records
//   - error: errs.ErrInvalidName, errs.ErrInvalidComment, errs.ErrUnknownType or
//     errs.ErrDuplicatePropertyName
func NewElement(name string, props []section.Property, comments ...string) (*Element, error) {
	if err := section.ValidateName(name); err != nil {
		return nil, err
	}
	for _, c := range comments {
		if err := section.ValidateComment(c); err != nil {
			return nil, err
		}
	}

	tracker := collision.NewTracker(errs.ErrDuplicatePropertyName, len(props))
	for _, p := range props {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if err := tracker.Track(p.Name); err != nil {
			return nil, err
		}
	}

	return &Element{
		name:     name,
		layout:   newLayout(slices.Clone(props)),
		comments: slices.Clone(comments),
	}, nil
}

// newDecodedElement creates the element for a parsed declaration with room for rows records.
func newDecodedElement(decl *section.ElementDecl, rows int) *Element {
	return &Element{
		name:     decl.Name,
		layout:   newLayout(decl.Properties),
		comments: decl.Comments,
		records:  make([]Record, 0, rows),
	}
}

// Name returns the element name.
func (e *Element) Name() string {
	return e.name
}

// Properties returns a copy of the property descriptors in record order.
func (e *Element) Properties() []section.Property {
	return slices.Clone(e.layout.props)
}

// Property returns the descriptor named name.
func (e *Element) Property(name string) (section.Property, bool) {
	i, ok := e.layout.index[name]
	if !ok {
		return section.Property{}, false
	}

	return e.layout.props[i], true
}

// Comments returns a copy of the element comments.
func (e *Element) Comments() []string {
	return slices.Clone(e.comments)
}

// Count returns the number of records, which is the count written to the header.
func (e *Element) Count() int {
	return len(e.records)
}

// Record returns the record at row i. It panics if i is out of range.
func (e *Element) Record(i int) Record {
	return e.records[i]
}

// Records returns a copy of the record list.
func (e *Element) Records() []Record {
	return slices.Clone(e.records)
}

// All returns an iterator over row indexes and records.
func (e *Element) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range e.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

// AppendRecord appends one record holding one Value per property, in property order.
//
// Values are not range-checked here; a value that does not fit its declared type is
// reported when the document is encoded.
//
// Returns:
//   - error: *errs.ElementError wrapping errs.ErrRecordMismatch if the values do not
//     match the property list
func (e *Element) AppendRecord(values ...encoding.Value) error {
	if err := encoding.CheckRecord(e.layout.props, values); err != nil {
		return errs.NewElementError(e.name, len(e.records), "", err, "")
	}

	e.records = append(e.records, Record{layout: e.layout, values: slices.Clone(values)})

	return nil
}

// AppendFields appends one record given as property name → Value.
//
// Every property must be present and no other name may appear.
func (e *Element) AppendFields(fields map[string]encoding.Value) error {
	values := make([]encoding.Value, len(e.layout.props))
	for name, v := range fields {
		i, ok := e.layout.index[name]
		if !ok {
			return errs.NewElementError(e.name, len(e.records), name, errs.ErrRecordMismatch, "no such property")
		}
		values[i] = v
	}
	if len(fields) != len(e.layout.props) {
		for _, p := range e.layout.props {
			if _, ok := fields[p.Name]; !ok {
				return errs.NewElementError(e.name, len(e.records), p.Name, errs.ErrRecordMismatch, "missing field")
			}
		}
	}

	return e.AppendRecord(values...)
}

// appendDecoded adds a record produced by a codec without copying it.
func (e *Element) appendDecoded(values []encoding.Value) {
	e.records = append(e.records, Record{layout: e.layout, values: values})
}

func (e *Element) declaration() section.ElementDecl {
	return section.ElementDecl{
		Name:       e.name,
		Count:      len(e.records),
		Comments:   e.comments,
		Properties: e.layout.props,
	}
}
