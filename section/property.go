package section

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
)

// PropertyKind tags the variant held by a Property.
type PropertyKind uint8

const (
	KindScalar PropertyKind = 0x1 // KindScalar is a single value per record.
	KindList   PropertyKind = 0x2 // KindList is a length-prefixed sequence per record.
)

func (k PropertyKind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Property describes one field of an element record.
//
// It is a tagged union: LengthType is meaningful only when Kind is KindList.
// Construct it with NewScalarProperty or NewListProperty.
type Property struct {
	Name       string
	Kind       PropertyKind
	ValueType  format.ScalarType
	LengthType format.ScalarType
}

// NewScalarProperty creates a scalar property descriptor.
//
// Returns:
//   - Property: Scalar descriptor
//   - error: errs.ErrInvalidName for an empty, non-ASCII or whitespace-containing name,
//     errs.ErrUnknownType for an invalid value type
func NewScalarProperty(name string, valueType format.ScalarType) (Property, error) {
	p := Property{Name: name, Kind: KindScalar, ValueType: valueType}
	if err := p.Validate(); err != nil {
		return Property{}, err
	}

	return p, nil
}

// NewListProperty creates a list property descriptor.
//
// Returns:
//   - Property: List descriptor
//   - error: errs.ErrInvalidName or errs.ErrUnknownType
func NewListProperty(name string, lengthType, valueType format.ScalarType) (Property, error) {
	p := Property{Name: name, Kind: KindList, ValueType: valueType, LengthType: lengthType}
	if err := p.Validate(); err != nil {
		return Property{}, err
	}

	return p, nil
}

// Validate checks the name, the kind and the types of p.
func (p Property) Validate() error {
	if err := ValidateName(p.Name); err != nil {
		return err
	}

	switch p.Kind {
	case KindScalar:
		if !p.ValueType.Valid() {
			return fmt.Errorf("%w: property %q", errs.ErrUnknownType, p.Name)
		}
	case KindList:
		if !p.LengthType.Valid() || !p.ValueType.Valid() {
			return fmt.Errorf("%w: property %q", errs.ErrUnknownType, p.Name)
		}
	default:
		return fmt.Errorf("%w: property %q has no kind", errs.ErrUnknownType, p.Name)
	}

	return nil
}

// IsList reports whether p is a list property.
func (p Property) IsList() bool {
	return p.Kind == KindList
}

// HeaderLine returns the `property` line describing p.
func (p Property) HeaderLine() string {
	switch p.Kind {
	case KindList:
		return "property list " + p.LengthType.String() + " " + p.ValueType.String() + " " + p.Name
	case KindScalar:
		return "property " + p.ValueType.String() + " " + p.Name
	default:
		return "property ? " + p.Name
	}
}

// ValidateName checks that an element or property name can be written to a header:
// non-empty, ASCII only and free of whitespace.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", errs.ErrInvalidName)
	}
	for _, r := range name {
		if r > unicode.MaxASCII {
			return fmt.Errorf("%w: non-ASCII character in %q", errs.ErrInvalidName, name)
		}
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: whitespace in %q", errs.ErrInvalidName, name)
		}
	}

	return nil
}

// ValidateComment checks that a comment or obj_info line is ASCII without embedded line breaks.
func ValidateComment(text string) error {
	for _, r := range text {
		if r > unicode.MaxASCII {
			return fmt.Errorf("%w: non-ASCII character", errs.ErrInvalidComment)
		}
	}
	if strings.ContainsAny(text, "\r\n") {
		return fmt.Errorf("%w: embedded line break", errs.ErrInvalidComment)
	}

	return nil
}
