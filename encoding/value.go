package encoding

import (
	"fmt"

	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/section"
)

// Value is one decoded field of a record.
//
// Scalar holds the value of a scalar property. List holds the values of a list
// property; a nil List is an empty list.
type Value struct {
	Scalar float64
	List   []float64
}

// ScalarValue creates the Value of a scalar field.
func ScalarValue(v float64) Value {
	return Value{Scalar: v}
}

// ListValue creates the Value of a list field.
func ListValue(values ...float64) Value {
	return Value{List: values}
}

// CheckRecord verifies that values has one Value per property and that no scalar
// property carries list data.
//
// Parameters:
//   - props: Property descriptors in record order
//   - values: Record fields
//
// Returns:
//   - error: errs.ErrRecordMismatch describing the first problem, nil if the record fits
func CheckRecord(props []section.Property, values []Value) error {
	if len(values) != len(props) {
		return fmt.Errorf("%w: got %d fields, want %d", errs.ErrRecordMismatch, len(values), len(props))
	}

	for i, p := range props {
		if p.Kind == section.KindScalar && values[i].List != nil {
			return fmt.Errorf("%w: list data for scalar property %q", errs.ErrRecordMismatch, p.Name)
		}
	}

	return nil
}
