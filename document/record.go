package document

import (
	"slices"

	"github.com/Velocidex/ordereddict"

	"github.com/arloliu/ply/encoding"
	"github.com/arloliu/ply/section"
)

// Record is one row of an element: one Value per property, queryable by property name.
//
// Records are read-only views; the name index is shared with the owning element.
type Record struct {
	layout *layout
	values []encoding.Value
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.values)
}

// At returns the field at property position i.
func (r Record) At(i int) encoding.Value {
	return r.values[i]
}

// Values returns a copy of the fields in property order.
func (r Record) Values() []encoding.Value {
	return slices.Clone(r.values)
}

// Value returns the field of the property named name.
func (r Record) Value(name string) (encoding.Value, bool) {
	if r.layout == nil {
		return encoding.Value{}, false
	}

	i, ok := r.layout.index[name]
	if !ok {
		return encoding.Value{}, false
	}

	return r.values[i], true
}

// Scalar returns the value of the scalar property named name.
// It reports false if there is no such property or it is a list.
func (r Record) Scalar(name string) (float64, bool) {
	i, ok := r.kindIndex(name, section.KindScalar)
	if !ok {
		return 0, false
	}

	return r.values[i].Scalar, true
}

// List returns the values of the list property named name.
// It reports false if there is no such property or it is a scalar.
func (r Record) List(name string) ([]float64, bool) {
	i, ok := r.kindIndex(name, section.KindList)
	if !ok {
		return nil, false
	}

	return r.values[i].List, true
}

func (r Record) kindIndex(name string, kind section.PropertyKind) (int, bool) {
	if r.layout == nil {
		return 0, false
	}

	i, ok := r.layout.index[name]
	if !ok || r.layout.props[i].Kind != kind {
		return 0, false
	}

	return i, true
}

// ToDict returns the record as an ordered property name → value mapping.
//
// Scalars map to float64 and lists to []float64, in property order, so the result
// marshals to JSON with fields in declaration order.
func (r Record) ToDict() *ordereddict.Dict {
	dict := ordereddict.NewDict()
	if r.layout == nil {
		return dict
	}

	for i, p := range r.layout.props {
		if p.IsList() {
			list := r.values[i].List
			if list == nil {
				list = []float64{}
			}
			dict.Set(p.Name, list)
		} else {
			dict.Set(p.Name, r.values[i].Scalar)
		}
	}

	return dict
}
