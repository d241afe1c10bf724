package format

import (
	"fmt"
	"math"

	"github.com/arloliu/ply/errs"
)

const (
	TypeInt8    ScalarType = 0x1 // TypeInt8 is a signed 8-bit integer (`char`).
	TypeUint8   ScalarType = 0x2 // TypeUint8 is an unsigned 8-bit integer (`uchar`).
	TypeInt16   ScalarType = 0x3 // TypeInt16 is a signed 16-bit integer (`short`).
	TypeUint16  ScalarType = 0x4 // TypeUint16 is an unsigned 16-bit integer (`ushort`).
	TypeInt32   ScalarType = 0x5 // TypeInt32 is a signed 32-bit integer (`int`).
	TypeUint32  ScalarType = 0x6 // TypeUint32 is an unsigned 32-bit integer (`uint`).
	TypeFloat32 ScalarType = 0x7 // TypeFloat32 is an IEEE-754 binary32 float (`float`).
	TypeFloat64 ScalarType = 0x8 // TypeFloat64 is an IEEE-754 binary64 float (`double`).
)

// scalarTypeInfo is one row of the type table.
type scalarTypeInfo struct {
	canonical  string // int8, uint8, ...
	headerName string // spelling used in generated headers
	size       int
	min, max   float64 // integer bounds; unused for floats
	integer    bool
}

var scalarTypes = [...]scalarTypeInfo{
	TypeInt8:    {"int8", "char", 1, math.MinInt8, math.MaxInt8, true},
	TypeUint8:   {"uint8", "uchar", 1, 0, math.MaxUint8, true},
	TypeInt16:   {"int16", "short", 2, math.MinInt16, math.MaxInt16, true},
	TypeUint16:  {"uint16", "ushort", 2, 0, math.MaxUint16, true},
	TypeInt32:   {"int32", "int", 4, math.MinInt32, math.MaxInt32, true},
	TypeUint32:  {"uint32", "uint", 4, 0, math.MaxUint32, true},
	TypeFloat32: {"float32", "float", 4, 0, 0, false},
	TypeFloat64: {"float64", "double", 8, 0, 0, false},
}

// typeAliases maps every accepted header token to its canonical type.
var typeAliases = map[string]ScalarType{
	"int8":    TypeInt8,
	"char":    TypeInt8,
	"uint8":   TypeUint8,
	"uchar":   TypeUint8,
	"int16":   TypeInt16,
	"short":   TypeInt16,
	"uint16":  TypeUint16,
	"ushort":  TypeUint16,
	"int32":   TypeInt32,
	"int":     TypeInt32,
	"uint32":  TypeUint32,
	"uint":    TypeUint32,
	"float32": TypeFloat32,
	"float":   TypeFloat32,
	"float64": TypeFloat64,
	"double":  TypeFloat64,
}

// ResolveType resolves a header type token (canonical code or alias) to its ScalarType.
//
// Parameters:
//   - token: Type token from a `property` line, e.g. "uchar" or "float32"
//
// Returns:
//   - ScalarType: Canonical type
//   - error: errs.ErrUnknownType if the token is neither a canonical code nor an alias
func ResolveType(token string) (ScalarType, error) {
	if t, ok := typeAliases[token]; ok {
		return t, nil
	}

	return 0, fmt.Errorf("%w: %q", errs.ErrUnknownType, token)
}

// Valid reports whether t is one of the eight canonical types.
func (t ScalarType) Valid() bool {
	return t >= TypeInt8 && t <= TypeFloat64
}

// Size returns the encoded width of t in bytes, or 0 for an invalid type.
func (t ScalarType) Size() int {
	if !t.Valid() {
		return 0
	}

	return scalarTypes[t].size
}

// String returns the header spelling of t, which is what generated headers emit.
func (t ScalarType) String() string {
	if !t.Valid() {
		return "Unknown"
	}

	return scalarTypes[t].headerName
}

// Canonical returns the sized canonical name of t (int8 … float64).
func (t ScalarType) Canonical() string {
	if !t.Valid() {
		return "Unknown"
	}

	return scalarTypes[t].canonical
}

// IsInteger reports whether t is one of the integer types.
func (t ScalarType) IsInteger() bool {
	return t.Valid() && scalarTypes[t].integer
}

// Represents reports whether v can be stored in t without loss.
//
// Integer types accept only integral values inside their range. TypeFloat32 accepts
// values whose float32 rounding is exact, plus NaN and the infinities.
// TypeFloat64 accepts everything.
func (t ScalarType) Represents(v float64) bool {
	if !t.Valid() {
		return false
	}

	info := scalarTypes[t]
	if info.integer {
		return v == math.Trunc(v) && v >= info.min && v <= info.max
	}

	if t == TypeFloat32 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}

		return float64(float32(v)) == v
	}

	return true
}
