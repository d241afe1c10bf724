package encoding

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/internal/pool"
	"github.com/arloliu/ply/section"
)

// ASCIICodec encodes and decodes whitespace-separated PLY fields.
//
// Decoding works on a token slice with an explicit token index; encoding appends
// space-separated tokens to a byte slice.
type ASCIICodec struct{}

// NewASCIICodec creates an ASCII codec.
func NewASCIICodec() *ASCIICodec {
	return &ASCIICodec{}
}

// DecodeScalar parses tokens[pos] as a value of type t.
//
// Integer types accept any numeric spelling of an in-range integer ("3", "3.0", "3e0").
// TypeFloat32 tokens are parsed at float32 precision so the result always re-encodes.
//
// Returns:
//   - float64: Parsed value
//   - int: Index of the next token
//   - error: errs.ErrEarlyEndOfLine if no token is left,
//     errs.ErrMalformedValue if the token is not a valid value of t
func (c *ASCIICodec) DecodeScalar(tokens []string, pos int, t format.ScalarType) (float64, int, error) {
	if pos >= len(tokens) {
		return 0, pos, errs.ErrEarlyEndOfLine
	}

	v, err := parseToken(tokens[pos], t)
	if err != nil {
		return 0, pos, err
	}

	return v, pos + 1, nil
}

// DecodeList parses a count token followed by that many value tokens.
//
// Returns:
//   - []float64: Parsed items (empty, not nil, for a zero count)
//   - int: Index of the token after the last item
//   - error: errs.ErrEarlyEndOfLine if the line ends before the count or any item,
//     errs.ErrMalformedValue if the count is not a non-negative integer or an item is invalid
func (c *ASCIICodec) DecodeList(tokens []string, pos int, lengthType, valueType format.ScalarType) ([]float64, int, error) {
	length, next, err := c.DecodeScalar(tokens, pos, lengthType)
	if err != nil {
		return nil, pos, err
	}
	if length < 0 || length != math.Trunc(length) || math.IsInf(length, 0) {
		return nil, pos, fmt.Errorf("%w: invalid list length %q", errs.ErrMalformedValue, tokens[pos])
	}
	if length > float64(len(tokens)-next) {
		return nil, pos, fmt.Errorf("%w: list of %v items, %d tokens left", errs.ErrEarlyEndOfLine, length, len(tokens)-next)
	}

	n := int(length)
	values := make([]float64, n)
	for i := range n {
		values[i], next, err = c.DecodeScalar(tokens, next, valueType)
		if err != nil {
			return nil, pos, err
		}
	}

	return values, next, nil
}

// DecodeValue decodes the field of one property at token index pos.
func (c *ASCIICodec) DecodeValue(tokens []string, pos int, prop section.Property) (Value, int, error) {
	switch prop.Kind {
	case section.KindScalar:
		v, next, err := c.DecodeScalar(tokens, pos, prop.ValueType)
		return Value{Scalar: v}, next, err
	case section.KindList:
		list, next, err := c.DecodeList(tokens, pos, prop.LengthType, prop.ValueType)
		return Value{List: list}, next, err
	default:
		return Value{}, pos, fmt.Errorf("%w: property %q has no kind", errs.ErrUnknownType, prop.Name)
	}
}

// DecodeLine decodes one record from a body line.
//
// Every token of the line must be consumed by props.
//
// Parameters:
//   - line: Body line without its line break
//   - element: Element name, used to locate errors
//   - row: Row index, used to locate errors
//   - props: Property descriptors in record order
//
// Returns:
//   - []Value: One Value per property
//   - error: *errs.ElementError; errs.ErrExpectedEndOfLine (no property named) when
//     tokens are left over
func (c *ASCIICodec) DecodeLine(line string, element string, row int, props []section.Property) ([]Value, error) {
	tokens, release := pool.GetTokenSlice(2 * len(props))
	tokens = SplitFields(tokens, line)
	defer func() { release(tokens) }()

	return c.DecodeTokens(tokens, element, row, props)
}

// DecodeTokens decodes one record from the tokens of a body line.
func (c *ASCIICodec) DecodeTokens(tokens []string, element string, row int, props []section.Property) ([]Value, error) {
	values := make([]Value, len(props))

	pos := 0
	for i, prop := range props {
		var err error
		values[i], pos, err = c.DecodeValue(tokens, pos, prop)
		if err != nil {
			return nil, errs.NewElementError(element, row, prop.Name, err, "")
		}
	}

	if pos != len(tokens) {
		return nil, errs.NewElementError(element, row, "", errs.ErrExpectedEndOfLine,
			fmt.Sprintf("%d unused tokens starting at %q", len(tokens)-pos, tokens[pos]))
	}

	return values, nil
}

// AppendScalar appends the text form of v as type t.
//
// Integers are written in decimal; floats use the shortest form that parses back to
// the same value at the type's precision.
//
// Returns:
//   - []byte: dst with the token appended (dst unchanged on error)
//   - error: errs.ErrValueOutOfRange if v does not fit t
func (c *ASCIICodec) AppendScalar(dst []byte, v float64, t format.ScalarType) ([]byte, error) {
	if !t.Valid() {
		return dst, fmt.Errorf("%w: type code %d", errs.ErrUnknownType, uint8(t))
	}
	if !t.Represents(v) {
		return dst, fmt.Errorf("%w: %v does not fit %s", errs.ErrValueOutOfRange, v, t)
	}

	switch t {
	case format.TypeFloat32:
		return strconv.AppendFloat(dst, v, 'g', -1, 32), nil
	case format.TypeFloat64:
		return strconv.AppendFloat(dst, v, 'g', -1, 64), nil
	default:
		return strconv.AppendInt(dst, int64(v), 10), nil
	}
}

// AppendList appends the count token followed by each item, space separated.
func (c *ASCIICodec) AppendList(dst []byte, values []float64, lengthType, valueType format.ScalarType) ([]byte, error) {
	start := len(dst)

	out, err := c.AppendScalar(dst, float64(len(values)), lengthType)
	if err != nil {
		return dst, fmt.Errorf("list length: %w", err)
	}

	for i, v := range values {
		out = append(out, ' ')
		out, err = c.AppendScalar(out, v, valueType)
		if err != nil {
			return out[:start], fmt.Errorf("item %d: %w", i, err)
		}
	}

	return out, nil
}

// AppendValue appends the tokens of one property's field.
func (c *ASCIICodec) AppendValue(dst []byte, v Value, prop section.Property) ([]byte, error) {
	switch prop.Kind {
	case section.KindScalar:
		return c.AppendScalar(dst, v.Scalar, prop.ValueType)
	case section.KindList:
		return c.AppendList(dst, v.List, prop.LengthType, prop.ValueType)
	default:
		return dst, fmt.Errorf("%w: property %q has no kind", errs.ErrUnknownType, prop.Name)
	}
}

// AppendRecord appends one record as a single line terminated by "\n".
//
// Returns:
//   - []byte: dst with the line appended (dst unchanged on error)
//   - error: *errs.ElementError wrapping errs.ErrRecordMismatch or errs.ErrValueOutOfRange
func (c *ASCIICodec) AppendRecord(dst []byte, element string, row int, props []section.Property, values []Value) ([]byte, error) {
	if err := CheckRecord(props, values); err != nil {
		return dst, errs.NewElementError(element, row, "", err, "")
	}

	start := len(dst)
	out := dst
	for i, prop := range props {
		if i > 0 {
			out = append(out, ' ')
		}

		var err error
		out, err = c.AppendValue(out, values[i], prop)
		if err != nil {
			return out[:start], errs.NewElementError(element, row, prop.Name, err, "")
		}
	}

	return append(out, '\n'), nil
}

// SplitFields appends the whitespace-separated fields of line to dst.
//
// Space, tab, vertical tab, form feed and carriage return separate fields, which
// matches what ASCII PLY writers emit.
func SplitFields(dst []string, line string) []string {
	start := -1
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			if start >= 0 {
				dst = append(dst, line[start:i])
				start = -1
			}

			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		dst = append(dst, line[start:])
	}

	return dst
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	default:
		return false
	}
}

func parseToken(tok string, t format.ScalarType) (float64, error) {
	bitSize := 64
	if t == format.TypeFloat32 {
		bitSize = 32
	}

	v, err := strconv.ParseFloat(tok, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid %s", errs.ErrMalformedValue, tok, t)
	}
	if t.IsInteger() && !t.Represents(v) {
		return 0, fmt.Errorf("%w: %q is not a valid %s", errs.ErrMalformedValue, tok, t)
	}

	return v, nil
}
