package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/ply/endian"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/section"
)

// BinaryCodec encodes and decodes fixed-width PLY fields in one byte order.
//
// The zero value is not usable; create codecs with NewBinaryCodec.
type BinaryCodec struct {
	engine endian.EndianEngine
	order  format.ByteOrder
}

// NewBinaryCodec creates a codec for the given byte order.
//
// format.NativeEndian is resolved to the host order when the codec is created.
//
// Parameters:
//   - order: Body byte order
//
// Returns:
//   - *BinaryCodec: Codec bound to the resolved byte order
func NewBinaryCodec(order format.ByteOrder) *BinaryCodec {
	resolved := endian.Resolve(order)

	return &BinaryCodec{
		engine: endian.ForByteOrder(resolved),
		order:  resolved,
	}
}

// ByteOrder returns the resolved byte order of the codec, never format.NativeEndian.
func (c *BinaryCodec) ByteOrder() format.ByteOrder {
	return c.order
}

// DecodeScalar reads one value of type t at pos.
//
// Parameters:
//   - buf: Body bytes
//   - pos: Offset of the field in buf
//   - t: Field type
//
// Returns:
//   - float64: Decoded value
//   - int: Offset after the field
//   - error: errs.ErrTruncatedRecord if fewer than t.Size() bytes remain
func (c *BinaryCodec) DecodeScalar(buf []byte, pos int, t format.ScalarType) (float64, int, error) {
	size := t.Size()
	if size == 0 {
		return 0, pos, fmt.Errorf("%w: type code %d", errs.ErrUnknownType, uint8(t))
	}
	if pos < 0 || len(buf)-pos < size {
		return 0, pos, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrTruncatedRecord, size, pos, max(len(buf)-pos, 0))
	}

	b := buf[pos : pos+size]

	var v float64
	switch t {
	case format.TypeInt8:
		v = float64(int8(b[0]))
	case format.TypeUint8:
		v = float64(b[0])
	case format.TypeInt16:
		v = float64(int16(c.engine.Uint16(b)))
	case format.TypeUint16:
		v = float64(c.engine.Uint16(b))
	case format.TypeInt32:
		v = float64(int32(c.engine.Uint32(b)))
	case format.TypeUint32:
		v = float64(c.engine.Uint32(b))
	case format.TypeFloat32:
		v = float64(math.Float32frombits(c.engine.Uint32(b)))
	case format.TypeFloat64:
		v = math.Float64frombits(c.engine.Uint64(b))
	}

	return v, pos + size, nil
}

// AppendScalar appends v encoded as type t.
//
// The value is checked before anything is written: it must be exactly representable
// in t (see format.ScalarType.Represents).
//
// Parameters:
//   - dst: Destination buffer
//   - v: Value to encode
//   - t: Field type
//
// Returns:
//   - []byte: dst with the encoded field appended (dst unchanged on error)
//   - error: errs.ErrValueOutOfRange if v does not fit t
func (c *BinaryCodec) AppendScalar(dst []byte, v float64, t format.ScalarType) ([]byte, error) {
	if !t.Valid() {
		return dst, fmt.Errorf("%w: type code %d", errs.ErrUnknownType, uint8(t))
	}
	if !t.Represents(v) {
		return dst, fmt.Errorf("%w: %v does not fit %s", errs.ErrValueOutOfRange, v, t)
	}

	switch t {
	case format.TypeInt8:
		dst = append(dst, byte(int8(v)))
	case format.TypeUint8:
		dst = append(dst, byte(v))
	case format.TypeInt16:
		dst = c.engine.AppendUint16(dst, uint16(int16(v)))
	case format.TypeUint16:
		dst = c.engine.AppendUint16(dst, uint16(v))
	case format.TypeInt32:
		dst = c.engine.AppendUint32(dst, uint32(int32(v)))
	case format.TypeUint32:
		dst = c.engine.AppendUint32(dst, uint32(v))
	case format.TypeFloat32:
		dst = c.engine.AppendUint32(dst, math.Float32bits(float32(v)))
	case format.TypeFloat64:
		dst = c.engine.AppendUint64(dst, math.Float64bits(v))
	}

	return dst, nil
}

// DecodeList reads a length of lengthType followed by that many values of valueType.
//
// Parameters:
//   - buf: Body bytes
//   - pos: Offset of the length field
//   - lengthType: Type of the length prefix
//   - valueType: Type of each item
//
// Returns:
//   - []float64: Decoded items (empty, not nil, for a zero length)
//   - int: Offset after the last item
//   - error: errs.ErrTruncatedRecord if the buffer ends inside the list,
//     errs.ErrMalformedValue if the length is negative or not an integer
func (c *BinaryCodec) DecodeList(buf []byte, pos int, lengthType, valueType format.ScalarType) ([]float64, int, error) {
	length, next, err := c.DecodeScalar(buf, pos, lengthType)
	if err != nil {
		return nil, pos, err
	}
	if length < 0 || length != math.Trunc(length) || math.IsInf(length, 0) {
		return nil, pos, fmt.Errorf("%w: invalid list length %v", errs.ErrMalformedValue, length)
	}

	size := valueType.Size()
	if size == 0 {
		return nil, pos, fmt.Errorf("%w: type code %d", errs.ErrUnknownType, uint8(valueType))
	}

	// Check the whole list fits before allocating for it.
	remaining := len(buf) - next
	if length > float64(remaining/size) {
		return nil, pos, fmt.Errorf("%w: list of %v items needs %v bytes at offset %d, have %d",
			errs.ErrTruncatedRecord, length, length*float64(size), next, remaining)
	}

	n := int(length)
	values := make([]float64, n)
	for i := range n {
		values[i], next, err = c.DecodeScalar(buf, next, valueType)
		if err != nil {
			return nil, pos, err
		}
	}

	return values, next, nil
}

// AppendList appends the length of values as lengthType followed by each item as valueType.
//
// Returns:
//   - []byte: dst with the list appended (dst unchanged on error)
//   - error: errs.ErrValueOutOfRange if the length or any item does not fit its type
func (c *BinaryCodec) AppendList(dst []byte, values []float64, lengthType, valueType format.ScalarType) ([]byte, error) {
	start := len(dst)

	out, err := c.AppendScalar(dst, float64(len(values)), lengthType)
	if err != nil {
		return dst, fmt.Errorf("list length: %w", err)
	}

	for i, v := range values {
		out, err = c.AppendScalar(out, v, valueType)
		if err != nil {
			return out[:start], fmt.Errorf("item %d: %w", i, err)
		}
	}

	return out, nil
}

// DecodeValue decodes the field of one property at pos.
func (c *BinaryCodec) DecodeValue(buf []byte, pos int, prop section.Property) (Value, int, error) {
	switch prop.Kind {
	case section.KindScalar:
		v, next, err := c.DecodeScalar(buf, pos, prop.ValueType)
		return Value{Scalar: v}, next, err
	case section.KindList:
		list, next, err := c.DecodeList(buf, pos, prop.LengthType, prop.ValueType)
		return Value{List: list}, next, err
	default:
		return Value{}, pos, fmt.Errorf("%w: property %q has no kind", errs.ErrUnknownType, prop.Name)
	}
}

// AppendValue encodes the field of one property.
func (c *BinaryCodec) AppendValue(dst []byte, v Value, prop section.Property) ([]byte, error) {
	switch prop.Kind {
	case section.KindScalar:
		return c.AppendScalar(dst, v.Scalar, prop.ValueType)
	case section.KindList:
		return c.AppendList(dst, v.List, prop.LengthType, prop.ValueType)
	default:
		return dst, fmt.Errorf("%w: property %q has no kind", errs.ErrUnknownType, prop.Name)
	}
}

// DecodeRecord decodes one record of props starting at pos.
//
// Parameters:
//   - buf: Body bytes
//   - pos: Offset of the record
//   - element: Element name, used to locate errors
//   - row: Row index, used to locate errors
//   - props: Property descriptors in record order
//
// Returns:
//   - []Value: One Value per property
//   - int: Offset after the record
//   - error: *errs.ElementError naming the failing property
func (c *BinaryCodec) DecodeRecord(buf []byte, pos int, element string, row int, props []section.Property) ([]Value, int, error) {
	values := make([]Value, len(props))

	next := pos
	for i, prop := range props {
		var err error
		values[i], next, err = c.DecodeValue(buf, next, prop)
		if err != nil {
			return nil, pos, errs.NewElementError(element, row, prop.Name, err, "")
		}
	}

	return values, next, nil
}

// AppendRecord encodes one record.
//
// Returns:
//   - []byte: dst with the record appended (dst unchanged on error)
//   - error: *errs.ElementError wrapping errs.ErrRecordMismatch or errs.ErrValueOutOfRange
func (c *BinaryCodec) AppendRecord(dst []byte, element string, row int, props []section.Property, values []Value) ([]byte, error) {
	if err := CheckRecord(props, values); err != nil {
		return dst, errs.NewElementError(element, row, "", err, "")
	}

	start := len(dst)
	out := dst
	for i, prop := range props {
		var err error
		out, err = c.AppendValue(out, values[i], prop)
		if err != nil {
			return out[:start], errs.NewElementError(element, row, prop.Name, err, "")
		}
	}

	return out, nil
}

// RecordSize returns the exact number of bytes AppendRecord writes for values.
//
// values must already match props (see CheckRecord); list fields contribute their
// length prefix plus one item width per value.
func RecordSize(props []section.Property, values []Value) int {
	size := 0
	for i, prop := range props {
		switch prop.Kind {
		case section.KindScalar:
			size += prop.ValueType.Size()
		case section.KindList:
			size += prop.LengthType.Size() + len(values[i].List)*prop.ValueType.Size()
		}
	}

	return size
}
