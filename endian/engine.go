// Package endian maps PLY byte orders onto encoding/binary engines.
//
// A binary PLY body declares its byte order on the `format` line. Documents built in
// memory may also ask for the native order, which is resolved to the host's actual
// order at the moment a header is generated or a body is encoded.
//
// # Basic Usage
//
//	engine := endian.ForByteOrder(format.BigEndian)
//	v := engine.Uint32(buf[off:])
//	buf = engine.AppendUint16(buf, 7)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"

	"github.com/arloliu/ply/format"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// so one value can both read fixed-width fields and append them to a buffer.
//
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the low byte (0x00) comes first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores the most significant byte first.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// NativeByteOrder returns the host byte order as a concrete format.ByteOrder.
func NativeByteOrder() format.ByteOrder {
	if IsNativeBigEndian() {
		return format.BigEndian
	}

	return format.LittleEndian
}

// Resolve replaces format.NativeEndian with the host's concrete order.
// Little and big are returned unchanged.
func Resolve(order format.ByteOrder) format.ByteOrder {
	if order == format.NativeEndian {
		return NativeByteOrder()
	}

	return order
}

// ForByteOrder returns the engine for a byte order, resolving native to the host order.
//
// Parameters:
//   - order: Declared byte order (little, big, or native)
//
// Returns:
//   - EndianEngine: binary.LittleEndian or binary.BigEndian
func ForByteOrder(order format.ByteOrder) EndianEngine {
	if Resolve(order) == format.BigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
