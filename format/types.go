// Package format defines the small enumerations shared by the PLY header parser and
// the body codecs: the body encoding declared on the `format` line, the byte order
// used for binary bodies, and the canonical scalar property types.
package format

type (
	Format     uint8
	ByteOrder  uint8
	ScalarType uint8
)

const (
	FormatASCII              Format = 0x1 // FormatASCII is whitespace-delimited text.
	FormatBinaryLittleEndian Format = 0x2 // FormatBinaryLittleEndian is fixed-width little-endian binary.
	FormatBinaryBigEndian    Format = 0x3 // FormatBinaryBigEndian is fixed-width big-endian binary.

	LittleEndian ByteOrder = 0x1 // LittleEndian is least significant byte first.
	BigEndian    ByteOrder = 0x2 // BigEndian is most significant byte first.
	NativeEndian ByteOrder = 0x3 // NativeEndian resolves to the host byte order when used.
)

// Version is the only PLY version understood by the parser.
const Version = "1.0"

func (f Format) String() string {
	switch f {
	case FormatASCII:
		return "ascii"
	case FormatBinaryLittleEndian:
		return "binary_little_endian"
	case FormatBinaryBigEndian:
		return "binary_big_endian"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the three PLY formats.
func (f Format) Valid() bool {
	return f >= FormatASCII && f <= FormatBinaryBigEndian
}

// IsText reports whether the format stores records as text lines.
func (f Format) IsText() bool {
	return f == FormatASCII
}

// ByteOrder returns the byte order a binary format declares.
// ASCII has no byte order and reports NativeEndian.
func (f Format) ByteOrder() ByteOrder {
	switch f {
	case FormatBinaryLittleEndian:
		return LittleEndian
	case FormatBinaryBigEndian:
		return BigEndian
	default:
		return NativeEndian
	}
}

// ParseFormat maps a `format` line name to its Format.
//
// Parameters:
//   - name: Format token as written in the header
//
// Returns:
//   - Format: Matching format
//   - bool: false if the name is not a known format
func ParseFormat(name string) (Format, bool) {
	switch name {
	case "ascii":
		return FormatASCII, true
	case "binary_little_endian":
		return FormatBinaryLittleEndian, true
	case "binary_big_endian":
		return FormatBinaryBigEndian, true
	default:
		return 0, false
	}
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "Little"
	case BigEndian:
		return "Big"
	case NativeEndian:
		return "Native"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is little, big or native.
func (o ByteOrder) Valid() bool {
	return o >= LittleEndian && o <= NativeEndian
}

// BinaryFormat returns the binary Format matching a concrete byte order.
// NativeEndian must be resolved by the caller first; it maps to little-endian here.
func (o ByteOrder) BinaryFormat() Format {
	if o == BigEndian {
		return FormatBinaryBigEndian
	}

	return FormatBinaryLittleEndian
}
