// Package encoding provides the record codecs for PLY bodies.
//
// A PLY body is a sequence of element blocks. Each block holds one record per row, and
// each record holds one field per property in declaration order. This package encodes
// and decodes those records in the two body encodings:
//   - BinaryCodec: fixed-width fields in a declared byte order
//   - ASCIICodec: whitespace-separated tokens, one record per line
//
// Most users should use the document package instead, which parses the header and
// drives these codecs over a whole file. Use this package directly when a body has to
// be decoded against a known layout without a header.
//
// # Values
//
// Every field is carried as a Value. Scalar fields use Value.Scalar; list fields use
// Value.List. All eight PLY scalar types fit in a float64 without loss, so one numeric
// representation serves every property type.
//
// # Cursor Model
//
// Decoding functions take an explicit position (a byte offset for binary, a token
// index for ASCII) and return the position after the decoded field:
//
//	v, pos, err := codec.DecodeScalar(buf, pos, format.TypeFloat32)
//	if err != nil {
//	    return err
//	}
//	list, pos, err := codec.DecodeList(buf, pos, format.TypeUint8, format.TypeInt32)
//
// Nothing is stored between calls, so codecs are safe for concurrent use.
//
// # Encoding
//
// Encoders append to a caller-owned slice and validate every value against its target
// type before writing it. A value that does not fit (a fraction for an integer type, an
// integer outside the type's range, a float64 with no exact float32 form) fails with
// errs.ErrValueOutOfRange and nothing is silently truncated.
//
// For binary output, RecordSize returns the exact encoded size of a record so callers
// can allocate the output once.
//
// # Errors
//
// Field-level functions return errors wrapping an errs sentinel. Record-level functions
// (DecodeRecord, DecodeLine, AppendRecord) return *errs.ElementError locating the
// failure by element name, row and property.
package encoding
