// Package document reads and writes complete PLY files.
//
// A Document is the in-memory form of a PLY file: ordered elements, each with a
// property list and records, plus document comments, obj_info lines and the body
// encoding (ASCII, or binary in little, big or native byte order).
//
// # Decoding
//
//	decoder, err := document.NewDecoder(data, document.WithStrictTrailing(true))
//	if err != nil {
//	    return err // *errs.HeaderError
//	}
//	doc, err := decoder.Decode()
//	if err != nil {
//	    return err // *errs.ElementError, or errs.ErrTrailingData
//	}
//
//	vertex, err := doc.Element("vertex")
//	for _, rec := range vertex.All() {
//	    x, _ := rec.Scalar("x")
//	    ...
//	}
//
// The whole file must be in memory. The header is parsed first, then each element is
// decoded as one contiguous block in header order. Decoding is atomic: on failure no
// Document is returned.
//
// # Building and Encoding
//
//	x, _ := section.NewScalarProperty("x", format.TypeFloat32)
//	idx, _ := section.NewListProperty("vertex_indices", format.TypeUint8, format.TypeInt32)
//
//	vertex, _ := document.NewElement("vertex", []section.Property{x})
//	_ = vertex.AppendRecord(encoding.ScalarValue(1.5))
//
//	face, _ := document.NewElement("face", []section.Property{idx})
//	_ = face.AppendRecord(encoding.ListValue(0, 1, 2))
//
//	doc, _ := document.New([]*document.Element{vertex, face},
//	    document.WithBinaryBody(format.LittleEndian),
//	    document.WithComments("generated"))
//
//	encoder, _ := document.NewEncoder()
//	data, err := encoder.Encode(doc)
//
// The header count of each element is its number of records. Values are checked
// against their declared types when encoding; a value that does not fit fails with
// errs.ErrValueOutOfRange. Binary output is sized exactly before it is allocated.
//
// # Logging
//
// Decoder and Encoder accept an optional *slog.Logger and emit debug records for the
// parsed header, each decoded element, ignored trailing data and each encoded file.
package document
