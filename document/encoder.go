package document

import (
	"io"
	"log/slog"

	"github.com/arloliu/ply/encoding"
	"github.com/arloliu/ply/endian"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/internal/logging"
	"github.com/arloliu/ply/internal/options"
	"github.com/arloliu/ply/internal/pool"
	"github.com/arloliu/ply/section"
)

// EncoderConfig holds the encoder settings applied by EncoderOption values.
type EncoderConfig struct {
	logger *slog.Logger
	// override replaces the document's own body encoding when set.
	override bool
	text     bool
	order    format.ByteOrder
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithText writes an ASCII body regardless of the document's format.
func WithText() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.override = true
		c.text = true
	})
}

// WithLittleEndian writes a binary little-endian body regardless of the document's format.
func WithLittleEndian() EncoderOption {
	return withByteOrder(format.LittleEndian)
}

// WithBigEndian writes a binary big-endian body regardless of the document's format.
func WithBigEndian() EncoderOption {
	return withByteOrder(format.BigEndian)
}

// WithNativeEndian writes a binary body in the host byte order regardless of the
// document's format.
func WithNativeEndian() EncoderOption {
	return withByteOrder(format.NativeEndian)
}

func withByteOrder(order format.ByteOrder) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.override = true
		c.text = false
		c.order = order
	})
}

// WithEncoderLogger sets the logger for debug records. A nil logger disables logging.
func WithEncoderLogger(logger *slog.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.logger = logger
	})
}

// Encoder writes Documents as PLY files.
//
// An Encoder holds only its configuration and can encode any number of documents,
// including concurrently.
type Encoder struct {
	cfg EncoderConfig
	log logging.Logger
}

// NewEncoder creates an encoder.
//
// Without options each document is written in its own format.
//
// Returns:
//   - *Encoder: Configured encoder
//   - error: Option error
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{}
	if err := options.Apply(&e.cfg, opts...); err != nil {
		return nil, err
	}
	e.log = logging.New(e.cfg.logger, "encoder")

	return e, nil
}

// Format returns the format doc is written in by this encoder.
func (e *Encoder) Format(doc *Document) format.Format {
	if !e.cfg.override {
		return doc.Format()
	}
	if e.cfg.text {
		return format.FormatASCII
	}

	return endian.Resolve(e.cfg.order).BinaryFormat()
}

// Encode returns the complete file for doc: the generated header followed by the body.
//
// Binary output is sized exactly before it is allocated.
//
// Returns:
//   - []byte: Encoded file
//   - error: *errs.ElementError wrapping errs.ErrValueOutOfRange or
//     errs.ErrRecordMismatch for the first record that cannot be written
func (e *Encoder) Encode(doc *Document) ([]byte, error) {
	f := e.Format(doc)
	h := doc.headerFor(f)

	var out []byte
	if f.IsText() {
		buf := pool.GetTextBuffer()
		defer pool.PutTextBuffer(buf)

		if err := e.encodeText(buf, doc, h); err != nil {
			return nil, err
		}
		out = buf.Detach()
	} else {
		header := h.Bytes()
		size, err := binarySize(doc, header)
		if err != nil {
			return nil, err
		}

		buf := pool.NewByteBuffer(size)
		if err := e.encodeBinary(buf, doc, f.ByteOrder(), header, size); err != nil {
			return nil, err
		}
		out = buf.Bytes()
	}

	e.logEncoded(f, doc, len(out))

	return out, nil
}

// EncodeTo encodes doc into a pooled buffer and writes it to w.
//
// Returns:
//   - int: Bytes written to w
//   - error: Encoding error as for Encode, or the error returned by w
func (e *Encoder) EncodeTo(w io.Writer, doc *Document) (int, error) {
	f := e.Format(doc)
	h := doc.headerFor(f)

	buf := pool.GetTextBuffer()
	defer pool.PutTextBuffer(buf)

	if f.IsText() {
		if err := e.encodeText(buf, doc, h); err != nil {
			return 0, err
		}
	} else {
		header := h.Bytes()
		size, err := binarySize(doc, header)
		if err != nil {
			return 0, err
		}
		if err := e.encodeBinary(buf, doc, f.ByteOrder(), header, size); err != nil {
			return 0, err
		}
	}

	e.logEncoded(f, doc, buf.Len())

	n, err := buf.WriteTo(w)

	return int(n), err
}

func (e *Encoder) logEncoded(f format.Format, doc *Document, size int) {
	e.log.Debug("document encoded",
		slog.String("format", f.String()),
		slog.Int("elements", doc.Len()),
		slog.Int("bytes", size))
}

// binarySize checks every record against its element and returns the exact size of
// the binary file with the given header.
func binarySize(doc *Document, header []byte) (int, error) {
	size := len(header)
	for _, el := range doc.elements {
		for row, rec := range el.records {
			if err := encoding.CheckRecord(el.layout.props, rec.values); err != nil {
				return 0, errs.NewElementError(el.name, row, "", err, "")
			}
			size += encoding.RecordSize(el.layout.props, rec.values)
		}
	}

	return size, nil
}

func (e *Encoder) encodeBinary(buf *pool.ByteBuffer, doc *Document, order format.ByteOrder, header []byte, size int) error {
	codec := encoding.NewBinaryCodec(order)

	buf.Grow(size)
	_, _ = buf.Write(header)
	for _, el := range doc.elements {
		for row, rec := range el.records {
			var err error
			buf.B, err = codec.AppendRecord(buf.B, el.name, row, el.layout.props, rec.values)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Encoder) encodeText(buf *pool.ByteBuffer, doc *Document, h *section.Header) error {
	codec := encoding.NewASCIICodec()

	buf.B = h.AppendTo(buf.B)
	for _, el := range doc.elements {
		for row, rec := range el.records {
			var err error
			buf.B, err = codec.AppendRecord(buf.B, el.name, row, el.layout.props, rec.values)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
