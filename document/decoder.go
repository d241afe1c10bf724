package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arloliu/ply/encoding"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/internal/logging"
	"github.com/arloliu/ply/internal/options"
	"github.com/arloliu/ply/internal/pool"
	"github.com/arloliu/ply/section"
)

// DecoderConfig holds the decoder settings applied by DecoderOption values.
type DecoderConfig struct {
	logger         *slog.Logger
	strictTrailing bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderLogger sets the logger for debug records. A nil logger disables logging.
func WithDecoderLogger(logger *slog.Logger) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.logger = logger
	})
}

// WithStrictTrailing controls data after the last element. When strict is true such
// data fails the decode with errs.ErrTrailingData; by default it is ignored.
func WithStrictTrailing(strict bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.strictTrailing = strict
	})
}

// Decoder reads a PLY file held entirely in memory.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type Decoder struct {
	data   []byte
	header *section.Header
	cfg    DecoderConfig
	log    logging.Logger
}

// NewDecoder parses the header of data and prepares to decode its body.
//
// Parameters:
//   - data: Complete PLY file
//   - opts: Decoder options
//
// Returns:
//   - *Decoder: Decoder with a parsed header
//   - error: *errs.HeaderError on a malformed header, or an option error
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{data: data}
	if err := options.Apply(&d.cfg, opts...); err != nil {
		return nil, err
	}
	d.log = logging.New(d.cfg.logger, "decoder")

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}
	d.header = header

	d.log.Debug("header parsed",
		slog.String("format", header.Format.String()),
		slog.Int("elements", len(header.Elements)),
		slog.Int("header_bytes", header.Size),
		slog.Uint64("schema_id", header.SchemaID()))

	return d, nil
}

// Header returns the parsed header.
func (d *Decoder) Header() *section.Header {
	return d.header
}

// Decode decodes the body into a Document.
//
// Elements are decoded in header order, each as one contiguous block of rows. The
// operation is atomic: on any error no Document is returned.
//
// Returns:
//   - *Document: Document with every element holding exactly its declared row count
//   - error: *errs.ElementError for body failures (errs.ErrTruncatedRecord,
//     errs.ErrMalformedValue, errs.ErrEarlyEndOfLine, errs.ErrExpectedEndOfLine,
//     errs.ErrEarlyEndOfFile), or errs.ErrTrailingData in strict mode
func (d *Decoder) Decode() (*Document, error) {
	h := d.header
	body := d.data[h.Size:]

	elements := make([]*Element, len(h.Elements))
	for i := range h.Elements {
		// Preallocation never exceeds what the body could hold; larger counts fail
		// while decoding instead.
		elements[i] = newDecodedElement(&h.Elements[i], min(h.Elements[i].Count, len(body)))
	}

	var (
		consumed int
		err      error
	)
	if h.Format.IsText() {
		consumed, err = d.decodeText(body, elements)
	} else {
		consumed, err = d.decodeBinary(body, elements)
	}
	if err != nil {
		return nil, err
	}

	if err := d.checkTrailing(body[consumed:]); err != nil {
		return nil, err
	}

	doc := &Document{
		comments:  h.Comments,
		objInfo:   h.ObjInfo,
		text:      h.Format.IsText(),
		byteOrder: h.Format.ByteOrder(),
	}
	if err := doc.setElements(elements); err != nil {
		return nil, err
	}

	return doc, nil
}

// decodeBinary decodes every element from body and returns the number of bytes consumed.
func (d *Decoder) decodeBinary(body []byte, elements []*Element) (int, error) {
	codec := encoding.NewBinaryCodec(d.header.Format.ByteOrder())

	pos := 0
	for i, e := range elements {
		start := pos
		count := d.header.Elements[i].Count
		// Rows without properties take no bytes, so their count is bounded by the
		// file size instead of by the data left.
		if len(e.layout.props) == 0 && count > len(d.data) {
			return 0, errs.NewElementError(e.name, -1, "", errs.ErrTruncatedRecord,
				fmt.Sprintf("%d rows without properties exceed the %d byte file", count, len(d.data)))
		}
		for row := range count {
			values, next, err := codec.DecodeRecord(body, pos, e.name, row, e.layout.props)
			if err != nil {
				return 0, err
			}
			e.appendDecoded(values)
			pos = next
		}

		d.log.Debug("element decoded",
			slog.String("element", e.name),
			slog.Int("rows", count),
			slog.Int("bytes", pos-start))
	}

	return pos, nil
}

// decodeText decodes every element from body and returns the number of bytes consumed.
func (d *Decoder) decodeText(body []byte, elements []*Element) (int, error) {
	codec := encoding.NewASCIICodec()
	text := string(body)

	tokens, release := pool.GetTokenSlice(16)
	defer func() { release(tokens) }()

	pos := 0
	for i, e := range elements {
		lines := 0
		count := d.header.Elements[i].Count
		for row := range count {
			line, next, ok := nextLine(text, pos)
			if !ok {
				return 0, errs.NewElementError(e.name, row, "", errs.ErrEarlyEndOfFile,
					fmt.Sprintf("expected %d rows, found %d", count, row))
			}
			pos = next
			lines++

			tokens = encoding.SplitFields(tokens[:0], line)
			values, err := codec.DecodeTokens(tokens, e.name, row, e.layout.props)
			if err != nil {
				return 0, err
			}
			e.appendDecoded(values)
		}

		d.log.Debug("element decoded",
			slog.String("element", e.name),
			slog.Int("rows", count),
			slog.Int("lines", lines))
	}

	return pos, nil
}

// nextLine returns the first non-blank line of text at or after pos and the offset
// after its line break.
func nextLine(text string, pos int) (string, int, bool) {
	for pos < len(text) {
		var line string
		if end := strings.IndexByte(text[pos:], '\n'); end >= 0 {
			line = text[pos : pos+end]
			pos += end + 1
		} else {
			line = text[pos:]
			pos = len(text)
		}

		if strings.TrimSpace(line) != "" {
			return line, pos, true
		}
	}

	return "", pos, false
}

func (d *Decoder) checkTrailing(rest []byte) error {
	n := len(rest)
	if d.header.Format.IsText() {
		n = len(bytes.TrimSpace(rest))
	}
	if n == 0 {
		return nil
	}

	if d.cfg.strictTrailing {
		return fmt.Errorf("%w: %d bytes", errs.ErrTrailingData, len(rest))
	}

	d.log.Debug("trailing data ignored", slog.Int("bytes", len(rest)))

	return nil
}
