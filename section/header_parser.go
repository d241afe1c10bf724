package section

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/internal/collision"
)

const magic = "ply"

type keyword uint8

const (
	kwFormat keyword = iota + 1
	kwComment
	kwObjInfo
	kwElement
	kwProperty
	kwEndHeader
)

var keywords = map[string]keyword{
	"format":     kwFormat,
	"comment":    kwComment,
	"obj_info":   kwObjInfo,
	"element":    kwElement,
	"property":   kwProperty,
	"end_header": kwEndHeader,
}

type parserState uint8

const (
	stateStart parserState = iota
	statePreamble
	stateInElement
	stateDone
)

func (s parserState) String() string {
	switch s {
	case stateStart:
		return "{format, comment, obj_info}"
	case statePreamble:
		return "{element, comment, obj_info, end_header}"
	case stateInElement:
		return "{element, comment, property, end_header}"
	default:
		return "{}"
	}
}

// allows reports whether kw is legal in state s.
func (s parserState) allows(kw keyword) bool {
	switch s {
	case stateStart:
		return kw == kwFormat || kw == kwComment || kw == kwObjInfo
	case statePreamble:
		return kw == kwElement || kw == kwComment || kw == kwObjInfo || kw == kwEndHeader
	case stateInElement:
		return kw == kwElement || kw == kwComment || kw == kwProperty || kw == kwEndHeader
	default:
		return false
	}
}

// next returns the state after a legal kw in state s.
func (s parserState) next(kw keyword) parserState {
	switch kw {
	case kwFormat:
		return statePreamble
	case kwElement:
		return stateInElement
	case kwEndHeader:
		return stateDone
	default:
		return s
	}
}

// headerParser accumulates a Header from keyword lines.
type headerParser struct {
	header   Header
	state    parserState
	line     int
	elements *collision.Tracker
	props    *collision.Tracker
}

// ParseHeader parses the PLY header at the start of data.
//
// The first line must be exactly `ply`, terminated by "\n" or "\r\n"; that line break
// is then expected for every header line. Parsing stops after `end_header`, and the
// returned Header.Size is the offset of the first body byte in data. A final
// `end_header` without a line break is accepted and leaves an empty body.
//
// Parameters:
//   - data: Complete file contents, or at least the complete header
//
// Returns:
//   - *Header: Parsed header (nil on error)
//   - error: *errs.HeaderError wrapping one of the header error kinds
func ParseHeader(data []byte) (*Header, error) {
	nl, pos, err := readMagic(data)
	if err != nil {
		return nil, err
	}

	p := &headerParser{
		state:    stateStart,
		line:     1,
		elements: collision.NewTracker(errs.ErrDuplicateElementName, 4),
	}

	for p.state != stateDone {
		if pos >= len(data) {
			return nil, errs.NewHeaderError(p.line+1, errs.ErrUnterminatedHeader, "missing 'end_header'")
		}

		p.line++
		var line []byte
		if idx := bytes.Index(data[pos:], nl); idx >= 0 {
			line = data[pos : pos+idx]
			pos += idx + len(nl)
		} else {
			line = data[pos:]
			pos = len(data)
		}

		if err := p.consume(string(line)); err != nil {
			return nil, err
		}
	}

	p.header.Size = pos

	return &p.header, nil
}

// readMagic checks the `ply` line and returns the line break it uses and the offset after it.
func readMagic(data []byte) ([]byte, int, error) {
	if !bytes.HasPrefix(data, []byte(magic)) {
		return nil, 0, errs.NewHeaderError(1, errs.ErrUnexpectedKeyword, "expected 'ply'")
	}

	rest := data[len(magic):]
	switch {
	case len(rest) == 0:
		return nil, 0, errs.NewHeaderError(2, errs.ErrUnterminatedHeader, "missing 'end_header'")
	case rest[0] == '\n':
		return []byte("\n"), len(magic) + 1, nil
	case bytes.HasPrefix(rest, []byte("\r\n")):
		return []byte("\r\n"), len(magic) + 2, nil
	default:
		return nil, 0, errs.NewHeaderError(1, errs.ErrUnexpectedKeyword, "unexpected characters after 'ply'")
	}
}

// consume processes one header line.
func (p *headerParser) consume(raw string) error {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}

	word := fields[0]
	kw, known := keywords[word]
	if !known {
		return p.fail(errs.ErrUnexpectedKeyword, fmt.Sprintf("%q, expected one of %s", word, p.state))
	}

	if kw == kwProperty && p.state != stateInElement {
		return p.fail(errs.ErrPropertyOutsideElement, "")
	}
	if !p.state.allows(kw) {
		return p.fail(errs.ErrUnexpectedKeyword, fmt.Sprintf("%q, expected one of %s", word, p.state))
	}

	args := fields[1:]
	var err error
	switch kw {
	case kwFormat:
		err = p.parseFormat(args)
	case kwComment:
		p.parseComment(restAfterKeyword(raw, word))
	case kwObjInfo:
		p.header.ObjInfo = append(p.header.ObjInfo, restAfterKeyword(raw, word))
	case kwElement:
		err = p.parseElement(args)
	case kwProperty:
		err = p.parseProperty(args)
	case kwEndHeader:
		if len(args) != 0 {
			err = p.fail(errs.ErrUnexpectedKeyword, "unexpected data after 'end_header'")
		}
	}
	if err != nil {
		return err
	}

	p.state = p.state.next(kw)

	return nil
}

func (p *headerParser) fail(kind error, detail string) error {
	return errs.NewHeaderError(p.line, kind, detail)
}

func (p *headerParser) parseFormat(args []string) error {
	if len(args) != 2 {
		return p.fail(errs.ErrMalformedFormatLine, `expected "format {format} 1.0"`)
	}

	f, ok := format.ParseFormat(args[0])
	if !ok {
		return p.fail(errs.ErrMalformedFormatLine, fmt.Sprintf("don't understand format %q", args[0]))
	}
	if args[1] != format.Version {
		return p.fail(errs.ErrMalformedFormatLine, fmt.Sprintf("expected version %q, got %q", format.Version, args[1]))
	}

	p.header.Format = f

	return nil
}

// parseComment attaches text to the open element, or to the document before any element.
func (p *headerParser) parseComment(text string) {
	if n := len(p.header.Elements); n > 0 {
		p.header.Elements[n-1].Comments = append(p.header.Elements[n-1].Comments, text)
		return
	}

	p.header.Comments = append(p.header.Comments, text)
}

func (p *headerParser) parseElement(args []string) error {
	if len(args) != 2 {
		return p.fail(errs.ErrMalformedElementLine, `expected "element {name} {count}"`)
	}

	name := args[0]
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return p.fail(errs.ErrMalformedElementLine, fmt.Sprintf("expected non-negative integer count, got %q", args[1]))
	}
	if err := ValidateName(name); err != nil {
		return errs.NewHeaderError(p.line, err, "")
	}
	if err := p.elements.Track(name); err != nil {
		return errs.NewHeaderError(p.line, err, "")
	}

	p.header.Elements = append(p.header.Elements, ElementDecl{Name: name, Count: count})
	p.props = collision.NewTracker(errs.ErrDuplicatePropertyName, 8)

	return nil
}

func (p *headerParser) parseProperty(args []string) error {
	var (
		prop Property
		err  error
	)

	if len(args) > 0 && args[0] == "list" {
		if len(args) != 4 {
			return p.fail(errs.ErrMalformedPropertyLine, `expected "property list {length_type} {value_type} {name}"`)
		}
		lengthType, lerr := format.ResolveType(args[1])
		if lerr != nil {
			return errs.NewHeaderError(p.line, lerr, "")
		}
		valueType, verr := format.ResolveType(args[2])
		if verr != nil {
			return errs.NewHeaderError(p.line, verr, "")
		}
		prop, err = NewListProperty(args[3], lengthType, valueType)
	} else {
		if len(args) != 2 {
			return p.fail(errs.ErrMalformedPropertyLine, `expected "property {type} {name}"`)
		}
		valueType, verr := format.ResolveType(args[0])
		if verr != nil {
			return errs.NewHeaderError(p.line, verr, "")
		}
		prop, err = NewScalarProperty(args[1], valueType)
	}
	if err != nil {
		return errs.NewHeaderError(p.line, err, "")
	}

	if err := p.props.Track(prop.Name); err != nil {
		return errs.NewHeaderError(p.line, err, "")
	}

	cur := &p.header.Elements[len(p.header.Elements)-1]
	cur.Properties = append(cur.Properties, prop)

	return nil
}

// restAfterKeyword returns the text of a comment-like line after its keyword,
// with surrounding whitespace removed.
func restAfterKeyword(raw, word string) string {
	line := strings.TrimSpace(raw)
	return strings.TrimLeftFunc(line[len(word):], unicode.IsSpace)
}
