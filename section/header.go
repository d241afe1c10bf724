package section

import (
	"strconv"
	"strings"

	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/internal/hash"
	"github.com/arloliu/ply/internal/pool"
)

// ElementDecl is the header declaration of one element: its `element` line, the
// comments following it, and its `property` lines.
type ElementDecl struct {
	Name       string
	Count      int
	Comments   []string
	Properties []Property
}

// Property returns the property named name.
func (e *ElementDecl) Property(name string) (Property, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p, true
		}
	}

	return Property{}, false
}

// Header is the parsed or generated PLY header.
type Header struct {
	// Format is the body encoding declared on the `format` line.
	Format format.Format
	// Comments are document-level comments, in order.
	Comments []string
	// ObjInfo are the obj_info lines, in order.
	ObjInfo []string
	// Elements are the element declarations in header and body order.
	Elements []ElementDecl
	// Size is the number of bytes the header occupied in its source, including the
	// line break after `end_header`. It is zero for generated headers.
	Size int
}

// Element returns the declaration named name.
func (h *Header) Element(name string) (*ElementDecl, bool) {
	for i := range h.Elements {
		if h.Elements[i].Name == name {
			return &h.Elements[i], true
		}
	}

	return nil, false
}

// String returns the header text from `ply` to `end_header`, lines joined by "\n",
// without a trailing line break.
func (h *Header) String() string {
	var sb strings.Builder
	h.writeTo(&sb)

	return sb.String()
}

// Bytes returns the header text followed by the "\n" that separates it from the body.
func (h *Header) Bytes() []byte {
	return h.AppendTo(nil)
}

// AppendTo appends the header text and its terminating "\n" to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	buf := pool.ByteBuffer{B: dst}
	h.writeTo(&buf)
	_ = buf.WriteByte('\n')

	return buf.B
}

// headerWriter is satisfied by *strings.Builder and *pool.ByteBuffer.
type headerWriter interface {
	WriteString(s string) (int, error)
	WriteByte(c byte) error
}

func (h *Header) writeTo(sb headerWriter) {
	sb.WriteString("ply\nformat ")
	sb.WriteString(h.Format.String())
	sb.WriteString(" " + format.Version)

	for _, c := range h.Comments {
		sb.WriteString("\ncomment ")
		sb.WriteString(c)
	}
	for _, o := range h.ObjInfo {
		sb.WriteString("\nobj_info ")
		sb.WriteString(o)
	}

	for i := range h.Elements {
		e := &h.Elements[i]
		sb.WriteString("\nelement ")
		sb.WriteString(e.Name)
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(e.Count))
		for _, c := range e.Comments {
			sb.WriteString("\ncomment ")
			sb.WriteString(c)
		}
		for _, p := range e.Properties {
			sb.WriteByte('\n')
			sb.WriteString(p.HeaderLine())
		}
	}

	sb.WriteString("\nend_header")
}

// SchemaID returns a 64-bit fingerprint of the record layout: the format, element
// names and property declarations in order. Counts and comments do not contribute,
// so two files with the same layout but different sizes share a SchemaID.
func (h *Header) SchemaID() uint64 {
	parts := make([]string, 0, 1+len(h.Elements)*4)
	parts = append(parts, h.Format.String())
	for i := range h.Elements {
		e := &h.Elements[i]
		parts = append(parts, "element "+e.Name)
		for _, p := range e.Properties {
			parts = append(parts, p.HeaderLine())
		}
	}

	return hash.Fingerprint(parts...)
}
