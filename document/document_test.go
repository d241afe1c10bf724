package document

import (
	"testing"

	"github.com/sebdah/goldie"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/ply/endian"
	"github.com/arloliu/ply/errs"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/section"
)

func TestNew_Defaults(t *testing.T) {
	doc, err := New(nil)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Len())
	require.False(t, doc.IsText())
	require.Equal(t, format.NativeEndian, doc.ByteOrder())
	require.Equal(t, endian.NativeByteOrder().BinaryFormat(), doc.Format())
	require.Equal(t, "ply\nformat "+doc.Format().String()+" 1.0\nend_header", doc.String())
}

func TestNew_DuplicateElementName(t *testing.T) {
	a, err := NewElement("vertex", nil)
	require.NoError(t, err)
	b, err := NewElement("vertex", nil)
	require.NoError(t, err)

	doc, err := New([]*Element{a, b})
	require.Nil(t, doc)
	require.ErrorIs(t, err, errs.ErrDuplicateElementName)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(nil, WithComments("two\nlines"))
	require.ErrorIs(t, err, errs.ErrInvalidComment)

	_, err = New(nil, WithObjInfo("ünïcode"))
	require.ErrorIs(t, err, errs.ErrInvalidComment)

	_, err = New(nil, WithBinaryBody(format.ByteOrder(7)))
	require.Error(t, err)

	_, err = New([]*Element{nil})
	require.Error(t, err)
}

func TestDocument_Lookup(t *testing.T) {
	doc := cubeDocument(t)

	require.Equal(t, 2, doc.Len())
	require.True(t, doc.HasElement("vertex"))
	require.True(t, doc.HasElement("face"))
	require.False(t, doc.HasElement("edge"))

	face, err := doc.Element("face")
	require.NoError(t, err)
	require.Equal(t, "face", face.Name())
	require.Equal(t, 6, face.Count())

	_, err = doc.Element("edge")
	require.ErrorIs(t, err, errs.ErrElementNotFound)

	names := make([]string, 0, doc.Len())
	for _, e := range doc.Elements() {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{"vertex", "face"}, names)
}

func TestDocument_HeaderGolden(t *testing.T) {
	doc := cubeDocument(t,
		WithBinaryBody(format.BigEndian),
		WithComments("cube fixture"),
		WithObjInfo("vertices 8"))

	goldie.Assert(t, "cube_header", doc.Header().Bytes())
}

func TestDocument_HeaderNativeResolved(t *testing.T) {
	doc := cubeDocument(t, WithBinaryBody(format.NativeEndian))

	h := doc.Header()
	require.Equal(t, endian.NativeByteOrder().BinaryFormat(), h.Format)
	require.NotContains(t, doc.String(), "native")
}

func TestDocument_HeaderReparse(t *testing.T) {
	doc := cubeDocument(t, WithTextBody(), WithComments("a", "b"), WithObjInfo("c"))

	h, err := section.ParseHeader(doc.Header().Bytes())
	require.NoError(t, err)
	require.Equal(t, format.FormatASCII, h.Format)
	require.Equal(t, []string{"a", "b"}, h.Comments)
	require.Equal(t, []string{"c"}, h.ObjInfo)
	require.Len(t, h.Elements, 2)
	require.Equal(t, 8, h.Elements[0].Count)
	require.Equal(t, []string{"quads"}, h.Elements[1].Comments)
	require.Equal(t, doc.Header().Elements, h.Elements)
}

func TestDocument_SchemaID(t *testing.T) {
	a := cubeDocument(t, WithBinaryBody(format.LittleEndian))
	b := cubeDocument(t, WithBinaryBody(format.LittleEndian), WithComments("other"))
	c := cubeDocument(t, WithTextBody())

	require.Equal(t, a.SchemaID(), b.SchemaID())
	require.NotEqual(t, a.SchemaID(), c.SchemaID())

	vertex, err := b.Element("vertex")
	require.NoError(t, err)
	require.NoError(t, vertex.AppendRecord(vertex.Record(0).Values()...))
	require.Equal(t, a.SchemaID(), b.SchemaID())
}
