package document

import (
	"testing"

	"github.com/arloliu/ply/encoding"
	"github.com/arloliu/ply/format"
	"github.com/arloliu/ply/section"
	"github.com/stretchr/testify/require"
)

func scalarProp(t testing.TB, name string, vt format.ScalarType) section.Property {
	t.Helper()

	p, err := section.NewScalarProperty(name, vt)
	require.NoError(t, err)

	return p
}

func listProp(t testing.TB, name string, lt, vt format.ScalarType) section.Property {
	t.Helper()

	p, err := section.NewListProperty(name, lt, vt)
	require.NoError(t, err)

	return p
}

// cubeDocument builds a unit cube: 8 float vertices and 6 quad faces.
func cubeDocument(t testing.TB, opts ...DocumentOption) *Document {
	t.Helper()

	vertex, err := NewElement("vertex", []section.Property{
		scalarProp(t, "x", format.TypeFloat32),
		scalarProp(t, "y", format.TypeFloat32),
		scalarProp(t, "z", format.TypeFloat32),
	})
	require.NoError(t, err)

	for i := range 8 {
		x, y, z := float64(i&1), float64((i>>1)&1), float64((i>>2)&1)
		require.NoError(t, vertex.AppendRecord(
			encoding.ScalarValue(x), encoding.ScalarValue(y), encoding.ScalarValue(z)))
	}

	face, err := NewElement("face", []section.Property{
		listProp(t, "vertex_indices", format.TypeUint8, format.TypeInt32),
	}, "quads")
	require.NoError(t, err)

	for _, quad := range [][]float64{
		{0, 1, 3, 2}, {4, 6, 7, 5}, {0, 4, 5, 1},
		{2, 3, 7, 6}, {0, 2, 6, 4}, {1, 5, 7, 3},
	} {
		require.NoError(t, face.AppendRecord(encoding.ListValue(quad...)))
	}

	doc, err := New([]*Element{vertex, face}, opts...)
	require.NoError(t, err)

	return doc
}

// requireSameContent checks element names, property lists, comments and every value.
func requireSameContent(t *testing.T, want, got *Document) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())
	require.Equal(t, want.Comments(), got.Comments())
	require.Equal(t, want.ObjInfo(), got.ObjInfo())

	gotElements := got.Elements()
	for i, we := range want.Elements() {
		ge := gotElements[i]
		require.Equal(t, we.Name(), ge.Name())
		require.Equal(t, we.Properties(), ge.Properties())
		require.Equal(t, we.Comments(), ge.Comments())
		require.Equal(t, we.Count(), ge.Count())

		for row, wr := range we.All() {
			gr := ge.Record(row)
			require.Equal(t, wr.Len(), gr.Len())
			for j := range wr.Len() {
				wv, gv := wr.At(j), gr.At(j)
				require.Equal(t, wv.Scalar, gv.Scalar, "%s row %d field %d", we.Name(), row, j)
				require.Equal(t, len(wv.List), len(gv.List), "%s row %d field %d", we.Name(), row, j)
				for k := range wv.List {
					require.Equal(t, wv.List[k], gv.List[k])
				}
			}
		}
	}
}
