package format

import (
	"math"
	"testing"

	"github.com/arloliu/ply/errs"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	require.Equal(t, "ascii", FormatASCII.String())
	require.Equal(t, "binary_little_endian", FormatBinaryLittleEndian.String())
	require.Equal(t, "binary_big_endian", FormatBinaryBigEndian.String())
	require.Equal(t, "Unknown", Format(99).String())
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatASCII, FormatBinaryLittleEndian, FormatBinaryBigEndian} {
		got, ok := ParseFormat(f.String())
		require.True(t, ok)
		require.Equal(t, f, got)
	}

	_, ok := ParseFormat("binary")
	require.False(t, ok)
}

func TestFormatByteOrder(t *testing.T) {
	require.Equal(t, LittleEndian, FormatBinaryLittleEndian.ByteOrder())
	require.Equal(t, BigEndian, FormatBinaryBigEndian.ByteOrder())
	require.Equal(t, NativeEndian, FormatASCII.ByteOrder())
	require.True(t, FormatASCII.IsText())
	require.False(t, FormatBinaryBigEndian.IsText())

	require.Equal(t, FormatBinaryBigEndian, BigEndian.BinaryFormat())
	require.Equal(t, FormatBinaryLittleEndian, LittleEndian.BinaryFormat())
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		token string
		want  ScalarType
		size  int
	}{
		{"char", TypeInt8, 1},
		{"int8", TypeInt8, 1},
		{"uchar", TypeUint8, 1},
		{"uint8", TypeUint8, 1},
		{"short", TypeInt16, 2},
		{"int16", TypeInt16, 2},
		{"ushort", TypeUint16, 2},
		{"uint16", TypeUint16, 2},
		{"int", TypeInt32, 4},
		{"int32", TypeInt32, 4},
		{"uint", TypeUint32, 4},
		{"uint32", TypeUint32, 4},
		{"float", TypeFloat32, 4},
		{"float32", TypeFloat32, 4},
		{"double", TypeFloat64, 8},
		{"float64", TypeFloat64, 8},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ResolveType(tt.token)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.size, got.Size())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ResolveType("int64")
		require.ErrorIs(t, err, errs.ErrUnknownType)
		require.Contains(t, err.Error(), "int64")
	})
}

func TestScalarTypeSpelling(t *testing.T) {
	// Generated headers use exactly one spelling per type and it must resolve back.
	for ty := TypeInt8; ty <= TypeFloat64; ty++ {
		back, err := ResolveType(ty.String())
		require.NoError(t, err)
		require.Equal(t, ty, back)

		back, err = ResolveType(ty.Canonical())
		require.NoError(t, err)
		require.Equal(t, ty, back)
	}

	require.Equal(t, "uchar", TypeUint8.String())
	require.Equal(t, "int", TypeInt32.String())
	require.Equal(t, "float", TypeFloat32.String())
	require.Equal(t, "double", TypeFloat64.String())
	require.Equal(t, "Unknown", ScalarType(0).String())
	require.Equal(t, 0, ScalarType(42).Size())
}

func TestScalarTypeRepresents(t *testing.T) {
	tests := []struct {
		name string
		ty   ScalarType
		v    float64
		want bool
	}{
		{"int8 min", TypeInt8, -128, true},
		{"int8 overflow", TypeInt8, 128, false},
		{"uint8 max", TypeUint8, 255, true},
		{"uint8 negative", TypeUint8, -1, false},
		{"int16 fractional", TypeInt16, 1.5, false},
		{"uint16 max", TypeUint16, 65535, true},
		{"int32 min", TypeInt32, math.MinInt32, true},
		{"uint32 max", TypeUint32, math.MaxUint32, true},
		{"uint32 overflow", TypeUint32, math.MaxUint32 + 1, false},
		{"int nan", TypeInt32, math.NaN(), false},
		{"int inf", TypeInt32, math.Inf(1), false},
		{"float32 exact", TypeFloat32, 0.5, true},
		{"float32 inexact", TypeFloat32, 0.1, false},
		{"float32 rounded", TypeFloat32, float64(float32(0.1)), true},
		{"float32 nan", TypeFloat32, math.NaN(), true},
		{"float32 overflow", TypeFloat32, math.MaxFloat64, false},
		{"float64 anything", TypeFloat64, 0.1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.ty.Represents(tt.v))
		})
	}
}

func TestFormatAndByteOrderValid(t *testing.T) {
	require.True(t, FormatASCII.Valid())
	require.True(t, FormatBinaryBigEndian.Valid())
	require.False(t, Format(0).Valid())
	require.False(t, Format(4).Valid())

	require.True(t, LittleEndian.Valid())
	require.True(t, NativeEndian.Valid())
	require.False(t, ByteOrder(0).Valid())
	require.False(t, ByteOrder(9).Valid())
}
