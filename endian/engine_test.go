package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/arloliu/ply/format"
	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result, "CheckEndianness() should return BigEndian")
	case 0x02:
		require.Equal(binary.LittleEndian, result, "CheckEndianness() should return LittleEndian")
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestIsNativeBigEndian(t *testing.T) {
	require.Equal(t, CheckEndianness() == binary.BigEndian, IsNativeBigEndian())
}

func TestNativeByteOrder(t *testing.T) {
	if IsNativeBigEndian() {
		require.Equal(t, format.BigEndian, NativeByteOrder())
	} else {
		require.Equal(t, format.LittleEndian, NativeByteOrder())
	}
}

func TestResolve(t *testing.T) {
	require.Equal(t, format.LittleEndian, Resolve(format.LittleEndian))
	require.Equal(t, format.BigEndian, Resolve(format.BigEndian))
	require.Equal(t, NativeByteOrder(), Resolve(format.NativeEndian))
}

func TestForByteOrder(t *testing.T) {
	tests := []struct {
		name  string
		order format.ByteOrder
		first byte // first byte of 0x0102 written as uint16
	}{
		{"little", format.LittleEndian, 0x02},
		{"big", format.BigEndian, 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := ForByteOrder(tt.order)
			require.Implements(t, (*EndianEngine)(nil), engine)

			buf := engine.AppendUint16(nil, 0x0102)
			require.Equal(t, tt.first, buf[0])
			require.Equal(t, uint16(0x0102), engine.Uint16(buf))
		})
	}

	t.Run("native", func(t *testing.T) {
		engine := ForByteOrder(format.NativeEndian)
		require.Equal(t, CheckEndianness(), engine)
	})
}

func TestEndianEngines(t *testing.T) {
	littleEngine := GetLittleEndianEngine()
	bigEngine := GetBigEndianEngine()

	var testUint32 uint32 = 0x01020304
	littleBytes := make([]byte, 4)
	bigBytes := make([]byte, 4)

	littleEngine.PutUint32(littleBytes, testUint32)
	bigEngine.PutUint32(bigBytes, testUint32)

	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, littleBytes)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, bigBytes)
	require.Equal(t, testUint32, littleEngine.Uint32(littleBytes))
	require.Equal(t, testUint32, bigEngine.Uint32(bigBytes))

	var testUint64 uint64 = 0x0102030405060708
	littleBytes64 := littleEngine.AppendUint64(nil, testUint64)
	bigBytes64 := bigEngine.AppendUint64(nil, testUint64)

	require.NotEqual(t, littleBytes64, bigBytes64)
	require.Equal(t, testUint64, littleEngine.Uint64(littleBytes64))
	require.Equal(t, testUint64, bigEngine.Uint64(bigBytes64))
}
