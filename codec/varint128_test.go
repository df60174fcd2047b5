package codec

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varix/errs"
	"github.com/arloliu/varix/num128"
)

func TestEncodeUint128_KnownBytes(t *testing.T) {
	tests := []struct {
		name  string
		value num128.Uint128
		want  []byte
	}{
		{"zero", num128.Uint128{}, []byte{0x00}},
		{"small", num128.From64(300), []byte{0xAC, 0x02}},
		{"two to the 64", num128.U128(1, 0), append(bytes.Repeat([]byte{0x80}, 9), 0x02)},
		{"max uint128", num128.MaxUint128(), append(bytes.Repeat([]byte{0xFF}, 18), 0x03)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 19)
			n, err := EncodeUint128(tt.value, buf)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf[:n])
			require.Equal(t, len(tt.want), SizeUint128(tt.value))

			got, read, err := DecodeUint128(buf[:n])
			require.NoError(t, err)
			require.Equal(t, tt.value, got)
			require.Equal(t, n, read)
		})
	}
}

func TestEncodeUint128_MatchesNarrowEncoding(t *testing.T) {
	// Values that fit in 64 bits produce byte-identical encodings through
	// either path.
	values := []uint64{0, 1, 127, 128, 16384, math.MaxUint64}
	buf64 := make([]byte, 10)
	buf128 := make([]byte, 19)
	for _, v := range values {
		n64, err := Encode(v, buf64)
		require.NoError(t, err)

		n128, err := EncodeUint128(num128.From64(v), buf128)
		require.NoError(t, err)
		require.Equal(t, buf64[:n64], buf128[:n128])
	}
}

func TestEncodeUint128_BufferTooSmall(t *testing.T) {
	buf := make([]byte, 5)
	_, err := EncodeUint128(num128.MaxUint128(), buf)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)

	var sizeErr *errs.SizeError
	require.ErrorAs(t, err, &sizeErr)
	require.Equal(t, 19, sizeErr.Needed)
	require.Equal(t, 5, sizeErr.Actual)
}

func TestDecodeUint128_Errors(t *testing.T) {
	_, _, err := DecodeUint128(nil)
	require.ErrorIs(t, err, errs.ErrInputTooShort)

	_, _, err = DecodeUint128([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrInputTooShort)

	// Twenty continuation groups exceed the 19-group budget for 128 bits.
	overlong := bytes.Repeat([]byte{0x80}, 20)
	_, _, err = DecodeUint128(overlong)
	require.ErrorIs(t, err, errs.ErrOverflow)
}

func TestEncodeInt128_BitPattern(t *testing.T) {
	// Plain signed encoding carries the raw two's complement pattern, so
	// -1 takes the full 19 bytes.
	buf := make([]byte, 19)
	n, err := EncodeInt128(num128.IFrom64(-1), buf)
	require.NoError(t, err)
	require.Equal(t, 19, n)

	got, read, err := DecodeInt128(buf[:n])
	require.NoError(t, err)
	require.Equal(t, num128.IFrom64(-1), got)
	require.Equal(t, 19, read)
}

func TestZigZag128_Mapping(t *testing.T) {
	tests := []struct {
		name  string
		value num128.Int128
		want  num128.Uint128
	}{
		{"zero", num128.Int128{}, num128.Uint128{}},
		{"minus one", num128.IFrom64(-1), num128.From64(1)},
		{"one", num128.IFrom64(1), num128.From64(2)},
		{"minus two", num128.IFrom64(-2), num128.From64(3)},
		{"two", num128.IFrom64(2), num128.From64(4)},
		{"min int128", num128.MinInt128(), num128.MaxUint128()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ZigZag128(tt.value))
			require.Equal(t, tt.value, UnZigZag128(tt.want))
		})
	}
}

func TestRoundTrip_ZigZag128(t *testing.T) {
	values := []num128.Int128{
		{},
		num128.IFrom64(-1),
		num128.IFrom64(63),
		num128.IFrom64(-64),
		num128.IFrom64(math.MinInt64),
		num128.MaxInt128(),
		num128.MinInt128(),
		num128.I128(-5, 12345),
	}
	buf := make([]byte, 19)
	for _, v := range values {
		n, err := EncodeZigZag128(v, buf)
		require.NoError(t, err)
		require.Equal(t, SizeZigZag128(v), n)

		got, read, err := DecodeZigZag128(buf[:n])
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, n, read)
	}
}

func TestSizeZigZag128_SmallMagnitudes(t *testing.T) {
	require.Equal(t, 1, SizeZigZag128(num128.Int128{}))
	require.Equal(t, 1, SizeZigZag128(num128.IFrom64(-64)))
	require.Equal(t, 1, SizeZigZag128(num128.IFrom64(63)))
	require.Equal(t, 2, SizeZigZag128(num128.IFrom64(64)))
	require.Equal(t, 19, SizeZigZag128(num128.MinInt128()))
}
