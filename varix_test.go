package varix

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varix/errs"
)

func TestPutUvarint_MatchesBinaryPackage(t *testing.T) {
	// The unsigned wire format is byte-compatible with encoding/binary.
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, math.MaxUint64}
	buf := make([]byte, MaxVarintLen64)
	ref := make([]byte, binary.MaxVarintLen64)
	for _, v := range values {
		n, err := PutUvarint(buf, v)
		require.NoError(t, err)
		require.Equal(t, UvarintLen(v), n)

		refN := binary.PutUvarint(ref, v)
		require.Equal(t, ref[:refN], buf[:n], "value %d", v)

		got, read, err := Uvarint(buf[:n])
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, n, read)
	}
}

func TestPutVarint_ZigZagRoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -64, 63, -1000, math.MinInt64, math.MaxInt64}
	buf := make([]byte, MaxVarintLen64)
	for _, v := range values {
		n, err := PutVarint(buf, v)
		require.NoError(t, err)
		require.Equal(t, VarintLen(v), n)

		got, read, err := Varint(buf[:n])
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, n, read)
	}
}

func TestPutVarint_KnownBytes(t *testing.T) {
	buf := make([]byte, MaxVarintLen64)

	n, err := PutVarint(buf, -1)
	require.NoError(t, err)
	require.Equal(t, []byte{0x01}, buf[:n])

	n, err = PutUvarint(buf, 300)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAC, 0x02}, buf[:n])
}

func TestPut_Errors(t *testing.T) {
	_, err := PutUvarint(make([]byte, 1), 300)
	require.ErrorIs(t, err, errs.ErrBufferTooSmall)

	_, _, err = Uvarint([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrInputTooShort)
}
