package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varix/codec"
	"github.com/arloliu/varix/num128"
)

func TestEncoder_WriteSingleValues(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	enc.Write(300)
	enc.WriteZigZag(-1)

	require.Equal(t, 2, enc.Len())
	require.Equal(t, 3, enc.Size())
	require.Equal(t, []byte{0xAC, 0x02, 0x01}, enc.Bytes())
}

func TestEncoder_RoundTrip(t *testing.T) {
	values := []uint64{1, 127, 128, 16383, 16384, 1 << 40}

	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)
	require.Equal(t, len(values), enc.Len())

	dec := NewDecoder()
	var got []uint64
	for v := range dec.All(enc.Bytes(), enc.Len()) {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestEncoder_ZigZagSliceRoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -1000, 1000, -1 << 50}

	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteZigZagSlice(values)

	dec := NewDecoder()
	var got []int64
	for v := range dec.AllZigZag(enc.Bytes(), enc.Len()) {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestEncoder_WriteValueRoundTrip(t *testing.T) {
	values := []codec.Value{
		codec.U8(5),
		codec.I16(-1000),
		codec.U64(0),
		codec.I128(num128.IFrom64(-1)),
	}

	enc := NewEncoder()
	defer enc.Finish()
	for _, v := range values {
		enc.WriteValue(v)
	}

	dec := NewDecoder()
	var got []codec.Value
	for v := range dec.AllValues(enc.Bytes(), enc.Len()) {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestEncoder_EmptySlicesAreNoOps(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	enc.WriteSlice(nil)
	enc.WriteZigZagSlice(nil)

	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())
}

func TestEncoder_GrowsPastInitialCapacity(t *testing.T) {
	// 10k max-size varints exceed the pooled buffer's default capacity.
	values := make([]uint64, 10000)
	for i := range values {
		values[i] = 1<<63 | uint64(i)
	}

	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)
	require.Equal(t, len(values)*10, enc.Size())

	dec := NewDecoder()
	i := 0
	for v := range dec.All(enc.Bytes(), enc.Len()) {
		require.Equal(t, values[i], v)
		i++
	}
	require.Equal(t, len(values), i)
}

func TestEncoder_Reset(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()

	enc.Write(1)
	enc.Write(2)
	enc.Reset()

	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())

	enc.Write(300)
	require.Equal(t, []byte{0xAC, 0x02}, enc.Bytes())
}

func TestEncoder_ChecksumVerifies(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice([]uint64{1, 2, 3})

	sum := enc.Checksum()

	payload := make([]byte, enc.Size())
	copy(payload, enc.Bytes())

	dec := NewDecoder()
	require.True(t, dec.Verify(payload, sum))

	payload[0] ^= 0x01
	require.False(t, dec.Verify(payload, sum))
}

func TestDecoder_At(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice([]uint64{10, 20, 30})

	dec := NewDecoder()

	v, ok := dec.At(enc.Bytes(), 0, enc.Len())
	require.True(t, ok)
	require.Equal(t, uint64(10), v)

	v, ok = dec.At(enc.Bytes(), 2, enc.Len())
	require.True(t, ok)
	require.Equal(t, uint64(30), v)

	_, ok = dec.At(enc.Bytes(), 3, enc.Len())
	require.False(t, ok)

	_, ok = dec.At(enc.Bytes(), -1, enc.Len())
	require.False(t, ok)
}

func TestDecoder_CountLimitsIteration(t *testing.T) {
	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice([]uint64{1, 2, 3, 4, 5})

	dec := NewDecoder()
	var got []uint64
	for v := range dec.All(enc.Bytes(), 2) {
		got = append(got, v)
	}
	require.Equal(t, []uint64{1, 2}, got)
}

func TestDecoder_TruncatedPayloadStopsEarly(t *testing.T) {
	dec := NewDecoder()
	var got []uint64
	for v := range dec.All([]byte{0x01, 0x80}, 5) {
		got = append(got, v)
	}
	require.Equal(t, []uint64{1}, got)
}
