// Package stream provides a growable convenience layer over the
// fixed-buffer codec core.
//
// The codec package never allocates and requires callers to size their own
// buffers; stream trades that guarantee for ease of use. An Encoder
// accumulates varints in a pooled internal buffer that grows as needed,
// and a Decoder iterates encoded payloads with range-over-func iterators.
// Payload integrity can be checked end to end with xxHash64 checksums.
package stream

import (
	"github.com/arloliu/varix/codec"
	"github.com/arloliu/varix/internal/hash"
	"github.com/arloliu/varix/internal/pool"
)

// Encoder appends varint-encoded values to a pooled internal buffer.
//
// The zero value is not usable; create instances with NewEncoder and
// release the buffer with Finish when the encoding session is complete:
//
//	enc := stream.NewEncoder()
//	defer enc.Finish()
//
//	enc.WriteSlice(ids)
//	payload := enc.Bytes() // valid until Finish
type Encoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewEncoder creates a new stream encoder backed by a pooled buffer.
func NewEncoder() *Encoder {
	return &Encoder{
		buf: pool.GetStreamBuffer(),
	}
}

// Write appends a single unsigned value as a plain varint.
func (e *Encoder) Write(v uint64) {
	e.append(codec.Size(v), func(dst []byte) {
		codec.Encode(v, dst) //nolint:errcheck // dst is sized exactly
	})
}

// WriteZigZag appends a single signed value as a zig-zag varint, keeping
// small magnitudes of either sign to one byte.
func (e *Encoder) WriteZigZag(v int64) {
	e.append(codec.SizeZigZag(v), func(dst []byte) {
		codec.EncodeZigZag(v, dst) //nolint:errcheck // dst is sized exactly
	})
}

// WriteSlice appends a slice of unsigned values, growing the buffer once
// for the whole batch.
func (e *Encoder) WriteSlice(values []uint64) {
	if len(values) == 0 {
		return
	}

	total := 0
	for _, v := range values {
		total += codec.Size(v)
	}

	old := e.buf.Len()
	e.buf.ExtendOrGrow(total)

	enc := codec.NewEncoder(e.buf.Bytes()[old:])
	codec.WriteBatch(enc, values) //nolint:errcheck // buffer is sized exactly
	e.count += len(values)
}

// WriteZigZagSlice appends a slice of signed values with zig-zag mapping,
// growing the buffer once for the whole batch.
func (e *Encoder) WriteZigZagSlice(values []int64) {
	if len(values) == 0 {
		return
	}

	total := 0
	for _, v := range values {
		total += codec.SizeZigZag(v)
	}

	old := e.buf.Len()
	e.buf.ExtendOrGrow(total)

	enc := codec.NewEncoder(e.buf.Bytes()[old:])
	codec.WriteZigZagBatch(enc, values) //nolint:errcheck // buffer is sized exactly
	e.count += len(values)
}

// WriteValue appends a tagged value: one header byte plus its payload.
func (e *Encoder) WriteValue(v codec.Value) {
	e.append(v.Size(), func(dst []byte) {
		v.Encode(dst) //nolint:errcheck // dst is sized exactly
	})
}

// append grows the buffer by exactly n bytes and lets fill encode into the
// fresh region.
func (e *Encoder) append(n int, fill func(dst []byte)) {
	old := e.buf.Len()
	e.buf.ExtendOrGrow(n)
	fill(e.buf.Bytes()[old:])
	e.count++
}

// Bytes returns the encoded payload. The slice shares the encoder's
// internal buffer and is valid until Reset or Finish; callers must not
// modify it.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written since the encoder was created
// or last Reset.
func (e *Encoder) Len() int {
	return e.count
}

// Size returns the payload size in bytes.
func (e *Encoder) Size() int {
	return e.buf.Len()
}

// Checksum returns the xxHash64 of the current payload, for integrity
// verification by the consuming side (see Decoder.Verify).
func (e *Encoder) Checksum() uint64 {
	return hash.Checksum(e.buf.Bytes())
}

// Reset clears the payload and the value count, retaining the internal
// buffer for a new encoding session.
func (e *Encoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the internal buffer to the pool. The encoder must not be
// used afterwards; create a new one for the next session.
func (e *Encoder) Finish() {
	if e.buf != nil {
		pool.PutStreamBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
