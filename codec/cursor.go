package codec

import (
	"errors"

	"github.com/arloliu/varix/errs"
	"github.com/arloliu/varix/num128"
)

// Encoder is a forward-only write cursor over a caller-owned buffer. It
// tracks the byte offset so a sequence of values can be packed without
// recomputing positions externally. The cursor borrows the buffer for its
// lifetime; it must not be aliased by another writer over the same bytes.
//
// Values of mixed widths may be written through one cursor via the generic
// Write functions:
//
//	buf := make([]byte, 64)
//	enc := codec.NewEncoder(buf)
//	codec.Write(enc, uint32(300))
//	codec.WriteZigZag(enc, int16(-7))
//	payload := buf[:enc.Position()]
type Encoder struct {
	buf []byte
	pos int
}

// NewEncoder creates an encode cursor bound to buf at position 0.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf}
}

// Position returns the number of bytes written so far.
func (e *Encoder) Position() int {
	return e.pos
}

// Remaining returns the unwritten capacity in bytes.
func (e *Encoder) Remaining() int {
	return len(e.buf) - e.pos
}

// WriteUint64 writes v as a plain varint, a shortcut for Write on the most
// common element type.
func (e *Encoder) WriteUint64(v uint64) (int, error) {
	return Write(e, v)
}

// WriteInt64 writes v as a zig-zag varint, a shortcut for WriteZigZag.
func (e *Encoder) WriteInt64(v int64) (int, error) {
	return WriteZigZag(e, v)
}

// Write encodes v at the cursor position and advances the cursor by the
// bytes written. It fails with a *errs.SizeError if the cursor is already
// at or past the end of the buffer, or if the remaining space cannot hold
// the encoding; the cursor does not advance on failure.
func Write[T Integer](e *Encoder, v T) (int, error) {
	if err := e.checkFull(); err != nil {
		return 0, err
	}

	n, err := Encode(v, e.buf[e.pos:])
	e.pos += n

	return n, err
}

// WriteBatch encodes values in order, short-circuiting on the first
// failure and returning the total bytes written. Values written before the
// failure remain in the buffer; callers must not assume atomicity across a
// batch.
func WriteBatch[T Integer](e *Encoder, values []T) (int, error) {
	start := e.pos
	for _, v := range values {
		if _, err := Write(e, v); err != nil {
			return e.pos - start, err
		}
	}

	return e.pos - start, nil
}

// WriteZigZag encodes v as a zig-zag varint at the cursor position.
// Failure behavior matches Write.
func WriteZigZag[S Signed](e *Encoder, v S) (int, error) {
	if err := e.checkFull(); err != nil {
		return 0, err
	}

	n, err := EncodeZigZag(v, e.buf[e.pos:])
	e.pos += n

	return n, err
}

// WriteZigZagBatch encodes signed values in order with zig-zag mapping,
// short-circuiting on the first failure like WriteBatch.
func WriteZigZagBatch[S Signed](e *Encoder, values []S) (int, error) {
	start := e.pos
	for _, v := range values {
		if _, err := WriteZigZag(e, v); err != nil {
			return e.pos - start, err
		}
	}

	return e.pos - start, nil
}

// WriteUint128 encodes a 128-bit unsigned value at the cursor position.
func WriteUint128(e *Encoder, v num128.Uint128) (int, error) {
	if err := e.checkFull(); err != nil {
		return 0, err
	}

	n, err := EncodeUint128(v, e.buf[e.pos:])
	e.pos += n

	return n, err
}

// WriteInt128 encodes a 128-bit signed value by bit pattern.
func WriteInt128(e *Encoder, v num128.Int128) (int, error) {
	return WriteUint128(e, v.Uint128())
}

// WriteZigZag128 encodes a 128-bit signed value as a zig-zag varint.
func WriteZigZag128(e *Encoder, v num128.Int128) (int, error) {
	return WriteUint128(e, ZigZag128(v))
}

func (e *Encoder) checkFull() error {
	if e.pos >= len(e.buf) {
		return &errs.SizeError{Needed: e.pos + 1, Actual: len(e.buf)}
	}

	return nil
}

// Decoder is the read counterpart of Encoder: a forward-only cursor over
// an encoded buffer. The buffer is borrowed read-only for the cursor's
// lifetime.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder creates a decode cursor bound to buf at position 0.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Position returns the number of bytes consumed so far.
func (d *Decoder) Position() int {
	return d.pos
}

// Remaining returns the unconsumed tail of the buffer.
func (d *Decoder) Remaining() []byte {
	return d.buf[d.pos:]
}

// ReadUint64 reads a plain varint, a shortcut for Read on the most common
// element type.
func (d *Decoder) ReadUint64() (uint64, error) {
	return Read[uint64](d)
}

// ReadInt64 reads a zig-zag varint, a shortcut for ReadZigZag.
func (d *Decoder) ReadInt64() (int64, error) {
	return ReadZigZag[int64](d)
}

// Read decodes one value at the cursor position and advances the cursor by
// the bytes consumed. It fails with errs.ErrInputTooShort if the cursor is
// at or past the end of the buffer; decode failures (truncation, overflow)
// are forwarded and leave the cursor in place.
func Read[T Integer](d *Decoder) (T, error) {
	if d.pos >= len(d.buf) {
		var zero T
		return zero, errs.ErrInputTooShort
	}

	v, n, err := Decode[T](d.buf[d.pos:])
	d.pos += n

	return v, err
}

// ReadBatch decodes values into out until out is full or the buffer is
// exhausted, returning the count of values read. Running out of input is
// the normal way to discover the end of a stream, so ErrInputTooShort
// terminates the batch without being propagated; any other error aborts
// the batch and is returned.
func ReadBatch[T Integer](d *Decoder, out []T) (int, error) {
	count := 0
	for count < len(out) && d.pos < len(d.buf) {
		v, err := Read[T](d)
		if err != nil {
			if errors.Is(err, errs.ErrInputTooShort) {
				break
			}

			return count, err
		}

		out[count] = v
		count++
	}

	return count, nil
}

// ReadZigZag decodes one zig-zag varint at the cursor position. Failure
// behavior matches Read.
func ReadZigZag[S Signed](d *Decoder) (S, error) {
	if d.pos >= len(d.buf) {
		return 0, errs.ErrInputTooShort
	}

	v, n, err := DecodeZigZag[S](d.buf[d.pos:])
	d.pos += n

	return v, err
}

// ReadZigZagBatch decodes zig-zag varints into out with the same
// termination semantics as ReadBatch.
func ReadZigZagBatch[S Signed](d *Decoder, out []S) (int, error) {
	count := 0
	for count < len(out) && d.pos < len(d.buf) {
		v, err := ReadZigZag[S](d)
		if err != nil {
			if errors.Is(err, errs.ErrInputTooShort) {
				break
			}

			return count, err
		}

		out[count] = v
		count++
	}

	return count, nil
}

// ReadUint128 decodes one 128-bit varint at the cursor position.
func ReadUint128(d *Decoder) (num128.Uint128, error) {
	if d.pos >= len(d.buf) {
		return num128.Uint128{}, errs.ErrInputTooShort
	}

	v, n, err := DecodeUint128(d.buf[d.pos:])
	d.pos += n

	return v, err
}

// ReadInt128 decodes one 128-bit varint and reinterprets the bits as
// signed.
func ReadInt128(d *Decoder) (num128.Int128, error) {
	u, err := ReadUint128(d)

	return u.Int128(), err
}

// ReadZigZag128 decodes one 128-bit zig-zag varint.
func ReadZigZag128(d *Decoder) (num128.Int128, error) {
	u, err := ReadUint128(d)
	if err != nil {
		return num128.Int128{}, err
	}

	return UnZigZag128(u), nil
}

// EncodeBatch packs values into buf with a fresh cursor, returning the
// total bytes written.
func EncodeBatch(values []uint64, buf []byte) (int, error) {
	return WriteBatch(NewEncoder(buf), values)
}

// DecodeBatch unpacks values from buf into out with a fresh cursor,
// returning the count of values read.
func DecodeBatch(buf []byte, out []uint64) (int, error) {
	return ReadBatch(NewDecoder(buf), out)
}
