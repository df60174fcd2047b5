package codec

import (
	"iter"

	"github.com/arloliu/varix/num128"
)

// ByteIter produces the encoded bytes of a single value one at a time,
// without touching any buffer. It yields exactly Size(v) bytes and is
// permanently exhausted afterwards; construct a fresh iterator to encode
// the value again.
type ByteIter struct {
	u     uint64
	size  int
	index int
	done  bool
}

// BytesOf creates a byte iterator over the encoding of v.
func BytesOf[T Integer](v T) *ByteIter {
	return &ByteIter{
		u:    carrierOf[T](v),
		size: Size(v),
	}
}

// Next returns the next encoded byte. The second result is false once the
// final byte (continuation bit clear) has already been produced.
func (it *ByteIter) Next() (byte, bool) {
	if it.done {
		return 0, false
	}

	var b byte
	if it.u >= 0x80 {
		b = byte(it.u) | 0x80
	} else {
		b = byte(it.u)
		it.done = true
	}

	it.u >>= 7
	it.index++

	return b, true
}

// Index returns the number of bytes produced so far.
func (it *ByteIter) Index() int {
	return it.index
}

// Size returns the total number of bytes the iterator produces.
func (it *ByteIter) Size() int {
	return it.size
}

// All drains the iterator as an iter.Seq, for use with range-over-func:
//
//	for b := range codec.BytesOf(uint64(300)).All() {
//	    fmt.Printf("%02X ", b)
//	}
func (it *ByteIter) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, ok := it.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// ValueIter decodes consecutive varints of one type from a buffer, one
// value per step, in the bufio.Scanner idiom:
//
//	it := codec.ValuesFrom[uint64](payload)
//	for it.Next() {
//	    use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//	    // stream was truncated or corrupt at it.Position()
//	}
//
// The iterator fails once: after the first decode error Next returns false
// forever and Err reports the error. A corrupt entry is never skipped,
// since in a self-delimiting stream the following byte offsets can no
// longer be trusted.
type ValueIter[T Integer] struct {
	buf  []byte
	pos  int
	val  T
	err  error
	done bool
}

// ValuesFrom creates a value iterator over buf. The buffer is borrowed
// read-only for the iterator's lifetime.
func ValuesFrom[T Integer](buf []byte) *ValueIter[T] {
	return &ValueIter[T]{buf: buf}
}

// Next decodes the next value, reporting whether one is available. It
// returns false at the end of the buffer and after any decode error.
func (it *ValueIter[T]) Next() bool {
	if it.done || it.pos >= len(it.buf) {
		return false
	}

	v, n, err := Decode[T](it.buf[it.pos:])
	if err != nil {
		it.err = err
		it.done = true

		return false
	}

	it.val = v
	it.pos += n

	return true
}

// Value returns the value decoded by the most recent successful Next.
func (it *ValueIter[T]) Value() T {
	return it.val
}

// Err returns the decode error that stopped iteration, or nil if the
// iterator ended by exhausting the buffer cleanly.
func (it *ValueIter[T]) Err() error {
	return it.err
}

// Position returns the byte offset of the iterator within the buffer.
func (it *ValueIter[T]) Position() int {
	return it.pos
}

// Remaining returns the undecoded tail of the buffer.
func (it *ValueIter[T]) Remaining() []byte {
	return it.buf[it.pos:]
}

// All yields the decoded values as an iter.Seq. Iteration stops at the end
// of the buffer or at the first decode error; check Err afterwards to tell
// the two apart.
func (it *ValueIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.val) {
				return
			}
		}
	}
}

// ByteIter128 is the 128-bit counterpart of ByteIter.
type ByteIter128 struct {
	u     num128.Uint128
	size  int
	index int
	done  bool
}

// Bytes128Of creates a byte iterator over the encoding of a 128-bit value.
func Bytes128Of(v num128.Uint128) *ByteIter128 {
	return &ByteIter128{u: v, size: SizeUint128(v)}
}

// Next returns the next encoded byte, false once the final byte has been
// produced.
func (it *ByteIter128) Next() (byte, bool) {
	if it.done {
		return 0, false
	}

	var b byte
	if it.u.Hi != 0 || it.u.Lo >= 0x80 {
		b = byte(it.u.Lo) | 0x80
	} else {
		b = byte(it.u.Lo)
		it.done = true
	}

	it.u = it.u.Rsh(7)
	it.index++

	return b, true
}

// Index returns the number of bytes produced so far.
func (it *ByteIter128) Index() int {
	return it.index
}

// Size returns the total number of bytes the iterator produces.
func (it *ByteIter128) Size() int {
	return it.size
}

// All drains the iterator as an iter.Seq, like ByteIter.All.
func (it *ByteIter128) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, ok := it.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}

// Value128Iter decodes consecutive 128-bit varints from a buffer with the
// same fail-once semantics as ValueIter.
type Value128Iter struct {
	buf  []byte
	pos  int
	val  num128.Uint128
	err  error
	done bool
}

// Values128From creates a 128-bit value iterator over buf.
func Values128From(buf []byte) *Value128Iter {
	return &Value128Iter{buf: buf}
}

// Next decodes the next value, reporting whether one is available.
func (it *Value128Iter) Next() bool {
	if it.done || it.pos >= len(it.buf) {
		return false
	}

	v, n, err := DecodeUint128(it.buf[it.pos:])
	if err != nil {
		it.err = err
		it.done = true

		return false
	}

	it.val = v
	it.pos += n

	return true
}

// Value returns the value decoded by the most recent successful Next.
func (it *Value128Iter) Value() num128.Uint128 {
	return it.val
}

// Err returns the decode error that stopped iteration, if any.
func (it *Value128Iter) Err() error {
	return it.err
}

// Position returns the byte offset of the iterator within the buffer.
func (it *Value128Iter) Position() int {
	return it.pos
}

// All yields the decoded values as an iter.Seq with the same termination
// semantics as ValueIter.All; check Err afterwards.
func (it *Value128Iter) All() iter.Seq[num128.Uint128] {
	return func(yield func(num128.Uint128) bool) {
		for it.Next() {
			if !yield(it.val) {
				return
			}
		}
	}
}
