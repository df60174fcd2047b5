package codec

import (
	"math/bits"
	"unsafe"

	"github.com/arloliu/varix/errs"
)

// Unsigned is the constraint over the fixed-width unsigned integer types
// the codec supports directly. Platform-width uint is excluded because the
// wire format is defined per bit width.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the constraint over the fixed-width signed integer types the
// codec supports directly.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Integer is the union of Unsigned and Signed. Signed values encoded with
// Encode use their two's complement bit pattern reinterpreted as the
// unsigned type of equal width; use EncodeZigZag to keep small negative
// values small on the wire.
type Integer interface {
	Unsigned | Signed
}

// widthOf returns the bit width of T. unsafe.Sizeof on a zero value is a
// compile-time constant, so instantiations carry no runtime dispatch.
func widthOf[T Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// widthMask returns a mask covering the low width bits.
func widthMask(width uint) uint64 {
	return ^uint64(0) >> (64 - width)
}

// carrierOf converts v to its unsigned carrier: the value's bit pattern
// widened into a uint64 and masked to the type's width. Sign extension
// introduced by the widening conversion is stripped by the mask.
func carrierOf[T Integer](v T) uint64 {
	return uint64(v) & widthMask(widthOf[T]())
}

// Size returns the number of bytes Encode produces for v. It touches no
// buffer and never fails. The zero value always sizes to 1.
func Size[T Integer](v T) int {
	return uvarintSize(carrierOf[T](v))
}

// Encode writes v to buf in varint format and returns the number of bytes
// written.
//
// The encoding is canonical: exactly ceil(bitsUsed/7) bytes, one byte for
// zero. If buf cannot hold the encoding, Encode fails with a
// *errs.SizeError reporting the needed and actual sizes and writes nothing.
func Encode[T Integer](v T, buf []byte) (int, error) {
	return uvarintEncode(carrierOf[T](v), buf)
}

// Decode reads a varint value of type T from the start of buf and returns
// the value and the number of bytes consumed.
//
// Decode fails with errs.ErrInputTooShort if buf ends while the
// continuation bit of the last byte read is still set, and with
// errs.ErrOverflow if the encoding uses more than width/7+1 groups for T's
// width. Payload bits shifted past T's width are discarded.
func Decode[T Integer](buf []byte) (T, int, error) {
	u, n, err := uvarintDecode(buf, widthOf[T]())

	return T(u), n, err
}

// uvarintSize returns the canonical encoded size of u in bytes.
func uvarintSize(u uint64) int {
	if u == 0 {
		return 1
	}

	return (bits.Len64(u) + 6) / 7
}

// uvarintEncode emits the 7-bit groups of u into buf, low group first.
func uvarintEncode(u uint64, buf []byte) (int, error) {
	needed := uvarintSize(u)
	if len(buf) < needed {
		return 0, &errs.SizeError{Needed: needed, Actual: len(buf)}
	}

	i := 0
	for u >= 0x80 {
		buf[i] = byte(u) | 0x80
		u >>= 7
		i++
	}
	buf[i] = byte(u)

	return i + 1, nil
}

// uvarintDecode accumulates 7-bit groups from buf until a byte with a clear
// continuation bit, bounding the group count by the target width.
func uvarintDecode(buf []byte, width uint) (uint64, int, error) {
	maxGroups := int(width/7) + 1

	var u uint64
	for i := 0; ; i++ {
		if i >= len(buf) {
			return 0, 0, errs.ErrInputTooShort
		}

		b := buf[i]
		// Shifts at or past 64 bits drop the group, matching the silent
		// truncation of groups beyond the target width.
		u |= uint64(b&0x7F) << (7 * uint(i))

		if b&0x80 == 0 {
			return u & widthMask(width), i + 1, nil
		}

		if i+1 >= maxGroups {
			return 0, 0, errs.ErrOverflow
		}
	}
}
