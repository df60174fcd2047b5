package codec

import (
	"github.com/arloliu/varix/errs"
	"github.com/arloliu/varix/num128"
)

// 128-bit values cannot ride the generic codec (Go generics only range
// over native integer types), so the same algorithm is spelled out over
// the num128 carriers. The wire format is identical: up to 19 groups of 7
// bits, low group first.

const maxGroups128 = 128/7 + 1 // 19

// SizeUint128 returns the number of bytes EncodeUint128 produces for v.
func SizeUint128(v num128.Uint128) int {
	if v.IsZero() {
		return 1
	}

	return (v.BitLen() + 6) / 7
}

// SizeInt128 returns the number of bytes EncodeInt128 produces for v.
func SizeInt128(v num128.Int128) int {
	return SizeUint128(v.Uint128())
}

// EncodeUint128 writes v to buf in varint format and returns the number of
// bytes written. Failure modes match Encode.
func EncodeUint128(v num128.Uint128, buf []byte) (int, error) {
	needed := SizeUint128(v)
	if len(buf) < needed {
		return 0, &errs.SizeError{Needed: needed, Actual: len(buf)}
	}

	i := 0
	for v.Hi != 0 || v.Lo >= 0x80 {
		buf[i] = byte(v.Lo) | 0x80
		v = v.Rsh(7)
		i++
	}
	buf[i] = byte(v.Lo)

	return i + 1, nil
}

// DecodeUint128 reads a 128-bit varint from the start of buf and returns
// the value and the number of bytes consumed. Failure modes match Decode,
// with the group budget bounded at 19.
func DecodeUint128(buf []byte) (num128.Uint128, int, error) {
	var u num128.Uint128
	for i := 0; ; i++ {
		if i >= len(buf) {
			return num128.Uint128{}, 0, errs.ErrInputTooShort
		}

		b := buf[i]
		u = u.Or(num128.From64(uint64(b & 0x7F)).Lsh(7 * uint(i)))

		if b&0x80 == 0 {
			return u, i + 1, nil
		}

		if i+1 >= maxGroups128 {
			return num128.Uint128{}, 0, errs.ErrOverflow
		}
	}
}

// EncodeInt128 writes v to buf using its raw two's complement bit pattern,
// the 128-bit analogue of Encode over a signed type. Negative values
// always occupy the full 19 bytes; use EncodeZigZag128 when small
// magnitudes should stay small.
func EncodeInt128(v num128.Int128, buf []byte) (int, error) {
	return EncodeUint128(v.Uint128(), buf)
}

// DecodeInt128 reads a 128-bit varint and reinterprets the bits as signed.
func DecodeInt128(buf []byte) (num128.Int128, int, error) {
	u, n, err := DecodeUint128(buf)

	return u.Int128(), n, err
}

// ZigZag128 maps a signed 128-bit value onto the unsigned encoding space,
// the 128-bit analogue of ZigZag.
func ZigZag128(v num128.Int128) num128.Uint128 {
	u := v.Uint128().Lsh(1)
	if v.Sign() < 0 {
		u = u.Xor(num128.MaxUint128())
	}

	return u
}

// UnZigZag128 inverts ZigZag128.
func UnZigZag128(u num128.Uint128) num128.Int128 {
	s := u.Rsh(1)
	if u.Lo&1 != 0 {
		s = s.Xor(num128.MaxUint128())
	}

	return s.Int128()
}

// SizeZigZag128 returns the number of bytes EncodeZigZag128 produces for v.
func SizeZigZag128(v num128.Int128) int {
	return SizeUint128(ZigZag128(v))
}

// EncodeZigZag128 writes v to buf as a zig-zag varint.
func EncodeZigZag128(v num128.Int128, buf []byte) (int, error) {
	return EncodeUint128(ZigZag128(v), buf)
}

// DecodeZigZag128 reads a zig-zag varint into a signed 128-bit value.
func DecodeZigZag128(buf []byte) (num128.Int128, int, error) {
	u, n, err := DecodeUint128(buf)
	if err != nil {
		return num128.Int128{}, 0, err
	}

	return UnZigZag128(u), n, nil
}
