// Package num128 provides fixed-size 128-bit integer value types.
//
// Go has no native 128-bit integers, so the codec package represents its
// widest kinds with Uint128 and Int128. Both are plain comparable value
// types with no heap allocation; they implement only the operations the
// varint codec needs (bit length, shifts, bitwise ops, sign handling), not
// general arithmetic.
package num128

import (
	"fmt"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer, stored as two 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement representation.
// The sign lives in the high half.
type Int128 struct {
	Hi int64
	Lo uint64
}

// U128 constructs a Uint128 from its high and low 64-bit halves.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// From64 converts a uint64 to a Uint128.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// MaxUint128 returns the largest representable Uint128 (2^128 - 1).
func MaxUint128() Uint128 {
	return Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// BitLen returns the number of bits required to represent u; the bit
// length of zero is 0.
func (u Uint128) BitLen() int {
	if u.Hi != 0 {
		return 64 + bits.Len64(u.Hi)
	}

	return bits.Len64(u.Lo)
}

// Lsh returns u shifted left by n bits. Shifts of 128 or more yield zero.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
	}
}

// Rsh returns u shifted right by n bits (logical shift). Shifts of 128 or
// more yield zero.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	case n == 0:
		return u
	default:
		return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
	}
}

// Or returns the bitwise OR of u and v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// And returns the bitwise AND of u and v.
func (u Uint128) And(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi & v.Hi, Lo: u.Lo & v.Lo}
}

// Xor returns the bitwise XOR of u and v.
func (u Uint128) Xor(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi ^ v.Hi, Lo: u.Lo ^ v.Lo}
}

// Cmp compares u and v, returning -1 if u < v, 0 if u == v and +1 if u > v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi != v.Hi:
		if u.Hi < v.Hi {
			return -1
		}

		return 1
	case u.Lo != v.Lo:
		if u.Lo < v.Lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Int128 reinterprets the bit pattern of u as a signed 128-bit integer.
func (u Uint128) Int128() Int128 {
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}

// String returns a readable representation of u: decimal when the value
// fits in 64 bits, hexadecimal otherwise.
func (u Uint128) String() string {
	if u.Hi == 0 {
		return fmt.Sprintf("%d", u.Lo)
	}

	return fmt.Sprintf("0x%x%016x", u.Hi, u.Lo)
}

// I128 constructs an Int128 from its high and low halves.
func I128(hi int64, lo uint64) Int128 {
	return Int128{Hi: hi, Lo: lo}
}

// IFrom64 converts an int64 to an Int128, sign-extending into the high half.
func IFrom64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

// MaxInt128 returns the largest representable Int128 (2^127 - 1).
func MaxInt128() Int128 {
	return Int128{Hi: int64(^uint64(0) >> 1), Lo: ^uint64(0)}
}

// MinInt128 returns the smallest representable Int128 (-2^127).
func MinInt128() Int128 {
	return Int128{Hi: -1 << 63}
}

// IsZero reports whether i is zero.
func (i Int128) IsZero() bool {
	return i.Hi == 0 && i.Lo == 0
}

// Sign returns -1 if i is negative, 0 if zero and +1 if positive.
func (i Int128) Sign() int {
	switch {
	case i.Hi < 0:
		return -1
	case i.Hi == 0 && i.Lo == 0:
		return 0
	default:
		return 1
	}
}

// Uint128 reinterprets the two's complement bit pattern of i as unsigned.
func (i Int128) Uint128() Uint128 {
	return Uint128{Hi: uint64(i.Hi), Lo: i.Lo}
}

// Cmp compares i and v as signed values, returning -1, 0 or +1.
func (i Int128) Cmp(v Int128) int {
	switch {
	case i.Hi != v.Hi:
		if i.Hi < v.Hi {
			return -1
		}

		return 1
	case i.Lo != v.Lo:
		if i.Lo < v.Lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// String returns a readable representation of i: decimal when the value
// fits in 64 bits, the hexadecimal two's complement bit pattern otherwise.
func (i Int128) String() string {
	if i.Hi == int64(i.Lo)>>63 {
		return fmt.Sprintf("%d", int64(i.Lo))
	}

	return i.Uint128().String()
}
