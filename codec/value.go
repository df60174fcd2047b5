package codec

import (
	"fmt"

	"github.com/arloliu/varix/errs"
	"github.com/arloliu/varix/num128"
)

// Kind identifies the integer type carried by a Value.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindUint128
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindInt128
)

// Header byte layout: SSS_WWWWW. The top 3 bits select the signedness
// class, the low 5 bits the width class. Top-3 patterns other than
// 000/001 are reserved and rejected as invalid.
const (
	typeBitsUnsigned = 0b000_00000
	typeBitsSigned   = 0b001_00000
	typeBitsMask     = 0b111_00000
	sizeBitsMask     = 0b000_11111

	sizeBits8   = 0b00000
	sizeBits16  = 0b00001
	sizeBits32  = 0b00010
	sizeBits64  = 0b00011
	sizeBits128 = 0b00100
)

// String returns the lowercase Go-style name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindUint128:
		return "uint128"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindInt128:
		return "int128"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Signed reports whether the kind is one of the signed integer kinds.
func (k Kind) Signed() bool {
	return k >= KindInt8
}

// Bits returns the bit width of the kind.
func (k Kind) Bits() uint {
	switch k {
	case KindUint8, KindInt8:
		return 8
	case KindUint16, KindInt16:
		return 16
	case KindUint32, KindInt32:
		return 32
	case KindUint64, KindInt64:
		return 64
	default:
		return 128
	}
}

// Value is a self-describing integer: one of ten kinds (unsigned and
// signed, 8 to 128 bits) together with its payload. A one-byte header on
// the wire uniquely determines the kind, so heterogeneous streams can be
// decoded without external type information.
//
// Values are comparable with ==; two values are equal when both kind and
// payload match. The payload is stored as the width-masked bit pattern in
// a 128-bit carrier regardless of kind.
type Value struct {
	kind Kind
	bits num128.Uint128
}

// U8 constructs an unsigned 8-bit Value.
func U8(v uint8) Value { return Value{kind: KindUint8, bits: num128.From64(uint64(v))} }

// U16 constructs an unsigned 16-bit Value.
func U16(v uint16) Value { return Value{kind: KindUint16, bits: num128.From64(uint64(v))} }

// U32 constructs an unsigned 32-bit Value.
func U32(v uint32) Value { return Value{kind: KindUint32, bits: num128.From64(uint64(v))} }

// U64 constructs an unsigned 64-bit Value.
func U64(v uint64) Value { return Value{kind: KindUint64, bits: num128.From64(v)} }

// U128 constructs an unsigned 128-bit Value.
func U128(v num128.Uint128) Value { return Value{kind: KindUint128, bits: v} }

// I8 constructs a signed 8-bit Value.
func I8(v int8) Value { return Value{kind: KindInt8, bits: num128.From64(carrierOf(v))} }

// I16 constructs a signed 16-bit Value.
func I16(v int16) Value { return Value{kind: KindInt16, bits: num128.From64(carrierOf(v))} }

// I32 constructs a signed 32-bit Value.
func I32(v int32) Value { return Value{kind: KindInt32, bits: num128.From64(carrierOf(v))} }

// I64 constructs a signed 64-bit Value.
func I64(v int64) Value { return Value{kind: KindInt64, bits: num128.From64(carrierOf(v))} }

// I128 constructs a signed 128-bit Value.
func I128(v num128.Int128) Value { return Value{kind: KindInt128, bits: v.Uint128()} }

// ValueOf constructs a Value from any of the ten supported Go types. It is
// the literal-construction convenience for call sites that hold an
// interface value; typed constructors (U8, I64, ...) are preferred when
// the type is known statically.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case uint8:
		return U8(x), nil
	case uint16:
		return U16(x), nil
	case uint32:
		return U32(x), nil
	case uint64:
		return U64(x), nil
	case num128.Uint128:
		return U128(x), nil
	case int8:
		return I8(x), nil
	case int16:
		return I16(x), nil
	case int32:
		return I32(x), nil
	case int64:
		return I64(x), nil
	case num128.Int128:
		return I128(x), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value type %T", errs.ErrInvalidEncoding, v)
	}
}

// Kind returns the integer kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Uint64 returns the payload for unsigned kinds up to 64 bits. The second
// result is false for signed and 128-bit kinds.
func (v Value) Uint64() (uint64, bool) {
	if v.kind.Signed() || v.kind == KindUint128 {
		return 0, false
	}

	return v.bits.Lo, true
}

// Int64 returns the payload for signed kinds up to 64 bits, sign-extended
// from the kind's width. The second result is false for unsigned and
// 128-bit kinds.
func (v Value) Int64() (int64, bool) {
	if !v.kind.Signed() || v.kind == KindInt128 {
		return 0, false
	}

	w := v.kind.Bits()
	shift := 64 - w

	return int64(v.bits.Lo<<shift) >> shift, true
}

// Uint128 returns the payload for the unsigned 128-bit kind.
func (v Value) Uint128() (num128.Uint128, bool) {
	if v.kind != KindUint128 {
		return num128.Uint128{}, false
	}

	return v.bits, true
}

// Int128 returns the payload for the signed 128-bit kind.
func (v Value) Int128() (num128.Int128, bool) {
	if v.kind != KindInt128 {
		return num128.Int128{}, false
	}

	return v.bits.Int128(), true
}

// String formats the value as kind(payload), e.g. "int16(-1000)".
func (v Value) String() string {
	switch {
	case v.kind == KindUint128:
		return fmt.Sprintf("uint128(%v)", v.bits)
	case v.kind == KindInt128:
		return fmt.Sprintf("int128(%v)", v.bits.Int128())
	case v.kind.Signed():
		s, _ := v.Int64()
		return fmt.Sprintf("%v(%d)", v.kind, s)
	default:
		return fmt.Sprintf("%v(%d)", v.kind, v.bits.Lo)
	}
}

// TypeID returns the one-byte wire header identifying the kind. No two
// kinds share a header byte.
func (v Value) TypeID() byte {
	var id byte
	if v.kind.Signed() {
		id = typeBitsSigned
	}

	switch v.kind.Bits() {
	case 8:
		id |= sizeBits8
	case 16:
		id |= sizeBits16
	case 32:
		id |= sizeBits32
	case 64:
		id |= sizeBits64
	default:
		id |= sizeBits128
	}

	return id
}

// Size returns the serialized size in bytes: one header byte plus the
// payload's canonical varint size. A zero payload serializes to the header
// alone, so Size is exactly 1 for any zero value of any kind.
func (v Value) Size() int {
	if v.bits.IsZero() {
		return 1
	}

	return 1 + SizeUint128(v.wireCarrier())
}

// wireCarrier returns the unsigned value whose varint encoding forms the
// payload: the raw bits for unsigned kinds, the zig-zag mapping for signed
// kinds.
func (v Value) wireCarrier() num128.Uint128 {
	if !v.kind.Signed() {
		return v.bits
	}

	if v.kind == KindInt128 {
		return ZigZag128(v.bits.Int128())
	}

	w := v.kind.Bits()
	shift := 64 - w
	s := int64(v.bits.Lo<<shift) >> shift

	return num128.From64(uint64(s<<1^s>>63) & widthMask(w))
}

// Encode serializes the value into buf and returns the number of bytes
// written: the header byte, then (unless the payload is zero) the payload
// varint. An empty buffer fails with *errs.SizeError{Needed: 1, Actual: 0};
// payload encoding errors are forwarded from the codec.
func (v Value) Encode(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, &errs.SizeError{Needed: 1, Actual: 0}
	}

	buf[0] = v.TypeID()
	if v.bits.IsZero() {
		return 1, nil
	}

	n, err := EncodeUint128(v.wireCarrier(), buf[1:])
	if err != nil {
		return 0, err
	}

	return n + 1, nil
}

// DecodeValue deserializes a Value from the start of buf, returning the
// value and the number of bytes read.
//
// An empty buffer fails with errs.ErrInputTooShort. When the payload
// region is empty the header must name a valid kind, which reconstructs
// that kind's zero value; a header whose bit pattern matches no known
// (signedness, width) pair fails with errs.ErrInvalidEncoding. Note that
// the zero-payload form is only recognized at the end of the buffer; in a
// stream of multiple values the surrounding framing determines each
// value's extent.
func DecodeValue(buf []byte) (Value, int, error) {
	if len(buf) == 0 {
		return Value{}, 0, errs.ErrInputTooShort
	}

	kind, ok := kindOfHeader(buf[0])
	if !ok {
		return Value{}, 0, errs.ErrInvalidEncoding
	}

	data := buf[1:]
	if len(data) == 0 {
		return Value{kind: kind}, 1, nil
	}

	var (
		u   num128.Uint128
		n   int
		err error
	)
	if kind.Bits() == 128 {
		u, n, err = DecodeUint128(data)
	} else {
		var lo uint64
		lo, n, err = uvarintDecode(data, kind.Bits())
		u = num128.From64(lo)
	}
	if err != nil {
		return Value{}, 0, err
	}

	if kind.Signed() {
		return decodeSignedPayload(kind, u), n + 1, nil
	}

	return Value{kind: kind, bits: u}, n + 1, nil
}

// decodeSignedPayload undoes the zig-zag mapping and stores the resulting
// width-masked bit pattern.
func decodeSignedPayload(kind Kind, u num128.Uint128) Value {
	if kind == KindInt128 {
		return Value{kind: kind, bits: UnZigZag128(u).Uint128()}
	}

	s := int64(u.Lo>>1) ^ -int64(u.Lo&1)

	return Value{kind: kind, bits: num128.From64(uint64(s) & widthMask(kind.Bits()))}
}

// kindOfHeader maps a wire header byte back to its kind.
func kindOfHeader(id byte) (Kind, bool) {
	var signed bool
	switch id & typeBitsMask {
	case typeBitsUnsigned:
	case typeBitsSigned:
		signed = true
	default:
		return 0, false
	}

	var kind Kind
	switch id & sizeBitsMask {
	case sizeBits8:
		kind = KindUint8
	case sizeBits16:
		kind = KindUint16
	case sizeBits32:
		kind = KindUint32
	case sizeBits64:
		kind = KindUint64
	case sizeBits128:
		kind = KindUint128
	default:
		return 0, false
	}

	if signed {
		kind += KindInt8 - KindUint8
	}

	return kind, true
}
