// Package codec implements the varix variable-length integer wire format.
//
// A varint stores an integer in 1 to ceil(width/7) bytes: each byte carries
// seven payload bits in its low bits, and the high bit (0x80) is the
// continuation bit, set on every byte except the last. Small values take
// fewer bytes, which makes the encoding attractive for wire protocols and
// on-disk formats where most integers are near zero.
//
// The package operates exclusively over caller-supplied fixed buffers and
// allocates nothing on the encode/decode success path, so it is safe to use
// in allocation-sensitive code. For a growable convenience layer see the
// stream package.
//
// # API groups
//
//   - Encode, Decode, Size: one-shot codec for any fixed-width integer type
//   - EncodeZigZag, DecodeZigZag, SizeZigZag: signed values via the zig-zag
//     mapping, which keeps small magnitudes (either sign) small on the wire
//   - Encoder, Decoder: stateful cursors for packing sequences of values
//     into one buffer without tracking offsets by hand
//   - BytesOf, ValuesFrom: lazy byte-at-a-time and value-at-a-time iteration
//   - Value: a self-describing tagged value multiplexing ten integer kinds
//     into one wire representation
//
// 128-bit integers use the num128 value types through parallel functions
// (EncodeUint128, DecodeInt128, ...), since Go generics cannot range over
// them.
//
// # Canonical form
//
// The encoder always emits the minimal number of bytes; zero encodes as a
// single 0x00 byte, never as an empty sequence. The decoder bounds the
// number of continuation groups to width/7+1 for the target width and
// reports errs.ErrOverflow beyond that, so maliciously long encodings
// cannot consume unbounded input or corrupt a narrower result.
package codec
