// Package varix provides a compact variable-length integer (varint) codec
// for fixed buffers.
//
// A varint encodes an integer into 1 to ceil(width/7) bytes: the smaller
// the magnitude, the fewer the bytes. Each byte carries seven payload bits;
// the high bit marks continuation. The codec operates entirely over
// caller-supplied buffers and allocates nothing on the encode/decode
// success path, making it suitable for wire protocols, on-disk formats and
// allocation-sensitive services.
//
// # Core Features
//
//   - Generic encode/decode for all fixed-width integer types (8-64 bits)
//     plus 128-bit values via the num128 types
//   - ZigZag mapping so small negative values stay small on the wire
//   - Stateful batch cursors for packing value sequences into one buffer
//   - Zero-allocation byte-at-a-time and value-at-a-time iteration
//   - Self-describing tagged values multiplexing ten integer kinds
//   - Canonical encodings only, with bounded decoding of hostile input
//
// # Basic Usage
//
// Encoding and decoding single values:
//
//	import "github.com/arloliu/varix/codec"
//
//	buf := make([]byte, 10)
//	n, _ := codec.Encode(uint64(300), buf) // buf[:n] == {0xAC, 0x02}
//	v, _, _ := codec.Decode[uint64](buf[:n])
//
// Packing a batch with a cursor:
//
//	enc := codec.NewEncoder(buf)
//	for _, v := range values {
//	    if _, err := codec.Write(enc, v); err != nil {
//	        return err
//	    }
//	}
//	payload := buf[:enc.Position()]
//
// # Package Structure
//
// This package provides flat shortcuts for the dominant uint64/int64 case,
// mirroring the encoding/binary naming. For the full API (generic widths,
// cursors, iterators, tagged values) use the codec package directly; for
// growable buffers and payload checksums see the stream package.
package varix

import (
	"github.com/arloliu/varix/codec"
)

// MaxVarintLen64 is the maximum length in bytes of a varint-encoded
// 64-bit integer.
const MaxVarintLen64 = 10

// PutUvarint encodes v into buf and returns the number of bytes written.
// It fails with a *errs.SizeError if buf is too small.
func PutUvarint(buf []byte, v uint64) (int, error) {
	return codec.Encode(v, buf)
}

// Uvarint decodes a uint64 from buf, returning the value and the number
// of bytes read.
func Uvarint(buf []byte) (uint64, int, error) {
	return codec.Decode[uint64](buf)
}

// PutVarint zig-zag encodes v into buf and returns the number of bytes
// written.
func PutVarint(buf []byte, v int64) (int, error) {
	return codec.EncodeZigZag(v, buf)
}

// Varint decodes a zig-zag encoded int64 from buf, returning the value
// and the number of bytes read.
func Varint(buf []byte) (int64, int, error) {
	return codec.DecodeZigZag[int64](buf)
}

// UvarintLen returns the encoded size of v in bytes.
func UvarintLen(v uint64) int {
	return codec.Size(v)
}

// VarintLen returns the zig-zag encoded size of v in bytes.
func VarintLen(v int64) int {
	return codec.SizeZigZag(v)
}
