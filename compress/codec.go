// Package compress provides optional post-compression for encoded varint
// payloads.
//
// Varint encoding removes leading-zero bytes but leaves the remaining
// entropy untouched. Payloads of clustered or repetitive values (delta
// sequences, IDs drawn from a small range) compress well on top of the
// varint layer; payloads of near-random values do not. Measure with
// representative data before enabling compression on a hot path.
//
//   - S2: fastest, moderate ratio; good for hot paths and RPC payloads
//   - LZ4: fast, slightly better ratio on text-like payloads
//   - Zstd: best ratio; good for cold storage and archival
//   - NoOp: bypass, for baselines and already-compressed data
package compress

import (
	"fmt"
)

// Type selects a compression algorithm.
type Type uint8

const (
	TypeNone Type = iota
	TypeS2
	TypeLZ4
	TypeZstd
)

// String returns the lowercase algorithm name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeS2:
		return "s2"
	case TypeLZ4:
		return "lz4"
	case TypeZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Compressor compresses an encoded payload.
type Compressor interface {
	// Compress compresses data and returns the result. The returned slice
	// is newly allocated and owned by the caller; the input is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload. It
	// returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// New creates a Codec for the specified compression type.
func New(t Type) (Codec, error) {
	switch t {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("unknown compression type: %v", t)
	}
}
