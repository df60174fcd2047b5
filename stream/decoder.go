package stream

import (
	"iter"

	"github.com/arloliu/varix/codec"
	"github.com/arloliu/varix/internal/hash"
)

// Decoder reads values back from payloads produced by Encoder. It is
// stateless; the same instance can decode any number of payloads.
type Decoder struct{}

// NewDecoder creates a new stream decoder.
func NewDecoder() Decoder {
	return Decoder{}
}

// All yields up to count plain varint values from data. Iteration stops
// early if the payload is truncated or corrupt; pair with Verify when the
// payload crossed an untrusted boundary.
func (d Decoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := codec.ValuesFrom[uint64](data)
		for n := 0; n < count && it.Next(); n++ {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// AllZigZag yields up to count zig-zag varint values from data.
func (d Decoder) AllZigZag(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		dec := codec.NewDecoder(data)
		for n := 0; n < count; n++ {
			v, err := codec.ReadZigZag[int64](dec)
			if err != nil {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// AllValues yields up to count tagged values from data.
func (d Decoder) AllValues(data []byte, count int) iter.Seq[codec.Value] {
	return func(yield func(codec.Value) bool) {
		offset := 0
		for n := 0; n < count && offset < len(data); n++ {
			v, read, err := codec.DecodeValue(data[offset:])
			if err != nil {
				return
			}

			offset += read
			if !yield(v) {
				return
			}
		}
	}
}

// At retrieves the plain varint value at the given zero-based index. The
// second result is false when the index is out of bounds or the payload is
// malformed before the index is reached. Varints are not random access, so
// At walks the payload from the start; prefer All for sequential reads.
func (d Decoder) At(data []byte, index int, count int) (uint64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	it := codec.ValuesFrom[uint64](data)
	for i := 0; i <= index; i++ {
		if !it.Next() {
			return 0, false
		}
	}

	return it.Value(), true
}

// Verify reports whether data matches the checksum produced by
// Encoder.Checksum.
func (d Decoder) Verify(data []byte, checksum uint64) bool {
	return hash.Verify(data, checksum)
}
