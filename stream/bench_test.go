package stream

import (
	"math/rand"
	"testing"
)

func BenchmarkEncoder_WriteSlice(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint64, 4096)
	for i := range values {
		values[i] = rng.Uint64() >> uint(rng.Intn(64))
	}
	b.ResetTimer()
	for b.Loop() {
		enc := NewEncoder()
		enc.WriteSlice(values)
		enc.Finish()
	}
}

func BenchmarkDecoder_All(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	values := make([]uint64, 4096)
	for i := range values {
		values[i] = rng.Uint64() >> uint(rng.Intn(64))
	}

	enc := NewEncoder()
	defer enc.Finish()
	enc.WriteSlice(values)
	payload := make([]byte, enc.Size())
	copy(payload, enc.Bytes())

	dec := NewDecoder()
	b.ResetTimer()
	for b.Loop() {
		for v := range dec.All(payload, len(values)) {
			_ = v
		}
	}
}

func BenchmarkEncoder_Checksum(b *testing.B) {
	enc := NewEncoder()
	defer enc.Finish()
	for i := 0; i < 4096; i++ {
		enc.Write(uint64(i * 31))
	}
	b.ResetTimer()
	for b.Loop() {
		_ = enc.Checksum()
	}
}
