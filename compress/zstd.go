package compress

// ZstdCompressor compresses payloads with Zstandard, trading speed for the
// best compression ratio of the supported codecs. Suited to cold storage
// and archival of encoded batches.
//
// The implementation is selected at build time: the cgo build uses
// valyala/gozstd (libzstd bindings), the pure-Go build uses
// klauspost/compress/zstd. The two produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
