package codec

// ZigZag maps a signed value onto the unsigned encoding space so that small
// magnitudes of either sign stay numerically small: 0 -> 0, -1 -> 1,
// 1 -> 2, -2 -> 3, 2 -> 4, and so on. The result occupies at most the bit
// width of S.
func ZigZag[S Signed](v S) uint64 {
	w := widthOf[S]()

	return uint64(v<<1^v>>(w-1)) & widthMask(w)
}

// UnZigZag inverts ZigZag. Bits of u above the width of S must be zero;
// values produced by ZigZag always satisfy this.
func UnZigZag[S Signed](u uint64) S {
	return S(u>>1) ^ -S(u&1)
}

// SizeZigZag returns the number of bytes EncodeZigZag produces for v.
func SizeZigZag[S Signed](v S) int {
	return uvarintSize(ZigZag(v))
}

// EncodeZigZag writes v to buf as a zig-zag varint and returns the number
// of bytes written. The mapping itself cannot fail; any error comes from
// the underlying varint encode (see Encode).
func EncodeZigZag[S Signed](v S, buf []byte) (int, error) {
	return uvarintEncode(ZigZag(v), buf)
}

// DecodeZigZag reads a zig-zag varint of type S from the start of buf and
// returns the value and the number of bytes consumed. Failure modes are
// those of Decode.
func DecodeZigZag[S Signed](buf []byte) (S, int, error) {
	u, n, err := uvarintDecode(buf, widthOf[S]())
	if err != nil {
		return 0, 0, err
	}

	return UnZigZag[S](u), n, nil
}
