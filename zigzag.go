package oroch

// zigzagEncode maps a signed value into the unsigned domain so that values
// of small magnitude (positive or negative) end up near zero, following the
// classic protobuf zigzag scheme:
//
//	encode(s) = (s << 1) XOR (s >> (W-1))
//
// The shift and XOR are carried out in T's own width, matching oroch's
// zigzag_codec, and the result is returned in the uint64 "unsigned domain"
// representation this package uses throughout, masked to T's width.
//
// For unsigned T this is the identity transform.
func zigzagEncode[T Integer](v T) uint64 {
	width := widthOf[T]()
	if !isSigned[T]() {
		return uint64(v) & widthMask(width)
	}
	shifted := (v << 1) ^ (v >> uint(width-1))
	return uint64(shifted) & widthMask(width)
}

// zigzagDecode reverses zigzagEncode:
//
//	decode(u) = (u >> 1) XOR -(u AND 1)
//
// For unsigned T this is the identity transform.
func zigzagDecode[T Integer](u uint64) T {
	if !isSigned[T]() {
		return T(u)
	}
	return T(u>>1) ^ -T(u&1)
}
