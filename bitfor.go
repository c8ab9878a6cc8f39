package oroch

// Frame-of-reference bit-pack codec ("bitfor"): bit-packs value - origin at
// a fixed width, instead of bit-packing the raw zigzag-encoded value. The
// origin must be less than or equal to every encoded value, so that
// value - origin is a non-negative unsigned quantity, and nbits must cover
// the largest such difference. Grounded on oroch/bitfor.h, a thin wrapper around the bitpck
// block codec parameterized with originCodec instead of zigzagCodec.

// bitforSpace returns the number of bytes needed to bit-pack nvalues
// values at the given width (identical to bitpackSpace; bitfor reuses the
// same block layout as bitpck, only the value transform differs).
func bitforSpace(nvalues, nbits int) int {
	return bitpackSpace(nvalues, nbits)
}

func bitforEncode[T Integer](dst []byte, values []T, origin T, nbits int) []byte {
	return bitpackEncode(dst, values, nbits, newOriginCodec(origin))
}

func bitforDecode[T Integer](dst []T, src []byte, origin T, nbits int) {
	bitpackDecode(dst, src, nbits, newOriginCodec(origin))
}

func bitforFetch[T Integer](src []byte, i int, origin T, nbits int) T {
	return bitpackFetch(src, i, nbits, newOriginCodec(origin))
}
