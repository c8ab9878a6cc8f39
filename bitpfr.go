package oroch

// Patched bit-pack codec ("bitpfr"): bit-packs value - origin at a width
// chosen to fit the bulk of the sequence, and diverts values that don't fit
// ("outliers") into two side channels: their original index (delta
// compressed) and their high bits ((value - origin) >> nbits). Grounded on
// oroch/bitpfr.h.

// bitpfrOutliers accumulates the side-channel data produced while encoding
// a patched bit-pack sequence: one delta-compressed index and one
// high-bits value per outlier, in the order they occur in the input.
type bitpfrOutliers struct {
	indices []uint64
	values  []uint64
}

// bitpfrValueCodec is the value codec bitpackEncode uses while producing
// the main bit-packed stream: it behaves like originCodec, but as a side
// effect of encoding a value that doesn't fit in nbits bits, it records an
// outlier. The outlier's index is run through an offsetCodec (step=1,
// takenOut=false) so that sequential outlier indices delta-compress well
// — mirrors bitpfr.h's parameters::value_encode and its
// offset_codec<size_t, 1, false> index_codec member.
type bitpfrValueCodec[T Integer] struct {
	origin T
	nbits  int
	mask   uint64

	indexCodec *offsetCodec[uint64]
	seq        uint64
	out        *bitpfrOutliers
}

func newBitpfrValueCodec[T Integer](origin T, nbits int, out *bitpfrOutliers) *bitpfrValueCodec[T] {
	return &bitpfrValueCodec[T]{
		origin:     origin,
		nbits:      nbits,
		mask:       widthMask(nbits),
		indexCodec: newOffsetCodec[uint64](0, 1, false),
		out:        out,
	}
}

func (c *bitpfrValueCodec[T]) encode(v T) uint64 {
	width := widthOf[T]()
	u := (uint64(v) - uint64(c.origin)) & widthMask(width)
	if u&^c.mask != 0 {
		idx := c.indexCodec.encode(c.seq)
		c.out.indices = append(c.out.indices, idx)
		c.out.values = append(c.out.values, u>>uint(c.nbits))
	}
	c.seq++
	return u
}

func (c *bitpfrValueCodec[T]) decode(u uint64) T {
	return T(u + uint64(c.origin))
}

// bitpfrEncode bit-packs values at the given width, relative to origin,
// and appends any outliers encountered to out.
func bitpfrEncode[T Integer](dst []byte, values []T, origin T, nbits int, out *bitpfrOutliers) []byte {
	codec := newBitpfrValueCodec(origin, nbits, out)
	return bitpackEncode(dst, values, nbits, codec)
}

// bitpfrDecodeBasic bit-unpacks the regular (non-patched) values into dst.
// The outlier positions in dst hold truncated low bits until
// bitpfrDecodePatch is applied.
func bitpfrDecodeBasic[T Integer](dst []T, src []byte, origin T, nbits int) {
	bitpackDecode(dst, src, nbits, newOriginCodec(origin))
}

// bitpfrDecodePatch applies the outlier side channels to dst, which must
// already hold the result of bitpfrDecodeBasic. indices and values must
// have the same length (the outlier count) and be in encounter order.
func bitpfrDecodePatch[T Integer](dst []T, origin T, nbits int, indices, values []uint64) {
	indexCodec := newOffsetCodec[uint64](0, 1, false)
	basic := newOriginCodec(origin)
	for i, encodedIdx := range indices {
		idx := indexCodec.decode(encodedIdx)
		u := basic.encode(dst[idx])
		u |= values[i] << uint(nbits)
		dst[idx] = basic.decode(u)
	}
}
