package oroch

// Group encodes and decodes one self-contained sequence of values of type
// T: a metadata header (selector.go/metadata.go), an 8-byte-aligned pad,
// and the encoded data. Grounded on oroch/integer_codec.h's
// integer_codec::encode/decode and the encode_basic/decode_basic/
// encode_bitpfr/decode_bitpfr dispatchers.
//
// Group holds no state of its own; its methods operate entirely on the
// caller-supplied blob, so the zero value is ready to use and the same
// Group value may be shared across goroutines.
type Group[T Integer] struct{}

// Info is the information Group.DecodeMetadata exposes about an encoded
// blob without decoding its values.
type Info[T Integer] struct {
	Encoding Tag
	Origin   T
	NBits    int
}

// Encode selects the cheapest encoding for values and returns a
// self-contained blob: metadata, then zero-padding up to the next 8-byte
// boundary, then the encoded data. One allocation grows as needed; no
// intermediate buffers are retained.
func (Group[T]) Encode(values []T) []byte {
	meta := selectEncoding(values)

	dst := make([]byte, 0, meta.totalMetaspace()+8+meta.valueDesc.dataspace)
	dst = encodeMetadata(dst, &meta)
	dst = padTo8(dst)

	if meta.valueDesc.encoding == TagBitpfr {
		dst = encodeBitpfr(dst, values, &meta)
	} else {
		dst = encodeBasic(dst, values, meta.valueDesc)
	}
	return dst
}

// Decode fills dst (len(dst) values) by decoding blob. It returns
// ErrCorruptInput if blob is truncated or malformed.
func (Group[T]) Decode(dst []T, blob []byte) error {
	meta, pos, ok := decodeMetadata[T](blob)
	if !ok {
		return ErrCorruptInput
	}
	pos = alignedOffset(pos)
	if pos > len(blob) {
		return ErrCorruptInput
	}
	data := blob[pos:]

	if meta.valueDesc.encoding == TagBitpfr {
		if _, ok := decodeBitpfr(dst, data, &meta); !ok {
			return ErrCorruptInput
		}
		return nil
	}
	if _, ok := decodeBasic(dst, data, meta.valueDesc); !ok {
		return ErrCorruptInput
	}
	return nil
}

// DecodeMetadata reports the encoding selected for blob without decoding
// any values.
func (Group[T]) DecodeMetadata(blob []byte) (Info[T], error) {
	meta, _, ok := decodeMetadata[T](blob)
	if !ok {
		return Info[T]{}, ErrCorruptInput
	}
	return Info[T]{
		Encoding: meta.valueDesc.encoding,
		Origin:   meta.valueDesc.origin,
		NBits:    meta.valueDesc.nbits,
	}, nil
}

// Fetch decodes a single value at the given logical index out of blob,
// without decoding the rest of the sequence. nvalues is the number of
// values the blob was encoded with (Group does not itself store a count;
// callers such as Array track it). Fetch returns an error for the bitpfr
// encoding, which requires the outlier side channels to reconstruct any
// single value and so offers no random-access shortcut (spec.md §4/§6).
func (g Group[T]) Fetch(blob []byte, nvalues, index int) (T, error) {
	if index < 0 || index >= nvalues {
		return T(0), ErrInvalidArgument
	}
	meta, pos, ok := decodeMetadata[T](blob)
	if !ok {
		return T(0), ErrCorruptInput
	}
	pos = alignedOffset(pos)
	if pos > len(blob) {
		return T(0), ErrCorruptInput
	}
	data := blob[pos:]

	switch meta.valueDesc.encoding {
	case TagNaught:
		return naughtFetch(meta.valueDesc.origin), nil
	case TagNormal:
		return normalFetch[T](data, index), nil
	case TagVarint:
		v, ok := varintDecodeAt(data, nvalues, index, zigzagCodec[T]{})
		if !ok {
			return T(0), ErrCorruptInput
		}
		return v, nil
	case TagVarfor:
		v, ok := varintDecodeAt(data, nvalues, index, newOriginCodec(meta.valueDesc.origin))
		if !ok {
			return T(0), ErrCorruptInput
		}
		return v, nil
	case TagBitpck:
		return bitpackFetch(data, index, meta.valueDesc.nbits, zigzagCodec[T]{}), nil
	case TagBitfor:
		return bitforFetch(data, index, meta.valueDesc.origin, meta.valueDesc.nbits), nil
	case TagBitpfr:
		return T(0), ErrInvalidArgument
	default:
		return T(0), ErrCorruptInput
	}
}

// padTo8 appends zero bytes to dst until its length is a multiple of 8.
func padTo8(dst []byte) []byte {
	for len(dst)%8 != 0 {
		dst = append(dst, 0)
	}
	return dst
}

// alignedOffset rounds n up to the next multiple of 8.
func alignedOffset(n int) int {
	return (n + 7) &^ 7
}

// encodeBasic appends the data-section encoding of values to dst according
// to desc, which must not be TagBitpfr (the caller decomposes bitpfr into
// the basic bit-pack stream plus two outlier side channels — see
// encodeBitpfr). Grounded on integer_codec::encode_basic.
func encodeBasic[T Integer](dst []byte, values []T, desc descriptor[T]) []byte {
	switch desc.encoding {
	case TagNaught:
		return dst
	case TagNormal:
		return normalEncode(dst, values)
	case TagVarint:
		return varintEncodeSeq(dst, values, zigzagCodec[T]{})
	case TagVarfor:
		return varintEncodeSeq(dst, values, newOriginCodec(desc.origin))
	case TagBitpck:
		return bitpackEncode(dst, values, desc.nbits, zigzagCodec[T]{})
	case TagBitfor:
		return bitforEncode(dst, values, desc.origin, desc.nbits)
	default:
		panic("oroch: bitpfr is not a basic encoding")
	}
}

// decodeBasic is the inverse of encodeBasic: it fills dst (len(dst) values)
// from src and returns the number of bytes consumed. It returns
// ok == false on a truncated or malformed src.
func decodeBasic[T Integer](dst []T, src []byte, desc descriptor[T]) (n int, ok bool) {
	switch desc.encoding {
	case TagNaught:
		naughtDecode(dst, desc.origin)
		return 0, true
	case TagNormal:
		need := normalSpace[T](len(dst))
		if need > len(src) {
			return 0, false
		}
		normalDecode(dst, src[:need])
		return need, true
	case TagVarint:
		return varintDecodeSeq(dst, src, zigzagCodec[T]{})
	case TagVarfor:
		return varintDecodeSeq(dst, src, newOriginCodec(desc.origin))
	case TagBitpck:
		need := bitpackSpace(len(dst), desc.nbits)
		if need > len(src) {
			return 0, false
		}
		bitpackDecode(dst, src[:need], desc.nbits, zigzagCodec[T]{})
		return need, true
	case TagBitfor:
		need := bitforSpace(len(dst), desc.nbits)
		if need > len(src) {
			return 0, false
		}
		bitforDecode(dst, src[:need], desc.origin, desc.nbits)
		return need, true
	default:
		return 0, false
	}
}

// encodeBitpfr appends the patched bit-pack data section — the basic
// bit-packed stream, then the outlier indices, then the outlier high bits
// — to dst. Grounded on integer_codec::encode_bitpfr.
func encodeBitpfr[T Integer](dst []byte, values []T, meta *metadata[T]) []byte {
	out := &bitpfrOutliers{}
	dst = bitpfrEncode(dst, values, meta.valueDesc.origin, meta.valueDesc.nbits, out)
	dst = encodeBasic(dst, out.indices, meta.outlierIndexDesc)
	dst = encodeBasic(dst, out.values, meta.outlierValueDesc)
	return dst
}

// decodeBitpfr is the inverse of encodeBitpfr. Grounded on
// integer_codec::decode_bitpfr.
func decodeBitpfr[T Integer](dst []T, src []byte, meta *metadata[T]) (n int, ok bool) {
	nbits := meta.valueDesc.nbits
	basicSpace := bitpackSpace(len(dst), nbits)
	if basicSpace > len(src) {
		return 0, false
	}
	bitpfrDecodeBasic(dst, src[:basicSpace], meta.valueDesc.origin, nbits)
	pos := basicSpace

	indices := make([]uint64, meta.noutliers)
	c, ok := decodeBasic(indices, src[pos:], meta.outlierIndexDesc)
	if !ok {
		return 0, false
	}
	pos += c

	values := make([]uint64, meta.noutliers)
	c, ok = decodeBasic(values, src[pos:], meta.outlierValueDesc)
	if !ok {
		return 0, false
	}
	pos += c

	bitpfrDecodePatch(dst, meta.valueDesc.origin, nbits, indices, values)
	return pos, true
}
