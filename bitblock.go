package oroch

import "encoding/binary"

// blockBytes is the fixed size, in bytes, of one bit-pack block: two 64-bit
// little-endian words holding up to capacity(nbits) values of width nbits.
const blockBytes = 16

// blockCapacity returns the number of nbits-wide integers that fit into one
// 128-bit block: floor(128 / nbits).
func blockCapacity(nbits int) int {
	return (blockBytes * 8) / nbits
}

// bitpackSpace returns the number of bytes needed to bit-pack nvalues
// integers at the given width: 16 * ceil(nvalues / capacity(nbits)).
// Monotone in nbits for fixed nvalues (spec.md §8 "Monotone bit-pack
// space").
func bitpackSpace(nvalues, nbits int) int {
	if nvalues == 0 {
		return 0
	}
	c := blockCapacity(nbits)
	blocks := (nvalues + c - 1) / c
	return blockBytes * blocks
}

// packBlock bit-packs up to blockCapacity(nbits) values from values into a
// single 16-byte block written to dst[:16], applying codec to each value
// before masking it to the low nbits bits. Values beyond len(values) (a
// partial tail block) are left as zero bits. It returns the number of
// values consumed from values.
//
// The packing rule follows spec.md §4.3 / oroch's bitpck_codec::block_encode:
// the first m = capacity/2 values fill word u from the low bit upward; if
// m*nbits is less than 64, the (m+1)-th value straddles the u/v boundary,
// its low bits in u and high bits in v; the remaining values fill word v.
func packBlock[T Integer](dst []byte, values []T, codec valueCodec[T], nbits int) int {
	if nbits <= 0 || nbits > 64 {
		panic("oroch: nbits out of range for block codec")
	}
	mask := widthMask(nbits)
	c := blockCapacity(nbits)
	m := c / 2
	n := c - m

	var u, v uint64
	var shift uint
	consumed := 0

	take := func() (T, bool) {
		if consumed >= len(values) {
			return T(0), false
		}
		val := values[consumed]
		consumed++
		return val, true
	}

	for m > 0 {
		m--
		val, ok := take()
		if !ok {
			goto done
		}
		u |= (codec.encode(val) & mask) << shift
		shift += uint(nbits)
	}
	if shift == 64 {
		shift = 0
	} else {
		val, ok := take()
		if !ok {
			goto done
		}
		nbits1 := 64 - shift
		nbits2 := uint(nbits) - nbits1
		mask1 := widthMask(int(nbits1))
		mask2 := widthMask(int(nbits2))

		encoded := codec.encode(val)
		u |= (encoded & mask1) << shift
		v |= (encoded >> nbits1) & mask2
		shift = nbits2
		n--
	}
	for n > 0 {
		n--
		val, ok := take()
		if !ok {
			goto done
		}
		v |= (codec.encode(val) & mask) << shift
		shift += uint(nbits)
	}

done:
	binary.LittleEndian.PutUint64(dst[0:8], u)
	binary.LittleEndian.PutUint64(dst[8:16], v)
	return consumed
}

// unpackBlock reverses packBlock, decoding up to min(len(dst),
// blockCapacity(nbits)) values from the 16-byte block src[:16] into dst. It
// returns the number of values written.
func unpackBlock[T Integer](dst []T, src []byte, codec valueCodec[T], nbits int) int {
	if nbits <= 0 || nbits > 64 {
		panic("oroch: nbits out of range for block codec")
	}
	u := binary.LittleEndian.Uint64(src[0:8])
	v := binary.LittleEndian.Uint64(src[8:16])

	mask := widthMask(nbits)
	c := blockCapacity(nbits)
	m := c / 2
	mbits := m * nbits
	if c > len(dst) {
		c = len(dst)
		if m > c {
			m = c
		}
	}
	n := c - m

	written := 0
	for m > 0 {
		m--
		dst[written] = codec.decode(u & mask)
		written++
		u >>= uint(nbits)
	}
	if n > 0 && mbits != 64 {
		r := 64 - mbits
		x := u | (v << uint(r))
		dst[written] = codec.decode(x & mask)
		written++
		v >>= uint(nbits - r)
		n--
	}
	for n > 0 {
		n--
		dst[written] = codec.decode(v & mask)
		written++
		v >>= uint(nbits)
	}
	return written
}

// fetchBlock decodes a single value at the given in-block index from a
// 16-byte block, without decoding the values around it.
func fetchBlock[T Integer](src []byte, index, nbits int, codec valueCodec[T]) T {
	u := binary.LittleEndian.Uint64(src[0:8])
	v := binary.LittleEndian.Uint64(src[8:16])

	m := blockCapacity(nbits) / 2

	var x uint64
	switch {
	case index < m:
		x = u >> uint(index*nbits)
	default:
		mbits := m * nbits
		if mbits != 64 && index == m {
			x = (u >> uint(mbits)) | (v << uint(64-mbits))
		} else {
			x = v >> uint(index*nbits-64)
		}
	}

	mask := widthMask(nbits)
	return codec.decode(x & mask)
}

// bitpackEncode bit-packs the full values slice at the given width,
// appending full 16-byte blocks to dst (the last block zero-padded if
// len(values) is not a multiple of blockCapacity(nbits)).
func bitpackEncode[T Integer](dst []byte, values []T, nbits int, codec valueCodec[T]) []byte {
	c := blockCapacity(nbits)
	for i := 0; i < len(values); i += c {
		end := i + c
		if end > len(values) {
			end = len(values)
		}
		start := len(dst)
		dst = append(dst, make([]byte, blockBytes)...)
		packBlock(dst[start:start+blockBytes], values[i:end], codec, nbits)
	}
	return dst
}

// bitpackDecode reverses bitpackEncode, filling dst (len(dst) == original
// nvalues) from src.
func bitpackDecode[T Integer](dst []T, src []byte, nbits int, codec valueCodec[T]) {
	c := blockCapacity(nbits)
	pos := 0
	off := 0
	for pos < len(dst) {
		end := pos + c
		if end > len(dst) {
			end = len(dst)
		}
		unpackBlock(dst[pos:end], src[off:off+blockBytes], codec, nbits)
		pos = end
		off += blockBytes
	}
}

// bitpackFetch decodes the value at logical index i from a bit-packed
// sequence, without decoding the values around it.
func bitpackFetch[T Integer](src []byte, i, nbits int, codec valueCodec[T]) T {
	c := blockCapacity(nbits)
	blockOff := (i / c) * blockBytes
	return fetchBlock(src[blockOff:blockOff+blockBytes], i%c, nbits, codec)
}
