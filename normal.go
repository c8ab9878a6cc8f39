package oroch

import "encoding/binary"

// Raw, fixed-width pass-through codec: each value is stored as
// widthOf(T)/8 little-endian bytes. Grounded on oroch/normal.h.

// normalSpace returns the number of bytes needed to store nvalues raw
// values of type T.
func normalSpace[T Integer](nvalues int) int {
	return nvalues * (widthOf[T]() / 8)
}

// normalEncode appends the raw little-endian encoding of every value in
// values to dst.
func normalEncode[T Integer](dst []byte, values []T) []byte {
	width := widthOf[T]() / 8
	for _, v := range values {
		start := len(dst)
		dst = append(dst, make([]byte, width)...)
		putUint(dst[start:start+width], uint64(v))
	}
	return dst
}

// normalDecode reverses normalEncode, filling dst from src.
func normalDecode[T Integer](dst []T, src []byte) {
	width := widthOf[T]() / 8
	for i := range dst {
		u := getUint(src[i*width : i*width+width])
		dst[i] = T(u)
	}
}

// normalFetch decodes the value at logical index i directly, without
// decoding any other value.
func normalFetch[T Integer](src []byte, i int) T {
	width := widthOf[T]() / 8
	return T(getUint(src[i*width : i*width+width]))
}

// putUint writes the low len(dst)*8 bits of u to dst as little-endian.
func putUint(dst []byte, u uint64) {
	switch len(dst) {
	case 1:
		dst[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(u))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(u))
	case 8:
		binary.LittleEndian.PutUint64(dst, u)
	default:
		panic("oroch: unsupported raw width")
	}
}

// getUint reads a little-endian unsigned integer from src, sized by
// len(src), and returns it zero-extended in a uint64.
func getUint(src []byte) uint64 {
	switch len(src) {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(src))
	case 4:
		return uint64(binary.LittleEndian.Uint32(src))
	case 8:
		return binary.LittleEndian.Uint64(src)
	default:
		panic("oroch: unsupported raw width")
	}
}
