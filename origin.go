package oroch

// originCodec encodes a value as its difference from a fixed origin (the
// frame-of-reference transform): encode(v) = v - origin, decode(u) = u +
// origin, both computed modulo 2^width in the unsigned domain. Grounded on
// oroch/origin.h.
//
// originCodec is stateless and may be copied freely.
type originCodec[T Integer] struct {
	origin T
}

func newOriginCodec[T Integer](origin T) originCodec[T] {
	return originCodec[T]{origin: origin}
}

func (c originCodec[T]) encode(v T) uint64 {
	width := widthOf[T]()
	return (uint64(v) - uint64(c.origin)) & widthMask(width)
}

func (c originCodec[T]) decode(u uint64) T {
	return T(u + uint64(c.origin))
}
