package oroch

// offsetCodec is a stateful delta transform with a constant per-step offset,
// grounded on oroch/offset.h. It is used to encode sequences that naturally
// differ by a constant amount at least (e.g. strictly increasing indices,
// where step == 1), and is the transform bitpfr.go uses to delta-compress
// outlier indices.
//
// encode(v) = v - prev; prev = v + step
// decode(u) = prev + u; prev = (prev + u) + step
//
// takenOut controls whether the initial prev already has step applied: if
// the origin value is the first element of the sequence and will be encoded
// separately (taken out), prev starts at origin+step; if the origin is
// known from general sequence properties and the first element is encoded
// along with the rest, prev starts at origin.
//
// offsetCodec carries mutable state and has no reset method: it must not be
// shared between concurrent callers, and each sequence needs its own codec
// from newOffsetCodec.
type offsetCodec[T Integer] struct {
	origin T
	step   T
	prev   T
}

func newOffsetCodec[T Integer](origin, step T, takenOut bool) *offsetCodec[T] {
	c := &offsetCodec[T]{origin: origin, step: step}
	c.prev = origin
	if takenOut {
		c.prev += step
	}
	return c
}

func (c *offsetCodec[T]) encode(v T) uint64 {
	width := widthOf[T]()
	u := (uint64(v) - uint64(c.prev)) & widthMask(width)
	c.prev = v + c.step
	return u
}

func (c *offsetCodec[T]) decode(u uint64) T {
	v := T(uint64(c.prev) + u)
	c.prev = v + c.step
	return v
}
