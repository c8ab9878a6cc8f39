package oroch

// valueCodec is the common shape of the per-value transforms (zigzag,
// origin, offset) that bitblock.go and varint.go parameterize over: a
// reversible mapping between an original value and its unsigned-domain
// representation. Stateless codecs (zigzagCodec, originCodec) may be
// copied freely; stateful codecs (offsetCodec) carry mutable fields and
// must be used by a single caller at a time, matching oroch's distinction
// between the two families (spec.md §4.9 "Stateful value codecs").
type valueCodec[T Integer] interface {
	encode(v T) uint64
	decode(u uint64) T
}

// zigzagCodec is the stateless default value codec: it applies zigzagEncode
// / zigzagDecode, and is the identity transform for unsigned T.
type zigzagCodec[T Integer] struct{}

func (zigzagCodec[T]) encode(v T) uint64 { return zigzagEncode(v) }
func (zigzagCodec[T]) decode(u uint64) T { return zigzagDecode[T](u) }
