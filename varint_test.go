package oroch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarintSelfDelimiting(t *testing.T) {
	// spec.md §8 "varint self-delimiting": concatenating two encoded
	// values and decoding twice recovers both, independent of what
	// follows.
	codec := zigzagCodec[int32]{}
	var buf []byte
	buf = varintEncodeValue(buf, int32(300), codec)
	firstLen := len(buf)
	buf = varintEncodeValue(buf, int32(-12345), codec)

	v1, n1, ok1 := varintDecodeValue[int32](buf, codec)
	assert.True(t, ok1)
	assert.Equal(t, int32(300), v1)
	assert.Equal(t, firstLen, n1)

	v2, n2, ok2 := varintDecodeValue[int32](buf[n1:], codec)
	assert.True(t, ok2)
	assert.Equal(t, int32(-12345), v2)
	assert.Equal(t, len(buf)-n1, n2)
}

func TestVarintRoundTripSeq(t *testing.T) {
	values := []int32{0, 1, -1, 127, -128, 16384, -16384, math.MaxInt32, math.MinInt32}
	codec := zigzagCodec[int32]{}
	buf := varintEncodeSeq(nil, values, codec)

	got := make([]int32, len(values))
	n, ok := varintDecodeSeq(got, buf, codec)
	assert.True(t, ok)
	assert.Equal(t, len(buf), n)
	assert.Equal(t, values, got)
}

func TestVarintTruncatedIsCorrupt(t *testing.T) {
	codec := zigzagCodec[int32]{}
	buf := varintEncodeValue(nil, int32(1<<20), codec)
	_, _, ok := varintDecodeValue[int32](buf[:len(buf)-1], codec)
	assert.False(t, ok)
}

func TestVarintWidthSpace(t *testing.T) {
	assert.Equal(t, 1, varintWidthSpace(0))
	assert.Equal(t, 1, varintWidthSpace(7))
	assert.Equal(t, 2, varintWidthSpace(8))
	assert.Equal(t, 10, varintWidthSpace(64))
}

func TestVarintDecodeAt(t *testing.T) {
	values := []int32{5, -5, 1000, -1000, 0, 42}
	codec := zigzagCodec[int32]{}
	buf := varintEncodeSeq(nil, values, codec)

	for i, want := range values {
		got, ok := varintDecodeAt(buf, len(values), i, codec)
		assert.True(t, ok)
		assert.Equal(t, want, got, "index %d", i)
	}

	_, ok := varintDecodeAt(buf, len(values), len(values), codec)
	assert.False(t, ok)
	_, ok = varintDecodeAt(buf, len(values), -1, codec)
	assert.False(t, ok)
}

func TestVarintValueSpaceMatchesEncodedLength(t *testing.T) {
	codec := zigzagCodec[int32]{}
	for _, v := range []int32{0, 1, -1, 1000000, -1000000, math.MaxInt32, math.MinInt32} {
		buf := varintEncodeValue(nil, v, codec)
		assert.Equal(t, len(buf), varintValueSpace(v, codec))
	}
}
