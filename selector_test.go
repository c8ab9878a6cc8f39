package oroch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectEncodingEmpty(t *testing.T) {
	meta := selectEncoding([]int32{})
	assert.Equal(t, TagNormal, meta.valueDesc.encoding)
	assert.Equal(t, 0, meta.valueDesc.dataspace)
}

func TestSelectEncodingConstant(t *testing.T) {
	meta := selectEncoding([]int32{7, 7, 7, 7, 7})
	assert.Equal(t, TagNaught, meta.valueDesc.encoding)
	assert.Equal(t, int32(7), meta.valueDesc.origin)
	assert.Equal(t, 0, meta.valueDesc.dataspace)
}

func TestSelectEncodingSingleton(t *testing.T) {
	meta := selectEncoding([]int32{42})
	assert.Equal(t, TagNaught, meta.valueDesc.encoding)
	assert.Equal(t, int32(42), meta.valueDesc.origin)
}

func TestSelectEncodingSmallRangeBeatsNormal(t *testing.T) {
	values := make([]int32, 50)
	for i := range values {
		values[i] = int32(1_000_000 + (i % 4))
	}
	meta := selectEncoding(values)
	// Range fits in 2 bits, but every value is far from zero, so normal
	// (4 bytes/value) and plain varint (3+ bytes/value) are both far
	// more expensive than a frame-of-reference encoding.
	assert.NotEqual(t, TagNormal, meta.valueDesc.encoding)
	assert.NotEqual(t, TagVarint, meta.valueDesc.encoding)
	assert.Less(t, meta.valueDesc.dataspace+meta.valueDesc.metaspace, normalSpace[int32](len(values)))
}

func TestSelectEncodingDeterministic(t *testing.T) {
	values := []int32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}
	m1 := selectEncoding(values)
	m2 := selectEncoding(values)
	assert.Equal(t, m1.valueDesc.encoding, m2.valueDesc.encoding)
	assert.Equal(t, m1.valueDesc.nbits, m2.valueDesc.nbits)
	assert.Equal(t, m1.valueDesc.origin, m2.valueDesc.origin)
}

func TestSelectEncodingHeavyOutliersPrefersBitpfr(t *testing.T) {
	// A long run of a narrow range with a handful of far-away outliers:
	// the classic case patched bit-packing is built for.
	values := make([]int32, 200)
	for i := range values {
		values[i] = int32(i % 3)
	}
	values[10] = 1_000_000
	values[100] = 2_000_000
	values[150] = 500_000

	meta := selectEncoding(values)
	assert.Equal(t, TagBitpfr, meta.valueDesc.encoding)
	assert.Equal(t, 3, meta.noutliers)
}

func TestSelectEncodingFewValuesNeverBitpfr(t *testing.T) {
	// select only considers bitpfr once nvalues >= 5.
	values := []int32{0, 1, 1_000_000}
	meta := selectEncoding(values)
	assert.NotEqual(t, TagBitpfr, meta.valueDesc.encoding)
}
