package oroch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockCapacity(t *testing.T) {
	assert.Equal(t, 128, blockCapacity(1))
	assert.Equal(t, 16, blockCapacity(8))
	assert.Equal(t, 2, blockCapacity(64))
}

func TestBitpackSpaceMonotone(t *testing.T) {
	// spec.md §8 "Monotone bit-pack space": for fixed nvalues, space is
	// non-decreasing in nbits.
	for nvalues := 1; nvalues <= 300; nvalues += 37 {
		prev := 0
		for nbits := 1; nbits <= 64; nbits++ {
			space := bitpackSpace(nvalues, nbits)
			assert.GreaterOrEqual(t, space, prev)
			prev = space
		}
	}
}

func TestBitpackSpaceEmpty(t *testing.T) {
	assert.Equal(t, 0, bitpackSpace(0, 5))
}

func TestBitpackRoundTripAllWidths(t *testing.T) {
	// Sweep every width for uint64, including the straddling-value case
	// (index == capacity/2, split across the u/v word boundary) and
	// unaligned tails.
	for nbits := 1; nbits <= 64; nbits++ {
		mask := widthMask(nbits)
		c := blockCapacity(nbits)
		for _, nvalues := range []int{1, c - 1, c, c + 1, 2*c + 3} {
			if nvalues <= 0 {
				continue
			}
			values := make([]uint64, nvalues)
			for i := range values {
				values[i] = uint64(i*2654435761+7) & mask
			}

			codec := zigzagCodec[uint64]{}
			buf := bitpackEncode(nil, values, nbits, codec)
			assert.Equal(t, bitpackSpace(nvalues, nbits), len(buf))

			got := make([]uint64, nvalues)
			bitpackDecode(got, buf, nbits, codec)
			assert.Equal(t, values, got, "nbits=%d nvalues=%d", nbits, nvalues)

			for i, want := range values {
				assert.Equal(t, want, bitpackFetch(buf, i, nbits, codec),
					"fetch nbits=%d nvalues=%d i=%d", nbits, nvalues, i)
			}
		}
	}
}

func TestFetchBlockStraddleBoundary(t *testing.T) {
	// Exercise the case where index == m and the value straddles the
	// u/v word boundary (mbits != 64).
	const nbits = 5 // capacity = 25, m = 12, mbits = 60 != 64
	c := blockCapacity(nbits)
	assert.Equal(t, 25, c)

	values := make([]uint16, c)
	for i := range values {
		values[i] = uint16(i + 1)
	}
	codec := zigzagCodec[uint16]{}
	buf := make([]byte, blockBytes)
	n := packBlock(buf, values, codec, nbits)
	assert.Equal(t, c, n)

	for i, want := range values {
		assert.Equal(t, want, fetchBlock(buf, i, nbits, codec), "i=%d", i)
	}
}

func TestFetchBlockExactWordBoundary(t *testing.T) {
	// nbits such that capacity is even and mbits == 64 exactly (no
	// straddling value): nbits=8, capacity=16, m=8, mbits=64.
	const nbits = 8
	c := blockCapacity(nbits)
	assert.Equal(t, 16, c)

	values := make([]uint16, c)
	for i := range values {
		values[i] = uint16(i * 3)
	}
	codec := zigzagCodec[uint16]{}
	buf := make([]byte, blockBytes)
	packBlock(buf, values, codec, nbits)

	for i, want := range values {
		assert.Equal(t, want, fetchBlock(buf, i, nbits, codec), "i=%d", i)
	}
}
