package oroch

// Array is a growable sequence of integers stored as a chain of
// fixed-size, independently-encoded Group blobs plus a small uncompressed
// tail. Grounded on oroch/integer_array.h (detail::array_integer_group,
// integer_array).
//
// Values only become compressed once groupSize of them accumulate in the
// tail; until then they sit in the tail uncompressed, so fewer than
// groupSize elements are ever held uncompressed. An Insert before the tail
// re-encodes every group from the insertion point onward.
//
// Array is not safe for concurrent use.
type Array[T Integer] struct {
	// tail holds the most recent elements not yet folded into a group
	// (0 to groupSize-1 of them).
	tail []T
	// groups holds one encoded blob per complete groupSize-element group,
	// in order.
	groups [][]byte
}

// groupSize is the fixed number of elements folded into each encoded
// group. oroch/integer_array.h fixes this at 256.
const groupSize = 256

// notFound is returned by Find when value is absent.
const notFound = -1

// Len returns the number of elements in the array.
func (a *Array[T]) Len() int {
	return len(a.groups)*groupSize + len(a.tail)
}

// Empty reports whether the array has no elements.
func (a *Array[T]) Empty() bool {
	return len(a.groups) == 0 && len(a.tail) == 0
}

// Clear removes every element from the array.
func (a *Array[T]) Clear() {
	a.groups = nil
	a.tail = nil
}

// At returns the element at the given position, or ErrInvalidArgument if
// npos is out of range.
func (a *Array[T]) At(npos int) (T, error) {
	if npos < 0 || npos >= a.Len() {
		return T(0), ErrInvalidArgument
	}
	group := npos / groupSize
	index := npos % groupSize
	if group < len(a.groups) {
		var buf [groupSize]T
		if err := (Group[T]{}).Decode(buf[:], a.groups[group]); err != nil {
			return T(0), err
		}
		return buf[index], nil
	}
	return a.tail[index], nil
}

// Find returns the position of the first element equal to value, or
// notFound if it is absent.
func (a *Array[T]) Find(value T) int {
	for group := range a.groups {
		if index := groupFind(a.groups[group], value); index != notFound {
			return group*groupSize + index
		}
	}
	for i, v := range a.tail {
		if v == value {
			return len(a.groups)*groupSize + i
		}
	}
	return notFound
}

// Insert places value at position arrayIndex, shifting every later element
// one position forward. Because groups are encoded as fixed blobs, an
// insertion into a full group decodes it, shifts in place, re-encodes it,
// and carries the group's displaced last element into the next group —
// cascading down to the tail. Each group shifted costs one O(groupSize)
// decode and re-encode, so an insertion near the front of a long array
// touches every group. Grounded on integer_array::insert.
func (a *Array[T]) Insert(arrayIndex int, value T) error {
	ngroups := len(a.groups)
	group := arrayIndex / groupSize
	index := arrayIndex % groupSize
	if group > ngroups || (group == ngroups && index > len(a.tail)) {
		return ErrInvalidArgument
	}

	g := Group[T]{}
	for ; group < ngroups; group++ {
		var buf [groupSize]T
		if err := g.Decode(buf[:], a.groups[group]); err != nil {
			return err
		}

		saveValue := buf[groupSize-1]
		copy(buf[index+1:groupSize], buf[index:groupSize-1])
		buf[index] = value

		a.groups[group] = g.Encode(buf[:])
		value = saveValue
		index = 0
	}

	a.tail = append(a.tail, value)
	copy(a.tail[index+1:], a.tail[index:len(a.tail)-1])
	a.tail[index] = value

	if len(a.tail) == groupSize {
		a.groups = append(a.groups, g.Encode(a.tail))
		a.tail = a.tail[:0]
	}
	return nil
}

// groupFind locates value within a single encoded group blob, taking the
// cheap per-encoding shortcuts oroch/integer_array.h's
// array_integer_group::find does (exact match against a constant, a
// linear scan over a decodable-in-place encoding, or an nbits bound that
// can rule a bit-packed/FOR group out without decoding it) before falling
// back to a full decode.
func groupFind[T Integer](blob []byte, value T) int {
	meta, pos, ok := decodeMetadata[T](blob)
	if !ok {
		return notFound
	}
	pos = alignedOffset(pos)
	if pos > len(blob) {
		return notFound
	}
	data := blob[pos:]

	switch meta.valueDesc.encoding {
	case TagNaught:
		if value == meta.valueDesc.origin {
			return 0
		}
		return notFound
	case TagNormal:
		for i := 0; i < groupSize; i++ {
			if normalFetch[T](data, i) == value {
				return i
			}
		}
		return notFound
	case TagVarint:
		for i := 0; i < groupSize; i++ {
			v, ok := varintDecodeAt(data, groupSize, i, zigzagCodec[T]{})
			if !ok {
				return notFound
			}
			if v == value {
				return i
			}
		}
		return notFound
	case TagBitpck:
		nbits := usedCountU64(zigzagEncode(value), widthOf[T]())
		if nbits > meta.valueDesc.nbits {
			return notFound
		}
	case TagBitfor:
		nbits := usedCountU64(uint64(value)-uint64(meta.valueDesc.origin), widthOf[T]())
		if nbits > meta.valueDesc.nbits {
			return notFound
		}
	}

	var buf [groupSize]T
	if err := (Group[T]{}).Decode(buf[:], blob); err != nil {
		return notFound
	}
	for i, v := range buf {
		if v == value {
			return i
		}
	}
	return notFound
}
