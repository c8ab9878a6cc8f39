package oroch

// Encoding selector: picks the cheapest encoding for a sequence of values,
// by estimating each candidate's wire footprint and keeping the smallest.
// Grounded on oroch/integer_codec.h's integer_codec::select/select_basic
// and detail::encoding_statistics.

// statistics collects the summary data the selector needs: the value
// count, min/max, and (only when a bitpfr sweep is worthwhile) a bit-length
// histogram of value-minus-min deltas. Grounded on
// integer_codec.h's detail::encoding_statistics.
type statistics[T Integer] struct {
	nvalues int
	min     T
	max     T

	// histogram[b] counts how many values need exactly b bits to
	// represent (value - min) in the unsigned domain, for b in
	// [0, widthOf[T]()].
	histogram []int
}

func collectStatistics[T Integer](values []T) statistics[T] {
	var st statistics[T]
	st.nvalues = len(values)
	if st.nvalues == 0 {
		return st
	}
	st.min, st.max = values[0], values[0]
	for _, v := range values[1:] {
		if v < st.min {
			st.min = v
		}
		if v > st.max {
			st.max = v
		}
	}
	return st
}

func (st *statistics[T]) normalspace() int {
	return st.nvalues * (widthOf[T]() / 8)
}

func (st *statistics[T]) buildHistogram(values []T) {
	st.histogram = make([]int, widthOf[T]()+1)
	for _, v := range values {
		delta := uint64(v) - uint64(st.min)
		st.histogram[usedCountU64(delta, widthOf[T]())]++
	}
}

// selectEncoding picks the cheapest encoding for values and returns the resulting
// metadata. Mirrors integer_codec::select: trivial cases first, then a
// basic-candidate comparison, then — when there are enough values to make
// it worthwhile — a histogram-driven sweep for patched bit-packing.
func selectEncoding[T Integer](values []T) metadata[T] {
	var meta metadata[T]

	st := collectStatistics(values)

	if st.nvalues == 0 {
		meta.valueDesc.encoding = TagNormal
		meta.valueDesc.dataspace = 0
		meta.valueDesc.metaspace = 0
		return meta
	}

	if st.min == st.max {
		meta.valueDesc.encoding = TagNaught
		meta.valueDesc.dataspace = 0
		meta.valueDesc.metaspace = varintValueSpace(st.min, zigzagCodec[T]{})
		meta.valueDesc.origin = st.min
		return meta
	}

	selectBasic(&meta.valueDesc, &st, values)
	if st.nvalues < 5 {
		return meta
	}

	selectBitpfr(&meta, &st, values)
	return meta
}

// compare replaces desc with the given candidate if its total footprint
// (dataspace + metaspace) is strictly smaller than desc's current
// footprint. Ties keep the earlier (already chosen) candidate — this
// matters because candidates are tried in a fixed order and the selector
// must be deterministic. Grounded on integer_codec::compare.
func compare[T Integer](desc *descriptor[T], encoding Tag, metaspace, dataspace int, origin T, nbits int) {
	if (dataspace + metaspace) < (desc.dataspace + desc.metaspace) {
		desc.encoding = encoding
		desc.dataspace = dataspace
		desc.metaspace = metaspace
		desc.origin = origin
		desc.nbits = nbits
	}
}

// selectBasic compares the normal, bitpck, bitfor, varint, and varfor
// candidates and leaves the cheapest in desc. Grounded on
// integer_codec::select_basic.
func selectBasic[T Integer](desc *descriptor[T], st *statistics[T], values []T) {
	desc.encoding = TagNormal
	desc.dataspace = st.normalspace()
	desc.metaspace = 0
	desc.origin = 0
	desc.nbits = 0

	// bitpck: bit-pack the zigzag-encoded values directly, width sized
	// to the larger zigzag code of min and max. Zigzag is not monotonic
	// over the whole range, but it grows with magnitude on each side of
	// zero, so the two extremes bound every in-between value's code.
	var umax uint64
	if isSigned[T]() {
		zmin := zigzagEncode(st.min)
		zmax := zigzagEncode(st.max)
		umax = zmin
		if zmax > umax {
			umax = zmax
		}
	} else {
		umax = uint64(st.max)
	}
	nbits := usedCountU64(umax, widthOf[T]())
	dataspace := bitpackSpace(st.nvalues, nbits)
	compare(desc, TagBitpck, 1, dataspace, T(0), nbits)

	// bitfor: bit-pack value - min, width sized to the range.
	rng := uint64(st.max) - uint64(st.min)
	nbits = usedCountU64(rng, widthOf[T]())
	dataspace = bitpackSpace(st.nvalues, nbits)
	metaspace := 1 + varintValueSpace(st.min, zigzagCodec[T]{})
	compare(desc, TagBitfor, metaspace, dataspace, st.min, nbits)

	// varint / varfor: exact footprint, one pass over the data.
	orig := newOriginCodec(st.min)
	vispace, vfspace := 0, 0
	for _, v := range values {
		vispace += varintValueSpace(v, zigzagCodec[T]{})
		vfspace += varintValueSpace(v, orig)
	}
	metaspace = varintValueSpace(st.min, zigzagCodec[T]{})

	compare(desc, TagVarint, 0, vispace, T(0), 0)
	compare(desc, TagVarfor, metaspace, vfspace, st.min, 0)
}

// selectBitpfr sweeps candidate bit widths for patched bit-packing and
// replaces meta's descriptors if a cheaper-than-basic encoding is found.
// Grounded on integer_codec::select's second half.
func selectBitpfr[T Integer](meta *metadata[T], st *statistics[T], values []T) {
	basicMetaspace := 1 + varintValueSpace(st.min, zigzagCodec[T]{})

	rng := uint64(st.max) - uint64(st.min)
	nbitsMax := usedCountU64(rng, widthOf[T]())

	st.buildHistogram(values)
	noutliers := st.nvalues - st.histogram[0]

	for nbits := 1; nbits < nbitsMax; nbits++ {
		n := st.histogram[nbits]
		if n == 0 {
			continue
		}
		noutliers -= n

		basicDataspace := bitpackSpace(st.nvalues, nbits)
		extraMetaspace := 2 + varintValueSpace(uint64(noutliers), zigzagCodec[uint64]{})

		valpck := bitpackSpace(noutliers, nbitsMax-nbits)

		valvar := 0
		for nb := nbits + 1; nb <= nbitsMax; nb++ {
			valvar += varintWidthSpace(nb-nbits) * st.histogram[nb]
		}

		var valueEncoding Tag
		var valueDataspace int
		if valpck < valvar {
			valueEncoding = TagBitpck
			valueDataspace = valpck
		} else {
			valueEncoding = TagVarint
			valueDataspace = valvar
		}

		indmin := bitpackSpace(noutliers, 1)
		if indmin > st.nvalues {
			indmin = st.nvalues
		}
		estimate := basicMetaspace + extraMetaspace + basicDataspace + valueDataspace + indmin
		selected := meta.valueDesc.dataspace + meta.valueDesc.metaspace
		if estimate >= selected {
			continue
		}

		indnbits, indvar := 1, 0
		indexCodec := newOffsetCodec[uint64](0, 1, false)
		for i, v := range values {
			u := (uint64(v) - uint64(st.min)) >> uint(nbits)
			if u == 0 {
				continue
			}
			j := indexCodec.encode(uint64(i))
			inb := usedCountU64(j, 64)
			if indnbits < inb {
				indnbits = inb
			}
			indvar += varintValueSpace(j, zigzagCodec[uint64]{})
		}
		indpck := bitpackSpace(noutliers, indnbits)

		var indexEncoding Tag
		var indexDataspace int
		if indpck < indvar {
			indexEncoding = TagBitpck
			indexDataspace = indpck
		} else {
			indexEncoding = TagVarint
			indexDataspace = indvar
		}

		required := basicMetaspace + extraMetaspace + basicDataspace + valueDataspace + indexDataspace
		if required < selected {
			meta.valueDesc.encoding = TagBitpfr
			meta.valueDesc.origin = st.min
			meta.valueDesc.nbits = nbits

			meta.noutliers = noutliers
			meta.outlierValueDesc.encoding = valueEncoding
			meta.outlierValueDesc.nbits = nbitsMax - nbits
			meta.outlierIndexDesc.encoding = indexEncoding
			meta.outlierIndexDesc.nbits = indnbits

			meta.valueDesc.metaspace = basicMetaspace + extraMetaspace
			meta.valueDesc.dataspace = basicDataspace + valueDataspace + indexDataspace
		}
	}
}
