// Package txfm implements AV1's fixed-point forward and inverse DCT-4 and
// DCT-8 transforms and their separable 2D composition.
package txfm

// cospiArr holds the AV1 cosine lookup table at four fixed-point
// precisions (10..13 bits), indexed by [cosBit-10][i], where
// cospiArr[b][i] == round((1<<cosBit) * cos(i*pi/128)).
var cospiArr = [4][64]int32{
	{
		1024, 1024, 1023, 1021, 1019, 1016, 1013, 1009,
		1004, 999, 993, 987, 980, 972, 964, 955,
		946, 936, 926, 915, 903, 891, 878, 865,
		851, 837, 822, 807, 792, 775, 759, 742,
		724, 706, 688, 669, 650, 630, 610, 590,
		569, 548, 526, 505, 483, 460, 438, 415,
		392, 369, 345, 321, 297, 273, 249, 224,
		200, 175, 150, 125, 100, 75, 50, 25,
	},
	{
		2048, 2047, 2046, 2042, 2038, 2033, 2026, 2018,
		2009, 1998, 1987, 1974, 1960, 1945, 1928, 1911,
		1892, 1872, 1851, 1829, 1806, 1782, 1757, 1730,
		1703, 1674, 1645, 1615, 1583, 1551, 1517, 1483,
		1448, 1412, 1375, 1338, 1299, 1260, 1220, 1179,
		1138, 1096, 1053, 1009, 965, 921, 876, 830,
		784, 737, 690, 642, 595, 546, 498, 449,
		400, 350, 301, 251, 201, 151, 100, 50,
	},
	{
		4096, 4095, 4091, 4085, 4076, 4065, 4052, 4036,
		4017, 3996, 3973, 3948, 3920, 3889, 3857, 3822,
		3784, 3745, 3703, 3659, 3612, 3564, 3513, 3461,
		3406, 3349, 3290, 3229, 3166, 3102, 3035, 2967,
		2896, 2824, 2751, 2675, 2598, 2520, 2440, 2359,
		2276, 2191, 2106, 2019, 1931, 1842, 1751, 1660,
		1567, 1474, 1380, 1285, 1189, 1092, 995, 897,
		799, 700, 601, 501, 401, 301, 201, 101,
	},
	{
		8192, 8190, 8182, 8170, 8153, 8130, 8103, 8071,
		8035, 7993, 7946, 7895, 7839, 7779, 7713, 7643,
		7568, 7489, 7405, 7317, 7225, 7128, 7027, 6921,
		6811, 6698, 6580, 6458, 6333, 6203, 6070, 5933,
		5793, 5649, 5501, 5351, 5197, 5040, 4880, 4717,
		4551, 4383, 4212, 4038, 3862, 3683, 3503, 3320,
		3135, 2948, 2760, 2570, 2378, 2185, 1990, 1795,
		1598, 1401, 1202, 1003, 803, 603, 402, 201,
	},
}

// cospiArrFor returns the cosBit-precision cosine table, cosBit in [10,13].
func cospiArrFor(cosBit int) *[64]int32 {
	if cosBit < 10 || cosBit > 13 {
		panic("txfm: cos_bit out of range")
	}
	return &cospiArr[cosBit-10]
}

// round2 divides value by 2^n with rounding to nearest (halves toward
// +infinity), using plain int32 wraparound throughout — n is always small
// enough, and values always small enough in this encoder's 8-bit-depth
// transforms, that this never differs from exact arithmetic in practice.
func round2(value int32, n uint) int32 {
	offset := int32(1) << n >> 1
	return (value + offset) >> n
}

// halfBtf computes round2(w0*in0 + w1*in1, cosBit) using wrapping 32-bit
// arithmetic throughout, inlining round2 the same way the encoder's own
// half_btf does. Go's int32 arithmetic wraps on overflow by language
// definition, so this requires no explicit wrapping helpers.
func halfBtf(w0, in0, w1, in1 int32, cosBit int) int32 {
	tmp := w0*in0 + w1*in1
	offset := int32(1) << uint(cosBit-1)
	return (tmp + offset) >> uint(cosBit)
}

// clampValue clamps value to the signed range representable in rangeBits
// bits, via int64 intermediates so the rangeBits==32 boundary case never
// overflows while computing the bounds.
func clampValue(value int32, rangeBits uint) int32 {
	min64 := -(int64(1) << (rangeBits - 1))
	max64 := (int64(1) << (rangeBits - 1)) - 1
	v := int64(value)
	if v < min64 {
		v = min64
	}
	if v > max64 {
		v = max64
	}
	return int32(v)
}

func clampArray(arr []int32, bits uint) {
	for i := range arr {
		arr[i] = clampValue(arr[i], bits)
	}
}

// roundShiftArray divides every element of arr by 2^bits with rounding;
// bits may be negative, in which case elements are scaled up (left-shifted)
// instead, matching the encoder's round_shift_array.
func roundShiftArray(arr []int32, bits int) {
	if bits == 0 {
		return
	}
	if bits < 0 {
		shift := uint(-bits)
		for i := range arr {
			tmp := int64(arr[i]) << shift
			arr[i] = saturateInt32(tmp)
		}
		return
	}
	shift := uint(bits)
	for i := range arr {
		arr[i] = round2(arr[i], shift)
	}
}

func saturateInt32(v int64) int32 {
	const maxI32 = int64(1<<31 - 1)
	const minI32 = -int64(1 << 31)
	if v > maxI32 {
		return int32(maxI32)
	}
	if v < minI32 {
		return int32(minI32)
	}
	return int32(v)
}
