package txfm

// fdct4 computes the forward 4-point DCT-II of arr in place. arr[0] and
// arr[2] come from the sum ("even") path shared with fdct8's even half;
// arr[1] and arr[3] come from the cospi48/cospi16 rotation of the "odd"
// (difference) path.
func fdct4(arr []int32, cosBit int) {
	if len(arr) != 4 {
		panic("txfm: fdct4 requires a 4-element slice")
	}
	cospi := cospiArrFor(cosBit)

	sum03 := arr[0] + arr[3]
	sum12 := arr[1] + arr[2]
	diff12 := arr[1] - arr[2]
	diff03 := arr[0] - arr[3]

	out0 := halfBtf(cospi[32], sum03, cospi[32], sum12, cosBit)
	out2 := halfBtf(cospi[32], sum03, -cospi[32], sum12, cosBit)
	out1 := halfBtf(cospi[48], diff12, cospi[16], diff03, cosBit)
	out3 := halfBtf(cospi[48], diff03, -cospi[16], diff12, cosBit)

	arr[0], arr[1], arr[2], arr[3] = out0, out1, out2, out3
}

// idct4 computes the inverse 4-point DCT-II of arr in place. stageRange
// bounds the final combine stage, in the same spirit as idct8's clamped
// stages.
func idct4(arr []int32, cosBit int, stageRange []uint) {
	if len(arr) != 4 {
		panic("txfm: idct4 requires a 4-element slice")
	}
	cospi := cospiArrFor(cosBit)

	step0 := halfBtf(cospi[32], arr[0], cospi[32], arr[2], cosBit)
	step1 := halfBtf(cospi[32], arr[0], -cospi[32], arr[2], cosBit)
	step2 := halfBtf(cospi[48], arr[1], -cospi[16], arr[3], cosBit)
	step3 := halfBtf(cospi[16], arr[1], cospi[48], arr[3], cosBit)

	last := stageRange[len(stageRange)-1]
	arr[0] = clampValue(step0+step3, last)
	arr[1] = clampValue(step1+step2, last)
	arr[2] = clampValue(step1-step2, last)
	arr[3] = clampValue(step0-step3, last)
}
