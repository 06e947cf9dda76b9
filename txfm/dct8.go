package txfm

// fdct8 computes the forward 8-point DCT-II of arr in place as the staged
// butterfly network AV1 specifies.
func fdct8(arr []int32, cosBit int) {
	if len(arr) != 8 {
		panic("txfm: fdct8 requires an 8-element slice")
	}
	cospi := cospiArrFor(cosBit)

	stage1 := [8]int32{
		arr[0] + arr[7],
		arr[1] + arr[6],
		arr[2] + arr[5],
		arr[3] + arr[4],
		-arr[4] + arr[3],
		-arr[5] + arr[2],
		-arr[6] + arr[1],
		-arr[7] + arr[0],
	}

	stage2 := [8]int32{
		stage1[0] + stage1[3],
		stage1[1] + stage1[2],
		-stage1[2] + stage1[1],
		-stage1[3] + stage1[0],
		stage1[4],
		halfBtf(-cospi[32], stage1[5], cospi[32], stage1[6], cosBit),
		halfBtf(cospi[32], stage1[6], cospi[32], stage1[5], cosBit),
		stage1[7],
	}

	stage3 := [8]int32{
		halfBtf(cospi[32], stage2[0], cospi[32], stage2[1], cosBit),
		halfBtf(-cospi[32], stage2[1], cospi[32], stage2[0], cosBit),
		halfBtf(cospi[48], stage2[2], cospi[16], stage2[3], cosBit),
		halfBtf(cospi[48], stage2[3], -cospi[16], stage2[2], cosBit),
		stage2[4] + stage2[5],
		-stage2[5] + stage2[4],
		-stage2[6] + stage2[7],
		stage2[7] + stage2[6],
	}

	stage4 := [8]int32{
		stage3[0],
		stage3[1],
		stage3[2],
		stage3[3],
		halfBtf(cospi[56], stage3[4], cospi[8], stage3[7], cosBit),
		halfBtf(cospi[24], stage3[5], cospi[40], stage3[6], cosBit),
		halfBtf(cospi[24], stage3[6], -cospi[40], stage3[5], cosBit),
		halfBtf(cospi[56], stage3[7], -cospi[8], stage3[4], cosBit),
	}

	stage5 := [8]int32{
		stage4[0], stage4[4], stage4[2], stage4[6],
		stage4[1], stage4[5], stage4[3], stage4[7],
	}

	copy(arr, stage5[:])
}

// idct8 computes the inverse 8-point DCT-II of arr in place. stageRange
// supplies the clamping bit-widths applied to stages 3 through 5 (indices
// 3, 4 and 5).
func idct8(arr []int32, cosBit int, stageRange []uint) {
	if len(arr) != 8 {
		panic("txfm: idct8 requires an 8-element slice")
	}
	cospi := cospiArrFor(cosBit)

	stage1 := [8]int32{
		arr[0], arr[4], arr[2], arr[6],
		arr[1], arr[5], arr[3], arr[7],
	}

	stage2 := [8]int32{
		stage1[0],
		stage1[1],
		stage1[2],
		stage1[3],
		halfBtf(cospi[56], stage1[4], -cospi[8], stage1[7], cosBit),
		halfBtf(cospi[24], stage1[5], -cospi[40], stage1[6], cosBit),
		halfBtf(cospi[40], stage1[5], cospi[24], stage1[6], cosBit),
		halfBtf(cospi[8], stage1[4], cospi[56], stage1[7], cosBit),
	}

	stage3 := [8]int32{
		halfBtf(cospi[32], stage2[0], cospi[32], stage2[1], cosBit),
		halfBtf(cospi[32], stage2[0], -cospi[32], stage2[1], cosBit),
		halfBtf(cospi[48], stage2[2], -cospi[16], stage2[3], cosBit),
		halfBtf(cospi[16], stage2[2], cospi[48], stage2[3], cosBit),
		clampValue(stage2[4]+stage2[5], stageRange[3]),
		clampValue(stage2[4]-stage2[5], stageRange[3]),
		clampValue(-stage2[6]+stage2[7], stageRange[3]),
		clampValue(stage2[6]+stage2[7], stageRange[3]),
	}

	stage4 := [8]int32{
		clampValue(stage3[0]+stage3[3], stageRange[4]),
		clampValue(stage3[1]+stage3[2], stageRange[4]),
		clampValue(stage3[1]-stage3[2], stageRange[4]),
		clampValue(stage3[0]-stage3[3], stageRange[4]),
		stage3[4],
		halfBtf(-cospi[32], stage3[5], cospi[32], stage3[6], cosBit),
		halfBtf(cospi[32], stage3[5], cospi[32], stage3[6], cosBit),
		stage3[7],
	}

	stage5 := [8]int32{
		clampValue(stage4[0]+stage4[7], stageRange[5]),
		clampValue(stage4[1]+stage4[6], stageRange[5]),
		clampValue(stage4[2]+stage4[5], stageRange[5]),
		clampValue(stage4[3]+stage4[4], stageRange[5]),
		clampValue(stage4[3]-stage4[4], stageRange[5]),
		clampValue(stage4[2]-stage4[5], stageRange[5]),
		clampValue(stage4[1]-stage4[6], stageRange[5]),
		clampValue(stage4[0]-stage4[7], stageRange[5]),
	}

	copy(arr, stage5[:])
}
