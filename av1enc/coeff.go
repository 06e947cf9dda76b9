package av1enc

import (
	"github.com/cocosip/go-tinyavif/array2d"
	"github.com/cocosip/go-tinyavif/cdf"
	"github.com/cocosip/go-tinyavif/consts"
)

// abs32 returns the absolute value of a coefficient. Coefficients never
// reach math.MinInt32 in this encoder (qindex >= 1 keeps magnitudes well
// within range), so the usual two's-complement overflow case is moot.
func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// signum8 returns -1, 0 or +1 according to the sign of v.
func signum8(v int32) int8 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// round2 rounds v/2^n to the nearest integer, halves rounding up. v is
// always non-negative at its call sites (magnitude sums).
func round2(v uint32, n uint) uint32 {
	return (v + (uint32(1) << n >> 1)) >> n
}

// floorLog2u is floorLog2 restricted to the coefficient coder's own use
// (ceilLog2's helper); v must be >= 1.
func floorLog2u(v int) int {
	n := -1
	for v != 0 {
		v >>= 1
		n++
	}
	return n
}

// ceilLog2 returns the smallest e such that 2^e >= n, for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return floorLog2u(n-1) + 1
}

// scanTable returns the zig-zag scan order for a txsize x txsize block.
func scanTable(txsize int) []consts.Pos {
	switch txsize {
	case 8:
		return consts.DefaultScan8x8[:]
	case 4:
		return consts.DefaultScan4x4[:]
	default:
		panic("av1enc: unsupported coefficient transform size")
	}
}

// encodeCoefficients entropy-codes one plane's quantized txsize x txsize
// coefficient block at MI position (miRow, miCol), updating info (the
// block's own ModeInfo accumulator, not yet visible to neighbors) and
// consulting mi for the previous generation's above/left neighbor context.
func (t *TileEncoder) encodeCoefficients(coeffs *array2d.Array2D[int32], plane, miRow, miCol, txsize int) {
	scan := scanTable(txsize)
	numCoeffs := txsize * txsize

	ptype := planeLuma
	if plane != 0 {
		ptype = planeChroma
	}
	txsCtx := 0
	if txsize == 8 {
		txsCtx = 1
	}
	qctx := t.qctx

	eob := 0
	culLevel := int32(0)
	for c := 0; c < numCoeffs; c++ {
		pos := scan[c]
		v := coeffs.At(int(pos.Row), int(pos.Col))
		culLevel += abs32(v)
		if v != 0 {
			eob = c + 1
		}
	}
	if culLevel > 63 {
		culLevel = 63
	}
	info := &t.blockInfo
	info.LevelCtx[plane] = uint8(culLevel)

	allZeroCtx := 0
	if plane != 0 {
		aboveNonzero, leftNonzero := 0, 0
		if above, ok := t.mi.Above(miRow, miCol); ok && (above.LevelCtx[plane] != 0 || above.DCSign[plane] != 0) {
			aboveNonzero = 1
		}
		if left, ok := t.mi.Left(miRow, miCol); ok && (left.LevelCtx[plane] != 0 || left.DCSign[plane] != 0) {
			leftNonzero = 1
		}
		allZeroCtx = 7 + aboveNonzero + leftNonzero
	}
	allZeroSymbol := 0
	if eob == 0 {
		allZeroSymbol = 1
	}
	t.bw.WriteSymbol(allZeroSymbol, cdf.AllZero[qctx][txsCtx][allZeroCtx:allZeroCtx+1])

	if eob == 0 {
		info.DCSign[plane] = 0
		return
	}

	if plane == 0 {
		t.bw.WriteSymbol(1, cdf.TxType[1][0]) // DCT_DCT, the only type this encoder emits
	}

	eobClass := ceilLog2(eob)
	if plane == 0 {
		t.bw.WriteSymbol(eobClass, cdf.EobClass64[qctx][ptype][:])
	} else {
		t.bw.WriteSymbol(eobClass, cdf.EobClass16[qctx][ptype][:])
	}

	if eobClass > 1 {
		extra := eob - ((1 << uint(eobClass-1)) + 1)
		shift := uint(eobClass - 2)
		firstBit := extra >> shift
		remainder := extra & ((1 << shift) - 1)
		t.bw.WriteSymbol(firstBit, cdf.EobExtra[qctx][txsCtx][ptype][eobClass-2:eobClass-1])
		if shift > 0 {
			t.bw.WriteLiteral(uint64(remainder), int(shift))
		}
	}

	for c := eob - 1; c >= 0; c-- {
		pos := scan[c]
		row, col := int(pos.Row), int(pos.Col)
		coeff := coeffs.At(row, col)
		absCoeff := abs32(coeff)

		if c == eob-1 {
			baseEobCtx := 0
			switch {
			case c == 0:
				baseEobCtx = 0
			case c <= numCoeffs/8:
				baseEobCtx = 1
			case c <= numCoeffs/4:
				baseEobCtx = 2
			default:
				baseEobCtx = 3
			}
			symbol := int(absCoeff) - 1
			if symbol > 2 {
				symbol = 2
			}
			t.bw.WriteSymbol(symbol, cdf.CoeffBaseEob[qctx][txsCtx][ptype][baseEobCtx])
		} else {
			baseCtx := 0
			if c != 0 {
				mag := uint32(0)
				for _, off := range consts.SigRefDiffOffset {
					r, cc := row+int(off.Row), col+int(off.Col)
					if r < txsize && cc < txsize {
						m := abs32(coeffs.At(r, cc))
						if m > 3 {
							m = 3
						}
						mag += uint32(m)
					}
				}
				rowCap, colCap := row, col
				if rowCap > 4 {
					rowCap = 4
				}
				if colCap > 4 {
					colCap = 4
				}
				part := round2(mag, 1)
				if part > 4 {
					part = 4
				}
				baseCtx = int(part) + int(consts.CoeffBaseCtxOffset8x8[rowCap][colCap])
			}
			symbol := int(absCoeff)
			if symbol > 3 {
				symbol = 3
			}
			t.bw.WriteSymbol(symbol, cdf.CoeffBase[qctx][txsCtx][ptype][baseCtx])
		}

		if absCoeff > 2 {
			mag := uint32(0)
			for _, off := range consts.MagRefOffset {
				r, cc := row+int(off.Row), col+int(off.Col)
				if r < txsize && cc < txsize {
					m := abs32(coeffs.At(r, cc))
					if m > 15 {
						m = 15
					}
					mag += uint32(m)
				}
			}
			magPart := round2(mag, 1)
			if magPart > 6 {
				magPart = 6
			}
			locPart := 0
			switch {
			case c == 0:
				locPart = 0
			case row < 2 && col < 2:
				locPart = 7
			default:
				locPart = 14
			}
			brCtx := int(magPart) + locPart

			remaining := absCoeff - 3
			for i := 0; i < 4; i++ {
				v := remaining
				if v > 3 {
					v = 3
				}
				t.bw.WriteSymbol(int(v), cdf.CoeffBr[qctx][txsCtx][ptype][brCtx])
				remaining -= v
				if v < 3 {
					break
				}
			}
		}
	}

	dcCoeff := coeffs.At(0, 0)
	if dcCoeff != 0 {
		aboveSign, leftSign := int8(0), int8(0)
		if above, ok := t.mi.Above(miRow, miCol); ok {
			aboveSign = above.DCSign[plane]
		}
		if left, ok := t.mi.Left(miRow, miCol); ok {
			leftSign = left.DCSign[plane]
		}
		signSum := int(aboveSign) + int(leftSign)
		dcSignCtx := 0
		switch {
		case signSum < 0:
			dcSignCtx = 1
		case signSum > 0:
			dcSignCtx = 2
		}

		negative := 0
		if dcCoeff < 0 {
			negative = 1
		}
		t.bw.WriteSymbol(negative, cdf.DcSign[qctx][ptype][dcSignCtx:dcSignCtx+1])

		absDC := abs32(dcCoeff)
		if absDC >= 15 {
			t.bw.WriteGolomb(uint64(absDC - 15))
		}
	}
	info.DCSign[plane] = signum8(dcCoeff)

	for c := 1; c < eob; c++ {
		pos := scan[c]
		v := coeffs.At(int(pos.Row), int(pos.Col))
		if v == 0 {
			continue
		}
		negative := uint64(0)
		if v < 0 {
			negative = 1
		}
		t.bw.WriteLiteral(negative, 1)

		absV := abs32(v)
		if absV >= 15 {
			t.bw.WriteGolomb(uint64(absV - 15))
		}
	}
}

