// Package recon implements the prediction, transform/quantize/dequantize
// and reconstruction pipeline a block goes through once its mode and
// quantizer have been decided: predict -> residual -> forward transform
// -> quantize (encode side) / dequantize -> inverse transform -> add back
// onto the prediction (both sides, since the encoder must reconstruct
// exactly what the decoder will see in order to predict later blocks from
// it).
package recon

import (
	"golang.org/x/exp/constraints"

	"github.com/cocosip/go-tinyavif/array2d"
	"github.com/cocosip/go-tinyavif/txfm"
)

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DCPredict fills the h x w region of pixels starting at (y0, x0) with
// the DC_PRED value: the average of the row above and the column to the
// left, whichever are available, falling back to 128 when this is the
// top-left block of the frame. This is the only intra prediction mode
// this encoder emits.
func DCPredict(pixels *array2d.Array2D[uint8], y0, x0, h, w int) {
	haveLeft := x0 > 0
	haveAbove := y0 > 0

	sum := 0
	if haveAbove {
		above := pixels.Row(y0 - 1)
		for j := 0; j < w; j++ {
			sum += int(above[x0+j])
		}
	}
	if haveLeft {
		for i := 0; i < h; i++ {
			sum += int(pixels.At(y0+i, x0-1))
		}
	}

	var avg int
	switch {
	case haveAbove && haveLeft:
		avg = (sum + (w+h)/2) / (w + h)
	case haveAbove:
		avg = (sum + w/2) / w
	case haveLeft:
		avg = (sum + h/2) / h
	default:
		avg = 128
	}

	pred := uint8(clamp(avg, 0, 255))
	pixels.FillRegion(y0, x0, h, w, pred)
}

// ComputeResidual returns the forward-transformed difference between the
// h x w region of source starting at (y0, x0) and the matching region of
// pred.
func ComputeResidual(source, pred *array2d.Array2D[uint8], y0, x0, h, w int) *array2d.Array2D[int32] {
	residual := array2d.NewWith[int32](h, w, func(i, j int) int32 {
		return int32(source.At(y0+i, x0+j)) - int32(pred.At(y0+i, x0+j))
	})

	txfm.Forward2D(residual, h)
	return residual
}

// Quantize divides every coefficient in residual by the DC or AC step
// size for qindex (DC for position (0,0), AC elsewhere), rounding to the
// nearest integer with halves rounding toward zero.
func Quantize(residual *array2d.Array2D[int32], qindex uint8) {
	dcQ := qindexToDCQ[qindex]
	acQ := qindexToACQ[qindex]

	residual.Map(func(i, j int, coeff int32) int32 {
		q := acQ
		if i == 0 && j == 0 {
			q = dcQ
		}
		abs := coeff
		sign := int32(1)
		if coeff < 0 {
			abs = -coeff
			sign = -1
		}
		return sign * ((abs + (q-1)/2) / q)
	})
}

// Dequantize scales every quantized coefficient in residual back up by
// the DC or AC step size for qindex.
func Dequantize(residual *array2d.Array2D[int32], qindex uint8) {
	dcQ := qindexToDCQ[qindex]
	acQ := qindexToACQ[qindex]

	residual.Map(func(i, j int, coeff int32) int32 {
		q := acQ
		if i == 0 && j == 0 {
			q = dcQ
		}
		return coeff * q
	})
}

// ApplyResidual inverse-transforms residual in place and adds the result
// onto the h x w region of recon starting at (y0, x0), clamping each
// sample back into [0, 255]. residual is consumed; pass a clone if the
// caller needs to keep the dequantized coefficients afterward.
func ApplyResidual(recon *array2d.Array2D[uint8], residual *array2d.Array2D[int32], y0, x0, h, w int) {
	txfm.Inverse2D(residual, h)

	for i := 0; i < h; i++ {
		row := residual.Row(i)
		for j := 0; j < w; j++ {
			v := int(recon.At(y0+i, x0+j)) + int(row[j])
			recon.Set(y0+i, x0+j, uint8(clamp(v, 0, 255)))
		}
	}
}
