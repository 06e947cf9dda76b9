package av1enc

import (
	"github.com/cocosip/go-tinyavif/cdf"
	"github.com/cocosip/go-tinyavif/modeinfo"
	"github.com/cocosip/go-tinyavif/recon"
)

// encodeBlock codes one fixed-size 8x8 luma block (and its 4x4 chroma
// co-sited counterpart) at luma pixel position (y0, x0): the always-skip=0,
// always-DC_PRED mode syntax, then predict/residual/quantize/encode/
// dequantize/reconstruct for each plane in turn. ModeInfo is written only
// after every plane has finished coding its coefficients, so this block's
// own context reads still see the previous generation of neighbor cells.
func (t *TileEncoder) encodeBlock(y0, x0 int) {
	t.bw.WriteSymbol(0, cdf.Skip[0])
	t.bw.WriteSymbol(dcPred, cdf.YMode)
	t.bw.WriteSymbol(dcPred, cdf.UVMode)

	miRow, miCol := y0/4, x0/4
	t.blockInfo = modeinfo.Info{}

	for plane := 0; plane < 3; plane++ {
		shift := 0
		if plane != 0 {
			shift = 1
		}
		py0, px0 := y0>>shift, x0>>shift
		size := 8 >> shift

		src := t.source.Plane(plane).Pixels()
		dst := t.recon.Plane(plane).Pixels()

		recon.DCPredict(dst, py0, px0, size, size)
		residual := recon.ComputeResidual(src, dst, py0, px0, size, size)
		recon.Quantize(residual, t.qindex)

		// The ModeInfo grid is indexed in luma 4x4 units regardless of
		// plane: every plane's neighbor context is read from and written
		// to the same (miRow, miCol) cell.
		t.encodeCoefficients(residual, plane, miRow, miCol, size)

		recon.Dequantize(residual, t.qindex)
		recon.ApplyResidual(dst, residual, py0, px0, size, size)
	}

	t.mi.FillBlock(miRow, miCol, 2, 2, t.blockInfo)
	t.blockCount++
}
