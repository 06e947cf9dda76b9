package av1enc

import (
	"log"

	"github.com/cocosip/go-tinyavif/cdf"
	"github.com/cocosip/go-tinyavif/entropy"
	"github.com/cocosip/go-tinyavif/frame"
	"github.com/cocosip/go-tinyavif/modeinfo"
)

// TileEncoder owns the entropy writer, the ModeInfo grid and the recon
// frame for the duration of encoding one tile. It holds a read-only
// borrow of the source frame.
type TileEncoder struct {
	source *frame.Frame
	recon  *frame.Frame
	mi     *modeinfo.Grid
	bw     *entropy.Writer

	qindex uint8
	qctx   int

	// blockInfo accumulates the ModeInfo for the 8x8 block currently being
	// coded, across all three planes, before it is written into mi as one
	// region fill (see encodeBlock).
	blockInfo modeinfo.Info

	superblockCount int
	blockCount      int
}

// EncodeImage runs the tile encoder over source at the given qindex and
// returns the finalized entropy-coded tile payload. It also returns the
// reconstructed frame, useful for debugging and for tests that check the
// reconstruction; callers that only need the bitstream may discard it.
func (e *Encoder) EncodeImage(source *frame.Frame, qindex uint8) (payload []byte, recon *frame.Frame) {
	if qindex == 0 {
		panic("av1enc: qindex 0 (lossless) is not supported")
	}

	recon = frame.NewFrame(source.Y().CropHeight(), source.Y().CropWidth())
	for p := 0; p < 3; p++ {
		px := recon.Plane(p).Pixels()
		px.FillRegion(0, 0, px.Rows(), px.Cols(), 128)
	}

	t := &TileEncoder{
		source: source,
		recon:  recon,
		mi:     modeinfo.NewGrid(source.Y().Height(), source.Y().Width()),
		bw:     entropy.NewWriter(),
		qindex: qindex,
		qctx:   cdf.QIndexContext(int(qindex)),
	}
	t.encode()

	payload = t.bw.Finalize()
	log.Printf("av1enc: tile encoded: %d superblocks, %d 8x8 blocks, %d payload bytes", t.superblockCount, t.blockCount, len(payload))
	return payload, recon
}

const superblockSize = 64

// encode walks every superblock of the padded luma plane in raster order.
func (t *TileEncoder) encode() {
	paddedWidth := t.source.Y().Width()
	paddedHeight := t.source.Y().Height()

	for y0 := 0; y0 < paddedHeight; y0 += superblockSize {
		for x0 := 0; x0 < paddedWidth; x0 += superblockSize {
			t.encodePartition(y0, x0, superblockSize)
			t.superblockCount++
		}
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
