package av1enc

import (
	"bytes"
	"testing"

	"github.com/cocosip/go-tinyavif/array2d"
	"github.com/cocosip/go-tinyavif/cdf"
	"github.com/cocosip/go-tinyavif/entropy"
	"github.com/cocosip/go-tinyavif/frame"
	"github.com/cocosip/go-tinyavif/hls"
	"github.com/cocosip/go-tinyavif/modeinfo"
)

// readBits extracts n bits starting at bit position pos (MSB-first within
// each byte), mirroring how a decoder walks the raw-bit headers.
func readBits(data []byte, pos, n int) uint64 {
	v := uint64(0)
	for i := 0; i < n; i++ {
		p := pos + i
		bit := (data[p/8] >> (7 - uint(p%8))) & 1
		v = v<<1 | uint64(bit)
	}
	return v
}

// solidFrame builds a frame whose planes are uniformly lit, padding
// included.
func solidFrame(height, width int, y, u, v uint8) *frame.Frame {
	f := frame.NewFrame(height, width)
	for plane, val := range [3]uint8{y, u, v} {
		p := f.Plane(plane).Pixels()
		p.FillRegion(0, 0, p.Rows(), p.Cols(), val)
	}
	return f
}

func TestSequenceHeaderEncodesCropDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"8x8", 8, 8},
		{"non-multiple-of-8 37x21", 37, 21},
		{"64x64", 64, 64},
	}

	// seq_profile(3) + still_picture(1) + reduced_header(1) + level(5) +
	// frame_width_bits_minus_1(4) + frame_height_bits_minus_1(4).
	const sizeFieldsAt = 3 + 1 + 1 + 5 + 4 + 4

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr := NewEncoder(tt.width, tt.height).GenerateSequenceHeader()

			if got := readBits(hdr, sizeFieldsAt, 16); got != uint64(tt.width-1) {
				t.Errorf("frame_width_minus_1 = %d, want %d", got, tt.width-1)
			}
			if got := readBits(hdr, sizeFieldsAt+16, 16); got != uint64(tt.height-1) {
				t.Errorf("frame_height_minus_1 = %d, want %d", got, tt.height-1)
			}
		})
	}
}

func TestFrameHeaderBaseQIndexPosition(t *testing.T) {
	// disable_cdf_update(1) + allow_screen_content_tools(1) +
	// render_and_frame_size_different(1) + uniform_tile_spacing_flag(1),
	// plus one tile-count bit per padded dimension above one superblock.
	tests := []struct {
		name          string
		width, height int
		qindexAt      int
	}{
		{"both dimensions within one superblock", 8, 8, 4},
		{"wide frame keeps tile_cols_log2 bit", 72, 64, 5},
		{"tall and wide frame keeps both tile bits", 72, 72, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hdr := NewEncoder(tt.width, tt.height).GenerateFrameHeader(142, false)
			if got := readBits(hdr, tt.qindexAt, 8); got != 142 {
				t.Errorf("base_q_idx = %d at bit %d, want 142", got, tt.qindexAt)
			}
		})
	}
}

func TestEncodeImageSolidGrayReconstructsExactly(t *testing.T) {
	// The top-left block predicts 128 with no neighbors; a uniformly 128
	// source therefore quantizes to all-zero coefficients everywhere and the
	// reconstruction must be bit-exact.
	source := solidFrame(8, 8, 128, 128, 128)
	payload, recon := NewEncoder(8, 8).EncodeImage(source, 100)

	if len(payload) == 0 {
		t.Fatal("empty tile payload")
	}
	for plane := 0; plane < 3; plane++ {
		p := recon.Plane(plane).Pixels()
		for row := 0; row < p.Rows(); row++ {
			for col := 0; col < p.Cols(); col++ {
				if got := p.At(row, col); got != 128 {
					t.Fatalf("plane %d recon (%d,%d) = %d, want 128", plane, row, col, got)
				}
			}
		}
	}
}

func TestEncodeImageIsDeterministic(t *testing.T) {
	a, _ := NewEncoder(24, 16).EncodeImage(solidFrame(16, 24, 200, 90, 160), 80)
	b, _ := NewEncoder(24, 16).EncodeImage(solidFrame(16, 24, 200, 90, 160), 80)
	if !bytes.Equal(a, b) {
		t.Fatal("two encodes of the same input differ")
	}
}

func TestEncodeImageEdgeClippedSuperblocks(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		// One full superblock plus a partial one on the right: the partial
		// root partition must take the VERT-vs-SPLIT derived-CDF path.
		{"72x64 partial right superblock", 72, 64},
		// Partial on the bottom instead.
		{"64x72 partial bottom superblock", 64, 72},
		// Partial in both directions, exercising the no-symbol forced-SPLIT
		// case in the bottom-right quadrant.
		{"72x72 corner superblock", 72, 72},
		// Padding in play: 37x21 pads to 40x24.
		{"37x21 non-multiple-of-8 crop", 37, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := solidFrame(tt.height, tt.width, 170, 100, 150)
			payload, recon := NewEncoder(tt.width, tt.height).EncodeImage(source, 50)
			if len(payload) == 0 {
				t.Fatal("empty tile payload")
			}
			if recon.Y().Width() != source.Y().Width() || recon.Y().Height() != source.Y().Height() {
				t.Fatalf("recon padded size %dx%d does not match source %dx%d",
					recon.Y().Width(), recon.Y().Height(), source.Y().Width(), source.Y().Height())
			}
		})
	}
}

func TestPackedOBUStreamPrefix(t *testing.T) {
	source := solidFrame(64, 64, 200, 128, 128)
	enc := NewEncoder(64, 64)
	seqHeader := enc.GenerateSequenceHeader()
	frameHeader := enc.GenerateFrameHeader(200, false)
	tileData, _ := enc.EncodeImage(source, 200)

	out := hls.PackOBUs(seqHeader, frameHeader, tileData, true)
	if len(out) < 3 || out[0] != 0x12 || out[1] != 0x00 || out[2] != 0x0A {
		t.Fatalf("OBU stream prefix = % x, want 12 00 0a", out[:3])
	}
}

func TestGatherAlikeMassStaysInProbabilitySpace(t *testing.T) {
	for b := 16; b <= 64; b *= 2 {
		for ctx := 0; ctx < 4; ctx++ {
			full := partitionCdf(b, ctx)
			for name, p := range map[string]uint16{
				"vert": gatherVertAlike(full),
				"horz": gatherHorzAlike(full),
			} {
				if p == 0 || uint32(p) >= 32768 {
					t.Errorf("size %d ctx %d %s-alike mass = %d, want in (0, 32768)", b, ctx, name, p)
				}
			}
		}
	}
}

// newTestTileEncoder builds a TileEncoder over a solid source, for
// exercising encodeCoefficients directly.
func newTestTileEncoder(qindex uint8) *TileEncoder {
	source := solidFrame(16, 16, 128, 128, 128)
	return &TileEncoder{
		source: source,
		recon:  frame.NewFrame(16, 16),
		mi:     modeinfo.NewGrid(source.Y().Height(), source.Y().Width()),
		bw:     entropy.NewWriter(),
		qindex: qindex,
		qctx:   cdf.QIndexContext(int(qindex)),
	}
}

func TestEncodeCoefficientsLargeDCTakesGolombPath(t *testing.T) {
	// A DC magnitude of 20 forces coeff_base_eob 2, four coeff_br symbols, the
	// dc_sign bit and the Exp-Golomb suffix for |dc|-15.
	te := newTestTileEncoder(50)
	coeffs := array2d.New[int32](8, 8)
	coeffs.Set(0, 0, -20)
	te.encodeCoefficients(coeffs, 0, 0, 0, 8)

	if te.blockInfo.DCSign[0] != -1 {
		t.Fatalf("DCSign = %d, want -1", te.blockInfo.DCSign[0])
	}
	if te.blockInfo.LevelCtx[0] != 20 {
		t.Fatalf("LevelCtx = %d, want 20", te.blockInfo.LevelCtx[0])
	}
	if out := te.bw.Finalize(); len(out) == 0 {
		t.Fatal("empty payload after coding a large DC coefficient")
	}
}

func TestEncodeCoefficientsCapsLevelCtx(t *testing.T) {
	te := newTestTileEncoder(50)
	coeffs := array2d.NewWith[int32](8, 8, func(_, _ int) int32 { return 5 })
	te.encodeCoefficients(coeffs, 0, 0, 0, 8)

	if te.blockInfo.LevelCtx[0] != 63 {
		t.Fatalf("LevelCtx = %d, want the cap 63", te.blockInfo.LevelCtx[0])
	}
	if te.blockInfo.DCSign[0] != 1 {
		t.Fatalf("DCSign = %d, want 1", te.blockInfo.DCSign[0])
	}
}

func TestEncodeCoefficientsAllZeroShortCircuits(t *testing.T) {
	te := newTestTileEncoder(50)
	te.encodeCoefficients(array2d.New[int32](4, 4), 1, 0, 0, 4)

	if te.blockInfo.LevelCtx[1] != 0 || te.blockInfo.DCSign[1] != 0 {
		t.Fatal("all-zero chroma block left nonzero ModeInfo behind")
	}
}

func TestNewEncoderRejectsOutOfRangeDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 8}, {8, 0}, {65537, 8}, {8, 65537}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewEncoder(%d, %d) did not panic", dims[0], dims[1])
				}
			}()
			NewEncoder(dims[0], dims[1])
		}()
	}
}
