package av1enc

import "github.com/cocosip/go-tinyavif/bitio"

// Encoder is configured once with an image's cropped dimensions. It builds
// the sequence header, the frame header, and (via EncodeImage) the tile
// payload; it holds no other state and can be reused across qindex values.
type Encoder struct {
	width, height             int
	paddedWidth, paddedHeight int
}

// nextMultipleOf8 mirrors frame.NewFrame's luma padding rule so the header
// builder can derive padded dimensions without holding a *frame.Frame.
func nextMultipleOf8(n int) int {
	return (n + 7) &^ 7
}

// NewEncoder returns an encoder for an image of the given crop dimensions.
func NewEncoder(width, height int) *Encoder {
	if width <= 0 || width > 65536 {
		panic("av1enc: width out of range")
	}
	if height <= 0 || height > 65536 {
		panic("av1enc: height out of range")
	}
	return &Encoder{
		width:        width,
		height:       height,
		paddedWidth:  nextMultipleOf8(width),
		paddedHeight: nextMultipleOf8(height),
	}
}

// GenerateSequenceHeader builds the raw-bit sequence header OBU payload:
// still-picture profile 0, level 31 (unconstrained), 16-bit width/height
// fields, 64x64 superblocks with every optional coding tool disabled,
// 8-bit 4:2:0 non-monochrome TV-range color, chroma sited at the top-left
// luma sample, no film grain. Always ends with a trailing 1 bit, since a
// sequence header is always carried in its own OBU.
func (e *Encoder) GenerateSequenceHeader() []byte {
	w := bitio.NewWriter()

	w.WriteBits(0, 3) // seq_profile: main, 8/10-bit 4:2:0 or monochrome
	w.WriteBit(1)      // still_picture
	w.WriteBit(1)      // reduced_still_picture_header

	w.WriteBits(31, 5) // seq_level_idx: unconstrained

	// Bit widths for the frame size fields, then the sizes themselves.
	w.WriteBits(15, 4)
	w.WriteBits(15, 4)
	w.WriteBits(uint64(e.width-1), 16)
	w.WriteBits(uint64(e.height-1), 16)

	// 64x64 superblocks, filter-intra/intra-edge-filter disabled, superres,
	// CDEF and loop restoration all disabled.
	w.WriteBits(0, 6)

	w.WriteBit(0) // high_bitdepth: 8 bits per sample
	w.WriteBit(0) // mono_chrome: false
	w.WriteBit(0) // color_description_present_flag: none here
	w.WriteBit(0) // color_range: studio ("TV") range
	w.WriteBits(2, 2) // chroma_sample_position: colocated with top-left luma
	w.WriteBit(0)      // separate_uv_delta_q: shared delta-q
	w.WriteBit(0)      // film_grain_params_present

	return w.Finalize(true)
}

// GenerateFrameHeader builds the raw-bit frame header: CDF updates and
// screen-content tools disabled, render size equal to frame size, uniform
// 1x1 tiling (with the tile-count bits omitted entirely when a dimension
// is already at most one superblock), qindex as given with no delta-q or
// segmentation, deblocking strength zero, largest-possible TX size with
// the reduced TX-type set. addTrailingOne must be false when this payload
// is concatenated into a combined FRAME OBU alongside tile data, and true
// when it stands alone in its own FRAME_HEADER OBU.
func (e *Encoder) GenerateFrameHeader(qindex uint8, addTrailingOne bool) []byte {
	if qindex == 0 {
		panic("av1enc: qindex 0 (lossless) is not supported")
	}

	w := bitio.NewWriter()

	w.WriteBit(1) // disable_cdf_update
	w.WriteBit(0) // allow_screen_content_tools
	w.WriteBit(0) // render_and_frame_size_different

	w.WriteBit(1) // uniform_tile_spacing_flag
	if e.paddedWidth > 64 {
		w.WriteBit(0) // tile_cols_log2 == 0
	}
	if e.paddedHeight > 64 {
		w.WriteBit(0) // tile_rows_log2 == 0
	}

	w.WriteBits(uint64(qindex), 8) // base_q_idx

	w.WriteBits(0, 3) // no per-channel delta-q
	w.WriteBit(0)      // using_qmatrix
	w.WriteBit(0)      // segmentation_enabled
	w.WriteBit(0)      // delta_q_present (=> no delta_lf_present)

	w.WriteBits(0, 6) // loop_filter_level[0]
	w.WriteBits(0, 6) // loop_filter_level[1]
	w.WriteBits(0, 3) // loop_filter_sharpness
	w.WriteBit(0)      // loop_filter_delta_enabled

	w.WriteBit(0) // TxMode: always the largest possible transform
	w.WriteBit(1) // reduced_tx_set

	return w.Finalize(addTrailingOne)
}
