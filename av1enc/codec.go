package av1enc

import (
	"bytes"
	"fmt"

	"github.com/cocosip/go-tinyavif/codec"
	"github.com/cocosip/go-tinyavif/frame"
	"github.com/cocosip/go-tinyavif/hls"
	"github.com/google/uuid"
)

// Options configures one Encode call: the quantizer step and the AVIF/AV1
// color-description triple. Encode only uses QIndex; the sequence header
// it writes carries no color description, so the color fields do not reach
// the bitstream.
type Options struct {
	QIndex uint8

	ColorPrimaries     uint16
	TransferFunction   uint16
	MatrixCoefficients uint16
}

// Validate rejects QIndex == 0 (lossless), the one value this encoder's
// quantization tables do not support.
func (o *Options) Validate() error {
	if o.QIndex == 0 {
		return ErrInvalidQIndex
	}
	return nil
}

// codecUID is a fixed, well-known identifier for this codec. It is not a
// registered DICOM transfer syntax; it exists purely so Codec.UID returns
// a stable, parseable value rather than a fresh random one on every run.
const codecUID = "6f2a8f0e-6e1e-4f2a-8f7a-1c2d3e4f5a6b"

// Codec adapts Encoder to the shared codec.Codec interface. It holds no
// state of its own; every call builds a fresh Encoder from the given
// dimensions.
type Codec struct{}

// NewCodec returns a Codec ready to register.
func NewCodec() *Codec {
	return &Codec{}
}

// UID returns a fixed identifier for this codec, parsed once from a
// literal string so it is deterministic across runs and platforms.
func (c *Codec) UID() string {
	return uuid.MustParse(codecUID).String()
}

// Name returns this codec's registry name.
func (c *Codec) Name() string {
	return "av1-still-intra"
}

// Encode builds a single-frame AV1 OBU stream from planar 4:2:0 pixel
// data laid out as three contiguous rasters (Y, then U, then V) at
// params.Width x params.Height and their half-resolution chroma
// counterparts. params.Options must be a non-nil *Options.
func (c *Codec) Encode(params codec.EncodeParams) ([]byte, error) {
	options, ok := params.Options.(*Options)
	if !ok || options == nil {
		return nil, fmt.Errorf("av1enc: %w: Options must be *av1enc.Options", codec.ErrInvalidParameter)
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if params.Components != 3 {
		return nil, ErrUnsupportedComponents
	}
	if params.BitDepth != 8 {
		return nil, ErrUnsupportedBitDepth
	}

	f, err := frameFromPixelData(params.PixelData, params.Width, params.Height)
	if err != nil {
		return nil, err
	}

	enc := NewEncoder(params.Width, params.Height)
	seqHeader := enc.GenerateSequenceHeader()
	frameHeader := enc.GenerateFrameHeader(options.QIndex, false)
	tileData, _ := enc.EncodeImage(f, options.QIndex)

	return hls.PackOBUs(seqHeader, frameHeader, tileData, true), nil
}

// frameFromPixelData reads a planar 4:2:0 rasters buffer into a padded
// Frame, the same way a y4m.Reader reads one frame off a file.
func frameFromPixelData(pixelData []byte, width, height int) (*frame.Frame, error) {
	f := frame.NewFrame(height, width)

	r := bytes.NewReader(pixelData)
	if err := f.Y().ReadFrom(r); err != nil {
		return nil, fmt.Errorf("av1enc: %w: %v", ErrShortPixelData, err)
	}
	if err := f.U().ReadFrom(r); err != nil {
		return nil, fmt.Errorf("av1enc: %w: %v", ErrShortPixelData, err)
	}
	if err := f.V().ReadFrom(r); err != nil {
		return nil, fmt.Errorf("av1enc: %w: %v", ErrShortPixelData, err)
	}
	return f, nil
}

// Decode is unimplemented: this codec only ever produces an AV1 stream,
// it never consumes one back.
func (c *Codec) Decode(data []byte) (*codec.DecodeResult, error) {
	return nil, ErrDecodeUnsupported
}
