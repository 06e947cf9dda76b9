package av1enc

import "errors"

// ErrInvalidQIndex is returned by Options.Validate when QIndex is 0, the
// reserved lossless value this encoder does not support.
var ErrInvalidQIndex = errors.New("av1enc: qindex must be nonzero (lossless is unsupported)")

// ErrUnsupportedComponents is returned by Codec.Encode when the input
// isn't a 3-component 4:2:0 image.
var ErrUnsupportedComponents = errors.New("av1enc: only 3-component 4:2:0 input is supported")

// ErrUnsupportedBitDepth is returned by Codec.Encode for any bit depth
// other than 8.
var ErrUnsupportedBitDepth = errors.New("av1enc: only 8-bit input is supported")

// ErrShortPixelData is returned by Codec.Encode when PixelData is smaller
// than the Y+U+V raster sizes implied by Width and Height.
var ErrShortPixelData = errors.New("av1enc: pixel data shorter than width x height implies")

// ErrDecodeUnsupported is returned by Codec.Decode: this package only
// implements encoding.
var ErrDecodeUnsupported = errors.New("av1enc: decoding is not supported")
