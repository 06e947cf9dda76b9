// Package frame holds the padded pixel planes an encode pass reads from
// and reconstructs into: one full-resolution luma plane and two
// subsampled (4:2:0) chroma planes, each padded out to a multiple of 8
// samples so every 8x8 (or smaller) transform block fits entirely inside
// its plane's backing buffer.
package frame

import (
	"io"

	"github.com/cocosip/go-tinyavif/array2d"
)

// Plane is one padded 8-bit sample plane. Pixels() reports the padded
// (coding) dimensions; CropWidth/CropHeight report the true image
// dimensions that ReadFrom/WriteTo exchange with the outside world.
type Plane struct {
	pixels *array2d.Array2D[uint8]

	cropWidth, cropHeight int
}

// Pixels returns the plane's backing buffer, sized to the padded
// (coding) dimensions.
func (p *Plane) Pixels() *array2d.Array2D[uint8] { return p.pixels }

// Width returns the padded plane width.
func (p *Plane) Width() int { return p.pixels.Cols() }

// Height returns the padded plane height.
func (p *Plane) Height() int { return p.pixels.Rows() }

// CropWidth returns the true (unpadded) image width.
func (p *Plane) CropWidth() int { return p.cropWidth }

// CropHeight returns the true (unpadded) image height.
func (p *Plane) CropHeight() int { return p.cropHeight }

// FillPadding extends the crop region's right and bottom edges across the
// padding area, by replicating the rightmost column and bottommost row.
// This must be called after any write that can disturb the last row or
// column inside the crop region, or the padding area itself, since
// prediction and the loop filter both read samples from the padding.
func (p *Plane) FillPadding() {
	width, height := p.Width(), p.Height()
	cropWidth, cropHeight := p.cropWidth, p.cropHeight

	for row := 0; row < height; row++ {
		r := p.pixels.Row(row)
		rightmost := r[cropWidth-1]
		for col := cropWidth; col < width; col++ {
			r[col] = rightmost
		}
	}

	lastRow := p.pixels.Row(cropHeight - 1)
	for row := cropHeight; row < height; row++ {
		copy(p.pixels.Row(row), lastRow)
	}
}

// ReadFrom fills the crop region from r, row by row, then pads the
// result out to the plane's full coding dimensions.
func (p *Plane) ReadFrom(r io.Reader) error {
	for row := 0; row < p.cropHeight; row++ {
		if _, err := io.ReadFull(r, p.pixels.Row(row)[0:p.cropWidth]); err != nil {
			return err
		}
	}
	p.FillPadding()
	return nil
}

// WriteTo writes the crop region to w, row by row, omitting the padding.
func (p *Plane) WriteTo(w io.Writer) error {
	for row := 0; row < p.cropHeight; row++ {
		if _, err := w.Write(p.pixels.Row(row)[0:p.cropWidth]); err != nil {
			return err
		}
	}
	return nil
}

// nextMultipleOf8 rounds n up to the next multiple of 8 (0 stays 0).
func nextMultipleOf8(n int) int {
	return (n + 7) &^ 7
}

// roundDiv2 divides n by 2, rounding to the nearest integer (halves up).
func roundDiv2(n int) int {
	return (n + 1) / 2
}

// Frame holds one decoded/reconstructed picture: a luma plane at full
// resolution and two 4:2:0-subsampled chroma planes.
type Frame struct {
	planes [3]*Plane
}

// NewFrame allocates a Frame sized for a yCropWidth x yCropHeight 4:2:0
// image: the luma plane is padded up to a multiple of 8 in each dimension
// and the two chroma planes' coding buffers are half the padded luma size,
// so every chroma 4x4 block a superblock walk touches stays inside its
// plane's backing buffer even when the crop is not a multiple of 8.
func NewFrame(yCropHeight, yCropWidth int) *Frame {
	yWidth := nextMultipleOf8(yCropWidth)
	yHeight := nextMultipleOf8(yCropHeight)

	uvCropWidth := roundDiv2(yCropWidth)
	uvCropHeight := roundDiv2(yCropHeight)

	uvWidth := yWidth / 2
	uvHeight := yHeight / 2

	return &Frame{
		planes: [3]*Plane{
			{
				pixels:     array2d.Zeroed[uint8](yHeight, yWidth),
				cropWidth:  yCropWidth,
				cropHeight: yCropHeight,
			},
			{
				pixels:     array2d.Zeroed[uint8](uvHeight, uvWidth),
				cropWidth:  uvCropWidth,
				cropHeight: uvCropHeight,
			},
			{
				pixels:     array2d.Zeroed[uint8](uvHeight, uvWidth),
				cropWidth:  uvCropWidth,
				cropHeight: uvCropHeight,
			},
		},
	}
}

// Plane returns plane idx (0 = Y, 1 = U, 2 = V).
func (f *Frame) Plane(idx int) *Plane { return f.planes[idx] }

// Y returns the luma plane.
func (f *Frame) Y() *Plane { return f.planes[0] }

// U returns the Cb plane.
func (f *Frame) U() *Plane { return f.planes[1] }

// V returns the Cr plane.
func (f *Frame) V() *Plane { return f.planes[2] }
