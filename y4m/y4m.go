// Package y4m reads and writes the YUV4MPEG2 (".y4m") planar video
// container: a single ASCII header line naming the frame dimensions,
// followed by one or more FRAME-prefixed raw 4:2:0 rasters. This encoder
// only ever reads (or, for round-trip debugging, writes) a single frame.
package y4m

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/cocosip/go-tinyavif/frame"
)

const (
	fileMagic  = "YUV4MPEG2 "
	frameMagic = "FRAME"
)

// ErrBadMagic is returned when a file or frame magic string does not
// match what YUV4MPEG2 requires.
var ErrBadMagic = errors.New("y4m: bad magic")

// ErrBadDimensions is returned when the header's W/H parameters are
// missing, non-numeric, or zero.
var ErrBadDimensions = errors.New("y4m: missing or invalid width/height")

// Reader parses a YUV4MPEG2 stream's header once, then yields frames.
type Reader struct {
	r             *bufio.Reader
	width, height int
}

// NewReader validates the file magic and parses the W/H parameters off
// the header line. Only W and H are recognized; any other parameter
// token is skipped.
func NewReader(r io.Reader) (*Reader, error) {
	br := bufio.NewReader(r)

	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("y4m: reading file magic: %w", err)
	}
	if string(magic) != fileMagic {
		return nil, ErrBadMagic
	}

	width, height, err := readParams(br)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Reader{r: br, width: width, height: height}, nil
}

// Width returns the crop width parsed from the header.
func (r *Reader) Width() int { return r.width }

// Height returns the crop height parsed from the header.
func (r *Reader) Height() int { return r.height }

func readParams(r *bufio.Reader) (width, height int, err error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("y4m: reading header line: %w", err)
		}
		if b == '\n' {
			return width, height, nil
		}
		if b != 'W' && b != 'H' {
			continue
		}
		n, err := readDecimal(r)
		if err != nil {
			return 0, 0, err
		}
		if b == 'W' {
			width = n
		} else {
			height = n
		}
	}
}

// readDecimal reads consecutive ASCII digits immediately following a
// parameter tag byte and returns their decimal value. The first non-digit
// byte found is put back with UnreadByte, so the caller reads it next.
func readDecimal(r *bufio.Reader) (int, error) {
	n := 0
	digits := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("y4m: reading header parameter: %w", err)
		}
		if b < '0' || b > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			if digits == 0 {
				return 0, ErrBadDimensions
			}
			return n, nil
		}
		n = n*10 + int(b-'0')
		digits++
	}
}

// ReadFrame reads one FRAME-prefixed raster into a freshly allocated,
// padded Frame.
func (r *Reader) ReadFrame() (*frame.Frame, error) {
	magic := make([]byte, len(frameMagic))
	if _, err := io.ReadFull(r.r, magic); err != nil {
		return nil, fmt.Errorf("y4m: reading frame magic: %w", err)
	}
	if string(magic) != frameMagic {
		return nil, ErrBadMagic
	}

	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("y4m: reading frame header: %w", err)
		}
		if b == '\n' {
			break
		}
	}

	f := frame.NewFrame(r.height, r.width)
	if err := f.Y().ReadFrom(r.r); err != nil {
		return nil, fmt.Errorf("y4m: reading Y plane: %w", err)
	}
	if err := f.U().ReadFrom(r.r); err != nil {
		return nil, fmt.Errorf("y4m: reading U plane: %w", err)
	}
	if err := f.V().ReadFrom(r.r); err != nil {
		return nil, fmt.Errorf("y4m: reading V plane: %w", err)
	}
	return f, nil
}

// Writer emits a YUV4MPEG2 stream, useful for dumping a reconstructed
// frame for visual comparison against the source.
type Writer struct {
	w             io.Writer
	width, height int
}

// NewWriter writes the file magic and the W/H header line.
func NewWriter(w io.Writer, width, height int) (*Writer, error) {
	if _, err := io.WriteString(w, fmt.Sprintf("%sW%d H%d\n", fileMagic, width, height)); err != nil {
		return nil, fmt.Errorf("y4m: writing header: %w", err)
	}
	return &Writer{w: w, width: width, height: height}, nil
}

// WriteFrame writes f's crop-region Y/U/V rasters prefixed by a FRAME
// marker. f's luma crop dimensions must match the header exactly.
func (wr *Writer) WriteFrame(f *frame.Frame) error {
	if f.Y().CropWidth() != wr.width || f.Y().CropHeight() != wr.height {
		return fmt.Errorf("y4m: frame dimensions %dx%d do not match header %dx%d",
			f.Y().CropWidth(), f.Y().CropHeight(), wr.width, wr.height)
	}

	if _, err := io.WriteString(wr.w, frameMagic+"\n"); err != nil {
		return fmt.Errorf("y4m: writing frame magic: %w", err)
	}
	if err := f.Y().WriteTo(wr.w); err != nil {
		return fmt.Errorf("y4m: writing Y plane: %w", err)
	}
	if err := f.U().WriteTo(wr.w); err != nil {
		return fmt.Errorf("y4m: writing U plane: %w", err)
	}
	if err := f.V().WriteTo(wr.w); err != nil {
		return fmt.Errorf("y4m: writing V plane: %w", err)
	}
	return nil
}
