package y4m

import (
	"bytes"
	"strings"
	"testing"
)

func planarFrame(width, height int, y, u, v byte) []byte {
	uvWidth, uvHeight := (width+1)/2, (height+1)/2
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{y}, width*height))
	buf.Write(bytes.Repeat([]byte{u}, uvWidth*uvHeight))
	buf.Write(bytes.Repeat([]byte{v}, uvWidth*uvHeight))
	return buf.Bytes()
}

func TestNewReaderParsesWidthAndHeight(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("YUV4MPEG2 W16 H8 F25:1 Ip A1:1 C420jpeg\n")

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if r.Width() != 16 || r.Height() != 8 {
		t.Fatalf("dims = %dx%d, want 16x8", r.Width(), r.Height())
	}
}

func TestNewReaderRejectsBadMagic(t *testing.T) {
	r := strings.NewReader("NOTYUV4MPEG" + "W1 H1\n")
	if _, err := NewReader(r); err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestNewReaderRejectsMissingDimensions(t *testing.T) {
	r := strings.NewReader("YUV4MPEG2 F25:1\n")
	if _, err := NewReader(r); err != ErrBadDimensions {
		t.Fatalf("err = %v, want ErrBadDimensions", err)
	}
}

func TestReadFrameLoadsPlanes(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("YUV4MPEG2 W8 H8\n")
	buf.WriteString("FRAME\n")
	buf.Write(planarFrame(8, 8, 16, 32, 64))

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	f, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame: %v", err)
	}

	if got := f.Y().Pixels().At(0, 0); got != 16 {
		t.Fatalf("Y(0,0) = %d, want 16", got)
	}
	if got := f.U().Pixels().At(0, 0); got != 32 {
		t.Fatalf("U(0,0) = %d, want 32", got)
	}
	if got := f.V().Pixels().At(0, 0); got != 64 {
		t.Fatalf("V(0,0) = %d, want 64", got)
	}
}

func TestReadFrameRejectsBadFrameMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("YUV4MPEG2 W8 H8\n")
	buf.WriteString("NOPE!\n")
	buf.Write(planarFrame(8, 8, 1, 1, 1))

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	if _, err := r.ReadFrame(); err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestWriterThenReaderRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 8, 8)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	src, err := NewReader(bytes.NewReader(append([]byte("YUV4MPEG2 W8 H8\nFRAME\n"), planarFrame(8, 8, 5, 6, 7)...)))
	if err != nil {
		t.Fatalf("NewReader(src): %v", err)
	}
	f, err := src.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame(src): %v", err)
	}

	if err := w.WriteFrame(f); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	out, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader(out): %v", err)
	}
	got, err := out.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame(out): %v", err)
	}
	if got.Y().Pixels().At(0, 0) != 5 {
		t.Fatalf("round-tripped Y(0,0) = %d, want 5", got.Y().Pixels().At(0, 0))
	}
}

func TestWriteFrameRejectsDimensionMismatch(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, 16, 16)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}

	src, err := NewReader(bytes.NewReader(append([]byte("YUV4MPEG2 W8 H8\nFRAME\n"), planarFrame(8, 8, 1, 1, 1)...)))
	if err != nil {
		t.Fatalf("NewReader(src): %v", err)
	}
	f, err := src.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame(src): %v", err)
	}

	if err := w.WriteFrame(f); err == nil {
		t.Fatal("expected error for mismatched dimensions")
	}
}
