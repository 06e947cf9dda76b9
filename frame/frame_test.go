package frame

import (
	"bytes"
	"testing"
)

func TestNewFramePadsLumaToMultipleOf8(t *testing.T) {
	f := NewFrame(10, 12)
	if f.Y().Width() != 16 || f.Y().Height() != 16 {
		t.Fatalf("luma padded size = %dx%d, want 16x16", f.Y().Width(), f.Y().Height())
	}
	if f.Y().CropWidth() != 12 || f.Y().CropHeight() != 10 {
		t.Fatalf("luma crop size = %dx%d, want 12x10", f.Y().CropWidth(), f.Y().CropHeight())
	}
}

func TestNewFrameChromaIsHalfResolution(t *testing.T) {
	f := NewFrame(16, 16)
	if f.U().CropWidth() != 8 || f.U().CropHeight() != 8 {
		t.Fatalf("chroma crop size = %dx%d, want 8x8", f.U().CropWidth(), f.U().CropHeight())
	}
	if f.V().CropWidth() != f.U().CropWidth() || f.V().CropHeight() != f.U().CropHeight() {
		t.Fatal("U and V plane crop sizes differ")
	}
}

func TestPlaneReadFromThenWriteToRoundTrips(t *testing.T) {
	f := NewFrame(4, 6)
	src := bytes.Repeat([]byte{0, 1, 2, 3, 4, 5}, 4)
	if err := f.Y().ReadFrom(bytes.NewReader(src)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	var out bytes.Buffer
	if err := f.Y().WriteTo(&out); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if !bytes.Equal(out.Bytes(), src) {
		t.Fatalf("round trip mismatch: got %v, want %v", out.Bytes(), src)
	}
}

func TestFillPaddingReplicatesEdges(t *testing.T) {
	f := NewFrame(5, 5)
	src := bytes.Repeat([]byte{9}, 25)
	if err := f.Y().ReadFrom(bytes.NewReader(src)); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}

	// Padded out to 8x8; every padding sample should replicate the edge value 9.
	for row := 0; row < f.Y().Height(); row++ {
		for col := 0; col < f.Y().Width(); col++ {
			if got := f.Y().Pixels().At(row, col); got != 9 {
				t.Fatalf("pixel (%d,%d) = %d, want 9", row, col, got)
			}
		}
	}
}
