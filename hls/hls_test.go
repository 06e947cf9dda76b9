package hls

import (
	"bytes"
	"testing"
)

func TestLeb128ZeroIsSingleByte(t *testing.T) {
	got := leb128(nil, 0)
	if !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("leb128(0) = %v, want [0x00]", got)
	}
}

func TestLeb128MultiByteSetsContinuationBit(t *testing.T) {
	// 300 = 0b1_0010_1100 -> low 7 bits 0101100 (0x2c) with continuation,
	// then remaining 0b10 (0x02).
	got := leb128(nil, 300)
	want := []byte{0xac, 0x02}
	if !bytes.Equal(got, want) {
		t.Fatalf("leb128(300) = %v, want %v", got, want)
	}
}

func TestLeb128Boundaries(t *testing.T) {
	tests := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{16383, []byte{0xff, 0x7f}},
		{16384, []byte{0x80, 0x80, 0x01}},
	}
	for _, tt := range tests {
		if got := leb128(nil, tt.v); !bytes.Equal(got, tt.want) {
			t.Errorf("leb128(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPackOBUsOrdersOBUsAndFramesSizesCorrectly(t *testing.T) {
	seqHeader := []byte{0xaa, 0xbb}
	frameHeader := []byte{0xcc}
	tileData := []byte{0x01, 0x02, 0x03}

	out := PackOBUs(seqHeader, frameHeader, tileData, true)

	want := []byte{
		obuHeaderTemporalDelimiter, 0x00,
		obuHeaderSequenceHeader, 0x02, 0xaa, 0xbb,
		obuHeaderFrame, 0x04, 0xcc, 0x01, 0x02, 0x03,
	}
	if !bytes.Equal(out, want) {
		t.Fatalf("PackOBUs = %v, want %v", out, want)
	}
}

func TestPackOBUsOmitsTemporalDelimiterWhenNotRequested(t *testing.T) {
	out := PackOBUs([]byte{0x01}, []byte{0x02}, nil, false)
	if out[0] == obuHeaderTemporalDelimiter {
		t.Fatal("temporal delimiter present when includeTemporalDelimiter=false")
	}
}

func TestPackAVIFProducesWellFormedBoxTree(t *testing.T) {
	av1Data := []byte{0x12, 0x00, 0x0a, 0x02, 0xaa, 0xbb}
	out := PackAVIF(av1Data, 8, 8, 2, 2, 2, "Color")

	if !bytes.Contains(out, []byte("ftyp")) {
		t.Fatal("missing ftyp box")
	}
	if !bytes.Contains(out, []byte("meta")) {
		t.Fatal("missing meta box")
	}
	if !bytes.Contains(out, []byte("mdat")) {
		t.Fatal("missing mdat box")
	}
	if !bytes.Contains(out, av1Data) {
		t.Fatal("mdat payload not found in output")
	}

	mdatContentPos := bytes.Index(out, av1Data)
	if mdatContentPos < 0 {
		t.Fatal("could not locate av1Data within AVIF output")
	}

	ilocPos := bytes.Index(out, []byte("iloc"))
	if ilocPos < 0 {
		t.Fatal("missing iloc box")
	}
	// The patched content offset sits in iloc's fixed single-extent layout,
	// immediately before the 4-byte extent length that ends the box.
	offsetFieldPos := ilocPos + 4 + 4 + 1 + 1 + 2 + 2 + 2 + 2
	got := uint32(out[offsetFieldPos])<<24 | uint32(out[offsetFieldPos+1])<<16 | uint32(out[offsetFieldPos+2])<<8 | uint32(out[offsetFieldPos+3])
	if int(got) != mdatContentPos {
		t.Fatalf("patched iloc offset = %d, want %d", got, mdatContentPos)
	}
}

func TestPackAVIFUsesProvidedItemName(t *testing.T) {
	out := PackAVIF([]byte{0x12, 0x00}, 8, 8, 2, 2, 2, "Snapshot")
	if !bytes.Contains(out, []byte("Snapshot\x00")) {
		t.Fatal("infe item name not written into output")
	}
	if bytes.Contains(out, []byte("Color\x00")) {
		t.Fatal("default item name leaked into output despite override")
	}
}
