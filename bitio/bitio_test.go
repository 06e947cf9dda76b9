package bitio

import (
	"bytes"
	"testing"
)

func TestWriteBitsPacksMSBFirst(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b1011, 4)
	w.WriteBits(0b0001, 4)
	got := w.Finalize(false)
	want := []byte{0b10110001}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %08b, want %08b", got, want)
	}
}

func TestFinalizeTrailingOneAndPadding(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b101, 3)
	got := w.Finalize(true)
	// 101 then a trailing 1 then zero padding to 8 bits: 1011 0000
	want := []byte{0b10110000}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %08b, want %08b", got, want)
	}
}

func TestFinalizeWithoutTrailingOnePadsWithZeros(t *testing.T) {
	w := NewWriter()
	w.WriteBit(1)
	got := w.Finalize(false)
	want := []byte{0b10000000}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %08b, want %08b", got, want)
	}
}

func TestWriteBitsSpanningMultipleBytes(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0x1234, 16)
	got := w.Finalize(false)
	want := []byte{0x12, 0x34}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestWriteBitsRejectsOversizedValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for value not fitting in n bits")
		}
	}()
	w := NewWriter()
	w.WriteBits(0xFF, 4)
}

func TestBitsWrittenTracksProgress(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0, 10)
	if got := w.BitsWritten(); got != 10 {
		t.Fatalf("BitsWritten() = %d, want 10", got)
	}
}
