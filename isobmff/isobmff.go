// Package isobmff is a minimal, write-only ISOBMFF (ISO base media file
// format) box builder: enough to assemble the small, fixed box tree an
// AVIF still image needs. Every box reserves a 4-byte size placeholder
// when opened and patches the real size in once its contents (including
// any nested boxes) are known. Callers close boxes explicitly, innermost
// first, and Writer panics if any are left open at Bytes.
package isobmff

import "encoding/binary"

// Writer accumulates a flat byte buffer built up out of nested boxes.
type Writer struct {
	data      []byte
	openSizes []int
}

// NewWriter returns an empty box writer.
func NewWriter() *Writer {
	return &Writer{}
}

// OpenBox appends a 4-byte size placeholder and the 4-byte box type, and
// returns a handle used to write the box's payload and to close it.
func (w *Writer) OpenBox(boxType string) *Box {
	return w.openBox(boxType, nil)
}

// OpenBoxWithVersion is OpenBox for a full box: it additionally appends
// the 1-byte version and 3-byte flags field full boxes carry immediately
// after their type.
func (w *Writer) OpenBoxWithVersion(boxType string, version uint8, flags uint32) *Box {
	vf := uint32(version)<<24 | (flags & 0x00ffffff)
	return w.openBox(boxType, &vf)
}

func (w *Writer) openBox(boxType string, versionFlags *uint32) *Box {
	if len(boxType) != 4 {
		panic("isobmff: box type must be 4 characters")
	}
	sizePos := len(w.data)
	w.data = append(w.data, 0, 0, 0, 0)
	w.data = append(w.data, boxType...)
	if versionFlags != nil {
		w.writeU32(*versionFlags)
	}
	w.openSizes = append(w.openSizes, sizePos)
	return &Box{w: w, sizePos: sizePos}
}

// Pos returns the writer's current byte offset, used to capture mdat's
// file position for iloc's late-patched content offset.
func (w *Writer) Pos() int {
	return len(w.data)
}

// PatchU32 overwrites the 4 bytes at pos with value, big-endian.
func (w *Writer) PatchU32(pos int, value uint32) {
	binary.BigEndian.PutUint32(w.data[pos:pos+4], value)
}

func (w *Writer) writeU32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.data = append(w.data, b[:]...)
}

// Bytes returns the finished buffer. It panics if any box opened on this
// writer was never closed.
func (w *Writer) Bytes() []byte {
	if len(w.openSizes) != 0 {
		panic("isobmff: box left open")
	}
	return w.data
}

// Box is a handle to one open box; every write method appends to the
// writer's buffer, and Close patches this box's size field and pops it
// off the writer's open-box stack.
type Box struct {
	w       *Writer
	sizePos int
	closed  bool
}

// OpenBox opens a child box nested inside this one.
func (b *Box) OpenBox(boxType string) *Box {
	return b.w.OpenBox(boxType)
}

// OpenBoxWithVersion opens a child full box nested inside this one.
func (b *Box) OpenBoxWithVersion(boxType string, version uint8, flags uint32) *Box {
	return b.w.OpenBoxWithVersion(boxType, version, flags)
}

// Pos returns the writer's current byte offset.
func (b *Box) Pos() int {
	return b.w.Pos()
}

// U8 appends one byte.
func (b *Box) U8(v uint8) {
	b.w.data = append(b.w.data, v)
}

// U16 appends a big-endian 16-bit value.
func (b *Box) U16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.w.data = append(b.w.data, buf[:]...)
}

// U32 appends a big-endian 32-bit value.
func (b *Box) U32(v uint32) {
	b.w.writeU32(v)
}

// Bytes appends raw bytes (e.g. a 4-character box-specific tag).
func (b *Box) Bytes(v []byte) {
	b.w.data = append(b.w.data, v...)
}

// String appends the bytes of s, unterminated.
func (b *Box) String(s string) {
	b.w.data = append(b.w.data, s...)
}

// MarkU32 reserves a 4-byte placeholder and returns its offset, for a
// value (such as iloc's content offset) that is only known after later
// content - typically mdat's position - has been written.
func (b *Box) MarkU32() int {
	pos := b.w.Pos()
	b.w.writeU32(0)
	return pos
}

// Close patches this box's size field (size includes the 8-byte header
// itself, matching ISOBMFF convention) and pops it off the open-box
// stack. Boxes must be closed innermost first.
func (b *Box) Close() {
	if b.closed {
		panic("isobmff: box closed twice")
	}
	n := len(b.w.openSizes)
	if n == 0 || b.w.openSizes[n-1] != b.sizePos {
		panic("isobmff: boxes must be closed innermost first")
	}
	b.w.openSizes = b.w.openSizes[:n-1]

	size := uint32(len(b.w.data) - b.sizePos)
	b.w.PatchU32(b.sizePos, size)
	b.closed = true
}
