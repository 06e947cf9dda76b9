// Package hls builds the high-level syntax layer: it packs a sequence
// header, a frame header and coded tile data into AV1 OBUs, and optionally
// wraps the result into a minimal AVIF file.
package hls

import "github.com/cocosip/go-tinyavif/isobmff"

const (
	obuHeaderTemporalDelimiter = 0b0001_0010
	obuHeaderSequenceHeader    = 0b0000_1010
	obuHeaderFrame             = 0b0011_0010
)

// leb128 appends v to buf using AV1's little-endian base-128 variable
// length encoding: the high bit marks every byte but the last, and zero
// encodes as a single 0x00 byte.
func leb128(buf []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			buf = append(buf, b|0x80)
		} else {
			buf = append(buf, b)
			return buf
		}
	}
}

// PackOBUs concatenates, in order: an optional zero-length temporal
// delimiter OBU, a sequence-header OBU wrapping seqHeader, and a FRAME OBU
// wrapping frameHeader immediately followed by tileData (AV1 packs a key
// frame's uncompressed header and its tile group into a single FRAME OBU
// rather than two separate OBUs).
func PackOBUs(seqHeader, frameHeader, tileData []byte, includeTemporalDelimiter bool) []byte {
	var out []byte

	if includeTemporalDelimiter {
		out = append(out, obuHeaderTemporalDelimiter, 0x00)
	}

	out = append(out, obuHeaderSequenceHeader)
	out = leb128(out, uint64(len(seqHeader)))
	out = append(out, seqHeader...)

	out = append(out, obuHeaderFrame)
	out = leb128(out, uint64(len(frameHeader)+len(tileData)))
	out = append(out, frameHeader...)
	out = append(out, tileData...)

	return out
}

// PackAVIF wraps av1Data (the output of PackOBUs, without a temporal
// delimiter requirement either way) into a minimal single-image AVIF file:
// ftyp, meta (hdlr/pitm/iloc/iinf/iprp/ipma) and mdat. itemName is the
// infe box's human-readable item name (conventionally "Color"); the
// caller is responsible for validating it as UTF-8 first.
func PackAVIF(av1Data []byte, cropWidth, cropHeight int, colorPrimaries, transferFunction, matrixCoefficients uint16, itemName string) []byte {
	w := isobmff.NewWriter()

	ftyp := w.OpenBox("ftyp")
	ftyp.String("avif")
	ftyp.U32(0)
	ftyp.String("avifmif1miafMA1B")
	ftyp.Close()

	meta := w.OpenBoxWithVersion("meta", 0, 0)

	hdlr := meta.OpenBoxWithVersion("hdlr", 0, 0)
	hdlr.U32(0)
	hdlr.String("pict")
	hdlr.U32(0)
	hdlr.U32(0)
	hdlr.U32(0)
	hdlr.String("libavif\x00")
	hdlr.Close()

	pitm := meta.OpenBoxWithVersion("pitm", 0, 0)
	pitm.U16(1)
	pitm.Close()

	iloc := meta.OpenBoxWithVersion("iloc", 0, 0)
	iloc.U8(0x44)
	iloc.U8(0)
	iloc.U16(1) // item_count
	iloc.U16(1) // item_ID
	iloc.U16(0) // data_reference_index
	iloc.U16(1) // extent_count
	contentPosMarker := iloc.MarkU32()
	iloc.U32(uint32(len(av1Data)))
	iloc.Close()

	iinf := meta.OpenBoxWithVersion("iinf", 0, 0)
	iinf.U16(1) // entry_count
	infe := iinf.OpenBoxWithVersion("infe", 2, 0)
	infe.U16(1) // item_ID
	infe.U16(0) // item_protection_index
	infe.String("av01")
	infe.String(itemName + "\x00")
	infe.Close()
	iinf.Close()

	iprp := meta.OpenBox("iprp")
	ipco := iprp.OpenBox("ipco")

	ispe := ipco.OpenBoxWithVersion("ispe", 0, 0)
	ispe.U32(uint32(cropWidth))
	ispe.U32(uint32(cropHeight))
	ispe.Close()

	pixi := ipco.OpenBoxWithVersion("pixi", 0, 0)
	pixi.U8(3)
	pixi.U8(8)
	pixi.U8(8)
	pixi.U8(8)
	pixi.Close()

	av1C := ipco.OpenBox("av1C")
	av1C.U8(0x81)
	av1C.U8(0x1F)
	av1C.U8(0b0000_1110)
	av1C.U8(0x10)
	av1C.Close()

	colr := ipco.OpenBox("colr")
	colr.String("nclx")
	colr.U16(colorPrimaries)
	colr.U16(transferFunction)
	colr.U16(matrixCoefficients)
	colr.U8(0) // full_range_flag: false, plus 7 reserved bits
	colr.Close()

	ipco.Close()

	ipma := iprp.OpenBoxWithVersion("ipma", 0, 0)
	ipma.U32(1) // entry_count
	ipma.U16(1) // item_ID
	ipma.U8(4)  // association_count
	ipma.Bytes([]byte{1, 2, 0x83, 4})
	ipma.Close()

	iprp.Close()
	meta.Close()

	mdat := w.OpenBox("mdat")
	contentFilePos := mdat.Pos()
	mdat.Bytes(av1Data)
	mdat.Close()

	w.PatchU32(contentPosMarker, uint32(contentFilePos))

	return w.Bytes()
}
