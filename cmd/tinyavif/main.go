// Command tinyavif encodes a single planar 4:2:0 YUV4MPEG2 frame into a
// raw AV1 OBU stream or a minimal AVIF file.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cocosip/go-tinyavif/av1enc"
	"github.com/cocosip/go-tinyavif/hls"
	"github.com/cocosip/go-tinyavif/y4m"
	"golang.org/x/text/encoding/unicode"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("tinyavif", flag.ContinueOnError)
	output := fs.String("o", "", "output path (default: input path with its extension replaced by .avif)")
	qindex := fs.Uint("q", 100, "quantizer index (1-255; 0 is lossless and unsupported)")
	fs.StringVar(output, "output", "", "long form of -o")
	fs.UintVar(qindex, "qindex", 100, "long form of -q")
	colorPrimaries := fs.Uint("color-primaries", 2, "AV1/AVIF color_primaries code point")
	transferFunction := fs.Uint("transfer-function", 2, "AV1/AVIF transfer_characteristics code point")
	matrixCoefficients := fs.Uint("matrix-coefficients", 2, "AV1/AVIF matrix_coefficients code point")
	itemName := fs.String("item-name", "Color", "AVIF infe item name override")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "tinyavif: missing input .y4m path")
		return 2
	}
	inputPath := fs.Arg(0)

	if filepath.Ext(inputPath) != ".y4m" {
		fmt.Fprintf(os.Stderr, "tinyavif: input %q must have a .y4m extension\n", inputPath)
		return 2
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".avif"
	}
	ext := filepath.Ext(outputPath)
	if ext != ".obu" && ext != ".avif" {
		fmt.Fprintf(os.Stderr, "tinyavif: output %q must have a .obu or .avif extension\n", outputPath)
		return 2
	}

	if *qindex < 1 || *qindex > 255 {
		fmt.Fprintf(os.Stderr, "tinyavif: -q must be in 1..255 (got %d)\n", *qindex)
		return 2
	}

	validItemName, err := validateItemName(*itemName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinyavif: --item-name: %v\n", err)
		return 2
	}
	if err := encodeFile(inputPath, outputPath, uint8(*qindex), uint16(*colorPrimaries), uint16(*transferFunction), uint16(*matrixCoefficients), validItemName); err != nil {
		fmt.Fprintf(os.Stderr, "tinyavif: %v\n", err)
		return 1
	}
	return 0
}

// validateItemName confirms name is valid UTF-8 by round-tripping it
// through a UTF-8 decoder, the one place in this domain
// golang.org/x/text/encoding has a legitimate job to do.
func validateItemName(name string) (string, error) {
	decoder := unicode.UTF8.NewDecoder()
	decoded, err := decoder.String(name)
	if err != nil {
		return "", fmt.Errorf("not valid UTF-8: %w", err)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("not valid UTF-8")
	}
	return decoded, nil
}

func encodeFile(inputPath, outputPath string, qindex uint8, colorPrimaries, transferFunction, matrixCoefficients uint16, itemName string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	reader, err := y4m.NewReader(in)
	if err != nil {
		return fmt.Errorf("reading y4m header: %w", err)
	}
	source, err := reader.ReadFrame()
	if err != nil {
		return fmt.Errorf("reading y4m frame: %w", err)
	}

	cropWidth, cropHeight := source.Y().CropWidth(), source.Y().CropHeight()

	enc := av1enc.NewEncoder(cropWidth, cropHeight)
	seqHeader := enc.GenerateSequenceHeader()
	frameHeader := enc.GenerateFrameHeader(qindex, false)
	tileData, _ := enc.EncodeImage(source, qindex)

	av1Data := hls.PackOBUs(seqHeader, frameHeader, tileData, true)

	var out []byte
	switch filepath.Ext(outputPath) {
	case ".obu":
		out = av1Data
	case ".avif":
		out = hls.PackAVIF(av1Data, cropWidth, cropHeight, colorPrimaries, transferFunction, matrixCoefficients, itemName)
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
