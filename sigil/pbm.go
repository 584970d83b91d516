// Package sigil loads verified sigil rasters and answers the geometry
// queries that let the diffusion automaton and compositor treat a mask as
// fine linework rather than a filled silhouette.
package sigil

import (
	"fmt"
	"os"
	"strconv"
)

// Mask is an immutable 1-bit-per-pixel raster, row-major, MSB-first
// within each byte. Shared by reference among all active sigil instances.
type Mask struct {
	Width  int
	Height int
	Stride int // bytes per row, ceil(Width/8)
	Bits   []byte
}

func isPBMSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// DecodePBM parses a binary PBM (magic P4). Any structural violation
// (wrong magic, unparsable dimensions, truncated payload) yields nil
// rather than an error: callers treat it as "no mask".
func DecodePBM(data []byte) *Mask {
	if len(data) < 2 || data[0] != 'P' || data[1] != '4' {
		return nil
	}

	idx := 2
	var tokens []string
	for len(tokens) < 2 && idx < len(data) {
		for idx < len(data) && isPBMSpace(data[idx]) {
			idx++
		}
		if idx >= len(data) {
			break
		}
		if data[idx] == '#' {
			for idx < len(data) && data[idx] != '\r' && data[idx] != '\n' {
				idx++
			}
			continue
		}
		start := idx
		for idx < len(data) && !isPBMSpace(data[idx]) {
			idx++
		}
		tokens = append(tokens, string(data[start:idx]))
	}
	if len(tokens) != 2 {
		return nil
	}

	width, err := strconv.Atoi(tokens[0])
	if err != nil || width <= 0 {
		return nil
	}
	height, err := strconv.Atoi(tokens[1])
	if err != nil || height <= 0 {
		return nil
	}

	// Netpbm writers emit a single whitespace byte before the payload;
	// tolerate a run of them.
	for idx < len(data) && isPBMSpace(data[idx]) {
		idx++
	}

	stride := (width + 7) / 8
	expected := stride * height
	if len(data)-idx < expected {
		return nil
	}
	bits := make([]byte, expected)
	copy(bits, data[idx:idx+expected])

	return &Mask{Width: width, Height: height, Stride: stride, Bits: bits}
}

// LoadMaskFile reads and decodes a PBM file, nil on any failure.
func LoadMaskFile(path string) *Mask {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return DecodePBM(data)
}

// EncodePBM serializes a mask back into the binary PBM layout.
func EncodePBM(m *Mask) []byte {
	header := fmt.Sprintf("P4\n%d %d\n", m.Width, m.Height)
	out := make([]byte, 0, len(header)+len(m.Bits))
	out = append(out, header...)
	out = append(out, m.Bits...)
	return out
}
