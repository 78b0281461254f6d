package gifdispose

import (
	"image/color"
)

// ColorTable is a fully populated GIF color table. Every 8-bit index is
// valid, so lookups need no bounds checks.
type ColorTable [256]RGBA8

// NewColorTable builds a ColorTable from entries. Missing entries are the
// zero pixel, as indexed pixels may legally refer to unused slots. Entries
// past 256 are ignored.
func NewColorTable(entries []RGBA8) *ColorTable {
	var ans ColorTable
	copy(ans[:], entries)
	return &ans
}

// PaletteFromRGB converts packed R, G, B triples into opaque pixels. A
// trailing partial triple is ignored.
func PaletteFromRGB(b []byte) []RGBA8 {
	ans := make([]RGBA8, 0, len(b)/3)
	for len(b) >= 3 {
		ans = append(ans, RGB8{b[0], b[1], b[2]}.Opaque())
		b = b[3:]
	}
	return ans
}

// PaletteFromColors converts a color.Palette, such as the ones produced by
// image/gif, into pixels.
func PaletteFromColors(p color.Palette) []RGBA8 {
	if p == nil {
		return nil
	}
	ans := make([]RGBA8, len(p))
	for i, c := range p {
		ans[i] = toRGBA8(c)
	}
	return ans
}
