package gifdispose

import (
	"fmt"
	"image"
)

var _ = fmt.Print

// Frame is one decoded GIF image block: a rectangle of palette indices plus
// the graphic control data that governs how it is composited.
type Frame struct {
	Left, Top, Width, Height uint16
	Disposal                 DisposalMethod
	// Pixels whose index equals Transparent are not drawn, when HasTransparent is set
	Transparent    uint8
	HasTransparent bool
	Palette        []RGBA8 // local color table, nil when the frame has none
	Pix            []uint8 // Width*Height palette indices, row-major
}

func (f *Frame) Rect() image.Rectangle {
	return image.Rect(int(f.Left), int(f.Top), int(f.Left)+int(f.Width), int(f.Top)+int(f.Height))
}

// FrameFromPaletted converts an image decoded by image/gif. image/gif merges
// the local and global color tables into p.Palette and marks the transparent
// entry with zero alpha. A transparent index past the end of the color table
// makes image/gif pad the palette with zero alpha entries up to and including
// that index, so the last zero alpha entry is the declared one.
func FrameFromPaletted(p *image.Paletted, disposal_method byte) *Frame {
	b := p.Bounds()
	ans := &Frame{
		Left: uint16(b.Min.X), Top: uint16(b.Min.Y), Width: uint16(b.Dx()), Height: uint16(b.Dy()),
		Disposal: DisposalMethod(disposal_method),
		Palette:  PaletteFromColors(p.Palette),
	}
	if len(ans.Palette) == 0 {
		ans.Palette = nil
	}
	for i := min(len(ans.Palette), 256) - 1; i >= 0; i-- {
		if ans.Palette[i].A == 0 {
			ans.Transparent, ans.HasTransparent = uint8(i), true
			break
		}
	}
	w, h := b.Dx(), b.Dy()
	ans.Pix = make([]uint8, w*h)
	for y := range h {
		copy(ans.Pix[y*w:(y+1)*w], p.Pix[y*p.Stride:y*p.Stride+w])
	}
	return ans
}
