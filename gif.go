package gifdispose

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
)

// NewScreenFromGIF creates a screen sized to the logical screen of g, using its
// global color table and declared background index. When g has no usable
// logical screen size the union of the frame bounds is used.
func NewScreenFromGIF(g *gif.GIF, opts ...Option) *Screen {
	width, height := g.Config.Width, g.Config.Height
	if width <= 0 || height <= 0 {
		var b image.Rectangle
		for _, img := range g.Image {
			b = b.Union(img.Bounds())
		}
		width, height = b.Max.X, b.Max.Y
	}
	var global []RGBA8
	if pal, ok := g.Config.ColorModel.(color.Palette); ok && len(pal) > 0 {
		global = PaletteFromColors(pal)
	}
	opts = append([]Option{BackgroundIndex(g.BackgroundIndex)}, opts...)
	return NewScreen(width, height, global, opts...)
}

// Coalesce composites every frame of g and calls fn with the frame number
// (starting at zero) and the composite. The canvas passed to fn is reused
// for the following frames. Iteration stops at the first error.
func Coalesce(g *gif.GIF, fn func(i int, c *Canvas) error, opts ...Option) error {
	s := NewScreenFromGIF(g, opts...)
	for i, img := range g.Image {
		var disposal_method byte
		if i < len(g.Disposal) {
			disposal_method = g.Disposal[i]
		}
		if err := s.Blit(FrameFromPaletted(img, disposal_method)); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
		if err := fn(i, s.Canvas()); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
	}
	return nil
}
