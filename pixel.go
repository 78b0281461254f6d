package gifdispose

import (
	"fmt"
	"image/color"
)

var _ = fmt.Print

// RGBA8 is a non-premultiplied 8-bit per channel pixel. Its zero value is
// fully transparent black and is the default pixel of a Canvas.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB8 is a pixel without an alpha channel, as stored in GIF color tables.
type RGB8 struct {
	R, G, B uint8
}

// Opaque returns the pixel with full opacity.
func (c RGB8) Opaque() RGBA8 { return RGBA8{c.R, c.G, c.B, 0xff} }

func (c RGBA8) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c RGBA8) String() string {
	return fmt.Sprintf("RGBA8{%02X %02X %02X %02X}", c.R, c.G, c.B, c.A)
}

// RGB drops the alpha channel.
func (c RGBA8) RGB() RGB8 { return RGB8{c.R, c.G, c.B} }

func (c RGBA8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

func rgba8Model(c color.Color) color.Color {
	if _, ok := c.(RGBA8); ok {
		return c
	}
	return toRGBA8(c)
}

func toRGBA8(c color.Color) RGBA8 {
	switch v := c.(type) {
	case RGBA8:
		return v
	case color.NRGBA:
		return RGBA8{v.R, v.G, v.B, v.A}
	}
	r, g, b, a := c.RGBA()
	switch a {
	case 0xffff:
		return RGBA8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), 0xff}
	case 0:
		return RGBA8{}
	default:
		// Color.RGBA returns an alpha-premultiplied color, so r <= a && g <= a && b <= a.
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
		return RGBA8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}
}

var RGBA8Model color.Model = color.ModelFunc(rgba8Model)
