package gifdispose

import (
	"fmt"
	"image"
	"image/color"
)

var _ = fmt.Print

// Canvas is the persistent full size pixel buffer of an animation. The pixel
// at (x, y) is Pix[y*Width + x].
type Canvas struct {
	Pix           []RGBA8
	Width, Height int
}

func NewCanvas(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("gifdispose: negative canvas size %dx%d", width, height))
	}
	return &Canvas{Pix: make([]RGBA8, width*height), Width: width, Height: height}
}

func (c *Canvas) ColorModel() color.Model { return RGBA8Model }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.Width, c.Height) }

func (c *Canvas) At(x, y int) color.Color { return c.RGBA8At(x, y) }

func (c *Canvas) RGBA8At(x, y int) RGBA8 {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return RGBA8{}
	}
	return c.Pix[y*c.Width+x]
}

func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetRGBA8(x, y, toRGBA8(col))
}

func (c *Canvas) SetRGBA8(x, y int, p RGBA8) {
	if !(image.Point{x, y}.In(c.Bounds())) {
		return
	}
	c.Pix[y*c.Width+x] = p
}

// Opaque reports whether every pixel of the canvas is fully opaque.
func (c *Canvas) Opaque() bool {
	for _, p := range c.Pix {
		if p.A != 0xff {
			return false
		}
	}
	return true
}

// Fill sets every pixel of the canvas to p.
func (c *Canvas) Fill(p RGBA8) {
	for i := range c.Pix {
		c.Pix[i] = p
	}
}

func (c *Canvas) Clone() *Canvas {
	ans := &Canvas{Pix: make([]RGBA8, len(c.Pix)), Width: c.Width, Height: c.Height}
	copy(ans.Pix, c.Pix)
	return ans
}

// NRGBA returns a copy of the canvas as an *image.NRGBA.
func (c *Canvas) NRGBA() *image.NRGBA {
	ans := image.NewNRGBA(c.Bounds())
	for i, p := range c.Pix {
		s := ans.Pix[i*4 : i*4+4 : i*4+4] // Small cap improves performance, see https://golang.org/issue/27857
		s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
	}
	return ans
}

// Region returns a mutable view of the pixels of c inside r. The view shares
// pixels with c. An empty r yields an empty view on which every operation is a
// no-op. A non-empty r that is not contained in the canvas bounds is a
// programming error and panics rather than being silently clipped.
func (c *Canvas) Region(r image.Rectangle) Region {
	if r.Empty() {
		return Region{}
	}
	if !r.In(c.Bounds()) {
		panic(fmt.Sprintf("gifdispose: region %v is outside the canvas bounds %v", r, c.Bounds()))
	}
	return Region{canvas: c, rect: r}
}

// Region is a rectangular view into a Canvas. Its rows are visited top to
// bottom and each row left to right, independent of the canvas stride.
type Region struct {
	canvas *Canvas
	rect   image.Rectangle
}

func (r Region) Rect() image.Rectangle { return r.rect }

func (r Region) Empty() bool { return r.canvas == nil }

// Len is the number of pixels in the region.
func (r Region) Len() int { return r.rect.Dx() * r.rect.Dy() }

// Row returns row y of the region, relative to its top edge. The returned
// slice aliases the canvas.
func (r Region) Row(y int) []RGBA8 {
	if y < 0 || y >= r.rect.Dy() {
		panic(fmt.Sprintf("gifdispose: row %d out of range for region %v", y, r.rect))
	}
	start := (r.rect.Min.Y+y)*r.canvas.Width + r.rect.Min.X
	return r.canvas.Pix[start : start+r.rect.Dx() : start+r.rect.Dx()]
}

func (r Region) Fill(p RGBA8) {
	if r.Empty() {
		return
	}
	for y := range r.rect.Dy() {
		row := r.Row(y)
		for i := range row {
			row[i] = p
		}
	}
}

// CopyTo copies the region's pixels into dst in row-major order and returns
// the number of pixels copied.
func (r Region) CopyTo(dst []RGBA8) (n int) {
	if r.Empty() {
		return 0
	}
	for y := range r.rect.Dy() {
		c := copy(dst, r.Row(y))
		n += c
		dst = dst[c:]
		if len(dst) == 0 {
			break
		}
	}
	return
}

// CopyFrom writes src into the region in row-major order and returns the
// number of pixels written. Copying stops when src is exhausted.
func (r Region) CopyFrom(src []RGBA8) (n int) {
	if r.Empty() {
		return 0
	}
	for y := range r.rect.Dy() {
		c := copy(r.Row(y), src)
		n += c
		src = src[c:]
		if len(src) == 0 {
			break
		}
	}
	return
}

// Pixels returns a row-major copy of the region's pixels.
func (r Region) Pixels() []RGBA8 {
	ans := make([]RGBA8, r.Len())
	r.CopyTo(ans)
	return ans
}
