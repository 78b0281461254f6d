package gifdispose

import (
	"fmt"
	"image"
)

// DisposalMethod is the per-frame directive describing what happens to the
// frame's rectangle before the next frame is drawn. The values match the
// GIF graphic control extension and the image/gif Disposal constants.
type DisposalMethod uint8

const (
	Unspecified DisposalMethod = iota // treated as Keep
	Keep
	Background // fill the rectangle with the background pixel
	Previous   // restore the rectangle to its contents before the frame was drawn
)

func (m DisposalMethod) String() string {
	switch m {
	case Unspecified:
		return "Unspecified"
	case Keep:
		return "Keep"
	case Background:
		return "Background"
	case Previous:
		return "Previous"
	}
	return fmt.Sprintf("DisposalMethod(%d)", uint8(m))
}

// disposal is the restoration pending for the next frame. Exactly one of
// keepDisposal, backgroundDisposal or previousDisposal.
type disposal interface {
	apply(c *Canvas, fill RGBA8)
}

type keepDisposal struct{}

type backgroundDisposal struct {
	rect image.Rectangle
}

type previousDisposal struct {
	rect  image.Rectangle
	saved []RGBA8
}

func (keepDisposal) apply(*Canvas, RGBA8) {}

func (d backgroundDisposal) apply(c *Canvas, fill RGBA8) {
	c.Region(d.rect).Fill(fill)
}

func (d previousDisposal) apply(c *Canvas, _ RGBA8) {
	c.Region(d.rect).CopyFrom(d.saved)
}

// captureDisposal records what must be done to r once the frame about to be
// drawn there has been displayed. It must be called before the frame's pixels
// are written, so that Previous can snapshot the rectangle.
func captureDisposal(method DisposalMethod, r image.Rectangle, c *Canvas) disposal {
	if r.Empty() {
		return keepDisposal{}
	}
	switch method {
	case Background:
		return backgroundDisposal{rect: r}
	case Previous:
		return previousDisposal{rect: r, saved: c.Region(r).Pixels()}
	}
	return keepDisposal{}
}
