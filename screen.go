package gifdispose

import (
	"errors"
	"fmt"
)

var _ = fmt.Print

// ErrNoPalette means a frame has no local color table and the screen has no
// global one, so its indices cannot be resolved to colors.
var ErrNoPalette = errors.New("gifdispose: no palette")

// Screen composites GIF frames onto a Canvas, applying each frame's disposal
// method just before the following frame is drawn.
//
// A Screen must not be used from multiple goroutines at once.
type Screen struct {
	canvas     *Canvas
	global_pal []RGBA8
	bg_fill    RGBA8
	cfg        screenConfig
	pending    disposal
}

// NewScreen creates a screen of the given logical size. global is the global
// color table and may be nil.
func NewScreen(width, height int, global []RGBA8, opts ...Option) *Screen {
	cfg := screenConfig{}
	for _, option := range opts {
		option(&cfg)
	}
	self := &Screen{
		canvas:     NewCanvas(width, height),
		global_pal: global,
		cfg:        cfg,
		pending:    keepDisposal{},
	}
	if cfg.declaredBackground && cfg.hasBackgroundIndex && int(cfg.backgroundIndex) < len(global) {
		self.bg_fill = global[cfg.backgroundIndex]
	}
	self.canvas.Fill(cfg.initialFill)
	return self
}

func (self *Screen) Width() int  { return self.canvas.Width }
func (self *Screen) Height() int { return self.canvas.Height }

// Canvas returns the current composite. The canvas is owned by the screen and
// changes on the next call to Blit, callers must Clone it to keep it.
func (self *Screen) Canvas() *Canvas { return self.canvas }

// Reset restores the screen to its initial state, dropping any pending
// disposal.
func (self *Screen) Reset() {
	self.canvas.Fill(self.cfg.initialFill)
	self.pending = keepDisposal{}
}

func (self *Screen) palette_for(f *Frame) (*ColorTable, error) {
	pal := f.Palette
	if pal == nil {
		pal = self.global_pal
	}
	if pal == nil {
		return nil, ErrNoPalette
	}
	return NewColorTable(pal), nil
}

func (self *Screen) dispose() {
	self.pending.apply(self.canvas, self.bg_fill)
	self.pending = keepDisposal{}
}

// Blit advances the screen by one frame: the disposal left by the previous
// frame is applied, then f is drawn through its color table skipping
// transparent pixels. The result is available from Canvas.
//
// If neither f nor the screen has a color table ErrNoPalette is returned and
// the screen is left untouched.
func (self *Screen) Blit(f *Frame) error {
	pal, err := self.palette_for(f)
	if err != nil {
		return err
	}
	self.dispose()
	self.draw(f, pal)
	return nil
}

func (self *Screen) draw(f *Frame, pal *ColorTable) {
	r := f.Rect()
	self.pending = captureDisposal(f.Disposal, r, self.canvas)
	dst := self.canvas.Region(r)
	if dst.Empty() {
		return
	}
	w := r.Dx()
	src := f.Pix
	for y := range r.Dy() {
		if len(src) == 0 {
			break
		}
		row := dst.Row(y)
		s := src[:min(w, len(src))]
		if f.HasTransparent {
			for x, idx := range s {
				if idx != f.Transparent {
					row[x] = pal[idx]
				}
			}
		} else {
			for x, idx := range s {
				row[x] = pal[idx]
			}
		}
		src = src[len(s):]
	}
}

// Dispose applies the pending disposal without drawing anything and returns
// a handle for completing the frame. The canvas is then in the intermediate
// "disposed but not yet redrawn" state, which is never a displayed image but
// is useful to frame differencing encoders. The caller must call
// DisposedScreen.Blit before reading the canvas for display again, otherwise
// the canvas stays in the intermediate state.
func (self *Screen) Dispose() *DisposedScreen {
	self.dispose()
	return &DisposedScreen{screen: self}
}

// DisposedScreen is a Screen whose pending disposal has been applied but whose
// next frame has not yet been drawn.
type DisposedScreen struct {
	screen *Screen
}

// Canvas returns the canvas in its disposed state.
func (self *DisposedScreen) Canvas() *Canvas { return self.screen.canvas }

// Blit completes the frame started by Screen.Dispose. If the frame has no
// usable color table ErrNoPalette is returned, the canvas stays disposed and
// no disposal is pending.
func (self *DisposedScreen) Blit(f *Frame) error {
	pal, err := self.screen.palette_for(f)
	if err != nil {
		return err
	}
	self.screen.draw(f, pal)
	return nil
}
