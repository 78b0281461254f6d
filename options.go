package gifdispose

type screenConfig struct {
	backgroundIndex    uint8
	hasBackgroundIndex bool
	declaredBackground bool
	initialFill        RGBA8
}

// Option sets an optional parameter for NewScreen and NewScreenFromGIF.
type Option func(*screenConfig)

// BackgroundIndex records the background color index declared by the image.
// It is only used when DeclaredBackground is enabled.
func BackgroundIndex(idx uint8) Option {
	return func(c *screenConfig) {
		c.backgroundIndex, c.hasBackgroundIndex = idx, true
	}
}

// DeclaredBackground returns an Option that makes Background disposal fill
// with the global color table entry at the declared background index. By
// default it is disabled and Background disposal fills with the zero
// (transparent) pixel, which is what browsers do and what real world GIFs
// are authored against.
func DeclaredBackground(enabled bool) Option {
	return func(c *screenConfig) {
		c.declaredBackground = enabled
	}
}

// InitialFill sets the pixel the canvas starts out filled with. Defaults to
// the zero pixel.
func InitialFill(p RGBA8) Option {
	return func(c *screenConfig) {
		c.initialFill = p
	}
}
