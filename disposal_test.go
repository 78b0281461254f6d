package gifdispose

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptureDisposal(t *testing.T) {
	c := numbered_canvas(3, 3)
	r := image.Rect(1, 1, 3, 2)

	require.Equal(t, keepDisposal{}, captureDisposal(Keep, r, c))
	require.Equal(t, keepDisposal{}, captureDisposal(Unspecified, r, c))
	require.Equal(t, backgroundDisposal{rect: r}, captureDisposal(Background, r, c))
	require.Equal(t, keepDisposal{}, captureDisposal(Previous, image.Rectangle{}, c))

	d, ok := captureDisposal(Previous, r, c).(previousDisposal)
	require.True(t, ok)
	require.Equal(t, []RGBA8{c.Pix[4], c.Pix[5]}, d.saved)

	// the snapshot is a copy, not a view
	before := c.Clone()
	c.Region(r).Fill(red)
	d.apply(c, blue)
	require.Equal(t, before.Pix, c.Pix)

	backgroundDisposal{rect: r}.apply(c, green)
	require.Equal(t, green, c.RGBA8At(1, 1))
	require.Equal(t, green, c.RGBA8At(2, 1))
	require.Equal(t, before.RGBA8At(0, 1), c.RGBA8At(0, 1))
}

func TestDisposalMethodString(t *testing.T) {
	require.Equal(t, "Background", Background.String())
	require.Equal(t, "Previous", Previous.String())
	require.Equal(t, "DisposalMethod(7)", DisposalMethod(7).String())
}
