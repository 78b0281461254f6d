/*
Package gifdispose implements GIF frame disposal and compositing.

Decoders such as image/gif expose only the raw frames of an animation: a
rectangle of palette indices, an optional local color table, an optional
transparent index and a disposal method. Displaying the animation correctly
requires compositing every frame onto a persistent canvas and restoring part
of that canvas between frames, which is what Screen does.

	g, err := gif.DecodeAll(f)
	if err != nil {
		return err
	}
	err = gifdispose.Coalesce(g, func(i int, c *gifdispose.Canvas) error {
		return png.Encode(out[i], c)
	})

Background disposal fills with the transparent zero pixel rather than the
declared background color, matching browsers. Use DeclaredBackground to
change that.
*/
package gifdispose

import "fmt"

type GifDisposeVersion struct {
	Major, Minor, Patch uint
}

func (v GifDisposeVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v GifDisposeVersion) Equal(o GifDisposeVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v GifDisposeVersion) After(o GifDisposeVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v GifDisposeVersion) Before(o GifDisposeVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = GifDisposeVersion{0, 1, 0}
