package export

import (
	"fmt"
	"image"
	"sync"

	"github.com/kovidgoyal/go-parallel"
	"golang.org/x/image/draw"
)

// SaveAll saves every frame to the file named by name(i), encoding frames in
// parallel. The frames must not be modified while SaveAll runs. The first
// error encountered is returned.
func SaveAll(frames []image.Image, name func(i int) string, opts ...EncodeOption) error {
	var mu sync.Mutex
	var first_err error
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			if err := Save(frames[i], name(i), opts...); err != nil {
				mu.Lock()
				if first_err == nil {
					first_err = fmt.Errorf("saving frame %d to %s: %w", i+1, name(i), err)
				}
				mu.Unlock()
				return
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, len(frames)); err != nil {
		return err
	}
	return first_err
}

// Scale enlarges img by an integer factor using nearest neighbour sampling,
// which keeps the hard pixel edges typical of GIF art. A factor below 2
// returns img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
