package export

import (
	"fmt"
	"image"
	"io"
	"math"
	"time"

	"github.com/kettek/apng"
)

var _ = fmt.Print

// converts a time.Duration to a numerator and denominator of type uint16.
// It finds the best rational approximation of the duration in seconds.
func as_fraction(d time.Duration) (num, den uint16) {
	if d <= 0 {
		return 0, 1
	}
	val := d.Seconds()

	// Continued fractions: keep the convergent closest to val whose
	// numerator and denominator both fit in a uint16.
	bestNum, bestDen := uint16(0), uint16(1)
	bestError := math.Abs(val)

	var h, k [3]int64
	h[0], k[0] = 0, 1
	h[1], k[1] = 1, 0
	f := val

	for range 100 {
		a := int64(f)
		h[2] = a*h[1] + h[0]
		k[2] = a*k[1] + k[0]
		if h[2] > math.MaxUint16 || k[2] > math.MaxUint16 {
			break
		}
		if e := math.Abs(val - float64(h[2])/float64(k[2])); e < bestError {
			bestError, bestNum, bestDen = e, uint16(h[2]), uint16(k[2])
		}
		if f-float64(a) == 0.0 {
			break
		}
		f = 1.0 / (f - float64(a))
		h[0], h[1] = h[1], h[2]
		k[0], k[1] = k[1], k[2]
	}
	return bestNum, bestDen
}

// EncodeAPNG writes already composited frames as an animated PNG. Every frame
// is a full canvas snapshot so frames replace each other with no blending.
// delays may be shorter than frames, missing delays are zero. loopCount is 0
// for infinite looping.
func EncodeAPNG(w io.Writer, frames []image.Image, delays []time.Duration, loopCount uint) error {
	switch len(frames) {
	case 0:
		return fmt.Errorf("export: no frames to encode")
	case 1:
		return Encode(w, frames[0], PNG)
	}
	a := apng.APNG{LoopCount: loopCount}
	for i, img := range frames {
		f := apng.Frame{
			Image: img, DisposeOp: apng.DISPOSE_OP_NONE, BlendOp: apng.BLEND_OP_SOURCE,
		}
		if i < len(delays) {
			f.DelayNumerator, f.DelayDenominator = as_fraction(delays[i])
		}
		a.Frames = append(a.Frames, f)
	}
	return apng.Encode(w, a)
}
