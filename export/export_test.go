package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kettek/apng"
	"github.com/stretchr/testify/require"
)

var _ = fmt.Print

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{0xff, 0, 0, 0xff})
			}
		}
	}
	return img
}

func TestFormatFromFilename(t *testing.T) {
	testCases := []struct {
		name string
		want Format
		err  error
	}{
		{"a.png", PNG, nil},
		{"a.PNG", PNG, nil},
		{"dir/a.apng", APNG, nil},
		{"a.jpeg", JPEG, nil},
		{"a.jpg", JPEG, nil},
		{"a.tif", TIFF, nil},
		{"a.bmp", BMP, nil},
		{"a.gif", GIF, nil},
		{"a.webp", UNKNOWN, ErrUnsupportedFormat},
		{"a", UNKNOWN, ErrUnsupportedFormat},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := FormatFromFilename(tc.name)
			require.Equal(t, tc.want, f)
			require.ErrorIs(t, err, tc.err)
		})
	}
	require.Equal(t, "TIFF", TIFF.String())
	require.Equal(t, "jpeg", JPEG.Extension())
}

func TestAsFraction(t *testing.T) {
	testCases := []struct {
		d        time.Duration
		num, den uint16
	}{
		{0, 0, 1},
		{-time.Second, 0, 1},
		{time.Second, 1, 1},
		{100 * time.Millisecond, 1, 10},
		{70 * time.Millisecond, 7, 100},
		{1500 * time.Millisecond, 3, 2},
	}
	for _, tc := range testCases {
		t.Run(tc.d.String(), func(t *testing.T) {
			num, den := as_fraction(tc.d)
			require.Equal(t, tc.num, num)
			require.Equal(t, tc.den, den)
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img := checker(3, 2)
	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(f.String(), func(t *testing.T) {
			buf := bytes.Buffer{}
			require.NoError(t, Encode(&buf, img, f))
			require.NotZero(t, buf.Len())
		})
	}
	require.ErrorIs(t, Encode(&bytes.Buffer{}, img, UNKNOWN), ErrUnsupportedFormat)
}

func TestSaveAll(t *testing.T) {
	dir := t.TempDir()
	frames := []image.Image{checker(2, 2), checker(3, 1), checker(1, 4)}
	name := func(i int) string { return filepath.Join(dir, fmt.Sprintf("frame-%d.png", i)) }
	require.NoError(t, SaveAll(frames, name))
	for i, f := range frames {
		file, err := os.Open(name(i))
		require.NoError(t, err)
		img, err := png.Decode(file)
		file.Close()
		require.NoError(t, err)
		require.Equal(t, f.Bounds(), img.Bounds())
	}

	bad := func(i int) string { return filepath.Join(dir, fmt.Sprintf("frame-%d.xyz", i)) }
	require.ErrorIs(t, SaveAll(frames, bad), ErrUnsupportedFormat)
}

func TestScale(t *testing.T) {
	img := checker(2, 2)
	require.Same(t, img, Scale(img, 1))
	s := Scale(img, 3)
	require.Equal(t, image.Rect(0, 0, 6, 6), s.Bounds())
	for y := range 6 {
		for x := range 6 {
			require.Equal(t, img.At(x/3, y/3), s.At(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestEncodeAPNG(t *testing.T) {
	require.Error(t, EncodeAPNG(&bytes.Buffer{}, nil, nil, 0))

	buf := bytes.Buffer{}
	frames := []image.Image{checker(2, 2), checker(2, 2), image.NewNRGBA(image.Rect(0, 0, 2, 2))}
	require.NoError(t, EncodeAPNG(&buf, frames, []time.Duration{100 * time.Millisecond, 50 * time.Millisecond}, 3))
	a, err := apng.DecodeAll(&buf)
	require.NoError(t, err)
	require.Equal(t, uint(3), a.LoopCount)
	require.Len(t, a.Frames, 3)
	require.Equal(t, uint16(1), a.Frames[0].DelayNumerator)
	require.Equal(t, uint16(10), a.Frames[0].DelayDenominator)
	require.Equal(t, uint16(1), a.Frames[1].DelayNumerator)
	require.Equal(t, uint16(20), a.Frames[1].DelayDenominator)

	buf.Reset()
	require.NoError(t, EncodeAPNG(&buf, frames[:1], nil, 0))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}

func TestEncodeOptions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 37)
	}
	encoded := func(f Format, opts ...EncodeOption) *bytes.Buffer {
		buf := bytes.Buffer{}
		require.NoError(t, Encode(&buf, img, f, opts...))
		return &buf
	}

	for _, n := range []int{2, 4, 16} {
		t.Run(fmt.Sprintf("gif-%d", n), func(t *testing.T) {
			g, err := gif.Decode(encoded(GIF, GIFColors(n)))
			require.NoError(t, err)
			require.LessOrEqual(t, len(g.(*image.Paletted).Palette), n)
		})
	}
	g, err := gif.Decode(encoded(GIF, GIFColors(1000)))
	require.NoError(t, err)
	require.LessOrEqual(t, len(g.(*image.Paletted).Palette), 256)

	require.Less(t, encoded(JPEG, JPEGQuality(5)).Len(), encoded(JPEG, JPEGQuality(100)).Len())
	require.Less(t, encoded(PNG, PNGCompressionLevel(png.BestCompression)).Len(), encoded(PNG, PNGCompressionLevel(png.NoCompression)).Len())
}

type failing_close struct{ bytes.Buffer }

func (failing_close) Close() error { return errClosed }

var errClosed = errors.New("close failed")

type test_creator struct{ created []string }

func (c *test_creator) Create(name string) (io.WriteCloser, error) {
	c.created = append(c.created, name)
	return &failing_close{}, nil
}

func TestSaveReportsCloseError(t *testing.T) {
	orig := files
	defer func() { files = orig }()
	tc := &test_creator{}
	files = tc
	require.ErrorIs(t, Save(checker(2, 2), "x.png"), errClosed)
	require.Equal(t, []string{"x.png"}, tc.created)
}
