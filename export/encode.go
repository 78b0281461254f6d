// Package export writes composited GIF frames out as still images or as an
// animated PNG.
package export

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type creator interface {
	Create(string) (io.WriteCloser, error)
}

type osCreator struct{}

func (osCreator) Create(name string) (io.WriteCloser, error) { return os.Create(name) }

var files creator = osCreator{}

type encodeConfig struct {
	jpegQuality         int
	gifColors           int
	pngCompressionLevel png.CompressionLevel
}

var defaultEncodeConfig = encodeConfig{
	jpegQuality:         95,
	gifColors:           256,
	pngCompressionLevel: png.DefaultCompression,
}

// EncodeOption sets an optional parameter for Encode, Save and SaveAll.
type EncodeOption func(*encodeConfig)

// JPEGQuality sets the JPEG quality, 1 to 100. Default is 95.
func JPEGQuality(quality int) EncodeOption {
	return func(c *encodeConfig) {
		c.jpegQuality = quality
	}
}

// GIFColors limits the palette of a GIF still to n colors, 1 to 256. Values
// outside that range are clamped. Default is 256.
func GIFColors(n int) EncodeOption {
	return func(c *encodeConfig) {
		c.gifColors = max(1, min(n, 256))
	}
}

// PNGCompressionLevel sets the zlib level of PNG and APNG stills.
func PNGCompressionLevel(level png.CompressionLevel) EncodeOption {
	return func(c *encodeConfig) {
		c.pngCompressionLevel = level
	}
}

// Encode writes the image img to w in the specified format. APNG is written
// as a plain PNG since a single image has no animation.
func Encode(w io.Writer, img image.Image, format Format, opts ...EncodeOption) error {
	cfg := defaultEncodeConfig
	for _, option := range opts {
		option(&cfg)
	}

	switch format {
	case PNG, APNG:
		encoder := png.Encoder{CompressionLevel: cfg.pngCompressionLevel}
		return encoder.Encode(w, img)

	case JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: cfg.jpegQuality})

	case GIF:
		return gif.Encode(w, img, &gif.Options{NumColors: cfg.gifColors})

	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})

	case BMP:
		return bmp.Encode(w, img)
	}

	return ErrUnsupportedFormat
}

// Save saves the image to file with the specified filename.
// The format is determined from the filename extension.
//
// Examples:
//
//	// Save the first composited frame as PNG.
//	err := export.Save(screen.Canvas(), "out.png")
//
//	// Save it as JPEG with optional quality parameter set to 80.
//	err := export.Save(screen.Canvas(), "out.jpg", export.JPEGQuality(80))
func Save(img image.Image, filename string, opts ...EncodeOption) (err error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	file, err := files.Create(filename)
	if err != nil {
		return err
	}
	err = Encode(file, img, f, opts...)
	errc := file.Close()
	if err == nil {
		err = errc
	}
	return err
}
