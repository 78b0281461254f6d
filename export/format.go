package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var _ = fmt.Print

// Format is an output file format.
type Format int

const (
	UNKNOWN Format = iota
	PNG
	APNG
	JPEG
	GIF
	TIFF
	BMP
)

var FormatExts = map[string]Format{
	"png":  PNG,
	"apng": APNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	PNG:  "PNG",
	APNG: "APNG",
	JPEG: "JPEG",
	GIF:  "GIF",
	TIFF: "TIFF",
	BMP:  "BMP",
}

func (f Format) String() string {
	return formatNames[f]
}

// Extension returns the canonical filename extension for f, without the dot.
func (f Format) Extension() string {
	return strings.ToLower(formatNames[f])
}

// ErrUnsupportedFormat means the given image format is not supported.
var ErrUnsupportedFormat = errors.New("export: unsupported image format")

// FormatFromExtension parses image format from filename extension:
// "png", "apng", "jpg" (or "jpeg"), "gif", "tif" (or "tiff") and "bmp" are supported.
func FormatFromExtension(ext string) (Format, error) {
	if f, ok := FormatExts[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
		return f, nil
	}
	return UNKNOWN, ErrUnsupportedFormat
}

// FormatFromFilename parses image format from filename, see FormatFromExtension.
func FormatFromFilename(filename string) (Format, error) {
	return FormatFromExtension(filepath.Ext(filename))
}
