// Command explode writes every composited frame of a GIF animation to its own
// image file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/gifdispose"
	"github.com/kovidgoyal/gifdispose/export"
	"go.uber.org/zap"
)

var _ = fmt.Print

func main() {
	prefix := flag.String("prefix", "", "output filename prefix (default: input filename without extension)")
	format := flag.String("format", "png", "output format: png, bmp, tiff, jpeg or gif")
	scale := flag.Int("scale", 1, "integer upscaling factor")
	quality := flag.Int("quality", 95, "JPEG quality, 1 to 100")
	colors := flag.Int("colors", 256, "maximum number of colors in GIF output")
	best := flag.Bool("best", false, "use the best (slowest) PNG compression")
	declared_bg := flag.Bool("declared-bg", false, "dispose to the declared background color instead of transparency")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: explode [flags] input.gif")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	input := flag.Arg(0)
	f, err := export.FormatFromExtension(*format)
	if err != nil || f == export.APNG {
		l.Fatal("output format", zap.String("format", *format), zap.Error(export.ErrUnsupportedFormat))
	}
	output_prefix := *prefix
	if output_prefix == "" {
		output_prefix = strings.TrimSuffix(input, filepath.Ext(input))
	}

	g, err := decode(input)
	if err != nil {
		l.Fatal("decode", zap.String("path", input), zap.Error(err))
	}
	l.Debug("decoded", zap.String("path", input), zap.Int("frames", len(g.Image)),
		zap.Int("width", g.Config.Width), zap.Int("height", g.Config.Height))

	frames := make([]image.Image, 0, len(g.Image))
	err = gifdispose.Coalesce(g, func(i int, c *gifdispose.Canvas) error {
		frames = append(frames, export.Scale(c.NRGBA(), *scale))
		l.Debug("composited", zap.Int("frame", i+1))
		return nil
	}, gifdispose.DeclaredBackground(*declared_bg))
	if err != nil {
		l.Fatal("composite", zap.String("path", input), zap.Error(err))
	}

	name := func(i int) string { return fmt.Sprintf("%s-%04d.%s", output_prefix, i+1, f.Extension()) }
	opts := []export.EncodeOption{export.JPEGQuality(*quality), export.GIFColors(*colors)}
	if *best {
		opts = append(opts, export.PNGCompressionLevel(png.BestCompression))
	}
	if err = export.SaveAll(frames, name, opts...); err != nil {
		l.Fatal("save", zap.Error(err))
	}
	for i := range frames {
		fmt.Println(name(i))
	}
}

func decode(path string) (*gif.GIF, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return gif.DecodeAll(file)
}
