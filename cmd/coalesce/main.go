// Command coalesce converts a GIF animation into an animated PNG whose frames
// are the fully composited GIF frames.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"log"
	"os"
	"time"

	"github.com/kovidgoyal/gifdispose"
	"github.com/kovidgoyal/gifdispose/export"
	"go.uber.org/zap"
)

var _ = fmt.Print

func loop_count(g *gif.GIF) uint {
	switch {
	case g.LoopCount == 0:
		return 0
	case g.LoopCount < 0:
		return 1
	default:
		return uint(g.LoopCount) + 1
	}
}

// frame_delay converts a GIF delay in centiseconds. Like browsers, delays of
// 10ms or less play as 100ms.
func frame_delay(cs int) time.Duration {
	if cs <= 1 {
		return 100 * time.Millisecond
	}
	return time.Duration(cs) * 10 * time.Millisecond
}

func main() {
	scale := flag.Int("scale", 1, "integer upscaling factor")
	declared_bg := flag.Bool("declared-bg", false, "dispose to the declared background color instead of transparency")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: coalesce [flags] input.gif [output.apng]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
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
	output_file := input + ".apng"
	if flag.NArg() == 2 {
		output_file = flag.Arg(1)
	}

	in, err := os.Open(input)
	if err != nil {
		l.Fatal("open", zap.String("path", input), zap.Error(err))
	}
	g, err := gif.DecodeAll(in)
	in.Close()
	if err != nil {
		l.Fatal("decode", zap.String("path", input), zap.Error(err))
	}

	frames := make([]image.Image, 0, len(g.Image))
	delays := make([]time.Duration, 0, len(g.Image))
	err = gifdispose.Coalesce(g, func(i int, c *gifdispose.Canvas) error {
		frames = append(frames, export.Scale(c.NRGBA(), *scale))
		var cs int
		if i < len(g.Delay) {
			cs = g.Delay[i]
		}
		delays = append(delays, frame_delay(cs))
		return nil
	}, gifdispose.DeclaredBackground(*declared_bg))
	if err != nil {
		l.Fatal("composite", zap.String("path", input), zap.Error(err))
	}

	out, err := os.OpenFile(output_file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		l.Fatal("create", zap.String("path", output_file), zap.Error(err))
	}
	err = export.EncodeAPNG(out, frames, delays, loop_count(g))
	if errc := out.Close(); err == nil {
		err = errc
	}
	if err != nil {
		l.Fatal("encode", zap.String("path", output_file), zap.Error(err))
	}
	l.Info("saved", zap.String("path", output_file), zap.Int("frames", len(frames)))
}
