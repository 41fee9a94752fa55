// Command sketchdemo draws a point, a line and a triangle with sketch.
//
// By default it opens a gogpu window and runs until the window is closed.
// With -headless it renders offscreen and writes the last frame to -output.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/backend/headless"
	_ "github.com/gogpu/sketch/backend/window"
)

func main() {
	var (
		width     = flag.Uint("width", 800, "window width")
		height    = flag.Uint("height", 600, "window height")
		offscreen = flag.Bool("headless", false, "render offscreen instead of opening a window")
		frames    = flag.Int("frames", 0, "headless: stop after this many frames (0 = when drawing is done); "+
			"a limit reached before the demo has posted everything closes the canvas and the demo panics")
		output    = flag.String("output", "sketch.png", "headless: PNG file for the last frame")
		bg        = flag.String("bg", "white", "background color name or hex value")
		verbose   = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		sketch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	background, err := sketch.ParseColor(*bg)
	if err != nil {
		log.Fatalf("sketchdemo: -bg: %v", err)
	}

	opts := []sketch.Option{
		sketch.WithTitle("sketch demo"),
		sketch.WithBackground(background),
	}
	if *offscreen {
		opts = append(opts, sketch.WithBackend(headless.New(
			headless.WithFrames(*frames),
			headless.WithSnapshot(*output),
		)))
	}

	err = sketch.Draw(uint32(*width), uint32(*height), demo, opts...) //nolint:gosec // window sizes fit uint32
	if err != nil {
		log.Fatalf("sketchdemo: %v", err)
	}
	if *offscreen {
		log.Printf("Frame saved to %s (%dx%d)\n", *output, *width, *height)
	}
}

func demo(ctx *sketch.Context) {
	ctx.DrawPoint(sketch.Px(20, 20), sketch.Red)
	ctx.DrawLine(sketch.Px(20, 20), sketch.Px(700, 500), sketch.Green)
	ctx.DrawTriangle(sketch.Px(20, 20), sketch.Px(600, 500), sketch.Px(400, 200), sketch.Blue)
}
