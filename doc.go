// Package sketch provides immediate-mode point, line and triangle drawing
// into a GPU-backed window.
//
// # Overview
//
// Drawing code runs on its own goroutine and posts primitives through a
// Context. The render loop batches them into runs of same-kind primitives
// and draws every run with a pipeline compiled for its topology through
// gogpu/wgpu. Everything posted so far is redrawn on each frame over a
// cleared background.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sketch"
//	    _ "github.com/gogpu/sketch/backend/window"
//	)
//
//	func main() {
//	    err := sketch.Draw(800, 600, func(ctx *sketch.Context) {
//	        ctx.DrawPoint(sketch.Px(20, 20), sketch.Red)
//	        ctx.DrawLine(sketch.Px(20, 20), sketch.Px(700, 500), sketch.Green)
//	        ctx.DrawTriangle(sketch.Px(20, 20), sketch.Px(600, 500), sketch.Px(400, 200), sketch.Blue)
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Backends
//
// A Backend opens the window and drives its event loop. backend/window uses
// gogpu; backend/headless renders offscreen on any HAL device and can write
// the result as a PNG. Backends register themselves on import; WithBackend
// picks one explicitly.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates are mapped to device space against the canvas size captured
// when the Context is created. Windows are not resizable. Pixels outside the
// canvas are clipped.
package sketch

// Version is the current version of the library.
const Version = "0.1.0"
