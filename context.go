package sketch

import (
	"errors"
	"fmt"

	"github.com/gogpu/sketch/internal/batch"
	"github.com/gogpu/sketch/internal/queue"
)

// Context posts draw requests to a Canvas's render loop.
//
// Coordinates are pixels with the origin at the top-left corner. Each call
// converts them to device coordinates against the canvas size captured when
// the Context was created, attaches the color to every vertex and posts one
// event. Posting never blocks.
//
// A Context is safe for concurrent use. Events from one goroutine are drawn
// in the order they were posted; events from different goroutines are
// interleaved in arrival order.
type Context struct {
	width, height uint32
	events        *queue.Queue[drawEvent]
}

func newContext(width, height uint32, events *queue.Queue[drawEvent]) *Context {
	return &Context{width: width, height: height, events: events}
}

// Width returns the canvas width in pixels.
func (c *Context) Width() uint32 { return c.width }

// Height returns the canvas height in pixels.
func (c *Context) Height() uint32 { return c.height }

// DrawPoint draws a single pixel-sized point.
// It panics with an error wrapping ErrCanvasClosed if the render loop has
// exited; use TryDrawPoint to get the error instead.
func (c *Context) DrawPoint(p Pixel, col Color) {
	must(c.TryDrawPoint(p, col))
}

// DrawLine draws a line segment from p0 to p1.
// It panics with an error wrapping ErrCanvasClosed if the render loop has
// exited.
func (c *Context) DrawLine(p0, p1 Pixel, col Color) {
	must(c.TryDrawLine(p0, p1, col))
}

// DrawTriangle draws a filled triangle.
// It panics with an error wrapping ErrCanvasClosed if the render loop has
// exited.
func (c *Context) DrawTriangle(p0, p1, p2 Pixel, col Color) {
	must(c.TryDrawTriangle(p0, p1, p2, col))
}

// TryDrawPoint is DrawPoint returning ErrCanvasClosed instead of panicking.
func (c *Context) TryDrawPoint(p Pixel, col Color) error {
	return c.post(pointEvent(c.vertex(p, col)))
}

// TryDrawLine is DrawLine returning ErrCanvasClosed instead of panicking.
func (c *Context) TryDrawLine(p0, p1 Pixel, col Color) error {
	return c.post(lineEvent(c.vertex(p0, col), c.vertex(p1, col)))
}

// TryDrawTriangle is DrawTriangle returning ErrCanvasClosed instead of
// panicking.
func (c *Context) TryDrawTriangle(p0, p1, p2 Pixel, col Color) error {
	return c.post(triangleEvent(c.vertex(p0, col), c.vertex(p1, col), c.vertex(p2, col)))
}

func (c *Context) post(ev drawEvent) error {
	if err := c.events.Push(ev); err != nil {
		if errors.Is(err, queue.ErrClosed) {
			return fmt.Errorf("post %s: %w", ev.kind, ErrCanvasClosed)
		}
		return err
	}
	return nil
}

func (c *Context) vertex(p Pixel, col Color) batch.Vertex {
	return batch.Vertex{
		Position: [2]float32{convertX(p.X, c.width), convertY(p.Y, c.height)},
		Color:    col.array(),
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
