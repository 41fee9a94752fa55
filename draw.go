package sketch

// Draw opens a width×height canvas, runs fn on its own goroutine with the
// canvas's Context, and runs the render loop on the calling goroutine until
// the window is closed. Real windows need the main goroutine.
//
// Example:
//
//	err := sketch.Draw(800, 600, func(ctx *sketch.Context) {
//	    ctx.DrawPoint(sketch.Px(20, 20), sketch.Red)
//	    ctx.DrawLine(sketch.Px(20, 20), sketch.Px(700, 500), sketch.Green)
//	})
//
// Draw calls made by fn after the window closed panic with ErrCanvasClosed.
func Draw(width, height uint32, fn func(*Context), opts ...Option) error {
	c, err := NewCanvas(width, height, opts...)
	if err != nil {
		return err
	}

	go func() {
		fn(c.Context())
		if f, ok := c.win.(Finisher); ok {
			f.Finish()
		}
	}()
	return c.Run()
}
