package sketch

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/sketch/internal/queue"
)

// Canvas owns a window and its render loop. Draw requests arrive through the
// Context returned by Context and are drawn on every redraw, on top of a
// cleared background, in the order they were posted.
//
// Everything drawn so far is re-submitted each frame: the canvas retains the
// full history of posted primitives for its lifetime.
type Canvas struct {
	opts   options
	win    Window
	events *queue.Queue[drawEvent]
	ctx    *Context
	log    *slog.Logger

	// Render loop state, touched only from the loop goroutine.
	renderer *renderer
	err      error

	runOnce  sync.Once
	shutOnce sync.Once
}

// NewCanvas opens a width×height window through the configured backend.
// The GPU is set up later, when Run delivers the window's render target.
func NewCanvas(width, height uint32, opts ...Option) (*Canvas, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := o.backend
	if b == nil {
		b = DefaultBackend()
	}
	if b == nil {
		return nil, ErrNilBackend
	}

	win, err := b.Open(WindowConfig{Title: o.title, Width: width, Height: height})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWindow, b.Name(), err)
	}

	events := queue.New[drawEvent]()
	w, h := win.Size()
	log := Logger()
	log.Info("sketch: canvas opened", "backend", b.Name(), "width", w, "height", h)
	return &Canvas{
		opts:   o,
		win:    win,
		events: events,
		ctx:    newContext(w, h, events),
		log:    log,
	}, nil
}

// Context returns the handle for posting draw requests. It may be handed to
// any goroutine.
func (c *Canvas) Context() *Context {
	return c.ctx
}

// Run drives the window's event loop on the calling goroutine until the
// window is closed or the GPU fails. After Run returns, draw requests fail
// with ErrCanvasClosed. Run may be called once.
func (c *Canvas) Run() error {
	err := errors.New("sketch: Run called more than once")
	c.runOnce.Do(func() {
		err = c.run()
	})
	return err
}

func (c *Canvas) run() error {
	defer c.shutdown()

	stop := make(chan struct{})
	defer close(stop)
	go c.wake(stop)

	werr := c.win.Run(c.handle)
	c.log.Info("sketch: render loop exited")

	if c.err != nil {
		return c.err
	}
	if werr != nil {
		if errors.Is(werr, ErrDevice) || errors.Is(werr, ErrSurface) {
			return werr
		}
		return fmt.Errorf("%w: %w", ErrWindow, werr)
	}
	return nil
}

// wake turns posted events into redraw requests, for hosts that only draw
// when asked.
func (c *Canvas) wake(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-c.events.Ready():
			c.win.RequestRedraw()
		}
	}
}

func (c *Canvas) handle(ev WindowEvent) {
	switch ev.Kind {
	case EventResumed:
		if c.renderer != nil {
			return
		}
		r, err := newRenderer(ev.Target, &c.opts)
		if err != nil {
			c.fail(err)
			return
		}
		c.renderer = r
		c.win.RequestRedraw()

	case EventCloseRequested:
		c.log.Info("sketch: close requested")
		c.shutdown()
		c.win.Exit()

	case EventAboutToWait:
		c.drain()
		c.win.RequestRedraw()

	case EventRedrawRequested:
		c.drain()
		c.redraw()
	}
}

// drain moves posted events into the batch. Until the renderer exists they
// stay queued.
func (c *Canvas) drain() {
	if c.renderer == nil {
		return
	}
	if n := c.events.Drain(c.renderer.handleEvent); n > 0 {
		c.log.Debug("sketch: events drained", "n", n)
	}
}

func (c *Canvas) redraw() {
	if c.renderer == nil {
		return
	}
	err := c.renderer.render()
	switch {
	case err == nil:
	case errors.Is(err, ErrSurfaceLost):
		if rerr := c.renderer.reconfigure(); rerr != nil {
			c.log.Error("sketch: reconfigure failed", "err", rerr)
		}
	case errors.Is(err, ErrOutOfMemory):
		c.fail(err)
	default:
		c.log.Warn("sketch: frame skipped", "err", err)
	}
}

// fail records a fatal error and stops the loop.
func (c *Canvas) fail(err error) {
	c.log.Error("sketch: fatal", "err", err)
	if c.err == nil {
		c.err = err
	}
	c.shutdown()
	c.win.Exit()
}

// shutdown closes the event queue and releases GPU resources. Hosts may tear
// down the device when the loop ends, so it also runs on close requests.
func (c *Canvas) shutdown() {
	c.shutOnce.Do(func() {
		c.events.Close()
		if c.renderer != nil {
			c.renderer.destroy()
			c.renderer = nil
		}
	})
}
