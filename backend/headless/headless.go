package headless

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/sketch"
)

// Format is the pixel format of the offscreen target.
const Format = gputypes.TextureFormatBGRA8Unorm

func init() {
	sketch.RegisterBackend(sketch.BackendHeadless, func() sketch.Backend {
		return New()
	})
}

// Backend opens offscreen windows.
type Backend struct {
	cfg config
}

// New returns a headless backend.
func New(opts ...Option) *Backend {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Backend{cfg: cfg}
}

// Name returns sketch.BackendHeadless.
func (b *Backend) Name() string { return sketch.BackendHeadless }

// Open returns an offscreen window. No GPU resources are created until Run.
func (b *Backend) Open(cfg sketch.WindowConfig) (sketch.Window, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("headless: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if (b.cfg.device == nil) != (b.cfg.queue == nil) {
		return nil, errors.New("headless: WithDevice needs both device and queue")
	}
	return &Window{
		cfg:     b.cfg,
		width:   cfg.Width,
		height:  cfg.Height,
		redraw:  make(chan struct{}, 1),
		closing: make(chan struct{}),
		log:     sketch.Logger(),
	}, nil
}

// Window is an offscreen window. It implements sketch.Window,
// sketch.Finisher and sketch.Surface.
type Window struct {
	cfg           config
	width, height uint32
	log           *slog.Logger

	redraw    chan struct{}
	closing   chan struct{}
	closeOnce sync.Once
	finished  atomic.Bool
	presented atomic.Int64

	// Loop goroutine only.
	exit     bool
	target   *target
	instance hal.Instance
	ownedDev hal.Device
	last     *image.RGBA
}

// Size returns the window size.
func (w *Window) Size() (width, height uint32) { return w.width, w.height }

// RequestRedraw asks for a redraw on the next tick.
func (w *Window) RequestRedraw() {
	select {
	case w.redraw <- struct{}{}:
	default:
	}
}

// Exit ends the loop after the current event.
func (w *Window) Exit() { w.exit = true }

// Finish makes the loop draw one more frame and then close.
func (w *Window) Finish() { w.finished.Store(true) }

// Close asks the loop to deliver a close request. Safe from any goroutine.
func (w *Window) Close() {
	w.closeOnce.Do(func() { close(w.closing) })
}

// Frames returns the number of frames presented so far.
func (w *Window) Frames() int { return int(w.presented.Load()) }

// Image returns the last frame read back for the snapshot, or nil.
func (w *Window) Image() *image.RGBA { return w.last }

// Run implements sketch.Window.
func (w *Window) Run(handle func(sketch.WindowEvent)) error {
	device, queue, err := w.openDevice()
	if err != nil {
		return fmt.Errorf("%w: headless: %w", sketch.ErrDevice, err)
	}
	defer w.closeDevice()

	t, err := newTarget(device, queue, w.width, w.height)
	if err != nil {
		return fmt.Errorf("%w: headless: %w", sketch.ErrDevice, err)
	}
	w.target = t
	defer t.destroy()

	handle(sketch.WindowEvent{
		Kind: sketch.EventResumed,
		Target: &sketch.Target{
			Device:  device,
			Queue:   queue,
			Format:  Format,
			Surface: w,
		},
	})

	ticker := time.NewTicker(w.cfg.interval)
	defer ticker.Stop()

	for !w.exit {
		done := w.finished.Load()

		handle(sketch.WindowEvent{Kind: sketch.EventAboutToWait})
		if w.exit {
			break
		}
		select {
		case <-w.redraw:
			handle(sketch.WindowEvent{Kind: sketch.EventRedrawRequested})
		default:
		}
		if w.exit {
			break
		}

		limit := w.cfg.frames > 0 && w.Frames() >= w.cfg.frames
		if done || limit {
			w.log.Debug("headless: closing", "frames", w.Frames(), "finished", done)
			handle(sketch.WindowEvent{Kind: sketch.EventCloseRequested})
			break
		}

		select {
		case <-w.closing:
			handle(sketch.WindowEvent{Kind: sketch.EventCloseRequested})
			w.exit = true
		case <-ticker.C:
		}
	}

	if w.cfg.snapshot != "" && w.Frames() > 0 {
		img, err := t.readback()
		if err != nil {
			return fmt.Errorf("headless: snapshot: %w", err)
		}
		w.last = img
		if err := writePNG(w.cfg.snapshot, img); err != nil {
			return fmt.Errorf("headless: snapshot: %w", err)
		}
		w.log.Info("headless: snapshot written", "path", w.cfg.snapshot)
	}
	return nil
}

// Acquire implements sketch.Surface.
func (w *Window) Acquire() (sketch.Frame, error) {
	if w.target == nil || w.target.view == nil {
		return nil, sketch.ErrSurfaceLost
	}
	return frame{w: w}, nil
}

// Configure implements sketch.Surface by recreating the render texture.
func (w *Window) Configure() error {
	if w.target == nil {
		return errors.New("headless: not running")
	}
	return w.target.recreate()
}

type frame struct {
	w *Window
}

func (f frame) View() hal.TextureView { return f.w.target.view }

func (f frame) Present() error {
	f.w.presented.Add(1)
	return nil
}

func (w *Window) openDevice() (hal.Device, hal.Queue, error) {
	if w.cfg.device != nil {
		return w.cfg.device, w.cfg.queue, nil
	}
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, errors.New("no adapter")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, fmt.Errorf("open device: %w", err)
	}
	w.instance = instance
	w.ownedDev = openDev.Device
	return openDev.Device, openDev.Queue, nil
}

func (w *Window) closeDevice() {
	if w.ownedDev != nil {
		w.ownedDev.Destroy()
		w.ownedDev = nil
	}
	if w.instance != nil {
		w.instance.Destroy()
		w.instance = nil
	}
}
