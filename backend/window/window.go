// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package window

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sketch"
)

func init() {
	runtime.LockOSThread()
	sketch.RegisterBackend(sketch.BackendWindow, func() sketch.Backend {
		return Backend{}
	})
}

// Backend opens gogpu windows.
type Backend struct{}

// Name returns sketch.BackendWindow.
func (Backend) Name() string { return sketch.BackendWindow }

// Open creates the gogpu application. The window appears when Run starts.
func (Backend) Open(cfg sketch.WindowConfig) (sketch.Window, error) {
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("window: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(int(cfg.Width), int(cfg.Height)).
		WithContinuousRender(true))
	if app == nil {
		return nil, errors.New("window: gogpu.NewApp returned nil")
	}
	return &Window{
		app:    app,
		width:  cfg.Width,
		height: cfg.Height,
		log:    sketch.Logger(),
	}, nil
}

// Window is a gogpu window. gogpu redraws continuously, so every frame it
// delivers becomes an about-to-wait tick followed by a redraw.
type Window struct {
	app           *gogpu.App
	width, height uint32
	log           *slog.Logger

	// Set while gogpu's draw callback runs.
	dc      *gogpu.Context
	resumed bool
	closed  bool
	err     error
}

// Size returns the configured inner size.
func (w *Window) Size() (width, height uint32) { return w.width, w.height }

// RequestRedraw is a no-op: the window renders every vsync.
func (w *Window) RequestRedraw() {}

// Exit quits the gogpu application.
func (w *Window) Exit() { w.app.Quit() }

// Run implements sketch.Window.
func (w *Window) Run(handle func(sketch.WindowEvent)) error {
	w.app.OnDraw(func(dc *gogpu.Context) {
		if w.closed {
			return
		}
		if !w.resumed {
			target, err := w.target()
			if err != nil {
				w.err = err
				w.app.Quit()
				return
			}
			if target == nil {
				// Device not ready yet.
				return
			}
			w.resumed = true
			w.log.Info("window: resumed", "backend", dc.Backend(), "format", target.Format)
			handle(sketch.WindowEvent{Kind: sketch.EventResumed, Target: target})
		}

		w.dc = dc
		handle(sketch.WindowEvent{Kind: sketch.EventAboutToWait})
		handle(sketch.WindowEvent{Kind: sketch.EventRedrawRequested})
		w.dc = nil
	})

	// gogpu tears the device down after OnClose returns.
	w.app.OnClose(func() {
		if w.closed {
			return
		}
		w.closed = true
		handle(sketch.WindowEvent{Kind: sketch.EventCloseRequested})
	})

	if err := w.app.Run(); err != nil {
		return err
	}
	return w.err
}

// target borrows the HAL device and queue from gogpu's device provider.
// It returns nil, nil while the provider is not available yet.
func (w *Window) target() (*sketch.Target, error) {
	p := w.app.GPUContextProvider()
	if p == nil {
		return nil, nil
	}
	var provider gpucontext.DeviceProvider = p

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: window: provider does not expose HAL types", sketch.ErrDevice)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: window: provider HalDevice is not hal.Device", sketch.ErrDevice)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: window: provider HalQueue is not hal.Queue", sketch.ErrDevice)
	}

	return &sketch.Target{
		Device:  device,
		Queue:   queue,
		Format:  provider.SurfaceFormat(),
		Surface: surface{w: w},
	}, nil
}

// surface hands out the view of the frame gogpu is currently drawing.
type surface struct {
	w *Window
}

func (s surface) Acquire() (sketch.Frame, error) {
	dc := s.w.dc
	if dc == nil {
		return nil, fmt.Errorf("%w: no frame in flight", sketch.ErrSurfaceLost)
	}
	view, ok := any(dc.SurfaceView()).(hal.TextureView)
	if !ok || view == nil {
		return nil, fmt.Errorf("%w: no surface view", sketch.ErrSurfaceLost)
	}
	return frame{view: view}, nil
}

// Configure is a no-op: gogpu reconfigures its swapchain itself.
func (s surface) Configure() error { return nil }

type frame struct {
	view hal.TextureView
}

func (f frame) View() hal.TextureView { return f.view }

// Present is a no-op: gogpu presents after the draw callback returns.
func (f frame) Present() error { return nil }
