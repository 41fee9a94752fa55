package sketch

import (
	"time"

	"github.com/gogpu/sketch/internal/batch"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c, err := sketch.NewCanvas(800, 600,
//	    sketch.WithTitle("demo"),
//	    sketch.WithBackground(sketch.Black))
type Option func(*options)

// ShaderFormat selects how the shared shader is handed to the device.
type ShaderFormat = batch.ShaderFormat

// Shader formats accepted by WithShaderFormat.
const (
	ShaderWGSL  = batch.ShaderWGSL
	ShaderSPIRV = batch.ShaderSPIRV
)

// DefaultFrameTimeout bounds the wait for a submitted frame.
const DefaultFrameTimeout = 5 * time.Second

type options struct {
	title        string
	background   Color
	backend      Backend
	shaderFormat ShaderFormat
	frameTimeout time.Duration
}

func defaultOptions() options {
	return options{
		title:        "sketch",
		background:   White,
		shaderFormat: ShaderWGSL,
		frameTimeout: DefaultFrameTimeout,
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithBackground sets the color each frame is cleared to. Default White.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithBackend opens the canvas through b instead of the registered default.
//
// Example:
//
//	hl := headless.New(headless.WithFrames(1))
//	err := sketch.Draw(800, 600, fn, sketch.WithBackend(hl))
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithShaderFormat selects WGSL (default) or SPIR-V compiled with naga.
// SPIR-V is for HAL backends that do not accept WGSL directly.
func WithShaderFormat(f ShaderFormat) Option {
	return func(o *options) {
		o.shaderFormat = f
	}
}

// WithFrameTimeout bounds how long the renderer waits for the GPU to finish
// a frame before giving up on it. Non-positive values are ignored.
func WithFrameTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameTimeout = d
		}
	}
}
