package headless

import (
	"time"

	"github.com/gogpu/wgpu/hal"
)

// Option configures a headless Backend.
type Option func(*config)

type config struct {
	device   hal.Device
	queue    hal.Queue
	frames   int
	interval time.Duration
	snapshot string
}

func defaultConfig() config {
	return config{
		interval: 16 * time.Millisecond,
	}
}

// WithDevice renders on the given device instead of a private noop device.
// The caller keeps ownership of both.
func WithDevice(device hal.Device, queue hal.Queue) Option {
	return func(c *config) {
		c.device = device
		c.queue = queue
	}
}

// WithFrames closes the window after n presented frames. Zero (default)
// means no limit.
func WithFrames(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.frames = n
		}
	}
}

// WithInterval sets the time between loop ticks. Default 16ms.
func WithInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithSnapshot writes the last presented frame to path as a PNG when the
// loop ends.
func WithSnapshot(path string) Option {
	return func(c *config) {
		c.snapshot = path
	}
}
