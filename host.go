package sketch

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// WindowConfig describes the window a Backend opens.
type WindowConfig struct {
	Title string

	// Width and Height are the inner size in pixels. The canvas keeps
	// drawing at this size for the life of the window.
	Width, Height uint32
}

// Backend opens windows. Implementations live in backend/window (a real
// gogpu window) and backend/headless (an offscreen target).
type Backend interface {
	// Name returns the backend identifier (e.g. "gogpu", "headless").
	Name() string

	// Open creates the window and its event loop. The GPU target is
	// delivered later through EventResumed.
	Open(cfg WindowConfig) (Window, error)
}

// Window is an open window together with the event loop that drives it.
type Window interface {
	// Size returns the inner size in pixels.
	Size() (width, height uint32)

	// Run blocks, delivering events to handle on the calling goroutine,
	// until Exit is called or the host loop ends on its own. The error is
	// non-nil only for host failures.
	Run(handle func(WindowEvent)) error

	// RequestRedraw asks for an EventRedrawRequested on the next tick.
	// It may be called from any goroutine.
	RequestRedraw()

	// Exit stops the loop after the current event returns.
	Exit()
}

// Finisher is implemented by windows that close on their own once the
// callback passed to Draw has returned. Finish is called from the
// callback's goroutine after its last post; the window draws one more frame
// and then ends its loop.
type Finisher interface {
	Finish()
}

// WindowEventKind enumerates the host events a Canvas reacts to.
type WindowEventKind uint8

const (
	// EventResumed delivers the GPU target. It arrives once, before any
	// redraw.
	EventResumed WindowEventKind = iota

	// EventCloseRequested means the user asked to close the window.
	EventCloseRequested

	// EventRedrawRequested asks for a frame to be drawn now.
	EventRedrawRequested

	// EventAboutToWait means the host drained its own events and is about
	// to idle.
	EventAboutToWait
)

// String returns the event name.
func (k WindowEventKind) String() string {
	switch k {
	case EventResumed:
		return "resumed"
	case EventCloseRequested:
		return "close-requested"
	case EventRedrawRequested:
		return "redraw-requested"
	case EventAboutToWait:
		return "about-to-wait"
	default:
		return "unknown"
	}
}

// WindowEvent is a host event. Target is set only for EventResumed.
type WindowEvent struct {
	Kind   WindowEventKind
	Target *Target
}

// Target is the GPU side of a window: the device and queue to render with,
// the surface format pipelines must target, and the surface that hands out
// frames.
type Target struct {
	Device  hal.Device
	Queue   hal.Queue
	Format  gputypes.TextureFormat
	Surface Surface
}

// Surface hands out frames to render into.
type Surface interface {
	// Acquire returns the next frame. Errors wrap ErrSurfaceLost when the
	// surface must be reconfigured, ErrOutOfMemory when rendering cannot
	// continue, or anything else for a frame that should be skipped.
	//
	// A nil error must come with a usable Frame. Return an untyped nil
	// Frame, never a nil pointer wrapped in the interface, when there is
	// nothing to draw into: the caller checks the Frame against nil before
	// calling View.
	Acquire() (Frame, error)

	// Configure (re)applies the surface configuration after a loss.
	Configure() error
}

// Frame is one acquired surface texture.
type Frame interface {
	// View is the color attachment for this frame.
	View() hal.TextureView

	// Present shows the frame. It is called once after submission.
	Present() error
}
