package sketch

import "errors"

// Errors returned by canvas creation and the render loop.
var (
	// ErrCanvasClosed is returned, or carried by the panic of the Draw*
	// methods, when a draw event is posted after the render loop exited.
	ErrCanvasClosed = errors.New("sketch: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is zero.
	ErrInvalidDimensions = errors.New("sketch: invalid dimensions")

	// ErrNilBackend is returned when no window backend is configured or
	// registered.
	ErrNilBackend = errors.New("sketch: no window backend")

	// ErrWindow wraps failures to create the window or its event loop.
	ErrWindow = errors.New("sketch: window creation failed")

	// ErrDevice wraps failures to create GPU resources: adapter, device,
	// surface or pipelines.
	ErrDevice = errors.New("sketch: GPU device initialization failed")

	// ErrSurface wraps frame acquisition and presentation failures that are
	// neither ErrSurfaceLost nor ErrOutOfMemory. The frame is skipped.
	ErrSurface = errors.New("sketch: surface error")

	// ErrSurfaceLost reports that the surface must be reconfigured before
	// the next frame.
	ErrSurfaceLost = errors.New("sketch: surface lost")

	// ErrOutOfMemory reports that the GPU ran out of memory. It terminates
	// the render loop.
	ErrOutOfMemory = errors.New("sketch: GPU out of memory")
)
