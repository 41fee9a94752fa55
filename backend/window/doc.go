// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window opens sketch canvases as native windows using gogpu.
//
// gogpu owns the OS window, the GPU device and the swapchain. The backend
// borrows the HAL device and queue through gpucontext, renders straight into
// the surface view gogpu hands out for each frame, and lets gogpu present.
//
// Importing the package registers it as the default backend:
//
//	import _ "github.com/gogpu/sketch/backend/window"
//
// Most windowing systems require the event loop to run on the main thread.
// The package locks the main goroutine to it during init, so sketch.Draw
// must be called from main.
package window
