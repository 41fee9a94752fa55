// Package headless provides an offscreen sketch backend.
//
// The window is a BGRA8 texture on a HAL device: the noop device by default,
// or any device passed with WithDevice. Its loop renders frames on a ticker
// until one of these happens: the frame limit set with WithFrames is
// reached, Close is called, or the Draw callback returned and one more frame
// was drawn. With WithSnapshot the last frame is read back and written as a
// PNG file.
//
// Importing the package registers it under sketch.BackendHeadless:
//
//	import _ "github.com/gogpu/sketch/backend/headless"
//
//	err := sketch.Draw(800, 600, fn, sketch.WithBackend(headless.New(
//	    headless.WithFrames(1),
//	    headless.WithSnapshot("out.png"),
//	)))
package headless
