// Package batch accumulates point, line and triangle vertices into
// run-length encoded draw commands and submits them through the HAL.
//
// Every enqueue appends to a single shared vertex sequence. Consecutive
// enqueues of the same primitive kind extend the last command, so a run of
// N lines becomes one draw call over 2N vertices. A change of kind always
// starts a new command, which keeps submission order equal to draw order:
//
//	EnqueueLine, EnqueueLine, EnqueuePoint, EnqueueLine
//	=> [Line x2 @0] [Point x1 @4] [Line x1 @5]
//
// Prepare uploads the whole vertex sequence into a fresh vertex buffer and
// Render issues one Draw per command with the pipeline compiled for that
// command's topology. All three pipelines share one WGSL shader.
//
// Commands is not safe for concurrent use. It is owned by the render loop.
package batch
