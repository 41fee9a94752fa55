package batch

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Command is a run of same-kind primitives over a contiguous range of the
// shared vertex sequence.
type Command struct {
	Primitive Primitive

	// Begin is the index of the first vertex of the run.
	Begin uint32

	// Count is the number of primitive instances in the run.
	Count uint32
}

// End returns the index one past the last vertex of the run.
func (c Command) End() uint32 {
	return c.Begin + c.Count*c.Primitive.VertexCount()
}

// VertexCount returns the number of vertices the run covers.
func (c Command) VertexCount() uint32 {
	return c.Count * c.Primitive.VertexCount()
}

// RenderPass is the subset of hal.RenderPassEncoder used to issue draws.
type RenderPass interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetVertexBuffer(slot uint32, buffer hal.Buffer, offset uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

// Stats is a snapshot of the batch size.
type Stats struct {
	Commands    int
	Vertices    int
	BufferBytes int
}

// Commands batches vertices into draw commands and owns the pipelines and
// vertex buffer used to draw them.
type Commands struct {
	device hal.Device
	log    *slog.Logger
	label  string

	commands []Command
	vertices []Vertex

	// buffer holds the vertices uploaded by the last Prepare.
	buffer      hal.Buffer
	bufferBytes int
	staging     []byte

	pipes *pipelines
}

// New compiles the shared shader and the point, line and triangle
// pipelines for the given render target format.
func New(device hal.Device, format gputypes.TextureFormat, opts ...Option) (*Commands, error) {
	if device == nil {
		return nil, fmt.Errorf("batch: nil device")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pipes, err := createPipelines(device, format, &cfg)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	cfg.logger.Debug("batch pipelines ready",
		"format", format, "shader", cfg.shaderFormat.String())

	return &Commands{
		device: device,
		log:    cfg.logger,
		label:  cfg.label,
		pipes:  pipes,
	}, nil
}

// EnqueuePoint appends a point.
func (c *Commands) EnqueuePoint(v0 Vertex) {
	c.extend(PrimitivePoint)
	c.vertices = append(c.vertices, v0)
}

// EnqueueLine appends a line segment from v0 to v1.
func (c *Commands) EnqueueLine(v0, v1 Vertex) {
	c.extend(PrimitiveLine)
	c.vertices = append(c.vertices, v0, v1)
}

// EnqueueTriangle appends a filled triangle.
func (c *Commands) EnqueueTriangle(v0, v1, v2 Vertex) {
	c.extend(PrimitiveTriangle)
	c.vertices = append(c.vertices, v0, v1, v2)
}

// extend grows the last command when it has the same kind, otherwise starts
// a new command at the current end of the vertex sequence. Must be called
// before the vertices are appended.
func (c *Commands) extend(kind Primitive) {
	if n := len(c.commands); n > 0 && c.commands[n-1].Primitive == kind {
		c.commands[n-1].Count++
		return
	}
	c.commands = append(c.commands, Command{
		Primitive: kind,
		Begin:     uint32(len(c.vertices)), //nolint:gosec // vertex count fits uint32
		Count:     1,
	})
}

// Prepare rebuilds the vertex buffer from the entire vertex sequence.
//
// The previous buffer is destroyed, so the GPU must be done with the last
// frame that used it. With no vertices no buffer is created.
func (c *Commands) Prepare(queue hal.Queue) error {
	c.releaseBuffer()
	if len(c.vertices) == 0 {
		return nil
	}

	c.staging = encodeVertices(c.vertices, c.staging)
	buf, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: c.label + "_vertices",
		Size:  uint64(len(c.staging)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("batch: create vertex buffer: %w", err)
	}
	if err := queue.WriteBuffer(buf, 0, c.staging); err != nil {
		c.device.DestroyBuffer(buf)
		return fmt.Errorf("batch: upload vertices: %w", err)
	}

	c.buffer = buf
	c.bufferBytes = len(c.staging)
	return nil
}

// Render binds the vertex buffer once and issues one draw per command, in
// submission order, each with the pipeline for its primitive kind.
// It is a no-op until Prepare has uploaded a buffer.
func (c *Commands) Render(pass RenderPass) {
	if c.buffer == nil || len(c.commands) == 0 {
		return
	}
	pass.SetVertexBuffer(0, c.buffer, 0)
	for _, cmd := range c.commands {
		pass.SetPipeline(c.pipes.pipeline(cmd.Primitive))
		pass.Draw(cmd.VertexCount(), 1, cmd.Begin, 0)
	}
}

// Commands returns a copy of the command list.
func (c *Commands) Commands() []Command {
	out := make([]Command, len(c.commands))
	copy(out, c.commands)
	return out
}

// Vertices returns a copy of the vertex sequence.
func (c *Commands) Vertices() []Vertex {
	out := make([]Vertex, len(c.vertices))
	copy(out, c.vertices)
	return out
}

// Len returns the number of commands.
func (c *Commands) Len() int {
	return len(c.commands)
}

// Stats returns the current batch size.
func (c *Commands) Stats() Stats {
	return Stats{
		Commands:    len(c.commands),
		Vertices:    len(c.vertices),
		BufferBytes: c.bufferBytes,
	}
}

// Reset drops every command and vertex together with the uploaded buffer.
// Pipelines are kept.
func (c *Commands) Reset() {
	c.commands = c.commands[:0]
	c.vertices = c.vertices[:0]
	c.releaseBuffer()
}

// Destroy releases the vertex buffer and all pipelines. Safe to call more
// than once.
func (c *Commands) Destroy() {
	c.releaseBuffer()
	if c.pipes != nil {
		c.pipes.destroy()
		c.pipes = nil
	}
}

func (c *Commands) releaseBuffer() {
	if c.buffer != nil {
		c.device.DestroyBuffer(c.buffer)
		c.buffer = nil
		c.bufferBytes = 0
	}
}
