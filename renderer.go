package sketch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sketch/internal/batch"
)

// renderer owns the GPU side of a canvas: the target handed over by the
// window and the command batch built from posted events. It is only used
// from the render loop goroutine.
type renderer struct {
	target   Target
	commands *batch.Commands
	clear    gputypes.Color
	timeout  time.Duration
	log      *slog.Logger

	frames uint64
}

func newRenderer(target *Target, o *options) (*renderer, error) {
	if target == nil || target.Device == nil || target.Queue == nil {
		return nil, fmt.Errorf("%w: incomplete render target", ErrDevice)
	}
	if target.Surface == nil {
		return nil, fmt.Errorf("%w: no surface", ErrSurface)
	}

	log := Logger()
	commands, err := batch.New(target.Device, target.Format,
		batch.WithShaderFormat(o.shaderFormat),
		batch.WithLabel("sketch"),
		batch.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDevice, err)
	}

	bg := o.background
	log.Info("sketch: renderer ready", "format", target.Format, "shader", o.shaderFormat.String())
	return &renderer{
		target:   *target,
		commands: commands,
		clear:    gputypes.Color{R: float64(bg.R), G: float64(bg.G), B: float64(bg.B), A: float64(bg.A)},
		timeout:  o.frameTimeout,
		log:      log,
	}, nil
}

// handleEvent appends the event's primitive to the batch.
func (r *renderer) handleEvent(ev drawEvent) {
	v := ev.vertices
	switch ev.kind {
	case batch.PrimitivePoint:
		r.commands.EnqueuePoint(v[0])
	case batch.PrimitiveLine:
		r.commands.EnqueueLine(v[0], v[1])
	case batch.PrimitiveTriangle:
		r.commands.EnqueueTriangle(v[0], v[1], v[2])
	}
}

// render draws one frame: acquire, upload, clear, draw every command,
// submit, wait, present. Acquisition errors are returned as the surface
// reported them so the caller can classify them.
func (r *renderer) render() error {
	frame, err := r.target.Surface.Acquire()
	if err != nil {
		return err
	}
	if frame == nil || frame.View() == nil {
		return fmt.Errorf("%w: no frame view", ErrSurfaceLost)
	}

	// Prepare fails only when the vertex buffer cannot be allocated or filled.
	if err := r.commands.Prepare(r.target.Queue); err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	if err := r.submit(frame.View()); err != nil {
		return err
	}
	if err := frame.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}

	r.frames++
	if r.log.Enabled(context.Background(), slog.LevelDebug) {
		st := r.commands.Stats()
		r.log.Debug("sketch: frame",
			"n", r.frames, "commands", st.Commands, "vertices", st.Vertices, "bytes", st.BufferBytes)
	}
	return nil
}

func (r *renderer) submit(view hal.TextureView) error {
	device, queue := r.target.Device, r.target.Queue

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sketch_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sketch_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sketch_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clear,
		}},
	})
	r.commands.Render(rp)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	fence, err := device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer device.DestroyFence(fence)

	if err := queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}

	// The next Prepare destroys the vertex buffer this frame reads.
	ok, err := device.Wait(fence, 1, r.timeout)
	if err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	if !ok {
		return fmt.Errorf("wait for GPU: timed out after %v", r.timeout)
	}
	return nil
}

// reconfigure re-applies the surface configuration after a loss.
func (r *renderer) reconfigure() error {
	r.log.Warn("sketch: surface lost, reconfiguring")
	if err := r.target.Surface.Configure(); err != nil {
		return fmt.Errorf("%w: reconfigure: %w", ErrSurface, err)
	}
	return nil
}

func (r *renderer) destroy() {
	if r.commands != nil {
		r.commands.Destroy()
		r.commands = nil
	}
}
