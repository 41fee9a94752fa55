package batch

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shader.wgsl
var shaderSource string

// ShaderSource returns the WGSL source shared by all primitive pipelines.
func ShaderSource() string {
	return shaderSource
}

// ShaderFormat selects how the shader is handed to the device.
type ShaderFormat uint8

const (
	// ShaderWGSL passes WGSL text to the device (default).
	ShaderWGSL ShaderFormat = iota

	// ShaderSPIRV compiles the WGSL to SPIR-V with naga first.
	// Use it with HAL backends that only accept SPIR-V modules.
	ShaderSPIRV
)

// String returns the format name.
func (f ShaderFormat) String() string {
	switch f {
	case ShaderWGSL:
		return "wgsl"
	case ShaderSPIRV:
		return "spirv"
	default:
		return "unknown"
	}
}

// CompileSPIRV compiles WGSL source to SPIR-V words.
func CompileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile shader: SPIR-V length %d is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

// alphaBlending is straight-alpha "source over" blending.
func alphaBlending() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// pipelines holds the shader, layout and one render pipeline per primitive.
type pipelines struct {
	device hal.Device
	shader hal.ShaderModule
	layout hal.PipelineLayout
	byKind [primitiveCount]hal.RenderPipeline
}

// createPipelines compiles the shared shader once and builds the point,
// line and triangle pipelines from it. On failure everything created so
// far is released.
func createPipelines(device hal.Device, format gputypes.TextureFormat, cfg *config) (*pipelines, error) {
	p := &pipelines{device: device}

	source := hal.ShaderSource{WGSL: shaderSource}
	if cfg.shaderFormat == ShaderSPIRV {
		words, err := CompileSPIRV(shaderSource)
		if err != nil {
			return nil, err
		}
		source = hal.ShaderSource{SPIRV: words}
	}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  cfg.label + "_shader",
		Source: source,
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module: %w", err)
	}
	p.shader = shader

	layout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: cfg.label + "_pipe_layout",
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}
	p.layout = layout

	for kind := PrimitivePoint; kind < primitiveCount; kind++ {
		pipeline, err := p.createPipeline(kind, format, cfg.label)
		if err != nil {
			p.destroy()
			return nil, fmt.Errorf("create %s pipeline: %w", kind, err)
		}
		p.byKind[kind] = pipeline
	}
	return p, nil
}

// createPipeline builds the render pipeline for one topology.
func (p *pipelines) createPipeline(kind Primitive, format gputypes.TextureFormat, label string) (hal.RenderPipeline, error) {
	blend := alphaBlending()
	return p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label + "_" + kind.String() + "_pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: kind.Topology(),
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

// pipeline returns the pipeline compiled for kind.
func (p *pipelines) pipeline(kind Primitive) hal.RenderPipeline {
	return p.byKind[kind]
}

// destroy releases all pipeline resources in reverse creation order.
func (p *pipelines) destroy() {
	if p == nil || p.device == nil {
		return
	}
	for i := len(p.byKind) - 1; i >= 0; i-- {
		if p.byKind[i] != nil {
			p.device.DestroyRenderPipeline(p.byKind[i])
			p.byKind[i] = nil
		}
	}
	if p.layout != nil {
		p.device.DestroyPipelineLayout(p.layout)
		p.layout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
