package batch

import "github.com/gogpu/gputypes"

// Primitive is the rasterization topology of a draw command.
type Primitive uint8

const (
	// PrimitivePoint draws one point per vertex.
	PrimitivePoint Primitive = iota

	// PrimitiveLine draws one segment per vertex pair.
	PrimitiveLine

	// PrimitiveTriangle draws one filled triangle per vertex triple.
	PrimitiveTriangle

	primitiveCount
)

// VertexCount returns the number of vertices one instance of p consumes.
func (p Primitive) VertexCount() uint32 {
	switch p {
	case PrimitivePoint:
		return 1
	case PrimitiveLine:
		return 2
	case PrimitiveTriangle:
		return 3
	default:
		return 0
	}
}

// Topology returns the pipeline topology used to rasterize p.
func (p Primitive) Topology() gputypes.PrimitiveTopology {
	switch p {
	case PrimitivePoint:
		return gputypes.PrimitiveTopologyPointList
	case PrimitiveLine:
		return gputypes.PrimitiveTopologyLineList
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimitivePoint:
		return "point"
	case PrimitiveLine:
		return "line"
	case PrimitiveTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the three known primitives.
func (p Primitive) Valid() bool {
	return p < primitiveCount
}
