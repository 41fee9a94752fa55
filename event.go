package sketch

import "github.com/gogpu/sketch/internal/batch"

// drawEvent carries one primitive from a Context to the renderer.
// Only the first kind.VertexCount() entries of vertices are used.
type drawEvent struct {
	kind     batch.Primitive
	vertices [3]batch.Vertex
}

func pointEvent(v0 batch.Vertex) drawEvent {
	return drawEvent{kind: batch.PrimitivePoint, vertices: [3]batch.Vertex{v0}}
}

func lineEvent(v0, v1 batch.Vertex) drawEvent {
	return drawEvent{kind: batch.PrimitiveLine, vertices: [3]batch.Vertex{v0, v1}}
}

func triangleEvent(v0, v1, v2 batch.Vertex) drawEvent {
	return drawEvent{kind: batch.PrimitiveTriangle, vertices: [3]batch.Vertex{v0, v1, v2}}
}

// Vertices returns the vertices the event contributes.
func (e drawEvent) Vertices() []batch.Vertex {
	return e.vertices[:e.kind.VertexCount()]
}
