package sketch

// convertX maps a pixel column to normalized device X in [-1, 1].
// Columns at or beyond size land outside that range and are clipped by the
// rasterizer.
func convertX(x, size uint32) float32 {
	return float32(2*uint64(x))/float32(size) - 1
}

// convertY maps a pixel row to normalized device Y in [-1, 1], flipping
// the axis so that row 0 is the top edge.
func convertY(y, size uint32) float32 {
	return 1 - float32(2*uint64(y))/float32(size)
}
