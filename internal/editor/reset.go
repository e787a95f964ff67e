package editor

import (
	"mesh-editor/internal/controlpoint"
	"mesh-editor/internal/geometry"
)

// Reset restores the canonical cube: 8 positions, 12 triangles, one control point per corner at
// its corner, no drag or selection, and view mode with its entry actions. The mesh rotation is
// left alone (see ResetView). Calling it twice is the same as calling it once.
func (e *Editor) Reset() {
	var extra []*controlpoint.Handle
	e.points.ForEach(func(h *controlpoint.Handle) {
		if h.Index() >= geometry.CubeVertexCount {
			extra = append(extra, h)
		}
	})
	for _, h := range extra {
		_ = e.points.Remove(h)
	}

	e.geom.SetPositions(geometry.CubePositions())
	_ = e.geom.SetTriangles(geometry.CubeTriangles())
	e.geom.RecomputeNormals()

	for i := 0; i < geometry.CubeVertexCount; i++ {
		if _, ok := e.points.At(i); !ok {
			p, _ := e.geom.PositionAt(i)
			_, _ = e.points.Create(i, p)
		}
	}
	// Every remaining handle owns an index below 8, which the cube has.
	_ = e.points.SyncFromGeometry(e.geom)

	e.enterMode(ModeView)
	e.logf("reset: %d vertices, %d triangles", e.geom.VertexCount(), e.geom.TriangleCount())
}
