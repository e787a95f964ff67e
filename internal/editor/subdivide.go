package editor

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/geometry"
)

// SubdivideResult describes a face subdivision. Skipped is set when merging is enabled and the
// point was too close to an existing vertex; nothing changed in that case.
type SubdivideResult struct {
	Removed geometry.Triangle
	Vertex  int
	Added   [3]geometry.Triangle
	Skipped bool
	// Near is the vertex that caused a skip.
	Near int
}

// Subdivide replaces triangle t with three triangles fanning around a new vertex at p (mesh-local).
// For the removed (v0,v1,v2) it appends (v0,v1,n), (v1,v2,n), (v2,v0,n) so the winding, and with
// it the outward normal, is preserved. The new vertex gets a control point with the current
// visibility. Triangle count grows by two and vertex count by one.
// p is not checked to lie on the triangle. An out-of-range t is rejected before any change.
func (e *Editor) Subdivide(t int, p mgl32.Vec3) (SubdivideResult, error) {
	tri, err := e.geom.TriangleAt(t)
	if err != nil {
		e.logf("subdivide: rejected face %d: %v", t, err)
		return SubdivideResult{}, fmt.Errorf("editor: subdivide: %w", err)
	}
	if e.opts.MergeDistance > 0 {
		if v, ok := e.nearestVertexWithin(p, e.opts.MergeDistance); ok {
			e.logf("subdivide: face %d skipped, point within %.3g of vertex %d", t, e.opts.MergeDistance, v)
			return SubdivideResult{Skipped: true, Near: v}, nil
		}
	}

	n := e.geom.AppendPosition(p)
	if _, err := e.points.Create(n, p); err != nil {
		return SubdivideResult{}, fmt.Errorf("editor: subdivide: %w", err)
	}
	if _, err := e.geom.RemoveTriangle(t); err != nil {
		return SubdivideResult{}, fmt.Errorf("editor: subdivide: %w", err)
	}
	v0, v1, v2 := tri[0], tri[1], tri[2]
	added := [3]geometry.Triangle{
		{v0, v1, n},
		{v1, v2, n},
		{v2, v0, n},
	}
	if err := e.geom.AppendTriangles(added[:]...); err != nil {
		return SubdivideResult{}, fmt.Errorf("editor: subdivide: %w", err)
	}
	e.geom.RecomputeNormals()
	e.logf("subdivide: face %d %v -> vertex %d at (%.3f, %.3f, %.3f)", t, tri, n, p.X(), p.Y(), p.Z())
	return SubdivideResult{Removed: tri, Vertex: n, Added: added}, nil
}

func (e *Editor) nearestVertexWithin(p mgl32.Vec3, dist float32) (int, bool) {
	best, bestD := -1, dist
	for i := 0; i < e.geom.VertexCount(); i++ {
		q, _ := e.geom.PositionAt(i)
		if d := q.Sub(p).Len(); d <= bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}
