package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleSource walks the triangles of a mesh with their corner positions.
// *geometry.Buffer satisfies it.
type TriangleSource interface {
	ForEachTriangle(fn func(t int, p0, p1, p2 mgl32.Vec3))
}

// MeshHit is the nearest triangle struck by a ray.
type MeshHit struct {
	Triangle int
	Distance float32
	Point    mgl32.Vec3
}

// tieDistance is how close two hit distances must be to count as the same hit.
const tieDistance = 1e-4

// IntersectMesh returns the nearest triangle of mesh hit by r. When two triangles are hit at the
// same distance, within tieDistance (a ray through a shared edge), the lower triangle index wins.
func IntersectMesh(r Ray, mesh TriangleSource) (MeshHit, bool) {
	best := MeshHit{Triangle: -1, Distance: math32.Inf(1)}
	mesh.ForEachTriangle(func(t int, p0, p1, p2 mgl32.Vec3) {
		d, ok := IntersectTriangle(r, p0, p1, p2)
		if ok && d < best.Distance-tieDistance {
			best = MeshHit{Triangle: t, Distance: d}
		}
	})
	if best.Triangle < 0 {
		return MeshHit{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}

// Sphere is a bounded pick volume around a point-like object (a control point).
type Sphere struct {
	ID     int
	Center mgl32.Vec3
	Radius float32
}

// PointHit is the nearest sphere struck by a ray.
type PointHit struct {
	ID       int
	Distance float32
}

// NearestSphere returns the nearest of spheres hit by r. Ties keep the earlier sphere.
func NearestSphere(r Ray, spheres []Sphere) (PointHit, bool) {
	best := PointHit{ID: -1, Distance: math32.Inf(1)}
	found := false
	for _, s := range spheres {
		d, ok := IntersectSphere(r, s.Center, s.Radius)
		if ok && d < best.Distance {
			best = PointHit{ID: s.ID, Distance: d}
			found = true
		}
	}
	return best, found
}
