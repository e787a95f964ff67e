// Package picking resolves rays against the editable mesh and against control-point volumes.
package picking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// epsilon rejects near-parallel rays and hits at (or behind) the ray origin.
	epsilon = 1e-6
	// edgeSlack widens the barycentric bounds so a ray through a shared edge hits both triangles.
	edgeSlack = 1e-4
)

// Ray is a half-line from Origin along Dir. Dir is expected to be unit length so that
// hit distances are world distances.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// NewRay returns a ray from origin through target.
func NewRay(origin, target mgl32.Vec3) Ray {
	return Ray{Origin: origin, Dir: target.Sub(origin).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Transform returns the ray with origin and direction mapped by m (direction without translation).
// Used to bring a world-space ray into mesh-local space with the inverse model matrix.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	o := m.Mul4x1(r.Origin.Vec4(1)).Vec3()
	d := m.Mul4x1(r.Dir.Vec4(0)).Vec3()
	if l := d.Len(); l > 0 {
		d = d.Mul(1 / l)
	}
	return Ray{Origin: o, Dir: d}
}

// IntersectTriangle returns the distance along r to triangle (p0,p1,p2) and whether it is hit.
// Both faces count (Möller–Trumbore without culling); hits at t <= epsilon are ignored.
func IntersectTriangle(r Ray, p0, p1, p2 mgl32.Vec3) (float32, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	pv := r.Dir.Cross(e2)
	det := e1.Dot(pv)
	if math32.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det
	tv := r.Origin.Sub(p0)
	u := tv.Dot(pv) * inv
	if u < -edgeSlack || u > 1+edgeSlack {
		return 0, false
	}
	qv := tv.Cross(e1)
	v := r.Dir.Dot(qv) * inv
	if v < -edgeSlack || u+v > 1+edgeSlack {
		return 0, false
	}
	t := e2.Dot(qv) * inv
	if t <= epsilon {
		return 0, false
	}
	return t, true
}

// IntersectSphere returns the distance along r to the first surface point of the sphere and whether
// it is hit. A ray starting inside the sphere hits at its exit point.
func IntersectSphere(r Ray, center mgl32.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t <= epsilon {
		t = -b + sq
	}
	if t <= epsilon {
		return 0, false
	}
	return t, true
}
