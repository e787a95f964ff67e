package geometry

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrIndexOutOfRange is returned when a vertex or triangle index does not refer to an existing entry.
// The mutation that produced it is rejected and the buffer is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// Triangle is one face of the mesh: three indices into the vertex position list.
// The order of the indices is the winding order and determines the outward normal.
type Triangle [3]int

// Buffer owns the mesh's vertex positions and triangle indices. It is the single source of truth
// for the mesh shape; renderers read it every frame and never write to it.
// Normals are per vertex and only change when RecomputeNormals is called.
type Buffer struct {
	positions []mgl32.Vec3
	triangles []Triangle
	normals   []mgl32.Vec3
	version   uint64
}

// New returns an empty buffer (no vertices, no triangles).
func New() *Buffer {
	return &Buffer{}
}

// NewCube returns a buffer seeded with the canonical 8-vertex, 12-triangle cube with normals computed.
func NewCube() *Buffer {
	b := New()
	b.SetPositions(CubePositions())
	// Cube triangles only reference indices 0..7, so this cannot fail.
	_ = b.SetTriangles(CubeTriangles())
	b.RecomputeNormals()
	return b
}

// SetPositions replaces the whole vertex position list. The slice is copied.
// Triangles are not checked here; callers replacing positions with fewer entries must also
// replace the triangles (see Validate).
func (b *Buffer) SetPositions(ps []mgl32.Vec3) {
	b.positions = append(b.positions[:0:0], ps...)
	b.version++
}

// SetTriangles replaces the whole triangle list. The slice is copied.
// Returns ErrIndexOutOfRange (and keeps the previous list) if any triangle references a missing vertex.
func (b *Buffer) SetTriangles(ts []Triangle) error {
	for i, t := range ts {
		if err := b.checkTriangle(t); err != nil {
			return fmt.Errorf("geometry: set triangles: triangle %d: %w", i, err)
		}
	}
	b.triangles = append(b.triangles[:0:0], ts...)
	b.version++
	return nil
}

// RecomputeNormals rebuilds the per-vertex normals from the current positions and triangles.
// Each vertex normal is the normalized sum of the unnormalized face normals of the triangles
// that use it, so larger faces weigh more. Vertices used by no triangle get a zero normal.
func (b *Buffer) RecomputeNormals() {
	if cap(b.normals) >= len(b.positions) {
		b.normals = b.normals[:len(b.positions)]
		for i := range b.normals {
			b.normals[i] = mgl32.Vec3{}
		}
	} else {
		b.normals = make([]mgl32.Vec3, len(b.positions))
	}
	for _, t := range b.triangles {
		n := b.faceCross(t)
		for _, vi := range t {
			b.normals[vi] = b.normals[vi].Add(n)
		}
	}
	for i, n := range b.normals {
		if n.Len() > 0 {
			b.normals[i] = n.Normalize()
		}
	}
	b.version++
}

// faceCross is (p1-p0) x (p2-p0): the face normal scaled by twice the triangle area.
func (b *Buffer) faceCross(t Triangle) mgl32.Vec3 {
	p0 := b.positions[t[0]]
	e1 := b.positions[t[1]].Sub(p0)
	e2 := b.positions[t[2]].Sub(p0)
	return e1.Cross(e2)
}

// FaceNormal returns the unit normal of triangle t following its winding order.
func (b *Buffer) FaceNormal(t int) (mgl32.Vec3, error) {
	tri, err := b.TriangleAt(t)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	n := b.faceCross(tri)
	if n.Len() == 0 {
		return n, nil
	}
	return n.Normalize(), nil
}

// PositionAt returns the position of vertex i.
func (b *Buffer) PositionAt(i int) (mgl32.Vec3, error) {
	if i < 0 || i >= len(b.positions) {
		return mgl32.Vec3{}, fmt.Errorf("geometry: vertex %d of %d: %w", i, len(b.positions), ErrIndexOutOfRange)
	}
	return b.positions[i], nil
}

// WritePosition overwrites the position of vertex i. Normals are not updated; call RecomputeNormals.
func (b *Buffer) WritePosition(i int, p mgl32.Vec3) error {
	if i < 0 || i >= len(b.positions) {
		return fmt.Errorf("geometry: write vertex %d of %d: %w", i, len(b.positions), ErrIndexOutOfRange)
	}
	b.positions[i] = p
	b.version++
	return nil
}

// AppendPosition adds a vertex at the end of the list and returns its index.
func (b *Buffer) AppendPosition(p mgl32.Vec3) int {
	b.positions = append(b.positions, p)
	b.version++
	return len(b.positions) - 1
}

// TriangleAt returns triangle t.
func (b *Buffer) TriangleAt(t int) (Triangle, error) {
	if t < 0 || t >= len(b.triangles) {
		return Triangle{}, fmt.Errorf("geometry: triangle %d of %d: %w", t, len(b.triangles), ErrIndexOutOfRange)
	}
	return b.triangles[t], nil
}

// RemoveTriangle deletes triangle t and returns its indices in their original order.
// Triangles after t shift down by one.
func (b *Buffer) RemoveTriangle(t int) (Triangle, error) {
	tri, err := b.TriangleAt(t)
	if err != nil {
		return Triangle{}, err
	}
	b.triangles = append(b.triangles[:t], b.triangles[t+1:]...)
	b.version++
	return tri, nil
}

// AppendTriangles adds triangles at the end of the list. Either all are added or, if one
// references a missing vertex, none are.
func (b *Buffer) AppendTriangles(ts ...Triangle) error {
	for _, t := range ts {
		if err := b.checkTriangle(t); err != nil {
			return fmt.Errorf("geometry: append triangle %v: %w", t, err)
		}
	}
	b.triangles = append(b.triangles, ts...)
	b.version++
	return nil
}

func (b *Buffer) checkTriangle(t Triangle) error {
	for _, vi := range t {
		if vi < 0 || vi >= len(b.positions) {
			return fmt.Errorf("vertex %d of %d: %w", vi, len(b.positions), ErrIndexOutOfRange)
		}
	}
	return nil
}

// VertexCount returns the number of vertices.
func (b *Buffer) VertexCount() int {
	return len(b.positions)
}

// TriangleCount returns the number of triangles.
func (b *Buffer) TriangleCount() int {
	return len(b.triangles)
}

// Positions returns a copy of the vertex positions.
func (b *Buffer) Positions() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), b.positions...)
}

// Triangles returns a copy of the triangle list.
func (b *Buffer) Triangles() []Triangle {
	return append([]Triangle(nil), b.triangles...)
}

// Normals returns a copy of the per-vertex normals as of the last RecomputeNormals.
func (b *Buffer) Normals() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), b.normals...)
}

// ForEachTriangle calls fn with each triangle's index and corner positions, in list order.
// It does not copy the buffer, so renderers can walk the mesh every frame without allocating.
func (b *Buffer) ForEachTriangle(fn func(t int, p0, p1, p2 mgl32.Vec3)) {
	for i, tri := range b.triangles {
		fn(i, b.positions[tri[0]], b.positions[tri[1]], b.positions[tri[2]])
	}
}

// Version increases on every mutation. Renderers compare it with the last value they saw
// to know when to rebuild derived data.
func (b *Buffer) Version() uint64 {
	return b.version
}

// Validate checks that every triangle references an existing vertex.
func (b *Buffer) Validate() error {
	for i, t := range b.triangles {
		if err := b.checkTriangle(t); err != nil {
			return fmt.Errorf("geometry: triangle %d: %w", i, err)
		}
	}
	return nil
}
