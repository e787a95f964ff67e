package geometry

import "github.com/go-gl/mathgl/mgl32"

// CubeVertexCount and CubeTriangleCount are the sizes of the canonical cube.
const (
	CubeVertexCount   = 8
	CubeTriangleCount = 12
)

// cubePositions are the corners of the cube spanning (-1,-1,-1)..(1,1,1).
// 0..3 are the +Z face counter-clockwise seen from +Z, 4..7 the -Z face in the same order.
var cubePositions = [CubeVertexCount]mgl32.Vec3{
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
}

// cubeTriangles are two counter-clockwise (outward facing) triangles per face.
var cubeTriangles = [CubeTriangleCount]Triangle{
	{0, 1, 2}, {0, 2, 3}, // +Z
	{1, 5, 6}, {1, 6, 2}, // +X
	{5, 4, 7}, {5, 7, 6}, // -Z
	{4, 0, 3}, {4, 3, 7}, // -X
	{3, 2, 6}, {3, 6, 7}, // +Y
	{4, 5, 1}, {4, 1, 0}, // -Y
}

// CubePositions returns a fresh copy of the canonical cube corners.
func CubePositions() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), cubePositions[:]...)
}

// CubeTriangles returns a fresh copy of the canonical cube triangles.
func CubeTriangles() []Triangle {
	return append([]Triangle(nil), cubeTriangles[:]...)
}
