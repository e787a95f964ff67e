package editor

import "github.com/go-gl/mathgl/mgl32"

// Transform is the whole-mesh rotation driven by view-mode drags, in radians.
// Yaw turns around the vertical axis, pitch around the horizontal one.
type Transform struct {
	Yaw   float32
	Pitch float32
}

// Rotation returns the 3x3 rotation Rx(pitch)·Ry(yaw).
func (t Transform) Rotation() mgl32.Mat3 {
	return mgl32.Rotate3DX(t.Pitch).Mul3(mgl32.Rotate3DY(t.Yaw))
}

// Model returns the mesh-local to world matrix.
func (t Transform) Model() mgl32.Mat4 {
	return t.Rotation().Mat4()
}

// ToWorld maps a mesh-local point into world space.
func (t Transform) ToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation().Mul3x1(p)
}

// ToLocal maps a world point (or offset) into mesh-local space.
func (t Transform) ToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation().Transpose().Mul3x1(p)
}
