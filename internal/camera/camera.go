package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/picking"
)

// Default camera placement: on +Z looking at the origin, 75° vertical field of view.
const (
	DefaultDistance = 5
	DefaultFovy     = 75
)

// Camera is a perspective camera looking at Target from Position. It turns pointer pixels into
// world rays and exposes its right/up basis for drag math. Width/Height are the viewport in pixels.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	WorldUp  mgl32.Vec3
	Fovy     float32 // degrees
	Width    float32
	Height   float32
}

// New returns a camera at (0,0,distance) looking at the origin with +Y up.
// Zero distance or fovy fall back to the defaults.
func New(distance, fovy float32, width, height int) *Camera {
	if distance <= 0 {
		distance = DefaultDistance
	}
	if fovy <= 0 {
		fovy = DefaultFovy
	}
	c := &Camera{
		Position: mgl32.Vec3{0, 0, distance},
		Target:   mgl32.Vec3{0, 0, 0},
		WorldUp:  mgl32.Vec3{0, 1, 0},
		Fovy:     fovy,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the pixel size used for screen/world conversion (call on window resize).
// Non-positive sizes are clamped to 1 so the aspect stays finite.
func (c *Camera) SetViewport(width, height int) {
	c.Width = float32(max(width, 1))
	c.Height = float32(max(height, 1))
}

// Aspect returns width/height.
func (c *Camera) Aspect() float32 {
	return c.Width / c.Height
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the unit vector pointing to the right of the screen in world space.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(c.WorldUp).Normalize()
}

// Up returns the unit vector pointing to the top of the screen in world space.
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// ScreenToNDC maps pixel coordinates (origin top-left, y down) to normalized device coordinates
// in [-1,1] with y up.
func (c *Camera) ScreenToNDC(screen mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		screen.X()/c.Width*2 - 1,
		1 - screen.Y()/c.Height*2,
	}
}

// Ray casts from the eye through the given pixel.
func (c *Camera) Ray(screen mgl32.Vec2) picking.Ray {
	return c.RayNDC(c.ScreenToNDC(screen))
}

// RayNDC casts from the eye through normalized device coordinates.
func (c *Camera) RayNDC(ndc mgl32.Vec2) picking.Ray {
	halfH := math32.Tan(mgl32.DegToRad(c.Fovy) / 2)
	halfW := halfH * c.Aspect()
	dir := c.Forward().
		Add(c.Right().Mul(ndc.X() * halfW)).
		Add(c.Up().Mul(ndc.Y() * halfH))
	return picking.Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// WorldToScreen projects p onto the viewport. ok is false for points at or behind the eye.
func (c *Camera) WorldToScreen(p mgl32.Vec3) (screen mgl32.Vec2, ok bool) {
	rel := p.Sub(c.Position)
	depth := rel.Dot(c.Forward())
	if depth <= 0 {
		return mgl32.Vec2{}, false
	}
	halfH := math32.Tan(mgl32.DegToRad(c.Fovy) / 2)
	halfW := halfH * c.Aspect()
	ndcX := rel.Dot(c.Right()) / depth / halfW
	ndcY := rel.Dot(c.Up()) / depth / halfH
	return mgl32.Vec2{
		(ndcX + 1) / 2 * c.Width,
		(1 - ndcY) / 2 * c.Height,
	}, true
}
