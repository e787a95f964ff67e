package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func TestDefaultBasis(t *testing.T) {
	c := New(0, 0, 800, 600)
	if c.Position != (mgl32.Vec3{0, 0, DefaultDistance}) {
		t.Errorf("Position = %v, want (0,0,%d)", c.Position, DefaultDistance)
	}
	if got := c.Right(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, tolerance) {
		t.Errorf("Right() = %v, want (1,0,0)", got)
	}
	if got := c.Up(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, tolerance) {
		t.Errorf("Up() = %v, want (0,1,0)", got)
	}
}

func TestScreenToNDC(t *testing.T) {
	c := New(5, 75, 800, 600)
	tests := []struct {
		name   string
		screen mgl32.Vec2
		want   mgl32.Vec2
	}{
		{"top left", mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
		{"center", mgl32.Vec2{400, 300}, mgl32.Vec2{0, 0}},
		{"bottom right", mgl32.Vec2{800, 600}, mgl32.Vec2{1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ScreenToNDC(tt.screen); !got.ApproxEqualThreshold(tt.want, tolerance) {
				t.Errorf("ScreenToNDC(%v) = %v, want %v", tt.screen, got, tt.want)
			}
		})
	}
}

func TestCenterRayLooksAtTarget(t *testing.T) {
	c := New(5, 75, 800, 600)
	r := c.Ray(mgl32.Vec2{400, 300})
	if !r.Dir.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, tolerance) {
		t.Errorf("Dir = %v, want (0,0,-1)", r.Dir)
	}
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	c := New(5, 75, 1024, 768)
	points := []mgl32.Vec3{
		{0.5, -0.5, 1},
		{-1, 1, 1},
		{0.3, 0.2, -1},
	}
	for _, p := range points {
		s, ok := c.WorldToScreen(p)
		if !ok {
			t.Fatalf("WorldToScreen(%v) not visible", p)
		}
		r := c.Ray(s)
		want := p.Sub(c.Position).Normalize()
		if !r.Dir.ApproxEqualThreshold(want, tolerance) {
			t.Errorf("ray through %v = %v, want %v", s, r.Dir, want)
		}
	}
	if _, ok := c.WorldToScreen(mgl32.Vec3{0, 0, 10}); ok {
		t.Error("point behind camera reported visible")
	}
}

func TestSetViewportClamps(t *testing.T) {
	c := New(5, 75, 0, -3)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("viewport = %vx%v, want 1x1", c.Width, c.Height)
	}
	c.SetViewport(1920, 1080)
	if c.Aspect() != float32(1920)/1080 {
		t.Errorf("Aspect() = %v, want %v", c.Aspect(), float32(1920)/1080)
	}
}
