package scene

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/camera"
	"mesh-editor/internal/controlpoint"
	"mesh-editor/internal/editor"
	"mesh-editor/internal/logger"
	"mesh-editor/internal/primitives"
)

const (
	gridExtent     = 10
	gridMinorStep  = 1
	gridMajorStep  = 5
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
	// gridY keeps the grid below the cube so it never cuts through the mesh.
	gridY = -2

	ambient = 0.35
)

var (
	baseColor      = rl.NewColor(180, 182, 192, 255)
	translucentCol = rl.NewColor(110, 160, 230, 255)
	highlightColor = rl.NewColor(240, 170, 80, 255)
	wireColor      = rl.NewColor(30, 30, 30, 255)
	pointColor     = rl.NewColor(235, 235, 240, 255)
	selectedColor  = rl.Yellow
	lightDir       = mgl32.Vec3{0.4, 0.8, 0.6}.Normalize()
)

// Scene draws the editor's mesh in 3D and feeds it mouse and keyboard input.
// The camera is fixed; the mesh rotates instead. Clicks the overlay claims (Capture) never reach
// the editor, and the mode hotkeys are ignored while the console has the keyboard.
type Scene struct {
	ed          *editor.Editor
	cam         *camera.Camera
	log         *logger.Logger
	points      *primitives.Lit
	GridVisible bool
	// Capture, if set, is offered every press first; returning true keeps it from the editor.
	Capture func(p rl.Vector2) bool

	captured bool
	lastPos  rl.Vector2
}

// New returns a scene that drives ed, viewed through cam. Rejected gestures are logged to log.
func New(ed *editor.Editor, cam *camera.Camera, log *logger.Logger) *Scene {
	return &Scene{ed: ed, cam: cam, log: log, points: primitives.NewLit(), GridVisible: true}
}

// SetGridVisible sets whether the grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Update runs once per frame: viewport tracking, hotkeys (unless keyboardBusy) and pointer gestures.
func (s *Scene) Update(keyboardBusy bool) {
	if rl.IsWindowResized() {
		s.cam.SetViewport(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
	}
	if !keyboardBusy {
		s.handleKeys()
	}
	s.handlePointer()
}

func (s *Scene) handleKeys() {
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		_ = s.ed.SetMode(editor.ModeView)
	case rl.IsKeyPressed(rl.KeyTwo):
		_ = s.ed.SetMode(editor.ModeEdit)
	case rl.IsKeyPressed(rl.KeyThree):
		_ = s.ed.SetMode(editor.ModeAdd)
	case rl.IsKeyPressed(rl.KeyR):
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			s.ed.ResetView()
		} else {
			s.ed.Reset()
		}
	}
}

func (s *Scene) handlePointer() {
	pos := rl.GetMousePosition()
	p := mgl32.Vec2{pos.X, pos.Y}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		s.lastPos = pos
		if s.Capture != nil && s.Capture(pos) {
			s.captured = true
			return
		}
		if _, err := s.ed.PointerDown(p); err != nil {
			s.log.Log(err.Error())
		}
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !s.captured {
		if pos != s.lastPos {
			if err := s.ed.PointerMove(p); err != nil {
				s.log.Log(err.Error())
			}
			s.lastPos = pos
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		if s.captured {
			s.captured = false
			return
		}
		s.ed.PointerUp(p)
	}
}

// Draw renders the grid, the mesh with the current mode's presentation and, when visible, the
// control points. Call after ClearBackground and before the 2D overlay.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.camera3D())
	if s.GridVisible {
		drawEditorGrid()
	}
	pres := s.ed.Presentation()
	tr := s.ed.Transform()
	if pres.Opacity < 1 {
		// See-through surface: control points behind it stay visible.
		rl.DisableBackfaceCulling()
		rl.DisableDepthMask()
	}
	s.drawSurface(pres, tr)
	if pres.Opacity < 1 {
		rl.EnableDepthMask()
		rl.EnableBackfaceCulling()
	}
	if pres.Wireframe {
		s.drawWireframe(tr)
	}
	if pres.ControlPointsVisible {
		s.drawControlPoints(tr)
	}
	rl.EndMode3D()
}

func (s *Scene) camera3D() rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(s.cam.Position),
		Target:     vec3(s.cam.Target),
		Up:         vec3(s.cam.WorldUp),
		Fovy:       s.cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func (s *Scene) drawSurface(pres editor.Presentation, tr editor.Transform) {
	base := baseColor
	switch pres.Material {
	case editor.MaterialTranslucent:
		base = translucentCol
	case editor.MaterialHighlight:
		base = highlightColor
	}
	alpha := uint8(math32.Round(pres.Opacity * 255))
	rot := tr.Rotation()
	g := s.ed.Geometry()
	normals := g.Normals()
	tris := g.Triangles()

	g.ForEachTriangle(func(t int, p0, p1, p2 mgl32.Vec3) {
		var n mgl32.Vec3
		if pres.FlatShading {
			n, _ = g.FaceNormal(t)
		} else {
			tri := tris[t]
			n = normals[tri[0]].Add(normals[tri[1]]).Add(normals[tri[2]])
		}
		if n.Len() > 0 {
			n = rot.Mul3x1(n).Normalize()
		}
		c := shade(base, n.Dot(lightDir))
		c.A = alpha
		rl.DrawTriangle3D(vec3(tr.ToWorld(p0)), vec3(tr.ToWorld(p1)), vec3(tr.ToWorld(p2)), c)
	})
}

func shade(c rl.Color, lambert float32) rl.Color {
	k := ambient + (1-ambient)*math32.Max(0, lambert)
	return rl.NewColor(uint8(float32(c.R)*k), uint8(float32(c.G)*k), uint8(float32(c.B)*k), c.A)
}

func (s *Scene) drawWireframe(tr editor.Transform) {
	s.ed.Geometry().ForEachTriangle(func(_ int, p0, p1, p2 mgl32.Vec3) {
		w0, w1, w2 := vec3(tr.ToWorld(p0)), vec3(tr.ToWorld(p1)), vec3(tr.ToWorld(p2))
		rl.DrawLine3D(w0, w1, wireColor)
		rl.DrawLine3D(w1, w2, wireColor)
		rl.DrawLine3D(w2, w0, wireColor)
	})
}

func (s *Scene) drawControlPoints(tr editor.Transform) {
	radius := s.ed.Options().ControlPointRadius
	sel, hasSel := s.ed.Selected()
	s.points.SetView(s.cam.Position, lightDir)
	s.ed.ControlPoints().ForEach(func(h *controlpoint.Handle) {
		c := pointColor
		if hasSel && h.Index() == sel {
			c = selectedColor
		}
		s.points.DrawSphere(tr.ToWorld(h.Position), radius, c)
	})
}

// Unload frees GPU resources. Call before the window closes.
func (s *Scene) Unload() {
	s.points.Unload()
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// drawEditorGrid draws a grid on the XZ plane at gridY with major/minor lines and axis lines.
// Reuses start/end vectors to avoid per-frame allocations in the hot loop.
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), gridY, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), gridY, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), gridY, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), gridY, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	// Axis lines in the grid plane (X=red, Z=blue)
	start.X, start.Y, start.Z = float32(-gridExtent), gridY, 0
	end.X, end.Y, end.Z = float32(gridExtent), gridY, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, gridY, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, gridY, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
