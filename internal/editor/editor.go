// Package editor is the mesh-editing engine: it keeps the geometry buffer and its control points
// in step, routes pointer gestures by mode (view, edit, add), subdivides faces and resets the mesh.
// All methods must be called from the thread that drives rendering; nothing here blocks.
package editor

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mesh-editor/internal/controlpoint"
	"mesh-editor/internal/geometry"
	"mesh-editor/internal/picking"
)

// ErrNoControlPoint is returned when a vertex index has no control point.
var ErrNoControlPoint = errors.New("no control point")

// Camera is what the gesture resolver needs from the host camera.
type Camera interface {
	// Ray casts from the eye through a pointer position in pixels.
	Ray(screen mgl32.Vec2) picking.Ray
	// Right and Up are unit vectors of the camera's current orientation.
	Right() mgl32.Vec3
	Up() mgl32.Vec3
}

// Logger receives one line per notable editor event. *logger.Logger satisfies it.
type Logger interface {
	Log(line string)
}

// Options are the fixed tuning constants of the editor.
type Options struct {
	// RotateSensitivity is radians of yaw/pitch per pixel of view-mode drag.
	RotateSensitivity float32
	// DragSensitivity is world units per pixel of control-point drag.
	DragSensitivity float32
	// ControlPointRadius is the pick radius of a control point.
	ControlPointRadius float32
	// MergeDistance, when positive, skips subdivisions whose point lies within this distance
	// of an existing vertex. Zero keeps every inserted vertex.
	MergeDistance float32
}

// DefaultOptions returns the stock sensitivities (0.01) and a 0.1 pick radius, with merging off.
func DefaultOptions() Options {
	return Options{
		RotateSensitivity:  0.01,
		DragSensitivity:    0.01,
		ControlPointRadius: 0.1,
	}
}

// Editor owns the geometry buffer, the control-point registry and the interaction session.
// Renderers read it through the accessors and must not mutate what they get back.
type Editor struct {
	geom      *geometry.Buffer
	points    *controlpoint.Registry
	session   Session
	transform Transform
	cam       Camera
	opts      Options
	log       Logger
}

// New returns an editor seeded with the canonical cube in view mode.
// Zero sensitivities or radius in opts are replaced by the defaults. log may be nil.
func New(cam Camera, opts Options, log Logger) *Editor {
	def := DefaultOptions()
	if opts.RotateSensitivity == 0 {
		opts.RotateSensitivity = def.RotateSensitivity
	}
	if opts.DragSensitivity == 0 {
		opts.DragSensitivity = def.DragSensitivity
	}
	if opts.ControlPointRadius <= 0 {
		opts.ControlPointRadius = def.ControlPointRadius
	}
	e := &Editor{
		geom:    geometry.NewCube(),
		points:  controlpoint.NewRegistry(),
		session: newSession(),
		cam:     cam,
		opts:    opts,
		log:     log,
	}
	for i := 0; i < e.geom.VertexCount(); i++ {
		p, _ := e.geom.PositionAt(i)
		// Fresh registry and in-range indices: Create cannot fail.
		_, _ = e.points.Create(i, p)
	}
	e.enterMode(ModeView)
	return e
}

func (e *Editor) logf(format string, args ...any) {
	if e.log != nil {
		e.log.Log(fmt.Sprintf(format, args...))
	}
}

// SetMode switches mode and runs its entry actions: any drag ends, selection clears, and control
// point visibility follows the mode's presentation. Re-entering the current mode re-runs them.
func (e *Editor) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("editor: set mode %d: %w", int(m), ErrUnknownMode)
	}
	prev := e.session.Mode
	e.enterMode(m)
	if prev != m {
		e.logf("mode: %s -> %s", prev, m)
	}
	return nil
}

func (e *Editor) enterMode(m Mode) {
	e.session.Mode = m
	e.session.endDrag()
	e.session.clearSelection()
	e.points.SetVisibility(PresentationFor(m).ControlPointsVisible)
}

// Mode returns the current mode.
func (e *Editor) Mode() Mode {
	return e.session.Mode
}

// Presentation returns the descriptor the renderer should apply for the current mode.
func (e *Editor) Presentation() Presentation {
	return PresentationFor(e.session.Mode)
}

// Session returns a copy of the interaction state.
func (e *Editor) Session() Session {
	return e.session
}

// Selected returns the vertex index of the selected control point.
func (e *Editor) Selected() (int, bool) {
	return e.session.Selected, e.session.Selected != NoSelection
}

// Geometry returns the geometry buffer for reading.
func (e *Editor) Geometry() *geometry.Buffer {
	return e.geom
}

// ControlPoints returns the control-point registry for reading.
func (e *Editor) ControlPoints() *controlpoint.Registry {
	return e.points
}

// Transform returns the current whole-mesh rotation.
func (e *Editor) Transform() Transform {
	return e.transform
}

// ResetView zeroes the whole-mesh rotation. Mesh edits are kept.
func (e *Editor) ResetView() {
	e.transform = Transform{}
}

// Options returns the tuning constants in effect.
func (e *Editor) Options() Options {
	return e.opts
}

// MoveControlPoint sets the local position of the control point owning vertex index and writes it
// into the geometry, the same path a drag takes.
func (e *Editor) MoveControlPoint(index int, p mgl32.Vec3) error {
	h, ok := e.points.At(index)
	if !ok {
		return fmt.Errorf("editor: move vertex %d: %w", index, ErrNoControlPoint)
	}
	return e.placeHandle(h, p)
}

func (e *Editor) placeHandle(h *controlpoint.Handle, p mgl32.Vec3) error {
	prev := h.Position
	h.Position = p
	if err := e.points.SyncToGeometry(h, e.geom); err != nil {
		h.Position = prev
		return err
	}
	e.geom.RecomputeNormals()
	return nil
}

// Stats is a snapshot for overlays and the console.
type Stats struct {
	Mode      Mode
	Vertices  int
	Triangles int
	Handles   int
	Selected  int
	Dragging  bool
}

// Stats returns counts and interaction state.
func (e *Editor) Stats() Stats {
	return Stats{
		Mode:      e.session.Mode,
		Vertices:  e.geom.VertexCount(),
		Triangles: e.geom.TriangleCount(),
		Handles:   e.points.Len(),
		Selected:  e.session.Selected,
		Dragging:  e.session.Dragging(),
	}
}

// String formats the stats for one overlay line.
func (s Stats) String() string {
	sel := "-"
	if s.Selected != NoSelection {
		sel = fmt.Sprint(s.Selected)
	}
	return fmt.Sprintf("mode %s  vertices %d  triangles %d  selected %s", s.Mode, s.Vertices, s.Triangles, sel)
}

// CheckInvariants verifies that every vertex has exactly one control point bound to it, every
// triangle references an existing vertex, and the mode is defined.
func (e *Editor) CheckInvariants() error {
	if !e.session.Mode.Valid() {
		return fmt.Errorf("editor: mode %d: %w", int(e.session.Mode), ErrUnknownMode)
	}
	if n, v := e.points.Len(), e.geom.VertexCount(); n != v {
		return fmt.Errorf("editor: %d control points for %d vertices", n, v)
	}
	for i := 0; i < e.geom.VertexCount(); i++ {
		if _, ok := e.points.At(i); !ok {
			return fmt.Errorf("editor: vertex %d: %w", i, ErrNoControlPoint)
		}
	}
	if err := e.geom.Validate(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}
